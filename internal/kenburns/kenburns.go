package kenburns

import (
	"strings"

	"github.com/vibecoder10/economy-fastforward/internal/models"
)

// Motion classes. Params are unit curves; the compositor owns per-frame
// interpolation, this package only fixes the shape.
const (
	PushIn    = "push_in"
	PullOut   = "pull_out"
	PanLeft   = "pan_left"
	PanRight  = "pan_right"
	DriftUp   = "drift_up"
	DriftDown = "drift_down"
)

var presets = map[string]models.KenBurns{
	PushIn: {
		Type: PushIn,
		From: models.KenBurnsParams{Scale: 1.0},
		To:   models.KenBurnsParams{Scale: 1.15},
	},
	PullOut: {
		Type: PullOut,
		From: models.KenBurnsParams{Scale: 1.15},
		To:   models.KenBurnsParams{Scale: 1.0},
	},
	PanLeft: {
		Type: PanLeft,
		From: models.KenBurnsParams{Scale: 1.08, X: 40},
		To:   models.KenBurnsParams{Scale: 1.08, X: -40},
	},
	PanRight: {
		Type: PanRight,
		From: models.KenBurnsParams{Scale: 1.08, X: -40},
		To:   models.KenBurnsParams{Scale: 1.08, X: 40},
	},
	DriftUp: {
		Type: DriftUp,
		From: models.KenBurnsParams{Scale: 1.08, Y: 30},
		To:   models.KenBurnsParams{Scale: 1.08, Y: -30},
	},
	DriftDown: {
		Type: DriftDown,
		From: models.KenBurnsParams{Scale: 1.08, Y: -30},
		To:   models.KenBurnsParams{Scale: 1.08, Y: 30},
	},
}

// compositionBias maps the authoring-stage composition hint to the motion
// class that suits it best.
var compositionBias = map[string]string{
	"wide":          PushIn,
	"medium":        PanRight,
	"closeup":       PullOut,
	"environmental": PanLeft,
	"portrait":      PushIn,
	"overhead":      PushIn,
	"low_angle":     DriftUp,
}

// fallbackOrder is walked when the biased class collides with the
// anti-repetition rules.
var fallbackOrder = []string{PushIn, PanRight, PullOut, PanLeft, DriftUp, DriftDown}

// Assign sets a Ken Burns motion on every window, in timeline order.
// Rules: never repeat the immediately preceding class, and pans alternate
// (a pan-left may not recur until a pan-right has played, and vice versa).
func Assign(windows []models.VisualAssetWindow) {
	prevClass := ""
	lastPan := ""

	for i := range windows {
		class := classFor(windows[i].Composition)
		class = resolve(class, prevClass, lastPan)

		windows[i].KenBurns = presets[class]
		prevClass = class
		if class == PanLeft || class == PanRight {
			lastPan = class
		}
	}
}

func classFor(composition string) string {
	if class, ok := compositionBias[strings.ToLower(strings.TrimSpace(composition))]; ok {
		return class
	}
	return PushIn
}

// resolve swaps the candidate class for the nearest legal one.
func resolve(class, prevClass, lastPan string) string {
	if legal(class, prevClass, lastPan) {
		return class
	}
	// A blocked pan first tries its opposite direction.
	if opp := oppositePan(class); opp != "" && legal(opp, prevClass, lastPan) {
		return opp
	}
	for _, candidate := range fallbackOrder {
		if legal(candidate, prevClass, lastPan) {
			return candidate
		}
	}
	return class
}

func legal(class, prevClass, lastPan string) bool {
	if class == prevClass {
		return false
	}
	if class == lastPan && (class == PanLeft || class == PanRight) {
		return false
	}
	return true
}

func oppositePan(class string) string {
	switch class {
	case PanLeft:
		return PanRight
	case PanRight:
		return PanLeft
	}
	return ""
}
