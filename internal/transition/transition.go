package transition

import (
	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/models"
)

// Transition types understood by the compositor.
const (
	Crossfade     = "crossfade"
	DipToBlack    = "dip_to_black"
	FadeFromBlack = "fade_from_black"
	FadeToBlack   = "fade_to_black"
)

// edgeFadeSeconds is the fade bracketing the whole video.
const edgeFadeSeconds = 1.0

// Assign computes every window's transition_in/transition_out and applies
// act-boundary blackout gaps. Crossfades are clamped to half the shorter
// neighbour so the overlap can never exceed either window. Each window's
// transition_in mirrors its predecessor's transition_out.
//
// Every act boundary inserts a black gap of ActTransitionBlackSecs once and
// shifts all subsequent windows additively; the shift accumulates across
// boundaries.
func Assign(windows []models.VisualAssetWindow, c config.TimingConstraints) {
	if len(windows) == 0 {
		return
	}

	windows[0].TransitionIn = models.Transition{Type: FadeFromBlack, Duration: edgeFadeSeconds}

	for i := 0; i < len(windows)-1; i++ {
		cur := &windows[i]
		next := &windows[i+1]

		var out models.Transition
		switch {
		case cur.Act != next.Act:
			out = models.Transition{Type: DipToBlack, Duration: c.ActTransitionBlackSecs}
		case cur.Style != next.Style && cur.Style != "" && next.Style != "":
			out = models.Transition{Type: Crossfade, Duration: clampFade(c.StyleChangeFadeSeconds, cur, next)}
		default:
			out = models.Transition{Type: Crossfade, Duration: clampFade(c.CrossfadeSeconds, cur, next)}
		}

		cur.TransitionOut = out
		next.TransitionIn = out
	}

	windows[len(windows)-1].TransitionOut = models.Transition{Type: FadeToBlack, Duration: edgeFadeSeconds}

	applyActShifts(windows, c.ActTransitionBlackSecs)
}

// clampFade bounds a crossfade to half the shorter neighbouring window.
func clampFade(fade float64, a, b *models.VisualAssetWindow) float64 {
	shorter := a.DisplayDuration
	if b.DisplayDuration < shorter {
		shorter = b.DisplayDuration
	}
	if limit := 0.5 * shorter; fade > limit {
		return limit
	}
	return fade
}

// applyActShifts pushes every window after an act boundary later by the
// accumulated black-gap time. Durations are untouched.
func applyActShifts(windows []models.VisualAssetWindow, black float64) {
	shift := 0.0
	for i := range windows {
		if i > 0 && windows[i].Act != windows[i-1].Act {
			shift += black
		}
		if shift > 0 {
			windows[i].DisplayStart += shift
			windows[i].DisplayEnd += shift
			windows[i].NarrationStart += shift
			windows[i].NarrationEnd += shift
		}
	}
	if shift > 0 {
		config.Log.WithField("total_shift_seconds", shift).
			Info("act transitions inserted blackout gaps")
	}
}
