package render

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/models"
)

// floatTolerance is the slack allowed when cross-checking aggregate
// durations that were rounded independently.
const floatTolerance = 1e-6

// Build assembles the validated render configuration for the compositor.
// Every invariant is checked before the document exists; on failure nothing
// partial is returned. Times are rounded to 4 decimals so identical inputs
// serialize byte-identically.
func Build(videoID, audioPath, imageDir string, windows []models.VisualAssetWindow, segments []models.AlignedSegment, c config.TimingConstraints) (*models.Timeline, error) {
	if len(windows) == 0 {
		return nil, &models.InvariantError{SceneNumber: 0, AssetIndex: 0, Reason: "no windows to serialize"}
	}

	assetCounts := make(map[int]int, len(segments))
	for _, seg := range segments {
		assetCounts[seg.SceneNumber] = seg.AssetCount
	}

	scenes := make([]models.VisualAssetWindow, len(windows))
	for i, w := range windows {
		w.ImagePath = filepath.Join(imageDir, fmt.Sprintf("Scene_%02d_%02d.png", w.SceneNumber, w.ImageIndex))
		w.DisplayStart = round4(w.DisplayStart)
		w.DisplayEnd = round4(w.DisplayEnd)
		w.DisplayDuration = round4(w.DisplayDuration)
		w.NarrationStart = round4(w.NarrationStart)
		w.NarrationEnd = round4(w.NarrationEnd)
		w.TransitionIn.Duration = round4(w.TransitionIn.Duration)
		w.TransitionOut.Duration = round4(w.TransitionOut.Duration)
		scenes[i] = w
	}

	if err := validate(scenes, assetCounts); err != nil {
		return nil, err
	}

	tl := &models.Timeline{
		VideoID:              videoID,
		AudioPath:            audioPath,
		TotalDurationSeconds: scenes[len(scenes)-1].DisplayEnd,
		FPS:                  c.FPS,
		Resolution:           models.Resolution{Width: c.Width, Height: c.Height},
		Scenes:               scenes,
	}

	config.Log.WithField("video_id", videoID).
		WithField("scenes", len(scenes)).
		WithField("total_duration", tl.TotalDurationSeconds).
		Info("timeline assembled")

	return tl, nil
}

// validate runs the pre-emission sanity checks: positive durations,
// strictly ordered windows, internally consistent aggregates, resolvable
// asset indices, and no missing motion or transition data.
func validate(scenes []models.VisualAssetWindow, assetCounts map[int]int) error {
	coveredTime := 0.0
	for i, w := range scenes {
		if w.DisplayDuration <= 0 {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: "zero or negative display duration"}
		}
		// Start, end, and duration were rounded independently; allow the
		// rounding error to stack.
		if math.Abs((w.DisplayEnd-w.DisplayStart)-w.DisplayDuration) > 0.001 {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: "display duration does not match its bounds"}
		}
		if i > 0 && w.DisplayStart < scenes[i-1].DisplayEnd-floatTolerance {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: "window overlaps its predecessor"}
		}
		declared, ok := assetCounts[w.SceneNumber]
		if !ok {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: "window references unknown scene"}
		}
		if w.ImageIndex < 1 || w.ImageIndex > declared {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: fmt.Sprintf("asset index outside declared count %d", declared)}
		}
		if w.KenBurns.Type == "" {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: "missing ken burns motion"}
		}
		if i > 0 && w.KenBurns.Type == scenes[i-1].KenBurns.Type {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: "repeats predecessor's ken burns motion"}
		}
		if w.TransitionIn.Type == "" || w.TransitionOut.Type == "" {
			return &models.InvariantError{SceneNumber: w.SceneNumber, AssetIndex: w.ImageIndex, Reason: "missing transition"}
		}
		coveredTime += w.DisplayDuration
	}

	// Window durations plus inter-window gaps must account for the full
	// span ending at the last display end.
	total := scenes[len(scenes)-1].DisplayEnd
	gaps := 0.0
	for i := 1; i < len(scenes); i++ {
		gaps += scenes[i].DisplayStart - scenes[i-1].DisplayEnd
	}
	leadIn := scenes[0].DisplayStart
	if math.Abs(coveredTime+gaps+leadIn-total) > floatTolerance+0.001 {
		return &models.InvariantError{SceneNumber: scenes[0].SceneNumber, AssetIndex: 0, Reason: "window durations and gaps do not sum to total duration"}
	}

	return nil
}

// BuildDiagnostics produces the per-segment observability side-channel.
func BuildDiagnostics(segments []models.AlignedSegment, shortScenes map[int]bool) []models.Diagnostic {
	diags := make([]models.Diagnostic, 0, len(segments))
	for _, seg := range segments {
		d := models.Diagnostic{
			SegmentID:       seg.SegmentIndex,
			SceneNumber:     seg.SceneNumber,
			Strategy:        seg.Strategy,
			ConfidenceScore: round4(seg.Confidence),
		}
		if seg.Strategy == models.StrategyProportional {
			d.Notes = "low-confidence proportional estimate"
		}
		if shortScenes[seg.SceneNumber] {
			if d.Notes != "" {
				d.Notes += "; "
			}
			d.Notes += "segment too short for its asset count"
		}
		diags = append(diags, d)
	}
	return diags
}

// BuildSceneTiming produces the intermediate per-segment timing document
// kept alongside the render config for debugging.
func BuildSceneTiming(segments []models.AlignedSegment) []models.SceneTiming {
	timings := make([]models.SceneTiming, 0, len(segments))
	for _, seg := range segments {
		timings = append(timings, models.SceneTiming{
			SceneNumber: seg.SceneNumber,
			StartTime:   round4(seg.StartTime),
			EndTime:     round4(seg.EndTime),
			Duration:    round4(seg.Duration()),
			Strategy:    seg.Strategy,
			Confidence:  round4(seg.Confidence),
		})
	}
	return timings
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
