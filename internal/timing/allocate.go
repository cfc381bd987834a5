package timing

import (
	"math"
	"strings"

	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/models"
)

// epsilon absorbs floating-point drift when comparing durations against the
// configured bounds.
const epsilon = 1e-9

// Allocate partitions one aligned segment's time span across its declared
// visual assets. Each asset gets a provisional window proportional to its
// excerpt word count, clamped into [min,max] with the surplus or deficit
// redistributed left-to-right over the assets that still have room. The
// windows always sum to the segment span exactly.
//
// tooShort reports the documented edge case of a segment shorter than
// assetCount*minDisplay: the windows are an equal split below the minimum,
// flagged rather than silently violating the bound.
func Allocate(seg models.AlignedSegment, c config.TimingConstraints) (windows []models.VisualAssetWindow, tooShort bool, err error) {
	n := seg.AssetCount
	span := seg.Duration()

	if span > float64(n)*c.MaxDisplaySeconds+epsilon {
		return nil, false, &models.ConstraintError{
			SceneNumber: seg.SceneNumber,
			AssetIndex:  0,
			Duration:    span,
			Reason:      "segment span exceeds assetCount*maxDisplay, no redistribution can absorb it",
		}
	}

	durations := make([]float64, n)

	switch {
	case span < float64(n)*c.MinDisplaySeconds-epsilon:
		// Too short for its asset count: equal split, explicitly flagged.
		tooShort = true
		for i := range durations {
			durations[i] = span / float64(n)
		}
	case n == 1:
		durations[0] = span
	default:
		wordCounts := make([]int, n)
		totalWords := 0
		for i, excerpt := range seg.AssetExcerpts {
			wordCounts[i] = len(strings.Fields(excerpt))
			if wordCounts[i] == 0 {
				wordCounts[i] = 1
			}
			totalWords += wordCounts[i]
		}

		for i := range durations {
			provisional := float64(wordCounts[i]) / float64(totalWords) * span
			durations[i] = clamp(provisional, c.MinDisplaySeconds, c.MaxDisplaySeconds)
		}

		if err := redistribute(durations, span, seg, c); err != nil {
			return nil, false, err
		}
	}

	windows = make([]models.VisualAssetWindow, n)
	start := seg.StartTime
	for i := range windows {
		end := start + durations[i]
		if i == n-1 {
			end = seg.EndTime // absorb accumulated float drift
		}
		windows[i] = models.VisualAssetWindow{
			SceneNumber:     seg.SceneNumber,
			DisplayStart:    start,
			DisplayEnd:      end,
			DisplayDuration: end - start,
			NarrationStart:  start,
			NarrationEnd:    end,
			Style:           seg.Style,
			Composition:     seg.Composition,
			Act:             seg.Act,
			SentenceText:    seg.AssetExcerpts[i],
			ImageIndex:      i + 1,
		}
		start = end
	}

	if tooShort {
		config.Log.WithField("scene", seg.SceneNumber).
			Warn("segment too short for its asset count, windows fall below minimum display")
	}

	return windows, tooShort, nil
}

// redistribute spreads the clamp-induced surplus or deficit left-to-right
// across windows that still have room, carrying any remainder forward. The
// feasibility check in Allocate guarantees a solution exists; if every
// window sits at a bound and residual remains, that is a hard violation.
func redistribute(durations []float64, span float64, seg models.AlignedSegment, c config.TimingConstraints) error {
	residual := span
	for _, d := range durations {
		residual -= d
	}

	for pass := 0; math.Abs(residual) > epsilon && pass < len(durations); pass++ {
		for i := 0; i < len(durations) && math.Abs(residual) > epsilon; i++ {
			var room float64
			if residual > 0 {
				room = c.MaxDisplaySeconds - durations[i]
			} else {
				room = c.MinDisplaySeconds - durations[i] // negative
			}
			take := residual
			if math.Abs(take) > math.Abs(room) {
				take = room
			}
			durations[i] += take
			residual -= take
		}
	}

	if math.Abs(residual) > epsilon {
		return &models.ConstraintError{
			SceneNumber: seg.SceneNumber,
			AssetIndex:  0,
			Duration:    residual,
			Reason:      "residual duration could not be absorbed, every window at a clamp bound",
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
