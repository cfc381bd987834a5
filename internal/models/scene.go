package models

// SceneInput is one authored scene from the script-authoring boundary.
// NarrationText is the full narration for the scene; AssetExcerpts carries
// one sentence excerpt per visual asset, in display order.
type SceneInput struct {
	SceneNumber   int      `json:"scene_number" validate:"gt=0"`
	Act           int      `json:"act" validate:"gte=0"`
	NarrationText string   `json:"narration_text" validate:"required"`
	AssetExcerpts []string `json:"asset_excerpts" validate:"required,min=1,dive,required"`
	Composition   string   `json:"composition"`
	Style         string   `json:"style"`
}

// NarrationSegment is the unit the Aligner walks: one scene's narration with
// its per-asset subdivision. Immutable for the run.
type NarrationSegment struct {
	SceneNumber   int
	Act           int
	SegmentIndex  int
	Text          string
	AssetCount    int
	AssetExcerpts []string
	Composition   string
	Style         string
}

// MatchStrategy identifies which tier of the alignment cascade produced a
// segment's time bounds.
type MatchStrategy string

const (
	StrategyFullExcerpt    MatchStrategy = "full_excerpt"
	StrategyAnchorFallback MatchStrategy = "anchor_fallback"
	StrategyProportional   MatchStrategy = "proportional"
)

// AlignedSegment is a NarrationSegment bound to a span of transcript time.
// WordRangeStart/End are inclusive transcript word indices for the
// full-excerpt and anchor strategies; the proportional strategy carries
// estimated time bounds only and sets WordRangeEnd to WordRangeStart-1.
type AlignedSegment struct {
	NarrationSegment

	WordRangeStart int
	WordRangeEnd   int
	StartTime      float64
	EndTime        float64
	Strategy       MatchStrategy
	Confidence     float64

	// AnchorsFound/AnchorsUsed record the evidence for the anchor tier.
	AnchorsFound int
	AnchorsUsed  int
}

// Duration returns the aligned narration span in seconds.
func (s AlignedSegment) Duration() float64 {
	return s.EndTime - s.StartTime
}
