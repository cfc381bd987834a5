package models

// KenBurns describes the camera motion applied to one asset over its display
// window. Params are duration-independent unit curves: the compositor
// interpolates From -> To using its own per-frame progress.
type KenBurns struct {
	Type string         `json:"type"`
	From KenBurnsParams `json:"from"`
	To   KenBurnsParams `json:"to"`
}

// KenBurnsParams is one endpoint of a motion curve. Scale is a zoom factor,
// X/Y are unit translation offsets.
type KenBurnsParams struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Transition describes how a window blends into its neighbour.
type Transition struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
}

// VisualAssetWindow is the atomic unit of the output schedule: one asset's
// display span with its motion and transitions. All times are seconds.
type VisualAssetWindow struct {
	SceneNumber     int        `json:"scene_number"`
	ImagePath       string     `json:"image_path"`
	DisplayStart    float64    `json:"display_start"`
	DisplayEnd      float64    `json:"display_end"`
	DisplayDuration float64    `json:"display_duration"`
	NarrationStart  float64    `json:"narration_start"`
	NarrationEnd    float64    `json:"narration_end"`
	Style           string     `json:"style"`
	Composition     string     `json:"composition"`
	Act             int        `json:"act"`
	KenBurns        KenBurns   `json:"ken_burns"`
	TransitionIn    Transition `json:"transition_in"`
	TransitionOut   Transition `json:"transition_out"`
	SentenceText    string     `json:"sentence_text"`
	ImageIndex      int        `json:"image_index"`
}

// Resolution is the output frame size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Timeline is the render configuration handed to the external compositor.
// Field names and units are the compositor contract and must not change.
type Timeline struct {
	VideoID              string              `json:"video_id"`
	AudioPath            string              `json:"audio_path"`
	TotalDurationSeconds float64             `json:"total_duration_seconds"`
	FPS                  int                 `json:"fps"`
	Resolution           Resolution          `json:"resolution"`
	Scenes               []VisualAssetWindow `json:"scenes"`
}

// Diagnostic is one entry of the per-segment observability side-channel.
type Diagnostic struct {
	SegmentID       int           `json:"segment_id"`
	SceneNumber     int           `json:"scene_number"`
	Strategy        MatchStrategy `json:"strategy_used"`
	ConfidenceScore float64       `json:"confidence_score"`
	Notes           string        `json:"notes,omitempty"`
}

// SceneTiming is the intermediate per-segment timing record written for
// debugging alongside the render config.
type SceneTiming struct {
	SceneNumber int           `json:"scene_number"`
	StartTime   float64       `json:"start_time"`
	EndTime     float64       `json:"end_time"`
	Duration    float64       `json:"duration"`
	Strategy    MatchStrategy `json:"alignment_method"`
	Confidence  float64       `json:"alignment_score"`
}
