package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TimingConstraints is the immutable tuning injected into every synthesis
// call. Alternate tunings are independently testable; nothing in the engine
// reads these values from globals.
type TimingConstraints struct {
	MinDisplaySeconds      float64 `json:"min_display_seconds" validate:"gt=0"`
	MaxDisplaySeconds      float64 `json:"max_display_seconds" validate:"gtfield=MinDisplaySeconds"`
	CrossfadeSeconds       float64 `json:"crossfade_seconds" validate:"gte=0"`
	StyleChangeFadeSeconds float64 `json:"style_change_fade_seconds" validate:"gte=0"`
	ActTransitionBlackSecs float64 `json:"act_transition_black_seconds" validate:"gte=0"`
	FuzzyMatchThreshold    float64 `json:"fuzzy_match_threshold" validate:"gt=0,lte=1"`
	FPS                    int     `json:"fps" validate:"gt=0"`
	Width                  int     `json:"width" validate:"gt=0"`
	Height                 int     `json:"height" validate:"gt=0"`
}

// DefaultConstraints returns the documented default tuning.
func DefaultConstraints() TimingConstraints {
	return TimingConstraints{
		MinDisplaySeconds:      3.0,
		MaxDisplaySeconds:      18.0,
		CrossfadeSeconds:       0.4,
		StyleChangeFadeSeconds: 0.8,
		ActTransitionBlackSecs: 1.5,
		FuzzyMatchThreshold:    0.60,
		FPS:                    30,
		Width:                  1920,
		Height:                 1080,
	}
}

var validate = validator.New()

// Validate checks a constraints value for internal consistency.
func (c TimingConstraints) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid timing constraints: %w", err)
	}
	return nil
}
