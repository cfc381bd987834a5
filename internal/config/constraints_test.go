package config

import "testing"

func TestDefaultConstraintsValid(t *testing.T) {
	if err := DefaultConstraints().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestDefaultConstraintValues(t *testing.T) {
	c := DefaultConstraints()
	if c.MinDisplaySeconds != 3.0 || c.MaxDisplaySeconds != 18.0 {
		t.Error("unexpected display bounds")
	}
	if c.CrossfadeSeconds != 0.4 || c.ActTransitionBlackSecs != 1.5 {
		t.Error("unexpected transition defaults")
	}
	if c.FuzzyMatchThreshold != 0.60 {
		t.Errorf("unexpected fuzzy threshold %v", c.FuzzyMatchThreshold)
	}
}

func TestValidateRejectsInvertedBounds(t *testing.T) {
	c := DefaultConstraints()
	c.MaxDisplaySeconds = 1.0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for max below min")
	}
}

func TestValidateRejectsZeroThreshold(t *testing.T) {
	c := DefaultConstraints()
	c.FuzzyMatchThreshold = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero threshold")
	}
}
