package script

import (
	"errors"
	"testing"

	"github.com/vibecoder10/economy-fastforward/internal/models"
)

func scene(num, act int, text string, excerpts ...string) models.SceneInput {
	return models.SceneInput{
		SceneNumber:   num,
		Act:           act,
		NarrationText: text,
		AssetExcerpts: excerpts,
		Composition:   "wide",
		Style:         "dossier",
	}
}

func TestPlanOrdersBySceneNumber(t *testing.T) {
	scenes := []models.SceneInput{
		scene(3, 1, "third scene narration", "third scene narration"),
		scene(1, 1, "first scene narration", "first scene narration"),
		scene(2, 1, "second scene narration", "second scene narration"),
	}
	segments, err := Plan(scenes)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if segments[i].SceneNumber != want {
			t.Errorf("segment %d: expected scene %d, got %d", i, want, segments[i].SceneNumber)
		}
		if segments[i].SegmentIndex != i {
			t.Errorf("segment %d: expected index %d, got %d", i, i, segments[i].SegmentIndex)
		}
	}
}

func TestPlanSetsAssetCount(t *testing.T) {
	segments, err := Plan([]models.SceneInput{
		scene(1, 1, "two assets here", "first excerpt", "second excerpt"),
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if segments[0].AssetCount != 2 {
		t.Errorf("expected asset count 2, got %d", segments[0].AssetCount)
	}
}

func TestPlanRejectsEmptyScript(t *testing.T) {
	var inputErr *models.InputError
	if _, err := Plan(nil); !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestPlanRejectsEmptyNarration(t *testing.T) {
	_, err := Plan([]models.SceneInput{scene(1, 1, "   ", "excerpt")})
	if err == nil {
		t.Fatal("expected error for empty narration text")
	}
}

func TestPlanRejectsMissingExcerpts(t *testing.T) {
	_, err := Plan([]models.SceneInput{scene(1, 1, "narration text")})
	if err == nil {
		t.Fatal("expected error for scene without excerpts")
	}
}

func TestPlanRejectsDuplicateSceneNumbers(t *testing.T) {
	_, err := Plan([]models.SceneInput{
		scene(1, 1, "one", "one"),
		scene(1, 1, "dup", "dup"),
	})
	var inputErr *models.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError for duplicate scene, got %v", err)
	}
	if inputErr.Index != 1 {
		t.Errorf("expected scene 1 identified, got %d", inputErr.Index)
	}
}

func TestTotalWordCount(t *testing.T) {
	segments, err := Plan([]models.SceneInput{
		scene(1, 1, "one two three", "one two three"),
		scene(2, 1, "four five", "four five"),
	})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if got := TotalWordCount(segments); got != 5 {
		t.Errorf("expected 5 words, got %d", got)
	}
}
