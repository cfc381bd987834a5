package script

import (
	"sort"
	"strings"

	"github.com/vibecoder10/economy-fastforward/internal/models"
)

// Plan validates the authored scene set and produces the ordered segment
// sequence the aligner walks. Scenes are ordered by scene number; each scene
// contributes exactly one narration segment subdivided per asset excerpt.
func Plan(scenes []models.SceneInput) ([]models.NarrationSegment, error) {
	if len(scenes) == 0 {
		return nil, &models.InputError{Source: "script", Index: -1, Reason: "empty scene list"}
	}

	ordered := make([]models.SceneInput, len(scenes))
	copy(ordered, scenes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SceneNumber < ordered[j].SceneNumber
	})

	segments := make([]models.NarrationSegment, 0, len(ordered))
	for idx, scene := range ordered {
		if scene.SceneNumber <= 0 {
			return nil, &models.InputError{Source: "script", Index: scene.SceneNumber, Reason: "scene number must be positive"}
		}
		if idx > 0 && scene.SceneNumber == ordered[idx-1].SceneNumber {
			return nil, &models.InputError{Source: "script", Index: scene.SceneNumber, Reason: "duplicate scene number"}
		}
		if strings.TrimSpace(scene.NarrationText) == "" {
			return nil, &models.InputError{Source: "script", Index: scene.SceneNumber, Reason: "empty narration text"}
		}
		if len(scene.AssetExcerpts) == 0 {
			return nil, &models.InputError{Source: "script", Index: scene.SceneNumber, Reason: "no asset excerpts"}
		}
		for _, excerpt := range scene.AssetExcerpts {
			if strings.TrimSpace(excerpt) == "" {
				return nil, &models.InputError{Source: "script", Index: scene.SceneNumber, Reason: "empty asset excerpt"}
			}
		}

		segments = append(segments, models.NarrationSegment{
			SceneNumber:   scene.SceneNumber,
			Act:           scene.Act,
			SegmentIndex:  idx,
			Text:          scene.NarrationText,
			AssetCount:    len(scene.AssetExcerpts),
			AssetExcerpts: scene.AssetExcerpts,
			Composition:   scene.Composition,
			Style:         scene.Style,
		})
	}

	return segments, nil
}

// TotalWordCount counts narration words across segments, used for the
// proportional alignment fallback.
func TotalWordCount(segments []models.NarrationSegment) int {
	total := 0
	for _, s := range segments {
		total += len(strings.Fields(s.Text))
	}
	return total
}
