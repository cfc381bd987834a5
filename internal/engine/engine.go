package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vibecoder10/economy-fastforward/internal/align"
	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/kenburns"
	"github.com/vibecoder10/economy-fastforward/internal/models"
	"github.com/vibecoder10/economy-fastforward/internal/render"
	"github.com/vibecoder10/economy-fastforward/internal/script"
	"github.com/vibecoder10/economy-fastforward/internal/timing"
	"github.com/vibecoder10/economy-fastforward/internal/transcript"
	"github.com/vibecoder10/economy-fastforward/internal/transition"
)

// Request carries one video's already-resolved inputs. The engine performs
// no I/O; paths are passed through verbatim into the output document.
type Request struct {
	VideoID     string
	AudioPath   string
	ImageDir    string
	Transcript  []models.WordToken
	Scenes      []models.SceneInput
	Constraints config.TimingConstraints
}

// Result is the full synthesis output: the compositor contract plus the
// observability side-channels.
type Result struct {
	Timeline    *models.Timeline        `json:"timeline"`
	Diagnostics []models.Diagnostic     `json:"diagnostics"`
	SceneTiming []models.SceneTiming    `json:"scene_timing"`
	Segments    []models.AlignedSegment `json:"-"`
}

// Synthesize recomputes the complete timing schedule for one video from
// scratch: plan, align, allocate, motion, transitions, serialize. It is a
// single linear fold with no shared state, safe to call concurrently for
// different videos.
func Synthesize(req Request) (*Result, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}
	if err := transcript.Validate(req.Transcript); err != nil {
		return nil, err
	}

	segments, err := script.Plan(req.Scenes)
	if err != nil {
		return nil, err
	}

	aligned, err := align.Align(segments, req.Transcript, req.Constraints)
	if err != nil {
		return nil, err
	}

	var windows []models.VisualAssetWindow
	shortScenes := make(map[int]bool)
	for _, seg := range aligned {
		segWindows, tooShort, err := timing.Allocate(seg, req.Constraints)
		if err != nil {
			return nil, fmt.Errorf("allocating scene %d: %w", seg.SceneNumber, err)
		}
		if tooShort {
			shortScenes[seg.SceneNumber] = true
		}
		windows = append(windows, segWindows...)
	}

	kenburns.Assign(windows)
	transition.Assign(windows, req.Constraints)

	tl, err := render.Build(req.VideoID, req.AudioPath, req.ImageDir, windows, aligned, req.Constraints)
	if err != nil {
		return nil, err
	}

	config.Log.WithFields(logrus.Fields{
		"video_id":     req.VideoID,
		"segments":     len(aligned),
		"windows":      len(windows),
		"short_scenes": len(shortScenes),
	}).Info("synthesis complete")

	return &Result{
		Timeline:    tl,
		Diagnostics: render.BuildDiagnostics(aligned, shortScenes),
		SceneTiming: render.BuildSceneTiming(aligned),
		Segments:    aligned,
	}, nil
}
