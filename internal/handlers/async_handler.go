package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/engine"
	"github.com/vibecoder10/economy-fastforward/internal/worker"
)

// syncJob runs one video's synthesis on a pool worker. Results are logged;
// the caller polls its own orchestration layer for completion.
type syncJob struct {
	req engine.Request
}

func (j *syncJob) Execute() error {
	result, err := engine.Synthesize(j.req)
	if err != nil {
		return err
	}
	config.Log.WithField("video_id", j.req.VideoID).
		WithField("total_duration", result.Timeline.TotalDurationSeconds).
		Info("async synthesis finished")
	return nil
}

func (j *syncJob) ID() string {
	return j.req.VideoID
}

// SynthesizeTimelineAsync handles POST /api/v1/sync/async: validates the
// payload, queues the synthesis on the worker pool, and returns immediately.
// A full queue maps to 503 rather than blocking the request.
func SynthesizeTimelineAsync(pool *worker.Pool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload SyncPayload
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "invalid request body",
			})
		}
		if err := validate.Struct(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}

		if payload.VideoID == "" {
			payload.VideoID = uuid.New().String()
		}
		constraints := config.DefaultConstraints()
		if payload.Constraints != nil {
			constraints = *payload.Constraints
		}

		job := &syncJob{req: engine.Request{
			VideoID:     payload.VideoID,
			AudioPath:   payload.AudioPath,
			ImageDir:    payload.ImageDir,
			Transcript:  payload.Transcript,
			Scenes:      payload.Scenes,
			Constraints: constraints,
		}}
		if !pool.Submit(job) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "error",
				"video_id": payload.VideoID,
				"message":  "synthesis queue is full",
			})
		}

		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"status":   "accepted",
			"video_id": payload.VideoID,
		})
	}
}
