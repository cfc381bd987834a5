package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/engine"
	"github.com/vibecoder10/economy-fastforward/internal/models"
)

var validate = validator.New()

// SyncPayload is the request body for a synthesis call. Transcript and
// scenes arrive fully resolved; the service does no fetching of its own.
type SyncPayload struct {
	VideoID     string                    `json:"video_id"`
	AudioPath   string                    `json:"audio_path" validate:"required"`
	ImageDir    string                    `json:"image_dir" validate:"required"`
	Transcript  []models.WordToken        `json:"transcript" validate:"required,min=1"`
	Scenes      []models.SceneInput       `json:"scenes" validate:"required,min=1,dive"`
	Constraints *config.TimingConstraints `json:"constraints,omitempty"`
}

// SynthesizeTimeline handles POST /api/v1/sync: validates the payload, runs
// the engine, and returns the timeline with its diagnostics. Fatal engine
// errors map to 422 with the offending scene identified; malformed requests
// map to 400.
func SynthesizeTimeline(c *fiber.Ctx) error {
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

	result, err := engine.Synthesize(engine.Request{
		VideoID:     payload.VideoID,
		AudioPath:   payload.AudioPath,
		ImageDir:    payload.ImageDir,
		Transcript:  payload.Transcript,
		Scenes:      payload.Scenes,
		Constraints: constraints,
	})
	if err != nil {
		config.Log.WithField("video_id", payload.VideoID).WithError(err).Error("synthesis failed")
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"status":   "error",
			"video_id": payload.VideoID,
			"message":  err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":       "success",
		"timeline":     result.Timeline,
		"diagnostics":  result.Diagnostics,
		"scene_timing": result.SceneTiming,
	})
}

func statusFor(err error) int {
	var inputErr *models.InputError
	if errors.As(err, &inputErr) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusUnprocessableEntity
}
