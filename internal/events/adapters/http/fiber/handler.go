package fiber

import (
	"context"
	"errors"
	"net/http"

	"analytics-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (string, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

type EventHandler struct {
	storeUC StoreEventUseCase
}

func NewEventHandler(storeUC StoreEventUseCase) *EventHandler {
	return &EventHandler{storeUC: storeUC}
}

// CreateEvent godoc
// @Summary Log a pageview
// @Description Stores a single pageview or custom event for a project
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /log [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: "the request cannot be empty",
		})
	}

	id, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(CreateEventResponse{
		Status: "created",
		ID:     id,
	})
}

// BulkCreateEvents godoc
// @Summary Bulk log pageviews
// @Description Validates every event first and stores the batch atomically
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /log/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "events_list_required",
			Message: usecase.ErrNoEvents.Error(),
		})
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toInput(e)
	}

	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created: result.Created,
	})
}

func toInput(req CreateEventRequest) usecase.StoreEventInput {
	return usecase.StoreEventInput{
		ProjectID:   req.ProjectID,
		EventName:   req.EventName,
		Page:        req.Page,
		Locale:      req.Locale,
		Referrer:    req.Referrer,
		ScreenWidth: req.ScreenWidth,
		Source:      req.Source,
		Medium:      req.Medium,
		Campaign:    req.Campaign,
		Language:    req.Language,
		Timezone:    req.Timezone,
	}
}

func writeStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownProject):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_project",
			Message: usecase.ErrUnknownProject.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrNoEvents):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
