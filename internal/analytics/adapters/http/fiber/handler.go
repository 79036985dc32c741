package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"analytics-service/internal/analytics/core/domain"
	"analytics-service/internal/analytics/core/usecase"
	"analytics-service/internal/analytics/core/window"
)

type GetAnalyticsUseCase interface {
	Execute(ctx context.Context, in usecase.GetAnalyticsInput) (*domain.Result, error)
}

type GetBirdseyeUseCase interface {
	Execute(ctx context.Context, pids []string) (map[string]domain.Birdseye, error)
}

type AnalyticsHandler struct {
	analytics GetAnalyticsUseCase
	birdseye  GetBirdseyeUseCase
}

func NewAnalyticsHandler(analytics GetAnalyticsUseCase, birdseye GetBirdseyeUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, birdseye: birdseye}
}

// GetAnalytics godoc
// @Summary Query bucketed analytics
// @Description Groups a project's pageviews into time buckets and tallies every tracked dimension
// @Tags Analytics
// @Produce json
// @Param pid query string true "Project ID"
// @Param timeBucket query string true "Bucket: minute | hour | day | week | month | year"
// @Param period query string false "Relative window, e.g. 7d, 4w, 3M"
// @Param from query string false "Window start (ISO-8601)"
// @Param to query string false "Window end (ISO-8601)"
// @Success 200 {object} AnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /log [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	in := usecase.GetAnalyticsInput{
		ProjectID:  c.Query("pid", ""),
		TimeBucket: c.Query("timeBucket", ""),
		Period:     c.Query("period", ""),
		From:       c.Query("from", ""),
		To:         c.Query("to", ""),
	}

	res, err := h.analytics.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidProjectID),
			errors.Is(err, usecase.ErrMissingTimeframe),
			errors.Is(err, usecase.ErrInvalidTimeRange),
			errors.Is(err, usecase.ErrTooManyBuckets),
			errors.Is(err, domain.ErrInvalidWindow),
			errors.Is(err, window.ErrInvalidPeriod),
			errors.Is(err, window.ErrInvalidTimestamp):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	// No records in the window.
	if res == nil {
		return c.Status(http.StatusOK).JSON(nil)
	}

	return c.Status(http.StatusOK).JSON(toAnalyticsResponse(res))
}

// GetBirdseye godoc
// @Summary Week-over-week overview
// @Description Compares this week's pageviews with last week's for one or more projects
// @Tags Analytics
// @Produce json
// @Param pid query string false "Project ID"
// @Param pids query string false "JSON array of Project IDs"
// @Success 200 {object} map[string]BirdseyeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /log/birdseye [get]
func (h *AnalyticsHandler) GetBirdseye(c *fiber.Ctx) error {
	pid := c.Query("pid", "")
	rawPids := c.Query("pids", "")

	if pid != "" && rawPids != "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "an array of Project ID's (pids) or a Project ID (pid) has to be provided, not both",
		})
	}

	if pid == "" && rawPids == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: usecase.ErrNoProjects.Error(),
		})
	}

	pids := []string{}
	switch {
	case pid != "":
		pids = []string{pid}
	case rawPids != "":
		if err := json.Unmarshal([]byte(rawPids), &pids); err != nil {
			return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
				Error:   "invalid_pids",
				Message: "cannot process pids: expected a JSON array of strings",
			})
		}
	}

	res, err := h.birdseye.Execute(c.UserContext(), pids)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidProjectID):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrCountFailed):
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "count_failed",
				Message: usecase.ErrCountFailed.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := make(map[string]BirdseyeResponse, len(res))
	for id, b := range res {
		resp[id] = BirdseyeResponse{
			ThisWeek:   b.ThisWeek,
			LastWeek:   b.LastWeek,
			PercChange: b.PercChange,
		}
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func toAnalyticsResponse(res *domain.Result) AnalyticsResponse {
	params := make(map[string]map[string]int, len(domain.TrackedDimensions))
	for _, dim := range domain.TrackedDimensions {
		counts := res.Params[dim]
		if counts == nil {
			counts = map[string]int{}
		}
		params[string(dim)] = counts
	}

	x := res.Chart.X
	if x == nil {
		x = []string{}
	}
	visits := res.Chart.Visits
	if visits == nil {
		visits = []int{}
	}

	return AnalyticsResponse{
		Params: params,
		Chart:  ChartResponse{X: x, Visits: visits},
	}
}
