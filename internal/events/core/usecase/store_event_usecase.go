package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/ports"
	projectdomain "analytics-service/internal/projects/core/domain"
	projectports "analytics-service/internal/projects/core/ports"
)

var (
	ErrInvalidEvent   = errors.New("invalid event")
	ErrUnknownProject = errors.New("the provided Project ID (pid) is incorrect")
	ErrNoEvents       = errors.New("the events list cannot be empty")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("project_id", func(fl validator.FieldLevel) bool {
		return projectdomain.IsValidID(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register project_id validation: %v", err))
	}
	return v
}

type StoreEventUseCase struct {
	repo       ports.EventRepositoryPort
	projects   projectports.ProjectReaderPort
	now        func() time.Time
	log        zerolog.Logger
	onIngested func(n int)
}

type Option func(*StoreEventUseCase)

func WithClock(now func() time.Time) Option {
	return func(uc *StoreEventUseCase) { uc.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(uc *StoreEventUseCase) { uc.log = log }
}

// WithIngestObserver is called with the number of events stored by each call.
func WithIngestObserver(fn func(n int)) Option {
	return func(uc *StoreEventUseCase) { uc.onIngested = fn }
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort, projects projectports.ProjectReaderPort, opts ...Option) *StoreEventUseCase {
	uc := &StoreEventUseCase{
		repo:       repo,
		projects:   projects,
		now:        time.Now,
		log:        zerolog.Nop(),
		onIngested: func(int) {},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type StoreEventInput struct {
	ProjectID   string  `validate:"required,project_id"`
	EventName   *string `validate:"omitempty,max=100"`
	Page        *string `validate:"omitempty,max=2048"`
	Locale      *string `validate:"omitempty,max=35"`
	Referrer    *string `validate:"omitempty,max=2048"`
	ScreenWidth *int    `validate:"omitempty,min=0,max=100000"`
	Source      *string `validate:"omitempty,max=256"`
	Medium      *string `validate:"omitempty,max=256"`
	Campaign    *string `validate:"omitempty,max=256"`
	Language    *string `validate:"omitempty,max=35"`
	Timezone    *string `validate:"omitempty,max=64"`
}

// Execute stores one event and returns its generated ID.
func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (string, error) {
	if err := uc.validateInput(in); err != nil {
		return "", err
	}
	if err := uc.checkProject(ctx, in.ProjectID); err != nil {
		return "", err
	}

	e := uc.buildEvent(in, uc.now().UTC().Truncate(time.Second))
	if err := uc.repo.InsertEvent(ctx, e); err != nil {
		return "", mapStoreError(err)
	}

	uc.onIngested(1)
	return e.ID, nil
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created int
}

// BulkCreateEvents validates every event and its project before storing any
// of them.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	if len(in.Events) == 0 {
		return res, ErrNoEvents
	}

	for i, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, fmt.Errorf("events[%d]: %w", i, err)
		}
	}

	checked := make(map[string]struct{})
	for _, ev := range in.Events {
		if _, ok := checked[ev.ProjectID]; ok {
			continue
		}
		if err := uc.checkProject(ctx, ev.ProjectID); err != nil {
			return res, err
		}
		checked[ev.ProjectID] = struct{}{}
	}

	created := uc.now().UTC().Truncate(time.Second)
	events := make([]*domain.Event, 0, len(in.Events))
	for _, ev := range in.Events {
		events = append(events, uc.buildEvent(ev, created))
	}

	if err := uc.repo.InsertEvents(ctx, events); err != nil {
		return res, mapStoreError(err)
	}

	res.Created = len(events)
	uc.onIngested(res.Created)
	uc.log.Debug().Int("created", res.Created).Msg("bulk events stored")

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				if fe.StructField() == "ProjectID" {
					return ErrUnknownProject
				}
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidEvent, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	return nil
}

func (uc *StoreEventUseCase) checkProject(ctx context.Context, pid string) error {
	exists, err := uc.projects.ProjectExists(ctx, pid)
	if err != nil {
		return fmt.Errorf("check project %s: %w", pid, err)
	}
	if !exists {
		return ErrUnknownProject
	}
	return nil
}

func (uc *StoreEventUseCase) buildEvent(in StoreEventInput, created time.Time) *domain.Event {
	e := &domain.Event{
		ID:          uuid.NewString(),
		ProjectID:   in.ProjectID,
		EventName:   in.EventName,
		Page:        in.Page,
		Locale:      in.Locale,
		Referrer:    in.Referrer,
		ScreenWidth: in.ScreenWidth,
		Source:      in.Source,
		Medium:      in.Medium,
		Campaign:    in.Campaign,
		Language:    in.Language,
		CreatedAt:   created,
	}
	if in.Timezone != nil {
		if cc, ok := domain.CountryForTimezone(*in.Timezone); ok {
			e.Country = &cc
		}
	}
	return e
}

func mapStoreError(err error) error {
	if errors.Is(err, ports.ErrProjectNotFound) {
		return ErrUnknownProject
	}
	return err
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
