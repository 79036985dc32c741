package usecase_test

import (
	"context"
	"errors"
	"testing"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/usecase"
)

func TestBulkCreateEvents_AllCreated(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEventRepo{}
	projects := &fakeProjects{}
	ingested := 0
	uc := newUseCase(repo, projects, usecase.WithIngestObserver(func(n int) { ingested += n }))

	const otherPID = "bUn1quEid-4h"
	input := usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{
			{ProjectID: testPID, Page: strPtr("/")},
			{ProjectID: testPID, Page: strPtr("/docs"), Timezone: strPtr("Asia/Tokyo")},
			{ProjectID: otherPID, EventName: strPtr("signup")},
		},
	}

	res, err := uc.BulkCreateEvents(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 3 {
		t.Fatalf("expected Created=3, got %d", res.Created)
	}
	if len(repo.inserted) != 3 {
		t.Fatalf("expected 3 inserted events, got %d", len(repo.inserted))
	}
	if len(projects.calls) != 2 {
		t.Fatalf("expected one lookup per distinct project, got %v", projects.calls)
	}
	if ingested != 3 {
		t.Fatalf("expected ingest observer to see 3, got %d", ingested)
	}

	ids := map[string]bool{}
	for _, e := range repo.inserted {
		if ids[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		ids[e.ID] = true
	}
	if c := repo.inserted[1].Country; c == nil || *c != "JP" {
		t.Fatalf("expected country JP, got %v", c)
	}
}

func TestBulkCreateEvents_Empty(t *testing.T) {
	uc := newUseCase(&fakeEventRepo{}, &fakeProjects{})

	_, err := uc.BulkCreateEvents(context.Background(), usecase.BulkCreateEventsInput{})
	if !errors.Is(err, usecase.ErrNoEvents) {
		t.Fatalf("expected ErrNoEvents, got %v", err)
	}
}

func TestBulkCreateEvents_ValidationStopsEverything(t *testing.T) {
	repo := &fakeEventRepo{}
	projects := &fakeProjects{}
	uc := newUseCase(repo, projects)

	input := usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{
			{ProjectID: testPID},
			{ProjectID: testPID, ScreenWidth: intPtr(-5)},
		},
	}

	res, err := uc.BulkCreateEvents(context.Background(), input)
	if !errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
	if res.Created != 0 || len(repo.inserted) != 0 {
		t.Fatalf("nothing should be stored, got %d", len(repo.inserted))
	}
	if len(projects.calls) != 0 {
		t.Fatalf("projects must not be looked up before validation passes")
	}
}

func TestBulkCreateEvents_UnknownProject(t *testing.T) {
	repo := &fakeEventRepo{}
	projects := &fakeProjects{
		ExistsFn: func(ctx context.Context, pid string) (bool, error) { return pid == testPID, nil },
	}
	uc := newUseCase(repo, projects)

	input := usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{
			{ProjectID: testPID},
			{ProjectID: "bUn1quEid-4h"},
		},
	}

	_, err := uc.BulkCreateEvents(context.Background(), input)
	if !errors.Is(err, usecase.ErrUnknownProject) {
		t.Fatalf("expected ErrUnknownProject, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestBulkCreateEvents_RepoError(t *testing.T) {
	dbErr := errors.New("copy failed")
	repo := &fakeEventRepo{
		InsertManyFn: func(ctx context.Context, events []*domain.Event) error { return dbErr },
	}
	uc := newUseCase(repo, &fakeProjects{})

	res, err := uc.BulkCreateEvents(context.Background(), usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{{ProjectID: testPID}},
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
	if res.Created != 0 {
		t.Fatalf("expected Created=0, got %d", res.Created)
	}
}
