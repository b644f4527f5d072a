package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/geobridge/internal/adapters/sqlite"
	"github.com/example/geobridge/internal/ports/secondary"
)

func TestRunRepositoryCreate(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewRunRepository(testDB)

	err := repo.Create(context.Background(), &secondary.RunRecord{
		ID:            "run-1",
		Command:       "simulate",
		InputPath:     "model.geojson",
		Artifacts:     "model_sd.geojson,sd_report.json",
		FeatureCount:  5,
		UpdatedCount:  3,
		SkippedCount:  1,
		RainfallIndex: 0.6,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	runs, err := repo.List(context.Background(), secondary.RunFilters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d", len(runs))
	}
	got := runs[0]
	if got.Command != "simulate" || got.UpdatedCount != 3 || got.RainfallIndex != 0.6 {
		t.Errorf("record = %+v", got)
	}
	if got.CreatedAt == "" {
		t.Error("CreatedAt not populated")
	}
}

func TestRunRepositoryCreateRequiresID(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewRunRepository(testDB)

	if err := repo.Create(context.Background(), &secondary.RunRecord{Command: "simulate"}); err == nil {
		t.Error("expected error for missing ID")
	}
	if err := repo.Create(context.Background(), &secondary.RunRecord{ID: "run-1"}); err == nil {
		t.Error("expected error for missing Command")
	}
}

func TestRunRepositoryListFilters(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewRunRepository(testDB)

	for _, run := range []*secondary.RunRecord{
		{ID: "run-1", Command: "simulate"},
		{ID: "run-2", Command: "pipeline"},
		{ID: "run-3", Command: "simulate"},
	} {
		if err := repo.Create(context.Background(), run); err != nil {
			t.Fatalf("Create %s: %v", run.ID, err)
		}
	}

	simulated, err := repo.List(context.Background(), secondary.RunFilters{Command: "simulate"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(simulated) != 2 {
		t.Errorf("simulate runs = %d", len(simulated))
	}
	for _, r := range simulated {
		if r.Command != "simulate" {
			t.Errorf("unexpected command %q", r.Command)
		}
	}

	limited, err := repo.List(context.Background(), secondary.RunFilters{Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited runs = %d", len(limited))
	}
	// Newest first; equal timestamps fall back to id order.
	if limited[0].ID != "run-3" {
		t.Errorf("newest run = %q", limited[0].ID)
	}
}
