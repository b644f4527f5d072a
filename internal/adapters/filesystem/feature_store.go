// Package filesystem contains file-backed implementations of the store
// interfaces. All writes are whole-file replace: a complete artifact is
// marshaled and written in one call, never appended.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/geobridge/internal/core/feature"
	"github.com/example/geobridge/internal/core/network"
	"github.com/example/geobridge/internal/ports/secondary"
)

// FeatureStore implements secondary.FeatureStore and
// secondary.ArtifactStore over plain files.
type FeatureStore struct{}

// NewFeatureStore creates a new file-backed feature store.
func NewFeatureStore() *FeatureStore {
	return &FeatureStore{}
}

// LoadEntityExport reads a model export document. An unparseable document
// is a fatal input error.
func (s *FeatureStore) LoadEntityExport(ctx context.Context, path string) (*secondary.EntityExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity export: %w", err)
	}
	var export secondary.EntityExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to parse entity export: %w", err)
	}
	return &export, nil
}

// LoadCollection reads a GeoJSON feature collection.
func (s *FeatureStore) LoadCollection(ctx context.Context, path string) (*feature.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}
	var col feature.Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}
	return &col, nil
}

// SaveCollection writes a GeoJSON feature collection, creating parent
// directories as needed.
func (s *FeatureStore) SaveCollection(ctx context.Context, path string, col *feature.Collection) error {
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	return writeFile(path, data)
}

// LoadChangeLog reads an auxiliary change-summary document.
func (s *FeatureStore) LoadChangeLog(ctx context.Context, path string) (*network.ChangeLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read change log: %w", err)
	}
	var log network.ChangeLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to parse change log: %w", err)
	}
	return &log, nil
}

// WriteJSON writes doc as indented JSON.
func (s *FeatureStore) WriteJSON(ctx context.Context, path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	return writeFile(path, data)
}

// WriteText writes a plain-text artifact.
func (s *FeatureStore) WriteText(ctx context.Context, path string, text string) error {
	return writeFile(path, []byte(text))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
