package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/geobridge/internal/core/feature"
	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

// Validation failures for malformed export input. Structural problems with
// the export abort the run; there is no partial conversion.
var (
	ErrMissingEntityID   = errors.New("entity is missing an id")
	ErrDuplicateEntityID = errors.New("duplicate entity id")
)

// ConvertServiceImpl implements the ConvertService interface.
type ConvertServiceImpl struct {
	store    secondary.FeatureStore
	recorder *runRecorder
}

// NewConvertService creates a new ConvertService with injected dependencies.
// runRepo may be nil when run history is unavailable.
func NewConvertService(store secondary.FeatureStore, runRepo secondary.RunRepository) *ConvertServiceImpl {
	return &ConvertServiceImpl{
		store:    store,
		recorder: newRunRecorder(runRepo),
	}
}

// Convert reads a model export and writes a GeoJSON feature collection.
// Geometry is copied verbatim (null when absent), every declared property
// becomes an attribute, and the cross-reference identifiers are attached:
// modelBlockId from the entity id, networkNodeId derived from the entity
// name unless the export already declares one.
func (s *ConvertServiceImpl) Convert(ctx context.Context, req primary.ConvertRequest) (*primary.ConvertResponse, error) {
	export, err := s.store.LoadEntityExport(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load entity export: %w", err)
	}

	name := export.Model
	if name == "" {
		name = "Federated Model"
	}
	col := feature.NewCollection(name)

	seen := map[string]bool{}
	resp := &primary.ConvertResponse{OutputPath: req.OutputPath}
	for i, entity := range export.Entities {
		if entity.ID == "" {
			return nil, fmt.Errorf("entity %d: %w", i, ErrMissingEntityID)
		}
		if seen[entity.ID] {
			return nil, fmt.Errorf("entity %d: %w: %s", i, ErrDuplicateEntityID, entity.ID)
		}
		seen[entity.ID] = true

		f := convertEntity(entity)
		col.Features = append(col.Features, f)
		resp.Features = append(resp.Features, primary.FeatureSummary{
			ID:            f.ID,
			Name:          f.String(feature.KeyName),
			Type:          f.String(feature.KeyType),
			ModelBlockID:  f.String(feature.KeyModelBlockID),
			NetworkNodeID: f.String(feature.KeyNetworkNodeID),
		})
	}

	if err := s.store.SaveCollection(ctx, req.OutputPath, col); err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}

	resp.FeatureCount = len(col.Features)
	s.recorder.record(ctx, &secondary.RunRecord{
		Command:      "convert",
		InputPath:    req.InputPath,
		Artifacts:    req.OutputPath,
		FeatureCount: resp.FeatureCount,
	})

	return resp, nil
}

func convertEntity(entity secondary.EntityRecord) *feature.Feature {
	f := feature.NewFeature(entity.ID)
	f.Geometry = entity.Geometry

	for key, prop := range entity.Properties {
		if prop.Value != nil {
			f.Properties[key] = prop.Value
		}
	}

	if entity.Name != "" {
		f.Properties[feature.KeyName] = entity.Name
	} else if _, ok := f.Properties[feature.KeyName]; !ok {
		f.Properties[feature.KeyName] = "Unnamed"
	}
	if entity.Type != "" {
		f.Properties[feature.KeyType] = entity.Type
	}

	// Traceability links. modelBlockId always points back at the source
	// entity; networkNodeId is derived only when the export left it out.
	f.Properties[feature.KeyModelBlockID] = entity.ID
	if f.String(feature.KeyNetworkNodeID) == "" {
		f.Properties[feature.KeyNetworkNodeID] = networkNodeID(f.String(feature.KeyName))
	}

	return f
}

// networkNodeID derives a relationship-graph node id from an entity name:
// "Coop Algarve" becomes "Node_CoopAlgarve".
func networkNodeID(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "Node_Unknown"
	}
	var b strings.Builder
	b.WriteString("Node_")
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		if len(w) > 1 {
			b.WriteString(w[1:])
		}
	}
	return b.String()
}
