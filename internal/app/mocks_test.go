package app

import (
	"context"
	"fmt"

	"github.com/example/geobridge/internal/core/causal"
	"github.com/example/geobridge/internal/core/feature"
	"github.com/example/geobridge/internal/core/network"
	"github.com/example/geobridge/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockFeatureStore implements secondary.FeatureStore in memory, keyed by
// path.
type mockFeatureStore struct {
	exports     map[string]*secondary.EntityExport
	collections map[string]*feature.Collection
	changeLogs  map[string]*network.ChangeLog
	loadErr     error
	saveErr     error
}

func newMockFeatureStore() *mockFeatureStore {
	return &mockFeatureStore{
		exports:     map[string]*secondary.EntityExport{},
		collections: map[string]*feature.Collection{},
		changeLogs:  map[string]*network.ChangeLog{},
	}
}

func (m *mockFeatureStore) LoadEntityExport(ctx context.Context, path string) (*secondary.EntityExport, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if export, ok := m.exports[path]; ok {
		return export, nil
	}
	return nil, fmt.Errorf("export not found: %s", path)
}

func (m *mockFeatureStore) LoadCollection(ctx context.Context, path string) (*feature.Collection, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if col, ok := m.collections[path]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("collection not found: %s", path)
}

func (m *mockFeatureStore) SaveCollection(ctx context.Context, path string, col *feature.Collection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.collections[path] = col
	return nil
}

func (m *mockFeatureStore) LoadChangeLog(ctx context.Context, path string) (*network.ChangeLog, error) {
	if log, ok := m.changeLogs[path]; ok {
		return log, nil
	}
	return nil, fmt.Errorf("change log not found: %s", path)
}

// mockArtifactStore implements secondary.ArtifactStore in memory.
type mockArtifactStore struct {
	json     map[string]any
	text     map[string]string
	writeErr error
}

func newMockArtifactStore() *mockArtifactStore {
	return &mockArtifactStore{json: map[string]any{}, text: map[string]string{}}
}

func (m *mockArtifactStore) WriteJSON(ctx context.Context, path string, doc any) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.json[path] = doc
	return nil
}

func (m *mockArtifactStore) WriteText(ctx context.Context, path string, text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.text[path] = text
	return nil
}

// mockGraphExporter implements secondary.GraphExporter, remembering the
// last graph per format.
type mockGraphExporter struct {
	csvGraph     *network.Graph
	graphML      *network.Graph
	kumu         *network.Graph
	exportErr    error
	exportedPath map[string]string
}

func newMockGraphExporter() *mockGraphExporter {
	return &mockGraphExporter{exportedPath: map[string]string{}}
}

func (m *mockGraphExporter) ExportCSV(ctx context.Context, nodesPath, edgesPath string, g *network.Graph) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	m.csvGraph = g
	m.exportedPath["nodes"] = nodesPath
	m.exportedPath["edges"] = edgesPath
	return nil
}

func (m *mockGraphExporter) ExportGraphML(ctx context.Context, path string, g *network.Graph) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	m.graphML = g
	m.exportedPath["graphml"] = path
	return nil
}

func (m *mockGraphExporter) ExportKumu(ctx context.Context, path string, g *network.Graph) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	m.kumu = g
	m.exportedPath["kumu"] = path
	return nil
}

// mockCausalExporter implements secondary.CausalExporter.
type mockCausalExporter struct {
	graph     *causal.Graph
	path      string
	exportErr error
}

func (m *mockCausalExporter) ExportCausalMap(ctx context.Context, path string, g *causal.Graph, generatedAt string) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	m.graph = g
	m.path = path
	return nil
}

// mockFeatureService implements secondary.FeatureService.
type mockFeatureService struct {
	pushed     *feature.Collection
	pushResult *secondary.PushResult
	pushErr    error
	pullResult *feature.Collection
	pullErr    error
}

func (m *mockFeatureService) PushFeatures(ctx context.Context, col *feature.Collection) (*secondary.PushResult, error) {
	if m.pushErr != nil {
		return nil, m.pushErr
	}
	m.pushed = col
	return m.pushResult, nil
}

func (m *mockFeatureService) PullFeatures(ctx context.Context) (*feature.Collection, error) {
	if m.pullErr != nil {
		return nil, m.pullErr
	}
	return m.pullResult, nil
}

// mockRunRepository implements secondary.RunRepository.
type mockRunRepository struct {
	runs      []*secondary.RunRecord
	createErr error
}

func (m *mockRunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockRunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	var out []*secondary.RunRecord
	for i := len(m.runs) - 1; i >= 0; i-- {
		r := m.runs[i]
		if filters.Command != "" && r.Command != filters.Command {
			continue
		}
		out = append(out, r)
		if filters.Limit > 0 && len(out) == filters.Limit {
			break
		}
	}
	return out, nil
}
