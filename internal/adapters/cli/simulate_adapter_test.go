package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/geobridge/internal/ports/primary"
)

// mockStockFlowService implements primary.StockFlowService for testing
type mockStockFlowService struct {
	runFn   func(ctx context.Context, req primary.StockFlowRequest) (*primary.StockFlowResponse, error)
	lastReq primary.StockFlowRequest
}

func (m *mockStockFlowService) Run(ctx context.Context, req primary.StockFlowRequest) (*primary.StockFlowResponse, error) {
	m.lastReq = req
	if m.runFn != nil {
		return m.runFn(ctx, req)
	}
	return &primary.StockFlowResponse{
		OutputPath:   req.OutputPath,
		ReportPath:   req.ReportPath,
		FeatureCount: 1,
		UpdatedCount: 1,
		Report: &primary.Report{
			Timestamp:     "2026-02-05T12:00:00Z",
			RainfallIndex: req.RainfallIndex,
			Updates: []primary.FeatureUpdate{
				{
					ID: "Zone_1",
					Fields: map[string]primary.ValueChange{
						"sd_biomassStock": {Old: 1000, New: 1037.1},
					},
				},
			},
		},
	}, nil
}

func TestSimulateAdapterRun(t *testing.T) {
	mock := &mockStockFlowService{}
	var buf bytes.Buffer
	adapter := NewSimulateAdapter(mock, &buf)

	err := adapter.Run(context.Background(), "in.geojson", "out.geojson", "report.json", 0.6)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if mock.lastReq.InputPath != "in.geojson" || mock.lastReq.RainfallIndex != 0.6 {
		t.Errorf("request = %+v", mock.lastReq)
	}

	out := buf.String()
	for _, want := range []string{"Updated 1 of 1", "Zone_1", "sd_biomassStock", "1037.100", "report.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateAdapterPrintsSkips(t *testing.T) {
	mock := &mockStockFlowService{
		runFn: func(ctx context.Context, req primary.StockFlowRequest) (*primary.StockFlowResponse, error) {
			return &primary.StockFlowResponse{
				OutputPath:   req.OutputPath,
				ReportPath:   req.ReportPath,
				FeatureCount: 1,
				SkippedCount: 1,
				Report: &primary.Report{
					RainfallIndex: req.RainfallIndex,
					Skipped: []primary.SkipDiagnostic{
						{ID: "Broken_1", Reason: "attribute biomassStock is not numeric"},
					},
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewSimulateAdapter(mock, &buf)

	if err := adapter.Run(context.Background(), "in.geojson", "out.geojson", "report.json", 0.6); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(buf.String(), "Skipped Broken_1") {
		t.Errorf("output missing skip diagnostic:\n%s", buf.String())
	}
}

func TestSimulateAdapterPropagatesError(t *testing.T) {
	mock := &mockStockFlowService{
		runFn: func(ctx context.Context, req primary.StockFlowRequest) (*primary.StockFlowResponse, error) {
			return nil, errors.New("failed to read collection")
		},
	}
	adapter := NewSimulateAdapter(mock, &bytes.Buffer{})

	if err := adapter.Run(context.Background(), "in.geojson", "out.geojson", "report.json", 0.6); err == nil {
		t.Error("expected error")
	}
}
