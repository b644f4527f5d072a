package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/geobridge/internal/core/feature"
	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

func TestSyncPush(t *testing.T) {
	store := newMockFeatureStore()
	col := feature.NewCollection("test")
	col.Features = append(col.Features, feature.NewFeature("F1"))
	store.collections["in.geojson"] = col

	remote := &mockFeatureService{
		pushResult: &secondary.PushResult{ItemID: "abc123", ItemURL: "https://service.example/items/abc123"},
	}
	svc := NewSyncService(store, remote, nil)

	resp, err := svc.Push(context.Background(), primary.PushRequest{InputPath: "in.geojson"})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	if resp.ItemID != "abc123" || resp.FeatureCount != 1 || resp.ServiceError != "" {
		t.Errorf("resp = %+v", resp)
	}
	if remote.pushed != col {
		t.Error("collection was not handed to the remote service")
	}
}

func TestSyncPushRemoteFailureIsSurfacedNotFatal(t *testing.T) {
	store := newMockFeatureStore()
	store.collections["in.geojson"] = feature.NewCollection("test")
	remote := &mockFeatureService{pushErr: errors.New("503 service unavailable")}
	svc := NewSyncService(store, remote, nil)

	resp, err := svc.Push(context.Background(), primary.PushRequest{InputPath: "in.geojson"})
	if err != nil {
		t.Fatalf("remote failure should not be an error, got %v", err)
	}
	if resp.ServiceError != "503 service unavailable" {
		t.Errorf("ServiceError = %q", resp.ServiceError)
	}
}

func TestSyncPull(t *testing.T) {
	store := newMockFeatureStore()
	col := feature.NewCollection("remote")
	col.Features = append(col.Features, feature.NewFeature("F1"), feature.NewFeature("F2"))
	remote := &mockFeatureService{pullResult: col}
	svc := NewSyncService(store, remote, nil)

	resp, err := svc.Pull(context.Background(), primary.PullRequest{OutputPath: "pulled.geojson"})
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	if resp.FeatureCount != 2 || resp.ServiceError != "" {
		t.Errorf("resp = %+v", resp)
	}
	if store.collections["pulled.geojson"] != col {
		t.Error("pulled collection was not saved")
	}
}

func TestSyncPullRemoteFailureWritesNothing(t *testing.T) {
	store := newMockFeatureStore()
	remote := &mockFeatureService{pullErr: errors.New("timeout")}
	svc := NewSyncService(store, remote, nil)

	resp, err := svc.Pull(context.Background(), primary.PullRequest{OutputPath: "pulled.geojson"})
	if err != nil {
		t.Fatalf("remote failure should not be an error, got %v", err)
	}
	if resp.ServiceError != "timeout" {
		t.Errorf("ServiceError = %q", resp.ServiceError)
	}
	if len(store.collections) != 0 {
		t.Error("nothing should be written on pull failure")
	}
}
