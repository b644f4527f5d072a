package arcgis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/geobridge/internal/core/feature"
)

func TestPushFeatures(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/items" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		var col feature.Collection
		if err := json.NewDecoder(r.Body).Decode(&col); err != nil {
			t.Errorf("body does not parse: %v", err)
		}
		if len(col.Features) != 1 {
			t.Errorf("features = %d", len(col.Features))
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"itemId":  "item42",
			"itemUrl": "https://service.example/items/item42",
		})
	}))
	defer server.Close()

	col := feature.NewCollection("test")
	col.Features = append(col.Features, feature.NewFeature("F1"))

	result, err := NewClient(server.URL, "secret").PushFeatures(context.Background(), col)
	if err != nil {
		t.Fatalf("PushFeatures: %v", err)
	}
	if result.ItemID != "item42" || result.FeatureCount != 1 {
		t.Errorf("result = %+v", result)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestPushFeaturesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := NewClient(server.URL, "").PushFeatures(context.Background(), feature.NewCollection("test")); err == nil {
		t.Error("expected error on 503")
	}
}

func TestPullFeatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/features" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		col := feature.NewCollection("remote")
		col.Features = append(col.Features, feature.NewFeature("F1"), feature.NewFeature("F2"))
		json.NewEncoder(w).Encode(col)
	}))
	defer server.Close()

	col, err := NewClient(server.URL, "").PullFeatures(context.Background())
	if err != nil {
		t.Fatalf("PullFeatures: %v", err)
	}
	if len(col.Features) != 2 || col.Name != "remote" {
		t.Errorf("collection = %+v", col)
	}
}

func TestPullFeaturesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewClient(server.URL, "").PullFeatures(context.Background()); err == nil {
		t.Error("expected error on 404")
	}
}
