// Package feature contains the GeoJSON-shaped domain model shared by every
// pipeline stage: features, collections, and the typed property accessors
// the updaters rely on.
package feature

import (
	"encoding/json"
	"fmt"
)

// Well-known property keys. These are the cross-reference and domain scalar
// attributes the pipeline stages read and write.
const (
	KeyName            = "name"
	KeyType            = "type"
	KeySector          = "sector"
	KeyLevel           = "level"
	KeyStatus          = "status"
	KeyModelBlockID    = "modelBlockId"
	KeyNetworkNodeID   = "networkNodeId"
	KeyPartnershipRefs = "partnershipRefs"

	KeyBiomassStock       = "biomassStock"
	KeyFireRiskIndex      = "fireRiskIndex"
	KeyGrazingIntensity   = "grazingIntensity"
	KeyGovernanceScore    = "governanceScore"
	KeyManagementCapacity = "managementCapacity"
	KeyTourismPressure    = "tourismPressure"
	KeyGrazableArea       = "grazableArea"
	KeyArea               = "area"
	KeyRequiredFlowRate   = "requiredFlowRate"
	KeySuitabilityScore   = "suitabilityScore"
	KeyCommunitySupport   = "communitySupportIndex"
	KeyCommunityApproval  = "communityApproval"

	KeyMemberCount = "memberCount"
	KeyPopulation  = "population"
	KeyBudget      = "budget_euros"
)

// Feature is a single spatial record. Geometry is carried verbatim as raw
// JSON so conversion never reinterprets coordinates; a nil geometry
// serializes as null.
type Feature struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// CRS names the coordinate reference system of a collection.
type CRS struct {
	Type       string `json:"type"`
	Properties struct {
		Name string `json:"name"`
	} `json:"properties"`
}

// Collection is an ordered sequence of features plus the GeoJSON format tag.
type Collection struct {
	Type     string     `json:"type"`
	Name     string     `json:"name,omitempty"`
	CRS      *CRS       `json:"crs,omitempty"`
	Features []*Feature `json:"features"`
}

// NewCollection creates an empty FeatureCollection tagged EPSG:4326.
func NewCollection(name string) *Collection {
	crs := &CRS{Type: "name"}
	crs.Properties.Name = "EPSG:4326"
	return &Collection{
		Type:     "FeatureCollection",
		Name:     name,
		CRS:      crs,
		Features: []*Feature{},
	}
}

// NewFeature creates a feature with an empty property map.
func NewFeature(id string) *Feature {
	return &Feature{
		Type:       "Feature",
		ID:         id,
		Properties: map[string]any{},
	}
}

// Lookup returns a map from feature ID to feature. Later duplicates win,
// matching the permissive read path (duplicate IDs are rejected at
// conversion time, not here).
func (c *Collection) Lookup() map[string]*Feature {
	lookup := make(map[string]*Feature, len(c.Features))
	for _, f := range c.Features {
		if f.ID != "" {
			lookup[f.ID] = f
		}
	}
	return lookup
}

// Numeric returns the named property coerced to float64. The second return
// reports presence; the error is non-nil only when the property is present
// but not numeric.
func (f *Feature) Numeric(key string) (float64, bool, error) {
	raw, ok := f.Properties[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, true, fmt.Errorf("property %s is not numeric: %q", key, v.String())
		}
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("property %s is not numeric: %T", key, raw)
	}
}

// NumericOr returns the named property as float64, or fallback when the
// property is absent or non-numeric.
func (f *Feature) NumericOr(key string, fallback float64) float64 {
	v, ok, err := f.Numeric(key)
	if !ok || err != nil {
		return fallback
	}
	return v
}

// String returns the named property as a string, or "" when absent or not
// a string.
func (f *Feature) String(key string) string {
	if v, ok := f.Properties[key].(string); ok {
		return v
	}
	return ""
}

// StringOr returns the named property as a string, or fallback when absent.
func (f *Feature) StringOr(key, fallback string) string {
	if v := f.String(key); v != "" {
		return v
	}
	return fallback
}

// Strings returns the named property as a string slice. JSON arrays decode
// as []any, so both representations are accepted. Non-string elements are
// dropped.
func (f *Feature) Strings(key string) []string {
	switch v := f.Properties[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Bool reports whether the named property is truthy: boolean true, a
// non-empty string, or a non-zero number.
func (f *Feature) Bool(key string) bool {
	switch v := f.Properties[key].(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return false
	}
}
