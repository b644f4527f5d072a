package stockflow

import (
	"math"
	"testing"

	"github.com/example/geobridge/internal/core/feature"
)

const testTimestamp = "2026-02-05T12:00:00Z"

func ecologicalZone() *feature.Feature {
	f := feature.NewFeature("Z12")
	f.Properties[feature.KeyBiomassStock] = 1000.0
	f.Properties[feature.KeyFireRiskIndex] = 0.75
	f.Properties[feature.KeyGrazingIntensity] = 0.5
	f.Properties[feature.KeyGovernanceScore] = 0.72
	return f
}

// Reference scenario from the calibration notes: net growth, governance
// term dominating the fire risk update.
func TestApplyReferenceScenario(t *testing.T) {
	f := ecologicalZone()
	update, skip := Apply(f, Params{RainfallIndex: 0.6}, testTimestamp)
	if skip != nil {
		t.Fatalf("unexpected skip: %v", skip.Reason)
	}
	if update == nil {
		t.Fatal("expected an update")
	}

	biomass := update.Fields[QuantityBiomassStock]
	if biomass.Old != 1000 {
		t.Errorf("biomass old = %v; want 1000", biomass.Old)
	}
	if math.Abs(biomass.New-1037.10) > 0.01 {
		t.Errorf("biomass new = %v; want 1037.10", biomass.New)
	}
	if biomass.New <= biomass.Old {
		t.Errorf("biomass should show net growth, got %v -> %v", biomass.Old, biomass.New)
	}

	fireRisk := update.Fields[QuantityFireRiskIndex]
	if math.Abs(fireRisk.New-0.645) > 0.001 {
		t.Errorf("fire risk new = %v; want 0.645", fireRisk.New)
	}
	if fireRisk.New >= 0.75 {
		t.Errorf("fire risk should fall below 0.75, got %v", fireRisk.New)
	}

	if got := f.Properties[OutPrefix+QuantityBiomassStock]; got != biomass.New {
		t.Errorf("sd_biomassStock = %v; want %v", got, biomass.New)
	}
	if got := f.Properties[OutUpdatedAt]; got != testTimestamp {
		t.Errorf("sd_updatedAt = %v; want %v", got, testTimestamp)
	}
	if got := f.Properties[feature.KeyBiomassStock]; got != 1000.0 {
		t.Errorf("source biomassStock was mutated: %v", got)
	}
}

func TestApplyBoundsOutputs(t *testing.T) {
	f := feature.NewFeature("Z1")
	f.Properties[feature.KeyFireRiskIndex] = 50.0
	f.Properties[feature.KeyGrazingIntensity] = 100.0
	f.Properties[feature.KeySuitabilityScore] = -10.0
	f.Properties[feature.KeyRequiredFlowRate] = 0.5

	update, skip := Apply(f, Params{RainfallIndex: 9.0}, testTimestamp)
	if skip != nil || update == nil {
		t.Fatalf("Apply = %v, %v; want update", update, skip)
	}

	if fr := update.Fields[QuantityFireRiskIndex].New; fr < 0 || fr > 1 {
		t.Errorf("fire risk %v outside [0,1]", fr)
	}
	if s := update.Fields[QuantitySuitabilityScore].New; s < 0 || s > 1 {
		t.Errorf("suitability %v outside [0,1]", s)
	}
	if w := update.Fields[QuantityWaterAvailability].New; w < 0 || w > 1 {
		t.Errorf("water availability %v outside [0,1]", w)
	}
}

func TestApplyBiomassFloorsAtZero(t *testing.T) {
	f := feature.NewFeature("Z1")
	f.Properties[feature.KeyBiomassStock] = 1.0
	f.Properties[feature.KeyGrazingIntensity] = 80.0

	update, _ := Apply(f, Params{RainfallIndex: 0.6}, testTimestamp)
	if update == nil {
		t.Fatal("expected an update")
	}
	if b := update.Fields[QuantityBiomassStock].New; b < 0 {
		t.Errorf("biomass %v below zero floor", b)
	}
}

func TestApplySkipsUntrackedFeature(t *testing.T) {
	f := feature.NewFeature("Actor_1")
	f.Properties[feature.KeyName] = "Coop Algarve"
	f.Properties[feature.KeyManagementCapacity] = 0.7

	update, skip := Apply(f, Params{RainfallIndex: 0.6}, testTimestamp)
	if update != nil || skip != nil {
		t.Fatalf("Apply = %v, %v; want nil, nil for untracked feature", update, skip)
	}
	if _, ok := f.Properties[OutUpdatedAt]; ok {
		t.Error("untracked feature was stamped with sd_updatedAt")
	}
}

func TestApplyMissingBiomassLeavesNoBiomassOutput(t *testing.T) {
	f := feature.NewFeature("Site_1")
	f.Properties[feature.KeyRequiredFlowRate] = 0.5
	f.Properties[feature.KeySuitabilityScore] = 0.5

	update, skip := Apply(f, Params{RainfallIndex: 0.6}, testTimestamp)
	if skip != nil || update == nil {
		t.Fatalf("Apply = %v, %v; want update", update, skip)
	}
	if _, ok := update.Fields[QuantityBiomassStock]; ok {
		t.Error("biomass change reported for feature without biomassStock")
	}
	if _, ok := f.Properties[OutPrefix+QuantityBiomassStock]; ok {
		t.Error("sd_biomassStock written for feature without biomassStock")
	}
	if _, ok := update.Fields[QuantityWaterAvailability]; !ok {
		t.Error("water availability missing from update")
	}
}

func TestApplyNonNumericTrackedAttributeSkips(t *testing.T) {
	f := ecologicalZone()
	f.Properties[feature.KeyBiomassStock] = "lots"

	update, skip := Apply(f, Params{RainfallIndex: 0.6}, testTimestamp)
	if update != nil {
		t.Fatalf("expected no update, got %+v", update)
	}
	if skip == nil || skip.ID != "Z12" {
		t.Fatalf("expected skip for Z12, got %+v", skip)
	}
	if _, ok := f.Properties[OutPrefix+QuantityFireRiskIndex]; ok {
		t.Error("skipped feature was partially mutated")
	}
}

func TestApplySuitabilityUsesFreshWaterAvailability(t *testing.T) {
	f := feature.NewFeature("Hydro_1")
	f.Properties[feature.KeyRequiredFlowRate] = 0.5
	f.Properties[feature.KeySuitabilityScore] = 0.5
	f.Properties[feature.KeyGovernanceScore] = 0.6
	f.Properties[feature.KeyCommunitySupport] = 0.6

	update, _ := Apply(f, Params{RainfallIndex: 0.6}, testTimestamp)
	if update == nil {
		t.Fatal("expected an update")
	}

	// water = clamp(0.2 + 0.5*0.6 + 0.2*0.6 + 0.1*0.5) = 0.67
	water := update.Fields[QuantityWaterAvailability].New
	if math.Abs(water-0.67) > 0.001 {
		t.Fatalf("water availability = %v; want 0.67", water)
	}

	// suitability = clamp(0.5 + 0.2*(0.67-0.5) + 0.15*0.6) = 0.624
	suit := update.Fields[QuantitySuitabilityScore].New
	if math.Abs(suit-0.624) > 0.001 {
		t.Errorf("suitability = %v; want 0.624", suit)
	}
}
