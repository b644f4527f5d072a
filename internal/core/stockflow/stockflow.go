// Package stockflow implements the heuristic System Dynamics update: a
// one-shot recomputation of biomass, fire risk, grazing capacity, water
// availability and suitability from their previous values and a small
// parameter set. Formulas are closed-form with documented coefficients;
// there is no iteration and no solver.
package stockflow

import (
	"fmt"
	"math"

	"github.com/example/geobridge/internal/core/feature"
)

// Coefficients for the update formulas. Calibrated against the reference
// scenario: biomass 1000, fire risk 0.75, grazing 0.5, governance 0.72,
// rainfall 0.6 gives biomass' = 1037.10 and fire risk' = 0.645.
const (
	baseGrowthRate       = 0.04
	governanceGrowthGain = 0.03
	grazingLossRate      = 0.025
	fireLossRate         = 0.016

	grazingRiskGain   = 0.15
	tourismRiskGain   = 0.10
	governanceRiskCut = 0.25
	managementRiskCut = 0.10

	capacityPerHectare = 0.6
	capacityPerBiomass = 0.05

	baseWater           = 0.2
	rainfallWaterGain   = 0.5
	governanceWaterGain = 0.2
	flowWaterGain       = 0.1

	waterSuitabilityGain   = 0.2
	supportSuitabilityGain = 0.15
)

// Defaults applied when an auxiliary input is absent from a feature.
const (
	defaultGovernanceScore  = 0.6
	defaultGrazingIntensity = 0.4
	defaultFireRiskIndex    = 0.5
)

// Tracked quantity names as they appear in report records. Source
// attributes are never overwritten; updates land under the sd_ prefix.
const (
	QuantityBiomassStock      = "biomassStock"
	QuantityFireRiskIndex     = "fireRiskIndex"
	QuantityGrazingCapacity   = "grazingCapacity"
	QuantityWaterAvailability = "waterAvailability"
	QuantitySuitabilityScore  = "suitabilityScore"
)

// OutPrefix marks updated attributes on features.
const OutPrefix = "sd_"

// OutUpdatedAt is the per-feature update timestamp attribute.
const OutUpdatedAt = OutPrefix + "updatedAt"

// Params are the run-level configuration scalars.
type Params struct {
	// RainfallIndex is nominally in [0,1]. Out-of-range values are passed
	// through unrejected; the bounded outputs absorb them.
	RainfallIndex float64
}

// Change holds the before/after pair for one tracked quantity.
type Change struct {
	Old float64 `json:"old"`
	New float64 `json:"new"`
}

// Update is the report entry for one updated feature.
type Update struct {
	ID     string            `json:"id"`
	Fields map[string]Change `json:"fields"`
}

// Skip records a feature the updater could not process.
type Skip struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// trackedKeys are the five source attributes that trigger an update. A
// non-numeric value in any present one skips the whole feature.
var trackedKeys = []string{
	feature.KeyBiomassStock,
	feature.KeyFireRiskIndex,
	feature.KeyGrazableArea,
	feature.KeyRequiredFlowRate,
	feature.KeySuitabilityScore,
}

// Apply runs the stock-flow update on a single feature. It returns the
// report entry when at least one quantity was recomputed, a skip record
// when a tracked attribute is present but non-numeric, or (nil, nil) when
// the feature carries none of the tracked quantities. The feature is only
// mutated on success: new sd_-prefixed attributes plus sd_updatedAt.
func Apply(f *feature.Feature, p Params, updatedAt string) (*Update, *Skip) {
	present := map[string]float64{}
	for _, key := range trackedKeys {
		v, ok, err := f.Numeric(key)
		if err != nil {
			return nil, &Skip{ID: f.ID, Reason: fmt.Sprintf("%s: %v", key, err)}
		}
		if ok {
			present[key] = v
		}
	}
	if len(present) == 0 {
		return nil, nil
	}

	governance := f.NumericOr(feature.KeyGovernanceScore, defaultGovernanceScore)
	grazing := f.NumericOr(feature.KeyGrazingIntensity, defaultGrazingIntensity)
	management := f.NumericOr(feature.KeyManagementCapacity, 0)
	tourism := f.NumericOr(feature.KeyTourismPressure, 0)
	support := f.NumericOr(feature.KeyCommunitySupport, 0)

	fields := map[string]Change{}

	// 1. Biomass stock: growth minus grazing and fire losses, floored at 0.
	var biomassNext float64
	biomass, hasBiomass := present[feature.KeyBiomassStock]
	if hasBiomass {
		fireRisk := f.NumericOr(feature.KeyFireRiskIndex, defaultFireRiskIndex)
		growth := biomass * (baseGrowthRate + governanceGrowthGain*governance)
		grazingLoss := biomass * grazingLossRate * grazing
		fireLoss := biomass * fireLossRate * fireRisk
		biomassNext = round(math.Max(0, biomass+growth-grazingLoss-fireLoss), 2)
		fields[QuantityBiomassStock] = Change{Old: biomass, New: biomassNext}
	}

	// 2. Fire risk: pressure terms push up, governance and management pull
	// down, clamped to [0,1].
	if fireRisk, ok := present[feature.KeyFireRiskIndex]; ok {
		next := round(clamp01(fireRisk+
			grazingRiskGain*grazing+
			tourismRiskGain*tourism-
			governanceRiskCut*governance-
			managementRiskCut*management), 3)
		fields[QuantityFireRiskIndex] = Change{Old: fireRisk, New: next}
	}

	// 3. Grazing capacity: bounded by both grazable area and the updated
	// biomass stock, so it needs both sources.
	if area, ok := present[feature.KeyGrazableArea]; ok && hasBiomass {
		capacity := round(math.Min(capacityPerHectare*area, capacityPerBiomass*biomassNext), 2)
		old := f.NumericOr(OutPrefix+QuantityGrazingCapacity, 0)
		fields[QuantityGrazingCapacity] = Change{Old: old, New: capacity}
	}

	// 4. Water availability, from rainfall, governance and flow demand.
	var water float64
	requiredFlow, hasFlow := present[feature.KeyRequiredFlowRate]
	if hasFlow {
		water = round(clamp01(baseWater+
			rainfallWaterGain*p.RainfallIndex+
			governanceWaterGain*governance+
			flowWaterGain*(1-requiredFlow)), 3)
		old := f.NumericOr(OutPrefix+QuantityWaterAvailability, 0)
		fields[QuantityWaterAvailability] = Change{Old: old, New: water}
	}

	// 5. Suitability, last: depends on the water availability computed above.
	if suitability, ok := present[feature.KeySuitabilityScore]; ok && hasFlow {
		next := round(clamp01(suitability+
			waterSuitabilityGain*(water-requiredFlow)+
			supportSuitabilityGain*support), 3)
		fields[QuantitySuitabilityScore] = Change{Old: suitability, New: next}
	}

	if len(fields) == 0 {
		return nil, nil
	}

	for name, change := range fields {
		f.Properties[OutPrefix+name] = change.New
	}
	f.Properties[OutUpdatedAt] = updatedAt

	return &Update{ID: f.ID, Fields: fields}, nil
}
