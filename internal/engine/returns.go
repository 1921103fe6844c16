package engine

import (
	"math"
	"time"

	"github.com/patrimonio/wealth-backend/internal/model"
)

// minYearsHeld excludes holdings younger than ~4 days from CAGR;
// annualizing over shorter periods produces explosive figures.
const minYearsHeld = 0.01

const daysPerYear = 365.25

// CAGR computes the compound annual growth rate, as a percentage, of a
// position bought at purchasePrice on purchaseDate and worth
// currentValue at asOf. The second return is false when the figure is
// undefined: non-positive cost basis, missing purchase date, or a
// holding period at or below the minimum threshold.
//
// A non-positive current value clamps to -100 (total loss) because the
// underlying formula raises the value ratio to a fractional exponent,
// which is undefined for negative bases.
func CAGR(currentValue, purchasePrice float64, purchaseDate, asOf time.Time) (float64, bool) {
	if purchasePrice <= 0 || purchaseDate.IsZero() {
		return 0, false
	}

	yearsHeld := asOf.Sub(purchaseDate).Hours() / 24 / daysPerYear
	if yearsHeld <= minYearsHeld {
		return 0, false
	}

	if currentValue <= 0 {
		return -100, true
	}

	return (math.Pow(currentValue/purchasePrice, 1/yearsHeld) - 1) * 100, true
}

// AssetCAGR computes the CAGR of an asset from its current value and
// purchase figures. Undefined when the asset has no purchase date.
func AssetCAGR(a model.Asset, ctx Context) (float64, bool) {
	if a.PurchaseDate == nil {
		return 0, false
	}
	return CAGR(AssetValue(a, ctx), a.PurchasePrice, *a.PurchaseDate, ctx.Now)
}

// ValuedAsset pairs an asset's computed value with its computed CAGR
// for weighting. HasCAGR false marks an undefined return.
type ValuedAsset struct {
	Value   float64
	CAGR    float64
	HasCAGR bool
}

// WeightedAverageCAGR computes the value-weighted mean CAGR over the
// given assets. Only assets with a defined CAGR and a positive value
// participate; each weight is the asset's share of the participating
// total. The second return is false when no asset qualifies.
//
// The same function serves per-category and portfolio-wide averages;
// callers choose the input subset.
func WeightedAverageCAGR(assets []ValuedAsset) (float64, bool) {
	var total float64
	for _, a := range assets {
		if a.HasCAGR && a.Value > 0 {
			total += a.Value
		}
	}
	if total <= 0 {
		return 0, false
	}

	var weighted float64
	for _, a := range assets {
		if a.HasCAGR && a.Value > 0 {
			weighted += a.CAGR * (a.Value / total)
		}
	}
	return weighted, true
}
