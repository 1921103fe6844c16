package engine

import (
	"math"
	"time"

	"github.com/patrimonio/wealth-backend/internal/model"
)

// projectionDaysPerYear is the convention used for compounding, distinct
// from the 365.25 used when annualizing realized returns.
const projectionDaysPerYear = 365

// ProjectAssetValue projects a single asset's value to targetDate.
//
// The base is the asset's current value. Future transactions linked to
// the asset, dated after the context clock and at or before the target,
// shift the base by the negated sum of their amounts: a planned debit
// (negative cashflow, e.g. a purchase top-up) increases the asset's
// projected value. Cash-only transactions (AffectsAssetValue false) are
// skipped. The shifted base then compounds at the asset's effective
// annual rate over the days to target; a target before the clock yields
// a discount, and a target equal to the clock leaves the base untouched.
func ProjectAssetValue(a model.Asset, ctx Context, transactions []model.Transaction, targetDate time.Time) float64 {
	base := AssetValue(a, ctx)
	delta := assetTransactionDelta(a.ID, transactions, ctx.Now, targetDate)

	days := targetDate.Sub(ctx.Now).Hours() / 24
	growth := math.Pow(1+effectiveRate(a), days/projectionDaysPerYear)

	return (base + delta) * growth
}

// assetTransactionDelta is the negated sum of future value-affecting
// transaction amounts linked to the asset within (asOf, targetDate].
func assetTransactionDelta(assetID string, transactions []model.Transaction, asOf, targetDate time.Time) float64 {
	var delta float64
	for _, tx := range transactions {
		if tx.AssetID == nil || *tx.AssetID != assetID {
			continue
		}
		if !tx.AffectsAssetValue {
			continue
		}
		if tx.Date.After(asOf) && !tx.Date.After(targetDate) {
			delta -= tx.Amount
		}
	}
	return delta
}

// effectiveRate resolves an asset's annual growth rate as a fraction:
// the configured percentage (default 5), negated for depreciating
// assets, zero when appreciation is switched off.
func effectiveRate(a model.Asset) float64 {
	if !a.ConsiderAppreciation {
		return 0
	}
	rate := model.DefaultAnnualRatePercent
	if a.AnnualRatePercent != nil {
		rate = *a.AnnualRatePercent
	}
	if a.AppreciationType == model.Depreciates {
		rate = -rate
	}
	return rate / 100
}

// ProjectPortfolioValue projects the whole portfolio to targetDate:
// the sum of every non-InRecovery asset's projection plus the cash
// position carried to that date. Cash is never compounded, only
// carried; only assets compound.
//
// Future transactions that are linked to an asset and affect its value
// are excluded from the cash position, because their amounts are
// already folded into the asset projections. Counting them twice would
// move a planned purchase through both the cash ledger and the asset.
func ProjectPortfolioValue(assets []model.Asset, ctx Context, transactions []model.Transaction, targetDate time.Time) float64 {
	var total float64
	for _, a := range assets {
		if a.Status == model.StatusInRecovery {
			continue
		}
		total += ProjectAssetValue(a, ctx, transactions, targetDate)
	}

	cash := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.AssetID != nil && tx.AffectsAssetValue && tx.Date.After(ctx.Now) {
			continue
		}
		cash = append(cash, tx)
	}

	return total + CashPositionAt(cash, targetDate)
}
