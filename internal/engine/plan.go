package engine

import "github.com/patrimonio/wealth-backend/internal/model"

// PlanFigures are the live forecast figures a plan snapshot is created
// from, or compared against: the three standard-horizon projections and
// the portfolio total, all computed for "now".
type PlanFigures struct {
	Projected3M float64 `json:"projected3m"`
	Projected6M float64 `json:"projected6m"`
	Projected1Y float64 `json:"projected1y"`
	TotalValue  float64 `json:"totalValue"`
}

// PlanDiff reports live minus snapshot per figure. A nil field means
// the snapshot never recorded that figure, so no delta exists. The
// sign is kept as computed: positive means the live plan improved on
// the snapshot, negative means it regressed.
type PlanDiff struct {
	Projected3M *float64 `json:"projected3m"`
	Projected6M *float64 `json:"projected6m"`
	Projected1Y *float64 `json:"projected1y"`
	TotalValue  *float64 `json:"totalValue"`
}

// DiffPlan compares a stored snapshot against live figures. Comparing a
// snapshot against the exact figures it was created from yields all
// zero deltas.
func DiffPlan(snapshot model.PlanSnapshot, live PlanFigures) PlanDiff {
	return PlanDiff{
		Projected3M: diffAgainst(snapshot.Projected3M, live.Projected3M),
		Projected6M: diffAgainst(snapshot.Projected6M, live.Projected6M),
		Projected1Y: diffAgainst(snapshot.Projected1Y, live.Projected1Y),
		TotalValue:  diffAgainst(snapshot.TotalValueAtSnapshot, live.TotalValue),
	}
}

func diffAgainst(stored *float64, live float64) *float64 {
	if stored == nil {
		return nil
	}
	d := live - *stored
	return &d
}
