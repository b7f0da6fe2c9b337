package model

// PointsSummary aggregates a user's GreenPoints ledger.
// Invariant maintained by the store: TotalEarned - TotalSpent == Current.
type PointsSummary struct {
	Current     int64
	TotalEarned int64
	TotalSpent  int64
}
