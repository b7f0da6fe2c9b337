package dto

// BalanceResponse represents the GreenPoints ledger snapshot.
type BalanceResponse struct {
	Current     int64 `json:"current"`
	TotalEarned int64 `json:"total_earned"`
	TotalSpent  int64 `json:"total_spent"`
}

// CreditRequest awards points to a user.
type CreditRequest struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}
