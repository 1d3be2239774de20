package bid

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Notes  string  `json:"notes"`
}
