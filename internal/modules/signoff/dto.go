package signoff

type CompleteRequest struct {
	Notes  string   `json:"notes"`
	Photos []string `json:"photos"`
}

type ApproveRequest struct {
	Notes  string `json:"notes"`
	Rating *int   `json:"rating"`
}

type DisputeRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ResolveRequest struct {
	Resolution  string  `json:"resolution" binding:"required"`
	FinalStatus *string `json:"final_status"`
	Notes       string  `json:"notes"`
}
