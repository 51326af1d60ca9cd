package request

type FundEscrowRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required,max=255"`
}

type ResolveDisputeRequest struct {
	Resolution string `json:"resolution" binding:"required,max=2000"`
}
