package publisher

// Event types published to the settlement stream.
const (
	EventOrderCreated    = "order.created"
	EventOrderStatus     = "order.status_changed"
	EventEscrowHeld      = "escrow.held"
	EventEscrowReleased  = "escrow.released"
	EventEscrowRefunded  = "escrow.refunded"
	EventProofReviewed   = "proof.reviewed"
	EventPayoutRequested = "payout.requested"
	EventPayoutSettled   = "payout.settled"
	EventPayoutRailFail  = "payout.rail_failed"
)

type SettlementEvent struct {
	Type        string  `json:"type"`
	OrderID     string  `json:"order_id,omitempty"`
	OrderNumber string  `json:"order_number,omitempty"`
	CustomerID  string  `json:"customer_id,omitempty"`
	VendorID    string  `json:"vendor_id,omitempty"`
	PayoutID    string  `json:"payout_id,omitempty"`
	ProofID     string  `json:"proof_id,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Status      string  `json:"status,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	OccurredAt  int64   `json:"occurred_at"`
}
