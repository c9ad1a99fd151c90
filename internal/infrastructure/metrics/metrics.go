package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SettlementMetrics covers the escrow pipeline end to end: order intake,
// escrow movement, proof review and payouts.
type SettlementMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec
	OrderStatusChangedTotal  prometheus.CounterVec

	EscrowHeldAmountTotal     prometheus.CounterVec
	EscrowReleasedAmountTotal prometheus.CounterVec
	EscrowRefundedAmountTotal prometheus.CounterVec
	EscrowHeldGauge           prometheus.Gauge

	ProofsUploadedTotal  prometheus.CounterVec
	ProofsReviewedTotal  prometheus.CounterVec
	ProofReviewLatency   prometheus.Histogram
	ReuploadExpiredTotal prometheus.Counter

	PayoutsRequestedTotal   prometheus.CounterVec
	PayoutsAmountTotal      prometheus.CounterVec
	PayoutRailFailuresTotal prometheus.Counter

	SettlementErrorsTotal prometheus.CounterVec
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_orders_created_total",
				Help: "Orders accepted into escrow settlement",
			},
			[]string{"shipping_method"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_orders_created_amount_total",
				Help: "Total escrow amount of created orders",
			},
			[]string{"shipping_method"},
		),

		OrderStatusChangedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_order_status_changed_total",
				Help: "Order status transitions",
			},
			[]string{"from", "to"},
		),

		EscrowHeldAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_escrow_held_amount_total",
				Help: "Amounts placed on escrow hold",
			},
			[]string{"currency"},
		),

		EscrowReleasedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_escrow_released_amount_total",
				Help: "Amounts released from escrow to vendor available balances",
			},
			[]string{"currency"},
		),

		EscrowRefundedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_escrow_refunded_amount_total",
				Help: "Amounts refunded from escrow back to customers",
			},
			[]string{"currency"},
		),

		EscrowHeldGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "settlement_escrow_held_open",
				Help: "Current number of orders with escrow held",
			},
		),

		ProofsUploadedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_proofs_uploaded_total",
				Help: "Delivery proof uploads and reuploads",
			},
			[]string{"kind"},
		),

		ProofsReviewedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_proofs_reviewed_total",
				Help: "Admin proof review decisions",
			},
			[]string{"decision"},
		),

		ProofReviewLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_proof_review_latency_seconds",
				Help:    "Time between proof upload and admin decision",
				Buckets: prometheus.ExponentialBuckets(60, 2, 12),
			},
		),

		ReuploadExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_proof_reupload_expired_total",
				Help: "Reupload attempts rejected because the window expired",
			},
		),

		PayoutsRequestedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_payouts_requested_total",
				Help: "Vendor payout requests by outcome",
			},
			[]string{"status"},
		),

		PayoutsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_payouts_amount_total",
				Help: "Total amount debited for payouts",
			},
			[]string{"status"},
		),

		PayoutRailFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_payout_rail_failures_total",
				Help: "Payment rail calls that failed after the balance debit",
			},
		),

		SettlementErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_errors_total",
				Help: "Unexpected settlement errors by operation",
			},
			[]string{"operation"},
		),
	}
}
