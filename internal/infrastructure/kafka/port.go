package publisher

// SettlementPublisher is what usecases depend on; the kafka writer satisfies
// it in production and tests substitute a recorder.
type SettlementPublisher interface {
	PublishSettlement(event SettlementEvent) error
}
