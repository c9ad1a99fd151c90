package settlement

import (
	"context"
	"log/slog"
	"time"
)

// ReleaseWorker periodically resumes escrow releases for delivered orders
// that still hold funds, covering crashes between the delivery confirmation
// and the release fan-out.
type ReleaseWorker struct {
	coordinator *Coordinator
	interval    time.Duration
}

func NewReleaseWorker(coordinator *Coordinator, interval time.Duration) *ReleaseWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReleaseWorker{coordinator: coordinator, interval: interval}
}

func (w *ReleaseWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			released, err := w.coordinator.ResumePendingReleases()
			if err != nil {
				slog.Error("release sweep failed", "error", err)
				continue
			}
			if released > 0 {
				slog.Info("resumed escrow releases", "count", released)
			}
		}
	}
}
