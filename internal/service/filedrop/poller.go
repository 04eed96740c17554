package filedrop

import (
	"bytes"
	"context"
	"time"

	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/usecase"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
)

// Poller drives the inbound half of the file-drop transport: every interval
// it scans for pending slots and feeds each one through the same bridge
// entry point live connections use. A bad slot is logged and skipped; the
// loop itself never stops, it only switches to the longer backoff after a
// scan failure.
type Poller struct {
	slots    *SlotStore
	bridge   *usecase.Bridge
	interval time.Duration
	backoff  time.Duration

	metrics drepo.Metrics
	log     *logger.Logger
}

// NewPoller creates the poller. Zero durations fall back to 1s polling with
// a 5s error backoff.
func NewPoller(slots *SlotStore, bridge *usecase.Bridge, interval, backoff time.Duration, metrics drepo.Metrics, log *logger.Logger) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	if backoff <= 0 {
		backoff = 5 * time.Second
	}
	return &Poller{
		slots:    slots,
		bridge:   bridge,
		interval: interval,
		backoff:  backoff,
		metrics:  metrics,
		log:      log,
	}
}

// Start blocks until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	p.log.Info("file-drop poller starting",
		logger.String("dir", p.slots.Dir()),
		logger.Duration("interval_ms", p.interval),
	)

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("file-drop poller stopped")
			return
		case <-timer.C:
		}

		wait := p.interval
		if err := p.Cycle(ctx); err != nil {
			p.log.Error("poll cycle failed", logger.Error(err))
			p.metrics.RecordError("poll_cycle")
			wait = p.backoff
		}
		timer.Reset(wait)
	}
}

// Cycle processes every pending slot once. Slot-level failures are handled
// inside; only a scan failure bubbles up and triggers the long backoff.
func (p *Poller) Cycle(ctx context.Context) error {
	start := time.Now()

	paths, err := p.slots.PendingInputs()
	if err != nil {
		return err
	}
	for _, path := range paths {
		p.processSlot(ctx, path)
	}

	p.metrics.RecordPollCycle(time.Since(start).Seconds())
	return nil
}

func (p *Poller) processSlot(ctx context.Context, path string) {
	data, err := p.slots.Read(path)
	if err != nil {
		p.log.Warn("slot read failed", logger.String("slot", path), logger.Error(err))
		return
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return
	}

	if err := p.bridge.HandlePlatformMessage(ctx, data, nil); err != nil {
		p.log.Error("slot message discarded", logger.String("slot", path), logger.Error(err))
		p.metrics.RecordError("slot_message")
	}

	// Clear even after a handling failure: replaying a malformed message
	// next cycle would fail the same way.
	if err := p.slots.Clear(path); err != nil {
		p.log.Warn("slot clear failed", logger.String("slot", path), logger.Error(err))
	}
}
