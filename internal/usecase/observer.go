package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
)

// ObserverHub fans state-change events out to monitor connections.
// Best effort: connections whose send fails are pruned after the broadcast
// pass completes, and events are never buffered or replayed for monitors
// that connect later.
type ObserverHub struct {
	mu    sync.Mutex
	conns map[models.Channel]struct{}

	log     *logger.Logger
	metrics drepo.Metrics
}

// NewObserverHub creates an empty hub.
func NewObserverHub(log *logger.Logger, metrics drepo.Metrics) *ObserverHub {
	return &ObserverHub{
		conns:   make(map[models.Channel]struct{}),
		log:     log,
		metrics: metrics,
	}
}

// Add registers a monitor connection.
func (h *ObserverHub) Add(ch models.Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[ch] = struct{}{}
	h.metrics.SetObservers(len(h.conns))
}

// Remove drops a monitor connection, typically on close.
func (h *ObserverHub) Remove(ch models.Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, ch)
	h.metrics.SetObservers(len(h.conns))
}

// Count reports currently registered monitor connections.
func (h *ObserverHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Notify broadcasts one event to every monitor connection. Failed sends are
// collected during the pass and pruned afterwards, so the set is never
// mutated while it is being walked.
func (h *ObserverHub) Notify(ctx context.Context, kind string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error("encode observer event", logger.String("kind", kind), logger.Error(err))
		h.metrics.RecordError("observer_encode")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var dead []models.Channel
	for ch := range h.conns {
		if err := ch.Send(ctx, payload); err != nil {
			dead = append(dead, ch)
		}
	}
	for _, ch := range dead {
		delete(h.conns, ch)
	}
	if len(dead) > 0 {
		h.log.Info("pruned dead monitor connections", logger.Int("count", len(dead)))
	}

	h.metrics.RecordObserverEvent(kind)
	h.metrics.SetObservers(len(h.conns))
}
