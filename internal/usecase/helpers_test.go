package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	internalrepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
)

// fakeChannel records sends and can be flipped to fail like a dead socket.
type fakeChannel struct {
	mu   sync.Mutex
	sent [][]byte
	fail bool
}

func (c *fakeChannel) Send(ctx context.Context, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("channel gone")
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	c.sent = append(c.sent, cp)
	return nil
}

func (c *fakeChannel) messages() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.sent))
	copy(out, c.sent)
	return out
}

// fakeSlots records outbound command writes per account.
type fakeSlots struct {
	mu     sync.Mutex
	writes map[string][][]byte
	fail   bool
}

func newFakeSlots() *fakeSlots {
	return &fakeSlots{writes: make(map[string][][]byte)}
}

func (s *fakeSlots) WriteCommand(accountID string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("disk full")
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.writes[accountID] = append(s.writes[accountID], cp)
	return nil
}

func (s *fakeSlots) commands(accountID string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[accountID]
}

type fixture struct {
	accounts *internalrepo.AccountRegistry
	rels     *internalrepo.RelationshipTable
	hub      *ObserverHub
	slots    *fakeSlots
	router   *Router
	bridge   *Bridge
}

func newFixture() *fixture {
	log := logger.Nop()
	m := drepo.NopMetrics{}
	accounts := internalrepo.NewAccountRegistry()
	rels := internalrepo.NewRelationshipTable()
	hub := NewObserverHub(log, m)
	slots := newFakeSlots()
	delivery := NewDeliveryService(slots, m)
	router := NewRouter(accounts, rels, delivery, hub, nil, m, log)
	bridge := NewBridge(accounts, rels, router, hub, m, log)
	return &fixture{
		accounts: accounts,
		rels:     rels,
		hub:      hub,
		slots:    slots,
		router:   router,
		bridge:   bridge,
	}
}

func decodeExecuteTrade(t *testing.T, payload []byte) models.ExecuteTradeMessage {
	t.Helper()
	var msg models.ExecuteTradeMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		t.Fatalf("decode execute_trade: %v", err)
	}
	if msg.Type != models.TypeExecuteTrade {
		t.Fatalf("expected execute_trade, got %q", msg.Type)
	}
	return msg
}

func envelopeType(t *testing.T, payload []byte) string {
	t.Helper()
	var env models.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env.Type
}
