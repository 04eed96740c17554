package filedrop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	internalrepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/usecase"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
)

type pollerFixture struct {
	store    *SlotStore
	poller   *Poller
	accounts *internalrepo.AccountRegistry
	rels     *internalrepo.RelationshipTable
	dir      string
}

func newPollerFixture(t *testing.T) *pollerFixture {
	t.Helper()
	dir := t.TempDir()
	store, err := NewSlotStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	log := logger.Nop()
	m := drepo.NopMetrics{}
	accounts := internalrepo.NewAccountRegistry()
	rels := internalrepo.NewRelationshipTable()
	hub := usecase.NewObserverHub(log, m)
	delivery := usecase.NewDeliveryService(store, m)
	router := usecase.NewRouter(accounts, rels, delivery, hub, nil, m, log)
	bridge := usecase.NewBridge(accounts, rels, router, hub, m, log)

	return &pollerFixture{
		store:    store,
		poller:   NewPoller(store, bridge, 0, 0, m, log),
		accounts: accounts,
		rels:     rels,
		dir:      dir,
	}
}

func (f *pollerFixture) seedSlot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed slot %s: %v", name, err)
	}
	return path
}

func mustBeEmpty(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("slot %s not truncated: %q", path, data)
	}
}

func TestCycleRegistersAccountAndTruncatesSlot(t *testing.T) {
	f := newPollerFixture(t)
	path := f.seedSlot(t, "acct1_in.txt",
		`{"type":"register","account_id":"A1","platform":"mt5","account_type":"copyer"}`)

	if err := f.poller.Cycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}

	acc, ok := f.accounts.Get("A1")
	if !ok || !acc.Connected {
		t.Fatalf("account not registered live: %+v", acc)
	}
	if acc.Channel != nil {
		t.Fatal("polled registration must not bind a live channel")
	}
	mustBeEmpty(t, path)
}

func TestCycleIgnoresEmptySlots(t *testing.T) {
	f := newPollerFixture(t)
	f.seedSlot(t, "acct1_in.txt", "  \n")

	if err := f.poller.Cycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if got := len(f.accounts.List()); got != 0 {
		t.Fatalf("whitespace slot produced %d accounts", got)
	}
}

func TestCycleIsolatesMalformedSlot(t *testing.T) {
	f := newPollerFixture(t)
	bad := f.seedSlot(t, "bad_in.txt", `{"type":"register","account_id":`)
	good := f.seedSlot(t, "good_in.txt",
		`{"type":"register","account_id":"A2","platform":"ctrader","account_type":"provider"}`)

	if err := f.poller.Cycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}

	if _, ok := f.accounts.Get("A2"); !ok {
		t.Fatal("healthy slot was not processed")
	}
	// The malformed slot is truncated too; replaying it next cycle would
	// fail the same way.
	mustBeEmpty(t, bad)
	mustBeEmpty(t, good)
}

func TestCycleRoutesSignalToCommandSlot(t *testing.T) {
	f := newPollerFixture(t)
	f.accounts.Register("P1", models.PlatformMT5, models.AccountProvider, "", nil)
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", nil)

	f.rels.Add("P1", "C1", 2.0)

	f.seedSlot(t, "p1_in.txt",
		`{"type":"trade_signal","account_id":"P1","trade_data":{"symbol":"EURUSD","action":"BUY","volume":0.5}}`)

	if err := f.poller.Cycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}

	data, err := os.ReadFile(f.store.CommandPath("C1"))
	if err != nil {
		t.Fatalf("no command written for copyer: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty command slot")
	}
}
