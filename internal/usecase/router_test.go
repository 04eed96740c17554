package usecase

import (
	"context"
	"testing"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
)

func sampleSignal() models.TradeSignal {
	return models.TradeSignal{
		Symbol:    "EURUSD",
		Action:    models.ActionBuy,
		Volume:    1.0,
		Price:     1.0850,
		SL:        1.0800,
		TP:        1.0950,
		Comment:   "original",
		Timestamp: "2026-01-02T03:04:05Z",
	}
}

func TestRouteScalesVolumeAndRewritesProvenance(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.accounts.Register("P1", models.PlatformMT5, models.AccountProvider, "", &fakeChannel{})
	copyer := &fakeChannel{}
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", copyer)
	f.rels.Add("P1", "C1", 0.5)

	f.router.Route(ctx, "P1", sampleSignal())

	got := copyer.messages()
	if len(got) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(got))
	}
	msg := decodeExecuteTrade(t, got[0])
	if msg.TradeData.Volume != 0.5 {
		t.Fatalf("expected volume 0.5, got %v", msg.TradeData.Volume)
	}
	if msg.TradeData.Comment != "Copy from P1" {
		t.Fatalf("unexpected comment %q", msg.TradeData.Comment)
	}
	if msg.TradeData.Timestamp == "2026-01-02T03:04:05Z" || msg.TradeData.Timestamp == "" {
		t.Fatalf("timestamp was not refreshed: %q", msg.TradeData.Timestamp)
	}
	if msg.TradeData.Symbol != "EURUSD" || msg.TradeData.Action != models.ActionBuy {
		t.Fatalf("trade fields mangled: %+v", msg.TradeData)
	}
}

func TestRouteZeroMultiplierIsHonored(t *testing.T) {
	f := newFixture()
	copyer := &fakeChannel{}
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", copyer)
	f.rels.Add("P1", "C1", 0)

	f.router.Route(context.Background(), "P1", sampleSignal())

	got := copyer.messages()
	if len(got) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(got))
	}
	if msg := decodeExecuteTrade(t, got[0]); msg.TradeData.Volume != 0 {
		t.Fatalf("expected volume 0, got %v", msg.TradeData.Volume)
	}
}

func TestRouteSkipsOfflineAndUnknownCopyers(t *testing.T) {
	f := newFixture()
	offline := &fakeChannel{}
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", offline)
	f.accounts.MarkDisconnected(offline)
	f.rels.Add("P1", "C1", 1.0)
	f.rels.Add("P1", "ghost", 1.0)

	f.router.Route(context.Background(), "P1", sampleSignal())

	if got := offline.messages(); len(got) != 0 {
		t.Fatalf("offline copyer received %d messages", len(got))
	}
	if got := f.slots.commands("C1"); len(got) != 0 {
		t.Fatalf("offline copyer got %d file-drop commands", len(got))
	}
}

func TestRouteSkipsInactiveRelationships(t *testing.T) {
	f := newFixture()
	copyer := &fakeChannel{}
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", copyer)
	f.rels.Add("P1", "C1", 1.0)
	if n := f.rels.Deactivate("P1", "C1"); n != 1 {
		t.Fatalf("expected to deactivate 1 link, got %d", n)
	}

	f.router.Route(context.Background(), "P1", sampleSignal())

	if got := copyer.messages(); len(got) != 0 {
		t.Fatalf("inactive relationship still delivered %d messages", len(got))
	}
}

func TestRouteDeliveryFailureDoesNotStopFanOut(t *testing.T) {
	f := newFixture()
	broken := &fakeChannel{fail: true}
	healthy := &fakeChannel{}
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", broken)
	f.accounts.Register("C2", models.PlatformCTrader, models.AccountCopyer, "", healthy)
	f.rels.Add("P1", "C1", 1.0)
	f.rels.Add("P1", "C2", 2.0)

	f.router.Route(context.Background(), "P1", sampleSignal())

	got := healthy.messages()
	if len(got) != 1 {
		t.Fatalf("expected delivery to survive earlier failure, got %d messages", len(got))
	}
	if msg := decodeExecuteTrade(t, got[0]); msg.TradeData.Volume != 2.0 {
		t.Fatalf("expected volume 2.0, got %v", msg.TradeData.Volume)
	}
}

func TestRouteDuplicateRelationshipsFireTwice(t *testing.T) {
	f := newFixture()
	copyer := &fakeChannel{}
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", copyer)
	f.rels.Add("P1", "C1", 1.0)
	f.rels.Add("P1", "C1", 3.0)

	f.router.Route(context.Background(), "P1", sampleSignal())

	got := copyer.messages()
	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries for duplicate links, got %d", len(got))
	}
	first := decodeExecuteTrade(t, got[0])
	second := decodeExecuteTrade(t, got[1])
	if first.TradeData.Volume != 1.0 || second.TradeData.Volume != 3.0 {
		t.Fatalf("table order lost: volumes %v, %v", first.TradeData.Volume, second.TradeData.Volume)
	}
}

func TestRouteFallsBackToFileDropWithoutChannel(t *testing.T) {
	f := newFixture()
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", nil)
	f.rels.Add("P1", "C1", 1.5)

	f.router.Route(context.Background(), "P1", sampleSignal())

	got := f.slots.commands("C1")
	if len(got) != 1 {
		t.Fatalf("expected 1 file-drop command, got %d", len(got))
	}
	if msg := decodeExecuteTrade(t, got[0]); msg.TradeData.Volume != 1.5 {
		t.Fatalf("expected volume 1.5, got %v", msg.TradeData.Volume)
	}
}

func TestRouteNotifiesObserversPerCopy(t *testing.T) {
	f := newFixture()
	observer := &fakeChannel{}
	f.hub.Add(observer)
	f.accounts.Register("C1", models.PlatformMT5, models.AccountCopyer, "", &fakeChannel{})
	f.accounts.Register("C2", models.PlatformMT5, models.AccountCopyer, "", &fakeChannel{})
	f.rels.Add("P1", "C1", 1.0)
	f.rels.Add("P1", "C2", 1.0)

	f.router.Route(context.Background(), "P1", sampleSignal())

	got := observer.messages()
	if len(got) != 2 {
		t.Fatalf("expected 2 observer events, got %d", len(got))
	}
	for _, raw := range got {
		if typ := envelopeType(t, raw); typ != models.TypeTradeCopied {
			t.Fatalf("unexpected event type %q", typ)
		}
	}
}
