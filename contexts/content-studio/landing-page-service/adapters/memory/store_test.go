package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

func draftPage(id, packID, slug string) entities.Page {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return entities.Page{
		PageID: id,
		PackID: packID,
		Payload: entities.PagePayload{
			Title:    slug,
			Slug:     slug,
			PageType: entities.PageTypeLanding,
			Status:   entities.PageStatusDraft,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func draftEvent(id string, page entities.Page) ports.PageDraftedEvent {
	return ports.PageDraftedEvent{
		EventID:      id,
		EventType:    "landing.page_drafted",
		PageID:       page.PageID,
		PackID:       page.PackID,
		Slug:         page.Payload.Slug,
		PartitionKey: page.PageID,
		OccurredAt:   page.CreatedAt,
	}
}

func TestCreateDraftPagesWritesOutboxEnvelopes(t *testing.T) {
	store := NewStore(nil, nil)
	first := draftPage("p1", "winter-sale", "winter-sale")
	second := draftPage("p2", "winter-sale", "gift-guide")

	err := store.CreateDraftPagesWithOutbox(context.Background(),
		[]entities.Page{first, second},
		[]ports.PageDraftedEvent{draftEvent("e1", first), draftEvent("e2", second)},
	)
	if err != nil {
		t.Fatalf("create pages: %v", err)
	}

	events := store.OutboxEvents()
	if len(events) != 2 {
		t.Fatalf("expected 2 outbox events, got %d", len(events))
	}
	var envelope ports.EventEnvelope
	if err := json.Unmarshal(events[0].Payload, &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.EventID != "e1" || envelope.PartitionKey != "p1" || envelope.SourceService != "landing-page-service" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}

	pages, err := store.ListPages(context.Background(), ports.PageFilter{PackID: "winter-sale"})
	if err != nil || len(pages) != 2 || pages[0].PageID != "p1" {
		t.Fatalf("unexpected listed pages: %+v err=%v", pages, err)
	}
}

func TestCreateDraftPagesIsAllOrNothingOnSlugConflict(t *testing.T) {
	store := NewStore(nil, nil)
	existing := draftPage("p1", "winter-sale", "winter-sale")
	if err := store.CreateDraftPagesWithOutbox(context.Background(),
		[]entities.Page{existing},
		[]ports.PageDraftedEvent{draftEvent("e1", existing)},
	); err != nil {
		t.Fatalf("seed page: %v", err)
	}

	fresh := draftPage("p2", "winter-sale", "fresh")
	clash := draftPage("p3", "winter-sale", "winter-sale")
	err := store.CreateDraftPagesWithOutbox(context.Background(),
		[]entities.Page{fresh, clash},
		[]ports.PageDraftedEvent{draftEvent("e2", fresh), draftEvent("e3", clash)},
	)
	if !errors.Is(err, domainerrors.ErrSlugConflict) {
		t.Fatalf("expected slug conflict, got %v", err)
	}
	if _, err := store.GetPage(context.Background(), "p2"); !errors.Is(err, domainerrors.ErrPageNotFound) {
		t.Fatalf("expected p2 not persisted, got %v", err)
	}
	if len(store.OutboxEvents()) != 1 {
		t.Fatalf("expected outbox untouched")
	}
}

func TestOutboxPendingAndMarkSent(t *testing.T) {
	store := NewStore(nil, nil)
	page := draftPage("p1", "", "solo")
	if err := store.CreateDraftPagesWithOutbox(context.Background(),
		[]entities.Page{page},
		[]ports.PageDraftedEvent{draftEvent("e1", page)},
	); err != nil {
		t.Fatalf("create page: %v", err)
	}
	pending, _ := store.ListPendingOutbox(context.Background(), 10)
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending")
	}
	if err := store.MarkOutboxSent(context.Background(), "e1", time.Now()); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	pending, _ = store.ListPendingOutbox(context.Background(), 10)
	if len(pending) != 0 {
		t.Fatalf("expected no pending after mark sent")
	}
	if err := store.MarkOutboxSent(context.Background(), "missing", time.Now()); !errors.Is(err, domainerrors.ErrRepositoryInvariantBroke) {
		t.Fatalf("expected invariant error, got %v", err)
	}
}

func TestIdempotencyExpiryAndConflict(t *testing.T) {
	store := NewStore(nil, nil)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	record := ports.IdempotencyRecord{
		Key:         "k1",
		RequestHash: "h1",
		Payload:     []byte(`{"ok":true}`),
		ExpiresAt:   now.Add(time.Hour),
	}
	if err := store.Put(context.Background(), record); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(context.Background(), ports.IdempotencyRecord{Key: "k1", RequestHash: "h2"}); !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	got, found, err := store.Get(context.Background(), "k1", now)
	if err != nil || !found || string(got.Payload) != `{"ok":true}` {
		t.Fatalf("unexpected get: %+v found=%v err=%v", got, found, err)
	}
	if _, found, _ := store.Get(context.Background(), "k1", now.Add(2*time.Hour)); found {
		t.Fatalf("expected expired record to be evicted")
	}
}

func TestKitUpsertAndLookup(t *testing.T) {
	store := NewStore([]entities.Kit{{Name: "Shipping Info"}}, nil)
	kit := entities.Kit{
		Name:   "Safety Tips",
		Blocks: entities.RawBlocks{{Type: entities.BlockTypeRichText, Data: map[string]any{"body": "x"}}},
	}
	if err := store.UpsertKit(context.Background(), kit, time.Now()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	kit.Blocks[0].Data["body"] = "mutated"

	got, err := store.GetKit(context.Background(), "Safety Tips")
	if err != nil || got.Blocks[0].Data["body"] != "x" {
		t.Fatalf("unexpected kit: %+v err=%v", got, err)
	}
	kits, _ := store.ListKits(context.Background())
	if len(kits) != 2 || kits[0].Name != "Safety Tips" {
		t.Fatalf("expected kits sorted by name, got %+v", kits)
	}
	if _, err := store.GetKit(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrKitNotFound) {
		t.Fatalf("expected kit not found, got %v", err)
	}
	if err := store.UpsertKit(context.Background(), entities.Kit{Name: " "}, time.Now()); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestBlockIDsAreSequential(t *testing.T) {
	store := NewStore(nil, nil)
	if first, second := store.NewBlockID(), store.NewBlockID(); first != "blk-1" || second != "blk-2" {
		t.Fatalf("unexpected block ids %s %s", first, second)
	}
}

func TestScopedBlockIDsAreIndependent(t *testing.T) {
	store := NewStore(nil, nil)
	winter := store.ScopedBlockIDs("winter-sale")
	launch := store.ScopedBlockIDs("product-launch")
	if got := winter(); got != "blk-winter-sale-1" {
		t.Fatalf("unexpected scoped id %s", got)
	}
	if got := launch(); got != "blk-product-launch-1" {
		t.Fatalf("unexpected scoped id %s", got)
	}
	if got := store.NewBlockID(); got != "blk-1" {
		t.Fatalf("scoped generators must not touch the shared sequence, got %s", got)
	}
}
