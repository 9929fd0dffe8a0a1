package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/contexts/content-studio/landing-page-service/adapters/memory"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

type recordingPublisher struct {
	topics []string
	events []ports.EventEnvelope
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func seedDraft(t *testing.T, store *memory.Store) {
	t.Helper()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	page := entities.Page{PageID: "p1", PackID: "winter-sale", Payload: entities.PagePayload{Slug: "winter-sale"}, CreatedAt: now}
	event := ports.PageDraftedEvent{
		EventID:      "e1",
		EventType:    "landing.page_drafted",
		PageID:       "p1",
		PackID:       "winter-sale",
		Slug:         "winter-sale",
		PartitionKey: "p1",
		OccurredAt:   now,
	}
	if err := store.CreateDraftPagesWithOutbox(context.Background(), []entities.Page{page}, []ports.PageDraftedEvent{event}); err != nil {
		t.Fatalf("seed draft: %v", err)
	}
}

func TestOutboxRelayPublishesAndMarksSent(t *testing.T) {
	store := memory.NewStore(nil, nil)
	seedDraft(t, store)
	publisher := &recordingPublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay: %v", err)
	}
	if len(publisher.events) != 1 || publisher.topics[0] != "landing.page_drafted" {
		t.Fatalf("unexpected publish: %+v %+v", publisher.topics, publisher.events)
	}
	if publisher.events[0].EventID != "e1" || publisher.events[0].PartitionKey != "p1" {
		t.Fatalf("unexpected envelope: %+v", publisher.events[0])
	}
	pending, _ := store.ListPendingOutbox(context.Background(), 10)
	if len(pending) != 0 {
		t.Fatalf("expected outbox drained")
	}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("second relay: %v", err)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("sent rows must not be republished")
	}
}

func TestOutboxRelayKeepsRowsPendingOnPublishFailure(t *testing.T) {
	store := memory.NewStore(nil, nil)
	seedDraft(t, store)
	relay := OutboxRelay{Outbox: store, Publisher: &recordingPublisher{err: errors.New("broker down")}}

	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected publish error")
	}
	pending, _ := store.ListPendingOutbox(context.Background(), 10)
	if len(pending) != 1 {
		t.Fatalf("expected row to stay pending, got %d", len(pending))
	}
}
