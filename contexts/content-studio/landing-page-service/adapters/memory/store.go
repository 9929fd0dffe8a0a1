package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/domain/services"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

// Store is an in-memory adapter implementing landing page ports for local
// runtime and tests. It is not intended as production persistence.
type Store struct {
	mu          sync.RWMutex
	kits        map[string]storedKit
	pages       map[string]entities.Page
	pageOrder   []string
	slugs       map[string]string
	idempotency map[string]ports.IdempotencyRecord
	outbox      map[string]ports.OutboxMessage
	outboxOrder []string
	outboxSent  map[string]time.Time
	sequence    uint64
	blockSeq    uint64
	logger      *slog.Logger
}

type storedKit struct {
	kit       entities.Kit
	updatedAt time.Time
}

// NewStore seeds the kit library and initializes page/outbox state.
func NewStore(seedKits []entities.Kit, logger *slog.Logger) *Store {
	kits := make(map[string]storedKit, len(seedKits))
	for _, kit := range seedKits {
		kits[kit.Name] = storedKit{kit: services.CloneKit(kit)}
	}
	return &Store{
		kits:        kits,
		pages:       make(map[string]entities.Page),
		pageOrder:   make([]string, 0),
		slugs:       make(map[string]string),
		idempotency: make(map[string]ports.IdempotencyRecord),
		outbox:      make(map[string]ports.OutboxMessage),
		outboxOrder: make([]string, 0),
		outboxSent:  make(map[string]time.Time),
		logger:      application.ResolveLogger(logger),
	}
}

func (s *Store) ListKits(_ context.Context) ([]entities.Kit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Kit, 0, len(s.kits))
	for _, item := range s.kits {
		items = append(items, services.CloneKit(item.kit))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) GetKit(_ context.Context, name string) (entities.Kit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.kits[name]
	if !ok {
		return entities.Kit{}, domainerrors.ErrKitNotFound
	}
	return services.CloneKit(item.kit), nil
}

func (s *Store) UpsertKit(_ context.Context, kit entities.Kit, now time.Time) error {
	if strings.TrimSpace(kit.Name) == "" {
		return domainerrors.ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kits[kit.Name] = storedKit{kit: services.CloneKit(kit), updatedAt: now.UTC()}
	s.logger.Debug("kit upserted in memory store",
		"event", "memory_upsert_kit",
		"module", "content-studio/landing-page-service",
		"layer", "adapter",
		"kit_name", kit.Name,
		"block_count", len(kit.Blocks),
	)
	return nil
}

func (s *Store) CreateDraftPagesWithOutbox(
	_ context.Context,
	pages []entities.Page,
	events []ports.PageDraftedEvent,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before touching state so pages and outbox rows
	// are written together or not at all.
	batchSlugs := make(map[string]struct{}, len(pages))
	for _, page := range pages {
		if _, exists := s.pages[page.PageID]; exists {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		slug := page.Payload.Slug
		if _, exists := s.slugs[slug]; exists {
			return fmt.Errorf("%w: %s", domainerrors.ErrSlugConflict, slug)
		}
		if _, exists := batchSlugs[slug]; exists {
			return fmt.Errorf("%w: %s", domainerrors.ErrSlugConflict, slug)
		}
		batchSlugs[slug] = struct{}{}
	}
	messages := make([]ports.OutboxMessage, 0, len(events))
	for _, event := range events {
		if _, exists := s.outbox[event.EventID]; exists {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		envelope, err := application.BuildPageDraftedEnvelope(event)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(envelope)
		if err != nil {
			return err
		}
		messages = append(messages, ports.OutboxMessage{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      payload,
			CreatedAt:    event.OccurredAt.UTC(),
		})
	}

	for _, page := range pages {
		s.pages[page.PageID] = page
		s.pageOrder = append(s.pageOrder, page.PageID)
		s.slugs[page.Payload.Slug] = page.PageID
	}
	for _, message := range messages {
		s.outbox[message.OutboxID] = message
		s.outboxOrder = append(s.outboxOrder, message.OutboxID)
	}

	s.logger.Info("draft pages and outbox persisted in memory store",
		"event", "memory_create_draft_pages_with_outbox",
		"module", "content-studio/landing-page-service",
		"layer", "adapter",
		"page_count", len(pages),
		"outbox_count", len(messages),
	)
	return nil
}

func (s *Store) GetPage(_ context.Context, pageID string) (entities.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.pages[pageID]
	if !ok {
		return entities.Page{}, domainerrors.ErrPageNotFound
	}
	return page, nil
}

func (s *Store) ListPages(_ context.Context, filter ports.PageFilter) ([]entities.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	items := make([]entities.Page, 0)
	for _, id := range s.pageOrder {
		page := s.pages[id]
		if filter.PackID != "" && page.PackID != filter.PackID {
			continue
		}
		items = append(items, page)
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	// Expired keys are lazily evicted on read.
	if !record.ExpiresAt.IsZero() && now.After(record.ExpiresAt) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	record.Payload = append([]byte(nil), record.Payload...)
	return record, true, nil
}

func (s *Store) Put(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.idempotency[record.Key]; ok {
		if existing.RequestHash != record.RequestHash {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	record.Payload = append([]byte(nil), record.Payload...)
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	messages := make([]ports.OutboxMessage, 0, limit)
	for _, id := range s.outboxOrder {
		if _, sent := s.outboxSent[id]; sent {
			continue
		}
		if msg, ok := s.outbox[id]; ok {
			messages = append(messages, msg)
		}
		if len(messages) >= limit {
			break
		}
	}
	return messages, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("lp-%d", value), nil
}

func (s *Store) NewBlockID() string {
	value := atomic.AddUint64(&s.blockSeq, 1)
	return fmt.Sprintf("blk-%d", value)
}

// ScopedBlockIDs yields blk-<scope>-1, blk-<scope>-2, ... independent of the
// shared block sequence.
func (s *Store) ScopedBlockIDs(scope string) entities.IDFunc {
	return entities.SequentialIDs("blk-" + scope)
}

func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, id := range s.outboxOrder {
		if evt, ok := s.outbox[id]; ok {
			events = append(events, evt)
		}
	}
	return events
}
