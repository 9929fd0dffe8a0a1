package ports

import (
	"context"
	"time"

	contractsv1 "storefront/contracts/gen/events/v1"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
)

// Catalog is read-only access to the template library and campaign packs.
type Catalog interface {
	GetTemplate(templateID string) (entities.Template, bool)
	ListTemplates() []entities.Template
	GetPack(packID string) (entities.CampaignPack, bool)
	ListPacks() []entities.CampaignPack
}

// KitRepository stores reusable content kits supplied by merchants.
type KitRepository interface {
	ListKits(ctx context.Context) ([]entities.Kit, error)
	GetKit(ctx context.Context, name string) (entities.Kit, error)
	UpsertKit(ctx context.Context, kit entities.Kit, now time.Time) error
}

// PageDraftedEvent is the outbound integration payload persisted to outbox.
type PageDraftedEvent struct {
	EventID      string
	EventType    string
	PageID       string
	PackID       string
	Slug         string
	TemplateID   string
	PartitionKey string
	OccurredAt   time.Time
}

type PageFilter struct {
	PackID string
	Limit  int
}

// PageRepository is the landing page storage collaborator.
type PageRepository interface {
	// CreateDraftPagesWithOutbox must atomically persist every page and its event.
	CreateDraftPagesWithOutbox(ctx context.Context, pages []entities.Page, events []PageDraftedEvent) error
	GetPage(ctx context.Context, pageID string) (entities.Page, error)
	ListPages(ctx context.Context, filter PageFilter) ([]entities.Page, error)
}

// IdempotencyRecord captures dedupe metadata for mutating requests.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	Payload     []byte
	ExpiresAt   time.Time
}

// IdempotencyStore abstracts idempotency persistence with TTL handling.
type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	Put(ctx context.Context, record IdempotencyRecord) error
}

// Clock allows deterministic testing of timestamps and TTLs.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts page/event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// BlockIDGenerator hands out block identifiers during assembly. It cannot fail.
// ScopedBlockIDs returns an independent generator owned by a single assembly
// run, used when several runs execute concurrently.
type BlockIDGenerator interface {
	NewBlockID() string
	ScopedBlockIDs(scope string) entities.IDFunc
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
