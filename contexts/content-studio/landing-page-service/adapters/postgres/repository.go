package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"

	pagesSlugConstraint = "landing_pages_unique_slug"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: application.ResolveLogger(logger),
	}
}

// AutoMigrate creates the landing page tables when they do not exist.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(
		&kitModel{},
		&pageModel{},
		&idempotencyModel{},
		&outboxModel{},
	)
}

func (r *Repository) ListKits(ctx context.Context) ([]entities.Kit, error) {
	var rows []kitModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Kit, 0, len(rows))
	for _, row := range rows {
		kit, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, kit)
	}
	return items, nil
}

func (r *Repository) GetKit(ctx context.Context, name string) (entities.Kit, error) {
	var row kitModel
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Kit{}, domainerrors.ErrKitNotFound
		}
		return entities.Kit{}, err
	}
	return row.toEntity()
}

func (r *Repository) UpsertKit(ctx context.Context, kit entities.Kit, now time.Time) error {
	row, err := kitModelFromEntity(kit, now)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "blocks", "updated_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) CreateDraftPagesWithOutbox(
	ctx context.Context,
	pages []entities.Page,
	events []ports.PageDraftedEvent,
) error {
	pageRows := make([]pageModel, 0, len(pages))
	for _, page := range pages {
		row, err := pageModelFromEntity(page)
		if err != nil {
			return err
		}
		pageRows = append(pageRows, row)
	}
	outboxRows := make([]outboxModel, 0, len(events))
	for _, event := range events {
		envelope, err := application.BuildPageDraftedEnvelope(event)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(envelope)
		if err != nil {
			return err
		}
		outboxRows = append(outboxRows, outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range pageRows {
			if err := tx.Create(&pageRows[i]).Error; err != nil {
				if isUniqueViolation(err) {
					if constraintName(err) == pagesSlugConstraint {
						return fmt.Errorf("%w: %s", domainerrors.ErrSlugConflict, pageRows[i].Slug)
					}
					return domainerrors.ErrRepositoryInvariantBroke
				}
				return err
			}
		}
		for i := range outboxRows {
			if err := tx.Create(&outboxRows[i]).Error; err != nil {
				if isUniqueViolation(err) {
					return domainerrors.ErrRepositoryInvariantBroke
				}
				return err
			}
		}
		r.logger.Debug("draft pages and outbox persisted",
			"event", "postgres_create_draft_pages_with_outbox",
			"module", "content-studio/landing-page-service",
			"layer", "adapter",
			"page_count", len(pageRows),
		)
		return nil
	})
}

func (r *Repository) GetPage(ctx context.Context, pageID string) (entities.Page, error) {
	var row pageModel
	err := r.db.WithContext(ctx).
		Where("page_id = ?", pageID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Page{}, domainerrors.ErrPageNotFound
		}
		return entities.Page{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListPages(ctx context.Context, filter ports.PageFilter) ([]entities.Page, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	tx := r.db.WithContext(ctx).Model(&pageModel{})
	if filter.PackID != "" {
		tx = tx.Where("pack_id = ?", filter.PackID)
	}
	var rows []pageModel
	if err := tx.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "page_id"}}).
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Page, 0, len(rows))
	for _, row := range rows {
		page, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, page)
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}

	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", key).
			Delete(&idempotencyModel{}).
			Error; err != nil {
			return ports.IdempotencyRecord{}, false, err
		}
		return ports.IdempotencyRecord{}, false, nil
	}
	return row.toPort(), true, nil
}

func (r *Repository) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModelFromPort(record)
	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", record.Key).
		First(&existing).
		Error; err != nil {
		return err
	}
	if existing.RequestHash != record.RequestHash {
		return domainerrors.ErrIdempotencyConflict
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPort())
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":  outboxStatusSent,
			"sent_at": sentAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	return nil
}

type kitModel struct {
	Name        string         `gorm:"column:name;primaryKey"`
	Description string         `gorm:"column:description"`
	Blocks      datatypes.JSON `gorm:"column:blocks;type:jsonb"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (kitModel) TableName() string {
	return "landing_kits"
}

func kitModelFromEntity(kit entities.Kit, now time.Time) (kitModel, error) {
	blocks := kit.Blocks
	if blocks == nil {
		blocks = entities.RawBlocks{}
	}
	raw, err := json.Marshal(blocks)
	if err != nil {
		return kitModel{}, err
	}
	return kitModel{
		Name:        kit.Name,
		Description: kit.Description,
		Blocks:      datatypes.JSON(raw),
		UpdatedAt:   now.UTC(),
	}, nil
}

func (m kitModel) toEntity() (entities.Kit, error) {
	kit := entities.Kit{Name: m.Name, Description: m.Description}
	if len(m.Blocks) > 0 {
		if err := json.Unmarshal(m.Blocks, &kit.Blocks); err != nil {
			return entities.Kit{}, err
		}
	}
	return kit, nil
}

type pageModel struct {
	PageID          string         `gorm:"column:page_id;primaryKey"`
	PackID          string         `gorm:"column:pack_id;index"`
	CreatedBy       string         `gorm:"column:created_by"`
	Title           string         `gorm:"column:title"`
	Slug            string         `gorm:"column:slug;uniqueIndex:landing_pages_unique_slug"`
	PageType        string         `gorm:"column:page_type"`
	Template        string         `gorm:"column:template"`
	Status          string         `gorm:"column:status"`
	ContentJSON     datatypes.JSON `gorm:"column:content_json;type:jsonb"`
	MetaTitle       string         `gorm:"column:meta_title"`
	MetaDescription string         `gorm:"column:meta_description"`
	OgTitle         string         `gorm:"column:og_title"`
	OgDescription   string         `gorm:"column:og_description"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
}

func (pageModel) TableName() string {
	return "landing_pages"
}

func pageModelFromEntity(page entities.Page) (pageModel, error) {
	content, err := json.Marshal(page.Payload.ContentJSON)
	if err != nil {
		return pageModel{}, err
	}
	return pageModel{
		PageID:          page.PageID,
		PackID:          page.PackID,
		CreatedBy:       page.CreatedBy,
		Title:           page.Payload.Title,
		Slug:            page.Payload.Slug,
		PageType:        page.Payload.PageType,
		Template:        page.Payload.Template,
		Status:          page.Payload.Status,
		ContentJSON:     datatypes.JSON(content),
		MetaTitle:       page.Payload.MetaTitle,
		MetaDescription: page.Payload.MetaDescription,
		OgTitle:         page.Payload.OgTitle,
		OgDescription:   page.Payload.OgDescription,
		CreatedAt:       page.CreatedAt.UTC(),
		UpdatedAt:       page.UpdatedAt.UTC(),
	}, nil
}

func (m pageModel) toEntity() (entities.Page, error) {
	var content entities.ContentDocument
	if len(m.ContentJSON) > 0 {
		if err := json.Unmarshal(m.ContentJSON, &content); err != nil {
			return entities.Page{}, err
		}
	}
	return entities.Page{
		PageID:    m.PageID,
		PackID:    m.PackID,
		CreatedBy: m.CreatedBy,
		Payload: entities.PagePayload{
			Title:           m.Title,
			Slug:            m.Slug,
			PageType:        m.PageType,
			ContentJSON:     content,
			Template:        m.Template,
			Status:          m.Status,
			MetaTitle:       m.MetaTitle,
			MetaDescription: m.MetaDescription,
			OgTitle:         m.OgTitle,
			OgDescription:   m.OgDescription,
		},
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}, nil
}

type idempotencyModel struct {
	Key         string    `gorm:"column:key;primaryKey"`
	RequestHash string    `gorm:"column:request_hash"`
	Payload     []byte    `gorm:"column:payload"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "landing_idempotency"
}

func idempotencyModelFromPort(record ports.IdempotencyRecord) idempotencyModel {
	return idempotencyModel{
		Key:         record.Key,
		RequestHash: record.RequestHash,
		Payload:     append([]byte(nil), record.Payload...),
		ExpiresAt:   record.ExpiresAt.UTC(),
	}
}

func (m idempotencyModel) toPort() ports.IdempotencyRecord {
	return ports.IdempotencyRecord{
		Key:         m.Key,
		RequestHash: m.RequestHash,
		Payload:     append([]byte(nil), m.Payload...),
		ExpiresAt:   m.ExpiresAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string {
	return "landing_outbox"
}

func (m outboxModel) toPort() ports.OutboxMessage {
	return ports.OutboxMessage{
		OutboxID:     m.OutboxID,
		EventType:    m.EventType,
		PartitionKey: m.PartitionKey,
		Payload:      append([]byte(nil), m.Payload...),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
