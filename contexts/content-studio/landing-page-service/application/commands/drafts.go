package commands

import (
	"context"
	"time"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

// draftWriter allocates page/event ids and hands the batch to the page
// repository, which commits pages and outbox rows together.
type draftWriter struct {
	Pages       ports.PageRepository
	IDGenerator ports.IDGenerator
}

func (w draftWriter) write(
	ctx context.Context,
	userID string,
	packID string,
	payloads []entities.PagePayload,
	now time.Time,
) ([]entities.Page, error) {
	pages := make([]entities.Page, 0, len(payloads))
	events := make([]ports.PageDraftedEvent, 0, len(payloads))
	for _, payload := range payloads {
		pageID, err := w.IDGenerator.NewID(ctx)
		if err != nil {
			return nil, err
		}
		eventID, err := w.IDGenerator.NewID(ctx)
		if err != nil {
			return nil, err
		}
		pages = append(pages, entities.Page{
			PageID:    pageID,
			PackID:    packID,
			CreatedBy: userID,
			Payload:   payload,
			CreatedAt: now,
			UpdatedAt: now,
		})
		events = append(events, ports.PageDraftedEvent{
			EventID:      eventID,
			EventType:    application.PageDraftedEventType,
			PageID:       pageID,
			PackID:       packID,
			Slug:         payload.Slug,
			TemplateID:   payload.Template,
			PartitionKey: pageID,
			OccurredAt:   now,
		})
	}
	if err := w.Pages.CreateDraftPagesWithOutbox(ctx, pages, events); err != nil {
		return nil, err
	}
	return pages, nil
}
