package application

import (
	"encoding/json"

	"storefront/contexts/content-studio/landing-page-service/ports"
	contractsv1 "storefront/contracts/gen/events/v1"
)

const (
	PageDraftedEventType = "landing.page_drafted"
	sourceService        = "landing-page-service"
)

// BuildPageDraftedEnvelope renders the canonical envelope stored in the outbox.
func BuildPageDraftedEnvelope(event ports.PageDraftedEvent) (ports.EventEnvelope, error) {
	data, err := json.Marshal(contractsv1.PageDrafted{
		PageID:     event.PageID,
		PackID:     event.PackID,
		Slug:       event.Slug,
		TemplateID: event.TemplateID,
		Status:     "draft",
	})
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          event.EventID,
		EventType:        event.EventType,
		OccurredAt:       event.OccurredAt.UTC(),
		SourceService:    sourceService,
		SchemaVersion:    1,
		PartitionKeyPath: "page_id",
		PartitionKey:     event.PartitionKey,
		Data:             data,
	}, nil
}
