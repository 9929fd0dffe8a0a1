package v1

import (
	"encoding/json"
	"time"
)

// Envelope is the versioned event envelope written to the outbox and
// published by the relay. Field names are part of the wire contract.
type Envelope struct {
	EventID          string          `json:"event_id"`
	EventType        string          `json:"event_type"`
	OccurredAt       time.Time       `json:"occurred_at"`
	SourceService    string          `json:"source_service"`
	TraceID          string          `json:"trace_id"`
	SchemaVersion    int             `json:"schema_version"`
	PartitionKeyPath string          `json:"partition_key_path"`
	PartitionKey     string          `json:"partition_key"`
	Data             json.RawMessage `json:"data"`
}

// PageDrafted is the data payload of landing.page_drafted.
type PageDrafted struct {
	PageID     string `json:"page_id"`
	PackID     string `json:"pack_id,omitempty"`
	Slug       string `json:"slug"`
	TemplateID string `json:"template_id"`
	Status     string `json:"status"`
}
