package entities

import (
	"bytes"
	"encoding/json"
)

// RawBlock is a block as it appears inside a reusable kit, before assembly.
type RawBlock struct {
	Type     BlockType      `json:"type"`
	Data     map[string]any `json:"data,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// RawBlocks decodes leniently: null, a missing field, or any non-array value
// becomes an empty list instead of a decode error.
type RawBlocks []RawBlock

func (b *RawBlocks) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		*b = nil
		return nil
	}
	var items []RawBlock
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}
	*b = items
	return nil
}

// Kit is a named bundle of raw blocks as supplied by storage or the caller.
type Kit struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Blocks      RawBlocks `json:"blocks"`
}

// ContentSection is a kit resolved for one assembly call.
type ContentSection struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Blocks RawBlocks `json:"blocks"`
}

type SectionMode string

const (
	SectionModeRef    SectionMode = "sectionRef"
	SectionModeDetach SectionMode = "detach"
)

func NormalizeSectionMode(value string) (SectionMode, bool) {
	switch SectionMode(value) {
	case SectionModeRef, SectionModeDetach:
		return SectionMode(value), true
	default:
		return "", false
	}
}
