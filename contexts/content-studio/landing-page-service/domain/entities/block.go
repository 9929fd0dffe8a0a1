package entities

type BlockType string

const (
	BlockTypeHero             BlockType = "hero"
	BlockTypeProductHighlight BlockType = "productHighlight"
	BlockTypeProductGrid      BlockType = "productGrid"
	BlockTypeCallToAction     BlockType = "callToAction"
	BlockTypeSectionRef       BlockType = "sectionRef"
	BlockTypeFAQ              BlockType = "faq"
	BlockTypeRichText         BlockType = "richText"
)

// BlockSchemaVersion is the schema version stamped on every assembled block.
const BlockSchemaVersion = 1

// Block is one assembled unit of page content. Data stays an open map so block
// types the engine does not reason about round-trip unchanged.
type Block struct {
	ID       string         `json:"id"`
	Type     BlockType      `json:"type"`
	Version  int            `json:"version"`
	Data     map[string]any `json:"data"`
	Settings map[string]any `json:"settings"`
}

// ProductHighlightData is the payload of a synthesized productHighlight block.
type ProductHighlightData struct {
	ProductID        string
	HighlightBullets []string
	ShowGallery      bool
	ShowBuyButton    bool
}

func (d ProductHighlightData) Fields() map[string]any {
	bullets := make([]any, 0, len(d.HighlightBullets))
	for _, bullet := range d.HighlightBullets {
		bullets = append(bullets, bullet)
	}
	return map[string]any{
		"productId":        d.ProductID,
		"highlightBullets": bullets,
		"showGallery":      d.ShowGallery,
		"showBuyButton":    d.ShowBuyButton,
	}
}

// ProductGridData is the payload of a synthesized productGrid block.
type ProductGridData struct {
	Title          string
	ProductIDs     []string
	Columns        int
	ShowPrices     bool
	ShowBuyButtons bool
}

func (d ProductGridData) Fields() map[string]any {
	return map[string]any{
		"title":          d.Title,
		"productIds":     append([]string{}, d.ProductIDs...),
		"columns":        d.Columns,
		"showPrices":     d.ShowPrices,
		"showBuyButtons": d.ShowBuyButtons,
	}
}

// SectionRefData points at a reusable section without expanding it.
type SectionRefData struct {
	SectionID   string
	SectionName string
}

func (d SectionRefData) Fields() map[string]any {
	return map[string]any{
		"sectionId":   d.SectionID,
		"sectionName": d.SectionName,
	}
}
