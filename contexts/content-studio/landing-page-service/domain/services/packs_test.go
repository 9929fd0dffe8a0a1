package services

import (
	"errors"
	"strings"
	"testing"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
)

type stubCatalog struct {
	templates map[string]entities.Template
	packs     map[string]entities.CampaignPack
}

func (c stubCatalog) GetTemplate(templateID string) (entities.Template, bool) {
	item, ok := c.templates[templateID]
	return item, ok
}

func (c stubCatalog) GetPack(packID string) (entities.CampaignPack, bool) {
	item, ok := c.packs[packID]
	return item, ok
}

func winterCatalog() stubCatalog {
	return stubCatalog{
		templates: map[string]entities.Template{"tpl_launch": launchTemplate()},
		packs: map[string]entities.CampaignPack{
			"winter-sale": {
				ID:               "winter-sale",
				Name:             "Winter Sale",
				TemplateID:       "tpl_launch",
				RecommendedTheme: "frost",
				DefaultKits:      []string{"Shipping Info"},
				Pages: []entities.PageDefinition{
					{Title: "Winter Sale", Slug: "winter-sale", RecommendedKits: []string{"Safety Tips"}},
					{Title: "Gift Guide", Slug: "gift-guide", MetaTitle: "Gifts", MetaDescription: "Great gifts"},
				},
			},
			"broken": {ID: "broken", TemplateID: "tpl_missing"},
		},
	}
}

func packKits() []entities.Kit {
	return []entities.Kit{
		{Name: "Safety Tips", Blocks: entities.RawBlocks{{Type: entities.BlockTypeFAQ}}},
		{Name: "Shipping Info", Blocks: entities.RawBlocks{{Type: "shippingTable"}}},
	}
}

func TestGeneratePackBuildsDraftLandingPages(t *testing.T) {
	catalog := winterCatalog()
	result, err := GeneratePack("winter-sale", catalog, catalog, packKits(), entities.PackOptions{
		PrimaryProductID: "prod-1",
	}, entities.SequentialIDs("blk"))
	if err != nil {
		t.Fatalf("generate pack failed: %v", err)
	}
	if result.Pack.ID != "winter-sale" || len(result.Pages) != 2 {
		t.Fatalf("unexpected pack result: %+v", result.Pack)
	}

	first := result.Pages[0]
	if first.Status != "draft" || first.PageType != "landing" || first.Template != "tpl_launch" {
		t.Fatalf("unexpected payload envelope: %+v", first)
	}
	if first.ContentJSON.ThemeOverride != "frost" {
		t.Fatalf("expected pack theme, got %q", first.ContentJSON.ThemeOverride)
	}
	blocks := first.ContentJSON.Blocks
	// page kits first, then pack defaults, detached at the end
	if blocks[len(blocks)-2].Type != entities.BlockTypeFAQ || blocks[len(blocks)-1].Type != "shippingTable" {
		t.Fatalf("unexpected tail blocks: %v", blockTypes(blocks))
	}
	if blocks[0].Data["ctaHref"] != "/shop" {
		t.Fatalf("expected default shop cta, got %v", blocks[0].Data["ctaHref"])
	}
	if first.MetaTitle != "Winter Sale" || first.OgTitle != first.MetaTitle {
		t.Fatalf("unexpected seo fields: %+v", first)
	}

	second := result.Pages[1]
	if second.MetaTitle != "Gifts" || second.MetaDescription != "Great gifts" || second.Slug != "gift-guide" {
		t.Fatalf("unexpected second page: %+v", second)
	}
	if first.ContentJSON.Blocks[0].ID == second.ContentJSON.Blocks[0].ID {
		t.Fatal("expected fresh block ids per page")
	}
}

func TestGeneratePackLookupFailures(t *testing.T) {
	catalog := winterCatalog()

	_, err := GeneratePack("nope", catalog, catalog, nil, entities.PackOptions{}, entities.SequentialIDs("blk"))
	if !errors.Is(err, domainerrors.ErrPackNotFound) || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected pack not found naming the id, got %v", err)
	}

	_, err = GeneratePack("broken", catalog, catalog, nil, entities.PackOptions{}, entities.SequentialIDs("blk"))
	if !errors.Is(err, domainerrors.ErrTemplateNotFound) || !strings.Contains(err.Error(), "tpl_missing") {
		t.Fatalf("expected template not found naming the id, got %v", err)
	}
}

func TestGeneratePackSectionRefMode(t *testing.T) {
	catalog := winterCatalog()
	result, err := GeneratePack("winter-sale", catalog, catalog, packKits(), entities.PackOptions{
		SectionMode:    entities.SectionModeRef,
		CTADestination: entities.CTADestinationQuote,
	}, entities.SequentialIDs("blk"))
	if err != nil {
		t.Fatalf("generate pack failed: %v", err)
	}
	blocks := result.Pages[0].ContentJSON.Blocks
	tail := blocks[len(blocks)-2:]
	if tail[0].Data["sectionId"] != "kit-safety-tips" || tail[1].Data["sectionId"] != "kit-shipping-info" {
		t.Fatalf("unexpected section refs: %v %v", tail[0].Data, tail[1].Data)
	}
	if blocks[0].Data["ctaText"] != "Get a Quote" {
		t.Fatalf("expected quote cta text, got %v", blocks[0].Data["ctaText"])
	}
}
