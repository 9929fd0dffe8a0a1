package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
)

func launchTemplate() entities.Template {
	return entities.Template{
		ID:   "tpl_launch",
		Name: "Product Launch",
		Blocks: []entities.TemplateBlock{
			{Type: entities.BlockTypeHero, Data: map[string]any{
				"headline": "Big launch",
				"ctaText":  "Shop now",
				"ctaHref":  "/old",
				"image":    map[string]any{"url": "https://cdn.local/hero.png", "alt": "hero"},
			}},
			{Type: entities.BlockTypeRichText, Data: map[string]any{"body": "Intro copy"}},
			{Type: entities.BlockTypeCallToAction, Data: map[string]any{
				"headline":       "Ready?",
				"primaryCtaText": "Buy",
				"primaryCtaHref": "/old",
			}},
		},
	}
}

func safetySection() entities.ContentSection {
	return entities.ContentSection{
		ID:   "kit-safety-tips",
		Name: "Safety Tips",
		Blocks: entities.RawBlocks{
			{Type: entities.BlockTypeFAQ, Data: map[string]any{"items": []any{"Wear gloves"}}},
			{Type: entities.BlockTypeRichText, Data: map[string]any{"body": "Stay safe"}, Settings: map[string]any{"align": "center"}},
		},
	}
}

func fullInput() entities.AssemblyInput {
	return entities.AssemblyInput{
		Template:            launchTemplate(),
		PrimaryProductID:    "prod-1",
		SecondaryProductIDs: []string{"s1", "s2"},
		Sections:            []entities.ContentSection{safetySection()},
		SectionMode:         entities.SectionModeDetach,
		CTADestination:      entities.CTADestinationProduct,
		ThemeOverride:       "winter",
		Title:               "Winter Sale",
	}
}

func mustAssemble(t *testing.T, input entities.AssemblyInput) entities.AssemblyResult {
	t.Helper()
	result, err := Assemble(input, entities.SequentialIDs("blk"))
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	return result
}

func blockTypes(blocks []entities.Block) []entities.BlockType {
	out := make([]entities.BlockType, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, block.Type)
	}
	return out
}

func TestAssembleIsDeterministic(t *testing.T) {
	first := mustAssemble(t, fullInput())
	second := mustAssemble(t, fullInput())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("expected identical results (-first +second):\n%s", diff)
	}
	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(firstJSON, secondJSON) {
		t.Fatalf("expected byte-identical output\nfirst=%s\nsecond=%s", firstJSON, secondJSON)
	}
}

func TestAssembleDoesNotMutateTemplate(t *testing.T) {
	template := launchTemplate()
	before, err := json.Marshal(template)
	if err != nil {
		t.Fatalf("marshal template: %v", err)
	}

	input := fullInput()
	input.Template = template
	for i := 0; i < 3; i++ {
		result := mustAssemble(t, input)
		result.ContentJSON.Blocks[0].Data["headline"] = "changed"
		result.ContentJSON.Blocks[0].Data["image"].(map[string]any)["url"] = "changed"
	}

	after, err := json.Marshal(template)
	if err != nil {
		t.Fatalf("marshal template: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatalf("template mutated\nbefore=%s\nafter=%s", before, after)
	}
}

func TestAssembleBlocksAreComplete(t *testing.T) {
	input := fullInput()
	input.Sections = append(input.Sections, entities.ContentSection{
		ID:     "kit-bare",
		Name:   "Bare",
		Blocks: entities.RawBlocks{{Type: "spacer"}},
	})
	result := mustAssemble(t, input)

	if result.ContentJSON.Version != 1 {
		t.Fatalf("expected document version 1, got %d", result.ContentJSON.Version)
	}
	seen := map[string]struct{}{}
	for _, block := range result.ContentJSON.Blocks {
		if block.ID == "" || block.Type == "" || block.Version != 1 {
			t.Fatalf("incomplete block: %+v", block)
		}
		if block.Data == nil || block.Settings == nil {
			t.Fatalf("expected object data/settings: %+v", block)
		}
		if _, dup := seen[block.ID]; dup {
			t.Fatalf("duplicate block id %s", block.ID)
		}
		seen[block.ID] = struct{}{}
	}
}

func TestAssembleRequiresIDGenerator(t *testing.T) {
	_, err := Assemble(fullInput(), nil)
	if !errors.Is(err, domainerrors.ErrIDGeneratorRequired) {
		t.Fatalf("expected id generator required, got %v", err)
	}
}

func TestPrimaryProductUpdatesExistingHighlight(t *testing.T) {
	template := entities.Template{ID: "tpl", Blocks: []entities.TemplateBlock{
		{Type: entities.BlockTypeHero, Data: map[string]any{"headline": "Hi"}},
		{Type: entities.BlockTypeProductHighlight, Data: map[string]any{"productId": "old", "showGallery": false}},
	}}
	result := mustAssemble(t, entities.AssemblyInput{
		Template:         template,
		PrimaryProductID: "prod-abc",
		CTADestination:   entities.CTADestinationShop,
	})

	blocks := result.ContentJSON.Blocks
	if len(blocks) != 2 {
		t.Fatalf("expected no inserted block, got %v", blockTypes(blocks))
	}
	if blocks[1].Data["productId"] != "prod-abc" {
		t.Fatalf("expected productId prod-abc, got %v", blocks[1].Data["productId"])
	}
	if blocks[1].Data["showGallery"] != false {
		t.Fatalf("expected other fields preserved, got %v", blocks[1].Data)
	}
}

func TestPrimaryProductInsertsHighlightAfterHero(t *testing.T) {
	template := entities.Template{ID: "tpl", Blocks: []entities.TemplateBlock{
		{Type: entities.BlockTypeRichText},
		{Type: entities.BlockTypeHero},
		{Type: entities.BlockTypeFAQ},
	}}
	result := mustAssemble(t, entities.AssemblyInput{Template: template, PrimaryProductID: "p99"})

	blocks := result.ContentJSON.Blocks
	want := []entities.BlockType{
		entities.BlockTypeRichText,
		entities.BlockTypeHero,
		entities.BlockTypeProductHighlight,
		entities.BlockTypeFAQ,
	}
	if diff := cmp.Diff(want, blockTypes(blocks)); diff != "" {
		t.Fatalf("unexpected block order (-want +got):\n%s", diff)
	}
	highlight := blocks[2]
	if highlight.Data["productId"] != "p99" || highlight.Data["showGallery"] != true || highlight.Data["showBuyButton"] != true {
		t.Fatalf("unexpected highlight data: %v", highlight.Data)
	}
	if bullets, ok := highlight.Data["highlightBullets"].([]any); !ok || len(bullets) != 0 {
		t.Fatalf("expected empty highlight bullets, got %#v", highlight.Data["highlightBullets"])
	}
}

func TestPrimaryProductInsertsHighlightFirstWithoutHero(t *testing.T) {
	template := entities.Template{ID: "tpl", Blocks: []entities.TemplateBlock{{Type: entities.BlockTypeRichText}}}
	result := mustAssemble(t, entities.AssemblyInput{Template: template, PrimaryProductID: "p1"})

	if got := result.ContentJSON.Blocks[0].Type; got != entities.BlockTypeProductHighlight {
		t.Fatalf("expected highlight at index 0, got %s", got)
	}
}

func TestSecondaryProductsSynthesizeGrid(t *testing.T) {
	input := entities.AssemblyInput{
		Template:            launchTemplate(),
		SecondaryProductIDs: []string{"s1", "s2", "s3"},
	}
	result := mustAssemble(t, input)

	blocks := result.ContentJSON.Blocks
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %v", blockTypes(blocks))
	}
	grid := blocks[1]
	if grid.Type != entities.BlockTypeProductGrid {
		t.Fatalf("expected grid at index 1, got %v", blockTypes(blocks))
	}
	if grid.Data["columns"] != 3 || grid.Data["title"] != "More Products" {
		t.Fatalf("unexpected grid data: %v", grid.Data)
	}
	if diff := cmp.Diff([]string{"s1", "s2", "s3"}, grid.Data["productIds"]); diff != "" {
		t.Fatalf("unexpected product ids (-want +got):\n%s", diff)
	}

	input.SecondaryProductIDs[0] = "mutated"
	if grid.Data["productIds"].([]string)[0] != "s1" {
		t.Fatal("expected grid to hold a copy of the input ids")
	}
}

func TestSecondaryGridMidpointCountsPrimaryInjection(t *testing.T) {
	result := mustAssemble(t, entities.AssemblyInput{
		Template:            launchTemplate(),
		PrimaryProductID:    "p1",
		SecondaryProductIDs: []string{"s1", "s2"},
	})

	want := []entities.BlockType{
		entities.BlockTypeHero,
		entities.BlockTypeProductHighlight,
		entities.BlockTypeProductGrid,
		entities.BlockTypeRichText,
		entities.BlockTypeCallToAction,
	}
	if diff := cmp.Diff(want, blockTypes(result.ContentJSON.Blocks)); diff != "" {
		t.Fatalf("unexpected block order (-want +got):\n%s", diff)
	}
	if got := result.ContentJSON.Blocks[2].Data["columns"]; got != 2 {
		t.Fatalf("expected 2 columns, got %v", got)
	}
}

func TestSecondaryProductsReplaceExistingGrid(t *testing.T) {
	template := entities.Template{ID: "tpl", Blocks: []entities.TemplateBlock{
		{Type: entities.BlockTypeProductGrid, Data: map[string]any{"title": "Staff picks", "productIds": []any{"x"}}},
	}}
	result := mustAssemble(t, entities.AssemblyInput{Template: template, SecondaryProductIDs: []string{"a", "b"}})

	blocks := result.ContentJSON.Blocks
	if len(blocks) != 1 {
		t.Fatalf("expected no inserted grid, got %v", blockTypes(blocks))
	}
	if blocks[0].Data["title"] != "Staff picks" {
		t.Fatalf("expected title preserved, got %v", blocks[0].Data["title"])
	}
	if diff := cmp.Diff([]string{"a", "b"}, blocks[0].Data["productIds"]); diff != "" {
		t.Fatalf("unexpected product ids (-want +got):\n%s", diff)
	}
}

func TestSecondaryGridOnEmptyTemplateAppends(t *testing.T) {
	result := mustAssemble(t, entities.AssemblyInput{
		Template:            entities.Template{ID: "tpl_blank"},
		SecondaryProductIDs: []string{"s1"},
	})
	if len(result.ContentJSON.Blocks) != 1 || result.ContentJSON.Blocks[0].Type != entities.BlockTypeProductGrid {
		t.Fatalf("expected a single grid block, got %v", blockTypes(result.ContentJSON.Blocks))
	}
}

func TestSectionRefModeEmitsOneBlockPerSection(t *testing.T) {
	sections := []entities.ContentSection{
		safetySection(),
		{ID: "kit-shipping", Name: "Shipping", Blocks: entities.RawBlocks{{Type: entities.BlockTypeRichText}}},
	}
	result := mustAssemble(t, entities.AssemblyInput{
		Template:    launchTemplate(),
		Sections:    sections,
		SectionMode: entities.SectionModeRef,
	})

	blocks := result.ContentJSON.Blocks
	refs := blocks[len(blocks)-2:]
	if len(blocks) != 5 {
		t.Fatalf("expected template blocks plus 2 refs, got %v", blockTypes(blocks))
	}
	for i, ref := range refs {
		if ref.Type != entities.BlockTypeSectionRef {
			t.Fatalf("expected sectionRef, got %s", ref.Type)
		}
		if ref.Data["sectionId"] != sections[i].ID || ref.Data["sectionName"] != sections[i].Name {
			t.Fatalf("unexpected ref data: %v", ref.Data)
		}
	}
}

func TestDetachModeAppendsSectionBlocksInOrder(t *testing.T) {
	sections := []entities.ContentSection{
		safetySection(),
		{ID: "kit-shipping", Name: "Shipping", Blocks: entities.RawBlocks{{Type: "shippingTable"}}},
	}
	result := mustAssemble(t, entities.AssemblyInput{
		Template:    launchTemplate(),
		Sections:    sections,
		SectionMode: entities.SectionModeDetach,
	})

	want := []entities.BlockType{
		entities.BlockTypeHero,
		entities.BlockTypeRichText,
		entities.BlockTypeCallToAction,
		entities.BlockTypeFAQ,
		entities.BlockTypeRichText,
		"shippingTable",
	}
	if diff := cmp.Diff(want, blockTypes(result.ContentJSON.Blocks)); diff != "" {
		t.Fatalf("unexpected block order (-want +got):\n%s", diff)
	}
	detached := result.ContentJSON.Blocks[4]
	if detached.Settings["align"] != "center" || detached.Data["body"] != "Stay safe" {
		t.Fatalf("expected section data and settings copied, got %+v", detached)
	}
	for _, block := range result.ContentJSON.Blocks {
		if block.Type == entities.BlockTypeSectionRef {
			t.Fatal("detach mode must not emit sectionRef blocks")
		}
	}
}

func TestDetachModeSkipsTypelessSectionBlocks(t *testing.T) {
	kits := []entities.Kit{{
		Name: "Loose Kit",
		Blocks: entities.RawBlocks{
			{Data: map[string]any{"body": "no type"}},
			{Type: entities.BlockTypeRichText, Data: map[string]any{"body": "typed"}},
		},
	}}
	result := mustAssemble(t, entities.AssemblyInput{
		Template:    launchTemplate(),
		Sections:    ResolveKits([]string{"Loose Kit"}, kits),
		SectionMode: entities.SectionModeDetach,
	})

	want := []entities.BlockType{
		entities.BlockTypeHero,
		entities.BlockTypeRichText,
		entities.BlockTypeCallToAction,
		entities.BlockTypeRichText,
	}
	if diff := cmp.Diff(want, blockTypes(result.ContentJSON.Blocks)); diff != "" {
		t.Fatalf("unexpected block order (-want +got):\n%s", diff)
	}
	for _, block := range result.ContentJSON.Blocks {
		if block.Type == "" || block.ID == "" {
			t.Fatalf("expected every block typed and identified, got %+v", block)
		}
	}
}

func TestSectionWithoutBlocksIsNoOp(t *testing.T) {
	var nullBlocks, missingBlocks, wrongShape entities.Kit
	for raw, target := range map[string]*entities.Kit{
		`{"name":"Null","blocks":null}`:    &nullBlocks,
		`{"name":"Missing"}`:               &missingBlocks,
		`{"name":"Wrong","blocks":"oops"}`: &wrongShape,
	} {
		if err := json.Unmarshal([]byte(raw), target); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}

	sections := ResolveKits([]string{"Null", "Missing", "Wrong"}, []entities.Kit{nullBlocks, missingBlocks, wrongShape})
	if len(sections) != 3 {
		t.Fatalf("expected 3 resolved sections, got %d", len(sections))
	}
	result := mustAssemble(t, entities.AssemblyInput{
		Template:    launchTemplate(),
		Sections:    sections,
		SectionMode: entities.SectionModeDetach,
	})
	if len(result.ContentJSON.Blocks) != len(launchTemplate().Blocks) {
		t.Fatalf("expected only template blocks, got %v", blockTypes(result.ContentJSON.Blocks))
	}
}

func TestCTADestinationMapping(t *testing.T) {
	cases := []struct {
		name        string
		destination entities.CTADestination
		primaryID   string
		wantHref    string
		wantText    string
	}{
		{name: "shop", destination: entities.CTADestinationShop, wantHref: "/shop", wantText: "Shop now"},
		{name: "product", destination: entities.CTADestinationProduct, primaryID: "prod-x", wantHref: "/products/prod-x", wantText: "Shop now"},
		{name: "product without id", destination: entities.CTADestinationProduct, wantHref: "/shop", wantText: "Shop now"},
		{name: "quote", destination: entities.CTADestinationQuote, wantHref: "/contact", wantText: "Get a Quote"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := mustAssemble(t, entities.AssemblyInput{
				Template:         launchTemplate(),
				PrimaryProductID: tc.primaryID,
				CTADestination:   tc.destination,
			})
			hero := result.ContentJSON.Blocks[0]
			if hero.Data["ctaHref"] != tc.wantHref || hero.Data["ctaText"] != tc.wantText {
				t.Fatalf("unexpected hero cta: %v", hero.Data)
			}
			cta := result.ContentJSON.Blocks[len(result.ContentJSON.Blocks)-1]
			if cta.Type != entities.BlockTypeCallToAction {
				t.Fatalf("expected callToAction last, got %s", cta.Type)
			}
			if cta.Data["primaryCtaHref"] != tc.wantHref {
				t.Fatalf("expected primaryCtaHref %s, got %v", tc.wantHref, cta.Data["primaryCtaHref"])
			}
		})
	}
}

func TestCTAPresetDefaultsWin(t *testing.T) {
	preset := &entities.PresetOverrides{GlobalCTADefaults: entities.GlobalCTADefaults{
		PrimaryCtaText:   "Book a demo",
		PrimaryCtaHref:   "/demo",
		SecondaryCtaText: "Learn more",
		SecondaryCtaHref: "/about",
	}}
	result := mustAssemble(t, entities.AssemblyInput{
		Template:        launchTemplate(),
		CTADestination:  entities.CTADestinationQuote,
		PresetOverrides: preset,
	})

	hero := result.ContentJSON.Blocks[0].Data
	want := map[string]any{"ctaHref": "/demo", "ctaText": "Book a demo", "secondaryCtaText": "Learn more", "secondaryCtaHref": "/about"}
	for key, value := range want {
		if hero[key] != value {
			t.Fatalf("expected hero %s=%v, got %v", key, value, hero[key])
		}
	}
	cta := result.ContentJSON.Blocks[2].Data
	if cta["primaryCtaHref"] != "/demo" || cta["primaryCtaText"] != "Book a demo" || cta["secondaryCtaHref"] != "/about" {
		t.Fatalf("unexpected callToAction data: %v", cta)
	}
}

func TestThemeOverridePresence(t *testing.T) {
	input := fullInput()
	input.ThemeOverride = ""
	result := mustAssemble(t, input)
	encoded, err := json.Marshal(result.ContentJSON)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(encoded), "themeOverride") {
		t.Fatalf("expected themeOverride key absent, got %s", encoded)
	}

	input.ThemeOverride = "winter"
	result = mustAssemble(t, input)
	if result.ContentJSON.ThemeOverride != "winter" {
		t.Fatalf("expected winter theme, got %q", result.ContentJSON.ThemeOverride)
	}

	input.ThemeOverride = ""
	input.PresetOverrides = &entities.PresetOverrides{ThemePackID: "midnight"}
	result = mustAssemble(t, input)
	if result.ContentJSON.ThemeOverride != "midnight" {
		t.Fatalf("expected preset theme, got %q", result.ContentJSON.ThemeOverride)
	}

	input.PresetOverrides = nil
	for _, theme := range []string{" winter ", "   "} {
		input.ThemeOverride = theme
		result = mustAssemble(t, input)
		if result.ContentJSON.ThemeOverride != theme {
			t.Fatalf("expected theme %q kept verbatim, got %q", theme, result.ContentJSON.ThemeOverride)
		}
		encoded, err := json.Marshal(result.ContentJSON)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(encoded), `"themeOverride"`) {
			t.Fatalf("expected themeOverride key present for %q, got %s", theme, encoded)
		}
	}
}

func TestSEODerivation(t *testing.T) {
	result := mustAssemble(t, entities.AssemblyInput{Template: launchTemplate(), Title: "Winter Sale"})
	seo := result.SEO
	if seo.MetaTitle != "Winter Sale" {
		t.Fatalf("expected metaTitle Winter Sale, got %q", seo.MetaTitle)
	}
	if !strings.Contains(seo.MetaDescription, "Winter Sale") {
		t.Fatalf("expected description mentioning title, got %q", seo.MetaDescription)
	}
	if seo.OgTitle != seo.MetaTitle || seo.OgDescription != seo.MetaDescription {
		t.Fatalf("expected og fields mirrored: %+v", seo)
	}
}

func TestSEOPresetDefaults(t *testing.T) {
	preset := &entities.PresetOverrides{SEODefaults: entities.SEODefaults{
		SiteName:               "Acme",
		TitleSuffix:            "| Acme",
		DefaultMetaDescription: "Acme outdoor gear.",
	}}

	seo := DeriveSEO("Winter Sale", "  ", "", preset)
	if seo.MetaTitle != "Winter Sale | Acme" || seo.MetaDescription != "Acme outdoor gear." {
		t.Fatalf("unexpected seo: %+v", seo)
	}

	seo = DeriveSEO("Winter Sale", " Deals | Acme ", " Custom ", preset)
	if seo.MetaTitle != "Deals | Acme" || seo.MetaDescription != "Custom" {
		t.Fatalf("expected suffix not duplicated and trimmed input kept: %+v", seo)
	}

	seo = DeriveSEO("", "", "", &entities.PresetOverrides{SEODefaults: entities.SEODefaults{SiteName: "Acme"}})
	if !strings.HasPrefix(seo.MetaDescription, "Acme") {
		t.Fatalf("expected site name fallback, got %q", seo.MetaDescription)
	}
}
