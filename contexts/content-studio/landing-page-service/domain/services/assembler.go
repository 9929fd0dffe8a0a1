package services

import (
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
)

const (
	defaultGridTitle = "More Products"
	maxGridColumns   = 3
)

// Assemble compiles a template plus marketing inputs into a content document
// and its SEO metadata. Stages run in a fixed order and each consumes the
// block list produced by the previous one:
// 1) clone template blocks
// 2) primary product injection
// 3) secondary product grid injection
// 4) call-to-action override
// 5) section append
// 6) id/version backfill
// 7) document and SEO derivation.
//
// The template is never mutated. Given the same input and an identically
// seeded newID the result is identical.
func Assemble(input entities.AssemblyInput, newID entities.IDFunc) (entities.AssemblyResult, error) {
	if newID == nil {
		return entities.AssemblyResult{}, domainerrors.ErrIDGeneratorRequired
	}

	blocks := cloneTemplateBlocks(input.Template, newID)
	blocks = injectPrimaryProduct(blocks, input.PrimaryProductID, newID)
	blocks = injectSecondaryProducts(blocks, input.SecondaryProductIDs, newID)
	applyCTA(blocks, ResolveCTA(input.CTADestination, input.PrimaryProductID, input.PresetOverrides))
	blocks = appendSections(blocks, input.Sections, input.SectionMode, newID)
	backfillIdentity(blocks, newID)

	document := entities.ContentDocument{
		Version: entities.DocumentSchemaVersion,
		Blocks:  blocks,
	}
	if theme := resolveThemeOverride(input.ThemeOverride, input.PresetOverrides); theme != "" {
		document.ThemeOverride = theme
	}

	return entities.AssemblyResult{
		ContentJSON: document,
		SEO:         DeriveSEO(input.Title, input.MetaTitle, input.MetaDescription, input.PresetOverrides),
	}, nil
}

func newBlock(blockType entities.BlockType, data map[string]any, settings map[string]any, newID entities.IDFunc) entities.Block {
	if data == nil {
		data = map[string]any{}
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return entities.Block{
		ID:       newID(),
		Type:     blockType,
		Version:  entities.BlockSchemaVersion,
		Data:     data,
		Settings: settings,
	}
}

func cloneTemplateBlocks(template entities.Template, newID entities.IDFunc) []entities.Block {
	blocks := make([]entities.Block, 0, len(template.Blocks)+2)
	for _, blueprint := range template.Blocks {
		blocks = append(blocks, newBlock(blueprint.Type, cloneData(blueprint.Data), nil, newID))
	}
	return blocks
}

func injectPrimaryProduct(blocks []entities.Block, productID string, newID entities.IDFunc) []entities.Block {
	if productID == "" {
		return blocks
	}

	found := false
	for i := range blocks {
		if blocks[i].Type == entities.BlockTypeProductHighlight {
			blocks[i].Data["productId"] = productID
			found = true
		}
	}
	if found {
		return blocks
	}

	highlight := newBlock(entities.BlockTypeProductHighlight, entities.ProductHighlightData{
		ProductID:     productID,
		ShowGallery:   true,
		ShowBuyButton: true,
	}.Fields(), nil, newID)

	position := 0
	if heroIndex := indexOfType(blocks, entities.BlockTypeHero); heroIndex >= 0 {
		position = heroIndex + 1
	}
	return insertBlock(blocks, position, highlight)
}

func injectSecondaryProducts(blocks []entities.Block, productIDs []string, newID entities.IDFunc) []entities.Block {
	if len(productIDs) == 0 {
		return blocks
	}

	found := false
	for i := range blocks {
		if blocks[i].Type == entities.BlockTypeProductGrid {
			blocks[i].Data["productIds"] = append([]string{}, productIDs...)
			found = true
		}
	}
	if found {
		return blocks
	}

	grid := newBlock(entities.BlockTypeProductGrid, entities.ProductGridData{
		Title:          defaultGridTitle,
		ProductIDs:     productIDs,
		Columns:        min(len(productIDs), maxGridColumns),
		ShowPrices:     true,
		ShowBuyButtons: true,
	}.Fields(), nil, newID)

	// The midpoint is taken from the list as it stands after primary injection.
	position := max(len(blocks)/2, 1)
	return insertBlock(blocks, min(position, len(blocks)), grid)
}

func appendSections(
	blocks []entities.Block,
	sections []entities.ContentSection,
	mode entities.SectionMode,
	newID entities.IDFunc,
) []entities.Block {
	for _, section := range sections {
		if mode == entities.SectionModeRef {
			blocks = append(blocks, newBlock(entities.BlockTypeSectionRef, entities.SectionRefData{
				SectionID:   section.ID,
				SectionName: section.Name,
			}.Fields(), nil, newID))
			continue
		}
		for _, raw := range section.Blocks {
			// Typeless raw blocks are dropped.
			if raw.Type == "" {
				continue
			}
			blocks = append(blocks, newBlock(raw.Type, cloneData(raw.Data), cloneData(raw.Settings), newID))
		}
	}
	return blocks
}

func backfillIdentity(blocks []entities.Block, newID entities.IDFunc) {
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = newID()
		}
		if blocks[i].Version == 0 {
			blocks[i].Version = entities.BlockSchemaVersion
		}
		if blocks[i].Data == nil {
			blocks[i].Data = map[string]any{}
		}
		if blocks[i].Settings == nil {
			blocks[i].Settings = map[string]any{}
		}
	}
}

func resolveThemeOverride(themeOverride string, preset *entities.PresetOverrides) string {
	if themeOverride != "" {
		return themeOverride
	}
	if preset != nil {
		return preset.ThemePackID
	}
	return ""
}

func indexOfType(blocks []entities.Block, blockType entities.BlockType) int {
	for i := range blocks {
		if blocks[i].Type == blockType {
			return i
		}
	}
	return -1
}

func insertBlock(blocks []entities.Block, position int, block entities.Block) []entities.Block {
	blocks = append(blocks, entities.Block{})
	copy(blocks[position+1:], blocks[position:])
	blocks[position] = block
	return blocks
}
