package services

import (
	"fmt"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
)

// TemplateLookup is read-only access to the template library.
type TemplateLookup interface {
	GetTemplate(templateID string) (entities.Template, bool)
}

// PackLookup is read-only access to the campaign pack catalog.
type PackLookup interface {
	GetPack(packID string) (entities.CampaignPack, bool)
}

// GeneratePack assembles every page of a campaign pack into a draft landing
// page payload. An unknown pack or template fails before any page is built.
func GeneratePack(
	packID string,
	templates TemplateLookup,
	packs PackLookup,
	availableKits []entities.Kit,
	options entities.PackOptions,
	newID entities.IDFunc,
) (entities.PackResult, error) {
	if newID == nil {
		return entities.PackResult{}, domainerrors.ErrIDGeneratorRequired
	}
	pack, ok := packs.GetPack(packID)
	if !ok {
		return entities.PackResult{}, fmt.Errorf("%w: %s", domainerrors.ErrPackNotFound, packID)
	}
	template, ok := templates.GetTemplate(pack.TemplateID)
	if !ok {
		return entities.PackResult{}, fmt.Errorf("%w: %s", domainerrors.ErrTemplateNotFound, pack.TemplateID)
	}

	options = withPackDefaults(options)
	pages := make([]entities.PagePayload, 0, len(pack.Pages))
	for _, page := range pack.Pages {
		sections := ResolveKits(MergeKitNames(pack.DefaultKits, page.RecommendedKits), availableKits)
		result, err := Assemble(entities.AssemblyInput{
			Template:            template,
			PrimaryProductID:    options.PrimaryProductID,
			SecondaryProductIDs: options.SecondaryProductIDs,
			Sections:            sections,
			SectionMode:         options.SectionMode,
			CTADestination:      options.CTADestination,
			ThemeOverride:       pack.RecommendedTheme,
			Title:               page.Title,
			MetaTitle:           page.MetaTitle,
			MetaDescription:     page.MetaDescription,
			PresetOverrides:     options.PresetOverrides,
		}, newID)
		if err != nil {
			return entities.PackResult{}, err
		}
		pages = append(pages, NewDraftPayload(page.Title, page.Slug, pack.TemplateID, result))
	}

	return entities.PackResult{Pack: pack, Pages: pages}, nil
}

// NewDraftPayload wraps an assembly result as a draft landing page.
func NewDraftPayload(title, slug, templateID string, result entities.AssemblyResult) entities.PagePayload {
	return entities.PagePayload{
		Title:           title,
		Slug:            slug,
		PageType:        entities.PageTypeLanding,
		ContentJSON:     result.ContentJSON,
		Template:        templateID,
		Status:          entities.PageStatusDraft,
		MetaTitle:       result.SEO.MetaTitle,
		MetaDescription: result.SEO.MetaDescription,
		OgTitle:         result.SEO.OgTitle,
		OgDescription:   result.SEO.OgDescription,
	}
}

func withPackDefaults(options entities.PackOptions) entities.PackOptions {
	if options.SecondaryProductIDs == nil {
		options.SecondaryProductIDs = []string{}
	}
	if options.SectionMode == "" {
		options.SectionMode = entities.SectionModeDetach
	}
	if options.CTADestination == "" {
		options.CTADestination = entities.CTADestinationShop
	}
	return options
}
