package services

import (
	"strings"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
)

const fallbackDescriptionTail = "Discover our featured products and offers."

// DeriveSEO resolves meta and open-graph text for a page.
func DeriveSEO(title, metaTitle, metaDescription string, preset *entities.PresetOverrides) entities.SeoMetadata {
	var defaults entities.SEODefaults
	if preset != nil {
		defaults = preset.SEODefaults
	}

	trimmedTitle := strings.TrimSpace(title)
	resolvedTitle := strings.TrimSpace(metaTitle)
	if resolvedTitle == "" {
		resolvedTitle = trimmedTitle
	}
	if suffix := strings.TrimSpace(defaults.TitleSuffix); suffix != "" && !strings.Contains(resolvedTitle, suffix) {
		resolvedTitle = strings.TrimSpace(resolvedTitle + " " + suffix)
	}

	description := strings.TrimSpace(metaDescription)
	if description == "" {
		description = strings.TrimSpace(defaults.DefaultMetaDescription)
	}
	if description == "" {
		description = fallbackDescription(trimmedTitle, strings.TrimSpace(defaults.SiteName))
	}

	return entities.SeoMetadata{
		MetaTitle:       resolvedTitle,
		MetaDescription: description,
		OgTitle:         resolvedTitle,
		OgDescription:   description,
	}
}

func fallbackDescription(title, siteName string) string {
	subject := title
	if subject == "" {
		subject = siteName
	}
	if subject == "" {
		return fallbackDescriptionTail
	}
	return subject + " - " + fallbackDescriptionTail
}
