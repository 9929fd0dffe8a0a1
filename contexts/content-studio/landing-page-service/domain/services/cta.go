package services

import (
	"strings"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
)

const quoteCTAText = "Get a Quote"

// CTAResolution is the resolved call-to-action for one page. Empty text fields
// mean "leave the block's existing value alone".
type CTAResolution struct {
	Href          string
	Text          string
	SecondaryText string
	SecondaryHref string
}

// ResolveCTA maps a destination and preset defaults onto concrete CTA values.
func ResolveCTA(destination entities.CTADestination, primaryProductID string, preset *entities.PresetOverrides) CTAResolution {
	var defaults entities.GlobalCTADefaults
	if preset != nil {
		defaults = preset.GlobalCTADefaults
	}

	out := CTAResolution{
		Href:          strings.TrimSpace(defaults.PrimaryCtaHref),
		Text:          strings.TrimSpace(defaults.PrimaryCtaText),
		SecondaryText: strings.TrimSpace(defaults.SecondaryCtaText),
		SecondaryHref: strings.TrimSpace(defaults.SecondaryCtaHref),
	}
	if out.Href == "" {
		out.Href = destinationHref(destination, primaryProductID)
	}
	if out.Text == "" && destination == entities.CTADestinationQuote {
		out.Text = quoteCTAText
	}
	return out
}

func destinationHref(destination entities.CTADestination, primaryProductID string) string {
	switch destination {
	case entities.CTADestinationProduct:
		if primaryProductID != "" {
			return "/products/" + primaryProductID
		}
		return "/shop"
	case entities.CTADestinationQuote:
		return "/contact"
	default:
		return "/shop"
	}
}

func applyCTA(blocks []entities.Block, cta CTAResolution) {
	for i := range blocks {
		switch blocks[i].Type {
		case entities.BlockTypeHero:
			setCTAFields(blocks[i].Data, cta, "ctaHref", "ctaText", "secondaryCtaText", "secondaryCtaHref")
		case entities.BlockTypeCallToAction:
			setCTAFields(blocks[i].Data, cta, "primaryCtaHref", "primaryCtaText", "secondaryCtaText", "secondaryCtaHref")
		}
	}
}

func setCTAFields(data map[string]any, cta CTAResolution, hrefKey, textKey, secondaryTextKey, secondaryHrefKey string) {
	data[hrefKey] = cta.Href
	if cta.Text != "" {
		data[textKey] = cta.Text
	}
	if cta.SecondaryText != "" {
		data[secondaryTextKey] = cta.SecondaryText
	}
	if cta.SecondaryHref != "" {
		data[secondaryHrefKey] = cta.SecondaryHref
	}
}
