package entities

import (
	"fmt"
	"sync/atomic"
)

// IDFunc yields a fresh identifier on every call.
type IDFunc func() string

// SequentialIDs returns a deterministic generator producing prefix-1, prefix-2, ...
// It is not meant to be shared across concurrent assembly calls.
func SequentialIDs(prefix string) IDFunc {
	var counter uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, atomic.AddUint64(&counter, 1))
	}
}

type CTADestination string

const (
	CTADestinationShop    CTADestination = "shop"
	CTADestinationProduct CTADestination = "product"
	CTADestinationQuote   CTADestination = "quote"
)

func NormalizeCTADestination(value string) (CTADestination, bool) {
	switch CTADestination(value) {
	case CTADestinationShop, CTADestinationProduct, CTADestinationQuote:
		return CTADestination(value), true
	default:
		return "", false
	}
}

type SEODefaults struct {
	SiteName               string `json:"siteName,omitempty" yaml:"site_name,omitempty"`
	TitleSuffix            string `json:"titleSuffix,omitempty" yaml:"title_suffix,omitempty"`
	DefaultMetaDescription string `json:"defaultMetaDescription,omitempty" yaml:"default_meta_description,omitempty"`
}

type GlobalCTADefaults struct {
	PrimaryCtaText   string `json:"primaryCtaText,omitempty" yaml:"primary_cta_text,omitempty"`
	PrimaryCtaHref   string `json:"primaryCtaHref,omitempty" yaml:"primary_cta_href,omitempty"`
	SecondaryCtaText string `json:"secondaryCtaText,omitempty" yaml:"secondary_cta_text,omitempty"`
	SecondaryCtaHref string `json:"secondaryCtaHref,omitempty" yaml:"secondary_cta_href,omitempty"`
}

// PresetOverrides carries theme-pack defaults consulted as fallbacks during assembly.
type PresetOverrides struct {
	ThemePackID       string            `json:"themePackId,omitempty" yaml:"theme_pack_id,omitempty"`
	SEODefaults       SEODefaults       `json:"seoDefaults" yaml:"seo_defaults"`
	GlobalCTADefaults GlobalCTADefaults `json:"globalCtaDefaults" yaml:"global_cta_defaults"`
}

// AssemblyInput is everything a single page assembly consumes.
type AssemblyInput struct {
	Template            Template
	PrimaryProductID    string
	SecondaryProductIDs []string
	Sections            []ContentSection
	SectionMode         SectionMode
	CTADestination      CTADestination
	ThemeOverride       string
	Title               string
	MetaTitle           string
	MetaDescription     string
	PresetOverrides     *PresetOverrides
}
