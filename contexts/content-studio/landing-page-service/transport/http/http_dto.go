package httptransport

import "encoding/json"

type TemplateBlockDTO struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

type TemplateDTO struct {
	TemplateID  string             `json:"template_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Blocks      []TemplateBlockDTO `json:"blocks"`
}

type ListTemplatesResponse struct {
	Items []TemplateDTO `json:"items"`
}

type GetTemplateResponse struct {
	Item TemplateDTO `json:"item"`
}

type PageDefinitionDTO struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	RecommendedKits []string `json:"recommended_kits,omitempty"`
}

type PackDTO struct {
	PackID           string              `json:"pack_id"`
	Name             string              `json:"name"`
	Description      string              `json:"description,omitempty"`
	TemplateID       string              `json:"template_id"`
	RecommendedTheme string              `json:"recommended_theme,omitempty"`
	DefaultKits      []string            `json:"default_kits"`
	Pages            []PageDefinitionDTO `json:"pages"`
}

type ListPacksResponse struct {
	Items []PackDTO `json:"items"`
}

type KitDTO struct {
	Name        string          `json:"name"`
	SectionID   string          `json:"section_id"`
	Description string          `json:"description,omitempty"`
	Blocks      json.RawMessage `json:"blocks"`
}

type ListKitsResponse struct {
	Items []KitDTO `json:"items"`
}

// UpsertKitRequest keeps blocks raw; a non-array value stores an empty kit.
type UpsertKitRequest struct {
	Description string          `json:"description,omitempty"`
	Blocks      json.RawMessage `json:"blocks"`
}

type UpsertKitResponse struct {
	Item KitDTO `json:"item"`
}

type SEODefaultsDTO struct {
	SiteName               string `json:"site_name,omitempty"`
	TitleSuffix            string `json:"title_suffix,omitempty"`
	DefaultMetaDescription string `json:"default_meta_description,omitempty"`
}

type GlobalCTADefaultsDTO struct {
	PrimaryCtaText   string `json:"primary_cta_text,omitempty"`
	PrimaryCtaHref   string `json:"primary_cta_href,omitempty"`
	SecondaryCtaText string `json:"secondary_cta_text,omitempty"`
	SecondaryCtaHref string `json:"secondary_cta_href,omitempty"`
}

type PresetOverridesDTO struct {
	ThemePackID       string               `json:"theme_pack_id,omitempty"`
	SEODefaults       SEODefaultsDTO       `json:"seo_defaults"`
	GlobalCTADefaults GlobalCTADefaultsDTO `json:"global_cta_defaults"`
}

type AssemblePageRequest struct {
	TemplateID          string              `json:"template_id"`
	PrimaryProductID    string              `json:"primary_product_id,omitempty"`
	SecondaryProductIDs []string            `json:"secondary_product_ids,omitempty"`
	KitNames            []string            `json:"kit_names,omitempty"`
	SectionMode         string              `json:"section_mode,omitempty"`
	CTADestination      string              `json:"cta_destination,omitempty"`
	ThemeOverride       string              `json:"theme_override,omitempty"`
	Title               string              `json:"title,omitempty"`
	MetaTitle           string              `json:"meta_title,omitempty"`
	MetaDescription     string              `json:"meta_description,omitempty"`
	PresetOverrides     *PresetOverridesDTO `json:"preset_overrides,omitempty"`
	SaveAsDraft         bool                `json:"save_as_draft,omitempty"`
	Slug                string              `json:"slug,omitempty"`
}

type SeoDTO struct {
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	OgTitle         string `json:"og_title"`
	OgDescription   string `json:"og_description"`
}

type AssemblePageResponse struct {
	ContentJSON json.RawMessage `json:"content_json"`
	SEO         SeoDTO          `json:"seo"`
	Page        *PageDTO        `json:"page,omitempty"`
	Replayed    bool            `json:"replayed,omitempty"`
}

// PageDTO mirrors the stored page payload. ContentJSON is the versioned
// content document exactly as persisted.
type PageDTO struct {
	PageID          string          `json:"page_id,omitempty"`
	PackID          string          `json:"pack_id,omitempty"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	PageType        string          `json:"page_type"`
	Template        string          `json:"template"`
	Status          string          `json:"status"`
	MetaTitle       string          `json:"meta_title"`
	MetaDescription string          `json:"meta_description"`
	OgTitle         string          `json:"og_title"`
	OgDescription   string          `json:"og_description"`
	ContentJSON     json.RawMessage `json:"content_json"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

type GeneratePackRequest struct {
	PrimaryProductID    string              `json:"primary_product_id,omitempty"`
	SecondaryProductIDs []string            `json:"secondary_product_ids,omitempty"`
	SectionMode         string              `json:"section_mode,omitempty"`
	CTADestination      string              `json:"cta_destination,omitempty"`
	PresetOverrides     *PresetOverridesDTO `json:"preset_overrides,omitempty"`
}

type GeneratePackResponse struct {
	PackID   string    `json:"pack_id"`
	DryRun   bool      `json:"dry_run"`
	Replayed bool      `json:"replayed,omitempty"`
	Pages    []PageDTO `json:"pages"`
}

type PreviewPacksRequest struct {
	PackIDs             []string            `json:"pack_ids"`
	PrimaryProductID    string              `json:"primary_product_id,omitempty"`
	SecondaryProductIDs []string            `json:"secondary_product_ids,omitempty"`
	SectionMode         string              `json:"section_mode,omitempty"`
	CTADestination      string              `json:"cta_destination,omitempty"`
	PresetOverrides     *PresetOverridesDTO `json:"preset_overrides,omitempty"`
}

type PackPreviewDTO struct {
	PackID string    `json:"pack_id"`
	Pages  []PageDTO `json:"pages"`
}

type PreviewPacksResponse struct {
	Items []PackPreviewDTO `json:"items"`
}

type GetPageResponse struct {
	Item PageDTO `json:"item"`
}

type ListPagesResponse struct {
	Items []PageDTO `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
