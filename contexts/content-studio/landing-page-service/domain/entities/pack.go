package entities

import "time"

const (
	PageTypeLanding = "landing"
	PageStatusDraft = "draft"
)

// PageDefinition describes one page inside a campaign pack.
type PageDefinition struct {
	Title           string   `json:"title" yaml:"title"`
	Slug            string   `json:"slug" yaml:"slug"`
	MetaTitle       string   `json:"metaTitle,omitempty" yaml:"meta_title,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty" yaml:"meta_description,omitempty"`
	RecommendedKits []string `json:"recommendedKits,omitempty" yaml:"recommended_kits,omitempty"`
}

// CampaignPack is a set of page definitions sharing a template, theme and kits.
type CampaignPack struct {
	ID               string           `json:"id" yaml:"id"`
	Name             string           `json:"name" yaml:"name"`
	Description      string           `json:"description,omitempty" yaml:"description,omitempty"`
	TemplateID       string           `json:"templateId" yaml:"template_id"`
	RecommendedTheme string           `json:"recommendedTheme,omitempty" yaml:"recommended_theme,omitempty"`
	DefaultKits      []string         `json:"defaultKits,omitempty" yaml:"default_kits,omitempty"`
	Pages            []PageDefinition `json:"pages" yaml:"pages"`
}

// PackOptions are the caller-supplied knobs applied to every page in a pack.
type PackOptions struct {
	PrimaryProductID    string
	SecondaryProductIDs []string
	SectionMode         SectionMode
	CTADestination      CTADestination
	PresetOverrides     *PresetOverrides
}

// PagePayload is the persistable page handed to page storage. Field names and
// the literal draft/landing values are a compatibility surface.
type PagePayload struct {
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	PageType        string          `json:"pageType"`
	ContentJSON     ContentDocument `json:"contentJson"`
	Template        string          `json:"template"`
	Status          string          `json:"status"`
	MetaTitle       string          `json:"metaTitle"`
	MetaDescription string          `json:"metaDescription"`
	OgTitle         string          `json:"ogTitle"`
	OgDescription   string          `json:"ogDescription"`
}

// PackResult is the outcome of generating a whole campaign pack.
type PackResult struct {
	Pack  CampaignPack  `json:"pack"`
	Pages []PagePayload `json:"pages"`
}

// Page is a stored landing page draft.
type Page struct {
	PageID    string      `json:"page_id,omitempty"`
	PackID    string      `json:"pack_id,omitempty"`
	CreatedBy string      `json:"created_by,omitempty"`
	Payload   PagePayload `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
