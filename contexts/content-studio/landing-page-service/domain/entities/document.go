package entities

// DocumentSchemaVersion is the schema version of ContentDocument.
const DocumentSchemaVersion = 1

// ContentDocument is the persisted page content. ThemeOverride is omitted from
// the encoded form when empty; absence is the "no override" signal.
type ContentDocument struct {
	Version       int     `json:"version"`
	Blocks        []Block `json:"blocks"`
	ThemeOverride string  `json:"themeOverride,omitempty"`
}

// HasThemeOverride reports whether the document carries a theme override.
func (d ContentDocument) HasThemeOverride() bool {
	return d.ThemeOverride != ""
}

// SeoMetadata always mirrors the og fields from the meta fields.
type SeoMetadata struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OgTitle         string `json:"ogTitle"`
	OgDescription   string `json:"ogDescription"`
}

// AssemblyResult is the output of a single page assembly.
type AssemblyResult struct {
	ContentJSON ContentDocument `json:"contentJson"`
	SEO         SeoMetadata     `json:"seo"`
}
