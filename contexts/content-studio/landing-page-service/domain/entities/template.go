package entities

// TemplateBlock is a block blueprint: a type plus its default data.
type TemplateBlock struct {
	Type BlockType      `json:"type" yaml:"type"`
	Data map[string]any `json:"data" yaml:"data"`
}

// Template is a named, ordered list of block blueprints. Templates are owned by
// the template library and must never be mutated by assembly.
type Template struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Blocks      []TemplateBlock `json:"blocks" yaml:"blocks"`
}
