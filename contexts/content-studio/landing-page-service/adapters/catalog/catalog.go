// Package catalog is the read-only template library: templates, campaign packs
// and starter kits decoded from YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	"storefront/contexts/content-studio/landing-page-service/domain/services"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type document struct {
	Templates []entities.Template     `yaml:"templates"`
	Packs     []entities.CampaignPack `yaml:"packs"`
	Kits      []kitDocument           `yaml:"kits"`
}

// kitDocument keeps blocks as a raw node so a malformed list degrades to an
// empty kit instead of failing the whole catalog.
type kitDocument struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Blocks      yaml.Node `yaml:"blocks"`
}

type rawBlockDocument struct {
	Type     string         `yaml:"type"`
	Data     map[string]any `yaml:"data"`
	Settings map[string]any `yaml:"settings"`
}

// Catalog implements ports.Catalog. It is immutable after construction and
// safe for concurrent use.
type Catalog struct {
	templates     map[string]entities.Template
	templateOrder []string
	packs         map[string]entities.CampaignPack
	packOrder     []string
	kits          []entities.Kit
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Load reads a catalog file, falling back to the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		templates: make(map[string]entities.Template, len(doc.Templates)),
		packs:     make(map[string]entities.CampaignPack, len(doc.Packs)),
	}
	for _, template := range doc.Templates {
		id := strings.TrimSpace(template.ID)
		if id == "" {
			return nil, errors.New("decode catalog: template id is required")
		}
		if _, exists := c.templates[id]; exists {
			return nil, fmt.Errorf("decode catalog: duplicate template %s", id)
		}
		for i, block := range template.Blocks {
			if strings.TrimSpace(string(block.Type)) == "" {
				return nil, fmt.Errorf("decode catalog: template %s block %d has no type", id, i)
			}
		}
		template.ID = id
		c.templates[id] = template
		c.templateOrder = append(c.templateOrder, id)
	}
	for _, pack := range doc.Packs {
		id := strings.TrimSpace(pack.ID)
		if id == "" {
			return nil, errors.New("decode catalog: pack id is required")
		}
		if _, exists := c.packs[id]; exists {
			return nil, fmt.Errorf("decode catalog: duplicate pack %s", id)
		}
		pack.ID = id
		c.packs[id] = pack
		c.packOrder = append(c.packOrder, id)
	}
	for _, item := range doc.Kits {
		kit, err := item.toKit()
		if err != nil {
			return nil, err
		}
		c.kits = append(c.kits, kit)
	}
	return c, nil
}

func (k kitDocument) toKit() (entities.Kit, error) {
	kit := entities.Kit{
		Name:        strings.TrimSpace(k.Name),
		Description: strings.TrimSpace(k.Description),
	}
	if kit.Name == "" {
		return entities.Kit{}, errors.New("decode catalog: kit name is required")
	}
	if k.Blocks.Kind != yaml.SequenceNode {
		return kit, nil
	}
	var blocks []rawBlockDocument
	if err := k.Blocks.Decode(&blocks); err != nil {
		return entities.Kit{}, fmt.Errorf("decode catalog: kit %s: %w", kit.Name, err)
	}
	for i, block := range blocks {
		if strings.TrimSpace(block.Type) == "" {
			return entities.Kit{}, fmt.Errorf("decode catalog: kit %s block %d has no type", kit.Name, i)
		}
		kit.Blocks = append(kit.Blocks, entities.RawBlock{
			Type:     entities.BlockType(block.Type),
			Data:     block.Data,
			Settings: block.Settings,
		})
	}
	return kit, nil
}

func (c *Catalog) GetTemplate(templateID string) (entities.Template, bool) {
	template, ok := c.templates[strings.TrimSpace(templateID)]
	if !ok {
		return entities.Template{}, false
	}
	return services.CloneTemplate(template), true
}

func (c *Catalog) ListTemplates() []entities.Template {
	items := make([]entities.Template, 0, len(c.templateOrder))
	for _, id := range c.templateOrder {
		items = append(items, services.CloneTemplate(c.templates[id]))
	}
	return items
}

func (c *Catalog) GetPack(packID string) (entities.CampaignPack, bool) {
	pack, ok := c.packs[strings.TrimSpace(packID)]
	if !ok {
		return entities.CampaignPack{}, false
	}
	return clonePack(pack), true
}

func (c *Catalog) ListPacks() []entities.CampaignPack {
	items := make([]entities.CampaignPack, 0, len(c.packOrder))
	for _, id := range c.packOrder {
		items = append(items, clonePack(c.packs[id]))
	}
	return items
}

// StarterKits returns the kits shipped with the catalog, sorted by name.
func (c *Catalog) StarterKits() []entities.Kit {
	items := make([]entities.Kit, 0, len(c.kits))
	for _, kit := range c.kits {
		items = append(items, services.CloneKit(kit))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func clonePack(pack entities.CampaignPack) entities.CampaignPack {
	out := pack
	out.DefaultKits = append([]string(nil), pack.DefaultKits...)
	out.Pages = make([]entities.PageDefinition, len(pack.Pages))
	for i, page := range pack.Pages {
		page.RecommendedKits = append([]string(nil), page.RecommendedKits...)
		out.Pages[i] = page
	}
	return out
}
