package services

import "storefront/contexts/content-studio/landing-page-service/domain/entities"

// cloneData deep-copies a block data or settings map. A nil source yields an
// empty map so assembled blocks always carry object-typed payloads.
func cloneData(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneData(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(typed))
		for i, item := range typed {
			out[i] = cloneData(item)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(typed))
		for key, item := range typed {
			out[key] = item
		}
		return out
	case []string:
		return append([]string{}, typed...)
	case []int:
		return append([]int{}, typed...)
	case []float64:
		return append([]float64{}, typed...)
	case []bool:
		return append([]bool{}, typed...)
	default:
		return value
	}
}

// CloneTemplate returns a deep copy of a template so callers can hand out
// catalog entries without exposing the catalog's own maps.
func CloneTemplate(template entities.Template) entities.Template {
	out := template
	out.Blocks = make([]entities.TemplateBlock, len(template.Blocks))
	for i, block := range template.Blocks {
		out.Blocks[i] = entities.TemplateBlock{Type: block.Type, Data: cloneData(block.Data)}
	}
	return out
}

// CloneKit returns a deep copy of a kit.
func CloneKit(kit entities.Kit) entities.Kit {
	out := kit
	if kit.Blocks == nil {
		return out
	}
	out.Blocks = make(entities.RawBlocks, len(kit.Blocks))
	for i, block := range kit.Blocks {
		out.Blocks[i] = entities.RawBlock{
			Type:     block.Type,
			Data:     cloneOptional(block.Data),
			Settings: cloneOptional(block.Settings),
		}
	}
	return out
}

func cloneOptional(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	return cloneData(src)
}
