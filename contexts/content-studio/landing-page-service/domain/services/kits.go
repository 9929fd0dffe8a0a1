package services

import (
	"regexp"
	"strings"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
)

var (
	kitSlugSpaces  = regexp.MustCompile(`\s+`)
	kitSlugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	kitSlugDashes  = regexp.MustCompile(`-{2,}`)
)

// KitSectionID derives the section id for a kit, e.g. "Safety Tips" -> "kit-safety-tips".
func KitSectionID(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = kitSlugSpaces.ReplaceAllString(slug, "-")
	slug = kitSlugInvalid.ReplaceAllString(slug, "")
	slug = strings.Trim(kitSlugDashes.ReplaceAllString(slug, "-"), "-")
	return "kit-" + slug
}

// ResolveKits looks up each requested kit by exact name. Unknown names are
// skipped since campaigns may reference optional kits.
func ResolveKits(names []string, available []entities.Kit) []entities.ContentSection {
	byName := make(map[string]entities.Kit, len(available))
	for _, kit := range available {
		if _, exists := byName[kit.Name]; !exists {
			byName[kit.Name] = kit
		}
	}

	sections := make([]entities.ContentSection, 0, len(names))
	for _, name := range names {
		kit, ok := byName[name]
		if !ok {
			continue
		}
		sections = append(sections, entities.ContentSection{
			ID:     KitSectionID(kit.Name),
			Name:   kit.Name,
			Blocks: append(entities.RawBlocks(nil), kit.Blocks...),
		})
	}
	return sections
}

// MergeKitNames puts page-recommended kits first, then pack defaults not
// already present. Order is preserved and duplicates dropped.
func MergeKitNames(packDefaults []string, pageRecommended []string) []string {
	seen := make(map[string]struct{}, len(packDefaults)+len(pageRecommended))
	merged := make([]string, 0, len(packDefaults)+len(pageRecommended))
	for _, group := range [][]string{pageRecommended, packDefaults} {
		for _, name := range group {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, name)
		}
	}
	return merged
}
