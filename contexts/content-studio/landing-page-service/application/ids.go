package application

import (
	"strings"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

// BlockIDFunc adapts a block id generator to the assembler's IDFunc. A nil
// generator yields a nil func so assembly reports ErrIDGeneratorRequired.
func BlockIDFunc(generator ports.BlockIDGenerator) entities.IDFunc {
	if generator == nil {
		return nil
	}
	return generator.NewBlockID
}

// ScopedBlockIDFunc returns a generator private to one concurrent assembly run.
func ScopedBlockIDFunc(generator ports.BlockIDGenerator, scope string) entities.IDFunc {
	if generator == nil {
		return nil
	}
	return generator.ScopedBlockIDs(scope)
}

// ParseSectionMode accepts an empty value as detach.
func ParseSectionMode(value string) (entities.SectionMode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.SectionModeDetach, nil
	}
	mode, ok := entities.NormalizeSectionMode(value)
	if !ok {
		return "", domainerrors.ErrInvalidRequest
	}
	return mode, nil
}

// ParseCTADestination accepts an empty value as shop.
func ParseCTADestination(value string) (entities.CTADestination, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.CTADestinationShop, nil
	}
	destination, ok := entities.NormalizeCTADestination(value)
	if !ok {
		return "", domainerrors.ErrInvalidRequest
	}
	return destination, nil
}
