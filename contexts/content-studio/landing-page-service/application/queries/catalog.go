package queries

import (
	"context"
	"fmt"
	"strings"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

type ListTemplatesUseCase struct {
	Catalog ports.Catalog
}

func (u ListTemplatesUseCase) Execute(_ context.Context) ([]entities.Template, error) {
	return u.Catalog.ListTemplates(), nil
}

type GetTemplateUseCase struct {
	Catalog ports.Catalog
}

func (u GetTemplateUseCase) Execute(_ context.Context, templateID string) (entities.Template, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		return entities.Template{}, domainerrors.ErrInvalidRequest
	}
	template, ok := u.Catalog.GetTemplate(templateID)
	if !ok {
		return entities.Template{}, fmt.Errorf("%w: %s", domainerrors.ErrTemplateNotFound, templateID)
	}
	return template, nil
}

type ListPacksUseCase struct {
	Catalog ports.Catalog
}

func (u ListPacksUseCase) Execute(_ context.Context) ([]entities.CampaignPack, error) {
	return u.Catalog.ListPacks(), nil
}
