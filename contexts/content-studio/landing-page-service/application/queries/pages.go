package queries

import (
	"context"
	"strings"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

const maxPageListLimit = 200

type GetPageUseCase struct {
	Pages ports.PageRepository
}

func (u GetPageUseCase) Execute(ctx context.Context, pageID string) (entities.Page, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return entities.Page{}, domainerrors.ErrInvalidRequest
	}
	return u.Pages.GetPage(ctx, pageID)
}

type ListPagesUseCase struct {
	Pages ports.PageRepository
}

func (u ListPagesUseCase) Execute(ctx context.Context, filter ports.PageFilter) ([]entities.Page, error) {
	filter.PackID = strings.TrimSpace(filter.PackID)
	if filter.Limit < 0 {
		return nil, domainerrors.ErrInvalidRequest
	}
	if filter.Limit > maxPageListLimit {
		filter.Limit = maxPageListLimit
	}
	return u.Pages.ListPages(ctx, filter)
}
