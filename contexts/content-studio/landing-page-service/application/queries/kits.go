package queries

import (
	"context"
	"log/slog"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

type ListKitsUseCase struct {
	Kits   ports.KitRepository
	Logger *slog.Logger
}

func (u ListKitsUseCase) Execute(ctx context.Context) ([]entities.Kit, error) {
	items, err := u.Kits.ListKits(ctx)
	if err != nil {
		application.ResolveLogger(u.Logger).Error("list kits failed",
			"event", "landing_list_kits_failed",
			"module", "content-studio/landing-page-service",
			"layer", "application",
			"error", err.Error(),
		)
		return nil, err
	}
	return items, nil
}
