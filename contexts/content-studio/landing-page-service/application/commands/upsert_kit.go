package commands

import (
	"context"
	"log/slog"
	"strings"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

type UpsertKitCommand struct {
	UserID      string
	Name        string
	Description string
	Blocks      entities.RawBlocks
}

type UpsertKitUseCase struct {
	Kits   ports.KitRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u UpsertKitUseCase) Execute(ctx context.Context, cmd UpsertKitCommand) (entities.Kit, error) {
	logger := application.ResolveLogger(u.Logger)
	name := strings.TrimSpace(cmd.Name)
	if name == "" || strings.TrimSpace(cmd.UserID) == "" {
		return entities.Kit{}, domainerrors.ErrInvalidRequest
	}
	for _, block := range cmd.Blocks {
		if strings.TrimSpace(string(block.Type)) == "" {
			return entities.Kit{}, domainerrors.ErrInvalidRequest
		}
	}

	kit := entities.Kit{
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		Blocks:      cmd.Blocks,
	}
	if err := u.Kits.UpsertKit(ctx, kit, resolveNow(u.Clock)); err != nil {
		logger.Error("upsert kit failed",
			"event", "landing_upsert_kit_failed",
			"module", "content-studio/landing-page-service",
			"layer", "application",
			"kit_name", name,
			"error", err.Error(),
		)
		return entities.Kit{}, err
	}

	logger.Info("kit upserted",
		"event", "landing_kit_upserted",
		"module", "content-studio/landing-page-service",
		"layer", "application",
		"kit_name", name,
		"user_id", cmd.UserID,
		"block_count", len(cmd.Blocks),
	)
	return u.Kits.GetKit(ctx, name)
}
