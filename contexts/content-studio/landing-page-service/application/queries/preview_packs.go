package queries

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/domain/services"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

const defaultPreviewConcurrency = 4

type PreviewPacksQuery struct {
	PackIDs []string
	Options entities.PackOptions
}

type PreviewPacksUseCase struct {
	Catalog     ports.Catalog
	Kits        ports.KitRepository
	BlockIDs    ports.BlockIDGenerator
	Concurrency int
	Logger      *slog.Logger
}

// Execute assembles several packs in parallel without persisting anything.
// Results keep the request order; the first failure cancels the batch. Each
// pack draws block ids from its own scoped generator.
func (u PreviewPacksUseCase) Execute(ctx context.Context, query PreviewPacksQuery) ([]entities.PackResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if len(query.PackIDs) == 0 {
		return nil, domainerrors.ErrInvalidRequest
	}
	for _, id := range query.PackIDs {
		if strings.TrimSpace(id) == "" {
			return nil, domainerrors.ErrInvalidRequest
		}
	}

	kits, err := u.Kits.ListKits(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]entities.PackResult, len(query.PackIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(u.concurrency())
	for i, packID := range query.PackIDs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			id := strings.TrimSpace(packID)
			newID := application.ScopedBlockIDFunc(u.BlockIDs, id)
			result, err := services.GeneratePack(id, u.Catalog, u.Catalog, kits, query.Options, newID)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		logger.Warn("preview packs failed",
			"event", "landing_preview_packs_failed",
			"module", "content-studio/landing-page-service",
			"layer", "application",
			"pack_count", len(query.PackIDs),
			"error", err.Error(),
		)
		return nil, err
	}

	logger.Debug("preview packs built",
		"event", "landing_preview_packs_built",
		"module", "content-studio/landing-page-service",
		"layer", "application",
		"pack_count", len(results),
	)
	return results, nil
}

func (u PreviewPacksUseCase) concurrency() int {
	if u.Concurrency <= 0 {
		return defaultPreviewConcurrency
	}
	return u.Concurrency
}
