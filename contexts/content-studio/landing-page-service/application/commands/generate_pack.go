package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/domain/services"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

type GeneratePackCommand struct {
	PackID              string
	UserID              string
	IdempotencyKey      string
	PrimaryProductID    string
	SecondaryProductIDs []string
	SectionMode         string
	CTADestination      string
	PresetOverrides     *entities.PresetOverrides
	DryRun              bool
}

type GeneratePackResult struct {
	Pack     entities.CampaignPack `json:"pack"`
	Pages    []entities.Page       `json:"pages"`
	DryRun   bool                  `json:"dry_run"`
	Replayed bool                  `json:"-"`
}

type GeneratePackUseCase struct {
	Catalog        ports.Catalog
	Kits           ports.KitRepository
	Pages          ports.PageRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	BlockIDs       ports.BlockIDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// Execute generates every page of a campaign pack. Dry runs return the
// assembled payloads without ids; otherwise pages are stored as drafts with
// their landing.page_drafted outbox events under the caller's idempotency key.
func (u GeneratePackUseCase) Execute(ctx context.Context, cmd GeneratePackCommand) (GeneratePackResult, error) {
	logger := application.ResolveLogger(u.Logger)
	cmd.PackID = strings.TrimSpace(cmd.PackID)
	if cmd.PackID == "" {
		return GeneratePackResult{}, domainerrors.ErrInvalidRequest
	}
	options, err := packOptions(cmd)
	if err != nil {
		return GeneratePackResult{}, err
	}

	if cmd.DryRun {
		pack, payloads, err := u.generate(ctx, cmd.PackID, options)
		if err != nil {
			return GeneratePackResult{}, err
		}
		pages := make([]entities.Page, 0, len(payloads))
		for _, payload := range payloads {
			pages = append(pages, entities.Page{PackID: pack.ID, Payload: payload})
		}
		return GeneratePackResult{Pack: pack, Pages: pages, DryRun: true}, nil
	}

	if strings.TrimSpace(cmd.UserID) == "" {
		return GeneratePackResult{}, domainerrors.ErrInvalidRequest
	}
	key := strings.TrimSpace(cmd.IdempotencyKey)
	if key == "" {
		return GeneratePackResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	logger.Info("generate pack started",
		"event", "landing_generate_pack_started",
		"module", "content-studio/landing-page-service",
		"layer", "application",
		"pack_id", cmd.PackID,
		"user_id", cmd.UserID,
		"idempotency_key", key,
	)

	now := resolveNow(u.Clock)
	requestHash, err := hashRequest(options, "landing_generate_pack", cmd.UserID, cmd.PackID)
	if err != nil {
		return GeneratePackResult{}, err
	}

	var out GeneratePackResult
	replayed, err := idempotentRun{
		Store:  u.Idempotency,
		Now:    now,
		TTL:    u.IdempotencyTTL,
		Logger: u.Logger,
	}.run(
		ctx,
		key,
		requestHash,
		func(raw []byte) error { return json.Unmarshal(raw, &out) },
		func() ([]byte, error) {
			pack, payloads, err := u.generate(ctx, cmd.PackID, options)
			if err != nil {
				return nil, err
			}
			pages, err := draftWriter{Pages: u.Pages, IDGenerator: u.IDGenerator}.write(ctx, cmd.UserID, pack.ID, payloads, now)
			if err != nil {
				return nil, err
			}
			return json.Marshal(GeneratePackResult{Pack: pack, Pages: pages})
		},
	)
	if err != nil {
		logger.Error("generate pack failed",
			"event", "landing_generate_pack_failed",
			"module", "content-studio/landing-page-service",
			"layer", "application",
			"pack_id", cmd.PackID,
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return GeneratePackResult{}, err
	}
	out.Replayed = replayed

	logger.Info("generate pack completed",
		"event", "landing_generate_pack_completed",
		"module", "content-studio/landing-page-service",
		"layer", "application",
		"pack_id", cmd.PackID,
		"user_id", cmd.UserID,
		"page_count", len(out.Pages),
		"replayed", replayed,
	)
	return out, nil
}

func (u GeneratePackUseCase) generate(
	ctx context.Context,
	packID string,
	options entities.PackOptions,
) (entities.CampaignPack, []entities.PagePayload, error) {
	kits, err := u.Kits.ListKits(ctx)
	if err != nil {
		return entities.CampaignPack{}, nil, err
	}
	result, err := services.GeneratePack(packID, u.Catalog, u.Catalog, kits, options, application.BlockIDFunc(u.BlockIDs))
	if err != nil {
		return entities.CampaignPack{}, nil, err
	}
	return result.Pack, result.Pages, nil
}

func packOptions(cmd GeneratePackCommand) (entities.PackOptions, error) {
	mode, err := application.ParseSectionMode(cmd.SectionMode)
	if err != nil {
		return entities.PackOptions{}, err
	}
	destination, err := application.ParseCTADestination(cmd.CTADestination)
	if err != nil {
		return entities.PackOptions{}, err
	}
	secondary := make([]string, 0, len(cmd.SecondaryProductIDs))
	for _, id := range cmd.SecondaryProductIDs {
		if id = strings.TrimSpace(id); id != "" {
			secondary = append(secondary, id)
		}
	}
	return entities.PackOptions{
		PrimaryProductID:    strings.TrimSpace(cmd.PrimaryProductID),
		SecondaryProductIDs: secondary,
		SectionMode:         mode,
		CTADestination:      destination,
		PresetOverrides:     cmd.PresetOverrides,
	}, nil
}
