package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/domain/services"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

type AssemblePageCommand struct {
	TemplateID          string
	PrimaryProductID    string
	SecondaryProductIDs []string
	KitNames            []string
	SectionMode         string
	CTADestination      string
	ThemeOverride       string
	Title               string
	MetaTitle           string
	MetaDescription     string
	PresetOverrides     *entities.PresetOverrides

	// Draft persistence. Slug, UserID and IdempotencyKey are required when set.
	SaveAsDraft    bool
	Slug           string
	UserID         string
	IdempotencyKey string
}

type AssemblePageResult struct {
	Result   entities.AssemblyResult `json:"result"`
	Page     *entities.Page          `json:"page,omitempty"`
	Replayed bool                    `json:"-"`
}

type AssemblePageUseCase struct {
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

// Execute assembles one page from a library template and stored kits. Unknown
// kit names are skipped. With SaveAsDraft the page is persisted as a draft.
func (u AssemblePageUseCase) Execute(ctx context.Context, cmd AssemblePageCommand) (AssemblePageResult, error) {
	logger := application.ResolveLogger(u.Logger)
	cmd.TemplateID = strings.TrimSpace(cmd.TemplateID)
	if cmd.TemplateID == "" {
		return AssemblePageResult{}, domainerrors.ErrInvalidRequest
	}
	if cmd.SaveAsDraft {
		if strings.TrimSpace(cmd.Slug) == "" || strings.TrimSpace(cmd.UserID) == "" {
			return AssemblePageResult{}, domainerrors.ErrInvalidRequest
		}
		if strings.TrimSpace(cmd.IdempotencyKey) == "" {
			return AssemblePageResult{}, domainerrors.ErrIdempotencyKeyRequired
		}
	}

	input, err := u.buildInput(ctx, cmd)
	if err != nil {
		logger.Warn("assemble page rejected",
			"event", "landing_assemble_page_rejected",
			"module", "content-studio/landing-page-service",
			"layer", "application",
			"template_id", cmd.TemplateID,
			"error", err.Error(),
		)
		return AssemblePageResult{}, err
	}

	if !cmd.SaveAsDraft {
		result, err := services.Assemble(input, application.BlockIDFunc(u.BlockIDs))
		if err != nil {
			return AssemblePageResult{}, err
		}
		logger.Debug("assemble page preview built",
			"event", "landing_assemble_page_preview",
			"module", "content-studio/landing-page-service",
			"layer", "application",
			"template_id", cmd.TemplateID,
			"block_count", len(result.ContentJSON.Blocks),
		)
		return AssemblePageResult{Result: result}, nil
	}

	now := resolveNow(u.Clock)
	requestHash, err := hashRequest(cmd, "landing_assemble_page", cmd.UserID, cmd.TemplateID)
	if err != nil {
		return AssemblePageResult{}, err
	}

	var out AssemblePageResult
	replayed, err := idempotentRun{
		Store:  u.Idempotency,
		Now:    now,
		TTL:    u.IdempotencyTTL,
		Logger: u.Logger,
	}.run(
		ctx,
		strings.TrimSpace(cmd.IdempotencyKey),
		requestHash,
		func(raw []byte) error { return json.Unmarshal(raw, &out) },
		func() ([]byte, error) {
			result, err := services.Assemble(input, application.BlockIDFunc(u.BlockIDs))
			if err != nil {
				return nil, err
			}
			payload := services.NewDraftPayload(cmd.Title, strings.TrimSpace(cmd.Slug), cmd.TemplateID, result)
			pages, err := draftWriter{Pages: u.Pages, IDGenerator: u.IDGenerator}.write(ctx, cmd.UserID, "", []entities.PagePayload{payload}, now)
			if err != nil {
				return nil, err
			}
			return json.Marshal(AssemblePageResult{Result: result, Page: &pages[0]})
		},
	)
	if err != nil {
		event := "landing_assemble_page_failed"
		if errors.Is(err, domainerrors.ErrSlugConflict) {
			event = "landing_assemble_page_slug_conflict"
		}
		logger.Error("assemble page draft failed",
			"event", event,
			"module", "content-studio/landing-page-service",
			"layer", "application",
			"template_id", cmd.TemplateID,
			"slug", cmd.Slug,
			"error", err.Error(),
		)
		return AssemblePageResult{}, err
	}
	out.Replayed = replayed

	logger.Info("assemble page draft saved",
		"event", "landing_assemble_page_saved",
		"module", "content-studio/landing-page-service",
		"layer", "application",
		"page_id", out.Page.PageID,
		"template_id", cmd.TemplateID,
		"replayed", replayed,
	)
	return out, nil
}

func (u AssemblePageUseCase) buildInput(ctx context.Context, cmd AssemblePageCommand) (entities.AssemblyInput, error) {
	template, ok := u.Catalog.GetTemplate(cmd.TemplateID)
	if !ok {
		return entities.AssemblyInput{}, fmt.Errorf("%w: %s", domainerrors.ErrTemplateNotFound, cmd.TemplateID)
	}
	mode, err := application.ParseSectionMode(cmd.SectionMode)
	if err != nil {
		return entities.AssemblyInput{}, err
	}
	destination, err := application.ParseCTADestination(cmd.CTADestination)
	if err != nil {
		return entities.AssemblyInput{}, err
	}

	var sections []entities.ContentSection
	if len(cmd.KitNames) > 0 {
		kits, err := u.Kits.ListKits(ctx)
		if err != nil {
			return entities.AssemblyInput{}, err
		}
		sections = services.ResolveKits(cmd.KitNames, kits)
	}

	return entities.AssemblyInput{
		Template:            template,
		PrimaryProductID:    strings.TrimSpace(cmd.PrimaryProductID),
		SecondaryProductIDs: cmd.SecondaryProductIDs,
		Sections:            sections,
		SectionMode:         mode,
		CTADestination:      destination,
		ThemeOverride:       cmd.ThemeOverride,
		Title:               cmd.Title,
		MetaTitle:           cmd.MetaTitle,
		MetaDescription:     cmd.MetaDescription,
		PresetOverrides:     cmd.PresetOverrides,
	}, nil
}
