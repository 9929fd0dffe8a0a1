package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	application "storefront/contexts/content-studio/landing-page-service/application"
	"storefront/contexts/content-studio/landing-page-service/application/commands"
	"storefront/contexts/content-studio/landing-page-service/application/queries"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/domain/services"
	"storefront/contexts/content-studio/landing-page-service/ports"
	httptransport "storefront/contexts/content-studio/landing-page-service/transport/http"
)

type Handler struct {
	ListTemplates queries.ListTemplatesUseCase
	GetTemplate   queries.GetTemplateUseCase
	ListPacks     queries.ListPacksUseCase
	ListKits      queries.ListKitsUseCase
	UpsertKit     commands.UpsertKitUseCase
	AssemblePage  commands.AssemblePageUseCase
	GeneratePack  commands.GeneratePackUseCase
	PreviewPacks  queries.PreviewPacksUseCase
	GetPage       queries.GetPageUseCase
	ListPages     queries.ListPagesUseCase
	Logger        *slog.Logger
}

// ListTemplatesHandler godoc
// @Summary List page templates
// @Description Returns every template in the template library.
// @Tags landing-page-service
// @Produce json
// @Success 200 {object} httptransport.ListTemplatesResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/templates [get]
func (h Handler) ListTemplatesHandler(ctx context.Context) (httptransport.ListTemplatesResponse, error) {
	items, err := h.ListTemplates.Execute(ctx)
	if err != nil {
		return httptransport.ListTemplatesResponse{}, err
	}
	resp := httptransport.ListTemplatesResponse{Items: make([]httptransport.TemplateDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, mapTemplate(item))
	}
	return resp, nil
}

// GetTemplateHandler godoc
// @Summary Get a page template
// @Tags landing-page-service
// @Produce json
// @Param template_id path string true "Template id"
// @Success 200 {object} httptransport.GetTemplateResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/templates/{template_id} [get]
func (h Handler) GetTemplateHandler(ctx context.Context, templateID string) (httptransport.GetTemplateResponse, error) {
	item, err := h.GetTemplate.Execute(ctx, templateID)
	if err != nil {
		return httptransport.GetTemplateResponse{}, err
	}
	return httptransport.GetTemplateResponse{Item: mapTemplate(item)}, nil
}

// ListPacksHandler godoc
// @Summary List campaign packs
// @Tags landing-page-service
// @Produce json
// @Success 200 {object} httptransport.ListPacksResponse
// @Router /api/landing/v1/packs [get]
func (h Handler) ListPacksHandler(ctx context.Context) (httptransport.ListPacksResponse, error) {
	items, err := h.ListPacks.Execute(ctx)
	if err != nil {
		return httptransport.ListPacksResponse{}, err
	}
	resp := httptransport.ListPacksResponse{Items: make([]httptransport.PackDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, mapPack(item))
	}
	return resp, nil
}

// ListKitsHandler godoc
// @Summary List content kits
// @Tags landing-page-service
// @Produce json
// @Success 200 {object} httptransport.ListKitsResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/kits [get]
func (h Handler) ListKitsHandler(ctx context.Context) (httptransport.ListKitsResponse, error) {
	items, err := h.ListKits.Execute(ctx)
	if err != nil {
		return httptransport.ListKitsResponse{}, err
	}
	resp := httptransport.ListKitsResponse{Items: make([]httptransport.KitDTO, 0, len(items))}
	for _, item := range items {
		dto, err := mapKit(item)
		if err != nil {
			return httptransport.ListKitsResponse{}, err
		}
		resp.Items = append(resp.Items, dto)
	}
	return resp, nil
}

// UpsertKitHandler godoc
// @Summary Create or replace a content kit
// @Tags landing-page-service
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Acting user"
// @Param kit_name path string true "Kit name"
// @Param request body httptransport.UpsertKitRequest true "Kit payload"
// @Success 200 {object} httptransport.UpsertKitResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/kits/{kit_name} [put]
func (h Handler) UpsertKitHandler(
	ctx context.Context,
	userID string,
	kitName string,
	req httptransport.UpsertKitRequest,
) (httptransport.UpsertKitResponse, error) {
	var blocks entities.RawBlocks
	if len(req.Blocks) > 0 {
		if err := json.Unmarshal(req.Blocks, &blocks); err != nil {
			return httptransport.UpsertKitResponse{}, fmt.Errorf("%w: blocks: %v", domainerrors.ErrInvalidRequest, err)
		}
	}
	kit, err := h.UpsertKit.Execute(ctx, commands.UpsertKitCommand{
		UserID:      userID,
		Name:        kitName,
		Description: req.Description,
		Blocks:      blocks,
	})
	if err != nil {
		return httptransport.UpsertKitResponse{}, err
	}
	dto, err := mapKit(kit)
	if err != nil {
		return httptransport.UpsertKitResponse{}, err
	}
	return httptransport.UpsertKitResponse{Item: dto}, nil
}

// AssemblePageHandler godoc
// @Summary Assemble a landing page
// @Description Builds page content from a template, products and kits. With save_as_draft the page is stored as a draft.
// @Tags landing-page-service
// @Accept json
// @Produce json
// @Param X-User-Id header string false "Acting user, required with save_as_draft"
// @Param Idempotency-Key header string false "Idempotency key, required with save_as_draft"
// @Param request body httptransport.AssemblePageRequest true "Assembly payload"
// @Success 200 {object} httptransport.AssemblePageResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/pages/assemble [post]
func (h Handler) AssemblePageHandler(
	ctx context.Context,
	userID string,
	idempotencyKey string,
	req httptransport.AssemblePageRequest,
) (httptransport.AssemblePageResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("assemble page request received",
		"event", "http_assemble_page_received",
		"module", "content-studio/landing-page-service",
		"layer", "transport",
		"template_id", req.TemplateID,
		"save_as_draft", req.SaveAsDraft,
	)

	result, err := h.AssemblePage.Execute(ctx, commands.AssemblePageCommand{
		TemplateID:          req.TemplateID,
		PrimaryProductID:    req.PrimaryProductID,
		SecondaryProductIDs: req.SecondaryProductIDs,
		KitNames:            req.KitNames,
		SectionMode:         req.SectionMode,
		CTADestination:      req.CTADestination,
		ThemeOverride:       req.ThemeOverride,
		Title:               req.Title,
		MetaTitle:           req.MetaTitle,
		MetaDescription:     req.MetaDescription,
		PresetOverrides:     mapPresetOverrides(req.PresetOverrides),
		SaveAsDraft:         req.SaveAsDraft,
		Slug:                req.Slug,
		UserID:              userID,
		IdempotencyKey:      idempotencyKey,
	})
	if err != nil {
		return httptransport.AssemblePageResponse{}, err
	}

	content, err := json.Marshal(result.Result.ContentJSON)
	if err != nil {
		return httptransport.AssemblePageResponse{}, err
	}
	resp := httptransport.AssemblePageResponse{
		ContentJSON: content,
		SEO: httptransport.SeoDTO{
			MetaTitle:       result.Result.SEO.MetaTitle,
			MetaDescription: result.Result.SEO.MetaDescription,
			OgTitle:         result.Result.SEO.OgTitle,
			OgDescription:   result.Result.SEO.OgDescription,
		},
		Replayed: result.Replayed,
	}
	if result.Page != nil {
		page, err := mapPage(*result.Page)
		if err != nil {
			return httptransport.AssemblePageResponse{}, err
		}
		resp.Page = &page
	}
	return resp, nil
}

// GeneratePackHandler godoc
// @Summary Generate a campaign pack
// @Description Assembles every page of a pack and stores them as drafts. dry_run=true returns the pages without storing.
// @Tags landing-page-service
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Acting user"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param pack_id path string true "Pack id"
// @Param dry_run query bool false "Skip persistence"
// @Param request body httptransport.GeneratePackRequest true "Pack options"
// @Success 200 {object} httptransport.GeneratePackResponse
// @Success 201 {object} httptransport.GeneratePackResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/packs/{pack_id}/generate [post]
func (h Handler) GeneratePackHandler(
	ctx context.Context,
	userID string,
	packID string,
	idempotencyKey string,
	dryRun bool,
	req httptransport.GeneratePackRequest,
) (httptransport.GeneratePackResponse, error) {
	result, err := h.GeneratePack.Execute(ctx, commands.GeneratePackCommand{
		PackID:              packID,
		UserID:              userID,
		IdempotencyKey:      idempotencyKey,
		PrimaryProductID:    req.PrimaryProductID,
		SecondaryProductIDs: req.SecondaryProductIDs,
		SectionMode:         req.SectionMode,
		CTADestination:      req.CTADestination,
		PresetOverrides:     mapPresetOverrides(req.PresetOverrides),
		DryRun:              dryRun,
	})
	if err != nil {
		return httptransport.GeneratePackResponse{}, err
	}
	pages, err := mapPages(result.Pages)
	if err != nil {
		return httptransport.GeneratePackResponse{}, err
	}
	return httptransport.GeneratePackResponse{
		PackID:   result.Pack.ID,
		DryRun:   result.DryRun,
		Replayed: result.Replayed,
		Pages:    pages,
	}, nil
}

// PreviewPacksHandler godoc
// @Summary Preview several campaign packs
// @Description Assembles the requested packs in parallel without storing anything.
// @Tags landing-page-service
// @Accept json
// @Produce json
// @Param request body httptransport.PreviewPacksRequest true "Packs and options"
// @Success 200 {object} httptransport.PreviewPacksResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/packs/preview [post]
func (h Handler) PreviewPacksHandler(
	ctx context.Context,
	req httptransport.PreviewPacksRequest,
) (httptransport.PreviewPacksResponse, error) {
	mode, err := application.ParseSectionMode(req.SectionMode)
	if err != nil {
		return httptransport.PreviewPacksResponse{}, err
	}
	destination, err := application.ParseCTADestination(req.CTADestination)
	if err != nil {
		return httptransport.PreviewPacksResponse{}, err
	}
	results, err := h.PreviewPacks.Execute(ctx, queries.PreviewPacksQuery{
		PackIDs: req.PackIDs,
		Options: entities.PackOptions{
			PrimaryProductID:    req.PrimaryProductID,
			SecondaryProductIDs: req.SecondaryProductIDs,
			SectionMode:         mode,
			CTADestination:      destination,
			PresetOverrides:     mapPresetOverrides(req.PresetOverrides),
		},
	})
	if err != nil {
		return httptransport.PreviewPacksResponse{}, err
	}

	resp := httptransport.PreviewPacksResponse{Items: make([]httptransport.PackPreviewDTO, 0, len(results))}
	for _, result := range results {
		item := httptransport.PackPreviewDTO{PackID: result.Pack.ID, Pages: make([]httptransport.PageDTO, 0, len(result.Pages))}
		for _, payload := range result.Pages {
			page, err := mapPage(entities.Page{PackID: result.Pack.ID, Payload: payload})
			if err != nil {
				return httptransport.PreviewPacksResponse{}, err
			}
			item.Pages = append(item.Pages, page)
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

// GetPageHandler godoc
// @Summary Get a stored landing page
// @Tags landing-page-service
// @Produce json
// @Param page_id path string true "Page id"
// @Success 200 {object} httptransport.GetPageResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/pages/{page_id} [get]
func (h Handler) GetPageHandler(ctx context.Context, pageID string) (httptransport.GetPageResponse, error) {
	page, err := h.GetPage.Execute(ctx, pageID)
	if err != nil {
		return httptransport.GetPageResponse{}, err
	}
	dto, err := mapPage(page)
	if err != nil {
		return httptransport.GetPageResponse{}, err
	}
	return httptransport.GetPageResponse{Item: dto}, nil
}

// ListPagesHandler godoc
// @Summary List stored landing pages
// @Tags landing-page-service
// @Produce json
// @Param pack_id query string false "Campaign pack filter"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} httptransport.ListPagesResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/landing/v1/pages [get]
func (h Handler) ListPagesHandler(ctx context.Context, packID string, limit int) (httptransport.ListPagesResponse, error) {
	pages, err := h.ListPages.Execute(ctx, ports.PageFilter{PackID: packID, Limit: limit})
	if err != nil {
		return httptransport.ListPagesResponse{}, err
	}
	items, err := mapPages(pages)
	if err != nil {
		return httptransport.ListPagesResponse{}, err
	}
	return httptransport.ListPagesResponse{Items: items}, nil
}

func mapTemplate(template entities.Template) httptransport.TemplateDTO {
	blocks := make([]httptransport.TemplateBlockDTO, 0, len(template.Blocks))
	for _, block := range template.Blocks {
		blocks = append(blocks, httptransport.TemplateBlockDTO{Type: string(block.Type), Data: block.Data})
	}
	return httptransport.TemplateDTO{
		TemplateID:  template.ID,
		Name:        template.Name,
		Description: template.Description,
		Blocks:      blocks,
	}
}

func mapPack(pack entities.CampaignPack) httptransport.PackDTO {
	pages := make([]httptransport.PageDefinitionDTO, 0, len(pack.Pages))
	for _, page := range pack.Pages {
		pages = append(pages, httptransport.PageDefinitionDTO{
			Title:           page.Title,
			Slug:            page.Slug,
			MetaTitle:       page.MetaTitle,
			MetaDescription: page.MetaDescription,
			RecommendedKits: page.RecommendedKits,
		})
	}
	defaultKits := pack.DefaultKits
	if defaultKits == nil {
		defaultKits = []string{}
	}
	return httptransport.PackDTO{
		PackID:           pack.ID,
		Name:             pack.Name,
		Description:      pack.Description,
		TemplateID:       pack.TemplateID,
		RecommendedTheme: pack.RecommendedTheme,
		DefaultKits:      defaultKits,
		Pages:            pages,
	}
}

func mapKit(kit entities.Kit) (httptransport.KitDTO, error) {
	blocks := kit.Blocks
	if blocks == nil {
		blocks = entities.RawBlocks{}
	}
	raw, err := json.Marshal(blocks)
	if err != nil {
		return httptransport.KitDTO{}, err
	}
	return httptransport.KitDTO{
		Name:        kit.Name,
		SectionID:   services.KitSectionID(kit.Name),
		Description: kit.Description,
		Blocks:      raw,
	}, nil
}

func mapPage(page entities.Page) (httptransport.PageDTO, error) {
	content, err := json.Marshal(page.Payload.ContentJSON)
	if err != nil {
		return httptransport.PageDTO{}, err
	}
	dto := httptransport.PageDTO{
		PageID:          page.PageID,
		PackID:          page.PackID,
		Title:           page.Payload.Title,
		Slug:            page.Payload.Slug,
		PageType:        page.Payload.PageType,
		Template:        page.Payload.Template,
		Status:          page.Payload.Status,
		MetaTitle:       page.Payload.MetaTitle,
		MetaDescription: page.Payload.MetaDescription,
		OgTitle:         page.Payload.OgTitle,
		OgDescription:   page.Payload.OgDescription,
		ContentJSON:     content,
	}
	if !page.CreatedAt.IsZero() {
		dto.CreatedAt = page.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto, nil
}

func mapPages(pages []entities.Page) ([]httptransport.PageDTO, error) {
	items := make([]httptransport.PageDTO, 0, len(pages))
	for _, page := range pages {
		dto, err := mapPage(page)
		if err != nil {
			return nil, err
		}
		items = append(items, dto)
	}
	return items, nil
}

func mapPresetOverrides(dto *httptransport.PresetOverridesDTO) *entities.PresetOverrides {
	if dto == nil {
		return nil
	}
	return &entities.PresetOverrides{
		ThemePackID: dto.ThemePackID,
		SEODefaults: entities.SEODefaults{
			SiteName:               dto.SEODefaults.SiteName,
			TitleSuffix:            dto.SEODefaults.TitleSuffix,
			DefaultMetaDescription: dto.SEODefaults.DefaultMetaDescription,
		},
		GlobalCTADefaults: entities.GlobalCTADefaults{
			PrimaryCtaText:   dto.GlobalCTADefaults.PrimaryCtaText,
			PrimaryCtaHref:   dto.GlobalCTADefaults.PrimaryCtaHref,
			SecondaryCtaText: dto.GlobalCTADefaults.SecondaryCtaText,
			SecondaryCtaHref: dto.GlobalCTADefaults.SecondaryCtaHref,
		},
	}
}
