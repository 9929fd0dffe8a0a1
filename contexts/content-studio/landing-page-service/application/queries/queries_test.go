package queries

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"storefront/contexts/content-studio/landing-page-service/adapters/catalog"
	"storefront/contexts/content-studio/landing-page-service/adapters/memory"
	"storefront/contexts/content-studio/landing-page-service/domain/entities"
	domainerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	"storefront/contexts/content-studio/landing-page-service/ports"
)

func newFixture(t *testing.T) (*catalog.Catalog, *memory.Store) {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c, memory.NewStore(c.StarterKits(), nil)
}

func TestPreviewPacksKeepsRequestOrder(t *testing.T) {
	c, store := newFixture(t)
	uc := PreviewPacksUseCase{Catalog: c, Kits: store, BlockIDs: store, Concurrency: 2}

	ids := []string{"b2b-quote", "winter-sale", "product-launch", "winter-sale"}
	results, err := uc.Execute(context.Background(), PreviewPacksQuery{PackIDs: ids})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(results) != len(ids) {
		t.Fatalf("expected %d results, got %d", len(ids), len(results))
	}
	for i, id := range ids {
		if results[i].Pack.ID != id {
			t.Fatalf("result %d: expected pack %s, got %s", i, id, results[i].Pack.ID)
		}
		if len(results[i].Pages) != len(results[i].Pack.Pages) {
			t.Fatalf("pack %s: page count mismatch", id)
		}
	}
	if len(store.OutboxEvents()) != 0 {
		t.Fatalf("preview must not persist anything")
	}
}

func TestPreviewPacksAreReproducible(t *testing.T) {
	c, store := newFixture(t)
	uc := PreviewPacksUseCase{Catalog: c, Kits: store, BlockIDs: store, Concurrency: 3}
	query := PreviewPacksQuery{
		PackIDs: []string{"winter-sale", "product-launch", "b2b-quote"},
		Options: entities.PackOptions{PrimaryProductID: "prod-1", SecondaryProductIDs: []string{"s1", "s2"}},
	}

	first, err := uc.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("first preview: %v", err)
	}
	second, err := uc.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("second preview: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("previews differ between runs (-first +second):\n%s", diff)
	}

	for _, result := range first {
		prefix := "blk-" + result.Pack.ID + "-"
		for _, page := range result.Pages {
			for _, block := range page.ContentJSON.Blocks {
				if !strings.HasPrefix(block.ID, prefix) {
					t.Fatalf("pack %s: block id %q not drawn from its own generator", result.Pack.ID, block.ID)
				}
			}
		}
	}
	if got := store.NewBlockID(); got != "blk-1" {
		t.Fatalf("preview must not advance the shared block sequence, got %s", got)
	}
}

func TestPreviewPacksFailsOnUnknownPack(t *testing.T) {
	c, store := newFixture(t)
	uc := PreviewPacksUseCase{Catalog: c, Kits: store, BlockIDs: store}

	_, err := uc.Execute(context.Background(), PreviewPacksQuery{PackIDs: []string{"winter-sale", "nope"}})
	if !errors.Is(err, domainerrors.ErrPackNotFound) {
		t.Fatalf("expected pack not found, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), PreviewPacksQuery{}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for empty batch, got %v", err)
	}
}

func TestCatalogQueries(t *testing.T) {
	c, _ := newFixture(t)
	templates, _ := ListTemplatesUseCase{Catalog: c}.Execute(context.Background())
	if len(templates) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(templates))
	}
	if _, err := (GetTemplateUseCase{Catalog: c}).Execute(context.Background(), "tpl_missing"); !errors.Is(err, domainerrors.ErrTemplateNotFound) {
		t.Fatalf("expected template not found, got %v", err)
	}
	template, err := GetTemplateUseCase{Catalog: c}.Execute(context.Background(), " tpl_blank ")
	if err != nil || template.ID != "tpl_blank" {
		t.Fatalf("unexpected template %+v err=%v", template, err)
	}
	packs, _ := ListPacksUseCase{Catalog: c}.Execute(context.Background())
	if len(packs) != 3 {
		t.Fatalf("expected 3 packs, got %d", len(packs))
	}
}

func TestPageQueries(t *testing.T) {
	_, store := newFixture(t)
	now := time.Now().UTC()
	pages := []entities.Page{
		{PageID: "p1", PackID: "winter-sale", Payload: entities.PagePayload{Slug: "a"}, CreatedAt: now},
		{PageID: "p2", PackID: "other", Payload: entities.PagePayload{Slug: "b"}, CreatedAt: now},
	}
	if err := store.CreateDraftPagesWithOutbox(context.Background(), pages, nil); err != nil {
		t.Fatalf("seed pages: %v", err)
	}

	listed, err := ListPagesUseCase{Pages: store}.Execute(context.Background(), ports.PageFilter{PackID: "winter-sale"})
	if err != nil || len(listed) != 1 || listed[0].PageID != "p1" {
		t.Fatalf("unexpected list %+v err=%v", listed, err)
	}
	if _, err := (ListPagesUseCase{Pages: store}).Execute(context.Background(), ports.PageFilter{Limit: -1}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid limit error, got %v", err)
	}
	if _, err := (GetPageUseCase{Pages: store}).Execute(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrPageNotFound) {
		t.Fatalf("expected page not found, got %v", err)
	}
	kits, err := ListKitsUseCase{Kits: store}.Execute(context.Background())
	if err != nil || len(kits) != 6 {
		t.Fatalf("expected 6 starter kits, got %d err=%v", len(kits), err)
	}
}
