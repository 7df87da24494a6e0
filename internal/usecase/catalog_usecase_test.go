package usecase

import (
	"context"
	"errors"
	"testing"

	"winestudy/internal/domain/catalog"
)

func TestCatalog_GrapesByAroma_UnknownTag(t *testing.T) {
	uc := NewCatalogUsecase(&fakeCatalogRepo{})

	_, err := uc.GrapesByAroma(context.Background(), "missing")
	if !errors.Is(err, catalog.ErrAromaNotFound) {
		t.Fatalf("expected ErrAromaNotFound, got %v", err)
	}
}

func TestCatalog_GrapesByAroma_JoinsOnEnglishName(t *testing.T) {
	repo := &fakeCatalogRepo{
		aromas: []catalog.AromaTag{{TagID: "cherry", NamePT: "Cereja", NameEN: "Cherry"}},
		grapes: []catalog.Grape{
			{GrapeID: "pinot_noir", Name: "Pinot Noir", AromaticNotes: []string{"Cherry", "Earth"}},
			{GrapeID: "chardonnay", Name: "Chardonnay", AromaticNotes: []string{"Apple"}},
		},
	}
	uc := NewCatalogUsecase(repo)

	grapes, err := uc.GrapesByAroma(context.Background(), "cherry")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(grapes) != 1 || grapes[0].GrapeID != "pinot_noir" {
		t.Fatalf("unexpected join result: %+v", grapes)
	}
}
