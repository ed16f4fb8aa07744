package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

func TestProcedureService_CreateAndList(t *testing.T) {
	svc := NewProcedureService(newStubProcedureRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProcedureInput{
		Name:        "Root Canal",
		PriceJOD:    120,
		Description: "single canal",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("id/created_at not assigned: %+v", created)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Root Canal" {
		t.Fatalf("list = %+v", list)
	}
}

func TestProcedureService_Update_Partial(t *testing.T) {
	svc := NewProcedureService(newStubProcedureRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProcedureInput{
		Name:        "Cleaning",
		PriceJOD:    25,
		Description: "routine",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := 30.0
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProcedureInput{PriceJOD: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PriceJOD != 30 {
		t.Fatalf("price = %v, want 30", updated.PriceJOD)
	}
	if updated.Name != "Cleaning" || updated.Description != "routine" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestProcedureService_Update_NotFound(t *testing.T) {
	svc := NewProcedureService(newStubProcedureRepo(), zerolog.Nop())

	name := "Whitening"
	_, err := svc.Update(context.Background(), 7, ports.UpdateProcedureInput{Name: &name})
	if !errors.Is(err, domain.ErrProcedureNotFound) {
		t.Fatalf("err = %v, want ErrProcedureNotFound", err)
	}
}

func TestProcedureService_Delete(t *testing.T) {
	repo := newStubProcedureRepo()
	svc := NewProcedureService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProcedureInput{Name: "Extraction", PriceJOD: 40})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrProcedureNotFound) {
		t.Fatalf("procedure still present: %v", err)
	}
}
