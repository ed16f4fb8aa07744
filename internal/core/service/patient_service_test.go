package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

func newPatientService(
	patients *stubPatientRepo,
	visits *stubVisitRepo,
	payments *stubPaymentRepo,
	appointments *stubAppointmentRepo,
	images *stubImageRepo,
) *PatientService {
	return NewPatientService(patients, visits, payments, appointments, images, zerolog.Nop())
}

func TestPatientService_Get_Balance(t *testing.T) {
	patients := newStubPatientRepo()
	visits := newStubVisitRepo()
	payments := newStubPaymentRepo()
	svc := newPatientService(patients, visits, payments, newStubAppointmentRepo(), newStubImageRepo())

	patient, _ := patients.Create(context.Background(), &domain.Patient{Name: "Huda"})
	visits.Create(context.Background(), &domain.Visit{PatientID: patient.ID, TotalCostJOD: 120.50})
	visits.Create(context.Background(), &domain.Visit{PatientID: patient.ID, TotalCostJOD: 30})
	payments.Create(context.Background(), &domain.Payment{PatientID: patient.ID, AmountJOD: 100.25})

	got, err := svc.Get(context.Background(), patient.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.BalanceJOD != 50.25 {
		t.Fatalf("expected balance 50.25, got %v", got.BalanceJOD)
	}
}

func TestPatientService_Get_BalanceRounding(t *testing.T) {
	patients := newStubPatientRepo()
	visits := newStubVisitRepo()
	payments := newStubPaymentRepo()
	svc := newPatientService(patients, visits, payments, newStubAppointmentRepo(), newStubImageRepo())

	patient, _ := patients.Create(context.Background(), &domain.Patient{Name: "Huda"})
	// 0.1 + 0.2 style float residue must round away to two decimals.
	visits.Create(context.Background(), &domain.Visit{PatientID: patient.ID, TotalCostJOD: 0.1})
	visits.Create(context.Background(), &domain.Visit{PatientID: patient.ID, TotalCostJOD: 0.2})

	got, err := svc.Get(context.Background(), patient.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.BalanceJOD != 0.3 {
		t.Fatalf("expected balance 0.3, got %v", got.BalanceJOD)
	}
}

func TestPatientService_Get_OverpaidIsNegative(t *testing.T) {
	patients := newStubPatientRepo()
	visits := newStubVisitRepo()
	payments := newStubPaymentRepo()
	svc := newPatientService(patients, visits, payments, newStubAppointmentRepo(), newStubImageRepo())

	patient, _ := patients.Create(context.Background(), &domain.Patient{Name: "Huda"})
	visits.Create(context.Background(), &domain.Visit{PatientID: patient.ID, TotalCostJOD: 40})
	payments.Create(context.Background(), &domain.Payment{PatientID: patient.ID, AmountJOD: 60})

	got, err := svc.Get(context.Background(), patient.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.BalanceJOD != -20 {
		t.Fatalf("expected balance -20, got %v", got.BalanceJOD)
	}
}

func TestPatientService_Get_NotFound(t *testing.T) {
	svc := newPatientService(newStubPatientRepo(), newStubVisitRepo(), newStubPaymentRepo(), newStubAppointmentRepo(), newStubImageRepo())

	if _, err := svc.Get(context.Background(), 99); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientService_Delete_Cascades(t *testing.T) {
	patients := newStubPatientRepo()
	visits := newStubVisitRepo()
	payments := newStubPaymentRepo()
	appointments := newStubAppointmentRepo()
	images := newStubImageRepo()
	svc := newPatientService(patients, visits, payments, appointments, images)

	patient, _ := patients.Create(context.Background(), &domain.Patient{Name: "Huda"})
	visits.Create(context.Background(), &domain.Visit{PatientID: patient.ID})
	payments.Create(context.Background(), &domain.Payment{PatientID: patient.ID})
	appointments.Create(context.Background(), &domain.Appointment{PatientID: patient.ID})
	images.Create(context.Background(), &domain.MedicalImage{PatientID: patient.ID})

	if err := svc.Delete(context.Background(), patient.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := patients.FindByID(context.Background(), patient.ID); err != domain.ErrPatientNotFound {
		t.Fatalf("patient should be gone, got %v", err)
	}
	for name, deleted := range map[string][]int{
		"visits":       visits.deletedBy,
		"payments":     payments.deletedBy,
		"appointments": appointments.deletedBy,
		"images":       images.deletedBy,
	} {
		if len(deleted) != 1 || deleted[0] != patient.ID {
			t.Fatalf("expected %s cascade for patient %d, got %v", name, patient.ID, deleted)
		}
	}
}

func TestPatientService_Delete_NotFound(t *testing.T) {
	visits := newStubVisitRepo()
	svc := newPatientService(newStubPatientRepo(), visits, newStubPaymentRepo(), newStubAppointmentRepo(), newStubImageRepo())

	if err := svc.Delete(context.Background(), 42); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if len(visits.deletedBy) != 0 {
		t.Fatalf("no cascade should run for a missing patient")
	}
}

func TestPatientService_List_AttachesBalances(t *testing.T) {
	patients := newStubPatientRepo()
	visits := newStubVisitRepo()
	payments := newStubPaymentRepo()
	svc := newPatientService(patients, visits, payments, newStubAppointmentRepo(), newStubImageRepo())

	a, _ := patients.Create(context.Background(), &domain.Patient{Name: "A"})
	b, _ := patients.Create(context.Background(), &domain.Patient{Name: "B"})
	visits.Create(context.Background(), &domain.Visit{PatientID: a.ID, TotalCostJOD: 10})

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	byID := map[int]float64{}
	for _, p := range list {
		byID[p.ID] = p.BalanceJOD
	}
	if byID[a.ID] != 10 || byID[b.ID] != 0 {
		t.Fatalf("unexpected balances: %v", byID)
	}
}

func TestPatientService_Update_PartialFields(t *testing.T) {
	patients := newStubPatientRepo()
	svc := newPatientService(patients, newStubVisitRepo(), newStubPaymentRepo(), newStubAppointmentRepo(), newStubImageRepo())

	patient, _ := patients.Create(context.Background(), &domain.Patient{Name: "Huda", Phone: "0790000000"})

	phone := "0791111111"
	updated, err := svc.Update(context.Background(), patient.ID, ports.UpdatePatientInput{Phone: &phone})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("phone not updated: %s", updated.Phone)
	}
	if updated.Name != "Huda" {
		t.Fatalf("untouched field changed: %s", updated.Name)
	}
}
