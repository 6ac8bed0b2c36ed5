package service

import (
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/storage"
	"Rankboard/internal/repository"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func newPaymentService(t *testing.T) (PaymentService, *gorm.DB) {
	t.Helper()

	if err := storage.Init(t.TempDir(), "/uploads"); err != nil {
		t.Fatalf("init storage: %v", err)
	}

	db := newTestDB(t)
	return NewPaymentService(repository.NewPaymentRepo(db), repository.NewCustomerRepo(db), 10*1024*1024), db
}

func TestUploadProofStartsPending(t *testing.T) {
	svc, db := newPaymentService(t)
	ctx := context.Background()

	user := seedUser(t, db, "pay", "pay@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "Pay Co", "pay.example.com")

	proof, err := svc.UploadProof(ctx, customer.ID, UploadFile{Data: jpegBytes(), Name: "slip.jpg"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if proof.Status != model.PaymentStatusPending {
		t.Fatalf("status = %q, want PENDING", proof.Status)
	}
	if proof.UploadURL == "" {
		t.Fatal("upload url should be set")
	}
}

func TestUploadProofRejectsNonImage(t *testing.T) {
	svc, db := newPaymentService(t)
	ctx := context.Background()

	user := seedUser(t, db, "pay2", "pay2@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "Pay2 Co", "pay2.example.com")

	_, err := svc.UploadProof(ctx, customer.ID, UploadFile{Data: []byte("%PDF-1.7"), Name: "slip.pdf"})
	if !errors.Is(err, ErrFileNotSupported) {
		t.Fatalf("err = %v, want ErrFileNotSupported", err)
	}
}

func TestUploadProofRejectsOversizedFile(t *testing.T) {
	_, db := newPaymentService(t)
	small := NewPaymentService(repository.NewPaymentRepo(db), repository.NewCustomerRepo(db), 4)
	ctx := context.Background()

	user := seedUser(t, db, "pay3", "pay3@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "Pay3 Co", "pay3.example.com")

	_, err := small.UploadProof(ctx, customer.ID, UploadFile{Data: jpegBytes(), Name: "big.jpg"})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestUpdateProofStatusTransitions(t *testing.T) {
	svc, db := newPaymentService(t)
	ctx := context.Background()

	user := seedUser(t, db, "pay4", "pay4@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "Pay4 Co", "pay4.example.com")

	proof, err := svc.UploadProof(ctx, customer.ID, UploadFile{Data: jpegBytes(), Name: "slip.jpg"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.UpdateProofStatus(ctx, proof.ID, model.PaymentStatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if err := svc.UpdateProofStatus(ctx, proof.ID, "WHATEVER"); !errors.Is(err, ErrPaymentStatusInvalid) {
		t.Fatalf("invalid status err = %v, want ErrPaymentStatusInvalid", err)
	}
	if err := svc.UpdateProofStatus(ctx, 9999, model.PaymentStatusRejected); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("missing proof err = %v, want ErrPaymentNotFound", err)
	}

	proofs, err := svc.ListProofsByCustomer(ctx, customer.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(proofs) != 1 || proofs[0].Status != model.PaymentStatusApproved {
		t.Fatalf("proofs = %+v, want single APPROVED", proofs)
	}
}
