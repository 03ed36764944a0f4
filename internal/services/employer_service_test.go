package services

import (
	"context"
	"testing"

	"github.com/jobsmalta/jobsmalta/internal/utils"
)

func TestRegisterEmployer(t *testing.T) {
	repo := employerFixture()
	svc := NewEmployerService(repo)

	e, err := svc.Register(context.Background(), "user-new", "Melita")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if e.ID == "" || e.CompanyName != "Melita" || e.UserID != "user-new" {
		t.Fatalf("unexpected employer: %#v", e)
	}

	// second profile for the same identity is a conflict
	if _, err := svc.Register(context.Background(), "user-new", "Another Ltd"); !utils.IsCode(err, utils.CodeConflict) {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestEmployerMeNotFound(t *testing.T) {
	svc := NewEmployerService(employerFixture())

	if _, err := svc.Me(context.Background(), "user-unknown"); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
