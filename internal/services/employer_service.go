package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jobsmalta/jobsmalta/internal/models"
	pgrepo "github.com/jobsmalta/jobsmalta/internal/repositories/postgres"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type EmployerService interface {
	Register(ctx context.Context, userID, companyName string) (*models.Employer, error)
	Me(ctx context.Context, userID string) (*models.Employer, error)
}

type employerService struct {
	employers pgrepo.EmployerRepository
}

func NewEmployerService(employers pgrepo.EmployerRepository) EmployerService {
	return &employerService{employers: employers}
}

func (s *employerService) Register(ctx context.Context, userID, companyName string) (*models.Employer, error) {
	const op = "EmployerService.Register"

	if userID == "" || companyName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and company_name are required", nil)
	}

	// One employer profile per identity.
	if existing, err := s.employers.GetByUserID(ctx, userID); err == nil {
		return nil, utils.E(utils.CodeConflict, op, "employer profile already exists for "+existing.CompanyName, nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeStore, op, "failed to check employer profile", err)
	}

	e := &models.Employer{
		ID:          uuid.NewString(),
		UserID:      userID,
		CompanyName: companyName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.employers.Insert(ctx, e); err != nil {
		return nil, utils.E(utils.CodeStore, op, err.Error(), err)
	}
	return e, nil
}

func (s *employerService) Me(ctx context.Context, userID string) (*models.Employer, error) {
	const op = "EmployerService.Me"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	e, err := s.employers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "employer profile not found", err)
		}
		return nil, utils.E(utils.CodeStore, op, "failed to get employer profile", err)
	}
	return e, nil
}
