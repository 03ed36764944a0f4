package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jobsmalta/jobsmalta/internal/cache"
	"github.com/jobsmalta/jobsmalta/internal/models"
	pgrepo "github.com/jobsmalta/jobsmalta/internal/repositories/postgres"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type PostJobInput struct {
	JobTitle        string
	Location        string
	Region          string
	Category        string
	JobType         string
	SalaryRange     string
	JobDescription  string
	Requirements    []string
	ExperienceLevel string
}

type JobService interface {
	Post(ctx context.Context, userID string, in PostJobInput) (*models.Job, error)
	ListMine(ctx context.Context, userID string) ([]models.Job, error)
}

type jobService struct {
	jobs      pgrepo.JobRepository
	employers pgrepo.EmployerRepository
	cache     cache.Cache
}

func NewJobService(jobs pgrepo.JobRepository, employers pgrepo.EmployerRepository, c cache.Cache) JobService {
	return &jobService{jobs: jobs, employers: employers, cache: c}
}

// Post creates a listing owned by the caller's employer profile. Ownership is
// carried by employer_id; the company name is copied onto the job for display.
func (s *jobService) Post(ctx context.Context, userID string, in PostJobInput) (*models.Job, error) {
	const op = "JobService.Post"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if in.JobTitle == "" || in.JobDescription == "" || in.Location == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_title, job_description, and location are required", nil)
	}

	employer, err := s.resolveEmployer(ctx, op, userID)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		ID:              uuid.NewString(),
		EmployerID:      employer.ID,
		JobTitle:        in.JobTitle,
		CompanyName:     employer.CompanyName,
		Location:        in.Location,
		Region:          in.Region,
		Category:        in.Category,
		JobType:         in.JobType,
		SalaryRange:     in.SalaryRange,
		JobDescription:  in.JobDescription,
		Requirements:    pq.StringArray(in.Requirements),
		ExperienceLevel: in.ExperienceLevel,
		PostedDate:      time.Now().UTC(),
	}

	if err := s.jobs.Insert(ctx, job); err != nil {
		return nil, utils.E(utils.CodeStore, op, err.Error(), err)
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, jobCatalogCacheKey)
	}
	return job, nil
}

func (s *jobService) ListMine(ctx context.Context, userID string) ([]models.Job, error) {
	const op = "JobService.ListMine"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	employer, err := s.resolveEmployer(ctx, op, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.jobs.ListByEmployer(ctx, employer.ID)
	if err != nil {
		return nil, utils.E(utils.CodeStore, op, "failed to list jobs", err)
	}
	return rows, nil
}

func (s *jobService) resolveEmployer(ctx context.Context, op, userID string) (*models.Employer, error) {
	employer, err := s.employers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeForbidden, op, "no employer profile for this account", err)
		}
		return nil, utils.E(utils.CodeStore, op, "failed to resolve employer", err)
	}
	return employer, nil
}
