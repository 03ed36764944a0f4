package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jobsmalta/jobsmalta/internal/cache"
	"github.com/jobsmalta/jobsmalta/internal/models"
	pgrepo "github.com/jobsmalta/jobsmalta/internal/repositories/postgres"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

// JobFilter is the seeker-side filter tuple. Empty fields are unconstrained;
// non-empty fields must all match (AND across dimensions).
type JobFilter struct {
	Keyword  string
	Location string
	Category string
	Region   string
}

const (
	jobCatalogCacheKey = "jobs:catalog"
	jobCatalogCacheTTL = 60 * time.Second
)

// FilterJobs applies the filter tuple to a job set. Keyword matches
// case-insensitively against either title or company; location matches
// case-insensitively against the location field; category and region are
// exact, case-sensitive equality.
func FilterJobs(jobs []models.Job, f JobFilter) []models.Job {
	out := []models.Job{}
	kw := strings.ToLower(f.Keyword)
	loc := strings.ToLower(f.Location)
	for _, job := range jobs {
		if kw != "" &&
			!strings.Contains(strings.ToLower(job.JobTitle), kw) &&
			!strings.Contains(strings.ToLower(job.CompanyName), kw) {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(job.Location), loc) {
			continue
		}
		if f.Category != "" && job.Category != f.Category {
			continue
		}
		if f.Region != "" && job.Region != f.Region {
			continue
		}
		out = append(out, job)
	}
	return out
}

type ListingService interface {
	List(ctx context.Context, f JobFilter) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
}

type listingService struct {
	jobs  pgrepo.JobRepository
	cache cache.Cache
}

func NewListingService(jobs pgrepo.JobRepository, c cache.Cache) ListingService {
	return &listingService{jobs: jobs, cache: c}
}

func (s *listingService) List(ctx context.Context, f JobFilter) ([]models.Job, error) {
	const op = "ListingService.List"

	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeStore, op, "failed to load job catalog", err)
	}
	return FilterJobs(catalog, f), nil
}

// catalog loads the full job set, going through the cache when one is
// configured. Cache trouble degrades to a direct read.
func (s *listingService) catalog(ctx context.Context) ([]models.Job, error) {
	if s.cache == nil {
		return s.jobs.ListAll(ctx)
	}

	var cached []models.Job
	if hit, err := s.cache.GetJSON(ctx, jobCatalogCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, jobCatalogCacheKey, rows, jobCatalogCacheTTL)
	return rows, nil
}

func (s *listingService) Get(ctx context.Context, id string) (*models.Job, error) {
	const op = "ListingService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeStore, op, "failed to get job", err)
	}
	return job, nil
}
