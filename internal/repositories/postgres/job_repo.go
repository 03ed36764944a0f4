package postgres

import (
	"context"
	"errors"

	"github.com/jobsmalta/jobsmalta/internal/models"
	"github.com/jobsmalta/jobsmalta/internal/utils"
	"gorm.io/gorm"
)

type JobRepository interface {
	Insert(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Insert(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &job, err
}

func (r *jobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	rows := []models.Job{}
	err := r.db.WithContext(ctx).
		Order("posted_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	rows := []models.Job{}
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("posted_date DESC").
		Find(&rows).Error
	return rows, err
}
