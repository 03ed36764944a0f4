package postgres

import (
	"context"
	"errors"

	"github.com/jobsmalta/jobsmalta/internal/models"
	"github.com/jobsmalta/jobsmalta/internal/utils"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.ApplicationWithJob, error)
	ListByUser(ctx context.Context, userID string) ([]models.ApplicationWithJob, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Insert(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var row models.Application
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

// UpdateStatus overwrites the status column only. Zero affected rows means
// the id does not resolve, which is reported as not-found instead of an
// empty success.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID string) ([]models.ApplicationWithJob, error) {
	rows := []models.ApplicationWithJob{}
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("applications.*, jobs.job_title, jobs.company_name").
		Joins("LEFT JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]models.ApplicationWithJob, error) {
	rows := []models.ApplicationWithJob{}
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("applications.*, jobs.job_title, jobs.company_name").
		Joins("LEFT JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.user_id = ?", userID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	return rows, err
}
