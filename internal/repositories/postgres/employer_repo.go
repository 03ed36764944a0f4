package postgres

import (
	"context"
	"errors"

	"github.com/jobsmalta/jobsmalta/internal/models"
	"github.com/jobsmalta/jobsmalta/internal/utils"
	"gorm.io/gorm"
)

type EmployerRepository interface {
	Insert(ctx context.Context, e *models.Employer) error
	GetByUserID(ctx context.Context, userID string) (*models.Employer, error)
}

type employerRepo struct {
	db *gorm.DB
}

func NewEmployerRepo(db *gorm.DB) EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Insert(ctx context.Context, e *models.Employer) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*models.Employer, error) {
	var e models.Employer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}
