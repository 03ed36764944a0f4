package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jobsmalta/jobsmalta/internal/models"
	pgrepo "github.com/jobsmalta/jobsmalta/internal/repositories/postgres"
	"github.com/jobsmalta/jobsmalta/internal/storage"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type ResumeService interface {
	Upload(ctx context.Context, userID string, fileName string, fileSize int, mimeType string, objectName string, r io.Reader) (*models.ResumeFile, error)
}

type resumeService struct {
	repo     pgrepo.ResumeRepository
	uploader storage.Uploader
}

func NewResumeService(repo pgrepo.ResumeRepository, uploader storage.Uploader) ResumeService {
	return &resumeService{repo: repo, uploader: uploader}
}

func (s *resumeService) Upload(ctx context.Context, userID string, fileName string, fileSize int, mimeType string, objectName string, r io.Reader) (*models.ResumeFile, error) {
	const op = "ResumeService.Upload"

	if userID == "" || objectName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and object_name are required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	row := &models.ResumeFile{
		ID:       uuid.NewString(),
		UserID:   userID,
		FileName: fileName,
		FilePath: storedPath,
		FileSize: fileSize,
		MimeType: mimeType,
		UploadAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeStore, op, "failed to persist resume metadata", err)
	}

	return row, nil
}
