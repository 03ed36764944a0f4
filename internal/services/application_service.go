package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jobsmalta/jobsmalta/internal/models"
	"github.com/jobsmalta/jobsmalta/internal/notify"
	pgrepo "github.com/jobsmalta/jobsmalta/internal/repositories/postgres"
	"github.com/jobsmalta/jobsmalta/internal/storage"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type SubmitInput struct {
	JobID       string
	UserID      string
	Name        string
	Email       string
	CoverLetter string
	ResumeName  string
}

// JobSummary is the denormalized job view attached to a seeker's application
// row. Sentinels stand in when the job row no longer exists.
type JobSummary struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

type SeekerApplication struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"jobId"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedDate time.Time                `json:"appliedDate"`
	JobDetails  JobSummary               `json:"jobDetails"`
}

type ApplicationService interface {
	Submit(ctx context.Context, in SubmitInput) (*models.Application, error)
	UpdateStatus(ctx context.Context, applicationID, rawStatus string) (*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.ApplicationWithJob, error)
	ListByUser(ctx context.Context, userID string) ([]SeekerApplication, error)
}

type applicationService struct {
	apps     pgrepo.ApplicationRepository
	uploader storage.Uploader
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewApplicationService(apps pgrepo.ApplicationRepository, uploader storage.Uploader, notifier notify.Notifier, log *logrus.Logger) ApplicationService {
	return &applicationService{apps: apps, uploader: uploader, notifier: notifier, log: log}
}

// Submit validates the input, obtains a resume reference from the storage
// collaborator, and records the application with its initial status. Repeat
// submissions to the same job are allowed and create independent rows.
func (s *applicationService) Submit(ctx context.Context, in SubmitInput) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	if in.JobID == "" || in.UserID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id and user id are required", nil)
	}
	if in.Name == "" || in.Email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name and email are required", nil)
	}
	if in.ResumeName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resume is required", nil)
	}

	resumeRef, err := s.uploader.Upload(ctx, in.ResumeName, "application/octet-stream", nil)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to store resume reference", err)
	}

	app := &models.Application{
		ID:          uuid.NewString(),
		JobID:       in.JobID,
		UserID:      in.UserID,
		Name:        in.Name,
		Email:       in.Email,
		CoverLetter: in.CoverLetter,
		ResumeURL:   resumeRef,
		Status:      models.StatusSubmitted,
		AppliedAt:   time.Now().UTC(),
	}

	if err := s.apps.Insert(ctx, app); err != nil {
		return nil, utils.E(utils.CodeStore, op, err.Error(), err)
	}

	ev := notify.Event{
		Recipient: in.Email,
		Subject:   fmt.Sprintf("Application Received for Job ID %s", in.JobID),
	}
	if err := s.notifier.Notify(ctx, ev); err != nil {
		// delivery is best-effort; the submission already succeeded
		s.log.WithError(err).WithField("application_id", app.ID).Warn("notification delivery failed")
	}

	return app, nil
}

// UpdateStatus overwrites an application's status. The value must belong to
// the fixed status set; transitions between known statuses are unrestricted.
func (s *applicationService) UpdateStatus(ctx context.Context, applicationID, rawStatus string) (*models.Application, error) {
	const op = "ApplicationService.UpdateStatus"

	if applicationID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "application id is required", nil)
	}
	if rawStatus == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "status is required", nil)
	}

	status, err := models.ParseStatus(rawStatus)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}

	row, err := s.apps.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeStore, op, err.Error(), err)
	}
	return row, nil
}

func (s *applicationService) ListByJob(ctx context.Context, jobID string) ([]models.ApplicationWithJob, error) {
	const op = "ApplicationService.ListByJob"

	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}

	rows, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeStore, op, "failed to list applications", err)
	}
	return rows, nil
}

const (
	missingJobTitle   = "Job Title Not Found"
	missingJobCompany = "Company Not Found"
)

func (s *applicationService) ListByUser(ctx context.Context, userID string) ([]SeekerApplication, error) {
	const op = "ApplicationService.ListByUser"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user id is required", nil)
	}

	rows, err := s.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeStore, op, "failed to list applications", err)
	}

	out := make([]SeekerApplication, 0, len(rows))
	for _, row := range rows {
		details := JobSummary{Title: missingJobTitle, Company: missingJobCompany}
		if row.JobTitle != nil && *row.JobTitle != "" {
			details.Title = *row.JobTitle
		}
		if row.CompanyName != nil && *row.CompanyName != "" {
			details.Company = *row.CompanyName
		}
		out = append(out, SeekerApplication{
			ID:          row.ID,
			JobID:       row.JobID,
			Status:      row.Status,
			AppliedDate: row.AppliedAt,
			JobDetails:  details,
		})
	}
	return out, nil
}
