package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/jobsmalta/jobsmalta/internal/logger"
	"github.com/jobsmalta/jobsmalta/internal/models"
	"github.com/jobsmalta/jobsmalta/internal/notify"
	"github.com/jobsmalta/jobsmalta/internal/storage"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type fakeAppRepo struct {
	rows map[string]*models.Application

	inserted  []*models.Application
	insertErr error
	updateErr error

	byJob  []models.ApplicationWithJob
	byUser []models.ApplicationWithJob
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{rows: map[string]*models.Application{}}
}

func (f *fakeAppRepo) Insert(_ context.Context, app *models.Application) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, app)
	f.rows[app.ID] = app
	return nil
}

func (f *fakeAppRepo) GetByID(_ context.Context, id string) (*models.Application, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return row, nil
}

func (f *fakeAppRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	row.Status = status
	return row, nil
}

func (f *fakeAppRepo) ListByJob(_ context.Context, _ string) ([]models.ApplicationWithJob, error) {
	return f.byJob, nil
}

func (f *fakeAppRepo) ListByUser(_ context.Context, _ string) ([]models.ApplicationWithJob, error) {
	return f.byUser, nil
}

type recordingNotifier struct {
	events []notify.Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, ev notify.Event) error {
	n.events = append(n.events, ev)
	return n.err
}

type countingUploader struct {
	calls int
	inner storage.Uploader
}

func (u *countingUploader) Upload(ctx context.Context, name, ct string, r io.Reader) (string, error) {
	u.calls++
	return u.inner.Upload(ctx, name, ct, r)
}

func newAppService(repo *fakeAppRepo, up storage.Uploader, n notify.Notifier) ApplicationService {
	return NewApplicationService(repo, up, n, logger.New())
}

func validSubmit() SubmitInput {
	return SubmitInput{
		JobID:      "job-123",
		UserID:     "user-1",
		Name:       "A",
		Email:      "a@x.com",
		ResumeName: "cv.pdf",
	}
}

func TestSubmitValidationBeforeStore(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"missing resume", func(in *SubmitInput) { in.ResumeName = "" }},
		{"missing job id", func(in *SubmitInput) { in.JobID = "" }},
		{"missing user id", func(in *SubmitInput) { in.UserID = "" }},
		{"missing name", func(in *SubmitInput) { in.Name = "" }},
		{"missing email", func(in *SubmitInput) { in.Email = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeAppRepo()
			up := &countingUploader{inner: storage.NewSimulatedUploader()}
			svc := newAppService(repo, up, &recordingNotifier{})

			in := validSubmit()
			tc.mutate(&in)

			_, err := svc.Submit(context.Background(), in)
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
			}
			if len(repo.inserted) != 0 {
				t.Fatal("store was reached despite failed validation")
			}
			if up.calls != 0 {
				t.Fatal("uploader was reached despite failed validation")
			}
		})
	}
}

func TestSubmitCreatesSubmittedApplication(t *testing.T) {
	repo := newFakeAppRepo()
	notifier := &recordingNotifier{}
	svc := newAppService(repo, storage.NewSimulatedUploader(), notifier)

	in := validSubmit()
	in.CoverLetter = ""

	app, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if app.Status != models.StatusSubmitted {
		t.Errorf("status = %q, want %q", app.Status, models.StatusSubmitted)
	}
	if !regexp.MustCompile(`^simulated-uploads/\d+-cv\.pdf$`).MatchString(app.ResumeURL) {
		t.Errorf("resume_url = %q, want simulated-uploads/<digits>-cv.pdf", app.ResumeURL)
	}
	if app.AppliedAt.IsZero() {
		t.Error("applied_at not set")
	}
	if app.ID == "" {
		t.Error("id not set")
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.Recipient != "a@x.com" {
		t.Errorf("recipient = %q", ev.Recipient)
	}
	if want := "Application Received for Job ID job-123"; ev.Subject != want {
		t.Errorf("subject = %q, want %q", ev.Subject, want)
	}
}

func TestSubmitAllowsDuplicates(t *testing.T) {
	repo := newFakeAppRepo()
	svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

	first, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("duplicate submissions must create independent rows")
	}
	if len(repo.inserted) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(repo.inserted))
	}
}

func TestSubmitStoreFailurePassesMessageThrough(t *testing.T) {
	repo := newFakeAppRepo()
	repo.insertErr = errors.New(`insert or update on table "applications" violates foreign key constraint`)
	svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

	_, err := svc.Submit(context.Background(), validSubmit())
	if !utils.IsCode(err, utils.CodeStore) {
		t.Fatalf("expected STORE_ERROR, got %v", err)
	}
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Message != repo.insertErr.Error() {
		t.Fatalf("store message not passed through: %v", err)
	}
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	repo := newFakeAppRepo()
	svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{err: errors.New("smtp down")})

	if _, err := svc.Submit(context.Background(), validSubmit()); err != nil {
		t.Fatalf("Submit should not fail on notification error: %v", err)
	}
}

func seedApplication(repo *fakeAppRepo, id string, status models.ApplicationStatus) {
	repo.rows[id] = &models.Application{ID: id, JobID: "job-1", UserID: "user-1", Status: status, AppliedAt: time.Now().UTC()}
}

func TestUpdateStatus(t *testing.T) {
	t.Run("empty status rejected before store", func(t *testing.T) {
		repo := newFakeAppRepo()
		seedApplication(repo, "app-1", models.StatusSubmitted)
		svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

		_, err := svc.UpdateStatus(context.Background(), "app-1", "")
		if !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
		}
		if repo.rows["app-1"].Status != models.StatusSubmitted {
			t.Fatal("stored row changed on failed validation")
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := newFakeAppRepo()
		seedApplication(repo, "app-1", models.StatusSubmitted)
		svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

		_, err := svc.UpdateStatus(context.Background(), "app-1", "promoted")
		if !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
		}
	})

	t.Run("overwrites any prior status", func(t *testing.T) {
		for _, prior := range models.AllStatuses {
			repo := newFakeAppRepo()
			seedApplication(repo, "app-1", prior)
			svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

			row, err := svc.UpdateStatus(context.Background(), "app-1", "Shortlisted")
			if err != nil {
				t.Fatalf("UpdateStatus from %q: %v", prior, err)
			}
			if row.Status != models.StatusShortlisted {
				t.Fatalf("status = %q, want %q", row.Status, models.StatusShortlisted)
			}
		}
	})

	t.Run("unknown id is not-found, not empty success", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

		_, err := svc.UpdateStatus(context.Background(), "no-such-app", "reviewing")
		if !utils.IsCode(err, utils.CodeNotFound) {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	})
}

func strptr(s string) *string { return &s }

func TestListByUserProjection(t *testing.T) {
	t.Run("zero applications is an empty sequence", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

		out, err := svc.ListByUser(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		if out == nil || len(out) != 0 {
			t.Fatalf("want empty non-nil slice, got %#v", out)
		}
	})

	t.Run("missing job degrades to sentinels", func(t *testing.T) {
		repo := newFakeAppRepo()
		applied := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		repo.byUser = []models.ApplicationWithJob{
			{
				Application: models.Application{ID: "app-1", JobID: "job-live", Status: models.StatusReviewing, AppliedAt: applied},
				JobTitle:    strptr("Senior Software Developer"),
				CompanyName: strptr("Betsson Group"),
			},
			{
				Application: models.Application{ID: "app-2", JobID: "job-gone", Status: models.StatusSubmitted, AppliedAt: applied.Add(-time.Hour)},
			},
		}
		svc := newAppService(repo, storage.NewSimulatedUploader(), &recordingNotifier{})

		out, err := svc.ListByUser(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("len = %d, want 2", len(out))
		}

		if out[0].JobDetails.Title != "Senior Software Developer" || out[0].JobDetails.Company != "Betsson Group" {
			t.Errorf("live job details wrong: %#v", out[0].JobDetails)
		}
		if out[0].JobID != "job-live" || out[0].AppliedDate != applied {
			t.Errorf("row shape wrong: %#v", out[0])
		}

		if out[1].JobDetails.Title != "Job Title Not Found" {
			t.Errorf("title sentinel = %q", out[1].JobDetails.Title)
		}
		if out[1].JobDetails.Company != "Company Not Found" {
			t.Errorf("company sentinel = %q", out[1].JobDetails.Company)
		}
	})
}
