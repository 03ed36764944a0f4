package models

import "time"

type Application struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID  string `gorm:"column:job_id;type:uuid;index" json:"job_id"`
	UserID string `gorm:"column:user_id;type:uuid;index" json:"user_id"`

	Name        string `gorm:"column:name;type:text" json:"name"`
	Email       string `gorm:"column:email;type:text" json:"email"`
	CoverLetter string `gorm:"column:cover_letter;type:text" json:"cover_letter"`
	ResumeURL   string `gorm:"column:resume_url;type:text" json:"resume_url"`

	Status ApplicationStatus `gorm:"column:status;type:text" json:"status"`

	// Set once at submission, never updated afterwards.
	AppliedAt time.Time `gorm:"column:applied_at;type:timestamptz" json:"applied_at"`
}

func (Application) TableName() string { return "applications" }

// ApplicationWithJob is the by-job / by-applicant projection row: an
// application plus the title and company of its job, left-joined so the
// application still comes back when the job row is gone.
type ApplicationWithJob struct {
	Application `gorm:"embedded"`
	JobTitle    *string `gorm:"column:job_title" json:"job_title,omitempty"`
	CompanyName *string `gorm:"column:company_name" json:"company_name,omitempty"`
}
