package models

import (
	"time"

	"github.com/lib/pq"
)

type Job struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployerID string `gorm:"column:employer_id;type:uuid;index" json:"employer_id"`

	JobTitle string `gorm:"column:job_title;type:text" json:"job_title"`
	// Denormalized from the owning employer for display; queries scope by
	// employer_id, never by this field.
	CompanyName string `gorm:"column:company_name;type:text" json:"company_name"`

	Location string `gorm:"column:location;type:text" json:"location"`
	Region   string `gorm:"column:region;type:text" json:"region"`
	Category string `gorm:"column:category;type:text" json:"category"`
	JobType  string `gorm:"column:job_type;type:text" json:"job_type"`

	SalaryRange     string         `gorm:"column:salary_range;type:text" json:"salary_range"`
	JobDescription  string         `gorm:"column:job_description;type:text" json:"job_description"`
	Requirements    pq.StringArray `gorm:"column:requirements;type:text[]" json:"requirements"`
	ExperienceLevel string         `gorm:"column:experience_level;type:text" json:"experience_level"`

	PostedDate time.Time `gorm:"column:posted_date;type:timestamptz" json:"posted_date"`
}

func (Job) TableName() string { return "jobs" }
