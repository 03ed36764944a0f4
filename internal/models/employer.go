package models

import "time"

// Employer ties an authenticated identity to a company. Jobs are owned via
// employer_id; company_name string matching is display-only.
type Employer struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;type:uuid;uniqueIndex" json:"user_id"`
	CompanyName string    `gorm:"column:company_name;type:text" json:"company_name"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Employer) TableName() string { return "employers" }
