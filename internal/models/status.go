package models

import (
	"fmt"
	"strings"
)

type ApplicationStatus string

const (
	StatusSubmitted    ApplicationStatus = "submitted"
	StatusReviewing    ApplicationStatus = "reviewing"
	StatusShortlisted  ApplicationStatus = "shortlisted"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffered      ApplicationStatus = "offered"
	StatusRejected     ApplicationStatus = "rejected"
)

// AllStatuses lists every status an application can carry, in lifecycle order.
var AllStatuses = []ApplicationStatus{
	StatusSubmitted,
	StatusReviewing,
	StatusShortlisted,
	StatusInterviewing,
	StatusOffered,
	StatusRejected,
}

// ParseStatus canonicalizes a caller-supplied status value. Input is matched
// case-insensitively; anything outside the fixed set is an error. Transitions
// between known statuses are intentionally unrestricted: employers may move a
// candidate backward or skip stages.
func ParseStatus(s string) (ApplicationStatus, error) {
	v := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllStatuses {
		if v == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", s)
}
