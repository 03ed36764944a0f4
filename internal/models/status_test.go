package models

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    ApplicationStatus
		wantErr bool
	}{
		{"submitted", StatusSubmitted, false},
		{"Shortlisted", StatusShortlisted, false},
		{"REJECTED", StatusRejected, false},
		{"  offered  ", StatusOffered, false},
		{"interviewing", StatusInterviewing, false},
		{"reviewing", StatusReviewing, false},
		{"", "", true},
		{"promoted", "", true},
		{"submittedd", "", true},
	}

	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
