package domain

import "time"

// MasterAnglerSubmission links a user's catch to the certification workflow.
// Reviewed is set by an admin once the submission has been verified.
type MasterAnglerSubmission struct {
	ID        int64
	UserID    int64
	CatchID   int64
	Reviewed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// SubmissionDetails is a submission with its catch payload embedded.
type SubmissionDetails struct {
	MasterAnglerSubmission
	Catch *CatchDetails
}
