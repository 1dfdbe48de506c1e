package domain

import "time"

// ActivityType labels an entry in the audit feed shown on the admin panel.
type ActivityType string

const (
	ActivityLogin          ActivityType = "login"
	ActivityLoginFailed    ActivityType = "login_failed"
	ActivityRegister       ActivityType = "register"
	ActivityCompanyCreated ActivityType = "company_created"
	ActivityCompanyDeleted ActivityType = "company_deleted"
	ActivityCommentPosted  ActivityType = "comment_posted"
	ActivityUserUpdated    ActivityType = "user_updated"
	ActivityUserDeleted    ActivityType = "user_deleted"
)

// ActivityEvent records one user-visible action for the admin activity feed.
// Events are written asynchronously and are advisory only — they never feed
// back into authorization decisions.
type ActivityEvent struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	Type      ActivityType `json:"type" bson:"type"`
	UserID    string       `json:"user_id" bson:"user_id"`
	Email     string       `json:"email,omitempty" bson:"email,omitempty"`
	Detail    string       `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
}
