package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents where a job application currently stands.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffered   ApplicationStatus = "OFFERED"
	StatusJoined    ApplicationStatus = "JOINED"
	StatusRejected  ApplicationStatus = "REJECTED"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffered, StatusJoined, StatusRejected:
		return true
	}
	return false
}

var ErrCompanyNotFound = errors.New("company not found")
var ErrCommentNotFound = errors.New("comment not found")

// Ratings holds the 1–5 scores a user assigns to a company.
type Ratings struct {
	Salary    int `json:"salary" bson:"salary"`
	Stability int `json:"stability" bson:"stability"`
	Culture   int `json:"culture" bson:"culture"`
}

// Company is a tracked job application pinned on the map. Every company is
// owned by exactly one user; IsPublic opens it to read access for everyone.
type Company struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	Name      string            `json:"name" bson:"name"`
	SubSector string            `json:"sub_sector" bson:"sub_sector"`
	Latitude  float64           `json:"latitude" bson:"latitude"`
	Longitude float64           `json:"longitude" bson:"longitude"`
	Status    ApplicationStatus `json:"status" bson:"status"`
	Ratings   Ratings           `json:"ratings" bson:"ratings"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
	IsPublic  bool              `json:"is_public" bson:"is_public"`
	OwnerID   string            `json:"user_id" bson:"owner_id"`
	OwnerName string            `json:"user_name,omitempty" bson:"owner_name,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}

// Comment is a single entry in a company's discussion thread. ParentID links
// a reply to the comment it answers; top-level comments leave it empty.
type Comment struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	CompanyID  string    `json:"company_id" bson:"company_id"`
	AuthorID   string    `json:"user_id" bson:"author_id"`
	AuthorName string    `json:"user_name" bson:"author_name"`
	Content    string    `json:"content" bson:"content"`
	ParentID   string    `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
