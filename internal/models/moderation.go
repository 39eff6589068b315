package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the lifecycle state shared by moderation requests and
// post reports. Approved and rejected are terminal.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s ReviewStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// ModerationRequest is a user's request to be promoted to moderator.
// Only an admin decision moves it out of pending.
type ModerationRequest struct {
	ID            uuid.UUID    `json:"id"`
	RequesterID   uuid.UUID    `json:"requesterId"`
	RequesterName string       `json:"requesterName"`
	Status        ReviewStatus `json:"status"`
	RequestedAt   time.Time    `json:"requestedAt"`
}

// PostReport is a moderator's report against a post. Approval cascades
// to deletion of the reported post; rejection leaves it untouched.
type PostReport struct {
	ID            uuid.UUID    `json:"id"`
	PostID        uuid.UUID    `json:"postId"`
	PostTitle     string       `json:"postTitle"`
	PostAuthor    string       `json:"postAuthor"`
	ReporterID    uuid.UUID    `json:"reporterId"`
	ReporterName  string       `json:"reporterName"`
	Reason        string       `json:"reason"`
	Status        ReviewStatus `json:"status"`
	AdminResponse string       `json:"adminResponse,omitempty"`
	ReportedAt    time.Time    `json:"reportedAt"`
}

// Notification is one entry of the activity feed.
type Notification struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"` // PostLike, PostDislike, Comment, CommentLike, CommentDislike
	ActorUsername string    `json:"actorUsername"`
	PostTitle     string    `json:"postTitle,omitempty"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}
