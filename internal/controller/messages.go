package controller

import (
	"gator-swamp-client/internal/models"
	"gator-swamp-client/internal/render"

	"github.com/google/uuid"
)

// Navigation messages
type (
	// InitialLoadMsg resolves auth, then resolves the initial page from
	// the current history location. Sent exactly once at startup.
	InitialLoadMsg struct{}

	// NavigateMsg asks for an explicit transition to a target page.
	NavigateMsg struct {
		Target models.Page
	}

	// PopStateMsg is a browser back/forward event carrying the restored
	// URL path.
	PopStateMsg struct {
		Path string
	}

	// RefreshAuthMsg re-resolves the auth snapshot, replacing it
	// wholesale.
	RefreshAuthMsg struct{}

	// GetActivePageMsg asks for the current page, epoch and auth.
	GetActivePageMsg struct{}

	// NavigationResult answers navigation messages.
	NavigationResult struct {
		Page  models.Page
		Epoch uint64
		Auth  models.AuthContext
	}

	// PageActivatedMsg tells the badge synchronizer which page became
	// active.
	PageActivatedMsg struct {
		Page models.Page
	}
)

// Orchestrator messages
type (
	// LoadPageMsg starts a fresh load for an activated page. Auth is the
	// snapshot the navigation machine resolved before activating, so
	// every privilege-gated fetch observes it.
	LoadPageMsg struct {
		Page  models.Page
		Auth  models.AuthContext
		Epoch uint64
	}

	// LoadCommentsMsg loads the comment section for one post on the
	// active page.
	LoadCommentsMsg struct {
		PostID uuid.UUID
	}

	// SearchUsersMsg re-runs the dashboard user list filtered by a
	// search term. An empty term restores the full list.
	SearchUsersMsg struct {
		Term string
	}

	// ResyncMsg re-runs exactly the named section fetches after a
	// mutation changed their backing data.
	ResyncMsg struct {
		Sections []render.SectionID
	}

	// GetSnapshotMsg asks for the current page snapshot.
	GetSnapshotMsg struct{}

	// sectionResultMsg is the internal completion of one section fetch.
	// Results from a superseded epoch are discarded on receipt.
	sectionResultMsg struct {
		Epoch   uint64
		Section render.SectionID
		Data    interface{}
		Err     error
	}
)

// Interaction guard messages
type (
	SubmitPostMsg struct {
		Title      string
		Content    string
		Categories []string
		ImagePath  string
	}

	SubmitCommentMsg struct {
		PostID  uuid.UUID
		Content string
	}

	EditPostMsg struct {
		PostID  uuid.UUID
		Title   string
		Content string
	}

	EditCommentMsg struct {
		CommentID uuid.UUID
		Content   string
	}

	VotePostMsg struct {
		PostID   uuid.UUID
		IsUpvote bool
	}

	VoteCommentMsg struct {
		CommentID uuid.UUID
		IsUpvote  bool
	}

	SubmitReportMsg struct {
		PostID uuid.UUID
		Reason string
	}

	SubmitModRequestMsg struct{}

	// submissionDoneMsg is the internal completion of an in-flight
	// submission.
	submissionDoneMsg struct {
		Key    string
		Seq    uint64
		Result interface{}
		Err    error
	}

	// watchdogExpiredMsg force-releases a lock whose submission never
	// observably finished.
	watchdogExpiredMsg struct {
		Key string
		Seq uint64
	}
)

// Badge synchronizer messages
type (
	// StartPollingMsg begins the poll cycle. Only sent for
	// authenticated sessions.
	StartPollingMsg struct{}

	StopPollingMsg struct{}

	// MarkReadMsg marks one notification read and re-derives the badge
	// from a fresh count.
	MarkReadMsg struct {
		NotificationID uuid.UUID
	}

	// GetBadgeMsg asks for the current badge state.
	GetBadgeMsg struct{}

	// BadgeState answers GetBadgeMsg.
	BadgeState struct {
		Count         int
		Notifications []models.Notification
		Polling       bool
	}

	// pollTickMsg is the internal timer tick.
	pollTickMsg struct{}
)

// Moderation workflow messages
type (
	// RequestModerationMsg submits the user's promotion request after a
	// query-before-submit check that no pending request already exists.
	RequestModerationMsg struct {
		UserID uuid.UUID
	}

	AddCategoryMsg struct {
		Title       string
		Description string
	}

	DeleteCategoryMsg struct {
		CategoryID uuid.UUID
	}

	PromoteUserMsg struct {
		UserID      uuid.UUID
		CurrentTier models.Tier
	}

	DemoteUserMsg struct {
		UserID      uuid.UUID
		CurrentTier models.Tier
	}

	ResolveRequestMsg struct {
		RequestID uuid.UUID
		Status    models.ReviewStatus
	}

	ResolveReportMsg struct {
		ReportID uuid.UUID
		Status   models.ReviewStatus
		Response string
	}

	DeletePostMsg struct {
		PostID uuid.UUID
	}

	DeleteCommentMsg struct {
		CommentID uuid.UUID
	}

	// ModerationDone answers moderation messages on success.
	ModerationDone struct{}
)
