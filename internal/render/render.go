// Package render defines the contract between the controllers and
// whatever presentation layer is attached. The orchestrator exposes each
// page section as a tri-state result and this package turns a page
// snapshot into plain render instructions, so the core stays testable
// with no DOM in sight.
package render

import (
	"fmt"

	"gator-swamp-client/internal/models"
)

// SectionID names one independently-loaded region of a page.
type SectionID string

const (
	SectionPosts          SectionID = "posts"
	SectionCategories     SectionID = "categories"
	SectionFormCategories SectionID = "form-categories"
	SectionStats          SectionID = "stats"
	SectionUsers          SectionID = "users"
	SectionModRequests    SectionID = "moderation-requests"
	SectionReports        SectionID = "post-reports"
	SectionNotifications  SectionID = "notifications"
	SectionActivity       SectionID = "activity"
	SectionComments       SectionID = "comments"
)

// SectionState is the tri-state every section moves through.
type SectionState int

const (
	StateLoading SectionState = iota
	StateSuccess
	StateError
)

func (s SectionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Section is one tri-state result. Data is only meaningful in
// StateSuccess, Err only in StateError.
type Section struct {
	State SectionState
	Data  interface{}
	Err   error
}

func Loading() Section {
	return Section{State: StateLoading}
}

func Success(data interface{}) Section {
	return Section{State: StateSuccess, Data: data}
}

func Failed(err error) Section {
	return Section{State: StateError, Err: err}
}

// Snapshot is everything the presentation layer gets for one page
// activation.
type Snapshot struct {
	Page     models.Page
	Auth     models.AuthContext
	Epoch    uint64
	Sections map[SectionID]Section
}

func NewSnapshot(page models.Page, auth models.AuthContext, epoch uint64) *Snapshot {
	return &Snapshot{
		Page:     page,
		Auth:     auth,
		Epoch:    epoch,
		Sections: make(map[SectionID]Section),
	}
}

// InstructionKind says what to do with a section region.
type InstructionKind int

const (
	ShowLoading InstructionKind = iota
	ShowContent
	ShowError
	ShowEmpty
)

// Instruction is one unit of render output.
type Instruction struct {
	Section SectionID
	Kind    InstructionKind
	Data    interface{}
	Message string
}

// Compose maps a snapshot to render instructions. Failed sections render
// their own isolated placeholder; the statistics section degrades to
// zeroed counters instead of an error box, matching the dashboard's
// fail-soft behavior.
func Compose(snap *Snapshot) []Instruction {
	out := make([]Instruction, 0, len(snap.Sections))

	for id, section := range snap.Sections {
		switch section.State {
		case StateLoading:
			out = append(out, Instruction{Section: id, Kind: ShowLoading})
		case StateSuccess:
			if empty(section.Data) {
				out = append(out, Instruction{
					Section: id,
					Kind:    ShowEmpty,
					Message: emptyMessage(id),
				})
				continue
			}
			out = append(out, Instruction{Section: id, Kind: ShowContent, Data: section.Data})
		case StateError:
			if id == SectionStats {
				// Statistics fall back to zeros, not an error box
				out = append(out, Instruction{
					Section: id,
					Kind:    ShowContent,
					Data:    models.AggregateStats{},
				})
				continue
			}
			out = append(out, Instruction{
				Section: id,
				Kind:    ShowError,
				Message: fmt.Sprintf("Failed to load %s", id),
			})
		}
	}
	return out
}

func empty(data interface{}) bool {
	switch v := data.(type) {
	case []models.Post:
		return len(v) == 0
	case []models.Comment:
		return len(v) == 0
	case []models.Category:
		return len(v) == 0
	case []models.UserSummary:
		return len(v) == 0
	case []models.ModerationRequest:
		return len(v) == 0
	case []models.PostReport:
		return len(v) == 0
	case []models.Notification:
		return len(v) == 0
	case nil:
		return true
	default:
		return false
	}
}

func emptyMessage(id SectionID) string {
	switch id {
	case SectionPosts:
		return "No posts available"
	case SectionNotifications:
		return "No new notifications"
	case SectionModRequests:
		return "No moderation requests"
	case SectionReports:
		return "No post reports found"
	case SectionUsers:
		return "No users found"
	case SectionCategories, SectionFormCategories:
		return "No categories found"
	case SectionComments:
		return "No comments yet"
	default:
		return "Nothing to show"
	}
}
