package controller

import (
	"context"
	"log"
	"strings"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/models"
	"gator-swamp-client/internal/render"
	"gator-swamp-client/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
)

// Confirmer is the explicit confirmation step destructive actions go
// through before any request is sent. Part of the contract, not
// cosmetic.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// ModerationActor drives the role-request and report lifecycles, the
// promote/demote flow, category management, and the destructive content
// deletions. Every role transition is one step and admins are never a
// valid target; the engine enforces this for real, the actor mirrors it
// so the UI cannot even ask.
type ModerationActor struct {
	client    *api.Client
	loaderPID *actor.PID
	guardPID  *actor.PID
	confirm   Confirmer
}

func NewModerationActor(client *api.Client, loaderPID, guardPID *actor.PID, confirm Confirmer) actor.Actor {
	return &ModerationActor{
		client:    client,
		loaderPID: loaderPID,
		guardPID:  guardPID,
		confirm:   confirm,
	}
}

func (a *ModerationActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *RequestModerationMsg:
		// Query-before-submit: one active request per user. The engine
		// rejects duplicates too, but the UI should not even try.
		requests, err := a.client.ListModerationRequests(context.Background())
		if err == nil {
			for _, request := range requests {
				if request.RequesterID == msg.UserID && request.Status == models.StatusPending {
					ctx.Respond(utils.NewAppError(utils.ErrConflictOrMissing,
						"You already have a pending moderation request", nil))
					return
				}
			}
		} else {
			// The pending check is best-effort; the guard and the
			// engine still stand behind it
			log.Printf("Moderation: pending-request check failed: %v", err)
		}

		// Submission itself goes through the guard for the in-flight
		// lock and duplicate window; it answers the original caller.
		ctx.RequestWithCustomSender(a.guardPID, &SubmitModRequestMsg{}, ctx.Sender())

	case *PromoteUserMsg:
		if msg.CurrentTier == models.TierAdmin {
			ctx.Respond(utils.NewPermissionDeniedError("admins cannot be targeted by role changes"))
			return
		}
		if msg.CurrentTier != models.TierUser {
			ctx.Respond(utils.NewValidationError("Only users can be promoted to moderator"))
			return
		}

		if err := a.client.SetUserPrivilege(context.Background(), msg.UserID, models.TierModerator); err != nil {
			ctx.Respond(err)
			return
		}
		a.resync(ctx, render.SectionUsers, render.SectionStats)
		ctx.Respond(&ModerationDone{})

	case *DemoteUserMsg:
		if msg.CurrentTier == models.TierAdmin {
			ctx.Respond(utils.NewPermissionDeniedError("admins cannot be targeted by role changes"))
			return
		}
		if msg.CurrentTier != models.TierModerator {
			ctx.Respond(utils.NewValidationError("Only moderators can be demoted to user"))
			return
		}
		if !a.confirm.Confirm("Demote this moderator to user?") {
			ctx.Respond(utils.NewAppError(utils.ErrCancelled, "Demotion cancelled", nil))
			return
		}

		if err := a.client.SetUserPrivilege(context.Background(), msg.UserID, models.TierUser); err != nil {
			ctx.Respond(err)
			return
		}
		a.resync(ctx, render.SectionUsers, render.SectionStats)
		ctx.Respond(&ModerationDone{})

	case *ResolveRequestMsg:
		if !msg.Status.Terminal() {
			ctx.Respond(utils.NewValidationError("Request resolution must be approved or rejected"))
			return
		}

		if err := a.client.ResolveModerationRequest(context.Background(), msg.RequestID, msg.Status); err != nil {
			ctx.Respond(err)
			return
		}
		// Approval promoted the requester, so the user list and the
		// statistics both changed
		a.resync(ctx, render.SectionModRequests, render.SectionUsers, render.SectionStats)
		ctx.Respond(&ModerationDone{})

	case *ResolveReportMsg:
		if !msg.Status.Terminal() {
			ctx.Respond(utils.NewValidationError("Report resolution must be approved or rejected"))
			return
		}

		prompt := "Reject this report?"
		if msg.Status == models.StatusApproved {
			prompt = "Approve this report? The reported post will be deleted permanently."
		}
		if !a.confirm.Confirm(prompt) {
			ctx.Respond(utils.NewAppError(utils.ErrCancelled, "Report resolution cancelled", nil))
			return
		}

		if err := a.client.ResolvePostReport(context.Background(), msg.ReportID, msg.Status, msg.Response); err != nil {
			ctx.Respond(err)
			return
		}
		// Approval cascades to post deletion, so post views re-sync too
		a.resync(ctx, render.SectionReports, render.SectionStats, render.SectionPosts)
		ctx.Respond(&ModerationDone{})

	case *DeletePostMsg:
		if !a.confirm.Confirm("Delete this post? This action cannot be undone.") {
			ctx.Respond(utils.NewAppError(utils.ErrCancelled, "Deletion cancelled", nil))
			return
		}

		if err := a.client.DeletePost(context.Background(), msg.PostID); err != nil {
			ctx.Respond(err)
			return
		}
		a.resync(ctx, render.SectionPosts, render.SectionStats)
		ctx.Respond(&ModerationDone{})

	case *DeleteCommentMsg:
		if !a.confirm.Confirm("Delete this comment? This action cannot be undone.") {
			ctx.Respond(utils.NewAppError(utils.ErrCancelled, "Deletion cancelled", nil))
			return
		}

		if err := a.client.DeleteComment(context.Background(), msg.CommentID); err != nil {
			ctx.Respond(err)
			return
		}
		a.resync(ctx, render.SectionComments, render.SectionStats)
		ctx.Respond(&ModerationDone{})

	case *AddCategoryMsg:
		if strings.TrimSpace(msg.Title) == "" {
			ctx.Respond(utils.NewValidationError("Category title is required"))
			return
		}
		if strings.TrimSpace(msg.Description) == "" {
			ctx.Respond(utils.NewValidationError("Category description is required"))
			return
		}

		if _, err := a.client.AddCategory(context.Background(), strings.TrimSpace(msg.Title), strings.TrimSpace(msg.Description)); err != nil {
			ctx.Respond(err)
			return
		}
		a.resync(ctx, render.SectionCategories)
		ctx.Respond(&ModerationDone{})

	case *DeleteCategoryMsg:
		if !a.confirm.Confirm("Delete this category? This will affect all posts in it.") {
			ctx.Respond(utils.NewAppError(utils.ErrCancelled, "Deletion cancelled", nil))
			return
		}

		if err := a.client.DeleteCategory(context.Background(), msg.CategoryID); err != nil {
			ctx.Respond(err)
			return
		}
		a.resync(ctx, render.SectionCategories)
		ctx.Respond(&ModerationDone{})
	}
}

func (a *ModerationActor) resync(ctx actor.Context, sections ...render.SectionID) {
	ctx.Send(a.loaderPID, &ResyncMsg{Sections: sections})
}
