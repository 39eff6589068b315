package render

import "gator-swamp-client/internal/models"

// Action names a button the presentation layer may expose on an item.
type Action string

const (
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
	ActionComment Action = "comment"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionReport  Action = "report"
	ActionPromote Action = "promote"
	ActionDemote  Action = "demote"
)

// PostActions computes the action surface for one post under the given
// auth context. This mirrors the engine's authorization for UX only; the
// engine re-checks authority on every call.
//
// Deletion is exposed to the owner or to moderator-and-above through the
// same single operation. Reporting is a moderator surface: admins delete
// directly instead of reporting to themselves.
func PostActions(auth models.AuthContext, post models.Post) []Action {
	actions := []Action{ActionLike, ActionDislike, ActionComment}

	if !auth.Authenticated {
		return actions
	}

	if post.OwnedBy(auth.UserID) {
		actions = append(actions, ActionEdit)
	}
	if post.OwnedBy(auth.UserID) || auth.Privilege.AtLeast(models.TierModerator) {
		actions = append(actions, ActionDelete)
	}
	if auth.Privilege == models.TierModerator {
		actions = append(actions, ActionReport)
	}
	return actions
}

// CommentActions computes the action surface for one comment.
func CommentActions(auth models.AuthContext, comment models.Comment) []Action {
	actions := []Action{ActionLike, ActionDislike}

	if !auth.Authenticated {
		return actions
	}

	if comment.OwnedBy(auth.UserID) {
		actions = append(actions, ActionEdit)
	}
	if comment.OwnedBy(auth.UserID) || auth.Privilege.AtLeast(models.TierModerator) {
		actions = append(actions, ActionDelete)
	}
	return actions
}

// UserActions computes the role-change surface for one user row in the
// admin dashboard. Users can only be promoted, moderators only demoted,
// and admins are never a target in either direction.
func UserActions(user models.UserSummary) []Action {
	switch user.Privilege {
	case models.TierUser:
		return []Action{ActionPromote}
	case models.TierModerator:
		return []Action{ActionDemote}
	default:
		return nil
	}
}
