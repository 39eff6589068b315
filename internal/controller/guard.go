package controller

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/models"
	"gator-swamp-client/internal/render"
	"gator-swamp-client/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/go-playground/validator/v10"
	"github.com/twmb/murmur3"
)

// postPayload carries the shape checks for post creation. Limits match
// what the engine enforces.
type postPayload struct {
	Title      string   `validate:"required,max=100"`
	Content    string   `validate:"required,max=1000"`
	Categories []string `validate:"required,min=1"`
}

// editPayload covers post edits, which never change categories.
type editPayload struct {
	Title   string `validate:"required,max=100"`
	Content string `validate:"required,max=1000"`
}

type commentPayload struct {
	Content string `validate:"required,max=1000"`
}

type reportPayload struct {
	Reason string `validate:"required,max=500"`
}

// fingerprintRecord remembers the last accepted submission per action so
// identical content inside the duplicate window is rejected locally.
type fingerprintRecord struct {
	hash uint64
	at   time.Time
}

// inFlight tracks one held submission lock. seq disambiguates a late
// completion from the current submission after a watchdog release.
type inFlight struct {
	seq    uint64
	sender *actor.PID
	action string
}

// SubmitGuardActor deduplicates and rate-limits user-submitted actions:
// at most one in-flight submission per action key, plus a
// duplicate-content window checked before any network call. A watchdog
// force-releases the lock if the submission never observably finishes;
// accepting a possible duplicate on extreme delay is the documented
// trade for a UI that cannot get stuck.
type SubmitGuardActor struct {
	client       *api.Client
	loaderPID    *actor.PID
	navigatorPID *actor.PID
	validate     *validator.Validate

	duplicateWindow time.Duration
	watchdog        time.Duration

	locks    map[string]*inFlight
	lastSeen map[string]fingerprintRecord
	seq      uint64
}

func NewSubmitGuardActor(client *api.Client, loaderPID, navigatorPID *actor.PID, duplicateWindow, watchdog time.Duration) actor.Actor {
	return &SubmitGuardActor{
		client:          client,
		loaderPID:       loaderPID,
		navigatorPID:    navigatorPID,
		validate:        validator.New(),
		duplicateWindow: duplicateWindow,
		watchdog:        watchdog,
		locks:           make(map[string]*inFlight),
		lastSeen:        make(map[string]fingerprintRecord),
	}
}

func (a *SubmitGuardActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *SubmitPostMsg:
		payload := postPayload{Title: strings.TrimSpace(msg.Title), Content: strings.TrimSpace(msg.Content), Categories: msg.Categories}
		if err := a.validate.Struct(payload); err != nil {
			ctx.Respond(postValidationError(err))
			return
		}

		key := "create-post"
		print := fingerprint(key, payload.Title, payload.Content, strings.Join(msg.Categories, ","))
		if !a.admit(ctx, key, "post", print) {
			return
		}

		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			return a.client.CreatePost(bg, api.CreatePostRequest{
				Title:      payload.Title,
				Content:    payload.Content,
				Categories: msg.Categories,
				ImagePath:  msg.ImagePath,
			})
		})

	case *SubmitCommentMsg:
		payload := commentPayload{Content: strings.TrimSpace(msg.Content)}
		if err := a.validate.Struct(payload); err != nil {
			ctx.Respond(utils.NewValidationError("Comment cannot be empty"))
			return
		}

		// A stale token means the submission can only fail with an auth
		// error; skip the round trip and send the user to login now.
		if a.client.Session().Stale(time.Now()) {
			a.redirectToLogin(ctx)
			ctx.Respond(utils.NewAuthRequiredError("create comment"))
			return
		}

		key := "create-comment:" + msg.PostID.String()
		print := fingerprint(key, payload.Content)
		if !a.admit(ctx, key, "comment", print) {
			return
		}

		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			return a.client.CreateComment(bg, msg.PostID, payload.Content)
		})

	case *EditPostMsg:
		payload := editPayload{Title: strings.TrimSpace(msg.Title), Content: strings.TrimSpace(msg.Content)}
		if err := a.validate.Struct(payload); err != nil {
			ctx.Respond(postValidationError(err))
			return
		}

		key := "edit-post:" + msg.PostID.String()
		if !a.acquire(ctx, key) {
			return
		}
		postID := msg.PostID
		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			return a.client.EditPost(bg, api.EditPostRequest{
				PostID:  postID,
				Title:   payload.Title,
				Content: payload.Content,
			})
		})

	case *EditCommentMsg:
		payload := commentPayload{Content: strings.TrimSpace(msg.Content)}
		if err := a.validate.Struct(payload); err != nil {
			ctx.Respond(utils.NewValidationError("Comment cannot be empty"))
			return
		}

		key := "edit-comment:" + msg.CommentID.String()
		if !a.acquire(ctx, key) {
			return
		}
		commentID := msg.CommentID
		content := payload.Content
		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			return a.client.EditComment(bg, commentID, content)
		})

	case *VotePostMsg:
		key := voteKey("post", msg.PostID.String())
		if !a.acquire(ctx, key) {
			return
		}
		postID := msg.PostID
		upvote := msg.IsUpvote
		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			if upvote {
				return a.client.LikePost(bg, postID)
			}
			return a.client.DislikePost(bg, postID)
		})

	case *VoteCommentMsg:
		key := voteKey("comment", msg.CommentID.String())
		if !a.acquire(ctx, key) {
			return
		}
		commentID := msg.CommentID
		upvote := msg.IsUpvote
		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			if upvote {
				return a.client.LikeComment(bg, commentID)
			}
			return a.client.DislikeComment(bg, commentID)
		})

	case *SubmitReportMsg:
		payload := reportPayload{Reason: strings.TrimSpace(msg.Reason)}
		if err := a.validate.Struct(payload); err != nil {
			ctx.Respond(utils.NewValidationError("Report reason is required"))
			return
		}

		key := "report-post:" + msg.PostID.String()
		print := fingerprint(key, payload.Reason)
		if !a.admit(ctx, key, "report", print) {
			return
		}

		postID := msg.PostID
		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			return a.client.CreatePostReport(bg, postID, payload.Reason)
		})

	case *SubmitModRequestMsg:
		key := "moderation-request"
		print := fingerprint(key)
		if !a.admit(ctx, key, "request", print) {
			return
		}
		a.launch(ctx, key, func(bg context.Context) (interface{}, error) {
			return a.client.CreateModerationRequest(bg)
		})

	case *submissionDoneMsg:
		pending, held := a.locks[msg.Key]
		if !held || pending.seq != msg.Seq {
			// Watchdog already released this lock; a late result must
			// not touch current state.
			log.Printf("Guard: discarding late result for %s", msg.Key)
			return
		}
		delete(a.locks, msg.Key)

		if msg.Err != nil {
			if utils.IsAuthError(msg.Err) {
				// A stale session, not a content problem: send the user
				// to login instead of an inline error.
				a.redirectToLogin(ctx)
			}
			ctx.Send(pending.sender, msg.Err)
			return
		}

		a.resyncAfter(ctx, msg.Key)
		ctx.Send(pending.sender, msg.Result)

	case *watchdogExpiredMsg:
		pending, held := a.locks[msg.Key]
		if !held || pending.seq != msg.Seq {
			return
		}
		// Nothing observable came back; release so the UI recovers.
		log.Printf("Guard: watchdog released %s after %v", msg.Key, a.watchdog)
		delete(a.locks, msg.Key)
		ctx.Send(pending.sender, utils.NewTransportError(pending.action, fmt.Errorf("no response within %v", a.watchdog)))
	}
}

// admit runs the duplicate-window check and then acquires the lock,
// responding with the rejection when either fails.
func (a *SubmitGuardActor) admit(ctx actor.Context, key, action string, print uint64) bool {
	if last, seen := a.lastSeen[key]; seen && last.hash == print && time.Since(last.at) < a.duplicateWindow {
		ctx.Respond(utils.NewDuplicateSubmissionError(action))
		return false
	}
	if !a.acquire(ctx, key) {
		return false
	}
	a.lastSeen[key] = fingerprintRecord{hash: print, at: time.Now()}
	return true
}

// acquire takes the in-flight lock for the key. A second attempt while
// it is held is rejected, never queued.
func (a *SubmitGuardActor) acquire(ctx actor.Context, key string) bool {
	if _, held := a.locks[key]; held {
		ctx.Respond(utils.NewAppError(utils.ErrSubmissionInFlight, "Submission already in progress", nil))
		return false
	}
	a.seq++
	a.locks[key] = &inFlight{
		seq:    a.seq,
		sender: ctx.Sender(),
		action: key,
	}
	return true
}

// launch runs the network call off the actor goroutine and arms the
// watchdog. Completion and expiry both come back through the mailbox.
func (a *SubmitGuardActor) launch(ctx actor.Context, key string, call func(context.Context) (interface{}, error)) {
	seq := a.locks[key].seq
	self := ctx.Self()
	root := ctx.ActorSystem().Root

	time.AfterFunc(a.watchdog, func() {
		root.Send(self, &watchdogExpiredMsg{Key: key, Seq: seq})
	})

	go func() {
		result, err := call(context.Background())
		root.Send(self, &submissionDoneMsg{Key: key, Seq: seq, Result: result, Err: err})
	}()
}

// resyncAfter re-runs exactly the fetches a successful mutation could
// have changed.
func (a *SubmitGuardActor) resyncAfter(ctx actor.Context, key string) {
	switch {
	case key == "create-post":
		ctx.Send(a.loaderPID, &ResyncMsg{Sections: []render.SectionID{render.SectionPosts}})
	case strings.HasPrefix(key, "create-comment:"):
		ctx.Send(a.loaderPID, &ResyncMsg{Sections: []render.SectionID{render.SectionComments}})
	case strings.HasPrefix(key, "edit-post:"):
		ctx.Send(a.loaderPID, &ResyncMsg{Sections: []render.SectionID{render.SectionPosts}})
	case strings.HasPrefix(key, "edit-comment:"):
		ctx.Send(a.loaderPID, &ResyncMsg{Sections: []render.SectionID{render.SectionComments}})
	}
	// Votes carry their authoritative counts in the response itself;
	// no section re-runs.
}

func (a *SubmitGuardActor) redirectToLogin(ctx actor.Context) {
	if a.navigatorPID != nil {
		ctx.Send(a.navigatorPID, &NavigateMsg{Target: models.PageLogin})
	}
}

// voteKey is shared by like and dislike so opposing votes for one item
// can never race each other.
func voteKey(kind, id string) string {
	return "vote-" + kind + ":" + id
}

// fingerprint hashes the semantic payload of a submission.
func fingerprint(parts ...string) uint64 {
	return murmur3.StringSum64(strings.Join(parts, "\x1f"))
}

// postValidationError maps the first failed field to the message the
// form shows.
func postValidationError(err error) *utils.AppError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return utils.NewValidationError("Invalid post")
	}

	first := errs[0]
	switch first.Field() {
	case "Title":
		if first.Tag() == "max" {
			return utils.NewValidationError("Post title must be less than 100 characters")
		}
		return utils.NewValidationError("Post title is required")
	case "Content":
		if first.Tag() == "max" {
			return utils.NewValidationError("Post content must be less than 1000 characters")
		}
		return utils.NewValidationError("Post content is required")
	case "Categories":
		return utils.NewValidationError("Please select at least one category")
	default:
		return utils.NewValidationError("Invalid post")
	}
}
