package controller

import (
	"context"
	"log"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/browser"
	"gator-swamp-client/internal/models"

	"github.com/asynkron/protoactor-go/actor"
)

// NavigatorActor is the navigation state machine. It owns the auth
// snapshot, the active page, and the activation epoch; every transition
// is checked against the tier's allow-list in exactly one place.
type NavigatorActor struct {
	client  *api.Client
	history browser.History
	storage browser.Storage

	loaderPID *actor.PID
	badgePID  *actor.PID

	auth     models.AuthContext
	active   models.Page
	epoch    uint64
	resolved bool // auth fetched at least once
}

func NewNavigatorActor(client *api.Client, history browser.History, storage browser.Storage, loaderPID, badgePID *actor.PID) actor.Actor {
	return &NavigatorActor{
		client:    client,
		history:   history,
		storage:   storage,
		loaderPID: loaderPID,
		badgePID:  badgePID,
		auth:      models.Anonymous(),
	}
}

func (a *NavigatorActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *InitialLoadMsg:
		// Resolve auth before anything else: navigation must never run
		// against a default allow-list.
		a.resolveAuth()

		// The restored path resolves exactly like a back/forward event:
		// unknown or disallowed pages land on Error.
		page := models.PageFromPath(a.history.Location())
		if !models.PageAllowed(a.auth, page) {
			page = models.PageError
		}
		a.activate(ctx, page, false)
		ctx.Respond(a.result())

	case *NavigateMsg:
		if !a.resolved {
			a.resolveAuth()
		}
		if !msg.Target.Known() {
			log.Printf("Navigator: unknown page %q", msg.Target)
			a.fallback(ctx)
			ctx.Respond(a.result())
			return
		}
		if !models.PageAllowed(a.auth, msg.Target) {
			log.Printf("Navigator: page %s not allowed at tier %s", msg.Target, a.auth.Privilege)
			a.fallback(ctx)
			ctx.Respond(a.result())
			return
		}

		a.activate(ctx, msg.Target, true)
		ctx.Respond(a.result())

	case *PopStateMsg:
		// Back/forward recomputes the page from the URL; disallowed or
		// unknown paths land on Error. No history push here.
		page := models.PageFromPath(msg.Path)
		if !models.PageAllowed(a.auth, page) {
			page = models.PageError
		}
		a.activate(ctx, page, false)
		ctx.Respond(a.result())

	case *RefreshAuthMsg:
		a.resolveAuth()
		ctx.Respond(a.result())

	case *GetActivePageMsg:
		ctx.Respond(a.result())
	}
}

// resolveAuth replaces the auth snapshot. A failed status check resolves
// to anonymous rather than keeping a stale snapshot around.
func (a *NavigatorActor) resolveAuth() {
	auth, err := a.client.GetAuthStatus(context.Background())
	if err != nil {
		log.Printf("Navigator: auth status check failed: %v", err)
		a.auth = models.Anonymous()
	} else {
		a.auth = auth
	}
	a.resolved = true
}

// activate makes the page current and kicks off its loaders. push says
// whether this transition adds a history entry.
func (a *NavigatorActor) activate(ctx actor.Context, page models.Page, push bool) {
	a.epoch++
	a.active = page

	if push {
		a.history.Push(page.Path())
	} else {
		a.history.Replace(page.Path())
	}
	a.storage.SaveCurrentPage(string(page))

	ctx.Send(a.loaderPID, &LoadPageMsg{
		Page:  page,
		Auth:  a.auth,
		Epoch: a.epoch,
	})
	if a.badgePID != nil {
		ctx.Send(a.badgePID, &PageActivatedMsg{Page: page})
	}
}

// fallback handles a disallowed target: Error when Error itself is
// reachable, otherwise a hard redirect to Login. Checked directly rather
// than re-entering the transition logic so the fallback can never loop.
func (a *NavigatorActor) fallback(ctx actor.Context) {
	if models.PageAllowed(a.auth, models.PageError) {
		a.activate(ctx, models.PageError, true)
		return
	}
	a.history.Replace(models.PageLogin.Path())
	a.active = models.PageLogin
	a.epoch++
	a.storage.SaveCurrentPage(string(models.PageLogin))
	ctx.Send(a.loaderPID, &LoadPageMsg{Page: models.PageLogin, Auth: a.auth, Epoch: a.epoch})
}

func (a *NavigatorActor) result() *NavigationResult {
	return &NavigationResult{
		Page:  a.active,
		Epoch: a.epoch,
		Auth:  a.auth,
	}
}
