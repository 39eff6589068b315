package controller

import (
	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/browser"
	"gator-swamp-client/internal/config"

	"github.com/asynkron/protoactor-go/actor"
)

// Controllers coordinates communication between the console actors
type Controllers struct {
	navigatorPID  *actor.PID
	loaderPID     *actor.PID
	guardPID      *actor.PID
	badgePID      *actor.PID
	moderationPID *actor.PID
}

func NewControllers(system *actor.ActorSystem, cfg *config.Config, client *api.Client, history browser.History, storage browser.Storage, confirm Confirmer) *Controllers {
	context := system.Root

	// Spawn page loader actor
	loaderProps := actor.PropsFromProducer(func() actor.Actor {
		return NewPageLoaderActor(client)
	})
	loaderPID := context.Spawn(loaderProps)

	// Spawn badge actor
	badgeProps := actor.PropsFromProducer(func() actor.Actor {
		return NewBadgeActor(client, cfg.BadgePollInterval)
	})
	badgePID := context.Spawn(badgeProps)

	// Spawn navigator actor
	navigatorProps := actor.PropsFromProducer(func() actor.Actor {
		return NewNavigatorActor(client, history, storage, loaderPID, badgePID)
	})
	navigatorPID := context.Spawn(navigatorProps)

	// Spawn submit guard actor
	guardProps := actor.PropsFromProducer(func() actor.Actor {
		return NewSubmitGuardActor(client, loaderPID, navigatorPID, cfg.DuplicateWindow, cfg.WatchdogTimeout)
	})
	guardPID := context.Spawn(guardProps)

	// Spawn moderation actor
	moderationProps := actor.PropsFromProducer(func() actor.Actor {
		return NewModerationActor(client, loaderPID, guardPID, confirm)
	})
	moderationPID := context.Spawn(moderationProps)

	return &Controllers{
		navigatorPID:  navigatorPID,
		loaderPID:     loaderPID,
		guardPID:      guardPID,
		badgePID:      badgePID,
		moderationPID: moderationPID,
	}
}

// GetNavigator returns the PID of the navigator actor
func (c *Controllers) GetNavigator() *actor.PID {
	return c.navigatorPID
}

// GetPageLoader returns the PID of the page loader actor
func (c *Controllers) GetPageLoader() *actor.PID {
	return c.loaderPID
}

// GetSubmitGuard returns the PID of the submit guard actor
func (c *Controllers) GetSubmitGuard() *actor.PID {
	return c.guardPID
}

// GetBadge returns the PID of the badge actor
func (c *Controllers) GetBadge() *actor.PID {
	return c.badgePID
}

// GetModeration returns the PID of the moderation actor
func (c *Controllers) GetModeration() *actor.PID {
	return c.moderationPID
}

// Shutdown stops background work before the actor system goes away.
func (c *Controllers) Shutdown(system *actor.ActorSystem) {
	system.Root.Send(c.badgePID, &StopPollingMsg{})
}
