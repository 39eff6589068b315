package controller

import (
	"context"
	"log"
	"time"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/models"

	"github.com/asynkron/protoactor-go/actor"
)

// BadgeActor keeps the unread-notification badge in sync. Each poll tick
// does a full list refresh while the Activity page is active and a
// cheaper count-only refresh otherwise. The count is always recomputed
// from the engine's answer, last writer wins, never accumulated locally.
type BadgeActor struct {
	client   *api.Client
	interval time.Duration

	count         int
	notifications []models.Notification
	activityShown bool

	polling bool
	stop    chan struct{}
}

func NewBadgeActor(client *api.Client, interval time.Duration) actor.Actor {
	return &BadgeActor{
		client:   client,
		interval: interval,
	}
}

func (a *BadgeActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *StartPollingMsg:
		if a.polling {
			ctx.Respond(true)
			return
		}
		a.polling = true
		a.stop = make(chan struct{})
		a.runTicker(ctx)

		// Prime the badge immediately rather than waiting a full
		// interval
		a.refresh(ctx)
		ctx.Respond(true)

	case *StopPollingMsg:
		if a.polling {
			close(a.stop)
			a.polling = false
		}
		ctx.Respond(true)

	case *PageActivatedMsg:
		a.activityShown = msg.Page == models.PageActivity

	case *pollTickMsg:
		if !a.polling {
			return
		}
		a.refresh(ctx)

	case *MarkReadMsg:
		err := a.client.MarkNotificationRead(context.Background(), msg.NotificationID)
		if err != nil {
			log.Printf("Badge: mark-as-read failed: %v", err)
			ctx.Respond(err)
			return
		}

		// Flip only the targeted item locally; the badge itself is
		// re-derived from a fresh count so it never drifts from the
		// engine's unread computation.
		for i := range a.notifications {
			if a.notifications[i].ID == msg.NotificationID {
				a.notifications[i].IsRead = true
				break
			}
		}
		a.refreshCount()
		ctx.Respond(a.state())

	case *GetBadgeMsg:
		ctx.Respond(a.state())
	}
}

func (a *BadgeActor) runTicker(ctx actor.Context) {
	self := ctx.Self()
	root := ctx.ActorSystem().Root
	stop := a.stop
	interval := a.interval

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				root.Send(self, &pollTickMsg{})
			}
		}
	}()
}

// refresh performs one poll cycle: full list refresh on the activity
// page, count-only everywhere else.
func (a *BadgeActor) refresh(ctx actor.Context) {
	if a.activityShown {
		notifications, err := a.client.ListNotifications(context.Background())
		if err != nil {
			log.Printf("Badge: notification refresh failed: %v", err)
		} else {
			a.notifications = notifications
		}
	}
	a.refreshCount()
}

func (a *BadgeActor) refreshCount() {
	count, err := a.client.GetNotificationCount(context.Background())
	if err != nil {
		// Keep the last completed poll's value on failure
		log.Printf("Badge: count refresh failed: %v", err)
		return
	}
	if count < 0 {
		count = 0
	}
	a.count = count
}

func (a *BadgeActor) state() *BadgeState {
	out := make([]models.Notification, len(a.notifications))
	copy(out, a.notifications)
	return &BadgeState{
		Count:         a.count,
		Notifications: out,
		Polling:       a.polling,
	}
}
