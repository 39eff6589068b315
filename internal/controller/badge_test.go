package controller

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"gator-swamp-client/internal/models"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBadgePrimesOnStart(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/notifications/count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"count": 3})
	})

	badgePID := f.spawn(func() actor.Actor { return NewBadgeActor(f.client, time.Hour) })
	f.ask(t, badgePID, &StartPollingMsg{})

	state := f.ask(t, badgePID, &GetBadgeMsg{}).(*BadgeState)
	assert.Equal(t, 3, state.Count)
	assert.True(t, state.Polling)
}

func TestBadgeNeverGoesNegative(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/notifications/count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"count": -5})
	})

	badgePID := f.spawn(func() actor.Actor { return NewBadgeActor(f.client, time.Hour) })
	f.ask(t, badgePID, &StartPollingMsg{})

	state := f.ask(t, badgePID, &GetBadgeMsg{}).(*BadgeState)
	assert.Equal(t, 0, state.Count)
}

func TestBadgeKeepsLastValueOnFailedPoll(t *testing.T) {
	f := newFixture(t)
	var failing atomic.Bool
	f.mux.HandleFunc("/notifications/count", func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			http.Error(w, "unavailable", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]int{"count": 7})
	})

	badgePID := f.spawn(func() actor.Actor { return NewBadgeActor(f.client, time.Hour) })
	f.ask(t, badgePID, &StartPollingMsg{})

	failing.Store(true)
	f.root.Send(badgePID, &pollTickMsg{})

	state := f.ask(t, badgePID, &GetBadgeMsg{}).(*BadgeState)
	assert.Equal(t, 7, state.Count)
}

func TestBadgeDoesNotPollUntilStarted(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/notifications/count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"count": 1})
	})

	badgePID := f.spawn(func() actor.Actor { return NewBadgeActor(f.client, 10*time.Millisecond) })

	// A tick before StartPollingMsg is ignored; anonymous sessions never
	// start the loop in the first place
	f.root.Send(badgePID, &pollTickMsg{})
	state := f.ask(t, badgePID, &GetBadgeMsg{}).(*BadgeState)
	assert.False(t, state.Polling)
	assert.Equal(t, 0, state.Count)
	assert.Equal(t, 0, f.metrics.OperationCount("get_notification_count"))
}

func TestBadgeFetchesListOnActivityPage(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/notifications/count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"count": 1})
	})
	f.mux.HandleFunc("/notifications", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Notification{
			{ID: uuid.New(), Kind: "PostLike", ActorUsername: "gator"},
		})
	})

	badgePID := f.spawn(func() actor.Actor { return NewBadgeActor(f.client, time.Hour) })

	// Off the activity page only the count is polled
	f.ask(t, badgePID, &StartPollingMsg{})
	assert.Equal(t, 0, f.metrics.OperationCount("list_notifications"))

	// On the activity page the full list is refreshed too
	f.root.Send(badgePID, &PageActivatedMsg{Page: models.PageActivity})
	f.root.Send(badgePID, &pollTickMsg{})

	waitForOperationCount(t, f, "list_notifications", 1)
	state := f.ask(t, badgePID, &GetBadgeMsg{}).(*BadgeState)
	assert.Len(t, state.Notifications, 1)
}

func TestMarkAsRead(t *testing.T) {
	f := newFixture(t)
	notifID := uuid.New()
	var unread atomic.Int32
	unread.Store(2)

	f.mux.HandleFunc("/notifications/count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"count": int(unread.Load())})
	})
	f.mux.HandleFunc("/notifications", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Notification{
			{ID: notifID, Kind: "Comment", IsRead: false},
			{ID: uuid.New(), Kind: "PostLike", IsRead: false},
		})
	})
	f.mux.HandleFunc("/notifications/read", func(w http.ResponseWriter, r *http.Request) {
		unread.Add(-1)
		w.WriteHeader(http.StatusOK)
	})

	badgePID := f.spawn(func() actor.Actor { return NewBadgeActor(f.client, time.Hour) })
	f.root.Send(badgePID, &PageActivatedMsg{Page: models.PageActivity})
	f.ask(t, badgePID, &StartPollingMsg{})

	state := f.ask(t, badgePID, &MarkReadMsg{NotificationID: notifID}).(*BadgeState)

	// Only the targeted item flips; the badge is re-derived from the
	// engine's count, not decremented locally
	assert.Equal(t, 1, state.Count)
	for _, notification := range state.Notifications {
		if notification.ID == notifID {
			assert.True(t, notification.IsRead)
		} else {
			assert.False(t, notification.IsRead)
		}
	}
}

func TestStopPolling(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/notifications/count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"count": 1})
	})

	badgePID := f.spawn(func() actor.Actor { return NewBadgeActor(f.client, time.Hour) })
	f.ask(t, badgePID, &StartPollingMsg{})
	f.ask(t, badgePID, &StopPollingMsg{})

	state := f.ask(t, badgePID, &GetBadgeMsg{}).(*BadgeState)
	assert.False(t, state.Polling)
}
