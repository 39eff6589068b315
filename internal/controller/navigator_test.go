package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"gator-swamp-client/internal/browser"
	"gator-swamp-client/internal/models"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func serveAuth(f *fixture, auth models.AuthContext) {
	f.mux.HandleFunc("/auth/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(auth)
	})
}

func spawnNavigator(f *fixture, history browser.History, storage browser.Storage) (*actor.PID, *actor.PID) {
	loaderPID := f.spawn(func() actor.Actor { return NewPageLoaderActor(f.client) })
	navigatorPID := f.spawn(func() actor.Actor {
		return NewNavigatorActor(f.client, history, storage, loaderPID, nil)
	})
	return navigatorPID, loaderPID
}

func TestInitialLoadAnonymousHome(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.Anonymous())

	history := browser.NewMemoryHistory("/")
	navigatorPID, _ := spawnNavigator(f, history, browser.NewMemoryStorage())

	result := f.ask(t, navigatorPID, &InitialLoadMsg{}).(*NavigationResult)
	assert.Equal(t, models.PageHome, result.Page)
	assert.False(t, result.Auth.Authenticated)
	assert.Equal(t, uint64(1), result.Epoch)
}

func TestInitialLoadRestoredProtectedPageResolvesToError(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.Anonymous())

	// A previous session left /profile as the stored page; this session
	// is not logged in, so the restored path resolves the same way a
	// back/forward event would
	history := browser.NewMemoryHistory("/profile")
	navigatorPID, _ := spawnNavigator(f, history, browser.NewMemoryStorage())

	result := f.ask(t, navigatorPID, &InitialLoadMsg{}).(*NavigationResult)
	assert.Equal(t, models.PageError, result.Page)
	assert.Equal(t, "/error", history.Location())

	// The profile's data fetch never fires for a page that was not
	// activated
	assert.Equal(t, 0, f.metrics.OperationCount("get_profile_activity"))
}

func TestNavigateUnknownPageLandsOnError(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.Anonymous())

	navigatorPID, _ := spawnNavigator(f, browser.NewMemoryHistory("/"), browser.NewMemoryStorage())
	f.ask(t, navigatorPID, &InitialLoadMsg{})

	result := f.ask(t, navigatorPID, &NavigateMsg{Target: models.Page("Dashboard9000")}).(*NavigationResult)
	assert.Equal(t, models.PageError, result.Page)
}

func TestNavigateDisallowedPageLandsOnError(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.Anonymous())

	navigatorPID, _ := spawnNavigator(f, browser.NewMemoryHistory("/"), browser.NewMemoryStorage())
	f.ask(t, navigatorPID, &InitialLoadMsg{})

	result := f.ask(t, navigatorPID, &NavigateMsg{Target: models.PageProfile}).(*NavigationResult)
	assert.Equal(t, models.PageError, result.Page)
	// The profile's data fetch never fires for a blocked transition
	assert.Equal(t, 0, f.metrics.OperationCount("get_profile_activity"))

	result = f.ask(t, navigatorPID, &NavigateMsg{Target: models.PageAdminDashboard}).(*NavigationResult)
	assert.Equal(t, models.PageError, result.Page)
	assert.Equal(t, 0, f.metrics.OperationCount("get_aggregate_stats"))
	assert.Equal(t, 0, f.metrics.OperationCount("list_users"))
}

func TestNavigateAllowedForAdmin(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.AuthContext{
		Authenticated: true,
		Privilege:     models.TierAdmin,
		UserID:        uuid.New(),
	})

	history := browser.NewMemoryHistory("/")
	navigatorPID, _ := spawnNavigator(f, history, browser.NewMemoryStorage())
	initial := f.ask(t, navigatorPID, &InitialLoadMsg{}).(*NavigationResult)

	result := f.ask(t, navigatorPID, &NavigateMsg{Target: models.PageAdminDashboard}).(*NavigationResult)
	assert.Equal(t, models.PageAdminDashboard, result.Page)
	assert.Equal(t, initial.Epoch+1, result.Epoch)
	assert.Equal(t, "/admindashboard", history.Location())
}

func TestPopStateRecomputesWithoutPush(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.Anonymous())

	history := browser.NewMemoryHistory("/")
	navigatorPID, _ := spawnNavigator(f, history, browser.NewMemoryStorage())
	f.ask(t, navigatorPID, &InitialLoadMsg{})
	f.ask(t, navigatorPID, &NavigateMsg{Target: models.PageCategories})

	depth := history.Depth()
	result := f.ask(t, navigatorPID, &PopStateMsg{Path: "/"}).(*NavigationResult)
	assert.Equal(t, models.PageHome, result.Page)
	// Back/forward replaces the current entry, it never grows the stack
	assert.Equal(t, depth, history.Depth())
}

func TestPopStateDisallowedPathLandsOnError(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.Anonymous())

	navigatorPID, _ := spawnNavigator(f, browser.NewMemoryHistory("/"), browser.NewMemoryStorage())
	f.ask(t, navigatorPID, &InitialLoadMsg{})

	result := f.ask(t, navigatorPID, &PopStateMsg{Path: "/admindashboard"}).(*NavigationResult)
	assert.Equal(t, models.PageError, result.Page)
}

func TestRefreshAuthReplacesSnapshot(t *testing.T) {
	f := newFixture(t)
	auth := models.Anonymous()
	f.mux.HandleFunc("/auth/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(auth)
	})

	navigatorPID, _ := spawnNavigator(f, browser.NewMemoryHistory("/"), browser.NewMemoryStorage())
	initial := f.ask(t, navigatorPID, &InitialLoadMsg{}).(*NavigationResult)
	assert.False(t, initial.Auth.Authenticated)

	// The user logs in; the next refresh replaces the snapshot wholesale
	auth = models.AuthContext{Authenticated: true, Privilege: models.TierUser, UserID: uuid.New()}
	refreshed := f.ask(t, navigatorPID, &RefreshAuthMsg{}).(*NavigationResult)
	assert.True(t, refreshed.Auth.Authenticated)
	assert.Equal(t, models.TierUser, refreshed.Auth.Privilege)
}

func TestActivationPersistsPage(t *testing.T) {
	f := newFixture(t)
	serveAuth(f, models.Anonymous())

	storage := browser.NewMemoryStorage()
	navigatorPID, _ := spawnNavigator(f, browser.NewMemoryHistory("/"), storage)
	f.ask(t, navigatorPID, &InitialLoadMsg{})
	f.ask(t, navigatorPID, &NavigateMsg{Target: models.PageCategories})

	page, ok := storage.LoadCurrentPage()
	assert.True(t, ok)
	assert.Equal(t, string(models.PageCategories), page)
}
