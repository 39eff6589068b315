package controller

import (
	"context"
	"log"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/models"
	"gator-swamp-client/internal/render"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"
)

// defaultFormCategories backs the create-post form when the category
// fetch fails, so the form never renders without options.
var defaultFormCategories = []models.Category{
	{Title: "Technology"}, {Title: "Education"}, {Title: "Entertainment"},
	{Title: "Travel"}, {Title: "Cars"}, {Title: "Sports"},
	{Title: "Lifestyle"}, {Title: "Science"}, {Title: "Business"},
}

// PageLoaderActor is the data synchronization orchestrator. For each
// page activation it fans out the section fetches that page needs and
// folds the completions into a tri-state snapshot. Fetches run
// concurrently with no ordering between them; completions from a
// superseded activation are discarded by epoch.
type PageLoaderActor struct {
	client *api.Client

	snapshot *render.Snapshot
	epoch    uint64
	page     models.Page
	auth     models.AuthContext

	// postID of the currently expanded comment section, if any
	commentsFor uuid.UUID

	// current dashboard user filter, empty for the full list
	userSearch string
}

func NewPageLoaderActor(client *api.Client) actor.Actor {
	return &PageLoaderActor{
		client:   client,
		snapshot: render.NewSnapshot(models.PageHome, models.Anonymous(), 0),
	}
}

func (a *PageLoaderActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *LoadPageMsg:
		a.epoch = msg.Epoch
		a.page = msg.Page
		a.auth = msg.Auth
		a.commentsFor = uuid.Nil
		a.userSearch = ""
		a.snapshot = render.NewSnapshot(msg.Page, msg.Auth, msg.Epoch)

		for _, section := range sectionsForPage(msg.Page) {
			a.startFetch(ctx, section)
		}

	case *LoadCommentsMsg:
		a.commentsFor = msg.PostID
		a.startFetch(ctx, render.SectionComments)

	case *SearchUsersMsg:
		a.userSearch = msg.Term
		if a.sectionOnPage(render.SectionUsers) {
			a.startFetch(ctx, render.SectionUsers)
		}

	case *ResyncMsg:
		// Re-run only the named fetches; sections the mutation could not
		// have touched keep their data.
		for _, section := range msg.Sections {
			if a.sectionOnPage(section) {
				a.startFetch(ctx, section)
			}
		}

	case *sectionResultMsg:
		if msg.Epoch != a.epoch {
			// A previous page's fetch resolved after navigation moved
			// on. Drop it: two activations must never race for the same
			// section.
			log.Printf("Loader: discarding stale %s result (epoch %d, current %d)",
				msg.Section, msg.Epoch, a.epoch)
			return
		}
		if msg.Err != nil {
			if msg.Section == render.SectionFormCategories {
				// The create-post form falls back to the built-in set
				a.snapshot.Sections[msg.Section] = render.Success(defaultFormCategories)
				return
			}
			log.Printf("Loader: %s failed: %v", msg.Section, msg.Err)
			a.snapshot.Sections[msg.Section] = render.Failed(msg.Err)
			return
		}
		a.snapshot.Sections[msg.Section] = render.Success(msg.Data)

	case *GetSnapshotMsg:
		ctx.Respond(a.copySnapshot())
	}
}

// sectionsForPage maps a page to the sections it loads on activation.
func sectionsForPage(page models.Page) []render.SectionID {
	switch page {
	case models.PageHome:
		return []render.SectionID{render.SectionPosts}
	case models.PageCategories:
		return []render.SectionID{render.SectionCategories, render.SectionPosts}
	case models.PageCreatepost:
		return []render.SectionID{render.SectionFormCategories}
	case models.PageProfile, models.PageCreated, models.PageLiked, models.PageDisliked:
		return []render.SectionID{render.SectionActivity}
	case models.PageActivity:
		return []render.SectionID{render.SectionActivity, render.SectionNotifications}
	case models.PageAdminDashboard:
		// Dashboard fan-out: five independent fetches, one failure never
		// blanks the others
		return []render.SectionID{
			render.SectionStats,
			render.SectionUsers,
			render.SectionCategories,
			render.SectionModRequests,
			render.SectionReports,
		}
	default:
		return nil
	}
}

func (a *PageLoaderActor) sectionOnPage(section render.SectionID) bool {
	if section == render.SectionComments {
		return a.commentsFor != uuid.Nil
	}
	for _, s := range sectionsForPage(a.page) {
		if s == section {
			return true
		}
	}
	return false
}

// startFetch marks the section loading and issues its fetch off the
// actor goroutine. The completion comes back through the mailbox tagged
// with the epoch it belongs to.
func (a *PageLoaderActor) startFetch(ctx actor.Context, section render.SectionID) {
	a.snapshot.Sections[section] = render.Loading()

	epoch := a.epoch
	self := ctx.Self()
	root := ctx.ActorSystem().Root
	client := a.client
	userID := a.auth.UserID
	postID := a.commentsFor
	search := a.userSearch

	go func() {
		data, err := fetchSection(client, section, userID, postID, search)
		root.Send(self, &sectionResultMsg{
			Epoch:   epoch,
			Section: section,
			Data:    data,
			Err:     err,
		})
	}()
}

func fetchSection(client *api.Client, section render.SectionID, userID, postID uuid.UUID, search string) (interface{}, error) {
	bg := context.Background()
	switch section {
	case render.SectionPosts:
		return client.ListPosts(bg)
	case render.SectionCategories, render.SectionFormCategories:
		return client.ListCategories(bg)
	case render.SectionStats:
		return client.GetAggregateStats(bg)
	case render.SectionUsers:
		return client.ListUsers(bg, search)
	case render.SectionModRequests:
		return client.ListModerationRequests(bg)
	case render.SectionReports:
		return client.ListPostReports(bg)
	case render.SectionNotifications:
		return client.ListNotifications(bg)
	case render.SectionActivity:
		return client.GetProfileActivity(bg, userID)
	case render.SectionComments:
		return client.ListComments(bg, postID)
	default:
		return nil, nil
	}
}

// copySnapshot hands out a snapshot the caller can read without racing
// the actor's own updates.
func (a *PageLoaderActor) copySnapshot() *render.Snapshot {
	out := render.NewSnapshot(a.snapshot.Page, a.snapshot.Auth, a.snapshot.Epoch)
	for id, section := range a.snapshot.Sections {
		out.Sections[id] = section
	}
	return out
}
