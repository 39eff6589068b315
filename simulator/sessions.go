package simulator

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"gator-swamp-client/internal/browser"
	"gator-swamp-client/internal/controller"
	"gator-swamp-client/internal/models"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"
)

// session is one simulated console user: its own actor set, history and
// a pool of content it has created so far.
type session struct {
	id          int
	config      SimConfig
	stats       *SimulationStats
	root        *actor.RootContext
	controllers *controller.Controllers
	history     *browser.MemoryHistory
	rng         *rand.Rand

	auth        models.AuthContext
	knownPosts  []uuid.UUID
	lastContent string
}

// navigablePages is the pool a session picks navigation targets from.
// Deliberately includes pages most tiers cannot reach, so disallowed
// transitions get exercised too.
var navigablePages = []models.Page{
	models.PageHome, models.PageCategories, models.PageCreatepost,
	models.PageProfile, models.PageActivity, models.PageAdminDashboard,
	models.PageLiked, models.PageDisliked,
}

func (s *session) start() error {
	future := s.root.RequestFuture(s.controllers.GetNavigator(), &controller.InitialLoadMsg{}, s.config.RequestTimeout)
	result, err := future.Result()
	if err != nil {
		return err
	}
	nav, ok := result.(*controller.NavigationResult)
	if !ok {
		return fmt.Errorf("unexpected initial load result %T", result)
	}
	s.auth = nav.Auth

	if s.auth.Authenticated {
		s.root.Send(s.controllers.GetBadge(), &controller.StartPollingMsg{})
	}
	return nil
}

func (s *session) run(ctx context.Context) {
	ticker := time.NewTicker(s.config.ActionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.act()
		case path := <-s.history.PopEvents():
			s.root.Send(s.controllers.GetNavigator(), &controller.PopStateMsg{Path: path})
		}
	}
}

// act performs one randomized user action.
func (s *session) act() {
	roll := s.rng.Float64()
	switch {
	case roll < s.config.PostFrequency:
		s.submitPost()
	case roll < s.config.PostFrequency+s.config.CommentFrequency:
		s.submitComment()
	case roll < s.config.PostFrequency+s.config.CommentFrequency+s.config.VoteFrequency:
		s.vote()
	case roll < s.config.PostFrequency+s.config.CommentFrequency+s.config.VoteFrequency+s.config.BackNavRate:
		s.history.Back()
	default:
		s.navigate()
	}
}

func (s *session) navigate() {
	target := navigablePages[s.rng.Intn(len(navigablePages))]
	future := s.root.RequestFuture(s.controllers.GetNavigator(), &controller.NavigateMsg{Target: target}, s.config.RequestTimeout)
	result, err := future.Result()
	if err != nil {
		s.stats.record(&s.stats.Errors)
		return
	}

	nav, ok := result.(*controller.NavigationResult)
	if !ok {
		s.stats.record(&s.stats.Errors)
		return
	}
	if nav.Page != target {
		s.stats.record(&s.stats.BlockedNavigations)
		return
	}
	s.stats.record(&s.stats.Navigations)
}

func (s *session) submitPost() {
	content := fmt.Sprintf("Session %d content %d", s.id, s.rng.Int())
	if s.lastContent != "" && s.rng.Float64() < s.config.RepostPercentage {
		// Deliberate repost to exercise the duplicate window
		content = s.lastContent
	}
	s.lastContent = content

	future := s.root.RequestFuture(s.controllers.GetSubmitGuard(), &controller.SubmitPostMsg{
		Title:      fmt.Sprintf("Post by session %d", s.id),
		Content:    content,
		Categories: []string{"Technology"},
	}, s.config.RequestTimeout)

	result, err := future.Result()
	if err != nil {
		s.stats.record(&s.stats.Errors)
		return
	}
	if post, ok := result.(models.Post); ok {
		s.knownPosts = append(s.knownPosts, post.ID)
		s.stats.recordOutcome(nil, &s.stats.Posts)
		return
	}
	if submitErr, ok := result.(error); ok {
		s.stats.recordOutcome(submitErr, &s.stats.Posts)
		return
	}
	log.Printf("Session %d: unexpected post result %T", s.id, result)
	s.stats.record(&s.stats.Errors)
}

func (s *session) submitComment() {
	if len(s.knownPosts) == 0 {
		return
	}
	postID := s.knownPosts[s.rng.Intn(len(s.knownPosts))]

	future := s.root.RequestFuture(s.controllers.GetSubmitGuard(), &controller.SubmitCommentMsg{
		PostID:  postID,
		Content: fmt.Sprintf("Comment from session %d", s.id),
	}, s.config.RequestTimeout)

	result, err := future.Result()
	if err != nil {
		s.stats.record(&s.stats.Errors)
		return
	}
	if _, ok := result.(models.Comment); ok {
		s.stats.recordOutcome(nil, &s.stats.Comments)
		return
	}
	if submitErr, ok := result.(error); ok {
		s.stats.recordOutcome(submitErr, &s.stats.Comments)
	}
}

func (s *session) vote() {
	if len(s.knownPosts) == 0 {
		return
	}
	postID := s.knownPosts[s.rng.Intn(len(s.knownPosts))]

	future := s.root.RequestFuture(s.controllers.GetSubmitGuard(), &controller.VotePostMsg{
		PostID:   postID,
		IsUpvote: s.rng.Float64() < 0.7,
	}, s.config.RequestTimeout)

	result, err := future.Result()
	if err != nil {
		s.stats.record(&s.stats.Errors)
		return
	}
	if _, ok := result.(models.VoteCounts); ok {
		s.stats.recordOutcome(nil, &s.stats.Votes)
		return
	}
	if voteErr, ok := result.(error); ok {
		s.stats.recordOutcome(voteErr, &s.stats.Votes)
	}
}
