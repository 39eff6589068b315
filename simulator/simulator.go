// Package simulator drives many simulated console sessions against a
// running forum engine. Each session gets its own actor set and client,
// so the navigation machine, the submit guard and the badge poller are
// exercised the way real concurrent users would exercise them.
package simulator

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/browser"
	"gator-swamp-client/internal/config"
	"gator-swamp-client/internal/controller"
	"gator-swamp-client/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
)

type SimConfig struct {
	NumSessions      int
	SimulationTime   time.Duration
	ActionInterval   time.Duration
	PostFrequency    float64 // chance per action tick
	CommentFrequency float64
	VoteFrequency    float64
	RepostPercentage float64 // chance a post reuses the previous content
	BackNavRate      float64 // chance an action is a history back/forward
	EngineURL        string
	RequestTimeout   time.Duration
}

type SimulationStats struct {
	mu sync.RWMutex

	StartTime            time.Time
	Navigations          int64
	BlockedNavigations   int64
	Posts                int64
	Comments             int64
	Votes                int64
	DuplicateRejections  int64
	InFlightRejections   int64
	ValidationRejections int64
	AuthRejections       int64
	Errors               int64
}

func (s *SimulationStats) record(counter *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*counter++
}

// recordOutcome classifies an action result into the stats counters.
func (s *SimulationStats) recordOutcome(err error, success *int64) {
	if err == nil {
		s.record(success)
		return
	}
	switch {
	case utils.IsErrorCode(err, utils.ErrDuplicateSubmission):
		s.record(&s.DuplicateRejections)
	case utils.IsErrorCode(err, utils.ErrSubmissionInFlight):
		s.record(&s.InFlightRejections)
	case utils.IsErrorCode(err, utils.ErrValidation):
		s.record(&s.ValidationRejections)
	case utils.IsErrorCode(err, utils.ErrAuthRequired), utils.IsErrorCode(err, utils.ErrPermissionDenied):
		s.record(&s.AuthRejections)
	default:
		s.record(&s.Errors)
	}
}

type Simulator struct {
	config   SimConfig
	stats    *SimulationStats
	system   *actor.ActorSystem
	sessions []*session
	metrics  *utils.MetricsCollector
}

func NewSimulator(cfg SimConfig) *Simulator {
	return &Simulator{
		config: cfg,
		stats: &SimulationStats{
			StartTime: time.Now(),
		},
		system:  actor.NewActorSystem(),
		metrics: utils.NewMetricsCollector(),
	}
}

func (s *Simulator) Run(ctx context.Context) error {
	log.Printf("Starting session simulation...")

	if err := s.initialize(); err != nil {
		return fmt.Errorf("initialization failed: %v", err)
	}

	var wg sync.WaitGroup
	for _, sess := range s.sessions {
		wg.Add(1)
		go func(sess *session) {
			defer wg.Done()
			sess.run(ctx)
		}(sess)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.reportProgress(ctx)
	}()

	wg.Wait()
	s.shutdown()
	return nil
}

// initialize builds one actor set per session and performs the initial
// load for each, the same startup sequence the console runs.
func (s *Simulator) initialize() error {
	log.Printf("Creating %d sessions...", s.config.NumSessions)

	cfg := config.DefaultConfig()
	cfg.EngineURL = s.config.EngineURL
	cfg.RequestTimeout = s.config.RequestTimeout

	for i := 0; i < s.config.NumSessions; i++ {
		client := api.NewClient(cfg.EngineURL, cfg.RequestTimeout, s.metrics)
		history := browser.NewMemoryHistory("/")
		confirm := controller.ConfirmFunc(func(string) bool { return true })
		controllers := controller.NewControllers(s.system, cfg, client, history, browser.NewMemoryStorage(), confirm)

		sess := &session{
			id:          i,
			config:      s.config,
			stats:       s.stats,
			root:        s.system.Root,
			controllers: controllers,
			history:     history,
			rng:         rand.New(rand.NewSource(time.Now().UnixNano() + int64(i))),
		}
		if err := sess.start(); err != nil {
			return fmt.Errorf("session %d failed to start: %v", i, err)
		}
		s.sessions = append(s.sessions, sess)
	}

	log.Printf("All sessions initialized")
	return nil
}

func (s *Simulator) reportProgress(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.stats.mu.RLock()
			log.Printf("Progress: %d navigations (%d blocked), %d posts, %d comments, %d votes, %d dup rejections",
				s.stats.Navigations, s.stats.BlockedNavigations,
				s.stats.Posts, s.stats.Comments, s.stats.Votes,
				s.stats.DuplicateRejections)
			s.stats.mu.RUnlock()
		}
	}
}

func (s *Simulator) shutdown() {
	for _, sess := range s.sessions {
		sess.controllers.Shutdown(s.system)
	}
	s.system.Shutdown()
}

// GetStats returns a copy of the aggregate counters.
func (s *Simulator) GetStats() SimulationStats {
	s.stats.mu.RLock()
	defer s.stats.mu.RUnlock()
	return SimulationStats{
		StartTime:            s.stats.StartTime,
		Navigations:          s.stats.Navigations,
		BlockedNavigations:   s.stats.BlockedNavigations,
		Posts:                s.stats.Posts,
		Comments:             s.stats.Comments,
		Votes:                s.stats.Votes,
		DuplicateRejections:  s.stats.DuplicateRejections,
		InFlightRejections:   s.stats.InFlightRejections,
		ValidationRejections: s.stats.ValidationRejections,
		AuthRejections:       s.stats.AuthRejections,
		Errors:               s.stats.Errors,
	}
}

// RequestCount exposes how many network calls the sessions made in
// total.
func (s *Simulator) RequestCount() uint64 {
	total, _ := s.metrics.RequestCounts()
	return total
}
