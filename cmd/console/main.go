package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/browser"
	"gator-swamp-client/internal/config"
	"gator-swamp-client/internal/controller"
	"gator-swamp-client/internal/models"
	"gator-swamp-client/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
)

// Console holds all dependencies
type Console struct {
	system      *actor.ActorSystem
	context     *actor.RootContext
	controllers *controller.Controllers
	metrics     *utils.MetricsCollector
	cfg         *config.Config
}

func main() {
	// Initialize components
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	metrics := utils.NewMetricsCollector()

	// Initialize actor system
	system := actor.NewActorSystem()

	client := api.NewClient(cfg.EngineURL, cfg.RequestTimeout, metrics)
	if cfg.SessionToken != "" {
		client.Session().SetToken(cfg.SessionToken)
	}

	// Restore the last active page so the console reopens where the
	// previous session left off
	storage := browser.NewFileStorage(cfg.StateFile)
	initialPath := models.PageHome.Path()
	if page, ok := storage.LoadCurrentPage(); ok {
		initialPath = models.Page(page).Path()
	}
	history := browser.NewMemoryHistory(initialPath)

	confirm := controller.ConfirmFunc(promptConfirm)
	controllers := controller.NewControllers(system, cfg, client, history, storage, confirm)

	console := &Console{
		system:      system,
		context:     system.Root,
		controllers: controllers,
		metrics:     metrics,
		cfg:         cfg,
	}

	// Resolve auth and activate the initial page before anything else
	future := console.context.RequestFuture(controllers.GetNavigator(), &controller.InitialLoadMsg{}, cfg.RequestTimeout)
	result, err := future.Result()
	if err != nil {
		log.Fatalf("Initial load failed: %v", err)
	}
	nav := result.(*controller.NavigationResult)
	log.Printf("Console started on page %s (tier %s)", nav.Page, nav.Auth.Privilege)

	if nav.Auth.Authenticated {
		console.context.Send(controllers.GetBadge(), &controller.StartPollingMsg{})
	}

	// Forward back/forward history events to the navigator
	go func() {
		for path := range history.PopEvents() {
			console.context.Send(controllers.GetNavigator(), &controller.PopStateMsg{Path: path})
		}
	}()

	// Wait for shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Printf("Shutting down (uptime %s)", console.metrics.Uptime().Round(time.Second))
	controllers.Shutdown(system)
	system.Shutdown()
}

// promptConfirm asks the operator to confirm a destructive action.
// Anything other than an explicit yes declines.
func promptConfirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
