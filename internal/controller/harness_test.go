package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gator-swamp-client/internal/api"
	"gator-swamp-client/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
)

// fixture wires a fake engine, a real client and a real actor system so
// each test exercises the actors the way the console does.
type fixture struct {
	system  *actor.ActorSystem
	root    *actor.RootContext
	client  *api.Client
	metrics *utils.MetricsCollector
	mux     *http.ServeMux
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	metrics := utils.NewMetricsCollector()
	system := actor.NewActorSystem()

	return &fixture{
		system:  system,
		root:    system.Root,
		client:  api.NewClient(server.URL, 5*time.Second, metrics),
		metrics: metrics,
		mux:     mux,
	}
}

func (f *fixture) spawn(producer func() actor.Actor) *actor.PID {
	props := actor.PropsFromProducer(producer)
	return f.root.Spawn(props)
}

func (f *fixture) ask(t *testing.T, pid *actor.PID, msg interface{}) interface{} {
	t.Helper()
	future := f.root.RequestFuture(pid, msg, 5*time.Second)
	result, err := future.Result()
	if err != nil {
		t.Fatalf("Request to %v failed: %v", pid, err)
	}
	return result
}

// probe is an actor that records every message it receives, for
// asserting on side-channel sends like login redirects.
type probe struct {
	messages chan interface{}
}

func newProbe() *probe {
	return &probe{messages: make(chan interface{}, 16)}
}

func (p *probe) Receive(ctx actor.Context) {
	switch ctx.Message().(type) {
	case *actor.Started, *actor.Stopping, *actor.Stopped, *actor.Restarting:
		return
	}
	p.messages <- ctx.Message()
}

func (p *probe) expect(t *testing.T, timeout time.Duration) interface{} {
	t.Helper()
	select {
	case msg := <-p.messages:
		return msg
	case <-time.After(timeout):
		t.Fatal("Timed out waiting for message")
		return nil
	}
}

func (p *probe) expectNone(t *testing.T, wait time.Duration) {
	t.Helper()
	select {
	case msg := <-p.messages:
		t.Fatalf("Unexpected message %T", msg)
	case <-time.After(wait):
	}
}
