package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/mwantia/fabric/pkg/container"
	"github.com/mwantia/resorter/internal/api"
	config "github.com/mwantia/resorter/internal/config/server"
	"github.com/mwantia/resorter/internal/intake"
	"github.com/mwantia/resorter/internal/session"
	"github.com/mwantia/resorter/pkg/classify"
	"github.com/mwantia/resorter/pkg/db/store"
	"github.com/mwantia/resorter/pkg/extract"
	"github.com/mwantia/resorter/pkg/log"
	"github.com/mwantia/resorter/pkg/sorter"
)

type ResorterAgent struct {
	mutex sync.RWMutex
	wait  sync.WaitGroup

	cfg     *config.BaseServerConfig
	sc  *container.ServiceContainer
	log log.LoggerService

	store      store.CandidateStore
	pipeline   *intake.Pipeline
	controller *session.Controller
}

func NewAgent(cfg *config.BaseServerConfig) *ResorterAgent {
	return NewAgentWithLogger(cfg, log.NewLoggerService("resorter", cfg.Log))
}

func NewAgentWithLogger(cfg *config.BaseServerConfig, logger log.LoggerService) *ResorterAgent {
	return &ResorterAgent{
		cfg: cfg,
		sc:  container.NewServiceContainer(),
		log: logger,
	}
}

// Setup opens the store and wires the candidate session. An unreachable
// database is replaced by the in-memory store.
func (a *ResorterAgent) Setup(ctx context.Context) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.controller != nil {
		return nil
	}

	s, err := store.Open(ctx, a.cfg.Metadata, a.cfg.Log.SQL)
	if err != nil {
		a.log.Warn("Metadata store '%s' is unavailable, falling back to memory: %v", a.cfg.Metadata.Type, err)
		s = store.NewMemoryStore()
	}

	if err := a.setupServices(s); err != nil {
		s.Close()
		return err
	}

	a.store, err = a.resolveStore(ctx)
	if err != nil {
		return err
	}
	a.log.Info("Using '%s' metadata store", a.store.Kind())

	extractor := extract.NewExtractor(extract.WithReferenceYear(a.cfg.Extract.ReferenceYear))
	classifier := classify.New(a.cfg.Classify.Keywords, a.cfg.Classify.Threshold)

	a.pipeline = intake.NewPipeline(a.store, extractor, classifier, a.cfg.Intake.Dir, a.named(ctx, "intake"))
	a.controller = session.NewController(session.New(
		a.store,
		a.pipeline,
		sorter.New(a.cfg.Intake.SortedDir),
		a.named(ctx, "session"),
	))

	return nil
}

func (a *ResorterAgent) setupServices(s store.CandidateStore) error {
	errs := container.Errors{}

	a.log.Debug("Registering 'LoggerService'...")
	errs.Add(container.Register[log.LoggerServiceImpl](a.sc,
		container.With[log.LoggerService](),
		container.WithInstance(a.log)))

	a.log.Debug("Registering 'CandidateStore' (%s)...", s.Kind())
	switch impl := s.(type) {
	case *store.GormStore:
		errs.Add(container.Register[store.GormStore](a.sc,
			container.With[store.CandidateStore](),
			container.WithInstance(impl)))
	case *store.MemoryStore:
		errs.Add(container.Register[store.MemoryStore](a.sc,
			container.With[store.CandidateStore](),
			container.WithInstance(impl)))
	default:
		return fmt.Errorf("unsupported candidate store %T", s)
	}

	return errs.Errors()
}

func (a *ResorterAgent) resolveStore(ctx context.Context) (store.CandidateStore, error) {
	ok, resolved := a.sc.ResolveByType(ctx, reflect.TypeOf((*store.CandidateStore)(nil)).Elem())
	if !ok {
		return nil, fmt.Errorf("failed to resolve CandidateStore: no store registered")
	}

	s, ok := resolved.(store.CandidateStore)
	if !ok {
		return nil, fmt.Errorf("resolved store is not a CandidateStore")
	}
	return s, nil
}

// named resolves a component logger from the registered LoggerService
func (a *ResorterAgent) named(ctx context.Context, name string) log.LoggerService {
	logger, err := log.ResolveLogger(ctx, a.sc, name)
	if err != nil {
		a.log.Debug("Falling back to direct named logger for '%s': %v", name, err)
		return a.log.Named(name)
	}
	return logger
}

func (a *ResorterAgent) Store() store.CandidateStore {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.store
}

func (a *ResorterAgent) Pipeline() *intake.Pipeline {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.pipeline
}

func (a *ResorterAgent) Controller() *session.Controller {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.controller
}

// Close releases the service container and the store
func (a *ResorterAgent) Close(ctx context.Context) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if err := a.sc.Cleanup(ctx); err != nil {
		return fmt.Errorf("failed to complete service container cleanup: %w", err)
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			return fmt.Errorf("failed to close %s store: %w", a.store.Kind(), err)
		}
	}
	return nil
}

// Serve hydrates the session from the store and serves the HTTP API until interrupted
func (a *ResorterAgent) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := a.Setup(ctx); err != nil {
		return err
	}

	r := a.Controller().Dispatch(ctx, session.Refresh{})
	a.log.Info("Loaded %d candidates", len(r.Candidates))

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    a.cfg.HTTP.Address,
		Handler: api.NewRouter(a.Controller(), a.Store(), a.named(ctx, "api")),
	}

	a.wait.Add(1)
	go func() {
		defer a.wait.Done()

		a.log.Info("Serving HTTP API on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("HTTP server failed: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdown, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownDuration())
	defer cancelShutdown()

	if err := server.Shutdown(shutdown); err != nil {
		a.log.Warn("HTTP server shutdown incomplete: %v", err)
	}

	a.wait.Wait()
	return a.Close(shutdown)
}
