// Package restserver exposes the almanac engine over HTTP: ring
// snapshots, eclipse lookups, moon names, seasonal markers and the
// calendar event CRUD.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/skywheel/almanac/internal/astro"
	"github.com/skywheel/almanac/internal/eventstore"
	"github.com/skywheel/almanac/internal/log"
	"github.com/skywheel/almanac/pkg/config"
)

// Controller is the REST server controller.
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	cfg      *config.Config
	provider *astro.Provider
	store    *eventstore.Store
	Server   http.Server
	logger   *zap.SugaredLogger
	handlers *Handlers
}

// NewController creates a REST server controller bound to the
// configured listen address.
func NewController(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, store *eventstore.Store, logger *zap.SugaredLogger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rest server config: %w", err)
	}

	ctrl := &Controller{
		ctx:      ctx,
		wg:       wg,
		cfg:      cfg,
		provider: astro.NewProvider(),
		store:    store,
		logger:   logger,
	}
	ctrl.handlers = NewHandlers(ctrl)

	listenAddr := cfg.HTTP.ListenAddr
	if listenAddr == "" {
		logger.Info("http.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		listenAddr = "0.0.0.0"
	}

	ctrl.Server.Addr = fmt.Sprintf("%v:%v", listenAddr, cfg.HTTP.Port)
	ctrl.Server.Handler = ctrl.setupRouter()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// StartController starts serving and arranges a graceful shutdown when
// the controller context is cancelled.
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints.
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/snapshot", c.handlers.GetSnapshot).Methods(http.MethodGet)
	router.HandleFunc("/sun", c.handlers.GetSun).Methods(http.MethodGet)
	router.HandleFunc("/moon", c.handlers.GetMoon).Methods(http.MethodGet)
	router.HandleFunc("/annual", c.handlers.GetAnnual).Methods(http.MethodGet)

	router.HandleFunc("/seasons/{year:[0-9]+}", c.handlers.GetSeasons).Methods(http.MethodGet)
	router.HandleFunc("/eclipses/{year:[0-9]+}", c.handlers.GetEclipses).Methods(http.MethodGet)
	router.HandleFunc("/moonname/{month:[0-9]+}", c.handlers.GetMoonName).Methods(http.MethodGet)

	router.HandleFunc("/events", c.handlers.ListEvents).Methods(http.MethodGet)
	router.HandleFunc("/events", c.handlers.CreateEvent).Methods(http.MethodPost)
	router.HandleFunc("/events/{id}", c.handlers.GetEvent).Methods(http.MethodGet)
	router.HandleFunc("/events/{id}", c.handlers.UpdateEvent).Methods(http.MethodPut)
	router.HandleFunc("/events/{id}", c.handlers.DeleteEvent).Methods(http.MethodDelete)

	return router
}
