package app

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/voxellogic/circuitsim/circuit"
	"github.com/voxellogic/circuitsim/internal/config"
	"github.com/voxellogic/circuitsim/internal/logger"
	"github.com/voxellogic/circuitsim/internal/server"
	"github.com/voxellogic/circuitsim/internal/server/router"
)

type (
	ServerOptions struct {
		C       *config.Config
		Version string
	}

	appServer struct {
		logger  *logger.Logger
		router  *router.Router
		engine  *circuit.Engine
		mu      sync.Mutex
		version string
	}

	appServerOptions struct {
		logger  *logger.Logger
		router  *router.Router
		engine  *circuit.Engine
		version string
	}
)

// newAppServer creates a new appServer.
func newAppServer(options appServerOptions) *appServer {
	a := &appServer{
		logger:  options.logger,
		router:  options.router,
		engine:  options.engine,
		version: options.version,
	}
	a.router.SetRoutes(a.routes())
	return a
}

// Listen implements server.Server.
func (a *appServer) Listen(port int, localOnly bool) error {
	a.logger.Debug().Str("version", a.version).Msg("debug circuit simulation server")
	a.logger.Info().
		Int("port", port).
		Bool("localOnly", localOnly).
		Msg("Starting circuit simulation service")
	return a.router.Start(port, localOnly)
}

// Shutdown implements server.Server.
func (a *appServer) Shutdown(ctx context.Context) error {
	return a.router.Shutdown(ctx)
}

// NewServer builds the HTTP surface around a single in-process
// circuit.Engine. One engine per server process, matching the core's
// single-threaded ownership model: every handler holds appServer.mu for
// the duration of its engine access.
func NewServer(options ServerOptions) (server.Server, error) {
	l, r := server.NewLoggerAndRouter(server.EngineOptions{
		Debug: options.C.GetBool("debug"),
	})
	app := newAppServer(appServerOptions{
		logger:  l,
		router:  r,
		engine:  circuit.New(),
		version: options.Version,
	})

	return app, nil
}

func (a *appServer) getLoggerFromContext(c *gin.Context) (*logger.Logger, error) {
	if loggerInstance, ok := c.Get("logger"); ok {
		if loggerInstance, ok := loggerInstance.(*logger.Logger); ok {
			return loggerInstance, nil
		}
	}
	err := errors.New("logger not found in context")
	a.logger.Error().Err(err).Send()
	c.String(http.StatusInternalServerError, internalServerErrorMsg)
	return nil, err
}
