// Package httpserver manages server creation and api routing.
package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/mem-bank/internal/accountdelivery"
	"github.com/go-petr/mem-bank/internal/accountrepo"
	"github.com/go-petr/mem-bank/internal/accountservice"
	"github.com/go-petr/mem-bank/internal/customerrepo"
	"github.com/go-petr/mem-bank/internal/domain"
	"github.com/go-petr/mem-bank/internal/memdb"
	"github.com/go-petr/mem-bank/internal/middleware"
	"github.com/go-petr/mem-bank/internal/transferdelivery"
	"github.com/go-petr/mem-bank/internal/transferrepo"
	"github.com/go-petr/mem-bank/internal/transferservice"
	"github.com/go-petr/mem-bank/pkg/configpkg"
	"github.com/go-petr/mem-bank/pkg/errorspkg"
	"github.com/go-petr/mem-bank/pkg/moneypkg"
	"github.com/go-petr/mem-bank/pkg/web"
)

// Server holds in-memory state, handlers router and configuration.
type Server struct {
	DB     *memdb.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
//
// The server owns db for its whole lifetime. customers seeds the customer directory.
func New(db *memdb.DB, customers []domain.Customer, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoMem(db)
	transferRepo := transferrepo.NewRepoMem(db)
	customerRepo := customerrepo.NewRepoMem(customers)

	accountService := accountservice.New(accountRepo, customerRepo)
	transferService := transferservice.New(transferRepo)

	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)

	if err := web.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("cannot register validators: %w", err)
	}

	moneypkg.UseJSONNumbers()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(config.CORSAllowedOrigins))

	engine.POST("/accounts/", accountHandler.Create)
	engine.GET("/accounts/", accountHandler.List)
	engine.GET("/accounts/:account_id/balance", accountHandler.GetBalance)
	engine.GET("/accounts/:account_id/transfers", transferHandler.ListByAccount)

	engine.POST("/transfers/", transferHandler.Create)

	engine.NoRoute(func(gctx *gin.Context) {
		gctx.JSON(http.StatusNotFound, web.Error(errorspkg.ErrRouteNotFound))
	})
	engine.NoMethod(func(gctx *gin.Context) {
		gctx.JSON(http.StatusMethodNotAllowed, web.Error(errorspkg.ErrMethodNotAllowed))
	})

	server := &Server{
		DB:     db,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
