package router

import (
	"net/http"

	"github.com/mkazantsev/authgate/internal/api/http/handler"
	"github.com/mkazantsev/authgate/internal/api/http/middleware"
	"github.com/mkazantsev/authgate/internal/logger"
	"github.com/mkazantsev/authgate/internal/model"
	"github.com/mkazantsev/authgate/internal/service"
)

// Router wires HTTP handlers and middleware to route patterns. Routes under
// /public/ are open, routes under /auth/ sit behind the token gate.
type Router struct {
	authService     *service.Auth
	identityService *service.Identity
	tokenManager    model.TokenManager
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService *service.Auth,
	identityService *service.Identity,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		identityService: identityService,
		tokenManager:    tokenManager,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Register builds the route table and returns the root handler with request
// logging applied to every route.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.identityService, r.contextManager, r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /public/register", authHandler.Register)
	mux.HandleFunc("POST /public/login", authHandler.Login)
	mux.Handle("GET /auth/users", authenticate.Handle(http.HandlerFunc(userHandler.Profile)))

	return logging.Handle(mux)
}
