package router

import (
	"net/http"

	"github.com/dtroode/noticeboard-server/internal/api/http/handler"
	"github.com/dtroode/noticeboard-server/internal/api/http/middleware"
	"github.com/dtroode/noticeboard-server/internal/logger"
	"github.com/dtroode/noticeboard-server/internal/model"
	"github.com/dtroode/noticeboard-server/internal/service"
)

// Router wires HTTP handlers and middleware for the notice board API.
type Router struct {
	authService    *service.Auth
	noticeService  *service.Notice
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	noticeService *service.Notice,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		noticeService:  noticeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the HTTP handler tree. Registration and login are open;
// every notice route goes through the authentication middleware first.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	noticeHandler := handler.NewNotice(r.noticeService, r.contextManager, r.logger)

	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)

	mux.Handle("POST /notices", authenticate.Handle(http.HandlerFunc(noticeHandler.Create)))
	mux.Handle("GET /notices", authenticate.Handle(http.HandlerFunc(noticeHandler.List)))
	mux.Handle("PUT /notices/{id}", authenticate.Handle(http.HandlerFunc(noticeHandler.Update)))
	mux.Handle("DELETE /notices/{id}", authenticate.Handle(http.HandlerFunc(noticeHandler.Delete)))

	return logging.Handle(mux)
}
