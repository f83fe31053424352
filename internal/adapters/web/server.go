package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gather/internal/config"
	"gather/internal/ports/input"
	"gather/internal/ports/output"
)

const sessionTTL = 7 * 24 * time.Hour

// Server is the HTTP adapter.
type Server struct {
	echo *echo.Echo
	addr string
}

// New wires the use cases into an echo instance with all routes registered.
func New(
	cfg *config.Config,
	events input.EventUseCase,
	participants input.ParticipantUseCase,
	users input.UserUseCase,
	translator output.T,
) *Server {
	sessions := NewSessionManager(cfg.SessionSecret, sessionTTL)
	imageDir := filepath.Join(cfg.PublicDir, "img", "events")
	h := NewHandler(events, participants, users, translator, sessions, imageDir)

	e := echo.New()
	e.Use(recoverPanics, requestLogger, h.resolveSession)

	e.GET("/", h.Index)
	e.GET("/events/create", h.CreateForm, h.requireAuth)
	e.POST("/events", h.Store, h.requireAuth)
	e.GET("/events/:id", h.Show)
	e.GET("/events/:id/edit", h.EditForm, h.requireAuth)
	e.POST("/events/:id", h.Update, h.requireAuth)
	e.POST("/events/:id/delete", h.Destroy, h.requireAuth)
	e.POST("/events/:id/join", h.Join, h.requireAuth)
	e.POST("/events/:id/leave", h.Leave, h.requireAuth)
	e.GET("/dashboard", h.Dashboard, h.requireAuth)

	e.GET("/register", h.RegisterForm)
	e.POST("/register", h.Register)
	e.GET("/login", h.LoginForm)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout, h.requireAuth)

	e.GET("/img/events/:name", h.EventImage)
	e.GET("/metrics", func(c echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	return &Server{echo: e, addr: cfg.Addr}
}

// Start serves until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Printf("🌐 Listening on %s. Press CTRL+C to quit.", s.addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
