package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ricirt/webservice/internal/config"
)

// Server runs a fixed number of serve workers over one shared listener.
// Every worker accepts connections from the same socket; net/http then
// handles each connection on its own goroutine.
type Server struct {
	srv             *http.Server
	workers         int
	shutdownTimeout time.Duration
	logger          *zap.Logger
}

func New(cfg *config.Config, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			ErrorLog:     zap.NewStdLog(logger.Named("http")),
		},
		workers:         cfg.Workers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// Run binds the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve starts the workers on ln and blocks until they have all returned.
// Cancelling ctx shuts the server down; in-flight requests get up to the
// shutdown timeout to finish. A clean stop returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	shared := &onceCloseListener{Listener: ln}
	g, gctx := errgroup.WithContext(ctx)

	s.logger.Info("server starting",
		zap.String("addr", ln.Addr().String()),
		zap.Int("workers", s.workers),
	)

	for i := 0; i < s.workers; i++ {
		i := i
		wlog := s.logger.With(zap.Int("worker_id", i))
		g.Go(func() error {
			wlog.Debug("worker started")
			defer wlog.Debug("worker stopped")
			if err := s.srv.Serve(shared); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info("server stopped cleanly")
	return nil
}

// onceCloseListener lets every worker's Serve close the shared listener
// without the later calls reporting "use of closed network connection".
type onceCloseListener struct {
	net.Listener
	once     sync.Once
	closeErr error
}

func (l *onceCloseListener) Close() error {
	l.once.Do(func() { l.closeErr = l.Listener.Close() })
	return l.closeErr
}
