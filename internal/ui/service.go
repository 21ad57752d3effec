package ui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/quantumauth-io/quantum-go-utils/log"
)

type Config struct {
	Addr    string
	Handler http.Handler
}

// Service owns the listener the New Code page is served on.
type Service struct {
	cfg Config
	srv *http.Server
	ln  net.Listener
}

func NewUi(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:5173"
	}
	return &Service{cfg: cfg}
}

// Start listens and serves in the background.
func (s *Service) Start() error {
	if s.cfg.Handler == nil {
		return errors.New("ui: nil handler")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	s.srv = &http.Server{
		Handler:           s.cfg.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := s.srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Service) URL() string {
	if s.ln == nil {
		return ""
	}
	return fmt.Sprintf("http://%s", s.ln.Addr().String())
}

func (s *Service) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
