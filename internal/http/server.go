package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/wasmdash/wasmdash-client/internal/backend"
	"github.com/wasmdash/wasmdash-client/internal/session"
	"github.com/wasmdash/wasmdash-client/internal/upload"
)

type Server struct {
	// Process context; uploads run under it so closing the browser tab
	// does not abort them.
	ctx context.Context

	backend  *backend.Settings
	session  *session.Session
	workflow *upload.Workflow

	allowedOrigins []string
	engine         *gin.Engine
}

type Options struct {
	Backend        *backend.Settings
	Session        *session.Session
	Workflow       *upload.Workflow
	AllowedOrigins []string
}

func NewServer(ctx context.Context, opts Options) (*Server, error) {
	if opts.Backend == nil || opts.Session == nil || opts.Workflow == nil {
		return nil, errors.New("http: backend, session and workflow are required")
	}

	s := &Server{
		ctx:            ctx,
		backend:        opts.Backend,
		session:        opts.Session,
		workflow:       opts.Workflow,
		allowedOrigins: opts.AllowedOrigins,
	}

	engine, err := NewRouter(s)
	if err != nil {
		return nil, err
	}
	s.engine = engine

	log.Info("http server ready",
		"backend", s.backend.ID,
		"signer", s.session.SigningClient() != nil,
	)
	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

var _ http.Handler = (*Server)(nil)

func logIfSkipped(c *gin.Context, started bool) {
	if !started {
		log.Info("upload skipped: preconditions unmet", "path", c.FullPath())
	}
}
