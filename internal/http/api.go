package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wasmdash/wasmdash-client/internal/backend"
	"github.com/wasmdash/wasmdash-client/internal/upload"
)

type errorResponse struct {
	Error string `json:"error"`
}

type backendResponse struct {
	ID       string            `json:"id"`
	Settings *backend.Settings `json:"settings"`
	Known    []string          `json:"known"`
}

type sessionRequest struct {
	Address string `json:"address"`
}

type sessionResponse struct {
	Address       string `json:"address,omitempty"`
	AddressPrefix string `json:"addressPrefix"`
	HasSigner     bool   `json:"hasSigner"`
}

type memoRequest struct {
	Memo string `json:"memo"`
}

type submitResponse struct {
	Submitted bool            `json:"submitted"`
	State     upload.Snapshot `json:"state"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Backend(c *gin.Context) {
	c.JSON(http.StatusOK, backendResponse{
		ID:       s.backend.ID,
		Settings: s.backend,
		Known:    backend.Known(),
	})
}

func (s *Server) sessionState() sessionResponse {
	return sessionResponse{
		Address:       s.session.UserAddress(),
		AddressPrefix: s.session.AddressPrefix(),
		HasSigner:     s.session.SigningClient() != nil,
	}
}

func (s *Server) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, s.sessionState())
}

func (s *Server) Connect(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: HTTPErrorInvalidJSONText})
		return
	}
	if err := s.session.Connect(req.Address); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.sessionState())
}

func (s *Server) Disconnect(c *gin.Context) {
	s.session.Disconnect()
	c.JSON(http.StatusOK, s.sessionState())
}

func (s *Server) UploadState(c *gin.Context) {
	c.JSON(http.StatusOK, s.workflow.Snapshot())
}

func (s *Server) SelectFile(c *gin.Context) {
	f, err := readWasmFile(c)
	if err != nil {
		c.JSON(fileErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}
	s.workflow.SelectFile(f)
	c.JSON(http.StatusOK, s.workflow.Snapshot())
}

func (s *Server) SetMemo(c *gin.Context) {
	var req memoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: HTTPErrorInvalidJSONText})
		return
	}
	s.workflow.SetMemo(req.Memo)
	c.JSON(http.StatusOK, s.workflow.Snapshot())
}

// Submit blocks until the upload settles. Unmet preconditions are not an
// error: the response reports submitted=false.
func (s *Server) Submit(c *gin.Context) {
	submitted := s.workflow.Submit(s.ctx)
	logIfSkipped(c, submitted)
	c.JSON(http.StatusOK, submitResponse{
		Submitted: submitted,
		State:     s.workflow.Snapshot(),
	})
}
