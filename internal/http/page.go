package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wasmdash/wasmdash-client/internal/constants"
	"github.com/wasmdash/wasmdash-client/internal/signer"
	"github.com/wasmdash/wasmdash-client/internal/upload"
)

type newCodePageData struct {
	BackendID     string
	ChainName     string
	AddressPrefix string
	UserAddress   string
	ContractsURL  string

	State  upload.Snapshot
	Accept string

	Result  *signer.UploadResult
	TxURL   string
	TxLimit int
	Error   string

	FormError      string
	RefreshSeconds int
}

func (s *Server) pageData() newCodePageData {
	snap := s.workflow.Snapshot()

	d := newCodePageData{
		BackendID:     s.backend.ID,
		AddressPrefix: s.backend.AddressPrefix,
		UserAddress:   s.session.UserAddress(),
		ContractsURL:  s.backend.ContractsURL,
		State:         snap,
		Accept:        constants.WasmFileExt,
		TxLimit:       constants.TxLinkMaxLength,
		Error:         snap.Outcome.Error(),
	}
	if s.backend.WalletChainInfo != nil {
		d.ChainName = s.backend.WalletChainInfo.ChainName
	}
	if res, ok := snap.Outcome.Result(); ok {
		d.Result = &res
		d.TxURL = explorerTxURL(s.backend.ExplorerTxTemplate(), res.TransactionHash)
	}
	if snap.InFlight {
		d.RefreshSeconds = inFlightRefreshSeconds
	}
	return d
}

func (s *Server) renderPage(c *gin.Context, status int, formError string) {
	d := s.pageData()
	d.FormError = formError
	c.HTML(status, "new_code.html", d)
}

func (s *Server) NewCodePage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "")
}

func (s *Server) SelectFileForm(c *gin.Context) {
	f, err := readWasmFile(c)
	if err != nil {
		s.renderPage(c, fileErrorStatus(err), err.Error())
		return
	}
	s.workflow.SelectFile(f)
	seeOther(c)
}

func (s *Server) SetMemoForm(c *gin.Context) {
	s.workflow.SetMemo(c.PostForm(formFieldMemo))
	seeOther(c)
}

// UploadForm starts the upload and returns right away so the page can
// show the disabled control while the call is outstanding.
func (s *Server) UploadForm(c *gin.Context) {
	if memo, ok := c.GetPostForm(formFieldMemo); ok {
		s.workflow.SetMemo(memo)
	}
	logIfSkipped(c, s.workflow.Begin(s.ctx))
	seeOther(c)
}

func (s *Server) ConnectForm(c *gin.Context) {
	if err := s.session.Connect(c.PostForm(formFieldAddress)); err != nil {
		s.renderPage(c, http.StatusBadRequest, err.Error())
		return
	}
	seeOther(c)
}

func (s *Server) DisconnectForm(c *gin.Context) {
	s.session.Disconnect()
	seeOther(c)
}
