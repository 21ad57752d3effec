package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasmdash/wasmdash-client/internal/backend"
	"github.com/wasmdash/wasmdash-client/internal/constants"
	"github.com/wasmdash/wasmdash-client/internal/session"
	"github.com/wasmdash/wasmdash-client/internal/signer"
	"github.com/wasmdash/wasmdash-client/internal/upload"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUploader struct {
	mu    sync.Mutex
	calls int
	res   signer.UploadResult
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, sender string, wasm []byte, fee backend.Fee, memo string) (signer.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.res, f.err
}

func (f *fakeUploader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type testEnv struct {
	srv      *Server
	workflow *upload.Workflow
	session  *session.Session
}

func newTestEnv(t *testing.T, up signer.Uploader) *testEnv {
	t.Helper()

	settings, err := backend.Select("uninet")
	require.NoError(t, err)

	sess := session.New(settings, up)
	wf := upload.NewWorkflow(settings, sess)

	srv, err := NewServer(context.Background(), Options{
		Backend:  settings,
		Session:  sess,
		Workflow: wf,
	})
	require.NoError(t, err)
	return &testEnv{srv: srv, workflow: wf, session: sess}
}

func junoAddress(t *testing.T) string {
	t.Helper()

	conv, err := bech32.ConvertBits(bytes.Repeat([]byte{0x42}, 20), 8, 5, true)
	require.NoError(t, err)
	addr, err := bech32.Encode("juno", conv)
	require.NoError(t, err)
	return addr
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func multipartRequest(t *testing.T, target, filename string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(formFieldWasm, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRootRedirects(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, newCodePath, rec.Header().Get("Location"))
}

func TestNewCodePage_Initial(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, newCodePath, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Juno Testnet")
	assert.Contains(t, body, "Select file")
	assert.Contains(t, body, `accept=".wasm"`)
	assert.Contains(t, body, `form="upload" disabled>Upload</button>`)
	assert.NotContains(t, body, "Code ID:")
	assert.NotContains(t, body, "text-danger")
	assert.NotContains(t, body, `http-equiv="refresh"`)
}

func TestAPI_SubmitSuccess(t *testing.T) {
	up := &fakeUploader{res: signer.UploadResult{CodeID: 7, TransactionHash: "ABCDEF0123"}}
	env := newTestEnv(t, up)

	rec := env.do(t, jsonRequest(t, http.MethodPost, "/api/session", sessionRequest{Address: junoAddress(t)}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, multipartRequest(t, "/api/upload/file", "hackatom.wasm", []byte("\x00asm")))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, jsonRequest(t, http.MethodPut, "/api/upload/memo", memoRequest{Memo: "hi"}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodPost, "/api/upload/submit", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Submitted bool `json:"submitted"`
		State     struct {
			FileName string `json:"fileName"`
			Memo     string `json:"memo"`
			InFlight bool   `json:"inFlight"`
			Outcome  struct {
				Kind   string               `json:"kind"`
				Result *signer.UploadResult `json:"result"`
				Error  string               `json:"error"`
			} `json:"outcome"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Submitted)
	assert.Equal(t, "hackatom.wasm", resp.State.FileName)
	assert.Equal(t, "hi", resp.State.Memo)
	assert.False(t, resp.State.InFlight)
	assert.Equal(t, "succeeded", resp.State.Outcome.Kind)
	require.NotNil(t, resp.State.Outcome.Result)
	assert.Equal(t, uint64(7), resp.State.Outcome.Result.CodeID)
	assert.Empty(t, resp.State.Outcome.Error)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, newCodePath, nil))
	body := rec.Body.String()
	assert.Contains(t, body, "Code ID:")
	assert.Contains(t, body, "#7")
	assert.Contains(t, body, `href="https://uni.junoscan.com/transactions/ABCDEF0123"`)
	assert.NotContains(t, body, "text-danger")
}

func TestAPI_SubmitFailure(t *testing.T) {
	up := &fakeUploader{err: errors.New("insufficient fees")}
	env := newTestEnv(t, up)
	require.NoError(t, env.session.Connect(junoAddress(t)))
	env.workflow.SelectFile(upload.BytesFile("a.wasm", []byte("x")))

	rec := env.do(t, httptest.NewRequest(http.MethodPost, "/api/upload/submit", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Execute error: insufficient fees"`)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, newCodePath, nil))
	body := rec.Body.String()
	assert.Contains(t, body, "Execute error: insufficient fees")
	assert.NotContains(t, body, "Code ID:")
}

func TestAPI_SubmitPreconditionsUnmet(t *testing.T) {
	up := &fakeUploader{}
	env := newTestEnv(t, up)

	rec := env.do(t, httptest.NewRequest(http.MethodPost, "/api/upload/submit", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submitted":false`)
	assert.Contains(t, rec.Body.String(), `"kind":"none"`)
	assert.Zero(t, up.callCount())
}

func TestAPI_SelectFileRejections(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, multipartRequest(t, "/api/upload/file", "contract.zip", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), HTTPErrorWrongFileTypeText)

	big := bytes.Repeat([]byte{1}, constants.MaxWasmSize+10)
	rec = env.do(t, multipartRequest(t, "/api/upload/file", "big.wasm", big))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/upload/file", nil)
	rec = env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), HTTPErrorMissingFileText)

	assert.False(t, env.workflow.Snapshot().HasFile)
}

func TestAPI_Session(t *testing.T) {
	env := newTestEnv(t, &fakeUploader{})

	rec := env.do(t, jsonRequest(t, http.MethodPost, "/api/session", sessionRequest{Address: "wasm1xyz"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	addr := junoAddress(t)
	rec = env.do(t, jsonRequest(t, http.MethodPost, "/api/session", sessionRequest{Address: addr}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	var got sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sessionResponse{Address: addr, AddressPrefix: "juno", HasSigner: true}, got)

	rec = env.do(t, httptest.NewRequest(http.MethodDelete, "/api/session", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.session.UserAddress())
}

func TestAPI_Backend(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/backend", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ID       string           `json:"id"`
		Settings backend.Settings `json:"settings"`
		Known    []string         `json:"known"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "uninet", got.ID)
	assert.Equal(t, "juno", got.Settings.AddressPrefix)
	assert.Equal(t, "0.25ucosm", got.Settings.GasPrice.String())
	assert.Contains(t, got.Known, "musselnet")

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestForms_UploadFlow(t *testing.T) {
	up := &fakeUploader{res: signer.UploadResult{CodeID: 11, TransactionHash: "FFEE"}}
	env := newTestEnv(t, up)

	rec := env.do(t, formRequest("/session/connect", url.Values{formFieldAddress: {junoAddress(t)}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = env.do(t, multipartRequest(t, "/codes/new/file", "cw20.wasm", []byte("code")))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, newCodePath, rec.Header().Get("Location"))

	rec = env.do(t, httptest.NewRequest(http.MethodGet, newCodePath, nil))
	assert.Contains(t, rec.Body.String(), "cw20.wasm")
	assert.Contains(t, rec.Body.String(), `form="upload">Upload</button>`)

	rec = env.do(t, formRequest("/codes/new/upload", url.Values{formFieldMemo: {"via form"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	assert.Eventually(t, func() bool {
		return env.workflow.Snapshot().Outcome.Kind() == upload.OutcomeSucceeded
	}, time.Second, 5*time.Millisecond)

	snap := env.workflow.Snapshot()
	assert.Equal(t, "via form", snap.Memo)
	assert.False(t, snap.InFlight)
	assert.Equal(t, 1, up.callCount())

	rec = env.do(t, httptest.NewRequest(http.MethodGet, newCodePath, nil))
	assert.Contains(t, rec.Body.String(), "#11")
}

func TestForms_ConnectInvalid(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, formRequest("/session/connect", url.Values{formFieldAddress: {"cosmos1bad"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "form-error")
}

func TestForms_Memo(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, formRequest("/codes/new/memo", url.Values{formFieldMemo: {"note"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "note", env.workflow.Snapshot().Memo)
}

func TestStatic(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/static/page.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEllipsify(t *testing.T) {
	assert.Equal(t, "abc", ellipsify("abc", 3))
	assert.Equal(t, "ab…", ellipsify("abcd", 3))
	assert.Equal(t, "abcd", ellipsify("abcd", 0))
	assert.Len(t, []rune(ellipsify(strings.Repeat("A", 120), constants.TxLinkMaxLength)), constants.TxLinkMaxLength)
}

func TestExplorerTxURL(t *testing.T) {
	assert.Equal(t, "https://x/tx/AB", explorerTxURL("https://x/tx/{txHash}", "AB"))
	assert.Empty(t, explorerTxURL("", "AB"))
	assert.Empty(t, explorerTxURL("https://x/tx/{txHash}", ""))
}
