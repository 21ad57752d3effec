// Package upload drives the New Code form: file and memo selection, a
// single in-flight upload through the signing client, and the outcome of
// the last attempt.
package upload

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/wasmdash/wasmdash-client/internal/backend"
	"github.com/wasmdash/wasmdash-client/internal/constants"
	"github.com/wasmdash/wasmdash-client/internal/signer"
)

// Identity supplies who uploads and with which client.
type Identity interface {
	UserAddress() string
	SigningClient() signer.Uploader
}

type Workflow struct {
	identity Identity
	gasPrice backend.GasPrice

	mu       sync.Mutex
	file     File
	memo     string
	inFlight bool
	outcome  Outcome
}

// Snapshot is a consistent view of the form for rendering.
type Snapshot struct {
	FileName  string  `json:"fileName,omitempty"`
	HasFile   bool    `json:"hasFile"`
	Memo      string  `json:"memo"`
	InFlight  bool    `json:"inFlight"`
	HasSigner bool    `json:"hasSigner"`
	CanSubmit bool    `json:"canSubmit"`
	Outcome   Outcome `json:"outcome"`
}

type attempt struct {
	id     string
	sender string
	client signer.Uploader
	file   File
	memo   string
}

func NewWorkflow(settings *backend.Settings, identity Identity) *Workflow {
	return &Workflow{
		identity: identity,
		gasPrice: settings.GasPrice,
	}
}

// SelectFile replaces the selected file. The last outcome stays visible.
func (w *Workflow) SelectFile(f File) {
	w.mu.Lock()
	w.file = f
	w.mu.Unlock()
}

func (w *Workflow) SetMemo(memo string) {
	w.mu.Lock()
	w.memo = memo
	w.mu.Unlock()
}

// Submit uploads the selected file and waits for the outcome. It returns
// false without doing anything when there is no user address, no file, no
// signing client, or an upload is already in flight.
func (w *Workflow) Submit(ctx context.Context) bool {
	a, ok := w.begin()
	if !ok {
		return false
	}
	w.run(ctx, a)
	return true
}

// Begin is Submit without waiting: the in-flight flag is set before it
// returns and the remote call settles in the background.
func (w *Workflow) Begin(ctx context.Context) bool {
	a, ok := w.begin()
	if !ok {
		return false
	}
	go w.run(ctx, a)
	return true
}

func (w *Workflow) Snapshot() Snapshot {
	hasSigner := w.identity.SigningClient() != nil
	hasAddress := w.identity.UserAddress() != ""

	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{
		HasFile:   w.file != nil,
		Memo:      w.memo,
		InFlight:  w.inFlight,
		HasSigner: hasSigner,
		Outcome:   w.outcome,
	}
	if w.file != nil {
		s.FileName = w.file.Name()
	}
	s.CanSubmit = hasSigner && hasAddress && s.HasFile && !s.InFlight
	return s
}

func (w *Workflow) begin() (attempt, bool) {
	sender := w.identity.UserAddress()
	client := w.identity.SigningClient()

	w.mu.Lock()
	defer w.mu.Unlock()

	if sender == "" || w.file == nil || client == nil || w.inFlight {
		return attempt{}, false
	}

	w.inFlight = true
	return attempt{
		id:     uuid.NewString(),
		sender: sender,
		client: client,
		file:   w.file,
		memo:   w.memo,
	}, true
}

func (w *Workflow) run(ctx context.Context, a attempt) {
	outcome := w.execute(ctx, a)

	w.mu.Lock()
	w.outcome = outcome
	w.inFlight = false
	w.mu.Unlock()
}

func (w *Workflow) execute(ctx context.Context, a attempt) Outcome {
	code, err := readAll(a.file)
	if err != nil {
		log.Error("reading wasm failed", "attempt", a.id, "file", a.file.Name(), "error", err)
		return Failed(a.id, constants.ExecuteErrorPrefix+err.Error())
	}

	fee := backend.CalculateFee(constants.UploadGasLimit, w.gasPrice)

	log.Info("uploading code",
		"attempt", a.id,
		"sender", a.sender,
		"file", a.file.Name(),
		"size", len(code),
		"gas", fee.Gas,
		"memo", a.memo != "",
	)

	res, err := a.client.Upload(ctx, a.sender, code, fee, a.memo)
	if err != nil {
		log.Error("code upload failed", "attempt", a.id, "error", err)
		return Failed(a.id, constants.ExecuteErrorPrefix+err.Error())
	}

	log.Info("code uploaded", "attempt", a.id, "code_id", res.CodeID, "tx", res.TransactionHash)
	return Succeeded(a.id, res)
}

func readAll(f File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
