package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wasmdash/wasmdash-client/internal/backend"
)

// Uploader is the one capability the upload workflow needs from a
// signing client: sign and broadcast a code upload.
type Uploader interface {
	Upload(ctx context.Context, sender string, wasm []byte, fee backend.Fee, memo string) (UploadResult, error)
}

// UploadResult is what the network assigned to an uploaded code.
type UploadResult struct {
	CodeID          uint64 `json:"codeId"`
	TransactionHash string `json:"transactionHash"`
	Checksum        string `json:"checksum,omitempty"`
	OriginalSize    uint64 `json:"originalSize,omitempty"`
	CompressedSize  uint64 `json:"compressedSize,omitempty"`
	Height          int64  `json:"height,omitempty"`
	GasWanted       uint64 `json:"gasWanted,omitempty"`
	GasUsed         uint64 `json:"gasUsed,omitempty"`
}

// UploadParams is the wasm_upload request body.
type UploadParams struct {
	Sender       string        `json:"sender"`
	WasmByteCode hexutil.Bytes `json:"wasmByteCode"`
	Fee          backend.Fee   `json:"fee"`
	Memo         string        `json:"memo,omitempty"`
}

const (
	methodUpload  = "wasm_upload"
	methodChainID = "wasm_chainId"
)
