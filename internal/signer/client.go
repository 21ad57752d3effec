package signer

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/quantumauth-io/quantum-go-utils/retry"

	"github.com/wasmdash/wasmdash-client/internal/backend"
)

var ErrChainMismatch = errors.New("signer chain id does not match backend")

// Client talks JSON-RPC to a remote signing/broadcast service.
type Client struct {
	rpc *rpc.Client
}

var _ Uploader = (*Client)(nil)

// NewClient wraps an already dialed rpc client.
func NewClient(c *rpc.Client) *Client {
	return &Client{rpc: c}
}

// Dial connects to the signer at url. A non-empty apiKey is sent as a
// bearer token on every request.
func Dial(ctx context.Context, url, apiKey string) (*Client, error) {
	var opts []rpc.ClientOption
	if apiKey != "" {
		opts = append(opts, rpc.WithHeader("Authorization", "Bearer "+apiKey))
	}

	c, err := rpc.DialOptions(ctx, url, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to dial signer at %s", url)
	}
	return NewClient(c), nil
}

// Upload submits wasm as a store-code transaction. A rejection is returned
// as-is so its message reaches the user unchanged.
func (c *Client) Upload(ctx context.Context, sender string, wasm []byte, fee backend.Fee, memo string) (UploadResult, error) {
	var res UploadResult
	err := c.rpc.CallContext(ctx, &res, methodUpload, UploadParams{
		Sender:       sender,
		WasmByteCode: wasm,
		Fee:          fee,
		Memo:         memo,
	})
	if err != nil {
		return UploadResult{}, err
	}
	return res, nil
}

// ChainID asks the signer which chain it signs for.
func (c *Client) ChainID(ctx context.Context) (string, error) {
	var id string
	if err := c.rpc.CallContext(ctx, &id, methodChainID); err != nil {
		return "", err
	}
	return id, nil
}

func (c *Client) Close() {
	c.rpc.Close()
}

type DialConfig struct {
	URL    string
	APIKey string

	// ExpectedChainID is checked against wasm_chainId when non-empty.
	ExpectedChainID string
	Timeout         time.Duration
}

// DialWithRetry dials and probes the signer until it answers or the
// timeout passes.
func DialWithRetry(ctx context.Context, cfg DialConfig) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	rcfg := retry.DefaultConfig()
	rcfg.InitialDelayBeforeRetrying = cfg.Timeout / 60
	rcfg.MaxDelayBeforeRetrying = cfg.Timeout / 6

	out, err := retry.Retry(ctx, rcfg,
		func(ctx context.Context) ([]interface{}, error) {
			c, err := Dial(ctx, cfg.URL, cfg.APIKey)
			if err != nil {
				return nil, err
			}
			id, err := c.ChainID(ctx)
			if err != nil {
				c.Close()
				return nil, errors.Wrap(err, "Failed to probe signer chain id")
			}
			return []interface{}{c, id}, nil
		},
		nil, // always retry
		"dial remote signer")
	if err != nil {
		return nil, err
	}
	if len(out) != 2 {
		return nil, errors.New("signer probe returned no client")
	}

	c := out[0].(*Client)
	id := out[1].(string)

	if cfg.ExpectedChainID != "" && id != cfg.ExpectedChainID {
		c.Close()
		return nil, errors.Wrapf(ErrChainMismatch, "signer=%q backend=%q", id, cfg.ExpectedChainID)
	}

	log.Info("remote signer ready", "url", cfg.URL, "chain_id", id)
	return c, nil
}
