package constants

const (
	AppName = "wasmdash-client"

	// Backend selection
	BackendEnv       = "WASMDASH_BACKEND"
	DefaultBackendID = "uninet"

	SignerURLEnv   = "WASMDASH_SIGNER_URL"
	SignerKeyEnv   = "WASMDASH_SIGNER_KEY"
	UserAddressEnv = "WASMDASH_USER_ADDRESS"

	// Gas limit attached to every code upload.
	UploadGasLimit uint64 = 2_000_000

	// Default wasmd upload limit (MaxWasmSize).
	MaxWasmSize = 800 * 1024

	WasmFileExt = ".wasm"

	ExecuteErrorPrefix = "Execute error: "

	// Explorer templates use this placeholder for the tx hash.
	TxHashPlaceholder = "{txHash}"

	// Transaction ids are truncated past this many characters when rendered.
	TxLinkMaxLength = 99

	SignerDialTimeoutSeconds = 30
)
