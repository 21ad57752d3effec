package http

const (
	// Form fields
	formFieldWasm    = "wasm"
	formFieldMemo    = "memo"
	formFieldAddress = "address"

	newCodePath = "/codes/new"

	// While an upload is in flight the page reloads itself this often.
	inFlightRefreshSeconds = 2

	// Room for multipart framing around the wasm payload.
	multipartOverhead = 64 * 1024
)

const (
	HTTPErrorInvalidJSONText   = "invalid json"
	HTTPErrorMissingFileText   = "missing wasm file"
	HTTPErrorFileTooLargeText  = "wasm file too large"
	HTTPErrorWrongFileTypeText = "file must have a .wasm extension"
	HTTPErrorReadFileText      = "failed to read wasm file"
)
