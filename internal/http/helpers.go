package http

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/wasmdash/wasmdash-client/internal/constants"
	"github.com/wasmdash/wasmdash-client/internal/upload"
)

var templateFuncs = template.FuncMap{
	"ellipsify": ellipsify,
}

type fileError struct {
	status int
	text   string
}

func (e *fileError) Error() string { return e.text }

// readWasmFile pulls the multipart wasm field into memory, untouched.
func readWasmFile(c *gin.Context) (upload.File, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxWasmSize+multipartOverhead)

	fh, err := c.FormFile(formFieldWasm)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &fileError{status: http.StatusRequestEntityTooLarge, text: HTTPErrorFileTooLargeText}
		}
		return nil, &fileError{status: http.StatusBadRequest, text: HTTPErrorMissingFileText}
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), constants.WasmFileExt) {
		return nil, &fileError{status: http.StatusBadRequest, text: HTTPErrorWrongFileTypeText}
	}
	if fh.Size > constants.MaxWasmSize {
		return nil, &fileError{status: http.StatusRequestEntityTooLarge, text: HTTPErrorFileTooLargeText}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, &fileError{status: http.StatusBadRequest, text: HTTPErrorReadFileText}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &fileError{status: http.StatusBadRequest, text: fmt.Sprintf("%s: %v", HTTPErrorReadFileText, err)}
	}

	return upload.BytesFile(filepath.Base(fh.Filename), data), nil
}

func fileErrorStatus(err error) int {
	var fe *fileError
	if errors.As(err, &fe) {
		return fe.status
	}
	return http.StatusBadRequest
}

// ellipsify shortens s to at most max runes, ending in an ellipsis.
func ellipsify(s string, max int) string {
	if max < 1 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

// explorerTxURL fills the explorer template, or returns "" when there is none.
func explorerTxURL(tmpl, hash string) string {
	if tmpl == "" || hash == "" {
		return ""
	}
	return strings.ReplaceAll(tmpl, constants.TxHashPlaceholder, hash)
}

func seeOther(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, newCodePath)
}
