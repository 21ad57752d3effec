package helpers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wasmdash/wasmdash-client/internal/session"
)

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func PromptLineWithDefault(r *bufio.Reader, w io.Writer, label, def string) string {
	if def != "" {
		_, _ = fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		_, _ = fmt.Fprintf(w, "%s: ", label)
	}

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return def
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// PromptUserAddress asks until the answer is a valid address for prefix.
// An empty answer skips and returns "".
func PromptUserAddress(r *bufio.Reader, w io.Writer, prefix string) string {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "=== Connect account ===")
	_, _ = fmt.Fprintf(w, "Uploads are signed for a %s1... address. Leave empty to connect later from the page.\n", prefix)

	for {
		addr := PromptLineWithDefault(r, w, "Address", "")
		if addr == "" {
			return ""
		}
		if err := session.ValidateAddress(addr, prefix); err != nil {
			_, _ = fmt.Fprintf(w, "❌ %v\n", err)
			continue
		}
		return addr
	}
}

// PromptSignerKey reads the signer API key from the terminal without echo.
func PromptSignerKey() (string, error) {
	_, _ = fmt.Fprint(os.Stderr, "Signer API key: ")

	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("key input failed: %w", err)
	}

	return strings.TrimSpace(string(key)), nil
}
