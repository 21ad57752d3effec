package backend

import (
	"os"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/wasmdash/wasmdash-client/internal/constants"
)

var ErrUnknownBackend = errors.New("unknown backend")

// IDFromEnv returns the backend id from the environment, or the default
// when unset.
func IDFromEnv() string {
	if id := strings.TrimSpace(os.Getenv(constants.BackendEnv)); id != "" {
		return id
	}
	return constants.DefaultBackendID
}

// Select returns a copy of the settings registered under id.
func Select(id string) (*Settings, error) {
	s, ok := knownBackends[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBackend, "No backend found for the given ID %q", id)
	}
	return s.clone(), nil
}

// Current selects the backend named by the environment.
func Current() (*Settings, error) {
	return Select(IDFromEnv())
}

// Known lists the registered backend ids in order.
func Known() []string {
	out := make([]string, 0, len(knownBackends))
	for id := range knownBackends {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
