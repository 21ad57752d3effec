// Package session holds the identity the UI acts as: the connected user
// address and the signing client bound to it.
package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/wasmdash/wasmdash-client/internal/backend"
	"github.com/wasmdash/wasmdash-client/internal/signer"
)

type Session struct {
	prefix string
	client signer.Uploader

	mu      sync.RWMutex
	address string
}

// New creates a session for the given backend. client may be nil when no
// signer is reachable; uploads are then unavailable.
func New(settings *backend.Settings, client signer.Uploader) *Session {
	return &Session{
		prefix: settings.AddressPrefix,
		client: client,
	}
}

// Connect binds a user address after checking it belongs to the backend.
func (s *Session) Connect(address string) error {
	address = strings.TrimSpace(address)
	if err := ValidateAddress(address, s.prefix); err != nil {
		return err
	}

	s.mu.Lock()
	s.address = address
	s.mu.Unlock()
	return nil
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	s.address = ""
	s.mu.Unlock()
}

func (s *Session) UserAddress() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}

func (s *Session) SigningClient() signer.Uploader {
	return s.client
}

func (s *Session) AddressPrefix() string { return s.prefix }

// ValidateAddress checks address is bech32 with the given human-readable part.
func ValidateAddress(address, prefix string) error {
	if address == "" {
		return fmt.Errorf("address is empty")
	}

	hrp, _, err := bech32.Decode(address)
	if err != nil {
		return fmt.Errorf("invalid bech32 address %q: %w", address, err)
	}
	if hrp != prefix {
		return fmt.Errorf("address %q has prefix %q, expected %q", address, hrp, prefix)
	}
	return nil
}
