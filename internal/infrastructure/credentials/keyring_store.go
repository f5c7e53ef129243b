package credentials

import (
	"errors"

	"bscscan_node/internal/app/port"

	"github.com/zalando/go-keyring"
)

// ErrNotFound is returned when no secret is stored for the service/user pair.
var ErrNotFound = errors.New("secret not found in keyring")

// KeyringStore keeps API keys in the operating system keyring.
type KeyringStore struct{}

var _ port.SecretStore = KeyringStore{}

// NewKeyringStore creates a new KeyringStore.
func NewKeyringStore() KeyringStore {
	return KeyringStore{}
}

// Get returns the secret stored for service/user.
func (KeyringStore) Get(service, user string) (string, error) {
	secret, err := keyring.Get(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return secret, err
}

// Set stores secret for service/user, replacing any previous value.
func (KeyringStore) Set(service, user, secret string) error {
	return keyring.Set(service, user, secret)
}

// Delete removes the secret for service/user.
func (KeyringStore) Delete(service, user string) error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
