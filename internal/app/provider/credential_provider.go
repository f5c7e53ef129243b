package provider

import (
	"errors"
	"fmt"
	"strings"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/infrastructure/credentials"
)

type credentialProviderImpl struct {
	configured string
	store      port.SecretStore
	service    string
	user       string
	logger     port.Logger
}

// NewCredentialProvider resolves the API key from the configured value first,
// then from store under service/user. store may be nil.
func NewCredentialProvider(configured string, store port.SecretStore, service, user string, logger port.Logger) port.CredentialProvider {
	return &credentialProviderImpl{
		configured: strings.TrimSpace(configured),
		store:      store,
		service:    service,
		user:       user,
		logger:     logger,
	}
}

// APIKey returns the first non-empty key source. An empty result with a nil
// error means no key is configured anywhere; the engine rejects that later.
func (p *credentialProviderImpl) APIKey() (string, error) {
	if p.configured != "" {
		p.logger.Debug("Using API key from configuration")
		return p.configured, nil
	}
	if p.store == nil {
		return "", nil
	}

	key, err := p.store.Get(p.service, p.user)
	if errors.Is(err, credentials.ErrNotFound) {
		p.logger.Debug("No API key stored in keyring", "service", p.service, "user", p.user)
		return "", nil
	}
	if err != nil {
		p.logger.Error("Failed to read API key from keyring", "service", p.service, "error", err)
		return "", fmt.Errorf("failed to read API key from keyring service %s: %w", p.service, err)
	}
	p.logger.Debug("Using API key from keyring", "service", p.service)
	return strings.TrimSpace(key), nil
}
