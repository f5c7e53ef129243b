package port

// CredentialProvider supplies the explorer API key when the host did not pass one.
type CredentialProvider interface {
	APIKey() (string, error)
}

// SecretStore persists API keys outside the config file (OS keyring).
type SecretStore interface {
	Get(service, user string) (string, error)
	Set(service, user, secret string) error
	Delete(service, user string) error
}

// AddressProvider loads address lists for multi-address operations.
type AddressProvider interface {
	GetAddresses() ([]string, error)
}
