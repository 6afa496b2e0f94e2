// Package session owns the authenticated identity of the console: the bearer
// token persisted in the OS keyring and the user record fetched from the API.
package session

import (
	"encoding/json"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "booknet-admin"
	tokenKey    = "auth_token"
)

// StoredCredentials is the JSON blob kept in the OS keyring between runs.
type StoredCredentials struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt int64  `json:"expires_at"`
}

func StoreCredentials(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func LoadCredentials() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if err != nil {
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func DeleteCredentials() error {
	return keyring.Delete(serviceName, tokenKey)
}
