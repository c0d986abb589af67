// Package auth provides a high-level API for persisting and retrieving the platform credential from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service     = "rtgrab"
	usernameKey = "username"
	passwordKey = "password"
)

// Credentials is the optional username/password pair exchanged for a session token.
type Credentials struct {
	Username string
	Password string
}

// SetCredentials persists the platform login to the system keyring.
func SetCredentials(c Credentials) error {
	if err := keyring.Set(service, usernameKey, c.Username); err != nil {
		return err
	}
	return keyring.Set(service, passwordKey, c.Password)
}

// GetCredentials retrieves the platform login from the system keyring.
func GetCredentials() (Credentials, error) {
	username, err := keyring.Get(service, usernameKey)
	if err != nil {
		return Credentials{}, err
	}
	password, err := keyring.Get(service, passwordKey)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: username, Password: password}, nil
}

// DeleteCredentials removes the platform login from the system keyring.
func DeleteCredentials() error {
	if err := keyring.Delete(service, usernameKey); err != nil {
		return err
	}
	return keyring.Delete(service, passwordKey)
}
