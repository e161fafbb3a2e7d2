// Package auth provides a high-level API for persisting and retrieving user credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service      = "contar-cli"
	emailUser    = "email"
	passwordUser = "password"
)

// SetCredentials persists the cont.ar account credentials to the system keyring.
func SetCredentials(email, password string) error {
	if err := keyring.Set(service, emailUser, email); err != nil {
		return err
	}
	return keyring.Set(service, passwordUser, password)
}

// GetCredentials retrieves the cont.ar account credentials from the system keyring.
func GetCredentials() (email, password string, err error) {
	email, err = keyring.Get(service, emailUser)
	if err != nil {
		return "", "", err
	}
	password, err = keyring.Get(service, passwordUser)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// DeleteCredentials removes the cont.ar account credentials from the system keyring.
func DeleteCredentials() error {
	if err := keyring.Delete(service, emailUser); err != nil {
		return err
	}
	return keyring.Delete(service, passwordUser)
}
