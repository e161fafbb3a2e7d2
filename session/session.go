// Package session owns the catalog API authentication state for a single process run.
//
// A session starts out anonymous. Once the credential exchange succeeds the
// bearer token is stored and never refreshed: the API keeps tokens valid for
// well beyond a resolution run, so there is no re-authentication on expiry.
package session

import (
	"errors"
	"sync/atomic"

	"github.com/contar-cli/contar/auth"
	"github.com/contar-cli/contar/key"
	"github.com/spf13/viper"
)

// ErrLoginRequired indicates that no credentials are available.
// It is raised before any network call is attempted.
var ErrLoginRequired = errors.New("login required: run \"contar login\" or set auth.email/auth.password")

// Session holds the bearer token for the current run.
// The token is written once by a successful authentication and is safe to
// read from any number of concurrent fetches afterwards.
type Session struct {
	token atomic.Pointer[string]
}

// New returns an unauthenticated session.
func New() *Session {
	return &Session{}
}

// Token returns the bearer token and whether one has been obtained.
func (s *Session) Token() (string, bool) {
	t := s.token.Load()
	if t == nil {
		return "", false
	}
	return *t, true
}

// SetToken stores the bearer token obtained from the credential exchange.
func (s *Session) SetToken(token string) {
	s.token.Store(&token)
}

// Credentials is a cont.ar account credential pair.
type Credentials struct {
	Email    string
	Password string
}

// LoadCredentials resolves the account credentials, preferring the system
// keyring over configuration values. It fails with ErrLoginRequired when
// neither source yields a usable pair; no network I/O happens here.
func LoadCredentials() (Credentials, error) {
	if email, password, err := auth.GetCredentials(); err == nil && email != "" {
		return Credentials{Email: email, Password: password}, nil
	}

	creds := Credentials{
		Email:    viper.GetString(key.AuthEmail),
		Password: viper.GetString(key.AuthPassword),
	}
	if creds.Email == "" {
		return Credentials{}, ErrLoginRequired
	}
	return creds, nil
}
