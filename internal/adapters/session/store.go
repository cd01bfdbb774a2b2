// Package session provides access to the authenticated user session.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// TokenEnv overrides the token of the stored session.
const TokenEnv = "DISPATCH_TOKEN"

// Store implements ports.SessionStore on top of a JSON session file.
type Store struct {
	path   string
	getenv func(string) string
}

// NewStore creates a session store reading the session file at path.
func NewStore(path string) *Store {
	return &Store{path: path, getenv: os.Getenv}
}

// Load returns the stored session. A token from the environment takes precedence
// over the one in the file, and is sufficient on its own.
func (s *Store) Load() (*domain.Session, error) {
	token := s.getenv(TokenEnv)

	sess, err := s.read()
	if err != nil {
		return nil, err
	}

	switch {
	case sess == nil && token == "":
		return nil, zerr.With(zerr.Wrap(domain.ErrNotAuthenticated, "no session found, run the login command first"),
			"path", s.path)
	case sess == nil:
		sess = &domain.Session{}
	}

	if token != "" {
		sess.Token = token
	}
	if sess.Token == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotAuthenticated, "session has no token"), "path", s.path)
	}
	return sess, nil
}

func (s *Store) read() (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read session file"), "path", s.path)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse session file"), "path", s.path)
	}
	return &sess, nil
}
