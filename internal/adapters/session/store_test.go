package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dispatch/internal/adapters/session"
	"go.trai.ch/dispatch/internal/core/domain"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestStore_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"jane","sessionSecret":"s3cret"}`), 0o600))

	sess, err := session.NewStoreWithEnv(path, env(nil)).Load()
	require.NoError(t, err)
	assert.Equal(t, &domain.Session{Username: "jane", Token: "s3cret"}, sess)
}

func TestStore_EnvTokenOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"jane","sessionSecret":"s3cret"}`), 0o600))

	sess, err := session.NewStoreWithEnv(path, env(map[string]string{session.TokenEnv: "ci-token"})).Load()
	require.NoError(t, err)
	assert.Equal(t, "jane", sess.Username)
	assert.Equal(t, "ci-token", sess.Token)
}

func TestStore_EnvTokenWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	sess, err := session.NewStoreWithEnv(path, env(map[string]string{session.TokenEnv: "ci-token"})).Load()
	require.NoError(t, err)
	assert.Equal(t, &domain.Session{Token: "ci-token"}, sess)
}

func TestStore_NotAuthenticated(t *testing.T) {
	dir := t.TempDir()

	_, err := session.NewStoreWithEnv(filepath.Join(dir, "missing.json"), env(nil)).Load()
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"username":"jane"}`), 0o600))
	_, err = session.NewStoreWithEnv(empty, env(nil)).Load()
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

	_, err := session.NewStoreWithEnv(path, env(nil)).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotAuthenticated)
}
