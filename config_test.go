package rai_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rai "github.com/raihq/rai-go"
	"github.com/raihq/rai-go/pkg/constants"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rai.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
base_url: https://staging.raihq.example/v1
credential:
  key_id: `+strings.Repeat("a", constants.KeyIDLength)+`
  public_key: `+strings.Repeat("b", constants.PublicKeyLength)+`
  secret: `+strings.Repeat("c", constants.SecretLength)+`
log:
  level: debug
`)

	cfg, err := rai.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.raihq.example/v1", cfg.BaseURL)
	assert.Equal(t, strings.Repeat("a", constants.KeyIDLength), cfg.Credential.KeyID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFileAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
credential:
  key_id: `+strings.Repeat("a", constants.KeyIDLength)+`
  public_key: `+strings.Repeat("b", constants.PublicKeyLength)+`
  secret: `+strings.Repeat("c", constants.SecretLength)+`
`)

	cfg, err := rai.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, string(constants.LogLevelInfo), cfg.Log.Level)
}

func TestLoadConfigFileRejectsBadCredential(t *testing.T) {
	path := writeConfigFile(t, `
credential:
  key_id: too-short
  public_key: `+strings.Repeat("b", constants.PublicKeyLength)+`
  secret: `+strings.Repeat("c", constants.SecretLength)+`
`)

	_, err := rai.LoadConfigFile(path)
	require.Error(t, err)
}

func TestLoadConfigFileMissingFile(t *testing.T) {
	_, err := rai.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCredentialValidate(t *testing.T) {
	cred := testCredential()
	require.NoError(t, cred.Validate())

	cred.Secret = cred.Secret[:constants.SecretLength-1]
	err := cred.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret must be exactly 64 characters")
}
