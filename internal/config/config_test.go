package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "jwt_secret: s3cret\n")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 5500, cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "blognest", cfg.Mongo.Name)
	assert.True(t, cfg.IsDev())
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
port: 8080
env: Production
mongo:
  uri: mongodb://db:27017
  name: blog
jwt_secret: s3cret
allowed_origins:
  - " https://example.com "
  - ""
mail:
  enable: true
  host: smtp.example.com
  user: mailer
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, []string{"https://example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Mail.Enable)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 99999\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, "no_such_key: true\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
