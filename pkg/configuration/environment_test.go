package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_FallsBackToGoModRoot(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, "go.mod"), "module example.com/test\n\ngo 1.22\n")
	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "ADMIN_TEST_ENV_LOAD=ok\n")

	sub := filepath.Join(tmp, "pkg", "crud")
	requireMkdirAll(t, sub)
	chdir(t, sub)

	_ = os.Unsetenv("ADMIN_TEST_ENV_LOAD")
	t.Cleanup(func() { _ = os.Unsetenv("ADMIN_TEST_ENV_LOAD") })

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ok", os.Getenv("ADMIN_TEST_ENV_LOAD"))
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load()
	require.NoError(t, err)
	t.Cleanup(c.Unload)

	assert.Equal(t, "https://admin-dashboard-for-main-website.onrender.com", c.API.BaseURL)
	assert.Equal(t, "/auth/login", c.API.LoginPath)
	assert.Equal(t, 30*time.Second, c.API.RequestTimeout)
	assert.Equal(t, int64(1<<20), c.Upload.MaxSize)
	assert.Equal(t, "/admin/uploads/image", c.Upload.Path)
	assert.Equal(t, 100, c.TrainingsPageSize)
	assert.Equal(t, logrus.ErrorLevel, c.LogrusLogLevel())
	require.NotNil(t, c.Logger())
}

func TestLoad_TrimsBaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ADMIN_API_BASE_URL", "http://localhost:8000/ ")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", c.API.BaseURL)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"ADMIN_API_BASE_URL":        "ftp://example.com",
		"ADMIN_LOGIN_PATH":          "auth/login",
		"ADMIN_MAX_UPLOAD_SIZE":     "0",
		"ADMIN_TRAININGS_PAGE_SIZE": "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestSessionFile(t *testing.T) {
	c := &Configuration{Session: SessionOptions{File: " /tmp/admin-session.json "}}
	assert.Equal(t, "/tmp/admin-session.json", c.SessionFile())

	c = &Configuration{}
	assert.Equal(t, "session.json", filepath.Base(c.SessionFile()))
}

func TestLogrusLogLevel(t *testing.T) {
	levels := map[string]logrus.Level{
		"silent":  logrus.PanicLevel,
		"error":   logrus.ErrorLevel,
		"warn":    logrus.WarnLevel,
		"info":    logrus.InfoLevel,
		"debug":   logrus.DebugLevel,
		"verbose": logrus.ErrorLevel,
	}
	for raw, want := range levels {
		c := &Configuration{LogLevel: raw}
		assert.Equal(t, want, c.LogrusLogLevel(), raw)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(dir))
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func requireMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
