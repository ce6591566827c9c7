package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/config"
	"pokedex/internal/http/middleware"
	"pokedex/internal/logging"
	"pokedex/internal/model"
	"pokedex/internal/repository/memory"
	"pokedex/internal/service"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{Port: "0", MetricsEnabled: true}
}

func newTestApp(t *testing.T, cfg *config.AppConfig) (*fiber.App, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	app, err := New(cfg, Deps{
		Logger:     logging.New(&logs, nil),
		PokemonSvc: service.NewPokemonService(memory.NewPokemonMemory(model.DefaultRoster())),
		Registry:   prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return app, &logs
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestServer_Routes(t *testing.T) {
	app, logs := newTestApp(t, testConfig())

	t.Run("root", func(t *testing.T) {
		resp, body := get(t, app, "/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "<h1>Hi I am the first page</h1>", body)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("greeting", func(t *testing.T) {
		resp, body := get(t, app, "/hi/Ash")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Ash")
	})

	t.Run("greeting without name", func(t *testing.T) {
		resp, body := get(t, app, "/hi/")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "NOT_FOUND")
	})

	t.Run("trailing slash is a different route", func(t *testing.T) {
		for _, target := range []string{"/hi/Ash/", "/pokemon/", "/healthz/"} {
			resp, body := get(t, app, target)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
			assert.NotContains(t, body, "Hello Ash", target)
		}
	})

	t.Run("pokemon", func(t *testing.T) {
		resp, body := get(t, app, "/pokemon")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
		assert.Contains(t, body, `<span id="count">10</span>`)
		assert.Equal(t, 10, strings.Count(body, "<li>"))

		last := -1
		for _, name := range model.DefaultRoster() {
			idx := strings.Index(body, "<li>"+name+"</li>")
			require.Greater(t, idx, last, name)
			last = idx
		}
	})

	t.Run("pokemon is stable across requests", func(t *testing.T) {
		_, first := get(t, app, "/pokemon")
		_, second := get(t, app, "/pokemon")
		assert.Equal(t, first, second)
	})

	t.Run("healthz", func(t *testing.T) {
		resp, _ := get(t, app, "/healthz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("requests are logged", func(t *testing.T) {
		line, _, _ := strings.Cut(logs.String(), "\n")
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "request", entry["msg"])
		assert.Equal(t, "/", entry["path"])
	})
}

func TestServer_Metrics(t *testing.T) {
	app, _ := newTestApp(t, testConfig())

	get(t, app, "/pokemon")
	get(t, app, "/hi/Misty")

	resp, body := get(t, app, middleware.MetricsPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/pokemon",status="200"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/hi/:name",status="200"} 1`)
	assert.NotContains(t, body, `path="/metrics"`)
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	app, _ := newTestApp(t, cfg)

	resp, _ := get(t, app, middleware.MetricsPath)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_MetricsRequireRegistry(t *testing.T) {
	_, err := New(testConfig(), Deps{Logger: logging.New(io.Discard, nil)})
	assert.EqualError(t, err, "server: metrics enabled without a registry")
}

func TestServer_Minify(t *testing.T) {
	plainApp, _ := newTestApp(t, testConfig())
	cfg := testConfig()
	cfg.MinifyHTML = true
	minApp, _ := newTestApp(t, cfg)

	_, plain := get(t, plainApp, "/pokemon")
	_, small := get(t, minApp, "/pokemon")

	assert.Less(t, len(small), len(plain))
	for _, name := range model.DefaultRoster() {
		assert.Contains(t, small, name)
	}
}

func TestServer_DebugReloadsTemplates(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("hello.html", "v1 {{ .Name }}")
	write("index.html", "{{ .Len }}")

	cfg := testConfig()
	cfg.Debug = true
	cfg.TemplateDir = dir
	app, _ := newTestApp(t, cfg)

	_, body := get(t, app, "/hi/Brock")
	assert.Equal(t, "v1 Brock", body)

	write("hello.html", "v2 {{ .Name }}")
	_, body = get(t, app, "/hi/Brock")
	assert.Equal(t, "v2 Brock", body)
}

func TestServer_BadTemplateDir(t *testing.T) {
	cfg := testConfig()
	cfg.TemplateDir = t.TempDir()

	_, err := New(cfg, Deps{Logger: logging.New(io.Discard, nil), Registry: prometheus.NewRegistry()})
	assert.Error(t, err)
}
