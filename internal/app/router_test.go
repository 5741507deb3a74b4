package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"qrlink/internal/config"
	"qrlink/internal/handlers"
	"qrlink/internal/logger"
	"qrlink/internal/target"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, targetFile string) *chi.Mux {
	t.Helper()
	c := config.NewConfig()
	c.TargetFile = targetFile
	sugarLogger, err := logger.NewLogger()
	require.NoError(t, err)

	ctrl := handlers.NewController(c, target.NewFileSource(c.TargetFile), sugarLogger)
	r := chi.NewRouter()
	InitMiddleware(r, ctrl)
	Routing(r, ctrl)
	return r
}

func TestRouting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "redirect.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"current_target": "https://example.com"}`), 0o600))

	r := newTestRouter(t, path)
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := srv.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	t.Run("GET / returns OK", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/")
		require.NoError(t, err)
		defer func() {
			if e := resp.Body.Close(); e != nil {
				t.Log("resp.Body.Close() error")
			}
		}()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	})

	t.Run("GET /x redirects", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/x")
		require.NoError(t, err)
		defer func() {
			if e := resp.Body.Close(); e != nil {
				t.Log("resp.Body.Close() error")
			}
		}()
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://example.com", resp.Header.Get("Location"))
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/nope")
		require.NoError(t, err)
		defer func() {
			if e := resp.Body.Close(); e != nil {
				t.Log("resp.Body.Close() error")
			}
		}()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateServer(t *testing.T) {
	c := config.NewConfig()
	sugarLogger, err := logger.NewLogger()
	require.NoError(t, err)

	srv := CreateServer(c, chi.NewRouter(), sugarLogger)
	require.Equal(t, ":8000", srv.Addr)
	require.NotZero(t, srv.ReadHeaderTimeout)
}
