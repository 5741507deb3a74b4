package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"qrlink/internal/config"
	"qrlink/internal/logger"
	"qrlink/internal/mocks"
	"qrlink/internal/target"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepare(t *testing.T) (*mocks.MockSource, *Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sugarLogger, _ := logger.NewLogger()
	conf := config.NewConfig()
	mockSource := mocks.NewMockSource(ctrl)

	controller := NewController(conf, mockSource, sugarLogger)

	return mockSource, controller
}

func TestHealthz(t *testing.T) {
	_, controller := prepare(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler := controller.Healthz()
	handler.ServeHTTP(w, r)

	res := w.Result()
	defer func() {
		if err := res.Body.Close(); err != nil {
			controller.sugar.Errorf("res.Body.Close() error")
		}
	}()

	require.Equal(t, http.StatusOK, res.StatusCode, "Response code does not match expected")
	assert.Equal(t, "text/plain", res.Header.Get("Content-Type"))
	assert.Equal(t, "OK", w.Body.String())
}

func TestRedirect(t *testing.T) {
	tests := []struct {
		mockSetup        func(src *mocks.MockSource)
		name             string
		expectedLocation string
		expectedStatus   int
	}{
		{
			name: "redirect to configured target",
			mockSetup: func(src *mocks.MockSource) {
				src.EXPECT().CurrentTarget().Return("https://example.com", nil)
			},
			expectedLocation: "https://example.com",
			expectedStatus:   http.StatusFound,
		},
		{
			name: "resolution error falls back",
			mockSetup: func(src *mocks.MockSource) {
				src.EXPECT().CurrentTarget().Return("", errors.New("read target file: no such file"))
			},
			expectedLocation: "https://example.com/",
			expectedStatus:   http.StatusFound,
		},
		{
			name: "empty target falls back",
			mockSetup: func(src *mocks.MockSource) {
				src.EXPECT().CurrentTarget().Return("", target.ErrNoTarget)
			},
			expectedLocation: "https://example.com/",
			expectedStatus:   http.StatusFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSource, controller := prepare(t)
			tc.mockSetup(mockSource)

			r := httptest.NewRequest(http.MethodGet, "/x", nil)
			w := httptest.NewRecorder()

			handler := controller.Redirect()
			handler.ServeHTTP(w, r)

			res := w.Result()
			defer func() {
				if err := res.Body.Close(); err != nil {
					controller.sugar.Errorf("res.Body.Close() error")
				}
			}()

			require.Equal(t, tc.expectedStatus, res.StatusCode, "Response code does not match expected")

			loc, err := res.Location()
			require.NoError(t, err)
			assert.Equal(t, tc.expectedLocation, loc.String())
		})
	}
}

// /x against a real document on disk, covering the file-backed path.
func TestRedirectWithFileSource(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		missing          bool
		expectedLocation string
	}{
		{
			name:             "valid document",
			body:             `{"current_target": "https://example.com"}`,
			expectedLocation: "https://example.com",
		},
		{
			name:             "malformed document",
			body:             `{broken`,
			expectedLocation: "https://example.com/",
		},
		{
			name:             "missing document",
			missing:          true,
			expectedLocation: "https://example.com/",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "redirect.json")
			if !tc.missing {
				require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o600))
			}

			sugarLogger, _ := logger.NewLogger()
			conf := config.NewConfig()
			controller := NewController(conf, target.NewFileSource(path), sugarLogger)

			r := httptest.NewRequest(http.MethodGet, "/x", nil)
			w := httptest.NewRecorder()

			controller.Redirect().ServeHTTP(w, r)

			res := w.Result()
			defer func() {
				if err := res.Body.Close(); err != nil {
					controller.sugar.Errorf("res.Body.Close() error")
				}
			}()

			require.Equal(t, http.StatusFound, res.StatusCode)
			loc, err := res.Location()
			require.NoError(t, err)
			assert.Equal(t, tc.expectedLocation, loc.String())
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	_, controller := prepare(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler := controller.LoggingMiddleware(controller.Healthz())
	handler.ServeHTTP(w, r)

	res := w.Result()
	defer func() {
		if err := res.Body.Close(); err != nil {
			controller.sugar.Errorf("res.Body.Close() error")
		}
	}()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get("X-Request-Id"))
}
