package handlers

import (
	"net/http"
	"time"

	"qrlink/internal/config"
	"qrlink/internal/target"

	"github.com/9ssi7/nanoid"
	"go.uber.org/zap"
)

type (
	// responseData keeps the pieces of the response the middleware reports.
	responseData struct {
		status int
		size   int
	}

	// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

// Write writes the response and records the written size.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader writes the status code and records it.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// Controller serves the two fixed endpoints of the redirect service.
type Controller struct {
	conf  *config.Config
	src   target.Source
	sugar *zap.SugaredLogger
}

// NewController creates a new Controller instance.
func NewController(conf *config.Config, src target.Source, sugar *zap.SugaredLogger) *Controller {
	return &Controller{conf: conf, src: src, sugar: sugar}
}

func newRequestID() string {
	id, _ := nanoid.New()
	return id
}

// LoggingMiddleware tags each request with a nanoid id, exposed as
// X-Request-Id, and logs method, uri, status, size and duration.
func (con *Controller) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		rd := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   rd,
		}
		reqID := newRequestID()
		lw.Header().Set("X-Request-Id", reqID)

		next.ServeHTTP(&lw, req)

		con.sugar.Infoln(
			"id", reqID,
			"method", req.Method,
			"uri", req.RequestURI,
			"status", rd.status,
			"size", rd.size,
			"duration", time.Since(start),
		)
	})
}

// Healthz returns the static liveness acknowledgment.
func (con *Controller) Healthz() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(http.StatusOK)
		if _, err := res.Write([]byte("OK")); err != nil {
			con.sugar.Errorf("write healthz response: %v", err)
		}
	}
}

// Redirect resolves the configured target and issues a 302. Resolution
// failures never reach the client: the fallback URL is used instead.
func (con *Controller) Redirect() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		tgt, err := con.src.CurrentTarget()
		if err != nil {
			con.sugar.Warnf("target resolution failed: %v; redirecting to fallback", err)
			tgt = con.conf.FallbackURL
		}
		http.Redirect(res, req, tgt, http.StatusFound)
	}
}
