package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/utils/errutil"
	"github.com/secmon-lab/runboard/pkg/utils/logging"
)

const requestIDHeader = "X-Request-Id"

// preProcess binds request ID and logger to the request context, recovers
// panics of handlers and writes the access log.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(reqID)))
		ctx = logging.With(ctx, logger)

		w.Header().Set(requestIDHeader, string(reqID))
		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		func() {
			defer func() {
				if v := recover(); v != nil {
					errutil.HandleError(ctx, "panic in handler", goerr.New("panic", goerr.V("recovered", v), goerr.V("path", r.URL.Path)))
					if !lw.written {
						http.Error(lw, "internal server error", http.StatusInternalServerError)
					}
				}
			}()
			next.ServeHTTP(lw, r.WithContext(ctx))
		}()

		level := slog.LevelInfo
		if r.URL.Path == "/health" {
			level = slog.LevelDebug
		}
		logger.Log(ctx, level, "http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.written = true
	x.ResponseWriter.WriteHeader(code)
}

func (x *statusCodeLogger) Write(data []byte) (int, error) {
	x.written = true
	return x.ResponseWriter.Write(data)
}
