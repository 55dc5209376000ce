package server

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/sepgen/sepgen/internal/logging"
	"go.uber.org/zap"
)

// configName matches the provisioning files this server is willing to hand
// out. Everything else (directory listings, dotfiles, temp files from an
// in-flight generate) gets a 404.
var configName = regexp.MustCompile(`^SEP[0-9A-F]{12}\.cnf\.xml$`)

// newConfigHandler serves provisioning files from dir by exact name.
func newConfigHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lw := &loggingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, lw.status, lw.bytes)
		}()

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			lw.status = http.StatusMethodNotAllowed
			http.Error(lw, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := filepath.Base(r.URL.Path)
		if !configName.MatchString(name) {
			logging.Debug("Rejected request for non-config path",
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("path", r.URL.Path),
			)
			lw.status = http.StatusNotFound
			http.NotFound(lw, r)
			return
		}

		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			lw.status = http.StatusNotFound
			http.NotFound(lw, r)
			return
		}

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		http.ServeFile(lw, r, path)
	})
}

// loggingResponseWriter captures the status and byte count for request logs.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *loggingResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *loggingResponseWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += int64(n)
	return n, err
}
