package https

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/Kravtmk/whoami-app/docs"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewHTTPServer(httpHandler *HTTPHandlers, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		httpHandler.HandleHealth(w, r)
	})
	mux.HandleFunc("/roles", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			httpHandler.HandleListRoles(w, r)
		case http.MethodPost:
			httpHandler.HandleAddRole(w, r)
		default:
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})
	mux.HandleFunc("/roles/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		httpHandler.HandleDeleteRole(w, r)
	})
	mux.HandleFunc("/today", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		httpHandler.HandleGetToday(w, r)
	})
	mux.HandleFunc("/today/segment", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		httpHandler.HandleAddSegment(w, r)
	})
	return &http.Server{
		Handler:           requestIDMiddleware(mux),
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// StartServer blocks until ctx is done, shuts srv down within shutdownTimeout
// and then closes store.
func StartServer(ctx context.Context, srv *http.Server, store io.Closer, shutdownTimeout time.Duration) error {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Default().Error("server ListenAndServe failed", "error", err)
		}
	}()
	slog.Default().Info("server ListenAndServe successfully", "addr", srv.Addr)
	<-ctx.Done()
	slog.Default().Info("shutting down server gracefully", "shutdownTimeout", shutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Default().Info("server successfully shut down")
	slog.Default().Info("closing storage")
	if err := store.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}
	slog.Default().Info("storage closed")
	return nil
}
