package spectate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Serve listens on addr until ctx is done, then shuts the server down.
func Serve(ctx context.Context, addr string, hub *Hub, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return serve(ctx, ln, hub, logger)
}

func serve(ctx context.Context, ln net.Listener, hub *Hub, logger *zap.Logger) error {
	server := &http.Server{
		Handler:           NewRouter(hub, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("spectator listening", zap.String("addr", ln.Addr().String()))
		errc <- server.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// Event streams stay open until closed forcibly.
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Debug("forcing spectator shutdown", zap.Error(err))
			return server.Close()
		}
		return nil
	}
}
