package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	Addr            string
	CertFile        string
	KeyFile         string
	ShutdownTimeout time.Duration
}

// Serve runs an HTTP server until ctx is cancelled, then shuts it down
// gracefully. TLS is used when both CertFile and KeyFile are set.
func Serve(ctx context.Context, opts Options, handler http.Handler, logger *zap.Logger) error {
	lis, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return err
	}
	return serveListener(ctx, lis, opts, handler, logger)
}

func serveListener(ctx context.Context, lis net.Listener, opts Options, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening",
			zap.String("addr", lis.Addr().String()),
			zap.Bool("tls", opts.CertFile != "" && opts.KeyFile != ""),
		)
		var err error
		if opts.CertFile != "" && opts.KeyFile != "" {
			err = srv.ServeTLS(lis, opts.CertFile, opts.KeyFile)
		} else {
			err = srv.Serve(lis)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("ctx cancelled, stopping HTTP server", zap.String("addr", lis.Addr().String()))

	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed, closing", zap.Error(err))
		_ = srv.Close()
		return err
	}
	logger.Info("HTTP server stopped", zap.String("addr", lis.Addr().String()))
	return nil
}
