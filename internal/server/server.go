package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sepgen/sepgen/internal/logging"
	"go.uber.org/zap"
)

// Config holds the provisioning server configuration
type Config struct {
	Addr     string // Listen address, e.g. ":6970"
	Dir      string // Directory holding the generated SEP<MAC>.cnf.xml files
	LogLevel string
	MDNS     bool // Announce the service via mDNS so it is discoverable on the LAN
}

// Server serves generated provisioning files over HTTP. Cisco phones fetch
// their SEP<MAC>.cnf.xml on boot; pointing their alternate TFTP/HTTP source
// at this server closes the loop without a full TFTP deployment.
type Server struct {
	config     *Config
	httpServer *http.Server
	announcer  *announcer
}

// New creates a new Server instance
func New(config *Config) (*Server, error) {
	// Initialize logging
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	info, err := os.Stat(config.Dir)
	if err != nil {
		return nil, fmt.Errorf("cannot serve from %s: %w", config.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot serve from %s: not a directory", config.Dir)
	}

	return &Server{
		config: config,
		httpServer: &http.Server{
			Addr:         config.Addr,
			Handler:      newConfigHandler(config.Dir),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}, nil
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}

	logging.Info("Starting provisioning file server",
		zap.String("addr", listener.Addr().String()),
		zap.String("dir", s.config.Dir),
		zap.String("log_level", s.config.LogLevel),
	)

	if s.config.MDNS {
		port := listener.Addr().(*net.TCPAddr).Port
		ann, err := announce(port)
		if err != nil {
			// mDNS is best effort; the phones can still be pointed at
			// the address directly.
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			s.announcer = ann
			logging.Info("Announced service via mDNS",
				zap.String("instance", mdnsInstance),
				zap.String("service", mdnsService),
				zap.Int("port", port),
			)
		}
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if s.announcer != nil {
		s.announcer.shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Shutdown timeout, forcing close", zap.Error(err))
		_ = s.httpServer.Close()
	} else {
		logging.Info("All connections closed gracefully")
	}

	logging.Sync()
	return nil
}
