// Package tui hosts games in a terminal, locally or for SSH clients via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/credit-balloons/internal/core"
	"github.com/vovakirdan/credit-balloons/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the SSH frontend.
type SSHServerConfig struct {
	Address string

	// HostKeyPath is created on first start when missing. Empty selects
	// ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the run history shared by every player.
	DBPath string

	IdleTimeout time.Duration
	TickRate    int
}

// DefaultSSHServerConfig listens on :23234.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

func (c SSHServerConfig) hostKey() (string, error) {
	if c.HostKeyPath != "" {
		return c.HostKeyPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "host_key"), nil
}

// SSHServer runs one menu session per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares the server without listening. A run database that
// cannot be opened is logged and sessions play without history.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "balloons-ssh"})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	keyPath, err := cfg.hostKey()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if store, err := storage.Open(cfg.DBPath); err != nil {
		logger.Warn("could not open run database", "path", cfg.DBPath, "error", err)
	} else {
		srv.store = store
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.requirePTY,
			srv.trackSession,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	deps := Deps{
		Store:  s.store,
		Logger: s.logger.With("user", sess.User()),
	}
	return NewSessionModel(deps, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// requirePTY turns away clients without a terminal before Bubble Tea starts.
func (s *SSHServer) requirePTY(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if _, _, ok := sess.Pty(); !ok {
			s.logger.Warn("no PTY requested", "user", sess.User())
			wish.Fatalln(sess, "Credit Balloons needs a terminal, connect with: ssh -t")
			return
		}
		next(sess)
	}
}

// trackSession logs connects and disconnects with the live session count.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.active.Add(1))
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"remote", remote,
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ListenAndServe serves until ctx is cancelled or the listener fails, then
// shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits briefly for open sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
