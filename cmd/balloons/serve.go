package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/credit-balloons/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagQR          bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets people connect and play.

Each SSH connection gets its own session with a mode picker menu.
Runs are stored per server (everyone shares the same best runs).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  balloons serve                           # Listen on :23234 with auto-generated key
  balloons serve --ssh :2222               # Listen on port 2222
  balloons serve --host-key ./my_host_key  # Use specific host key
  balloons serve --qr                      # Print a QR code of the connect command

Players can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagQR, "qr", false, "Print a QR code of the connect command")
	addGameFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	server, err := tui.NewSSHServer(serverConfig(), newLogger(os.Stderr, "balloons-ssh"))
	if err != nil {
		return err
	}

	connect := connectCommand(server.Addr())
	fmt.Printf("Starting Credit Balloons SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connect)
	if flagQR {
		printQR(connect)
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// serverConfig overlays the command line on the server defaults.
func serverConfig() tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	cfg.HostKeyPath = flagHostKey
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// connectCommand builds the ssh command line players type for addr.
func connectCommand(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh localhost -p 23234"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}

func printQR(content string) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not build QR code: %v\n", err)
		return
	}
	fmt.Println(qr.ToSmallString(false))
}
