package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akorchagin/merge48/internal/config"
	"github.com/akorchagin/merge48/internal/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagServeVariant string
	flagIdleTimeout  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the merge48 SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each connection gets its own game session. Scores are stored
per-server, so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.merge48/host_key

Examples:
  merge48 serve                           # Listen on :23234
  merge48 serve --ssh :2222               # Listen on port 2222
  merge48 serve --variant mission         # Serve the mission variant
  merge48 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeVariant, "variant", "classic", "Variant served to every connection")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if !config.Exists(flagServeVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagServeVariant)
		fmt.Fprintln(os.Stderr, "Run 'merge48 variants' to see available variants.")
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		VariantKey:  flagServeVariant,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting merge48 SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
