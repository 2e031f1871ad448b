package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServePack   string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so others can play over the network.

Players connect with a plain SSH client; the SSH command selects the pack:

  ssh -p 23234 yourhost            # play the default pack
  ssh -p 23234 yourhost classic    # play the classic pack

Examples:
  sokoban serve
  sokoban serve --ssh :2222 --pack classic
  sokoban serve --host-key ./host_key --idle-timeout 10m`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key path (default: ~/.sokoban/host_key)")
	serveCmd.Flags().StringVar(&flagServePack, "pack", "tutorial", "Default pack for connecting players")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close idle connections after this long")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = cfg.Database.Path
	srvCfg.PacksDir = config.ExpandPath(cfg.Packs.Dir)
	srvCfg.Pack = flagServePack
	srvCfg.HistoryCap = cfg.History.Capacity
	srvCfg.IdleTimeout = flagIdleTimeout

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
