package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sant0-9/querylens/internal/llm"
	"github.com/sant0-9/querylens/internal/logx"
	"github.com/sant0-9/querylens/internal/proxy"
)

// ProxyCmd serves completions so that clients never hold the API key.
var ProxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Serve completions over HTTP with the API key kept server-side",
	Long: `Start an HTTP proxy in front of the configured provider.

Clients configured with provider "proxy" send their requests here; the
upstream API key is read from this process's config or environment only.`,
	RunE: runProxy,
}

var (
	proxyAddr  string
	proxyModel string
)

func init() {
	ProxyCmd.Flags().StringVar(&proxyAddr, "addr", "", "Listen address (overrides proxy.addr)")
	ProxyCmd.Flags().StringVar(&proxyModel, "model", "", "Force this model for every request")
}

func runProxy(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	logx.Init(logx.Options{
		Environment: cfg.Env(),
		Level:       cfg.Log.Level,
		Output:      os.Stderr,
	})

	if cfg.Provider == "proxy" {
		return fmt.Errorf("proxy needs an upstream provider, not %q", cfg.Provider)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	addr := proxyAddr
	if addr == "" {
		addr = cfg.ProxyAddr()
	}

	return proxy.NewServer(provider, proxyModel).ListenAndServe(ctx, addr)
}
