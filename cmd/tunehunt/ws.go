package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tunehunt/internal/platform/ws"
)

var (
	flagWSAddr    string
	flagWSOrigins []string
)

var wsCmd = &cobra.Command{
	Use:   "ws",
	Short: "Start the websocket server for browser front-ends",
	Long: `Start an HTTP server with a websocket endpoint at /ws and a health
check at /healthz. Every connection runs its own session; the client
renders the msgpack state frames and sends clicks back.

Client frames:
  start, stop, click {id}, click_at {x, y}, mode {mode}, theme {theme}, resize {w, h}

Examples:
  tunehunt ws
  tunehunt ws --addr :9000
  tunehunt ws --origin https://game.example.com`,
	Args: cobra.NoArgs,
	Run:  runWS,
}

func init() {
	wsCmd.Flags().StringVar(&flagWSAddr, "addr", ":8080", "HTTP listen address (host:port)")
	wsCmd.Flags().StringSliceVar(&flagWSOrigins, "origin", nil, "Allowed browser origins (default: any)")
}

func runWS(_ *cobra.Command, _ []string) {
	a := mustLoad(os.Stderr)
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	a.mustStartContent(ctx)

	server := ws.NewServer(ws.Config{
		Settings:       a.settings,
		TickRate:       a.runtime.TickRate,
		AllowedOrigins: flagWSOrigins,
	}, a.pool, a.logger)

	fmt.Printf("Starting TuneHunt websocket server on %s/ws\n", flagWSAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx, flagWSAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
