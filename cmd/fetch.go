package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PawelGambus/rcn-wroclaw/internal/gml"
	"github.com/PawelGambus/rcn-wroclaw/internal/rcn"
	"github.com/PawelGambus/rcn-wroclaw/internal/wfs"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch lokal transactions and print the summary table",
	Long:  "Runs one GetFeature query against the RCN WFS endpoint, extracts lokal transaction records and prints them with price-per-m2 statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd)
	},
}

func init() { rootCmd.AddCommand(fetchCmd) }

// runFetch executes the whole pipeline: one GetFeature query, record
// extraction, report rendering. Any failure aborts before printing.
func runFetch(cmd *cobra.Command) error {
	ctx := cmd.Context()
	log := zap.L().With(zap.String("command", "fetch"))

	client := wfs.NewClient(wfs.ClientOptions{
		BaseURL:   cfg.WFS.BaseURL,
		Timeout:   cfg.WFS.Timeout(),
		UserAgent: cfg.WFS.UserAgent,
	})
	req := wfs.Request{Count: cfg.WFS.Count, Bounds: wfs.WroclawBounds()}

	fmt.Println("Fetching RCN data for Wroclaw...")
	log.Debug("querying WFS endpoint",
		zap.String("base_url", cfg.WFS.BaseURL),
		zap.Int("count", cfg.WFS.Count),
	)

	body, err := client.GetFeature(ctx, req)
	if err != nil {
		return eris.Wrap(err, "fetch")
	}

	features, err := gml.Parse(body)
	if err != nil {
		return eris.Wrap(err, "fetch")
	}

	txs := make([]rcn.Transaction, 0, len(features))
	for _, f := range features {
		txs = append(txs, rcn.FromLokal(f))
	}

	renderReport(os.Stdout, txs)
	return nil
}
