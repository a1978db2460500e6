package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
	"github.com/anatolykoptev/go_tiktok/internal/settings"
	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

var (
	asJSON bool
	cursor int64
)

// newClient is swapped in tests.
var newClient = func(ctx context.Context, s settings.Settings) (*tiktok.Client, error) {
	transport, err := engine.NewTransport(s.Engine)
	if err != nil {
		return nil, err
	}
	return tiktok.New(s.Client, transport, engine.NewStore(ctx, s.Engine)), nil
}

var (
	cfg    settings.Settings
	client *tiktok.Client
)

var rootCmd = &cobra.Command{
	Use:           "tiktok-cli",
	Short:         "tiktok-cli queries the TikTok web API for hashtags, users, feeds and videos.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := newClient(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init client: %w", err)
		}
		client = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the raw result envelope as JSON.")
}

// ExecuteContext runs the CLI with s as configuration.
func ExecuteContext(ctx context.Context, s settings.Settings) error {
	cfg = s
	return rootCmd.ExecuteContext(ctx)
}

// run bounds one client call by the configured request budget and prints
// its envelope.
func run(cmd *cobra.Command, call func(ctx context.Context) (*tiktok.Envelope, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
	defer cancel()
	env, err := call(ctx)
	if err != nil {
		return err
	}
	return printEnvelope(cmd.OutOrStdout(), env, asJSON)
}

func addCursorFlag(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&cursor, "cursor", 0, "Pagination cursor (maxCursor of the previous page).")
}
