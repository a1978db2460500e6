package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
	"github.com/anatolykoptev/go_tiktok/internal/toolutil"
)

func init() {
	addCursorFlag(userFeedCmd)
	rootCmd.AddCommand(userCmd, userFeedCmd)
}

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Prints a user profile and its stats.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context) (*tiktok.Envelope, error) {
			return client.ResolveUser(ctx, toolutil.TrimHandle(args[0]))
		})
	},
}

var userFeedCmd = &cobra.Command{
	Use:   "user-feed <username> [--cursor <n>]",
	Short: "Prints one page of a user's videos.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context) (*tiktok.Envelope, error) {
			return client.UserFeed(ctx, toolutil.TrimHandle(args[0]), toolutil.NormCursor(cursor))
		})
	},
}
