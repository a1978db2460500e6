package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
	"github.com/anatolykoptev/go_tiktok/internal/toolutil"
)

func init() {
	addCursorFlag(tagFeedCmd)
	addCursorFlag(trendingCmd)
	rootCmd.AddCommand(tagCmd, tagFeedCmd, trendingCmd)
}

var tagCmd = &cobra.Command{
	Use:   "tag <name>",
	Short: "Prints a hashtag and its stats.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context) (*tiktok.Envelope, error) {
			return client.ResolveTag(ctx, toolutil.TrimTag(args[0]))
		})
	},
}

var tagFeedCmd = &cobra.Command{
	Use:   "tag-feed <name> [--cursor <n>]",
	Short: "Prints one page of videos for a hashtag.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context) (*tiktok.Envelope, error) {
			return client.TagFeed(ctx, toolutil.TrimTag(args[0]), toolutil.NormCursor(cursor))
		})
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending [--cursor <n>]",
	Short: "Prints one page of the trending feed.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context) (*tiktok.Envelope, error) {
			return client.TrendingFeed(ctx, toolutil.NormCursor(cursor))
		})
	},
}
