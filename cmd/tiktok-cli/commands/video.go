package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

func init() {
	rootCmd.AddCommand(videoCmd)
}

var videoCmd = &cobra.Command{
	Use:   "video <id|url>",
	Short: "Prints a single video. Accepts a numeric id, a short-link code or a tiktok.com URL.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := strings.TrimSpace(args[0])
		return run(cmd, func(ctx context.Context) (*tiktok.Envelope, error) {
			if strings.Contains(arg, "://") {
				return client.FetchVideoByURL(ctx, arg)
			}
			return client.FetchVideoByID(ctx, arg)
		})
	},
}
