package main

import (
	"context"
	"fmt"
	"os"

	"github.com/anatolykoptev/go_tiktok/cmd/tiktok-cli/commands"
	"github.com/anatolykoptev/go_tiktok/internal/settings"
)

func main() {
	os.Exit(run())
}

// run keeps deferred cleanup ahead of os.Exit.
func run() int {
	s := settings.Load()
	logs := s.SetupLogging(os.Stderr)
	defer logs.Close()

	if err := commands.ExecuteContext(context.Background(), s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
