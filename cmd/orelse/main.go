// Command orelse prints the lines of an input, or the lines of a fallback input when the first one has none.
package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	ctx := context.Background()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logger.Error(ctx, "orelse failed", logging.ErrField(err))
		os.Exit(1)
	}
}
