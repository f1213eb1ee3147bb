package commands

import (
	"context"
	"log/slog"

	"roundtrip/internal/charset"
)

// EncodingsCommand lists the encodings a round trip can use.
type EncodingsCommand struct {
	logger *slog.Logger
}

// NewEncodingsCommand creates a new encodings command.
func NewEncodingsCommand(logger *slog.Logger) *EncodingsCommand {
	return &EncodingsCommand{logger: logger}
}

// EncodingsResult contains the result of the encodings command.
type EncodingsResult struct {
	Names []string
	Count int
}

// Execute runs the encodings command.
func (c *EncodingsCommand) Execute(ctx context.Context) *EncodingsResult {
	names := charset.Available()
	c.logger.DebugContext(ctx, "Listed supported encodings", "count", len(names))
	return &EncodingsResult{
		Names: names,
		Count: len(names),
	}
}
