package stream

import "context"

const defaultHelpText = "This is a text-only response. " +
	"Try asking for 'a card', 'two cards', 'show me loading states', " +
	"'show me a table', or 'show me a chart' to see progressive component " +
	"rendering in action!"

// defaultText streams the fixed help message word-by-word when no pattern
// matches.
func (s *Streamer) defaultText(ctx context.Context, emit Emitter) error {
	return s.words(ctx, emit, defaultHelpText)
}
