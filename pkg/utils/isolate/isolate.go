package isolate

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/goerr/v2"
)

// Call executes handler synchronously and converts a panic into an error
//
// Parameters:
//   - ctx: passed through to handler unchanged
//   - handler: function to execute
//
// Behavior:
//   - Returns the handler's error as is
//   - Recovers from panics and returns them as an error carrying the stack trace
func Call(ctx context.Context, handler func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.New("panic in isolated call",
				goerr.V("recover", r),
				goerr.V("stack", string(debug.Stack())),
			)
		}
	}()

	return handler(ctx)
}
