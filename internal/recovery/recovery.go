// internal/recovery/recovery.go
package recovery

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// exit is replaced in tests
var exit = os.Exit

// HandlePanic should be deferred at the top of main().
// It logs the panic value and stack trace to stderr and exits with code 1.
func HandlePanic() {
	if r := recover(); r != nil {
		Log(os.Stderr, r, debug.Stack())
		exit(1)
	}
}

// Log writes a fatal-level panic record to w without exiting
func Log(w io.Writer, r any, stack []byte) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
	logger.WithLevel(zerolog.FatalLevel).
		Str("panic", fmt.Sprint(r)).
		Str("stack", string(stack)).
		Msg("unrecovered panic")
}
