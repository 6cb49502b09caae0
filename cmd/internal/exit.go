package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	Fecho(os.Stderr, msg, args...)
}

// Fecho will emit the given message to w, adding a trailing newline if needed.
func Fecho(w io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, msg, args...)
}
