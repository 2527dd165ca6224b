package testutil

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/urfave/cli/v3"
)

// Buffer is a bytes.Buffer that's safe to write from a running command while the
// test reads it.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// RunCommand executes a command under a test app and returns everything it wrote.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf Buffer
	err := RunCommandWithContext(context.Background(), t, &buf, command, args...)
	return buf.String(), err
}

// RunCommandWithContext executes a command under a test app with a custom context,
// writing its output to w.
func RunCommandWithContext(ctx context.Context, t *testing.T, w io.Writer, command *cli.Command, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:      "sqltools",
		Writer:    w,
		ErrWriter: w,
		Commands:  []*cli.Command{command},
	}

	return app.Run(ctx, append([]string{"sqltools", command.Name}, args...))
}
