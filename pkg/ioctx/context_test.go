package ioctx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, io.Discard, StdoutFromContext(ctx))
	require.Equal(t, io.Discard, StderrFromContext(ctx))
	require.Equal(t, slog.Default(), LoggerFromContext(ctx))
}

func TestRoundTrip(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&errOut, nil))

	ctx := StdoutToContext(context.Background(), &out)
	ctx = StderrToContext(ctx, &errOut)
	ctx = LoggerToContext(ctx, logger)

	_, _ = StdoutFromContext(ctx).Write([]byte("module"))
	require.Equal(t, "module", out.String())
	require.Same(t, &errOut, StderrFromContext(ctx))
	require.Same(t, logger, LoggerFromContext(ctx))
}
