package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kexlab/ecdh-go/pkg/ecdh/logging"
)

func capturing(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logging.New(base), &buf
}

func TestNewNilBindsDefault(t *testing.T) {
	require.NotNil(t, logging.New(nil))
}

func TestWithPropagatesGroupAttr(t *testing.T) {
	logger, buf := capturing(t)

	logger.With(logging.Group("ecp256bp")).Warn(context.Background(), "ECDH public value is malformed")

	out := buf.String()
	require.Contains(t, out, "group=ecp256bp")
	require.Contains(t, out, "ECDH public value is malformed")
}

func TestWireLenGroupsBothLengths(t *testing.T) {
	logger, buf := capturing(t)

	logger.Warn(context.Background(), "ECDH public value has wrong length", logging.WireLen(63, 64))

	out := buf.String()
	require.Contains(t, out, "wire.got_bytes=63")
	require.Contains(t, out, "wire.want_bytes=64")
}

func TestRedactedNeverCarriesValue(t *testing.T) {
	logger, buf := capturing(t)

	logger.Debug(context.Background(), "ECDH shared secret computed", logging.Redacted("secret"))

	out := buf.String()
	require.Contains(t, out, "secret="+logging.Placeholder())
}
