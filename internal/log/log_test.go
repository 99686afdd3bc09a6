// SPDX-License-Identifier: MIT
package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-groebner/groebner/internal/log"
)

func TestSubsystemTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithHandler(slog.NewJSONHandler(&buf, nil))
	sub := l.Subsystem("spair")
	sub.Info("hello", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "spair", rec["subsystem"])
	require.Equal(t, "hello", rec["msg"])
	require.EqualValues(t, 3, rec["n"])
}

func TestDefaultReturnsNonNilLogger(t *testing.T) {
	require.NotNil(t, log.Default())
}

func TestSetDefaultReplacesGlobal(t *testing.T) {
	original := log.Default()
	defer log.SetDefault(original)

	var buf bytes.Buffer
	custom := log.NewWithHandler(slog.NewJSONHandler(&buf, nil))
	log.SetDefault(custom)
	require.Same(t, custom, log.Default())
}

func TestWithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithHandler(slog.NewJSONHandler(&buf, nil))
	l.With("run", "42").Info("started")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "42", rec["run"])
}
