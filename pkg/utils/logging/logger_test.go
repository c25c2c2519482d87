package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kioku/pkg/utils/logging"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("info", buf)
	gt.V(t, logger).NotNil()

	logger.Info("memo file loaded")
	gt.S(t, buf.String()).Contains("memo file loaded")
}

func TestLevels(t *testing.T) {
	testCases := []struct {
		level       string
		expectDebug bool
		expectInfo  bool
		expectWarn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"warning", false, false, true},
		{"error", false, false, false},
		{"WARN", false, false, true},   // Case-insensitive
		{"invalid", false, true, true}, // Defaults to info
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.New(tc.level, buf)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			output := buf.String()
			if tc.expectDebug {
				gt.S(t, output).Contains("debug message")
			} else {
				gt.S(t, output).NotContains("debug message")
			}
			if tc.expectInfo {
				gt.S(t, output).Contains("info message")
			} else {
				gt.S(t, output).NotContains("info message")
			}
			if tc.expectWarn {
				gt.S(t, output).Contains("warn message")
			} else {
				gt.S(t, output).NotContains("warn message")
			}
			gt.S(t, output).Contains("error message")
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("debug", buf).With("memo_file", "memos.json")

	ctx := logging.With(context.Background(), logger)
	retrieved := logging.From(ctx)
	gt.Equal(t, retrieved, logger)

	retrieved.Warn("memo file is not a valid collection, starting empty")
	output := buf.String()
	gt.S(t, output).Contains("starting empty")
	gt.S(t, output).Contains("memos.json")
}

func TestFromWithoutLogger(t *testing.T) {
	// Without a logger in the context, From falls back to the default
	logger := logging.From(context.Background())
	gt.V(t, logger).NotNil()
}

func TestSetDefault(t *testing.T) {
	original := logging.Default()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	logging.SetDefault(logging.New("debug", buf))

	retrieved := logging.Default()
	retrieved.Info("default swapped")
	gt.S(t, buf.String()).Contains("default swapped")
}
