package excel

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacexdash/internal"
)

// useLogLevel swaps the default logger and captures the standard log output.
func useLogLevel(t *testing.T, level internal.LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevOut := internal.DefaultLogger, log.Writer()
	internal.DefaultLogger = internal.NewLogger(level)
	log.SetOutput(&buf)
	t.Cleanup(func() {
		internal.DefaultLogger = prevLogger
		log.SetOutput(prevOut)
	})
	return &buf
}

func TestLoadingIsSilentAtErrorLevel(t *testing.T) {
	path := writeFile(t, "spacex_launch_dash.csv", launchCSV)
	buf := useLogLevel(t, internal.LogLevelError)

	_, err := NewLaunchLoader(path).ReadLaunches(context.Background())

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestLoadingLogsSummaryAtInfoLevel(t *testing.T) {
	path := writeFile(t, "spacex_launch_dash.csv", launchCSV)
	buf := useLogLevel(t, internal.LogLevelInfo)

	_, err := NewLaunchLoader(path).ReadLaunches(context.Background())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[INFO] [LaunchLoader] Loaded 5 launch records")
	assert.NotContains(t, buf.String(), "[DataReader]")
}
