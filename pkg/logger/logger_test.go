package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level Level) *logger {
	return NewWithConfig(Config{Level: level, Writer: buf, NoColor: true}).(*logger)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, WarnLevel)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warnf("vcs=%d", 2)
	l.Error("bad")

	require.Equal(t, "WARN  vcs=2\nERROR bad\n", buf.String())
}

func TestLoggerFieldsAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, DebugLevel)

	l.WithPrefix("bind").
		WithFields(map[string]interface{}{"set": 1, "param": "num_vcs"}).
		WithField("kind", "override").
		Debug("applied")

	require.Equal(t, "DEBUG [bind] kind=override param=num_vcs set=1 applied\n", buf.String())
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, InfoLevel)

	_ = l.WithField("a", 1)
	l.Info("plain")

	require.Equal(t, "INFO  plain\n", buf.String())
}

func TestLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Level: InfoLevel, Writer: &buf}).(*logger)

	l.Error("boom")
	require.Contains(t, buf.String(), "\x1b[")
	require.Contains(t, buf.String(), "boom")
}

func TestLoggerFatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, InfoLevel)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatalf("cannot %s", "continue")

	require.Equal(t, 1, code)
	require.Equal(t, "FATAL cannot continue\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"warn":    WarnLevel,
		"error":   ErrorLevel,
		"fatal":   FatalLevel,
		"verbose": InfoLevel,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestTableFprint(t *testing.T) {
	table := NewTable("NAME", "TYPE", "DEFAULT")
	table.AddRow("num_vcs", "positive_integer", "1")
	table.AddRow("booksim_link_clock", "clock", "")

	var buf bytes.Buffer
	table.Fprint(&buf, false)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"NAME                TYPE              DEFAULT",
		"------------------  ----------------  -------",
		"num_vcs             positive_integer  1",
		"booksim_link_clock  clock             ",
	}, lines)
}

func TestTableWithoutHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewTable().Fprint(&buf, true)
	require.Empty(t, buf.String())
}
