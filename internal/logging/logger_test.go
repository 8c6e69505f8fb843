package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf})

	logger.Info("applying configuration", "interface", "eth0")

	out := buf.String()
	if !strings.Contains(out, "[info]") {
		t.Errorf("output missing level marker: %q", out)
	}
	if !strings.Contains(out, "applying configuration") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "interface=eth0") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestComponentPromotion(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf})

	logger.WithComponent("apply").Info("done")

	out := buf.String()
	if !strings.Contains(out, "apply: done") {
		t.Errorf("component not promoted to header: %q", out)
	}
	if strings.Contains(out, "component=") {
		t.Errorf("component should not appear as key=value: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn message missing: %q", out)
	}

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("SetLevel did not take effect: %q", buf.String())
	}
}

func TestQuotedAttrValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf})

	logger.Error("failed", "error", "no such file or directory")

	if !strings.Contains(buf.String(), `error="no such file or directory"`) {
		t.Errorf("multi-word value not quoted: %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf, JSON: true})

	logger.Info("hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("unexpected JSON output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
