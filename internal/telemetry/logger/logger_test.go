package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, level string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: level, Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &m); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, lines[len(lines)-1])
	}
	return m
}

func TestJSONOutput(t *testing.T) {
	l, buf := newTestLogger(t, "info")
	l.Info("user online", "uid", int64(42))

	m := lastLine(t, buf)
	if m["msg"] != "user online" {
		t.Errorf("msg = %v", m["msg"])
	}
	if m["uid"] != float64(42) {
		t.Errorf("uid = %v", m["uid"])
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(t, "warn")
	l.Info("should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %s", buf.String())
	}
	l.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn was dropped")
	}
}

func TestSetLevelIsDynamic(t *testing.T) {
	l, buf := newTestLogger(t, "info")
	defer SetLevel("info")

	l.Debug("dropped")
	if buf.Len() != 0 {
		t.Fatal("debug logged at info level")
	}
	SetLevel("debug")
	l.Debug("kept")
	if buf.Len() == 0 {
		t.Fatal("debug dropped after SetLevel(debug)")
	}
	if GetLevel() != "debug" {
		t.Errorf("GetLevel = %q", GetLevel())
	}
}

func TestWithAddsFields(t *testing.T) {
	l, buf := newTestLogger(t, "info")
	l.With("session_id", "cmss-1").Info("bound")

	m := lastLine(t, buf)
	if m["session_id"] != "cmss-1" {
		t.Errorf("session_id = %v", m["session_id"])
	}
}

func TestRedactsCredentialKeys(t *testing.T) {
	l, buf := newTestLogger(t, "info")
	l.Info("login attempt", "token", "abcdef123456", "pwd", "hunter2", "uid", int64(1))

	m := lastLine(t, buf)
	if m["token"] != redactedValue {
		t.Errorf("token not redacted: %v", m["token"])
	}
	if m["pwd"] != redactedValue {
		t.Errorf("pwd not redacted: %v", m["pwd"])
	}
	if m["uid"] != float64(1) {
		t.Errorf("uid mangled: %v", m["uid"])
	}
}

func TestMaskToken(t *testing.T) {
	if got := MaskToken("abcdefghij"); got != "abc...hij" {
		t.Errorf("MaskToken = %q", got)
	}
	if got := MaskToken("abc"); got != "***" {
		t.Errorf("MaskToken short = %q", got)
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	if SessionIDFromContext(ctx) != "" || UIDFromContext(ctx) != 0 {
		t.Fatal("empty context returned values")
	}

	ctx = WithSessionID(ctx, "cmss-9")
	ctx = WithUID(ctx, 77)
	if got := SessionIDFromContext(ctx); got != "cmss-9" {
		t.Errorf("SessionIDFromContext = %q", got)
	}
	if got := UIDFromContext(ctx); got != 77 {
		t.Errorf("UIDFromContext = %d", got)
	}

	l, _ := newTestLogger(t, "info")
	ctx = WithLogger(ctx, l)
	if FromContext(ctx) != l {
		t.Error("FromContext did not return the attached logger")
	}
	if FromContext(context.Background()) == nil {
		t.Error("FromContext fallback is nil")
	}
}
