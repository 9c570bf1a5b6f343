package gfx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_Handle(t *testing.T) {
	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger().Debug("gfx: test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("log output missing message: %q", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestSurfaceAllocationLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx, _ := newTestContext()
	c := MustNewCanvas(ctx, 64, 64, SampleCount1)
	defer c.Close()

	if !strings.Contains(buf.String(), "allocated off-screen surface") {
		t.Errorf("allocation not logged: %q", buf.String())
	}
}

func TestReleaseWhileActiveLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx, _ := newTestContext()
	c := MustNewCanvas(ctx, 64, 64, SampleCount1)
	ctx.SetCanvas(c)
	c.Close()

	if !strings.Contains(buf.String(), "released while active") {
		t.Errorf("active release not warned: %q", buf.String())
	}
}
