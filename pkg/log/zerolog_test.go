package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Warn("cycle rejected",
		String("field", "rp"),
		Int("points", 4),
		Float64("efficiency", 0.5),
		Bool("regen", true),
		Duration("took", 1500*time.Millisecond),
		Err(errors.New("boom")),
		Any("labels", []string{"1", "2"}),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}

	want := map[string]interface{}{
		"level":      "warn",
		"message":    "cycle rejected",
		"field":      "rp",
		"points":     float64(4),
		"efficiency": 0.5,
		"regen":      true,
		"error":      "boom",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
	if _, ok := got["took"]; !ok {
		t.Error("duration field missing")
	}
	if labels, ok := got["labels"].([]interface{}); !ok || len(labels) != 2 {
		t.Errorf("labels = %v, want two entries", got["labels"])
	}
}

func TestConsoleLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(NewConsoleLogger(&buf, zerolog.InfoLevel))

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message written at info level: %q", buf.String())
	}
	l.Info("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Fatalf("info message missing: %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x", Err(errors.New("ignored")))
}
