package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("candidate", "fib-doubling"), "candidate", "fib-doubling"},
		{"Int", Int("index", 2), "index", 2},
		{"Uint64", Uint64("seed", 123456), "seed", uint64(123456)},
		{"Float64", Float64("mean", 0.25), "mean", 0.25},
		{"Duration", Duration("elapsed", 3*time.Millisecond), "elapsed", 3 * time.Millisecond},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

// TestNewLogger tests the component-tagged JSON logger.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "timing")
	logger.Info("run finished", String("run_id", "abc"), Int("candidates", 3))

	output := buf.String()
	for _, want := range []string{"timing", "run finished", "abc", `"candidates":3`, `"level":"info"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

// TestZerologAdapter_Error tests the Error method.
func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fields   []Field
		contains []string
	}{
		{"with error", errors.New("result mismatch"), nil, []string{"check failed", "result mismatch", "error"}},
		{"with nil error", nil, nil, []string{"check failed", "error"}},
		{"with fields", errors.New("bad"), []Field{Int("index", 1)}, []string{"bad", `"index":1`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Error("check failed", tt.err, tt.fields...)
			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Levels checks that WithLevel filters debug entries.
func TestZerologAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf)).WithLevel(zerolog.InfoLevel)
	logger.Debug("sample recorded")
	if buf.Len() != 0 {
		t.Errorf("debug entry should be filtered at info level, got: %s", buf.String())
	}

	logger = NewZerologAdapter(zerolog.New(&buf)).WithLevel(zerolog.DebugLevel)
	logger.Debug("sample recorded", Duration("elapsed", time.Millisecond))
	if !strings.Contains(buf.String(), "sample recorded") {
		t.Errorf("debug entry should be written at debug level, got: %s", buf.String())
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	logger.Printf("round %d of %d", 3, 11)
	logger.Println("burn-in", "done")

	output := buf.String()
	if !strings.Contains(output, "round 3 of 11") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "burn-in done") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

// TestStdLoggerAdapter tests the standard library adapter.
func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

	adapter.Info("run started", String("run_id", "r1"))
	adapter.Debug("sample", Int("index", 2))
	adapter.Error("check failed", errors.New("boom"), String("candidate", "sleep"))
	adapter.Printf("value is %d", 123)
	adapter.Println("a", "b")

	output := buf.String()
	for _, want := range []string{
		"[INFO] run started run_id=r1",
		"[DEBUG] sample index=2",
		"[ERROR] check failed: boom candidate=sleep",
		"value is 123",
		"a b",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestLoggerInterface verifies both adapters implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
