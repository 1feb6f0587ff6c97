package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"
)

type entry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func decode(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()

	var entries []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("line %q is not JSON: %v", line, err)
		}
		entries = append(entries, e)
	}

	return entries
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	l.Debug("dropped", nil)
	l.Info("starting server", map[string]string{"addr": ":8080"})
	l.Error(errors.New("boom"), nil)

	entries := decode(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	info := entries[0]
	if info.Level != "INFO" || info.Message != "starting server" || info.Properties["addr"] != ":8080" {
		t.Errorf("unexpected info entry %+v", info)
	}
	if info.Time != "2024-05-01T10:00:00Z" {
		t.Errorf("time = %q", info.Time)
	}
	if info.Trace != "" {
		t.Error("info entry carries a trace")
	}

	if entries[1].Level != "ERROR" || entries[1].Trace == "" {
		t.Errorf("error entry should carry a trace: %+v", entries[1])
	}
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, DebugLevel).Debug("request completed", nil)

	entries := decode(t, &buf)
	if len(entries) != 1 || entries[0].Level != "DEBUG" {
		t.Errorf("entries = %+v, want one DEBUG entry", entries)
	}
}

func TestOffLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, OffLevel)
	l.Info("nothing", nil)
	l.Error(errors.New("nothing"), nil)

	if buf.Len() != 0 {
		t.Errorf("off logger wrote %q", buf.String())
	}
}

func TestWriteBacksStdLogger(t *testing.T) {
	var buf bytes.Buffer
	std := log.New(New(&buf, InfoLevel), "", 0)
	std.Print("http: TLS handshake error")

	entries := decode(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Level != "ERROR" || entries[0].Message != "http: TLS handshake error" {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}
