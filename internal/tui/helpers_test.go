package tui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-48 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTime(tt.t); got != tt.want {
				t.Errorf("formatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTimeOldDatesUseMonth(t *testing.T) {
	old := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := formatTime(old); got != "Mar 2023" {
		t.Errorf("formatTime(old) = %q, want %q", got, "Mar 2023")
	}
}

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is a longer string", 10, "this is a…"},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := truncStr(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestFormatNum(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{870, "870"},
		{999, "999"},
		{1000, "1.0k"},
		{2400, "2.4k"},
		{15500, "15.5k"},
	}
	for _, tt := range tests {
		if got := formatNum(tt.in); got != tt.want {
			t.Errorf("formatNum(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "one\ntwo\nthree\nfour\n"

	got := truncateToHeight(s, 2)
	if got != "one\ntwo\n" {
		t.Errorf("truncateToHeight(2) = %q, want %q", got, "one\ntwo\n")
	}

	if got := truncateToHeight(s, 10); got != s {
		t.Errorf("truncateToHeight(10) = %q, want unchanged", got)
	}
	if got := truncateToHeight(s, 0); got != s {
		t.Errorf("truncateToHeight(0) = %q, want unchanged", got)
	}

	if lines := strings.Count(truncateToHeight(s, 3), "\n"); lines != 3 {
		t.Errorf("truncateToHeight(3) kept %d lines, want 3", lines)
	}
}
