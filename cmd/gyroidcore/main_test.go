package main

import (
	"testing"

	"github.com/chazu/lignin/pkg/gyroid"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    gyroid.Mode
		wantErr bool
	}{
		{"shell", gyroid.Shell, false},
		{"frame", gyroid.Frame, false},
		{"bogus", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMode(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMode(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
