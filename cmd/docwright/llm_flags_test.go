package main

import (
	"strings"
	"testing"
)

func TestValidateLLMFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   llmFlags
		wantErr string
	}{
		{
			name:  "defaults are valid",
			flags: llmFlags{model: "local", timeout: 120},
		},
		{
			name:  "explicit temperature",
			flags: llmFlags{model: "sonnet", temperature: 0.7, timeout: 60},
		},
		{
			name:    "negative temperature",
			flags:   llmFlags{timeout: 120, temperature: -0.1},
			wantErr: "temperature",
		},
		{
			name:    "temperature too high",
			flags:   llmFlags{timeout: 120, temperature: 2.5},
			wantErr: "temperature",
		},
		{
			name:    "zero timeout",
			flags:   llmFlags{timeout: 0},
			wantErr: "timeout",
		},
		{
			name:    "negative max tokens",
			flags:   llmFlags{timeout: 120, maxTokens: -1},
			wantErr: "max-tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMFlags(tt.flags)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateLLMFlags() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestChangesetCommand_InvalidBump(t *testing.T) {
	_, _, err := runCommand(t, "changeset", "--bump", "gigantic")
	if err == nil {
		t.Fatal("expected error for invalid bump level")
	}
	if !strings.Contains(err.Error(), "invalid bump level") {
		t.Errorf("error = %q, want bump validation message", err.Error())
	}
}

func TestCheckCommand_InvalidTimeout(t *testing.T) {
	_, _, err := runCommand(t, "check", "--timeout", "0")
	if err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("error = %q, want timeout validation message", err.Error())
	}
}
