package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	if err := Load("/nonexistent/.env"); err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	content := "DOCWRIGHT_TEST_A=hello\nexport DOCWRIGHT_TEST_B=\"quoted value\"\n# comment\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DOCWRIGHT_TEST_A", "")
	t.Setenv("DOCWRIGHT_TEST_B", "")
	_ = os.Unsetenv("DOCWRIGHT_TEST_A")
	_ = os.Unsetenv("DOCWRIGHT_TEST_B")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("DOCWRIGHT_TEST_A"); got != "hello" {
		t.Errorf("DOCWRIGHT_TEST_A = %q, want %q", got, "hello")
	}
	if got := os.Getenv("DOCWRIGHT_TEST_B"); got != "quoted value" {
		t.Errorf("DOCWRIGHT_TEST_B = %q, want %q", got, "quoted value")
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DOCWRIGHT_TEST_C=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DOCWRIGHT_TEST_C", "env")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("DOCWRIGHT_TEST_C"); got != "env" {
		t.Errorf("DOCWRIGHT_TEST_C = %q, environment should win", got)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{name: "plain", line: "KEY=value", wantKey: "KEY", wantValue: "value", wantOK: true},
		{name: "export prefix", line: "export KEY=value", wantKey: "KEY", wantValue: "value", wantOK: true},
		{name: "single quotes", line: "KEY='a b'", wantKey: "KEY", wantValue: "a b", wantOK: true},
		{name: "no equals", line: "not-a-pair", wantOK: false},
		{name: "empty key", line: "=value", wantOK: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			key, value, ok := parseLine(testCase.line)
			if ok != testCase.wantOK {
				t.Fatalf("parseLine(%q) ok = %v, want %v", testCase.line, ok, testCase.wantOK)
			}
			if ok && (key != testCase.wantKey || value != testCase.wantValue) {
				t.Errorf("parseLine(%q) = %q, %q; want %q, %q", testCase.line, key, value, testCase.wantKey, testCase.wantValue)
			}
		})
	}
}
