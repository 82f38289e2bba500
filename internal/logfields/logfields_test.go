package logfields

import (
	"fmt"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "abc123", RunID("abc123")},
		{"Command", KeyCommand, "npm run dev", Command("npm run dev")},
		{"Script", KeyScript, "export", Script("export")},
		{"Manager", KeyManager, "pnpm", Manager("pnpm")},
		{"Path", KeyPath, "/tmp/deck.yaml", Path("/tmp/deck.yaml")},
		{"Dir", KeyDir, "/tmp/deck", Dir("/tmp/deck")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestErrorHelper(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("nil error should render empty, got %q", got)
	}
	if got := Error(fmt.Errorf("boom")).Value.String(); got != "boom" {
		t.Fatalf("expected boom, got %q", got)
	}
}

func TestExitCodeHelper(t *testing.T) {
	a := ExitCode(7)
	if a.Key != KeyExitCode {
		t.Fatalf("expected key %s, got %s", KeyExitCode, a.Key)
	}
	if a.Value.Int64() != 7 {
		t.Fatalf("expected 7, got %d", a.Value.Int64())
	}
}
