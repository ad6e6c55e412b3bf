package logging

import "testing"

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init("svc", "development", "loud"); err == nil {
		t.Fatal("Expected an error for an unknown level")
	}
}

func TestInitAcceptsLevels(t *testing.T) {
	defer UseNop()
	for _, lvl := range []string{"", "debug", "info", "warn", "error"} {
		if err := Init("svc", "production", lvl); err != nil {
			t.Errorf("Init(%q) returned %v", lvl, err)
		}
	}
}

func TestGetLoggerFallsBackWhenUninitialized(t *testing.T) {
	globalLogger = nil
	if GetLogger() == nil {
		t.Fatal("Expected a fallback logger")
	}
	UseNop()
}
