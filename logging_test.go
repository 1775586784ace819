package shuriken

import "testing"

func TestDefaultLogger_Prefix(t *testing.T) {
	l := NewDefaultLogger("sparks", false)
	if got := l.prefixf("WARN", "spawn %d failed", 3); got != "[sparks] WARN: spawn 3 failed" {
		t.Errorf("unexpected line %q", got)
	}

	bare := NewDefaultLogger("", false)
	if got := bare.prefixf("INFO", "ok"); got != "INFO: ok" {
		t.Errorf("unexpected line %q", got)
	}
}

func TestDefaultLogger_Debug(t *testing.T) {
	l := NewDefaultLogger("", false)
	if l.DebugEnabled() {
		t.Errorf("Expected debug to be off")
	}
	l.SetDebug(true)
	if !l.DebugEnabled() {
		t.Errorf("Expected debug to be on")
	}
}

func TestOrNop(t *testing.T) {
	if orNop(nil) == nil {
		t.Fatal("orNop returned nil")
	}
	l := NewDefaultLogger("", false)
	if orNop(l) != Logger(l) {
		t.Errorf("orNop should pass through a non-nil logger")
	}
}
