package defaults

import (
	"testing"
	"time"
)

func TestTimeoutRelationships(t *testing.T) {
	if ConfigureTimeout >= BuildTimeout {
		t.Error("configure timeout should be shorter than build timeout")
	}
	if InstallTimeout >= BuildTimeout {
		t.Error("install timeout should be shorter than build timeout")
	}
	if CLIRunTimeout <= BuildTimeout {
		t.Error("CLI run timeout must allow at least one full build")
	}
}

func TestTimeoutsArePositive(t *testing.T) {
	for name, d := range map[string]time.Duration{
		"ConfigureTimeout": ConfigureTimeout,
		"BuildTimeout":     BuildTimeout,
		"InstallTimeout":   InstallTimeout,
		"CLIRunTimeout":    CLIRunTimeout,
	} {
		if d <= 0 {
			t.Errorf("%s must be positive", name)
		}
	}
}
