package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "solforge" {
		t.Errorf("CLIName() = %q, want %q", got, "solforge")
	}
	if got := HomeDir(); got != ".solforge" {
		t.Errorf("HomeDir() = %q, want %q", got, ".solforge")
	}
	if got := EnvPrefix(); got != "SOLFORGE" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "SOLFORGE")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"ide_path", "SOLFORGE_IDE_PATH"},
		{"TIMEOUT", "SOLFORGE_TIMEOUT"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
