package version

import "testing"

func TestString(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() { Version, Commit = origVersion, origCommit }()

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "", "dev"},
		{"v1.0.0", "abc", "v1.0.0 (abc)"},
		{"v1.0.0", "0123456789abcdef", "v1.0.0 (0123456)"},
	}

	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
