package collector

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"running", "Running"},
		{"sleep", "Sleeping"},
		{"idle", "Idle"},
		{"stop", "Stopped"},
		{"zombie", "Zombie"},
		{"wait", "Waiting"},
		{"lock", "Locked"},
		{"blocked", "Blocked"},
		// Open set: unrecognized values pass through capitalized.
		{"parked", "Parked"},
		{"disk-sleep", "Disk-sleep"},
		// Whitespace and case are folded before lookup.
		{" Running ", "Running"},
		{"SLEEP", "Sleeping"},
		// Empty status (common on Windows).
		{"", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.raw+"_to_"+tt.want, func(t *testing.T) {
			if got := normalizeStatus(tt.raw); got != tt.want {
				t.Errorf("normalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
