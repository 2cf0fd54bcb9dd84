package routes

import "testing"

func TestCustodyToCriminalStatus(t *testing.T) {
	tests := []struct {
		custody string
		status  string
		ok      bool
	}{
		{"in_custody", "in_custody", true},
		{"on_bail", "on_bail", true},
		{"released", "released", true},
		{"escaped", "escaped", true},
		{"transferred", "in_custody", true},
		{"pending_trial", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.custody, func(t *testing.T) {
			status, ok := custodyToCriminalStatus(tt.custody)
			if ok != tt.ok {
				t.Fatalf("custodyToCriminalStatus(%q) ok = %v, want %v", tt.custody, ok, tt.ok)
			}
			if status != tt.status {
				t.Fatalf("custodyToCriminalStatus(%q) = %q, want %q", tt.custody, status, tt.status)
			}
		})
	}
}
