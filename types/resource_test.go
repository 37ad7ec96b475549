package types

import "testing"

func TestIsProtected(t *testing.T) {
	tests := []struct {
		name   string
		labels map[string]string
		want   bool
	}{
		{"no labels", nil, false},
		{"empty labels", map[string]string{}, false},
		{"other labels only", map[string]string{"team": "data"}, false},
		{"protection label set", map[string]string{"please-do-not-kill-me": "true"}, true},
		{"protection label with arbitrary value", map[string]string{"please-do-not-kill-me": "x"}, true},
		{"protection label with empty value", map[string]string{"please-do-not-kill-me": ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resource{ID: "res-1", Labels: tt.labels}
			if got := r.IsProtected("please-do-not-kill-me"); got != tt.want {
				t.Errorf("IsProtected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInUse(t *testing.T) {
	r := Resource{ID: "disk-1"}
	if r.InUse() {
		t.Error("resource with no users reported in use")
	}

	r.InUseBy = []string{"projects/p/zones/z/instances/vm-1"}
	if !r.InUse() {
		t.Error("resource with users reported not in use")
	}
}
