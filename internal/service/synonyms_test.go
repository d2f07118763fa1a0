package service

import "testing"

func TestResolveSynonyms(t *testing.T) {
	tests := []struct {
		specialty string
		want      []string
	}{
		{"general practice", []string{"General Medicine", "General Surgery"}},
		{"General Practice", []string{"General Medicine", "General Surgery"}},
		{"  ENT  ", []string{"ENT"}},
		{"cardiology", []string{"Cardiology"}},
		{"astrology", nil},
	}

	for _, tt := range tests {
		got := resolveSynonyms(tt.specialty)
		if len(got) != len(tt.want) {
			t.Errorf("resolveSynonyms(%q) = %v, want %v", tt.specialty, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("resolveSynonyms(%q)[%d] = %q, want %q", tt.specialty, i, got[i], tt.want[i])
			}
		}
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Otolaryngology", "ENT"},
		{"family medicine", "General Practice"},
		{"Paediatrics", "Pediatrics"},
		{"Cardiology", "Cardiology"},
		{"Something Unmapped", "Something Unmapped"},
	}

	for _, tt := range tests {
		if got := normalizeLabel(tt.label); got != tt.want {
			t.Errorf("normalizeLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
