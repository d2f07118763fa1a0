package utils

import "testing"

func TestCleanModelText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain answer",
			input: "Cardiology",
			want:  "Cardiology",
		},
		{
			name:  "surrounding whitespace",
			input: "  Dermatology \n",
			want:  "Dermatology",
		},
		{
			name:  "trailing period",
			input: "Neurology.",
			want:  "Neurology",
		},
		{
			name:  "bold markdown",
			input: "**General Practice**",
			want:  "General Practice",
		},
		{
			name:  "code fence",
			input: "```\nOncology\n```",
			want:  "Oncology",
		},
		{
			name:  "answer with trailing explanation",
			input: "Gastroenterology\nThis specialty deals with digestive issues.",
			want:  "Gastroenterology",
		},
		{
			name:  "internal punctuation survives",
			input: "Ear, Nose and Throat",
			want:  "Ear, Nose and Throat",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t ",
			want:  "",
		},
		{
			name:  "italic with trailing period",
			input: "*Psychiatry*.",
			want:  "Psychiatry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanModelText(tt.input)
			if got != tt.want {
				t.Errorf("CleanModelText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
