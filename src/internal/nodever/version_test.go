package nodever

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Version
	}{
		{
			name:     "bare version",
			input:    "16.3.2",
			expected: Version{16, 3, 2},
		},
		{
			name:     "v prefix",
			input:    "v16.3.2",
			expected: Version{16, 3, 2},
		},
		{
			name:     "partial version",
			input:    "v16.2",
			expected: Version{16, 2},
		},
		{
			name:     "major only",
			input:    "16",
			expected: Version{16},
		},
		{
			name:     "family prefix",
			input:    "node18",
			expected: Version{18},
		},
		{
			name:     "iojs display name",
			input:    "iojs-v3.3.1",
			expected: Version{3, 3, 1},
		},
		{
			name:     "no digits",
			input:    "latest",
			expected: nil,
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "leading zeros",
			input:    "v0.10.48",
			expected: Version{0, 10, 48},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Re-joining components with "." must reproduce the numeric
	// content, ignoring any prefix
	tests := []struct {
		input    string
		expected string
	}{
		{"v16.3.2", "16.3.2"},
		{"16.3.2", "16.3.2"},
		{"node18", "18"},
		{"iojs-v3.3.1", "3.3.1"},
		{"v0.10.48", "0.10.48"},
	}

	for _, tt := range tests {
		got := Parse(tt.input).String()
		if got != tt.expected {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Version
		expected int
	}{
		{"equal", Version{16, 3, 2}, Version{16, 3, 2}, 0},
		{"less on major", Version{14, 9, 9}, Version{16, 0, 0}, -1},
		{"greater on minor", Version{16, 3, 0}, Version{16, 1, 9}, 1},
		{"greater on patch", Version{16, 3, 2}, Version{16, 3, 1}, 1},
		{"shorter agrees with longer", Version{16, 3}, Version{16, 3, 2}, 0},
		{"longer agrees with shorter", Version{16, 3, 2}, Version{16}, 0},
		{"shorter differs", Version{16, 4}, Version{16, 3, 2}, 1},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestPartialMatch(t *testing.T) {
	tests := []struct {
		name      string
		request   Version
		candidate Version
		expected  bool
	}{
		{"exact", Version{16, 3, 2}, Version{16, 3, 2}, true},
		{"major prefix", Version{16}, Version{16, 3, 2}, true},
		{"major minor prefix", Version{16, 3}, Version{16, 3, 2}, true},
		{"differing major", Version{14}, Version{16, 3, 2}, false},
		{"differing minor", Version{16, 2}, Version{16, 3, 2}, false},
		{"request longer than candidate", Version{16, 3, 2}, Version{16, 3}, false},
		{"empty request matches anything", nil, Version{16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PartialMatch(tt.request, tt.candidate)
			if got != tt.expected {
				t.Errorf("PartialMatch(%v, %v) = %v, want %v",
					tt.request, tt.candidate, got, tt.expected)
			}
		})
	}
}

func TestPartialMatchReflexive(t *testing.T) {
	versions := []Version{
		{16},
		{16, 3},
		{16, 3, 2},
		{0, 10, 48},
	}
	for _, v := range versions {
		if !PartialMatch(v, v) {
			t.Errorf("PartialMatch(%v, %v) = false, want true", v, v)
		}
	}
}
