package errors

import (
	"strings"
	"testing"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"kegg pathway", "00650", false},
		{"kegg compound", "C00003", false},
		{"string protein", "224324.AQ_626", false},
		{"kegg protein", "aae:aq_626", false},
		{"enzyme", "E2.4.1.82", false},
		{"uniprot", "UNIPROT:Q93015", false},
		{"ncbi gi", "ncbi-gi:326314893", false},

		{"empty", "", true},
		{"space", "C00003 C00004", true},
		{"tab", "C00003\t", true},
		{"newline", "C00003\n", true},
		{"null byte", "C\x0000003", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateIdentifier(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateMapName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "map", false},
		{"with directory", "out/metabolism", false},
		{"with dots", "run.2024.map", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"control char", "map\x01", true},
		{"trailing slash", "out/", true},
		{"trailing backslash", "out\\", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMapName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMapName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
