package errors

import (
	"strings"
	"testing"
)

func TestValidateFieldName(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
	}{
		{"simple", "Gender", false},
		{"with space inside", "Treatment Status", false},
		{"empty", "", true},
		{"leading space", " Gender", true},
		{"control char", "Gen\x00der", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldName(tt.field)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateFieldName(%q) error = %v, wantErr %v", tt.field, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidField) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidField)
			}
		})
	}
}

func TestValidateKeyList(t *testing.T) {
	if err := ValidateKeyList("inner", []string{"Yes", "No"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateKeyList("inner", nil); err != nil {
		t.Errorf("empty list should be valid: %v", err)
	}
	if err := ValidateKeyList("inner", []string{"Yes", "Yes"}); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("duplicate keys: got %v", err)
	}
	if err := ValidateKeyList("inner", []string{"Yes", " "}); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("blank key: got %v", err)
	}
}
