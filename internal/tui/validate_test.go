package tui

import "testing"

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name, number string
		wantErr      error
	}{
		{"Ann", "123", nil},
		{"  Mary Jane  ", " +1 (555) 010-0100 ", nil},
		{"O'Neil", "555.0100", nil},
		{"Jean-Luc", "5550100", nil},
		{"Анна Каренина", "8 800 555-35-35", nil},
		{"", "123", errNameRequired},
		{"   ", "123", errNameRequired},
		{"Ann", "", errNumberRequired},
		{"R2D2", "123", errNameFormat},
		{"-Ann", "123", errNameFormat},
		{"Ann", "call me", errNumberFormat},
		{"Ann", "++123", errNumberFormat},
		{"Ann", "()-", errNumberFormat},
	}
	for _, tc := range tests {
		_, _, err := validateDraft(tc.name, tc.number)
		if err != tc.wantErr {
			t.Errorf("validateDraft(%q, %q) = %v, want %v", tc.name, tc.number, err, tc.wantErr)
		}
	}
}

func TestValidateDraftTrims(t *testing.T) {
	name, number, err := validateDraft("  Ann ", " 123 ")
	if err != nil {
		t.Fatalf("validateDraft: %v", err)
	}
	if name != "Ann" || number != "123" {
		t.Fatalf("got (%q, %q), want (\"Ann\", \"123\")", name, number)
	}
}
