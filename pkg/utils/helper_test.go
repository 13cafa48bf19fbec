package utils

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		want         int
	}{
		{"empty uses default", "", 50, 50},
		{"valid value", "25", 50, 25},
		{"zero is kept", "0", 50, 0},
		{"negative uses default", "-3", 50, 50},
		{"malformed uses default", "abc", 50, 50},
		{"float uses default", "2.5", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInt(tt.value, tt.defaultValue); got != tt.want {
				t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if id, ok := ParseID("42"); !ok || id != 42 {
		t.Errorf("ParseID(42) = %d, %v", id, ok)
	}

	for _, value := range []string{"", "abc", "0", "-1", "1.5"} {
		if _, ok := ParseID(value); ok {
			t.Errorf("ParseID(%q) accepted, want rejection", value)
		}
	}
}
