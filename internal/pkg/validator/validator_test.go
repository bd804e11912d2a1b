package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	}
	invalid := []string{
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"not-a-uuid",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2025-01-31"); !ok {
		t.Error("ParseDate(\"2025-01-31\") failed, want success")
	}
	for _, bad := range []string{"31-01-2025", "2025-13-01", "2025-01-32", "yesterday", ""} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) succeeded, want failure", bad)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	valid := []string{"0", "10", "10.50", "99999999.99"}
	invalid := []string{"-1", "-0.01", "ten", "", "1,000"}
	for _, s := range valid {
		if !IsValidAmount(s) {
			t.Errorf("IsValidAmount(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidAmount(s) {
			t.Errorf("IsValidAmount(%q) = true, want false", s)
		}
	}
}
