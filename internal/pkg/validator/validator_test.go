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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "18:05"}
	invalid := []string{"24:00", "9:30", "09:60", "0930", "09:3", "", "09:30:00"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(12.9716) || !IsValidLongitude(77.5946) {
		t.Error("expected Bengaluru coordinates to be valid")
	}
	if IsValidLatitude(-90.5) || IsValidLatitude(91) {
		t.Error("latitude outside [-90, 90] must be invalid")
	}
	if IsValidLongitude(-180.1) || IsValidLongitude(181) {
		t.Error("longitude outside [-180, 180] must be invalid")
	}
	if !IsValidLatitude(-90) || !IsValidLongitude(180) {
		t.Error("boundary coordinates must be valid")
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-0042", "HR-123", "ENGR-999999"}
	invalid := []string{"emp-0042", "E-123", "EMP0042", "EMP-12", "EMP-1234567", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	if _, ok := IsValidDateTime("2024-01-15T10:30:00+05:30"); !ok {
		t.Error("expected IST timestamp to be valid")
	}
	if _, ok := IsValidDateTime("2024-01-15T10:30:00Z"); !ok {
		t.Error("expected UTC timestamp to be valid")
	}
	if _, ok := IsValidDateTime("2024-01-15 10:30:00"); ok {
		t.Error("expected space-separated timestamp to be invalid")
	}
}
