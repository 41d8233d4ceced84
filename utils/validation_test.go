package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+12025551234", "2025551234", "+34 912 345 678", "(202) 555-1234"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) should be true", phone)
		}
	}

	invalid := []string{"", "abc", "+0123", "12"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) should be false", phone)
		}
	}
}

func TestValidateTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "17:00", "23:59"}
	for _, s := range valid {
		if !ValidateTimeOfDay(s) {
			t.Errorf("ValidateTimeOfDay(%q) should be true", s)
		}
	}

	invalid := []string{"", "24:00", "9:00", "12:60", "12:5", "noon", "12-30"}
	for _, s := range invalid {
		if ValidateTimeOfDay(s) {
			t.Errorf("ValidateTimeOfDay(%q) should be false", s)
		}
	}
}
