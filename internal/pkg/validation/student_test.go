package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/classware/studentms/internal/app/models/dto"
	"github.com/classware/studentms/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validRequest() *dto.StudentRequest {
	return &dto.StudentRequest{
		Name:           "John Doe",
		PassportNumber: "A1234567",
		Age:            intPtr(25),
		Email:          strPtr("john.doe@example.com"),
		GraduationYear: intPtr(2025),
	}
}

func violations(t *testing.T, req *dto.StudentRequest) []string {
	t.Helper()

	err := ValidateStudent(req)
	if err == nil {
		return nil
	}

	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *apperrors.ValidationError, got %T: %v", err, err)
	}
	return vErr.Violations
}

func assertViolation(t *testing.T, got []string, want string) {
	t.Helper()
	for _, v := range got {
		if v == want {
			return
		}
	}
	t.Errorf("violations %v do not contain %q", got, want)
}

func TestValidRequestPasses(t *testing.T) {
	if err := ValidateStudent(validRequest()); err != nil {
		t.Errorf("expected valid request to pass, got %v", err)
	}
}

func TestOptionalFieldsMayBeAbsent(t *testing.T) {
	req := validRequest()
	req.Email = nil
	req.GraduationYear = nil

	if err := ValidateStudent(req); err != nil {
		t.Errorf("expected request without optional fields to pass, got %v", err)
	}
}

func TestAgeBoundaries(t *testing.T) {
	cases := []struct {
		age     int
		ok      bool
		message string
	}{
		{15, false, "age: Student must be at least 16 years old"},
		{16, true, ""},
		{100, true, ""},
		{101, false, "age: Age cannot exceed 100"},
	}

	for _, tc := range cases {
		req := validRequest()
		req.Age = intPtr(tc.age)

		got := violations(t, req)
		if tc.ok {
			if len(got) != 0 {
				t.Errorf("age %d: expected no violations, got %v", tc.age, got)
			}
			continue
		}
		assertViolation(t, got, tc.message)
	}
}

func TestGraduationYearBoundaries(t *testing.T) {
	cases := []struct {
		year    int
		ok      bool
		message string
	}{
		{2019, false, "graduationYear: Graduation year must be 2020 or later"},
		{2020, true, ""},
		{2030, true, ""},
		{2031, false, "graduationYear: Graduation year cannot exceed 2030"},
	}

	for _, tc := range cases {
		req := validRequest()
		req.GraduationYear = intPtr(tc.year)

		got := violations(t, req)
		if tc.ok {
			if len(got) != 0 {
				t.Errorf("year %d: expected no violations, got %v", tc.year, got)
			}
			continue
		}
		assertViolation(t, got, tc.message)
	}
}

func TestPassportNumberPattern(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"A1234567", true},
		{"a1234567", false},  // lowercase letter
		{"A123456", false},   // only 6 digits
		{"AB1234567", false}, // two letters
		{"12345678", false},  // no letter
	}

	for _, tc := range cases {
		req := validRequest()
		req.PassportNumber = tc.value

		got := violations(t, req)
		if tc.ok {
			if len(got) != 0 {
				t.Errorf("%q: expected no violations, got %v", tc.value, got)
			}
			continue
		}
		assertViolation(t, got, "passportNumber: Passport number must be in format: one letter followed by 7 digits (e.g., A1234567)")
	}
}

func TestNameBoundaries(t *testing.T) {
	req := validRequest()
	req.Name = "J"
	assertViolation(t, violations(t, req), "name: Name must be between 2 and 100 characters")

	req = validRequest()
	req.Name = strings.Repeat("x", 101)
	assertViolation(t, violations(t, req), "name: Name must be between 2 and 100 characters")

	req = validRequest()
	req.Name = "Jo"
	if got := violations(t, req); len(got) != 0 {
		t.Errorf("2-char name should pass, got %v", got)
	}

	req = validRequest()
	req.Name = ""
	assertViolation(t, violations(t, req), "name: Name is required")
}

func TestInvalidEmail(t *testing.T) {
	req := validRequest()
	req.Email = strPtr("not-an-email")
	assertViolation(t, violations(t, req), "email: Please provide a valid email address")
}

func TestAllViolationsAreCollected(t *testing.T) {
	req := &dto.StudentRequest{
		Name:           "",
		PassportNumber: "bogus",
		Age:            intPtr(12),
	}

	got := violations(t, req)
	if len(got) < 3 {
		t.Fatalf("expected at least 3 violations (name, passportNumber, age), got %v", got)
	}

	assertViolation(t, got, "name: Name is required")
	assertViolation(t, got, "passportNumber: Passport number must be in format: one letter followed by 7 digits (e.g., A1234567)")
	assertViolation(t, got, "age: Student must be at least 16 years old")
}

func TestMissingRequiredFields(t *testing.T) {
	req := &dto.StudentRequest{}

	got := violations(t, req)
	assertViolation(t, got, "name: Name is required")
	assertViolation(t, got, "passportNumber: Passport number is required")
	assertViolation(t, got, "age: Age is required")
}
