package models

import (
	"encoding/json"
	"testing"
)

func TestStudentStatusIsValid(t *testing.T) {
	for _, status := range []StudentStatus{StatusActive, StatusSuspended, StatusGraduated, StatusWithdrawn} {
		if !status.IsValid() {
			t.Errorf("%s should be valid", status)
		}
	}

	for _, status := range []StudentStatus{"", "active", "EXPELLED", "Active"} {
		if status.IsValid() {
			t.Errorf("%q should not be valid", status)
		}
	}
}

func TestStudentStatusUnmarshalJSON(t *testing.T) {
	var status StudentStatus
	if err := json.Unmarshal([]byte(`"SUSPENDED"`), &status); err != nil {
		t.Fatalf("unmarshal SUSPENDED: %v", err)
	}
	if status != StatusSuspended {
		t.Errorf("got %s, want SUSPENDED", status)
	}

	if err := json.Unmarshal([]byte(`"EXPELLED"`), &status); err == nil {
		t.Error("expected unknown status token to be rejected")
	}

	if err := json.Unmarshal([]byte(`"active"`), &status); err == nil {
		t.Error("expected lowercase status token to be rejected")
	}
}

func TestStudentStatusRejectedInsideDocument(t *testing.T) {
	var student Student
	payload := []byte(`{"name":"John Doe","passportNumber":"A1234567","age":25,"status":"UNKNOWN"}`)

	if err := json.Unmarshal(payload, &student); err == nil {
		t.Error("expected document with unknown status to fail")
	}
}

func TestStudentStatusHelpers(t *testing.T) {
	student := &Student{Status: StatusActive}

	if !student.IsActive() {
		t.Error("expected IsActive for ACTIVE student")
	}

	student.Suspend()
	if student.Status != StatusSuspended || student.IsActive() {
		t.Errorf("after Suspend: %s", student.Status)
	}

	student.Graduate()
	if student.Status != StatusGraduated {
		t.Errorf("after Graduate: %s", student.Status)
	}

	student.Activate()
	if student.Status != StatusActive {
		t.Errorf("after Activate: %s", student.Status)
	}
}
