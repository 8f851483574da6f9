package model

import (
	"encoding/json"
	"testing"
)

func TestTruthy_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`1`, true},
		{`0`, false},
		{`2.5`, true},
		{`"on"`, true},
		{`"YES"`, true},
		{`" true "`, true},
		{`"1"`, true},
		{`"off"`, false},
		{`""`, false},
		{`{}`, false},
	}
	for _, tt := range tests {
		var form ContactForm
		if err := json.Unmarshal([]byte(`{"terms":`+tt.raw+`}`), &form); err != nil {
			t.Errorf("terms %s: unexpected error: %v", tt.raw, err)
			continue
		}
		if bool(form.Terms) != tt.want {
			t.Errorf("terms %s: got %v, want %v", tt.raw, form.Terms, tt.want)
		}
	}
}

func TestTruthy_Absent(t *testing.T) {
	var form ContactForm
	if err := json.Unmarshal([]byte(`{"name":"x"}`), &form); err != nil {
		t.Fatal(err)
	}
	if form.Terms {
		t.Error("absent terms must be false")
	}
	if form.Phone != nil {
		t.Error("absent phone must be nil")
	}
}

func TestContactCategoryLabel(t *testing.T) {
	if got := ContactCategoryLabel("project"); got != "Project Discussion" {
		t.Errorf("got %q", got)
	}
	if got := ContactCategoryLabel("unknown"); got != "unknown" {
		t.Errorf("unknown value should pass through, got %q", got)
	}
	if IsContactCategory("spam") || !IsContactCategory("other") {
		t.Error("IsContactCategory mismatch")
	}
}
