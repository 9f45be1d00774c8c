package validators

import "testing"

func TestIsEmailWellFormed(t *testing.T) {
	good := []string{"ana@example.com", " ana.perez+tag@mail.example.org "}
	bad := []string{"", "ana", "ana@", "@example.com", "ana at example.com"}

	for _, e := range good {
		if !IsEmailWellFormed(e) {
			t.Errorf("expected %q to be accepted", e)
		}
	}
	for _, e := range bad {
		if IsEmailWellFormed(e) {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}

func TestLocalPart(t *testing.T) {
	if got := LocalPart("ana@example.com"); got != "ana" {
		t.Errorf("got %q", got)
	}
	if got := LocalPart("nobody"); got != "nobody" {
		t.Errorf("got %q", got)
	}
}

func TestBlank(t *testing.T) {
	if !Blank("Rex", "  ", "2") {
		t.Error("expected blank detected")
	}
	if Blank("Rex", "Labrador") {
		t.Error("unexpected blank")
	}
}
