package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("descriptor_conflict", nil); msg == "descriptor_conflict" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("descriptor_conflict", nil); msg == "cannot have two types in one definition" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Detail(t *testing.T) {
	msg := T("read_only", map[string]string{"detail": "foo"})
	if msg != "property is read-only: foo" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code fallback, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("parse_error", nil); msg != "X:parse_error" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
