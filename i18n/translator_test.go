package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_date_format", nil); msg == "invalid_date_format" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_date_format", nil); msg == "unsupported date format" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")

	// unknown codes fall back to the code itself
	if msg := T("nope", nil); msg != "nope" {
		t.Fatalf("expected fallback to code, got %q", msg)
	}
}
