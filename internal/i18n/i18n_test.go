package i18n

import "testing"

func mustBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	return b
}

func TestT_DottedKeyLookup(t *testing.T) {
	b := mustBundle(t)

	if got := b.T(LangEnglish, "login.username"); got != "Username" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := b.T(LangArabic, "appName"); got != "عيادة خبراء الأسنان" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestT_MissingKeyFallsBackToKey(t *testing.T) {
	b := mustBundle(t)

	for _, key := range []string{"no.such.key", "login.nothere", "appName.tooDeep"} {
		if got := b.T(LangEnglish, key); got != key {
			t.Fatalf("expected literal key %q back, got %q", key, got)
		}
	}
}

func TestT_UnknownLanguageUsesDefault(t *testing.T) {
	b := mustBundle(t)

	if got := b.T("fr", "login.username"); got != "Username" {
		t.Fatalf("expected default-language lookup, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	b := mustBundle(t)

	if b.Normalize("ar") != "ar" || b.Normalize("en") != "en" {
		t.Fatalf("supported codes must pass through")
	}
	if b.Normalize("de") != DefaultLanguage || b.Normalize("") != DefaultLanguage {
		t.Fatalf("unknown codes must normalize to the default")
	}
}

func TestDir(t *testing.T) {
	if Dir(LangArabic) != "rtl" {
		t.Fatalf("arabic must be rtl")
	}
	if Dir(LangEnglish) != "ltr" || Dir("de") != "ltr" {
		t.Fatalf("everything else must be ltr")
	}
}

func TestToggle_Involution(t *testing.T) {
	for _, lang := range []string{LangEnglish, LangArabic} {
		if Toggle(Toggle(lang)) != lang {
			t.Fatalf("toggling twice must return to %s", lang)
		}
	}
	if Toggle(LangEnglish) != LangArabic {
		t.Fatalf("toggle from en must be ar")
	}
}
