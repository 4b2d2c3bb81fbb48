package content

import (
	"testing"
)

func TestLocalizedResolve(t *testing.T) {
	t.Run("returns requested language", func(t *testing.T) {
		v := NewLocalized("Hello", "مرحبا")
		if got := v.Resolve(LanguageArabic); got != "مرحبا" {
			t.Fatalf("expected Arabic variant, got %q", got)
		}
	})

	t.Run("falls back to English", func(t *testing.T) {
		v := Localized{LanguageEnglish: "Hello"}
		if got := v.Resolve(LanguageArabic); got != "Hello" {
			t.Fatalf("expected English fallback, got %q", got)
		}
	})

	t.Run("blank variant falls through", func(t *testing.T) {
		v := Localized{LanguageArabic: "", LanguageEnglish: "Hello"}
		if got := v.Resolve(LanguageArabic); got != "Hello" {
			t.Fatalf("expected English fallback past blank variant, got %q", got)
		}
	})

	t.Run("empty value resolves to empty string", func(t *testing.T) {
		if got := (Localized{}).Resolve(LanguageEnglish); got != "" {
			t.Fatalf("expected empty resolution, got %q", got)
		}
		var nilValue Localized
		if got := nilValue.Resolve(LanguageEnglish); got != "" {
			t.Fatalf("expected empty resolution on nil value, got %q", got)
		}
	})
}

func TestLocalizedComplete(t *testing.T) {
	if (Localized{LanguageEnglish: "Hello"}).Complete() {
		t.Fatal("missing Arabic variant should not be complete")
	}
	if (Localized{LanguageEnglish: "Hello", LanguageArabic: "  "}).Complete() {
		t.Fatal("blank Arabic variant should not be complete")
	}
	if !NewLocalized("Hello", "مرحبا").Complete() {
		t.Fatal("both variants populated should be complete")
	}
}

func TestLocalizedCloneIsIndependent(t *testing.T) {
	orig := NewLocalized("Hello", "مرحبا")
	cloned := orig.Clone()
	cloned[LanguageEnglish] = "Changed"
	if orig[LanguageEnglish] != "Hello" {
		t.Fatalf("clone mutation leaked into original: %q", orig[LanguageEnglish])
	}
}

func TestLocalizedSQLRoundTrip(t *testing.T) {
	orig := NewLocalized("Hello", "مرحبا")
	raw, err := orig.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded Localized
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if decoded[LanguageEnglish] != "Hello" || decoded[LanguageArabic] != "مرحبا" {
		t.Fatalf("round trip produced %v", decoded)
	}

	t.Run("nil scans to nil", func(t *testing.T) {
		var v Localized
		if err := v.Scan(nil); err != nil {
			t.Fatalf("Scan(nil) error = %v", err)
		}
		if v != nil {
			t.Fatalf("expected nil value, got %v", v)
		}
	})

	t.Run("rejects unsupported column type", func(t *testing.T) {
		var v Localized
		if err := v.Scan(42); err == nil {
			t.Fatal("expected error for int column")
		}
	})
}

func TestClassListSQLRoundTrip(t *testing.T) {
	orig := ClassList{
		NewLocalized("Beginner", "مبتدئ"),
		NewLocalized("Advanced", "متقدم"),
	}
	raw, err := orig.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded ClassList
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}
	if decoded[0].Resolve(LanguageEnglish) != "Beginner" || decoded[1].Resolve(LanguageArabic) != "متقدم" {
		t.Fatalf("round trip reordered or dropped entries: %v", decoded)
	}
}

func TestIsLanguage(t *testing.T) {
	if !IsLanguage("en") || !IsLanguage("ar") {
		t.Fatal("supported languages not recognised")
	}
	if IsLanguage("fr") {
		t.Fatal("unsupported language accepted")
	}
	if IsRTL("en") || !IsRTL("ar") {
		t.Fatal("RTL flags wrong")
	}
}
