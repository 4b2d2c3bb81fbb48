package content

import "testing"

func TestTranslate(t *testing.T) {
	t.Run("known key resolves per language", func(t *testing.T) {
		en := Translate(LanguageEnglish, "home")
		ar := Translate(LanguageArabic, "home")
		if en == "" || ar == "" {
			t.Fatal("known key resolved to empty string")
		}
		if en == ar {
			t.Fatalf("expected distinct translations, got %q for both", en)
		}
	})

	t.Run("unknown key returns the key itself", func(t *testing.T) {
		if got := Translate(LanguageEnglish, "does_not_exist"); got != "does_not_exist" {
			t.Fatalf("expected raw key echo, got %q", got)
		}
	})

	t.Run("weekday display names cover the whole week", func(t *testing.T) {
		for _, day := range Weekdays {
			if got := Translate(LanguageArabic, day); got == day {
				t.Fatalf("missing Arabic display name for %s", day)
			}
		}
	})
}
