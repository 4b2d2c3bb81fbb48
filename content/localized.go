package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Language codes supported by the site. The set is closed: every localized
// field carries at most one variant per code.
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// Languages lists the supported language codes in display order.
var Languages = []string{LanguageEnglish, LanguageArabic}

// IsRTL reports whether the language renders right-to-left.
func IsRTL(lang string) bool {
	return lang == LanguageArabic
}

// IsLanguage reports whether code belongs to the supported language set.
func IsLanguage(code string) bool {
	for _, lang := range Languages {
		if lang == code {
			return true
		}
	}
	return false
}

// Localized holds per-language variants of a text field. Variants may be
// missing or blank while an entity is in draft; display resolution falls
// back through Resolve.
type Localized map[string]string

// NewLocalized builds a value with both supported languages populated.
func NewLocalized(en, ar string) Localized {
	return Localized{LanguageEnglish: en, LanguageArabic: ar}
}

// Resolve returns the variant for lang, falling back to English and finally
// to the empty string when neither variant is present.
func (l Localized) Resolve(lang string) string {
	if l == nil {
		return ""
	}
	if v, ok := l[lang]; ok && v != "" {
		return v
	}
	if v, ok := l[LanguageEnglish]; ok && v != "" {
		return v
	}
	return ""
}

// Complete reports whether every supported language has a non-blank variant.
// Entities intended for publication should be complete; drafts need not be.
func (l Localized) Complete() bool {
	for _, lang := range Languages {
		if strings.TrimSpace(l[lang]) == "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (l Localized) Clone() Localized {
	if l == nil {
		return nil
	}
	out := make(Localized, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Set assigns the variant for lang and returns the updated value so callers
// can chain assignments on freshly built values. A nil receiver is replaced
// by a new map.
func (l Localized) Set(lang, value string) Localized {
	if l == nil {
		l = Localized{}
	}
	l[lang] = value
	return l
}

// Value implements driver.Valuer so localized fields persist as JSON text
// regardless of dialect.
func (l Localized) Value() (driver.Value, error) {
	if l == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("localized value: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the JSON representation written by Value.
func (l *Localized) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	raw, err := sqlBytes(src)
	if err != nil {
		return fmt.Errorf("localized scan: %w", err)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	out := Localized{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("localized scan: %w", err)
	}
	*l = out
	return nil
}

// ClassList is an ordered sequence of localized class names attached to a
// schedule day. Order is caller-controlled and preserved.
type ClassList []Localized

// Clone returns an independent copy of the list and its entries.
func (c ClassList) Clone() ClassList {
	if c == nil {
		return nil
	}
	out := make(ClassList, len(c))
	for i, entry := range c {
		out[i] = entry.Clone()
	}
	return out
}

// Value implements driver.Valuer, persisting the list as a JSON array.
func (c ClassList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("class list value: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the JSON representation written by Value.
func (c *ClassList) Scan(src any) error {
	if src == nil {
		*c = nil
		return nil
	}
	raw, err := sqlBytes(src)
	if err != nil {
		return fmt.Errorf("class list scan: %w", err)
	}
	if len(raw) == 0 {
		*c = nil
		return nil
	}
	out := ClassList{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("class list scan: %w", err)
	}
	*c = out
	return nil
}

func sqlBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}
