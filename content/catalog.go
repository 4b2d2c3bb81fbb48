package content

// catalog holds the static UI strings rendered around managed content:
// navigation labels, call-to-action buttons, section headings, weekday
// display names. Managed content lives in the store; these do not.
var catalog = map[string]Localized{
	"home":     NewLocalized("Home", "الرئيسية"),
	"about":    NewLocalized("About", "من نحن"),
	"coaches":  NewLocalized("Coaches", "المدربين"),
	"schedule": NewLocalized("Schedule", "الجدول"),
	"contact":  NewLocalized("Contact", "اتصل بنا"),

	"learnMore":  NewLocalized("Learn More", "اعرف المزيد"),
	"getStarted": NewLocalized("Get Started", "ابدأ الآن"),
	"joinNow":    NewLocalized("Join Now", "انضم الآن"),
	"contactUs":  NewLocalized("Contact Us", "اتصل بنا"),

	"featuresTitle":     NewLocalized("Why Choose Kallos?", "لماذا تختار كالوس؟"),
	"testimonialsTitle": NewLocalized("What Our Members Say", "ماذا يقول أعضاؤنا"),
	"coachesTitle":      NewLocalized("Meet Our Expert Coaches", "تعرف على مدربينا الخبراء"),
	"scheduleTitle":     NewLocalized("Weekly Schedule", "الجدول الأسبوعي"),
	"contactTitle":      NewLocalized("Get in Touch", "تواصل معنا"),
	"aboutTitle":        NewLocalized("About Kallos", "عن كالوس"),

	"saturday":  NewLocalized("Saturday", "السبت"),
	"sunday":    NewLocalized("Sunday", "الأحد"),
	"monday":    NewLocalized("Monday", "الاثنين"),
	"tuesday":   NewLocalized("Tuesday", "الثلاثاء"),
	"wednesday": NewLocalized("Wednesday", "الأربعاء"),
	"thursday":  NewLocalized("Thursday", "الخميس"),
	"friday":    NewLocalized("Friday", "الجمعة"),
}

// Translate resolves a UI string for lang. Missing keys return the key
// itself so templates render a visible marker instead of an empty hole.
func Translate(lang, key string) string {
	entry, ok := catalog[key]
	if !ok {
		return key
	}
	if v := entry.Resolve(lang); v != "" {
		return v
	}
	return key
}
