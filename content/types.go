package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// GeneralContentID is the fixed key for the settings singleton. Saves always
// target this row regardless of what identifier the in-memory copy carried.
const GeneralContentID = 1

// Hero media types accepted by GeneralContent.
const (
	HeroMediaImage = "image"
	HeroMediaVideo = "video"
)

// HighlightKind names one of the three structurally identical icon/title/
// description collections. The values double as collection names.
type HighlightKind string

const (
	HighlightFeatures     HighlightKind = "features"
	HighlightValues       HighlightKind = "values"
	HighlightAchievements HighlightKind = "achievements"
)

// HighlightKinds lists the highlight collections in admin tab order.
var HighlightKinds = []HighlightKind{HighlightFeatures, HighlightValues, HighlightAchievements}

// Page slugs the site ships with. Pages are keyed by slug, not surrogate id.
const (
	PageAbout   = "about"
	PageContact = "contact"
)

// Weekdays lists schedule day names in site order (the week starts on
// Saturday). A complete schedule has exactly one row per entry.
var Weekdays = []string{
	"saturday",
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
}

// IsWeekday reports whether name is one of the seven schedule day names.
func IsWeekday(name string) bool {
	for _, day := range Weekdays {
		if day == name {
			return true
		}
	}
	return false
}

// GeneralContent is the settings singleton backing the shared layout chrome.
type GeneralContent struct {
	bun.BaseModel `bun:"table:general_content,alias:gc"`

	ID            int64     `bun:"id,pk" json:"id"`
	LogoText      string    `bun:"logo_text" json:"logo_text"`
	LogoURL       string    `bun:"logo_url" json:"logo_url"`
	HeroMediaType string    `bun:"hero_media_type" json:"hero_media_type"`
	HeroMediaURL  string    `bun:"hero_media_url" json:"hero_media_url"`
	JoinNowLink   string    `bun:"join_now_link" json:"join_now_link"`
	LearnMoreLink string    `bun:"learn_more_link" json:"learn_more_link"`
	CTATitle      Localized `bun:"cta_title,type:jsonb" json:"cta_title"`
	CTASubtitle   Localized `bun:"cta_subtitle,type:jsonb" json:"cta_subtitle"`
	FooterText    Localized `bun:"footer_text,type:jsonb" json:"footer_text"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

// Clone returns an independent copy.
func (g *GeneralContent) Clone() *GeneralContent {
	if g == nil {
		return nil
	}
	out := *g
	out.CTATitle = g.CTATitle.Clone()
	out.CTASubtitle = g.CTASubtitle.Clone()
	out.FooterText = g.FooterText.Clone()
	return &out
}

// Page is a static page keyed by its slug.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	Slug      string    `bun:"id,pk" json:"id"`
	Title     Localized `bun:"title,type:jsonb" json:"title"`
	Content   Localized `bun:"content,type:jsonb" json:"content"`
	ImageURL  string    `bun:"image_url" json:"image_url"`
	MapURL    string    `bun:"map_url" json:"map_url"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

// Clone returns an independent copy.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	out := *p
	out.Title = p.Title.Clone()
	out.Content = p.Content.Clone()
	return &out
}

// Coach is a surrogate-id entity ordered by creation time.
type Coach struct {
	bun.BaseModel `bun:"table:coaches,alias:co"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      Localized `bun:"name,type:jsonb" json:"name"`
	Bio       Localized `bun:"bio,type:jsonb" json:"bio"`
	ImageURL  string    `bun:"image_url" json:"image_url"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// IsNew reports whether the coach has not been persisted yet.
func (c *Coach) IsNew() bool { return c == nil || c.ID == uuid.Nil }

// Clone returns an independent copy.
func (c *Coach) Clone() *Coach {
	if c == nil {
		return nil
	}
	out := *c
	out.Name = c.Name.Clone()
	out.Bio = c.Bio.Clone()
	return &out
}

// ScheduleDay is one weekday's class lineup, keyed by day name.
type ScheduleDay struct {
	bun.BaseModel `bun:"table:schedule,alias:s"`

	DayName     string    `bun:"day_name,pk" json:"day_name"`
	ImageURL    string    `bun:"image_url" json:"image_url"`
	Classes     ClassList `bun:"classes,type:jsonb" json:"classes"`
	KidsClasses ClassList `bun:"kids_classes,type:jsonb" json:"kids_classes"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

// Clone returns an independent copy.
func (d *ScheduleDay) Clone() *ScheduleDay {
	if d == nil {
		return nil
	}
	out := *d
	out.Classes = d.Classes.Clone()
	out.KidsClasses = d.KidsClasses.Clone()
	return &out
}

// Testimonial is a member quote; the member name is not localized.
type Testimonial struct {
	bun.BaseModel `bun:"table:testimonials,alias:t"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Quote     Localized `bun:"quote,type:jsonb" json:"quote"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// IsNew reports whether the testimonial has not been persisted yet.
func (t *Testimonial) IsNew() bool { return t == nil || t.ID == uuid.Nil }

// Clone returns an independent copy.
func (t *Testimonial) Clone() *Testimonial {
	if t == nil {
		return nil
	}
	out := *t
	out.Quote = t.Quote.Clone()
	return &out
}

// Highlight is the shared row shape behind the features, values and
// achievements collections. The kind is carried by the operation, not the
// row; the three collections live in separate tables.
type Highlight struct {
	bun.BaseModel `bun:"table:features,alias:h"`

	ID          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Icon        string    `bun:"icon" json:"icon"`
	Title       Localized `bun:"title,type:jsonb" json:"title"`
	Description Localized `bun:"description,type:jsonb" json:"description"`
	CreatedAt   time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// IsNew reports whether the highlight has not been persisted yet.
func (h *Highlight) IsNew() bool { return h == nil || h.ID == uuid.Nil }

// Clone returns an independent copy.
func (h *Highlight) Clone() *Highlight {
	if h == nil {
		return nil
	}
	out := *h
	out.Title = h.Title.Clone()
	out.Description = h.Description.Clone()
	return &out
}

// Message is an inbound contact-form submission. Insert-only: the site never
// reads messages back.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Email     string    `bun:"email" json:"email"`
	Phone     string    `bun:"phone" json:"phone"`
	Message   string    `bun:"message" json:"message"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// Clone returns an independent copy.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	out := *m
	return &out
}

// NewCoach returns the staged default appended by the admin "Add Coach"
// action. No identifier: the remote store assigns one on first save.
func NewCoach() *Coach {
	return &Coach{
		Name: NewLocalized("New Coach", "مدرب جديد"),
		Bio:  Localized{},
	}
}

// NewTestimonial returns the staged default for a new testimonial.
func NewTestimonial() *Testimonial {
	return &Testimonial{Quote: Localized{}}
}

// NewHighlight returns the staged default for a new highlight row. The icon
// default varies per collection, matching the admin surface.
func NewHighlight(kind HighlightKind) *Highlight {
	icon := "🎯"
	switch kind {
	case HighlightValues:
		icon = "🌟"
	case HighlightAchievements:
		icon = "🏆"
	}
	return &Highlight{
		Icon:        icon,
		Title:       Localized{},
		Description: Localized{},
	}
}

// DefaultGeneralContent returns the baseline settings row used when seeding
// an empty store.
func DefaultGeneralContent() *GeneralContent {
	return &GeneralContent{
		ID:            GeneralContentID,
		LogoText:      "Kallos",
		HeroMediaType: HeroMediaImage,
		JoinNowLink:   "#contact",
		LearnMoreLink: "#about",
		CTATitle:      Localized{},
		CTASubtitle:   Localized{},
		FooterText: NewLocalized(
			"© 2025 Kallos Calisthenics Gym. All rights reserved.",
			"© 2025 صالة كالوس للكاليسثينيكس. جميع الحقوق محفوظة.",
		),
	}
}

// DefaultPages returns empty rows for the pages the site ships with.
func DefaultPages() []*Page {
	out := make([]*Page, 0, 2)
	for _, slug := range []string{PageAbout, PageContact} {
		out = append(out, &Page{
			Slug:    slug,
			Title:   Localized{},
			Content: Localized{},
		})
	}
	return out
}

// DefaultSchedule returns the seven empty weekday rows of a blank schedule.
func DefaultSchedule() []*ScheduleDay {
	out := make([]*ScheduleDay, 0, len(Weekdays))
	for _, day := range Weekdays {
		out = append(out, &ScheduleDay{
			DayName:     day,
			Classes:     ClassList{},
			KidsClasses: ClassList{},
		})
	}
	return out
}

// CloneCoaches deep-copies a coach list.
func CloneCoaches(in []*Coach) []*Coach {
	if in == nil {
		return nil
	}
	out := make([]*Coach, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

// CloneTestimonials deep-copies a testimonial list.
func CloneTestimonials(in []*Testimonial) []*Testimonial {
	if in == nil {
		return nil
	}
	out := make([]*Testimonial, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

// CloneHighlights deep-copies a highlight list.
func CloneHighlights(in []*Highlight) []*Highlight {
	if in == nil {
		return nil
	}
	out := make([]*Highlight, len(in))
	for i, h := range in {
		out[i] = h.Clone()
	}
	return out
}

// CloneSchedule deep-copies a schedule day list.
func CloneSchedule(in []*ScheduleDay) []*ScheduleDay {
	if in == nil {
		return nil
	}
	out := make([]*ScheduleDay, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

// ClonePages deep-copies a page list.
func ClonePages(in []*Page) []*Page {
	if in == nil {
		return nil
	}
	out := make([]*Page, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
