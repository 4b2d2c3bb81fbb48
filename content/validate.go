package content

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the settings row before it is persisted.
func (g *GeneralContent) Validate() error {
	return validation.ValidateStruct(g,
		validation.Field(&g.HeroMediaType,
			validation.Required,
			validation.In(HeroMediaImage, HeroMediaVideo),
		),
	)
}

// Validate checks the page key before it is persisted.
func (p *Page) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Slug,
			validation.Required,
			validation.By(func(any) error {
				if !IsValidSlug(p.Slug) {
					return validation.NewError("content.page.slug_invalid", "page slug contains invalid characters")
				}
				return nil
			}),
		),
	)
}

// Validate checks the schedule row key. Class lists are free-form and may be
// empty; the day name must be one of the seven weekday names.
func (d *ScheduleDay) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.DayName,
			validation.Required,
			validation.By(func(any) error {
				if !IsWeekday(d.DayName) {
					return validation.NewError("content.schedule.day_invalid", "day name is not a weekday")
				}
				return nil
			}),
		),
	)
}

// Validate checks an inbound contact submission before the insert-only write.
func (m *Message) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Email, validation.Required, validation.Match(emailPattern)),
		validation.Field(&m.Message, validation.Required, validation.Length(1, 5000)),
	)
}
