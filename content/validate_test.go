package content

import "testing"

func TestGeneralContentValidate(t *testing.T) {
	gc := DefaultGeneralContent()
	if err := gc.Validate(); err != nil {
		t.Fatalf("default general content should validate: %v", err)
	}

	gc.HeroMediaType = "gif"
	if err := gc.Validate(); err == nil {
		t.Fatal("expected error for unsupported hero media type")
	}
}

func TestPageValidate(t *testing.T) {
	p := Page{Slug: "about", Title: NewLocalized("About", "من نحن")}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid page rejected: %v", err)
	}

	p.Slug = "Not A Slug!"
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for malformed slug")
	}

	p.Slug = ""
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for empty slug")
	}
}

func TestScheduleDayValidate(t *testing.T) {
	d := ScheduleDay{DayName: "monday"}
	if err := d.Validate(); err != nil {
		t.Fatalf("valid day rejected: %v", err)
	}

	d.DayName = "moonday"
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestMessageValidate(t *testing.T) {
	msg := Message{
		Name:    "Sara",
		Email:   "sara@example.com",
		Message: "Interested in the kids program.",
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	t.Run("requires email shape", func(t *testing.T) {
		bad := msg
		bad.Email = "not-an-email"
		if err := bad.Validate(); err == nil {
			t.Fatal("expected error for malformed email")
		}
	})

	t.Run("requires body", func(t *testing.T) {
		bad := msg
		bad.Message = ""
		if err := bad.Validate(); err == nil {
			t.Fatal("expected error for empty body")
		}
	})

	t.Run("phone is optional", func(t *testing.T) {
		ok := msg
		ok.Phone = ""
		if err := ok.Validate(); err != nil {
			t.Fatalf("missing phone should be accepted: %v", err)
		}
	})
}
