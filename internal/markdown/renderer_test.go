package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r := New()

	t.Run("headings and emphasis", func(t *testing.T) {
		out, err := r.RenderString("# Welcome\n\nTrain **hard**.")
		if err != nil {
			t.Fatalf("RenderString() error = %v", err)
		}
		if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>hard</strong>") {
			t.Fatalf("unexpected output: %s", out)
		}
	})

	t.Run("gfm strikethrough", func(t *testing.T) {
		out, err := r.RenderString("~~old price~~")
		if err != nil {
			t.Fatalf("RenderString() error = %v", err)
		}
		if !strings.Contains(out, "<del>old price</del>") {
			t.Fatalf("GFM not enabled: %s", out)
		}
	})

	t.Run("raw html is escaped", func(t *testing.T) {
		out, err := r.RenderString("<script>alert(1)</script>")
		if err != nil {
			t.Fatalf("RenderString() error = %v", err)
		}
		if strings.Contains(out, "<script>") {
			t.Fatalf("raw html leaked: %s", out)
		}
	})

	t.Run("arabic text round trips", func(t *testing.T) {
		out, err := r.RenderString("مرحبا **بكم**")
		if err != nil {
			t.Fatalf("RenderString() error = %v", err)
		}
		if !strings.Contains(out, "مرحبا") {
			t.Fatalf("arabic text lost: %s", out)
		}
	})
}
