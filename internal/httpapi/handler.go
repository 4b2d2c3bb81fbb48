// Package httpapi exposes the public read surface and the contact form over
// HTTP: the full published snapshot, rendered pages, and message intake.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/logging"
	"github.com/kallosgym/cms/internal/markdown"
	"github.com/kallosgym/cms/messages"
	"github.com/kallosgym/cms/pkg/interfaces"
	"github.com/kallosgym/cms/site"
)

// Handler serves the public JSON API over the published content cache.
type Handler struct {
	store    *site.Store
	messages *messages.Service
	renderer *markdown.Renderer
	logger   interfaces.Logger
}

// New builds the public API handler.
func New(store *site.Store, msgs *messages.Service, provider interfaces.LoggerProvider) *Handler {
	return &Handler{
		store:    store,
		messages: msgs,
		renderer: markdown.New(),
		logger:   logging.HTTPLogger(provider),
	}
}

// Routes mounts the public API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/content", h.GetContent)
		r.Get("/pages/{slug}", h.GetPage)
		r.Post("/messages", h.PostMessage)
	})
	return r
}

// contentResponse is the full published snapshot the site boots from.
type contentResponse struct {
	General      *content.GeneralContent                        `json:"general"`
	Pages        []*content.Page                                `json:"pages"`
	Coaches      []*content.Coach                               `json:"coaches"`
	Schedule     []*content.ScheduleDay                         `json:"schedule"`
	Testimonials []*content.Testimonial                         `json:"testimonials"`
	Highlights   map[content.HighlightKind][]*content.Highlight `json:"highlights"`
	Loading      bool                                           `json:"loading"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// GetContent returns every published collection in one payload. The
// collections come from a single snapshot so they are consistent with each
// other even while a refetch is swapping values in. With ?lang= the
// localized fields are resolved server-side to that language.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang != "" && !content.IsLanguage(lang) {
		h.renderError(w, r, http.StatusBadRequest, "unsupported language")
		return
	}

	snap := h.store.Snapshot()

	pages := make([]*content.Page, 0, len(snap.Pages))
	for _, slug := range sortedKeys(snap.Pages) {
		pages = append(pages, snap.Pages[slug])
	}
	schedule := make([]*content.ScheduleDay, 0, len(snap.Schedule))
	for _, day := range content.Weekdays {
		if d, ok := snap.Schedule[day]; ok {
			schedule = append(schedule, d)
		}
	}

	if lang != "" {
		render.JSON(w, r, resolveContent(snap, pages, schedule, lang))
		return
	}

	render.JSON(w, r, contentResponse{
		General:      snap.General,
		Pages:        pages,
		Coaches:      snap.Coaches,
		Schedule:     schedule,
		Testimonials: snap.Testimonials,
		Highlights:   snap.Highlights,
		Loading:      snap.Loading,
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Single-language views of the published entities, served when the
// content request carries a lang parameter.
type resolvedGeneral struct {
	ID            int64  `json:"id"`
	LogoText      string `json:"logo_text"`
	LogoURL       string `json:"logo_url"`
	HeroMediaType string `json:"hero_media_type"`
	HeroMediaURL  string `json:"hero_media_url"`
	JoinNowLink   string `json:"join_now_link"`
	LearnMoreLink string `json:"learn_more_link"`
	CTATitle      string `json:"cta_title"`
	CTASubtitle   string `json:"cta_subtitle"`
	FooterText    string `json:"footer_text"`
}

type resolvedPage struct {
	Slug     string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	MapURL   string `json:"map_url,omitempty"`
}

type resolvedCoach struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Bio      string    `json:"bio"`
	ImageURL string    `json:"image_url,omitempty"`
}

type resolvedDay struct {
	DayName     string   `json:"day_name"`
	ImageURL    string   `json:"image_url,omitempty"`
	Classes     []string `json:"classes"`
	KidsClasses []string `json:"kids_classes"`
}

type resolvedTestimonial struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Quote string    `json:"quote"`
}

type resolvedHighlight struct {
	ID          uuid.UUID `json:"id"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type resolvedContentResponse struct {
	Language     string                                        `json:"language"`
	General      resolvedGeneral                               `json:"general"`
	Pages        []resolvedPage                                `json:"pages"`
	Coaches      []resolvedCoach                               `json:"coaches"`
	Schedule     []resolvedDay                                 `json:"schedule"`
	Testimonials []resolvedTestimonial                         `json:"testimonials"`
	Highlights   map[content.HighlightKind][]resolvedHighlight `json:"highlights"`
	Loading      bool                                          `json:"loading"`
}

func resolveClasses(classes content.ClassList, lang string) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.Resolve(lang)
	}
	return out
}

// resolveContent flattens every localized field of the snapshot to one
// language.
func resolveContent(snap *site.Snapshot, pages []*content.Page, schedule []*content.ScheduleDay, lang string) resolvedContentResponse {
	out := resolvedContentResponse{
		Language: lang,
		General: resolvedGeneral{
			ID:            snap.General.ID,
			LogoText:      snap.General.LogoText,
			LogoURL:       snap.General.LogoURL,
			HeroMediaType: snap.General.HeroMediaType,
			HeroMediaURL:  snap.General.HeroMediaURL,
			JoinNowLink:   snap.General.JoinNowLink,
			LearnMoreLink: snap.General.LearnMoreLink,
			CTATitle:      snap.General.CTATitle.Resolve(lang),
			CTASubtitle:   snap.General.CTASubtitle.Resolve(lang),
			FooterText:    snap.General.FooterText.Resolve(lang),
		},
		Pages:        make([]resolvedPage, 0, len(pages)),
		Coaches:      make([]resolvedCoach, 0, len(snap.Coaches)),
		Schedule:     make([]resolvedDay, 0, len(schedule)),
		Testimonials: make([]resolvedTestimonial, 0, len(snap.Testimonials)),
		Highlights:   make(map[content.HighlightKind][]resolvedHighlight, len(snap.Highlights)),
		Loading:      snap.Loading,
	}
	for _, p := range pages {
		out.Pages = append(out.Pages, resolvedPage{
			Slug:     p.Slug,
			Title:    p.Title.Resolve(lang),
			Content:  p.Content.Resolve(lang),
			ImageURL: p.ImageURL,
			MapURL:   p.MapURL,
		})
	}
	for _, c := range snap.Coaches {
		out.Coaches = append(out.Coaches, resolvedCoach{
			ID:       c.ID,
			Name:     c.Name.Resolve(lang),
			Bio:      c.Bio.Resolve(lang),
			ImageURL: c.ImageURL,
		})
	}
	for _, d := range schedule {
		out.Schedule = append(out.Schedule, resolvedDay{
			DayName:     d.DayName,
			ImageURL:    d.ImageURL,
			Classes:     resolveClasses(d.Classes, lang),
			KidsClasses: resolveClasses(d.KidsClasses, lang),
		})
	}
	for _, item := range snap.Testimonials {
		out.Testimonials = append(out.Testimonials, resolvedTestimonial{
			ID:    item.ID,
			Name:  item.Name,
			Quote: item.Quote.Resolve(lang),
		})
	}
	for kind, items := range snap.Highlights {
		resolved := make([]resolvedHighlight, 0, len(items))
		for _, item := range items {
			resolved = append(resolved, resolvedHighlight{
				ID:          item.ID,
				Icon:        item.Icon,
				Title:       item.Title.Resolve(lang),
				Description: item.Description.Resolve(lang),
			})
		}
		out.Highlights[kind] = resolved
	}
	return out
}

// pageResponse carries a page with its body rendered to HTML per language.
type pageResponse struct {
	Slug     string            `json:"id"`
	Title    content.Localized `json:"title"`
	HTML     content.Localized `json:"html"`
	ImageURL string            `json:"image_url,omitempty"`
	MapURL   string            `json:"map_url,omitempty"`
}

// GetPage returns one page with its markdown body rendered to HTML.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.store.Page(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			h.renderError(w, r, http.StatusNotFound, "page not found")
			return
		}
		h.logger.Error("page lookup failed", "slug", slug, "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	html := content.Localized{}
	for _, lang := range content.Languages {
		body := page.Content.Resolve(lang)
		if body == "" {
			continue
		}
		rendered, err := h.renderer.RenderString(body)
		if err != nil {
			h.logger.Error("page render failed", "slug", slug, "lang", lang, "error", err)
			h.renderError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		html.Set(lang, rendered)
	}

	render.JSON(w, r, pageResponse{
		Slug:     page.Slug,
		Title:    page.Title,
		HTML:     html,
		ImageURL: page.ImageURL,
		MapURL:   page.MapURL,
	})
}

// messageRequest is the contact form payload.
type messageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// PostMessage accepts a contact form submission.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	msg := &content.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.messages.Submit(r.Context(), msg); err != nil {
		if goerrors.IsCategory(err, goerrors.CategoryValidation) {
			h.renderError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("message submit failed", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "could not store message")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"status": "received"})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}
