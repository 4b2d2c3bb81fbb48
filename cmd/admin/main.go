// Command admin edits content from the terminal: it loads a draft
// workspace, applies one change, and saves the touched collection.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	cms "github.com/kallosgym/cms"
	"github.com/kallosgym/cms/admin"
	"github.com/kallosgym/cms/content"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() error {
	return fmt.Errorf(`usage: admin [-dsn DSN] <command> [flags]

commands:
  show <general|pages|schedule|coaches|testimonials|features|values|achievements>
  add-coach     -name-en -name-ar [-bio-en] [-bio-ar] [-image]
  remove-coach  -index N
  set-general   [-logo-text] [-hero-type] [-hero-url] [-join-link] [-learn-link]
  set-page      -slug <about|contact> [-title-en] [-title-ar] [-body-en] [-body-ar]
  upload        -file PATH [-content-type TYPE]
  messages`)
}

func run(args []string) error {
	global := flag.NewFlagSet("admin", flag.ContinueOnError)
	dsn := global.String("dsn", "file:kallos.db?_fk=1", "SQLite DSN")
	if err := global.Parse(args); err != nil {
		return err
	}
	rest := global.Args()
	if len(rest) == 0 {
		return usage()
	}

	cfg := cms.DefaultConfig()
	cfg.Database.DSN = *dsn
	cfg.Logging.Format = "console"

	module, err := cms.New(cfg)
	if err != nil {
		return err
	}
	defer module.Dispose()

	ctx := context.Background()
	if err := module.Init(ctx); err != nil {
		return err
	}

	ws := module.NewWorkspace()
	if err := ws.Load(ctx); err != nil {
		return fmt.Errorf("load workspace: %w", err)
	}

	switch rest[0] {
	case "show":
		if len(rest) < 2 {
			return usage()
		}
		return show(ws, rest[1])
	case "add-coach":
		return addCoach(ctx, ws, rest[1:])
	case "remove-coach":
		return removeCoach(ctx, ws, rest[1:])
	case "set-general":
		return setGeneral(ctx, ws, rest[1:])
	case "set-page":
		return setPage(ctx, ws, rest[1:])
	case "upload":
		return upload(ctx, module, rest[1:])
	case "messages":
		return listMessages(ctx, module)
	default:
		return usage()
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func show(ws *admin.Workspace, collection string) error {
	switch collection {
	case "general":
		return printJSON(ws.General())
	case "pages":
		return printJSON(ws.Pages())
	case "schedule":
		return printJSON(ws.Schedule())
	case "coaches":
		return printJSON(ws.Coaches())
	case "testimonials":
		return printJSON(ws.Testimonials())
	case "features", "values", "achievements":
		return printJSON(ws.Highlights(content.HighlightKind(collection)))
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
}

func addCoach(ctx context.Context, ws *admin.Workspace, args []string) error {
	fs := flag.NewFlagSet("add-coach", flag.ContinueOnError)
	nameEN := fs.String("name-en", "", "coach name (English)")
	nameAR := fs.String("name-ar", "", "coach name (Arabic)")
	bioEN := fs.String("bio-en", "", "coach bio (English)")
	bioAR := fs.String("bio-ar", "", "coach bio (Arabic)")
	image := fs.String("image", "", "image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	coach := ws.AddCoach()
	if *nameEN != "" || *nameAR != "" {
		coach.Name = content.NewLocalized(*nameEN, *nameAR)
	}
	coach.Bio = content.NewLocalized(*bioEN, *bioAR)
	coach.ImageURL = *image
	if err := ws.UpdateCoach(len(ws.Coaches())-1, coach); err != nil {
		return err
	}
	if err := ws.SaveCoaches(ctx); err != nil {
		return err
	}
	fmt.Println("coach saved")
	return nil
}

func removeCoach(ctx context.Context, ws *admin.Workspace, args []string) error {
	fs := flag.NewFlagSet("remove-coach", flag.ContinueOnError)
	index := fs.Int("index", -1, "coach position shown by 'show coaches'")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := ws.RemoveCoach(ctx, *index); err != nil {
		return err
	}
	fmt.Println("coach removed")
	return nil
}

func setGeneral(ctx context.Context, ws *admin.Workspace, args []string) error {
	fs := flag.NewFlagSet("set-general", flag.ContinueOnError)
	logoText := fs.String("logo-text", "", "logo text")
	heroType := fs.String("hero-type", "", "hero media type: image or video")
	heroURL := fs.String("hero-url", "", "hero media URL")
	joinLink := fs.String("join-link", "", "join-now link")
	learnLink := fs.String("learn-link", "", "learn-more link")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := ws.General()
	if *logoText != "" {
		draft.LogoText = *logoText
	}
	if *heroType != "" {
		draft.HeroMediaType = *heroType
	}
	if *heroURL != "" {
		draft.HeroMediaURL = *heroURL
	}
	if *joinLink != "" {
		draft.JoinNowLink = *joinLink
	}
	if *learnLink != "" {
		draft.LearnMoreLink = *learnLink
	}
	ws.SetGeneral(draft)
	if err := ws.SaveGeneral(ctx); err != nil {
		return err
	}
	fmt.Println("general content saved")
	return nil
}

func setPage(ctx context.Context, ws *admin.Workspace, args []string) error {
	fs := flag.NewFlagSet("set-page", flag.ContinueOnError)
	slug := fs.String("slug", "", "page slug")
	titleEN := fs.String("title-en", "", "title (English)")
	titleAR := fs.String("title-ar", "", "title (Arabic)")
	bodyEN := fs.String("body-en", "", "markdown body (English)")
	bodyAR := fs.String("body-ar", "", "markdown body (Arabic)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" {
		return fmt.Errorf("set-page: -slug is required")
	}

	var page *content.Page
	for _, p := range ws.Pages() {
		if p.Slug == *slug {
			page = p
			break
		}
	}
	if page == nil {
		page = &content.Page{Slug: *slug, Title: content.Localized{}, Content: content.Localized{}}
	}
	if *titleEN != "" {
		page.Title.Set(content.LanguageEnglish, *titleEN)
	}
	if *titleAR != "" {
		page.Title.Set(content.LanguageArabic, *titleAR)
	}
	if *bodyEN != "" {
		page.Content.Set(content.LanguageEnglish, *bodyEN)
	}
	if *bodyAR != "" {
		page.Content.Set(content.LanguageArabic, *bodyAR)
	}

	if err := ws.SetPage(page); err != nil {
		return err
	}
	if err := ws.SavePage(ctx, *slug); err != nil {
		return err
	}
	fmt.Println("page saved")
	return nil
}

func upload(ctx context.Context, module *cms.Module, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	file := fs.String("file", "", "path of the file to upload")
	contentType := fs.String("content-type", "application/octet-stream", "MIME type")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("upload: -file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := module.Uploads().Upload(ctx, f.Name(), *contentType, f)
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

func listMessages(ctx context.Context, module *cms.Module) error {
	stored, err := module.Messages().List(ctx)
	if err != nil {
		return err
	}
	return printJSON(stored)
}
