package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/config"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
	"github.com/bogaczig73/realitypuchyr-admin/internal/service"
)

const usage = `Usage: admincli <command> [flags]

Commands:
  health                         check API health
  properties                     list properties
  property                       fetch one property
  property-state                 update a property's status
  property-stats                 show property statistics
  translate-property             translate a property
  blogs                          list blog posts
  blog                           fetch one blog post by slug
  blog-languages                 list content languages for a blog post
  translate-blog                 translate a blog post
  reviews                        list reviews
  contacts                       list contact form submissions
  upload                         upload an image or file

Run 'admincli <command> -h' for command flags.`

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := api.New(api.Config{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.APIKey,
		Locale:     cfg.API.Locale,
		Timeout:    cfg.API.Timeout,
		Retry:      api.RetryPolicy{Retries: cfg.API.Retries, Delay: cfg.API.RetryDelay},
		HTTPClient: nil,
	})
	if err != nil {
		logger.Fatalf("Failed to create API client: %v", err)
	}

	services := service.New(client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(ctx, services, cfg.API.Locale, os.Args[1], os.Args[2:]); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(ctx context.Context, services *service.Services, defaultLocale, command string, args []string) error {
	switch command {
	case "health":
		status, err := services.Health.Check(ctx)
		if err != nil {
			return err
		}
		return printJSON(status)

	case "properties":
		fs := flag.NewFlagSet("properties", flag.ExitOnError)
		locale := fs.String("locale", defaultLocale, "routing locale")
		page := fs.Int("page", 1, "page number")
		limit := fs.Int("limit", 12, "page size")
		search := fs.String("search", "", "free-text search")
		status := fs.String("status", "", "filter by status (ACTIVE, SOLD, RENT)")
		category := fs.Int("category", 0, "filter by category id")
		fs.Parse(args)

		list, err := services.Properties.List(ctx, *locale, model.PropertyFilter{
			Page:       *page,
			Limit:      *limit,
			Search:     *search,
			Status:     model.PropertyStatus(*status),
			CategoryID: *category,
		})
		if err != nil {
			return err
		}
		return printJSON(list)

	case "property":
		fs := flag.NewFlagSet("property", flag.ExitOnError)
		locale := fs.String("locale", defaultLocale, "routing locale")
		id := fs.Int("id", 0, "property id")
		fs.Parse(args)

		property, err := services.Properties.Get(ctx, *locale, *id)
		if err != nil {
			return err
		}
		return printJSON(property)

	case "property-state":
		fs := flag.NewFlagSet("property-state", flag.ExitOnError)
		locale := fs.String("locale", defaultLocale, "routing locale")
		id := fs.Int("id", 0, "property id")
		status := fs.String("status", "", "new status (ACTIVE, SOLD, RENT)")
		fs.Parse(args)

		property, err := services.Properties.UpdateState(ctx, *locale, *id, model.PropertyStatus(*status))
		if err != nil {
			return err
		}
		return printJSON(property)

	case "property-stats":
		stats, err := services.Properties.Stats(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)

	case "translate-property":
		fs := flag.NewFlagSet("translate-property", flag.ExitOnError)
		id := fs.Int("id", 0, "property id")
		target := fs.String("target", "", "target content language")
		source := fs.String("source", "", "source content language (optional)")
		fs.Parse(args)

		result, err := services.Properties.Translate(ctx, *id, model.TranslationInput{
			TargetLanguage: *target,
			SourceLanguage: *source,
		})
		if err != nil {
			return err
		}
		return printJSON(result)

	case "blogs":
		fs := flag.NewFlagSet("blogs", flag.ExitOnError)
		locale := fs.String("locale", defaultLocale, "routing locale")
		page := fs.Int("page", 1, "page number")
		limit := fs.Int("limit", 12, "page size")
		truncate := fs.Int("truncate", 0, "truncate content to n characters")
		fs.Parse(args)

		list, err := services.Blogs.List(ctx, *locale, *page, *limit, *truncate)
		if err != nil {
			return err
		}
		return printJSON(list)

	case "blog":
		fs := flag.NewFlagSet("blog", flag.ExitOnError)
		locale := fs.String("locale", defaultLocale, "routing locale")
		slug := fs.String("slug", "", "blog slug")
		fs.Parse(args)

		blog, err := services.Blogs.GetBySlug(ctx, *locale, *slug)
		if err != nil {
			return err
		}
		return printJSON(blog)

	case "blog-languages":
		fs := flag.NewFlagSet("blog-languages", flag.ExitOnError)
		id := fs.Int("id", 0, "blog id")
		lang := fs.String("lang", defaultLocale, "viewing language")
		fs.Parse(args)

		languages, err := services.Blogs.Languages(ctx, *lang, *id)
		if err != nil {
			return err
		}
		return printJSON(languages)

	case "translate-blog":
		fs := flag.NewFlagSet("translate-blog", flag.ExitOnError)
		locale := fs.String("locale", defaultLocale, "routing locale")
		id := fs.Int("id", 0, "blog id")
		target := fs.String("target", "", "target content language")
		source := fs.String("source", "", "source content language (optional)")
		fs.Parse(args)

		result, err := services.Blogs.Translate(ctx, *locale, *id, model.TranslationInput{
			TargetLanguage: *target,
			SourceLanguage: *source,
		})
		if err != nil {
			return err
		}
		return printJSON(result)

	case "reviews":
		reviews, err := services.Reviews.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(reviews)

	case "contacts":
		submissions, err := services.Contact.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(submissions)

	case "upload":
		fs := flag.NewFlagSet("upload", flag.ExitOnError)
		path := fs.String("file", "", "path to the file to upload")
		kind := fs.String("kind", "image", "upload kind: image or file")
		fs.Parse(args)

		f, err := os.Open(*path)
		if err != nil {
			return fmt.Errorf("open upload file: %w", err)
		}
		defer f.Close()

		upload := service.Upload{Filename: filepath.Base(*path), Content: f}
		var result *model.UploadResult
		switch *kind {
		case "image":
			result, err = services.Uploads.Image(ctx, upload)
		case "file":
			result, err = services.Uploads.File(ctx, upload)
		default:
			return fmt.Errorf("unknown upload kind %q", *kind)
		}
		if err != nil {
			return err
		}
		return printJSON(result)

	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
