package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	admin "github.com/certifurb/go-storefront/components/admin"
	admincommands "github.com/certifurb/go-storefront/components/admin/commands"
	catalog "github.com/certifurb/go-storefront/components/catalog"
	dashboard "github.com/certifurb/go-storefront/components/dashboard"
	dashcommands "github.com/certifurb/go-storefront/components/dashboard/commands"
	web "github.com/certifurb/go-storefront/components/web"
	"github.com/certifurb/go-storefront/pkg/storeapi"
	"github.com/certifurb/go-storefront/pkg/telemetry"
)

type cli struct {
	Serve serveCmd `cmd:"" default:"1" help:"Run the storefront and CMS server."`
	Rails railsCmd `cmd:"" help:"Rail manifest utilities."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Certifurb storefront server and rail manifest tooling."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

type serveCmd struct {
	Listen        string        `default:":8080" help:"Address the HTTP server binds to."`
	APIBaseURL    string        `name:"api-base-url" help:"Backend REST API base URL. Empty runs against the built-in demo backend."`
	RailsManifest string        `type:"path" help:"Optional rail manifest YAML to load on top of the built-in rails."`
	TickInterval  time.Duration `default:"5s" help:"Dashboard metrics refresh interval."`
	LogLevel      string        `default:"info" help:"Log level (debug, info, warn, error)."`
}

// backend is the slice of the REST client the components consume.
type backend interface {
	catalog.ProductSource
	admin.CustomerDirectory
	admin.OrderBook
	admin.Authenticator
	dashboard.UserSource
}

func (cmd *serveCmd) Run(ctx context.Context) error {
	logger, err := newLogger(cmd.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	sink := telemetry.NewZapSink(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store backend
	if cmd.APIBaseURL == "" {
		logger.Info("no api-base-url set, serving demo data")
		store = storeapi.NewMockClient(storeapi.DemoData())
	} else {
		client, err := storeapi.NewHTTPClient(storeapi.HTTPConfig{BaseURL: cmd.APIBaseURL})
		if err != nil {
			return err
		}
		store = client
	}

	registry := catalog.NewRegistry()
	if cmd.RailsManifest != "" {
		doc, err := registry.LoadManifestFile(cmd.RailsManifest)
		if err != nil {
			return err
		}
		logger.Info("loaded rail manifest",
			zap.String("path", cmd.RailsManifest),
			zap.Int("rails", len(doc.Rails)))
	}

	sessions := admin.NewMemorySessionStore()
	login, err := admin.NewLoginFlow(store, sessions, sink)
	if err != nil {
		return err
	}

	feed := dashboard.NewMetricsFeed(
		dashboard.WithTickInterval(cmd.TickInterval),
		dashboard.WithMetricsTelemetry(sink),
	)
	hook := dashboard.NewBroadcastHook()
	feed.AddHook(hook)
	go feed.Run(ctx)

	overview, err := dashboard.NewService(dashboard.Options{
		Metrics:   feed,
		Products:  store,
		Users:     store,
		Telemetry: sink,
	})
	if err != nil {
		return err
	}

	renderer, err := web.NewTemplateRenderer()
	if err != nil {
		return err
	}

	server := router.NewFiberAdapter()
	if err := web.Register(web.Config[*fiber.App]{
		Router:    server.Router(),
		Renderer:  renderer,
		Products:  store,
		Rails:     catalog.NewRailService(store, registry, sink),
		Customers: store,
		Orders:    store,
		Sessions:  sessions,
		Login:     login,
		Logout:    admincommands.NewLogoutCommand(sessions, nil),
		Dashboard: overview,
		Refresh:   dashcommands.NewRefreshMetricsCommand(feed, sink),
		Broadcast: hook,
		Telemetry: sink,
	}); err != nil {
		return err
	}

	logger.Info("storefront listening", zap.String("addr", cmd.Listen))
	if err := server.Serve(cmd.Listen); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = lvl
	return config.Build()
}

type railsCmd struct {
	Scaffold railsScaffoldCmd `cmd:"" help:"Add a rail definition to a manifest file."`
	Lint     railsLintCmd     `cmd:"" help:"Validate every rail in a manifest file."`
}

type railsScaffoldCmd struct {
	Title        string `required:"" help:"Display title for the rail."`
	Code         string `help:"Rail code (defaults to storefront.rail.<title_snake_case>)."`
	Category     string `help:"Category the rail filters on (empty matches everything)."`
	Limit        int    `default:"6" help:"Maximum products the rail shows."`
	SeeAll       string `name:"see-all" help:"Link target for the rail's See All action."`
	ManifestPath string `required:"" type:"path" help:"Path to the rail manifest YAML file to update."`
	Overwrite    bool   `help:"Replace an existing manifest entry with the same code."`
}

func (cmd *railsScaffoldCmd) Run(_ context.Context) error {
	code := cmd.Code
	if code == "" {
		code = "storefront.rail." + strcase.ToSnake(cmd.Title)
	}
	def := catalog.RailDefinition{
		Code:     code,
		Title:    cmd.Title,
		Category: cmd.Category,
		Limit:    cmd.Limit,
		SeeAll:   cmd.SeeAll,
	}
	if err := catalog.ValidateRail(def); err != nil {
		return err
	}

	manifestPath, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("resolve manifest path: %w", err)
	}
	doc, err := loadOrInitManifest(manifestPath)
	if err != nil {
		return err
	}

	replaced := false
	for idx := range doc.Rails {
		if doc.Rails[idx].Code != code {
			continue
		}
		if !cmd.Overwrite {
			return fmt.Errorf("manifest already defines rail %s (use --overwrite to replace)", code)
		}
		doc.Rails[idx] = def
		replaced = true
		break
	}
	if !replaced {
		doc.Rails = append(doc.Rails, def)
	}
	sort.Slice(doc.Rails, func(i, j int) bool {
		return doc.Rails[i].Code < doc.Rails[j].Code
	})

	if err := writeManifest(manifestPath, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Added %s to %s\n", code, manifestPath)
	return nil
}

type railsLintCmd struct {
	ManifestPath string `arg:"" type:"path" help:"Path to the rail manifest YAML file."`
}

func (cmd *railsLintCmd) Run(_ context.Context) error {
	doc, err := catalog.ReadManifest(cmd.ManifestPath)
	if err != nil {
		return err
	}
	var problems []string
	for _, def := range doc.Rails {
		if err := catalog.ValidateRail(def); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", def.Code, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("manifest %s has %d invalid rail(s):\n  %s",
			cmd.ManifestPath, len(problems), strings.Join(problems, "\n  "))
	}
	fmt.Fprintf(os.Stdout, "✓ %s: %d rail(s) valid\n", cmd.ManifestPath, len(doc.Rails))
	return nil
}

func loadOrInitManifest(path string) (*catalog.RailManifestDocument, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &catalog.RailManifestDocument{
				Version: catalog.ManifestVersion,
				Rails:   []catalog.RailDefinition{},
				Source:  path,
			}, nil
		}
		return nil, fmt.Errorf("stat manifest: %w", err)
	}
	return catalog.ReadManifest(path)
}

func writeManifest(path string, doc *catalog.RailManifestDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	tmpDoc := *doc
	tmpDoc.Source = ""

	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("create manifest %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(tmpDoc); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
