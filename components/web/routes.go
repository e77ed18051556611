package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"

	admin "github.com/certifurb/go-storefront/components/admin"
	admincommands "github.com/certifurb/go-storefront/components/admin/commands"
	catalog "github.com/certifurb/go-storefront/components/catalog"
	dashboard "github.com/certifurb/go-storefront/components/dashboard"
	dashcommands "github.com/certifurb/go-storefront/components/dashboard/commands"
	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// Config wires go-router with the storefront and CMS handlers.
type Config[T any] struct {
	Router    router.Router[T]
	Renderer  Renderer
	Products  catalog.ProductSource
	Rails     *catalog.RailService
	Customers admin.CustomerDirectory
	Orders    admin.OrderBook
	Sessions  admin.SessionStore
	Login     *admin.LoginFlow
	Logout    gocommand.Commander[admincommands.LogoutInput]
	Dashboard *dashboard.Service
	Refresh   gocommand.Commander[dashcommands.RefreshMetricsInput]
	Broadcast *dashboard.BroadcastHook
	Telemetry telemetry.Telemetry
	Routes    RouteConfig
}

// RouteConfig customizes the relative paths used for storefront endpoints.
type RouteConfig struct {
	Home             string
	Category         string
	CMS              string
	Dashboard        string
	DashboardRefresh string
	Customers        string
	Orders           string
	Refund           string
	Logout           string
	WebSocket        string
}

// Register mounts the storefront pages, the CMS console, and the metrics
// WebSocket on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("web: router is required")
	}
	if cfg.Renderer == nil {
		return errors.New("web: renderer is required")
	}
	if cfg.Products == nil {
		return errors.New("web: product source is required")
	}
	if cfg.Sessions == nil {
		return errors.New("web: session store is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	t := telemetry.Normalize(cfg.Telemetry)

	cfg.Router.Get(routes.Home, router.WrapHandler(func(ctx router.Context) error {
		data := map[string]any{"rails": []catalog.Rail{}}
		if cfg.Rails != nil {
			data["rails"] = cfg.Rails.Resolve(ctx.Context())
		}
		return renderHTML(ctx, cfg.Renderer, "home.html", data)
	}))

	cfg.Router.Get(routes.Category, router.WrapHandler(func(ctx router.Context) error {
		view, err := categoryPage(ctx, cfg.Products, t)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return renderHTML(ctx, cfg.Renderer, "category.html", map[string]any{
			"view":      view,
			"price_min": catalog.PriceMin,
			"price_max": catalog.PriceMax,
		})
	}))

	cfg.Router.Get(routes.CMS, router.WrapHandler(func(ctx router.Context) error {
		if _, ok := currentSession(ctx, cfg.Sessions); ok {
			return redirect(ctx, routes.Dashboard)
		}
		return renderHTML(ctx, cfg.Renderer, "login.html", map[string]any{})
	}))

	if cfg.Login != nil {
		cfg.Router.Post(routes.CMS, router.WrapHandler(func(ctx router.Context) error {
			email, password := loginCredentials(ctx)
			token, err := cfg.Login.Submit(ctx.Context(), email, password)
			if err != nil {
				return renderHTML(ctx, cfg.Renderer, "login.html", map[string]any{
					"error": admin.FailureMessage(err),
					"email": email,
				})
			}
			setSessionCookie(ctx, token)
			return redirect(ctx, routes.Dashboard)
		}))
	}

	if cfg.Dashboard != nil {
		cfg.Router.Get(routes.Dashboard, router.WrapHandler(func(ctx router.Context) error {
			session, ok := currentSession(ctx, cfg.Sessions)
			if !ok {
				return redirect(ctx, routes.CMS)
			}
			overview, err := cfg.Dashboard.Overview(ctx.Context(), session)
			if err != nil {
				if errors.Is(err, dashboard.ErrForbidden) {
					return redirect(ctx, routes.CMS)
				}
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return renderHTML(ctx, cfg.Renderer, "dashboard.html", map[string]any{
				"overview": overview,
			})
		}))
	}

	if cfg.Refresh != nil {
		cfg.Router.Post(routes.DashboardRefresh, router.WrapHandler(func(ctx router.Context) error {
			session, ok := currentSession(ctx, cfg.Sessions)
			if !ok || !session.CanViewDashboard() {
				return redirect(ctx, routes.CMS)
			}
			if err := cfg.Refresh.Execute(ctx.Context(), dashcommands.RefreshMetricsInput{Reason: "manual"}); err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return redirect(ctx, routes.Dashboard)
		}))
	}

	if cfg.Customers != nil {
		cfg.Router.Get(routes.Customers, router.WrapHandler(func(ctx router.Context) error {
			if _, ok := currentSession(ctx, cfg.Sessions); !ok {
				return redirect(ctx, routes.CMS)
			}
			q := listQueryFromContext(ctx)
			customers, info, err := cfg.Customers.ListCustomers(ctx.Context(), q)
			if err != nil {
				return respondError(ctx, http.StatusBadGateway, err)
			}
			return renderHTML(ctx, cfg.Renderer, "customers.html", map[string]any{
				"customers": customers,
				"info":      info,
				"query":     q,
			})
		}))
	}

	if cfg.Orders != nil {
		cfg.Router.Get(routes.Orders, router.WrapHandler(func(ctx router.Context) error {
			if _, ok := currentSession(ctx, cfg.Sessions); !ok {
				return redirect(ctx, routes.CMS)
			}
			q := listQueryFromContext(ctx)
			orders, info, err := cfg.Orders.ListOrders(ctx.Context(), q)
			if err != nil {
				return respondError(ctx, http.StatusBadGateway, err)
			}
			rows := make([]admin.OrderRow, len(orders))
			for i, o := range orders {
				rows[i] = admin.OrderRow{
					Order:       o,
					Payment:     admin.PaymentBadge(o.PaymentStatus),
					Fulfillment: admin.FulfillmentBadge(o.FulfillmentStatus),
				}
			}
			return renderHTML(ctx, cfg.Renderer, "orders.html", map[string]any{
				"rows":  rows,
				"info":  info,
				"query": q,
			})
		}))
	}

	cfg.Router.Get(routes.Refund, router.WrapHandler(func(ctx router.Context) error {
		if _, ok := currentSession(ctx, cfg.Sessions); !ok {
			return redirect(ctx, routes.CMS)
		}
		return renderHTML(ctx, cfg.Renderer, "refund.html", map[string]any{
			"order": admin.DemoRefund(),
		})
	}))

	cfg.Router.Get(routes.Logout, router.WrapHandler(func(ctx router.Context) error {
		if token := sessionToken(ctx); token != "" && cfg.Logout != nil {
			if err := cfg.Logout.Execute(ctx.Context(), admincommands.LogoutInput{Token: token}); err != nil {
				t.Record(ctx.Context(), "web.logout.error", map[string]any{"error": err.Error()})
			}
		}
		clearSessionCookie(ctx)
		return redirect(ctx, routes.CMS)
	}))

	if cfg.Broadcast != nil {
		registerWebSocket(cfg.Router, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

// categoryPage drives one server-rendered pass through the catalog browser:
// apply the query's facets, fetch, and derive the visible window.
func categoryPage(ctx router.Context, source catalog.ProductSource, t telemetry.Telemetry) (catalog.PageView, error) {
	browser := catalog.NewBrowser(ctx.Context(), source, t)
	defer browser.Close()

	if category := ctx.Query("filter"); category != "" {
		browser.SetCategory(category)
	}
	if brand := ctx.Query("brand"); brand != "" {
		browser.SetBrand(brand)
	}
	if v, err := strconv.ParseFloat(ctx.Query("min"), 64); err == nil {
		browser.SetPriceMin(v)
	}
	if v, err := strconv.ParseFloat(ctx.Query("max"), 64); err == nil {
		browser.SetPriceMax(v)
	}
	if n, err := strconv.Atoi(ctx.Query("visible")); err == nil {
		browser.SetVisible(n)
	}

	// A failed fetch still renders; the view carries the error state.
	_ = browser.Refresh()
	return browser.View(), nil
}

func currentSession(ctx router.Context, store admin.SessionStore) (admin.Session, bool) {
	token := sessionToken(ctx)
	if token == "" {
		return admin.Session{}, false
	}
	return store.Get(token)
}

// loginCredentials accepts the login form body either form-encoded or as
// JSON.
func loginCredentials(ctx router.Context) (email, password string) {
	body := ctx.Body()
	contentType := ctx.Header("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var payload struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			return payload.Email, payload.Password
		}
		return "", ""
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return "", ""
	}
	return values.Get("email"), values.Get("password")
}

func listQueryFromContext(ctx router.Context) admin.ListQuery {
	q := admin.ListQuery{Search: ctx.Query("search")}
	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		q.Page = page
	}
	return q.Normalize()
}

func renderHTML(ctx router.Context, renderer Renderer, name string, data map[string]any) error {
	var buf bytes.Buffer
	if _, err := renderer.Render(name, data, &buf); err != nil {
		return respondError(ctx, http.StatusInternalServerError, err)
	}
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Send(buf.Bytes())
}

func redirect(ctx router.Context, target string) error {
	ctx.SetHeader("Location", target)
	return ctx.JSON(http.StatusFound, map[string]string{"redirect": target})
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func registerWebSocket[T any](r router.Router[T], hook *dashboard.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Home == "" {
		routes.Home = "/"
	}
	if routes.Category == "" {
		routes.Category = "/category"
	}
	if routes.CMS == "" {
		routes.CMS = "/cms"
	}
	if routes.Dashboard == "" {
		routes.Dashboard = "/cms/dashboard"
	}
	if routes.DashboardRefresh == "" {
		routes.DashboardRefresh = "/cms/dashboard/refresh"
	}
	if routes.Customers == "" {
		routes.Customers = "/cms/admin/customers"
	}
	if routes.Orders == "" {
		routes.Orders = "/cms/admin/orders"
	}
	if routes.Refund == "" {
		routes.Refund = "/cms/admin/refund"
	}
	if routes.Logout == "" {
		routes.Logout = "/cms/logout"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/cms/dashboard/ws"
	}
	return routes
}
