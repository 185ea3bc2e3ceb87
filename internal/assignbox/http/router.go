package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/service"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store"
	"github.com/aussiebroadwan/assignbox/pkg/httpx"
	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
	"github.com/aussiebroadwan/assignbox/pkg/slogx"

	_ "github.com/aussiebroadwan/assignbox/api/assignbox" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options are the HTTP-facing settings of the router.
type Options struct {
	Cookie       httpx.CookieConfig
	CORSOrigin   string
	ExposeErrors bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	opts         Options

	store             store.Store
	UserService       *service.IdentityService
	AdminService      *service.IdentityService
	AssignmentService *service.AssignmentService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	opts Options,
) *Router {
	if opts.Cookie.Name == "" {
		opts.Cookie.Name = "token"
	}
	if opts.Cookie.MaxAge == 0 {
		opts.Cookie.MaxAge = jwtx.DefaultCookieMaxAge
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		opts:         opts,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(opts.CORSOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerAdmins()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			assignbox API
//	@version		0.1.0
//	@description	Assignment submission and review. Users upload assignments addressed to an admin; admins accept or reject them.
//	@description
//	@description	Logging in sets an HttpOnly "token" cookie holding an HS256 session token. Protected routes read it from there.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/assignbox
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						token
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with the session cookie check and the role check for role.
func (r *Router) secured(h http.HandlerFunc, role domain.Role) http.Handler {
	return httpx.Chain(h,
		httpx.CookieAuthn(r.verifier, r.opts.Cookie.Name),
		httpx.RequireRole(role.String()),
		accountLogger,
	)
}

func (r *Router) errorWriter() errorWriter {
	return errorWriter{expose: r.opts.ExposeErrors}
}

func (r *Router) registerUsers() {
	h := &IdentityHandler{
		Service: r.UserService,
		Cookie:  r.opts.Cookie,
		errs:    r.errorWriter(),
	}
	admins := &IdentityHandler{Service: r.AdminService, errs: r.errorWriter()}
	a := &AssignmentHandler{AssignmentService: r.AssignmentService, errs: r.errorWriter()}

	r.Mux.HandleFunc("POST /api/v1/user/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/v1/user/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/v1/user/logout", h.HandleLogout)

	r.Mux.Handle("POST /api/v1/user/upload", r.secured(a.HandleUpload, domain.RoleUser))
	r.Mux.Handle("GET /api/v1/user/admins", r.secured(admins.HandleListAdmins, domain.RoleUser))
}

func (r *Router) registerAdmins() {
	h := &IdentityHandler{
		Service: r.AdminService,
		Cookie:  r.opts.Cookie,
		errs:    r.errorWriter(),
	}
	a := &AssignmentHandler{AssignmentService: r.AssignmentService, errs: r.errorWriter()}

	r.Mux.HandleFunc("POST /api/v1/admin/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/v1/admin/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/v1/admin/logout", h.HandleLogout)

	r.Mux.Handle("GET /api/v1/admin/assignments", r.secured(a.HandleList, domain.RoleAdmin))
	r.Mux.Handle("POST /api/v1/admin/assignments/{id}/accept", r.secured(a.HandleAccept, domain.RoleAdmin))
	r.Mux.Handle("POST /api/v1/admin/assignments/{id}/reject", r.secured(a.HandleReject, domain.RoleAdmin))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier))
}

// accountLogger tags the request logger with the authenticated caller.
func accountLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if claims, ok := httpx.ClaimsFromContext(req.Context()); ok {
			req = req.WithContext(slogx.WithAccount(req.Context(), claims.Role, claims.Subject))
		}
		next.ServeHTTP(w, req)
	})
}
