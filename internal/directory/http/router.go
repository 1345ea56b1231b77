package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/httpx"
	"github.com/aussiebroadwan/directory/pkg/jwtx"
	"github.com/aussiebroadwan/directory/pkg/slogx"

	_ "github.com/aussiebroadwan/directory/api/directory" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	issuer       string
	publicURL    string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                 store.Store
	UserService           *service.UserService
	GroupService          *service.GroupService
	MembershipService     *service.MembershipService
	ResponsibilityService *service.ResponsibilityService
	RoleService           *service.RoleService
	ClaimsService         *service.ClaimsService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	issuer, publicURL, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		issuer:       issuer,
		publicURL:    publicURL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,

		UserService:           &service.UserService{Store: st},
		GroupService:          &service.GroupService{Store: st},
		MembershipService:     &service.MembershipService{Store: st},
		ResponsibilityService: &service.ResponsibilityService{Store: st},
		RoleService:           &service.RoleService{Store: st},
		ClaimsService:         &service.ClaimsService{Store: st},
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOpenID()
	r.registerUsers()
	r.registerGroups()
	r.registerMemberships()
	r.registerResponsibilities()
	r.registerRoles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Directory Service API
//	@version		0.1.0
//	@description	Users, groups, memberships, responsibilities and roles, published as OpenID Connect
//	@description	claims for an external identity provider.
//	@description
//	@description				Access tokens are issued by the identity provider and verified against its JWKS.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/directory
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// admin wraps h for staff-only endpoints.
func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		RequireStaff(r.UserService),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerOpenID() {
	userinfo := &UserInfoHandler{UserService: r.UserService, ClaimsService: r.ClaimsService}
	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(userinfo,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(service.ScopeOpenID),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Login form checks: strict limit per IP against password guessing.
	credentials := &CredentialsHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/credentials/verify",
		httpx.Chain(credentials,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/scopes",
		httpx.Chain(ScopesHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/openid-configuration",
		httpx.Chain(DiscoveryHandler(r.issuer, r.publicURL),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users", r.admin(h.HandleList))
	r.Mux.Handle("POST /v1/users", r.admin(h.HandleCreate))
	r.Mux.Handle("GET /v1/users/{id}", r.admin(h.HandleGet))
	r.Mux.Handle("PATCH /v1/users/{id}", r.admin(h.HandleUpdate))
	r.Mux.Handle("POST /v1/users/{id}/deactivate", r.admin(h.HandleDeactivate))
	r.Mux.Handle("PUT /v1/users/{id}/password", r.admin(h.HandleSetPassword))
}

func (r *Router) registerGroups() {
	h := &GroupsHandler{GroupService: r.GroupService}

	r.Mux.Handle("GET /v1/groups", r.admin(h.HandleList))
	r.Mux.Handle("POST /v1/groups", r.admin(h.HandleCreate))
	r.Mux.Handle("GET /v1/groups/{id}", r.admin(h.HandleGet))
	r.Mux.Handle("PATCH /v1/groups/{id}", r.admin(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/groups/{id}", r.admin(h.HandleDelete))
}

func (r *Router) registerMemberships() {
	h := &MembershipsHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("GET /v1/memberships", r.admin(h.HandleList))
	r.Mux.Handle("POST /v1/memberships", r.admin(h.HandleCreate))
	r.Mux.Handle("GET /v1/memberships/{id}", r.admin(h.HandleGet))
	r.Mux.Handle("DELETE /v1/memberships/{id}", r.admin(h.HandleDelete))
}

func (r *Router) registerResponsibilities() {
	h := &ResponsibilitiesHandler{ResponsibilityService: r.ResponsibilityService}

	r.Mux.Handle("GET /v1/responsibilities", r.admin(h.HandleList))
	r.Mux.Handle("POST /v1/responsibilities", r.admin(h.HandleCreate))
	r.Mux.Handle("GET /v1/responsibilities/{id}", r.admin(h.HandleGet))
	r.Mux.Handle("PATCH /v1/responsibilities/{id}", r.admin(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/responsibilities/{id}", r.admin(h.HandleDelete))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RoleService: r.RoleService}

	r.Mux.Handle("GET /v1/roles", r.admin(h.HandleList))
	r.Mux.Handle("POST /v1/roles", r.admin(h.HandleCreate))
	r.Mux.Handle("GET /v1/roles/{id}", r.admin(h.HandleGet))
	r.Mux.Handle("DELETE /v1/roles/{id}", r.admin(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Probes may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
