package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/opsbank/payhold/internal/hold/service"
	"github.com/opsbank/payhold/internal/hold/store"
	"github.com/opsbank/payhold/pkg/httpx"
	"github.com/opsbank/payhold/pkg/jwtx"
	"github.com/opsbank/payhold/pkg/slogx"

	_ "github.com/opsbank/payhold/api/holdapi" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Roles required by the hold endpoints. Tokens carry these in the "roles"
// claim; a request needs any one of the roles listed on its route.
const (
	RoleHoldCreate  = "ops.block:create"
	RoleHoldRead    = "ops.block:read"
	RoleHoldRelease = "ops.block:release"
	RoleAdminWrite  = "ops.admin:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	HoldService   *service.HoldService
	ClientService *service.ClientService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerHolds()
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Payment Hold Service API
//	@version		0.1.0
//	@description	Operations service for placing, inspecting and releasing payment holds on bank clients.
//	@description
//	@description				Access tokens are HS256-signed JWTs carrying the caller's roles; mint one with the tokengen tool.
//
//	@contact.name				OpsBank Team
//	@contact.url				https://github.com/opsbank/payhold
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

func (r *Router) registerHolds() {
	h := &HoldsHandler{HoldService: r.HoldService}

	// POST payment-holds - moderate rate limit by subject (write operation)
	r.Mux.Handle("POST /v1/clients/{clientId}/payment-holds",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(RoleHoldCreate),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)

	// GET payment-holds - lenient rate limit (dashboards poll this)
	r.Mux.Handle("GET /v1/clients/{clientId}/payment-holds",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(RoleHoldRead),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// GET payment-holds:check - lenient rate limit (called on every payment)
	// ":check" is a literal suffix of the final segment, so it routes directly.
	r.Mux.Handle("GET /v1/clients/{clientId}/payment-holds:check",
		httpx.Chain(http.HandlerFunc(h.HandleCheck),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(RoleHoldRead),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// GET payment-holds/{holdId} - lenient rate limit
	r.Mux.Handle("GET /v1/clients/{clientId}/payment-holds/{holdId}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(RoleHoldRead),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// POST payment-holds/{holdId}:release - moderate rate limit by subject.
	// The wildcard captures "{holdId}:release" whole; HandleAction splits it.
	r.Mux.Handle("POST /v1/clients/{clientId}/payment-holds/{holdRef}",
		httpx.Chain(http.HandlerFunc(h.HandleAction),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(RoleHoldRelease),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	// POST /v1/clients - moderate rate limit by subject (admin operation)
	r.Mux.Handle("POST /v1/clients",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(RoleAdminWrite),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
