package api

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/pixkit/binder"
	"github.com/dmitrymomot/pixkit/handler"
	"github.com/dmitrymomot/pixkit/internal/transaction"
	"github.com/dmitrymomot/pixkit/internal/user"
	"github.com/dmitrymomot/pixkit/pkg/clientip"
	"github.com/dmitrymomot/pixkit/pkg/httpserver"
	"github.com/dmitrymomot/pixkit/pkg/i18n"
	"github.com/dmitrymomot/pixkit/pkg/ratelimiter"
	"github.com/dmitrymomot/pixkit/pkg/requestid"
)

// UserService is the part of user.Service exposed over HTTP.
type UserService interface {
	Register(ctx context.Context, in user.RegisterInput) (*user.User, error)
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
	SetProfilePicture(ctx context.Context, id uuid.UUID, fh *multipart.FileHeader) (*user.User, error)
}

// TransactionService is the part of transaction.Service exposed over HTTP.
type TransactionService interface {
	Create(ctx context.Context, in transaction.CreateInput) (*transaction.Transaction, error)
	List(ctx context.Context, userID uuid.UUID) ([]transaction.Transaction, error)
	QRCode(ctx context.Context, userID, id uuid.UUID, size int) ([]byte, error)
}

// Config holds HTTP API settings.
type Config struct {
	MaxBodyBytes     int64         `env:"API_MAX_BODY_BYTES" envDefault:"2097152"`
	RequestTimeout   time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"30s"`
	ReadinessTimeout time.Duration `env:"API_READINESS_TIMEOUT" envDefault:"3s"`
	// TrustProxy honors X-Forwarded-For and friends when resolving client IPs.
	TrustProxy bool `env:"API_TRUST_PROXY" envDefault:"false"`
}

// DefaultConfig mirrors the envDefault values.
var DefaultConfig = Config{
	MaxBodyBytes:     2 << 20,
	RequestTimeout:   30 * time.Second,
	ReadinessTimeout: 3 * time.Second,
}

// API serves the JSON endpoints.
type API struct {
	cfg          Config
	users        UserService
	transactions TransactionService
	translator   *i18n.Translator
	logger       *slog.Logger
	checks       map[string]httpserver.Check
	mediaPrefix  string
	media        http.Handler
	loginLimiter ratelimiter.Limiter
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

func WithConfig(cfg Config) Option {
	return func(a *API) {
		a.cfg = cfg
	}
}

// WithReadinessCheck registers a dependency probed by GET /health/ready.
func WithReadinessCheck(name string, check httpserver.Check) Option {
	return func(a *API) {
		a.checks[name] = check
	}
}

// WithMedia serves locally stored uploads under prefix, e.g. "/media".
func WithMedia(prefix string, h http.Handler) Option {
	return func(a *API) {
		a.mediaPrefix = prefix
		a.media = h
	}
}

// WithLoginLimiter throttles POST /auth/login per client IP.
func WithLoginLimiter(l ratelimiter.Limiter) Option {
	return func(a *API) {
		a.loginLimiter = l
	}
}

func New(users UserService, transactions TransactionService, translator *i18n.Translator, opts ...Option) *API {
	a := &API{
		cfg:          DefaultConfig,
		users:        users,
		transactions: transactions,
		translator:   translator,
		logger:       slog.New(slog.DiscardHandler),
		checks:       make(map[string]httpserver.Check),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.errorHandler = a.newErrorHandler()
	return a
}

// Router builds the chi router with the middleware stack and all routes.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.cfg.TrustProxy))
	r.Use(Recovery(a.logger))
	r.Use(RequestLogger(a.logger))
	r.Use(SecurityHeaders)
	r.Use(BodyLimit(a.cfg.MaxBodyBytes))
	r.Use(i18n.Middleware(a.translator))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(a.logger, a.cfg.ReadinessTimeout, a.checks))

	if a.media != nil && a.mediaPrefix != "" {
		r.Handle(a.mediaPrefix+"/*", http.StripPrefix(a.mediaPrefix, a.media))
	}

	r.Group(func(r chi.Router) {
		r.Use(Timeout(a.cfg.RequestTimeout))

		r.Get("/cpf/{cpf}", wrap(a, a.checkCPF, binder.Path(chi.URLParam)))

		r.With(a.throttle(a.loginLimiter)).Post("/auth/login", wrap(a, a.login, binder.BindJSON()))

		r.Post("/users", wrap(a, a.register, binder.BindJSON()))
		r.Post("/users/{id}/profile-picture", wrap(a, a.uploadProfilePicture,
			binder.Path(chi.URLParam),
			binder.File(),
		))

		r.Route("/users/{userID}/transactions", func(r chi.Router) {
			r.Post("/", wrap(a, a.createTransaction, binder.Path(chi.URLParam), binder.BindJSON()))
			r.Get("/", wrap(a, a.listTransactions, binder.Path(chi.URLParam)))
			r.Get("/{id}/qrcode.png", wrap(a, a.transactionQRCode, binder.Path(chi.URLParam), binder.BindQuery()))
		})
	})

	r.NotFound(wrap(a, func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}))

	return r
}

// wrap adapts a typed handler with the API error handler.
func wrap[R any](a *API, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](a.errorHandler),
	)
}

// throttleKey never returns an empty key, since the limiter skips those.
func throttleKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	if r.RemoteAddr != "" {
		return "raw:" + r.RemoteAddr
	}
	return "unknown"
}

// throttle limits requests per client IP. A nil limiter disables it.
func (a *API) throttle(l ratelimiter.Limiter) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return ratelimiter.Middleware(l,
		throttleKey,
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
			a.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
		}),
		ratelimiter.WithFailureHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			a.errorHandler(handler.NewContext(w, r), err)
		}),
	)
}
