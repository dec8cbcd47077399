package api

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gotrs-io/lpa-frontend/internal/middleware"
)

// Client is everything the handlers need from Sirius.
type Client interface {
	AddObjectionClient
	AddPaymentClient
	AssignTaskClient
	CreateDocumentClient
	CreateWarningClient
	DonorClient
	EditDocumentClient
	GetPaymentsClient
	LpaClient
	ManageAttorneyDecisionsClient
	RelationshipClient
	SearchClient
	SearchPersonsClient
	SearchPostcodeClient
	SearchUsersClient
}

// Renderer renders a named page template.
type Renderer interface {
	HTML(c *gin.Context, code int, name string, data gin.H) error
}

// Options configures the router.
type Options struct {
	Prefix          string
	SiriusPublicURL string
	WebDir          string
	InsecureCookies bool
	Logger          *slog.Logger
	Registry        *prometheus.Registry
	MetricsPath     string
}

// NewRouter builds the frontend's gin engine. Every route sits under
// opts.Prefix.
func NewRouter(client Client, renderer Renderer, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(opts.Logger, opts.Prefix+"/health-check"))
	if opts.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(opts.Registry, "lpa_frontend").Handler())
	}
	r.Use(middleware.SecurityHeaders())

	errs := &errorHandler{
		renderer:        renderer,
		prefix:          opts.Prefix,
		siriusPublicURL: opts.SiriusPublicURL,
	}
	flash := &flashStore{secure: !opts.InsecureCookies}
	wrap := errs.wrap

	g := r.Group(opts.Prefix)

	g.GET("/health-check", func(c *gin.Context) { c.Status(http.StatusOK) })

	g.GET("/search-postcode", wrap(SearchPostcode(client)))
	g.GET("/search-persons", wrap(SearchPersons(client)))
	g.GET("/search-users", wrap(SearchUsers(client)))
	g.GET("/search", wrap(Search(client, renderer)))

	g.Match(getPost, "/create-warning", wrap(CreateWarning(client, renderer, flash)))
	g.Match(getPost, "/add-payment", wrap(AddPayment(client, renderer, flash)))
	g.GET("/payments/:id", wrap(GetPayments(client, renderer, flash)))
	g.GET("/lpa/:uid/payments", wrap(GetLpaPayments(client, renderer, flash)))

	g.Match(getPost, "/create-document", wrap(CreateDocument(client, renderer)))
	g.Match(getPost, "/edit-document", wrap(EditDocument(client, renderer)))

	g.GET("/lpa/:uid", wrap(GetApplicationProgress(client, renderer, flash)))
	g.GET("/lpa/:uid/lpa-details", wrap(GetLpaDetails(client, renderer)))
	g.Match(getPost, "/add-objection", wrap(AddObjection(client, renderer)))
	g.Match(getPost, "/lpa/:uid/manage-attorney-decisions", wrap(ManageAttorneyDecisions(client, renderer, flash)))

	g.Match(getPost, "/create-donor", wrap(CreateDonor(client, renderer)))
	g.Match(getPost, "/edit-donor", wrap(EditDonor(client, renderer)))
	g.Match(getPost, "/assign-task", wrap(AssignTask(client, renderer, flash)))
	g.Match(getPost, "/create-relationship", wrap(Relationship(client, renderer)))

	if opts.WebDir != "" {
		static := filepath.Join(opts.WebDir, "static")
		g.Static("/assets", filepath.Join(static, "assets"))
		g.Static("/javascript", filepath.Join(static, "javascript"))
		g.Static("/stylesheets", filepath.Join(static, "stylesheets"))
	}

	if opts.Registry != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		errs.handle(c, notFoundError{path: c.Request.URL.Path})
	})

	return r
}

var getPost = []string{http.MethodGet, http.MethodPost}
