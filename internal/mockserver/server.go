package mockserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gotrs-io/lpa-frontend/internal/middleware"
)

const adminPrefix = "/__admin"

// Server serves stubbed responses plus the WireMock admin API.
type Server struct {
	store   *Store
	journal *Journal
	logger  *slog.Logger

	matched   prometheus.Counter
	unmatched prometheus.Counter
}

// New returns a server backed by store. reg may be nil.
func New(store *Store, logger *slog.Logger, reg prometheus.Registerer) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	factory := promauto.With(reg)

	return &Server{
		store:   store,
		journal: &Journal{},
		logger:  logger,
		matched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mock_server",
			Name:      "matched_requests_total",
			Help:      "Requests answered by a stub mapping",
		}),
		unmatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mock_server",
			Name:      "unmatched_requests_total",
			Help:      "Requests with no matching stub mapping",
		}),
	}
}

func (s *Server) Store() *Store { return s.store }

func (s *Server) Journal() *Journal { return s.journal }

// Handler builds the gin engine. Anything outside /__admin is stub traffic.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.logger))

	admin := r.Group(adminPrefix)
	admin.GET("/mappings", s.listMappings)
	admin.POST("/mappings", s.createMapping)
	admin.DELETE("/mappings", s.clearMappings)
	admin.POST("/mappings/reset", s.resetMappings)
	admin.GET("/mappings/:id", s.getMapping)
	admin.DELETE("/mappings/:id", s.deleteMapping)
	admin.POST("/reset", s.resetAll)
	admin.GET("/requests", s.listRequests)
	admin.GET("/requests/unmatched", s.listUnmatched)
	admin.DELETE("/requests", s.clearRequests)

	r.NoRoute(s.stub)

	return r
}

func (s *Server) listMappings(c *gin.Context) {
	mappings := s.store.List()
	if mappings == nil {
		mappings = []Mapping{}
	}

	c.JSON(http.StatusOK, mappingsFile{
		Mappings: mappings,
		Meta:     &meta{Total: len(mappings)},
	})
}

func (s *Server) createMapping(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	m, err := parseMapping(body)
	if err != nil {
		var invalid InvalidMappingError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": invalid.Errors})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	stored := s.store.Add(m)
	s.logger.Debug("stub mapping added", "id", stored.ID, "request", stored.Request.String(), "priority", stored.Priority)

	c.JSON(http.StatusCreated, stored)
}

func (s *Server) getMapping(c *gin.Context) {
	m, ok := s.store.Get(c.Param("id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) deleteMapping(c *gin.Context) {
	if !s.store.Remove(c.Param("id")) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) clearMappings(c *gin.Context) {
	s.store.Clear()
	c.Status(http.StatusOK)
}

func (s *Server) resetMappings(c *gin.Context) {
	s.store.Reset()
	c.Status(http.StatusOK)
}

func (s *Server) resetAll(c *gin.Context) {
	s.store.Reset()
	s.journal.Clear()
	c.Status(http.StatusOK)
}

func (s *Server) listRequests(c *gin.Context) {
	requests := s.journal.Requests()
	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"meta":     meta{Total: len(requests)},
	})
}

func (s *Server) listUnmatched(c *gin.Context) {
	requests := s.journal.Unmatched()
	if requests == nil {
		requests = []LoggedRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (s *Server) clearRequests(c *gin.Context) {
	s.journal.Clear()
	c.Status(http.StatusOK)
}

func (s *Server) stub(c *gin.Context) {
	r := c.Request

	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
	}

	entry := LoggedRequest{
		Request: RequestSummary{
			Method:     r.Method,
			URL:        r.URL.RequestURI(),
			Body:       string(body),
			LoggedDate: time.Now(),
		},
	}

	m, ok := s.store.Match(r)
	if !ok {
		s.unmatched.Inc()
		s.journal.Record(entry)
		s.logger.Warn("no stub mapping matched", "method", r.Method, "url", r.URL.RequestURI())

		c.String(http.StatusNotFound, noMatchMessage(r, s.store.List()))
		return
	}

	s.matched.Inc()
	entry.WasMatched = true
	entry.StubID = m.ID
	s.journal.Record(entry)

	if d := m.Response.FixedDelayMilliseconds; d > 0 {
		select {
		case <-time.After(time.Duration(d) * time.Millisecond):
		case <-r.Context().Done():
			return
		}
	}

	writeResponse(c, m.Response)
}

func writeResponse(c *gin.Context, def ResponseDefinition) {
	payload, contentType := def.body()

	for k, v := range def.Headers {
		c.Header(k, v)
	}
	if contentType != "" && c.Writer.Header().Get("Content-Type") == "" {
		c.Header("Content-Type", contentType)
	}

	c.Status(def.status())
	if len(payload) > 0 {
		_, _ = c.Writer.Write(payload)
	}
}

// noMatchMessage explains an unmatched request and lists the closest
// mappings by path.
func noMatchMessage(r *http.Request, mappings []Mapping) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Request was not matched\n\n%s %s\n", r.Method, r.URL.RequestURI())

	var near []string
	for _, m := range mappings {
		path := m.Request.URLPath
		if path == "" {
			path, _, _ = strings.Cut(m.Request.URL, "?")
		}
		if path == r.URL.Path {
			near = append(near, m.Request.String())
		}
	}

	if len(near) > 0 {
		b.WriteString("\nMappings for the same path:\n")
		for _, n := range near {
			fmt.Fprintf(&b, "  %s\n", n)
		}
	}

	return b.String()
}

// parseMapping validates doc and decodes it.
func parseMapping(doc []byte) (Mapping, error) {
	if err := validateMapping(doc); err != nil {
		return Mapping{}, err
	}

	var m Mapping
	if err := json.Unmarshal(doc, &m); err != nil {
		return Mapping{}, err
	}
	return m, nil
}
