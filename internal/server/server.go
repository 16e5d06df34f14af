// Package server exposes invoice generation over HTTP for callers that embed
// the generator in an automated billing flow instead of the CLI.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/xrechnung/internal/model"
	"github.com/rezonia/xrechnung/internal/ubl"
	"github.com/rezonia/xrechnung/pkg/xrechnunglib"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Logger       zerolog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	log    zerolog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config: config,
		router: router,
		log:    config.Logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices", s.handleGenerate)
		v1.POST("/invoices/validate", s.handleValidate)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleGenerate runs the full pipeline on a JSON request and responds with
// the finished UBL document. Nothing is written on failure.
func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	bill, err := req.Bill.toBill()
	if err != nil {
		s.rejectError(c, err)
		return
	}

	items := make([]model.HoursItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		item, err := line.toItem()
		if err != nil {
			s.rejectError(c, err)
			return
		}
		items = append(items, item)
	}

	xmlBytes, err := xrechnunglib.Generate(req.Supplier, req.Buyer, bill, items)
	if err != nil {
		s.rejectError(c, err)
		return
	}

	s.log.Info().
		Str("invoice", bill.Number).
		Str("buyer", req.Buyer.Name).
		Int("lines", len(items)).
		Msg("generated invoice")

	c.Data(http.StatusOK, "application/xml; charset=utf-8", xmlBytes)
}

// handleValidate re-checks a serialized invoice document.
func (s *Server) handleValidate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return
	}

	result, err := ubl.CheckDocument(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// rejectError maps core failure kinds onto HTTP statuses: caller mistakes are
// 422, everything else is a 500.
func (s *Server) rejectError(c *gin.Context, err error) {
	var (
		inputErr    *model.InputError
		missingErr  *model.MissingFieldError
		overflowErr *model.DateOverflowError
		encodingErr *model.EncodingError
	)

	switch {
	case errors.As(err, &inputErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: "invalid_input"})
	case errors.As(err, &missingErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: "missing_required_field"})
	case errors.As(err, &overflowErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: "date_overflow"})
	case errors.As(err, &encodingErr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Kind: "encoding_error"})
	default:
		s.log.Error().Err(err).Msg("invoice generation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
