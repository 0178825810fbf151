// Package server exposes the invoice generation pipeline over HTTP.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-generator/internal/currency"
	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/render"
	"github.com/rezonia/invoice-generator/internal/store"
)

const version = "1.0.0"

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	renderer *render.PDF
	archive  store.Store
	logger   *zap.Logger
}

// Option configures a Server beyond its Config.
type Option func(*Server)

// WithStore sets the archive every successfully generated invoice is saved
// to. Without it, generated invoices are not retained.
func WithStore(s store.Store) Option {
	return func(srv *Server) {
		srv.archive = s
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(srv *Server) {
		if logger != nil {
			srv.logger = logger
		}
	}
}

// NewServer creates a new API server
func NewServer(config *Config, opts ...Option) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:   config,
		renderer: render.NewPDF(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger))
	s.router = router

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// API index and health check
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices/generate", s.handleGenerate)
		v1.POST("/invoices/validate", s.handleValidate)

		v1.GET("/currencies", s.handleCurrencies)
		v1.GET("/currencies/:code", s.handleCurrency)
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

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Message: "Invoice Generator API",
		Version: version,
		Endpoints: map[string]string{
			"POST /api/v1/invoices/generate": "Generate and download an invoice PDF",
			"POST /api/v1/invoices/validate": "Validate an invoice and preview computed totals",
			"GET /api/v1/currencies":         "List supported currencies with tax metadata",
			"GET /api/v1/currencies/:code":   "Tax metadata for a single currency",
			"GET /health":                    "Health check",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var draft model.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice payload"})
		return
	}

	inv := model.Normalize(draft)
	if result := inv.Validate(); !result.IsValid {
		c.JSON(http.StatusBadRequest, GenerateErrorResponse{
			Success: false,
			Errors:  result.Errors,
		})
		return
	}

	data, err := s.renderer.Render(inv)
	if err != nil {
		s.logger.Error("invoice render failed",
			zap.String("invoice_number", inv.InvoiceNumber),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate invoice document"})
		return
	}

	if s.archive != nil {
		if err := s.archive.Save(c.Request.Context(), inv); err != nil {
			// Archiving is best effort; the document is already rendered.
			s.logger.Warn("failed to archive invoice",
				zap.String("invoice_id", inv.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("invoice generated",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("currency", inv.Currency),
		zap.Int("items", len(inv.Items)),
		zap.Int("bytes", len(data)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", render.Filename(inv)))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *Server) handleValidate(c *gin.Context) {
	var draft model.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice payload"})
		return
	}

	inv := model.Normalize(draft)
	result := inv.Validate()

	c.JSON(http.StatusOK, ValidateResponse{
		Valid:   result.IsValid,
		Errors:  result.Errors,
		Invoice: inv,
	})
}

func (s *Server) handleCurrencies(c *gin.Context) {
	codes := currency.Codes()
	currencies := make([]CurrencyResponse, 0, len(codes))
	for _, code := range codes {
		currencies = append(currencies, CurrencyResponse{
			Code:    code,
			TaxInfo: currency.Lookup(code),
		})
	}
	c.JSON(http.StatusOK, gin.H{"currencies": currencies})
}

func (s *Server) handleCurrency(c *gin.Context) {
	code := c.Param("code")
	c.JSON(http.StatusOK, CurrencyResponse{
		Code:    code,
		Known:   currency.Known(code),
		TaxInfo: currency.Lookup(code),
	})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
