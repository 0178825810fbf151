package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-generator/internal/server"
	"github.com/rezonia/invoice-generator/internal/store"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
	dataFile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for generating invoice documents.

The API provides endpoints for:
  - POST /api/v1/invoices/generate  - Generate and download an invoice PDF
  - POST /api/v1/invoices/validate  - Validate and preview computed totals
  - GET  /api/v1/currencies         - List supported currencies
  - GET  /api/v1/currencies/:code   - Tax metadata for one currency
  - GET  /health                    - Health check

Examples:
  # Start server on default port
  invoice-generator serve

  # Start on custom port, archiving generated invoices to a data file
  invoice-generator serve --address :3000 --data-file data/invoices.json

  # Start in debug mode
  invoice-generator serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address (env: INVOICE_ADDR)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "HTTP write timeout")
	serveCmd.Flags().StringVar(&dataFile, "data-file", "", "JSON file to archive generated invoices to (env: INVOICE_DATA_FILE)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("address") {
		if addr := os.Getenv("INVOICE_ADDR"); addr != "" {
			serverAddr = addr
		}
	}
	if dataFile == "" {
		dataFile = os.Getenv("INVOICE_DATA_FILE")
	}

	logger, err := newLogger(serverDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	opts := []server.Option{server.WithLogger(logger)}
	if dataFile != "" {
		fileStore, err := store.NewFile(dataFile)
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}
		opts = append(opts, server.WithStore(fileStore))
		logger.Info("archiving generated invoices", zap.String("data_file", dataFile))
	}

	srv := server.NewServer(config, opts...)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down server")
		os.Exit(0)
	}()

	logger.Info("starting server", zap.String("address", serverAddr))
	return srv.Run()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
