package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"legalapi/docs"
	"legalapi/internal/config"
	"legalapi/internal/database"
	"legalapi/internal/database/migration"
	handlers "legalapi/internal/http/handler"
	"legalapi/internal/http/middleware"
	"legalapi/internal/integrity"
	"legalapi/internal/otel"
	"legalapi/internal/repository/postgres"
	"legalapi/internal/service"
	"legalapi/internal/storage"
)

// @title Legal API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local

	// Tracing first so the DB driver and HTTP middleware pick up the provider
	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// PostgreSQL connection (pgx stdlib driver wrapped with otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Idempotent schema bootstrap
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// S3-compatible object storage for case documents
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	lawyerRepo := postgres.NewLawyerPostgres(db)
	clientRepo := postgres.NewClientPostgres(db)
	caseRepo := postgres.NewCasePostgres(db)
	receiptRepo := postgres.NewReceiptPostgres(db)
	invoiceRepo := postgres.NewInvoicePostgres(db)
	docRepo := postgres.NewCaseDocumentPostgres(db)
	checker := integrity.NewChecker(postgres.NewIntegrityProbe(db))

	// Services
	svcs := handlers.Services{
		Lawyers:   service.NewLawyerService(lawyerRepo, checker),
		Clients:   service.NewClientService(clientRepo, caseRepo, receiptRepo, checker),
		Cases:     service.NewCaseService(caseRepo, receiptRepo, checker),
		Receipts:  service.NewReceiptService(receiptRepo, checker),
		Invoices:  service.NewInvoiceService(invoiceRepo, checker),
		Search:    service.NewSearchService(caseRepo),
		Documents: service.NewCaseDocumentService(objStore, docRepo, checker),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Global middleware: request-id, JSON logs, traces, metrics
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
