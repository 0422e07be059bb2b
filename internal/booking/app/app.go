package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	httpapi "github.com/parkside-labs/roomgrid/internal/booking/http"
	"github.com/parkside-labs/roomgrid/internal/booking/mail"
	"github.com/parkside-labs/roomgrid/internal/booking/service"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/internal/booking/store/drivers/sqlite"
	"github.com/parkside-labs/roomgrid/pkg/cryptox"
	"github.com/parkside-labs/roomgrid/pkg/jwtx"
	"github.com/parkside-labs/roomgrid/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the booking service together: storage, signing keys,
// services, and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier
	notifier mail.Notifier
	schedule domain.Schedule

	signupService       *service.SignupService
	sessionService      *service.SessionService
	bookingService      *service.BookingService
	adminService        *service.AdminService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "roomgrid",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		schedule: domain.Schedule{
			Rooms:       cfg.RoomCount,
			SlotsPerDay: cfg.SlotsPerDay,
		},
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initNotifier()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("roomgrid starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the HTTP server, the housekeeping worker, and
// the database connection, in that order.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down roomgrid...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("roomgrid stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initKeys generates an ephemeral Ed25519 signing key. Tokens do not survive
// a restart; users just log in again.
func (app *Application) initKeys() error {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return fmt.Errorf("failed to generate signing key: %w", err)
	}

	kid := fmt.Sprintf("roomgrid-%d", time.Now().Unix())
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return fmt.Errorf("failed to initialize signer: %w", err)
	}

	app.signer = signer
	app.verifier = jwtx.NewVerifierEdDSA(kid, signer.Public(), app.cfg.Issuer)
	app.logger.Info("ephemeral signing key generated", "kid", kid)
	return nil
}

func (app *Application) initNotifier() {
	if app.cfg.SMTPHost == "" {
		app.notifier = &mail.LogNotifier{Logger: app.logger}
		app.logger.Warn("no SMTP host configured, verification codes will be logged")
		return
	}

	app.notifier = mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
	})
}

func (app *Application) initServices() {
	app.signupService = &service.SignupService{
		Store:               app.db,
		Notifier:            app.notifier,
		OTPTTL:              app.cfg.OTPTTL,
		SessionTTL:          app.cfg.SignupSessionTTL,
		ExposeCodeOnFailure: app.cfg.Env == "dev",
	}

	app.sessionService = &service.SessionService{
		Store:          app.db,
		Signer:         app.signer,
		Issuer:         app.cfg.Issuer,
		AccessTokenTTL: app.cfg.AccessTokenTTL,
	}

	app.bookingService = &service.BookingService{
		Store:    app.db,
		Schedule: app.schedule,
	}

	app.adminService = &service.AdminService{Store: app.db}

	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.UnverifiedRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.schedule,
		app.db,
		app.logger,
	)

	router.SignupService = app.signupService
	router.SessionService = app.sessionService
	router.BookingService = app.bookingService
	router.AdminService = app.adminService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
