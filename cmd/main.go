package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/cancel_booking"
	checkinBookingHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/checkin_booking"
	checkoutBookingHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/checkout_booking"
	createBookingHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/get_booking"
	getLotBookingsHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/get_lot_bookings"
	getOccupancyHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/get_occupancy"
	getUserBookingsHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/get_user_bookings"
	listServicesHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/list_services"
	paymentWebhookHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/payment_webhook"
	quoteBookingHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/quote_booking"
	updateAddonStatusHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/update_addon_status"
	updateBookingStatusHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/update_booking_status"
	updateServicePricesHandler "github.com/arnakr/AeroPark-Service/internal/api/handlers/update_service_prices"
	"github.com/arnakr/AeroPark-Service/internal/api/middleware"
	"github.com/arnakr/AeroPark-Service/internal/config"
	addonRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/addon"
	bookingRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/booking"
	catalogRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/catalog"
	lotRepo "github.com/arnakr/AeroPark-Service/internal/infra/storage/lot"
	"github.com/arnakr/AeroPark-Service/internal/integrations/mailclient"
	"github.com/arnakr/AeroPark-Service/internal/integrations/payments"
	"github.com/arnakr/AeroPark-Service/internal/integrations/userdirectory"
	bookingsService "github.com/arnakr/AeroPark-Service/internal/service/bookings"
	catalogService "github.com/arnakr/AeroPark-Service/internal/service/catalog"
	"github.com/arnakr/AeroPark-Service/internal/service/notifications"
	createBookingUC "github.com/arnakr/AeroPark-Service/internal/usecase/create_booking"
	getOccupancyUC "github.com/arnakr/AeroPark-Service/internal/usecase/get_occupancy"
	quoteBookingUC "github.com/arnakr/AeroPark-Service/internal/usecase/quote_booking"
	"github.com/arnakr/AeroPark-Service/pkg/dbtx"
	"github.com/arnakr/AeroPark-Service/pkg/logger"
	"github.com/arnakr/AeroPark-Service/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AeroPark-Service...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 10*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Integration clients
	mailClient := mailclient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	paymentClient := payments.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	directoryClient := userdirectory.NewClient(
		cfg.UserDirectory.URL,
		time.Duration(cfg.UserDirectory.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (mail=%s, payments=%s, directory=%s)",
		cfg.MailService.URL, cfg.PaymentService.URL, cfg.UserDirectory.URL)

	// Storage and transactions
	bookingRepository := bookingRepo.NewRepository(db)
	addonRepository := addonRepo.NewRepository(db)
	lotRepository := lotRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	txManager := dbtx.NewTransactionManager(db)

	// Services
	dispatcher := notifications.NewDispatcher(mailClient, directoryClient, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		addonRepository,
		lotRepository,
		txManager,
		dispatcher,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, txManager, log)

	// Use cases
	timeProvider := &createBookingUC.RealTimeProvider{}
	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository,
		addonRepository,
		lotRepository,
		catalogRepository,
		paymentClient,
		dispatcher,
		txManager,
		timeProvider,
		log,
	)
	quoteBookingUseCase := quoteBookingUC.NewUsecase(lotRepository, catalogRepository, log)
	getOccupancyUseCase := getOccupancyUC.NewUsecase(
		bookingRepository,
		lotRepository,
		timeProvider,
		cfg.Bookings.HighOccupancyPct,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	checkinBooking := checkinBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	checkoutBooking := checkoutBookingHandler.NewHandler(bookingSvc, log)
	updateAddonStatus := updateAddonStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getLotBookings := getLotBookingsHandler.NewHandler(bookingSvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	updateServicePrices := updateServicePricesHandler.NewHandler(catalogSvc, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(bookingSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(log))

	// Public routes: guests book and pay without an account
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/webhooks/payment", paymentWebhook.Handle).Methods(http.MethodPost)

	// Authenticated routes
	authed := api.PathPrefix("").Subrouter()
	authed.Use(middleware.RequireUser)
	authed.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	authed.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Operator console routes
	ops := api.PathPrefix("").Subrouter()
	ops.Use(middleware.RequireOperator)
	ops.HandleFunc("/bookings/{reference}/checkin", checkinBooking.Handle).Methods(http.MethodPatch)
	ops.HandleFunc("/bookings/{reference}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	ops.HandleFunc("/bookings/{reference}/checkout", checkoutBooking.Handle).Methods(http.MethodPatch)
	ops.HandleFunc("/bookings/{reference}/addons/{addonId}", updateAddonStatus.Handle).Methods(http.MethodPatch)
	ops.HandleFunc("/lots/{lotId}/bookings", getLotBookings.Handle).Methods(http.MethodGet)
	ops.HandleFunc("/lots/{lotId}/occupancy", getOccupancy.Handle).Methods(http.MethodGet)
	ops.HandleFunc("/services/{serviceId}/prices", updateServicePrices.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
