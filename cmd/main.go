package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/smolin2019/vehicle-auction-service/internal/handlers"
	"github.com/smolin2019/vehicle-auction-service/internal/jwt"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/middlewares"
	"github.com/smolin2019/vehicle-auction-service/internal/repositories"
	"github.com/smolin2019/vehicle-auction-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title vehicle-auction-service API
// @version 1.0.0
// @description Backend for a vehicle auction marketplace: listings, bids, notifications, accounts
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "auction")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	kafkaTopic = getEnv("KAFKA_BID_TOPIC", "auction.bids")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Create schema and seed the administrator account
	if err := repositories.Bootstrap(ctx, db); err != nil {
		logger.Log.Errorw("database bootstrap failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for accepted-bid events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	vehicleReadRepo := repositories.NewVehicleReadRepository(db)
	vehicleWriteRepo := repositories.NewVehicleWriteRepository(db, middlewares.GetTxFromContext)
	bidReadRepo := repositories.NewBidReadRepository(db)
	bidWriteRepo := repositories.NewBidWriteRepository(db, middlewares.GetTxFromContext)
	notificationReadRepo := repositories.NewNotificationReadRepository(db)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db, middlewares.GetTxFromContext)
	revokedTokenRepo := repositories.NewRevokedTokenRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, jwtSvc, revokedTokenRepo)
	vehicleService := services.NewVehicleService(vehicleReadRepo, vehicleWriteRepo, bidReadRepo, bidWriteRepo)
	bidService := services.NewBidService(vehicleReadRepo, bidReadRepo, bidWriteRepo, notificationWriteRepo, kafkaWriter)
	accountService := services.NewAccountService(userReadRepo, userWriteRepo, bidReadRepo)
	notificationService := services.NewNotificationService(notificationReadRepo, notificationWriteRepo)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService, jwtSvc)
	checkAuthHandler := handlers.NewCheckAuthHandler(jwtSvc, revokedTokenRepo)
	vehiclesHandler := handlers.NewGetVehiclesHandler(vehicleService)
	bidHandler := handlers.NewPlaceBidHandler(bidService)
	notificationsHandler := handlers.NewGetNotificationsHandler(notificationService)
	markReadHandler := handlers.NewMarkNotificationReadHandler(notificationService)
	profileHandler := handlers.NewGetProfileHandler(accountService)
	bidHistoryHandler := handlers.NewGetBidHistoryHandler(accountService)
	depositHandler := handlers.NewDepositHandler(accountService)
	createVehicleHandler := handlers.NewCreateVehicleHandler(vehicleService)
	updateVehicleHandler := handlers.NewUpdateVehicleHandler(vehicleService)
	deleteVehicleHandler := handlers.NewDeleteVehicleHandler(vehicleService)
	markSoldHandler := handlers.NewMarkVehicleSoldHandler(vehicleService)
	listUsersHandler := handlers.NewListUsersHandler(adminService)
	updateUserHandler := handlers.NewUpdateUserHandler(adminService)

	authMiddleware := middlewares.AuthMiddleware(jwtSvc, revokedTokenRepo)
	txMiddleware := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.Post("/logout", logoutHandler)
		r.Get("/check-auth", checkAuthHandler)
		r.Get("/vehicles", vehiclesHandler)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.With(txMiddleware).Post("/vehicles/{vehicleID}/bid", bidHandler)
			r.Get("/notifications", notificationsHandler)
			r.Post("/notifications/{notificationID}/read", markReadHandler)
			r.Get("/profile", profileHandler)
			r.Get("/bids", bidHistoryHandler)
			r.Post("/balance/deposit", depositHandler)

			// Admin routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.AdminMiddleware)

				r.Post("/vehicles", createVehicleHandler)
				r.Put("/vehicles/{vehicleID}", updateVehicleHandler)
				r.With(txMiddleware).Delete("/vehicles/{vehicleID}", deleteVehicleHandler)
				r.Post("/vehicles/{vehicleID}/sold", markSoldHandler)
				r.Get("/users", listUsersHandler)
				r.Put("/users/{userID}", updateUserHandler)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
