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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminAnalyticsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/admin_analytics"
	adminRestaurantsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/admin_restaurants"
	adminStatsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/admin_stats"
	approveRestaurantHandler "github.com/thalibook/thalibook-api/internal/api/handlers/approve_restaurant"
	cancelBookingHandler "github.com/thalibook/thalibook-api/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/thalibook/thalibook-api/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/thalibook/thalibook-api/internal/api/handlers/create_booking"
	createRestaurantHandler "github.com/thalibook/thalibook-api/internal/api/handlers/create_restaurant"
	createReviewHandler "github.com/thalibook/thalibook-api/internal/api/handlers/create_review"
	deleteRestaurantHandler "github.com/thalibook/thalibook-api/internal/api/handlers/delete_restaurant"
	getBookingHandler "github.com/thalibook/thalibook-api/internal/api/handlers/get_booking"
	getRestaurantHandler "github.com/thalibook/thalibook-api/internal/api/handlers/get_restaurant"
	getTableAvailabilityHandler "github.com/thalibook/thalibook-api/internal/api/handlers/get_table_availability"
	listNotificationsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/list_notifications"
	loginHandler "github.com/thalibook/thalibook-api/internal/api/handlers/login"
	managerRestaurantsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/manager_restaurants"
	markNotificationReadHandler "github.com/thalibook/thalibook-api/internal/api/handlers/mark_notification_read"
	myBookingsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/my_bookings"
	pendingRestaurantsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/pending_restaurants"
	registerHandler "github.com/thalibook/thalibook-api/internal/api/handlers/register"
	restaurantBookingsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/restaurant_bookings"
	restaurantReviewsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/restaurant_reviews"
	searchRestaurantsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/search_restaurants"
	topRestaurantsHandler "github.com/thalibook/thalibook-api/internal/api/handlers/top_restaurants"
	updateRestaurantHandler "github.com/thalibook/thalibook-api/internal/api/handlers/update_restaurant"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/auth"
	"github.com/thalibook/thalibook-api/internal/config"
	bookingRepo "github.com/thalibook/thalibook-api/internal/infra/storage/booking"
	notificationRepo "github.com/thalibook/thalibook-api/internal/infra/storage/notification"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	reviewRepo "github.com/thalibook/thalibook-api/internal/infra/storage/review"
	userRepo "github.com/thalibook/thalibook-api/internal/infra/storage/user"
	geocoderClient "github.com/thalibook/thalibook-api/internal/integrations/geocoder"
	adminService "github.com/thalibook/thalibook-api/internal/service/admin"
	authService "github.com/thalibook/thalibook-api/internal/service/auth"
	bookingsService "github.com/thalibook/thalibook-api/internal/service/bookings"
	notificationsService "github.com/thalibook/thalibook-api/internal/service/notifications"
	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
	reviewsService "github.com/thalibook/thalibook-api/internal/service/reviews"
	createBookingUC "github.com/thalibook/thalibook-api/internal/usecase/create_booking"
	getTableAvailabilityUC "github.com/thalibook/thalibook-api/internal/usecase/get_table_availability"
	searchRestaurantsUC "github.com/thalibook/thalibook-api/internal/usecase/search_restaurants"
	"github.com/thalibook/thalibook-api/pkg/dbmetrics"
	"github.com/thalibook/thalibook-api/pkg/logger"
	"github.com/thalibook/thalibook-api/pkg/metrics"
	"github.com/thalibook/thalibook-api/pkg/simpletxmanager"
	"github.com/thalibook/thalibook-api/pkg/txmanager"
)

func main() {
	// Подтягиваем переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting thalibook-api...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент геокодирования (Mapbox). Работает в режиме graceful degradation:
	// недоступность сервиса не блокирует создание ресторанов.
	geocoder := geocoderClient.NewClient(
		cfg.Geocoder.URL,
		cfg.Geocoder.Token,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		log,
	)
	log.Info("Geocoder client initialized (URL=%s timeout=%ds)", cfg.Geocoder.URL, cfg.Geocoder.Timeout)

	// Менеджер JWT токенов
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		restaurantRepository   *restaurantRepo.Repository
		userRepository         *userRepo.Repository
		reviewRepository       *reviewRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы.
	// Сервис уведомлений первым: на него завязаны рестораны, бронирования и админка.
	notificationsSvc := notificationsService.NewService(notificationRepository, userRepository, log)
	authSvc := authService.NewService(userRepository, tokens, log)
	restaurantsSvc := restaurantsService.NewService(restaurantRepository, bookingRepository, geocoder, notificationsSvc, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, restaurantRepository, notificationsSvc, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, restaurantRepository, txMgr, log)
	adminSvc := adminService.NewService(restaurantRepository, bookingRepository, userRepository, reviewRepository, notificationsSvc, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		txMgr,
		notificationsSvc,
		cfg.Booking.MatchWindowMinutes,
		log,
	)
	searchRestaurantsUseCase := searchRestaurantsUC.NewUseCase(
		restaurantRepository,
		bookingRepository,
		cfg.Booking.MatchWindowMinutes,
		log,
	)
	getTableAvailabilityUseCase := getTableAvailabilityUC.NewUseCase(
		restaurantRepository,
		bookingRepository,
		cfg.Booking.MatchWindowMinutes,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	searchRestaurants := searchRestaurantsHandler.NewHandler(searchRestaurantsUseCase, log)
	getRestaurant := getRestaurantHandler.NewHandler(restaurantsSvc, log)
	getTableAvailability := getTableAvailabilityHandler.NewHandler(getTableAvailabilityUseCase, log)
	restaurantReviews := restaurantReviewsHandler.NewHandler(reviewsSvc, log)
	createRestaurant := createRestaurantHandler.NewHandler(restaurantsSvc, log)
	updateRestaurant := updateRestaurantHandler.NewHandler(restaurantsSvc, log)
	deleteRestaurant := deleteRestaurantHandler.NewHandler(restaurantsSvc, log)
	managerRestaurants := managerRestaurantsHandler.NewHandler(restaurantsSvc, log)
	pendingRestaurants := pendingRestaurantsHandler.NewHandler(restaurantsSvc, log)
	approveRestaurant := approveRestaurantHandler.NewHandler(adminSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	myBookings := myBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingsSvc, log)
	restaurantBookings := restaurantBookingsHandler.NewHandler(bookingsSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationsSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationsSvc, log)
	adminStats := adminStatsHandler.NewHandler(adminSvc, log)
	adminAnalytics := adminAnalyticsHandler.NewHandler(adminSvc, log)
	topRestaurants := topRestaurantsHandler.NewHandler(adminSvc, log)
	adminRestaurants := adminRestaurantsHandler.NewHandler(restaurantsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Поиск ресторанов
	api.HandleFunc("/restaurants/search", searchRestaurants.Handle).Methods(http.MethodGet)

	// Карточка ресторана и доступность столов
	api.HandleFunc("/restaurants/{restaurantId:[0-9]+}", getRestaurant.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId:[0-9]+}/availability",
		getTableAvailability.Handle).Methods(http.MethodGet)

	// Отзывы о ресторане
	api.HandleFunc("/reviews/restaurant/{restaurantId:[0-9]+}", restaurantReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	// --- Рестораны (менеджеры) ---
	protected.HandleFunc("/restaurants", createRestaurant.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/manager", managerRestaurants.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/restaurants/pending", pendingRestaurants.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/restaurants/{restaurantId:[0-9]+}", updateRestaurant.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/restaurants/{restaurantId:[0-9]+}", deleteRestaurant.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/restaurants/{restaurantId:[0-9]+}/approve",
		approveRestaurant.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/restaurants/{restaurantId:[0-9]+}/bookings",
		restaurantBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", myBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId:[0-9]+}/read",
		markNotificationRead.Handle).Methods(http.MethodPatch)

	// --- Админка ---
	protected.HandleFunc("/admin/stats", adminStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/analytics", adminAnalytics.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/analytics/top-restaurants", topRestaurants.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/restaurants", adminRestaurants.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
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
