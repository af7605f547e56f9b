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

	addReviewHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/add_review"
	cancelReserveHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_reserve"
	createReserveHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_reserve"
	getRefundQuoteHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_refund_quote"
	getReserveHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_reserve"
	getRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room"
	getRoomReviewsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room_reviews"
	getUserReservesHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_user_reserves"
	listRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_rooms"
	searchRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/search_rooms"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	reserveRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reserve"
	reviewRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/review"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	mailerClient "github.com/m04kA/SMC-HotelService/internal/integrations/mailer"
	reservesService "github.com/m04kA/SMC-HotelService/internal/service/reserves"
	reviewsService "github.com/m04kA/SMC-HotelService/internal/service/reviews"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	cancelReserveUC "github.com/m04kA/SMC-HotelService/internal/usecase/cancel_reserve"
	createReserveUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_reserve"
	purgeReservesUC "github.com/m04kA/SMC-HotelService/internal/usecase/purge_reserves"
	searchRoomsUC "github.com/m04kA/SMC-HotelService/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

// purgeInterval период фонового вычищения устаревших броней
const purgeInterval = 24 * time.Hour

func main() {
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

	log.Info("Starting SMC-HotelService...")
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

	// Инициализируем клиент почтового шлюза
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		cfg.Mailer.From,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Mailer client initialized (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reserveRepository *reserveRepo.Repository
		roomRepository    *roomRepo.Repository
		reviewRepository  *reviewRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reserveRepository = reserveRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reserveRepository = reserveRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reserveSvc := reservesService.NewService(reserveRepository, roomRepository, log)
	roomSvc := roomsService.NewService(roomRepository, reviewRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, reserveRepository, roomRepository, log)

	// Инициализируем use cases
	createReserveUseCase := createReserveUC.NewUseCase(
		reserveRepository,
		roomRepository,
		mailer,
		txMgr,
		log,
	)
	cancelReserveUseCase := cancelReserveUC.NewUseCase(
		reserveRepository,
		roomRepository,
		mailer,
		txMgr,
		log,
	)
	searchRoomsUseCase := searchRoomsUC.NewUseCase(
		roomRepository,
		reserveRepository,
		reviewRepository,
		log,
	)
	purgeReservesUseCase := purgeReservesUC.NewUseCase(reserveRepository, log)

	// Инициализируем handlers
	createReserve := createReserveHandler.NewHandler(createReserveUseCase, log)
	cancelReserve := cancelReserveHandler.NewHandler(cancelReserveUseCase, log)
	getRefundQuote := getRefundQuoteHandler.NewHandler(cancelReserveUseCase, log)
	getReserve := getReserveHandler.NewHandler(reserveSvc, log)
	getUserReserves := getUserReservesHandler.NewHandler(reserveSvc, log)
	searchRooms := searchRoomsHandler.NewHandler(searchRoomsUseCase, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getRoomReviews := getRoomReviewsHandler.NewHandler(reviewSvc, log)
	addReview := addReviewHandler.NewHandler(reviewSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

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

	// Каталог номеров (постранично)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Карточка номера
	api.HandleFunc("/rooms/{roomNumber:[0-9]+}", getRoom.Handle).Methods(http.MethodGet)

	// Отзывы о номере
	api.HandleFunc("/rooms/{roomNumber:[0-9]+}/reviews", getRoomReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Подбор свободных номеров на даты
	protected.HandleFunc("/rooms/available", searchRooms.Handle).Methods(http.MethodGet)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reserves", createReserve.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reserves/{reserveId}", getReserve.Handle).Methods(http.MethodGet)

	// Расчет возврата перед отменой
	protected.HandleFunc("/reserves/{reserveId}/refund", getRefundQuote.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reserves/{reserveId}", cancelReserve.Handle).Methods(http.MethodDelete)

	// Отзыв по брони
	protected.HandleFunc("/reserves/{reserveId}/review", addReview.Handle).Methods(http.MethodPost)

	// История броней пользователя
	protected.HandleFunc("/users/{userId}/reserves", getUserReserves.Handle).Methods(http.MethodGet)

	// Фоновая чистка устаревших броней
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()

		for {
			if _, err := purgeReservesUseCase.Execute(purgeCtx); err != nil {
				log.Error("Background purge failed: %v", err)
			}

			select {
			case <-purgeCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	log.Info("Background purge started (interval=%s)", purgeInterval)

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

	// Останавливаем фоновую чистку
	stopPurge()

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
