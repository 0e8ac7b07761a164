package internal

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/fatih/color"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/gymflow/gymflow/internal/auth"
	"github.com/gymflow/gymflow/internal/catalog"
	"github.com/gymflow/gymflow/internal/config"
	"github.com/gymflow/gymflow/internal/db"
	"github.com/gymflow/gymflow/internal/middleware"
	"github.com/gymflow/gymflow/internal/scoring"
	"github.com/gymflow/gymflow/internal/telemetry/metrics"
	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/internal/users"
	"github.com/gymflow/gymflow/internal/workouts"
)

const serviceName = "gymflow-backend"

type Server struct {
	config *config.Config

	httpServer        *http.Server
	metricsHttpServer *http.Server

	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	authService  *auth.Service
	loginChecker *auth.LoginChecker

	metricsManager *metrics.Manager

	otelShutdown func()
}

type NewServerParams struct {
	Config        *config.Config
	RedisPassword string

	HoneycombTracingEnabled bool
}

func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	cfg := params.Config

	otelShutdown := func() {}
	if params.HoneycombTracingEnabled {
		shutdown, err := tracing.HoneycombSetup(serviceName)
		if err != nil {
			return nil, fmt.Errorf("honeycomb setup: %w", err)
		}
		otelShutdown = shutdown
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("ping db pool: %s", err)
	}

	if err := db.RunMigrations(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	poolCollector := pgxpoolprometheus.NewCollector(dbPool, map[string]string{"db_name": cfg.PostgresDBName})
	promRegistry := metrics.SetupPrometheus(poolCollector)
	metricsManager := metrics.NewManager("gymflow", promRegistry)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}
	if rdsStatus := rdb.Ping(ctx); rdsStatus.Err() != nil {
		log.Errorf("--> failed to ping redis: %s", rdsStatus.Err())
	} else {
		log.Debugf("redis ping: %s", rdsStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		sessionsCleanupTicker := time.NewTicker(8 * time.Hour)
		defer sessionsCleanupTicker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Debugf("sessions cleanup stopped")
				return
			case <-sessionsCleanupTicker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	return &Server{
		config:         cfg,
		dbPool:         dbPool,
		redisClient:    rdb,
		authService:    authService,
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		metricsManager: metricsManager,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymflow-router"))

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(usersRepo, s.authService, s.metricsManager)

	catalogRepo := catalog.NewCachedRepo(catalog.NewRepo(s.dbPool), s.config.CatalogCacheTTLSeconds)
	catalogHandler := catalog.NewHandler(catalogRepo)

	workoutsHandler := workouts.NewHandler(workouts.NewRepo(s.dbPool), s.metricsManager)
	associationsHandler := workouts.NewAssociationsHandler(workouts.NewAssociationsRepo(s.dbPool), s.metricsManager)

	scoringHandler := scoring.NewHandler(scoring.NewRepo(s.dbPool), s.metricsManager)

	rateLimitLogin := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	)

	// users / auth
	r.HandleFunc("/register", usersHandler.HandleRegister).Methods("POST", "OPTIONS")
	r.Handle("/login", rateLimitLogin(http.HandlerFunc(usersHandler.HandleLogin))).Methods("POST", "OPTIONS")
	r.HandleFunc("/logout", usersHandler.HandleLogout).Methods("GET", "OPTIONS")
	r.HandleFunc("/getDataEditUsers/{id}", usersHandler.HandleGetProfile).Methods("GET", "OPTIONS")
	r.HandleFunc("/editusers/{id}", usersHandler.HandleEditProfile).Methods("PUT", "OPTIONS")
	r.HandleFunc("/deleteUsers/{id}", usersHandler.HandleDeleteAccount).Methods("DELETE", "OPTIONS")

	// exercise catalog
	r.HandleFunc("/exercicios", catalogHandler.HandleList).Methods("GET", "OPTIONS")

	// workouts
	r.HandleFunc("/createWorkout", workoutsHandler.HandleCreate).Methods("POST", "OPTIONS")
	r.HandleFunc("/viewWorkouts/{userId}", workoutsHandler.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/updateWorkout/{id}", workoutsHandler.HandleRename).Methods("PUT", "OPTIONS")
	r.HandleFunc("/deleteWorkout/{id}/{kind}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS")

	// workout exercises
	r.HandleFunc("/addExerciseToWorkout", associationsHandler.HandleAddExercise).Methods("POST", "OPTIONS")
	r.HandleFunc("/workoutExercises/{workoutId}/{kind}", associationsHandler.HandleListExercises).Methods("GET", "OPTIONS")
	r.HandleFunc("/updateExerciseDetails", associationsHandler.HandleUpdateDetails).Methods("POST", "OPTIONS")
	r.HandleFunc("/deleteExercise/{id}/{kind}", associationsHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS")

	// scoring
	r.HandleFunc("/addPoint", scoringHandler.HandleAddPoint).Methods("POST", "OPTIONS")
	r.HandleFunc("/ranking", scoringHandler.HandleRanking).Methods("GET", "OPTIONS")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Warnf("%s", color.YellowString("unknown path: %s %s", req.Method, req.URL.Path))
		http.NotFound(w, req)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(
		middleware.PanicRecovery(s.metricsManager),
		middleware.LogRequest(),
		middleware.RequestMetrics(s.metricsManager),
		middleware.Cors(),
		authMiddleware.AuthCheck(),
		middleware.DrainAndCloseRequest(),
	)

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := fmt.Sprintf("%s:%d", host, port)
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.metricsManager.Registry(),
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Handler:      metricsRouter,
		Addr:         metricsAddr,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}
	go func() {
		log.Printf("prometheus metrics server listening on: %s", metricsAddr)
		if err := s.metricsHttpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("metrics server error: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)

	go func() {
		log.Printf(" > server listening on: [%s]", ipAndPort)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %s", err)
		}
	}()
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Inc()
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Dec()
	}
}

func (s *Server) GracefulShutdown() {
	log.Debugln("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client: %s", err)
		}
	}
	if s.dbPool != nil {
		s.dbPool.Close()
		log.Debugln("db pool closed")
	}

	sentry.Flush(5 * time.Second)

	maxWaitDuration := 15 * time.Second
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics server")
		}
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}

	log.Println("server shut down")
}
