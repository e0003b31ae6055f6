package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/laksanil/vivaahready/internal/config"
	"github.com/laksanil/vivaahready/internal/infra/httpclient"
	"github.com/laksanil/vivaahready/internal/infra/notifygw"
	pgrepo "github.com/laksanil/vivaahready/internal/repo/postgres"
	redrepo "github.com/laksanil/vivaahready/internal/repo/redis"
	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	candsvc "github.com/laksanil/vivaahready/internal/services/candidates"
	interestsvc "github.com/laksanil/vivaahready/internal/services/interests"
	notifysvc "github.com/laksanil/vivaahready/internal/services/notify"
	profilesvc "github.com/laksanil/vivaahready/internal/services/profiles"
	ratesvc "github.com/laksanil/vivaahready/internal/services/rate"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN, int32(cfg.Postgres.MaxConns)); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	rateRepo := redrepo.NewRateRepo(redisClient)
	candidateCacheRepo := redrepo.NewCandidateCacheRepo(redisClient)
	profileRepo := pgrepo.NewProfileRepo(pool)
	interestRepo := pgrepo.NewInterestRepo(pool)
	declinedRepo := pgrepo.NewDeclinedRepo(pool)
	notificationRepo := pgrepo.NewNotificationRepo(pool)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	rateLimiter := ratesvc.NewLimiter(rateRepo, cfg.Rate.InterestsPerMinute, cfg.Rate.InterestsPerDay)

	gwClient := httpclient.New(cfg.Notify.DeliveryTimeout)
	notifyService := notifysvc.NewService(notifysvc.Dependencies{
		Store:    notificationRepo,
		Profiles: profileRepo,
		Contacts: profileRepo,
		Email:    notifygw.NewEmailGateway(gwClient, cfg.Notify.EmailEndpoint, cfg.Notify.EmailAPIKey),
		SMS:      notifygw.NewSMSGateway(gwClient, cfg.Notify.SMSEndpoint, cfg.Notify.SMSAPIKey),
		Logger:   log,
	}, notifysvc.Config{
		EnableEmail:     cfg.Notify.EnableEmail,
		EnableSMS:       cfg.Notify.EnableSMS,
		DeliveryTimeout: cfg.Notify.DeliveryTimeout,
	})

	profileService := profilesvc.NewService(profileRepo, candidateCacheRepo)
	candidateService := candsvc.NewService(profileRepo, candidateCacheRepo, candsvc.Config{
		PageSize: cfg.Matching.PageSize,
		CacheTTL: cfg.Matching.CacheTTL,
	})
	interestService := interestsvc.NewService(interestsvc.Dependencies{
		Pool:      pool,
		Interests: interestRepo,
		Declined:  declinedRepo,
		Contacts:  profileRepo,
		Profiles:  profileRepo,
		Limiter:   rateLimiter,
		Notifier:  notifyService,
		PageCache: candidateCacheRepo,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		JWTManager:       jwtManager,
		ProfileService:   profileService,
		CandidateService: candidateService,
		InterestService:  interestService,
		NotifyService:    notifyService,
		Logger:           log,
		Config:           cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
