package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifequest_backend/internal/catalog"
	"lifequest_backend/internal/config"
	"lifequest_backend/internal/controller"
	"lifequest_backend/internal/repository"
	"lifequest_backend/internal/service"
	"lifequest_backend/pkg/database"
	"lifequest_backend/pkg/logger"
	"lifequest_backend/pkg/monitoring"
	"lifequest_backend/pkg/security"
	"lifequest_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	profile *repository.ProfileRepository
	civic   *repository.CivicRepository
}

type services struct {
	taskGen         *service.TaskGenService
	profile         *service.ProfileService
	personalization *service.PersonalizationService
	progress        *service.ProgressService
	civic           *service.CivicService
	backup          *service.BackupService
}

type controllers struct {
	achievement *controller.AchievementController
	task        *controller.TaskController
	civic       *controller.CivicController
	profile     *controller.ProfileController
	backup      *controller.BackupController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 热更新配置并通知各订阅方
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	var store repository.BlobStore = repository.NewGormBlobStore(db)
	if rdb != nil {
		// Redis 作为读穿透缓存层，数据库仍是权威存储
		store = repository.NewLayeredBlobStore(store, rdb)
	}
	return &repositories{
		profile: repository.NewProfileRepository(store),
		civic:   repository.NewCivicRepository(db),
	}
}

func (a *App) initServices(repos *repositories, rdb *redis.Client) *services {
	s := &services{}

	cat := catalog.New()
	s.taskGen = service.NewTaskGenService(cat)
	s.profile = service.NewProfileService(repos.profile, s.taskGen)
	s.personalization = service.NewPersonalizationService(cat, rdb)
	s.progress = service.NewProgressService(s.profile, s.personalization, s.taskGen, cat)
	s.civic = service.NewCivicService(cat, s.taskGen, s.profile, repos.civic)
	s.backup = service.NewBackupService(s.profile, s.taskGen)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	defaultUser := a.Config.Server.DefaultUser
	return &controllers{
		achievement: controller.NewAchievementController(s.personalization, s.progress, s.profile, defaultUser),
		task:        controller.NewTaskController(s.progress, defaultUser),
		civic:       controller.NewCivicController(s.civic, defaultUser),
		profile:     controller.NewProfileController(s.profile, defaultUser),
		backup:      controller.NewBackupController(s.backup, defaultUser),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, running without cache layer", zap.Error(err))
			rdb = nil
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lifequest", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
