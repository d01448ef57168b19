package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/IliaW/rank-api/config"
	docs "github.com/IliaW/rank-api/docs"
	"github.com/IliaW/rank-api/handler"
	cacheClient "github.com/IliaW/rank-api/internal/cache"
	"github.com/IliaW/rank-api/internal/gap"
	"github.com/IliaW/rank-api/internal/metrics"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/lmittmann/tint"
	stats "github.com/semihalev/gin-stats"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	cfg             *config.Config
	log             *slog.Logger
	cache           cacheClient.CachedClient
	db              *sql.DB
	domainRepo      persistence.DomainStorage
	keywordRepo     persistence.KeywordStorage
	trackingRepo    persistence.TrackingStorage
	auditRepo       persistence.AuditStorage
	trafficRepo     persistence.TrafficStorage
	socialRepo      persistence.SocialStorage
	advertisingRepo persistence.AdvertisingStorage
	visibilityRepo  persistence.VisibilityStorage
	localRepo       persistence.LocalStorage
	contentRepo     persistence.ContentStorage
	apiKeyRepo      persistence.ApiKeyStorage
	gapService      gap.Analyzer
)

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg = config.MustLoad()
	log = setupLogger()
	db = setupDatabase()
	defer closeDatabase()
	cache = cacheClient.NewMemcachedClient(cfg.CacheSettings, log)
	defer cache.Close()
	setupMetrics()
	defer metrics.Unregister()

	domainRepo = persistence.NewDomainRepository(db, log)
	keywordRepo = persistence.NewKeywordRepository(db, log)
	trackingRepo = persistence.NewTrackingRepository(db, log)
	auditRepo = persistence.NewAuditRepository(db, log)
	trafficRepo = persistence.NewTrafficRepository(db, log)
	socialRepo = persistence.NewSocialRepository(db, log)
	advertisingRepo = persistence.NewAdvertisingRepository(db, log)
	visibilityRepo = persistence.NewVisibilityRepository(db, log)
	localRepo = persistence.NewLocalRepository(db, log)
	contentRepo = persistence.NewContentRepository(db, log)
	apiKeyRepo = persistence.NewApiKeyRepository(db, log)
	gapService = gap.NewService(persistence.NewGapRepository(db, log), cache, cfg.GapSettings, log)
	log.Info("starting application on port "+cfg.Port, slog.String("env", cfg.Env))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%v", cfg.Port),
		Handler:      httpServer(),
		ReadTimeout:  cfg.HttpServerSettings.ReadTimeout,
		WriteTimeout: cfg.HttpServerSettings.WriteTimeout,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("can't start server", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HttpServerSettings.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server gracefully.", slog.String("err", err.Error()))
	}
}

func httpServer() *gin.Engine {
	setupGinMod()
	r := gin.New()
	r.UseH2C = true
	r.Use(gin.Recovery())
	r.Use(setCORS())
	r.Use(handler.LimitBodySize(cfg.MaxBodySize))
	r.Use(handler.RequestID())
	r.Use(stats.RequestStats())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{SkipPaths: []string{"/ping", "/stats"}}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, stats.Report())
	})
	r.GET("/metrics/gap", func(c *gin.Context) {
		snapshot, err := metrics.Snapshot()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	})
	if gin.Mode() == gin.DebugMode {
		pprof.Register(r)
	}

	domainHandler := handler.NewDomainHandler(domainRepo)
	keywordHandler := handler.NewKeywordHandler(keywordRepo)
	gapHandler := handler.NewGapHandler(gapService)
	trackingHandler := handler.NewTrackingHandler(trackingRepo)
	auditHandler := handler.NewAuditHandler(auditRepo)
	trafficHandler := handler.NewTrafficHandler(trafficRepo)
	socialHandler := handler.NewSocialHandler(socialRepo)
	advertisingHandler := handler.NewAdvertisingHandler(advertisingRepo)
	visibilityHandler := handler.NewVisibilityHandler(visibilityRepo)
	localHandler := handler.NewLocalHandler(localRepo)
	contentHandler := handler.NewContentHandler(contentRepo)

	api := r.Group(cfg.ApiUrlPath)
	api.Use(handler.ApiKeyCheck(apiKeyRepo))

	api.GET("/domains", domainHandler.GetDomains)
	api.GET("/domains/:domain", domainHandler.GetDomain)
	api.GET("/domains/:domain/rankings", domainHandler.GetDomainRankings)
	api.GET("/domains/:domain/backlinks", domainHandler.GetDomainBacklinks)

	api.GET("/keywords", keywordHandler.GetKeywords)
	api.GET("/keywords/:keyword", keywordHandler.GetKeyword)
	api.GET("/keyword-groups", keywordHandler.GetKeywordGroups)
	api.GET("/keyword-groups/:id/keywords", keywordHandler.GetGroupKeywords)

	api.GET("/gaps/keywords", gapHandler.GetKeywordGap)
	api.GET("/gaps/backlinks", gapHandler.GetBacklinkGap)
	api.GET("/gaps/domains", gapHandler.SearchGapDomains)

	api.GET("/projects/:id/tracking/summary", trackingHandler.GetProjectSummary)
	api.GET("/projects/:id/tracking/keywords", trackingHandler.GetTrackedKeywords)
	api.GET("/projects/:id/tracking/history", trackingHandler.GetProjectHistory)
	api.GET("/tracking/keywords/:id/history", trackingHandler.GetKeywordHistory)

	api.GET("/projects/:id/audit/summary", auditHandler.GetAuditSummary)
	api.GET("/projects/:id/audit/urls", auditHandler.GetAuditUrls)
	api.GET("/projects/:id/audit/issues", auditHandler.GetIssueTypes)
	api.GET("/audit/urls/:id/issues", auditHandler.GetUrlIssues)

	api.GET("/traffic/top", trafficHandler.GetTopTraffic)
	api.GET("/traffic/domains/:domain", trafficHandler.GetDomainTraffic)
	api.GET("/traffic/domains/:domain/summary", trafficHandler.GetTrafficSummary)
	api.GET("/traffic/domains/:domain/market-trend", trafficHandler.GetMarketTrend)
	api.GET("/markets", trafficHandler.GetIndustries)
	api.GET("/markets/:industry", trafficHandler.GetMarketOverview)

	api.GET("/social/profiles", socialHandler.GetProfiles)
	api.GET("/social/profiles/:id/metrics", socialHandler.GetProfileMetrics)
	api.GET("/social/platforms", socialHandler.GetPlatforms)
	api.GET("/social/stats", socialHandler.GetSocialStats)
	api.GET("/social/posts", socialHandler.GetPosts)
	api.GET("/social/posts/top", socialHandler.GetTopPosts)
	api.GET("/social/metrics", socialHandler.GetAggregatedMetrics)

	api.GET("/advertising/ppc-keywords", advertisingHandler.GetPpcKeywords)
	api.GET("/advertising/campaigns", advertisingHandler.GetCampaigns)
	api.GET("/advertising/stats", advertisingHandler.GetAdvertisingStats)
	api.GET("/advertising/creatives", advertisingHandler.GetCreatives)
	api.GET("/advertising/competitors/:domain/ads", advertisingHandler.GetCompetitorAds)

	api.GET("/ai/mentions", visibilityHandler.GetMentions)
	api.GET("/ai/mentions/trend", visibilityHandler.GetMentionTrend)
	api.GET("/ai/visibility", visibilityHandler.GetVisibilityStats)
	api.GET("/ai/pr/campaigns", visibilityHandler.GetPrCampaigns)
	api.GET("/ai/pr/stats", visibilityHandler.GetPrStats)

	api.GET("/local/listings", localHandler.GetListings)
	api.GET("/local/stats", localHandler.GetLocalStats)
	api.GET("/local/reviews", localHandler.GetReviews)
	api.GET("/local/reviews/stats", localHandler.GetReviewStats)
	api.GET("/local/map-rankings", localHandler.GetMapRankings)
	api.GET("/local/map-rankings/locations", localHandler.GetLocationRanks)

	api.GET("/content/topics", contentHandler.GetTopics)
	api.GET("/content/topics/trending", contentHandler.GetTrendingTopics)
	api.GET("/content/pieces", contentHandler.GetPieces)
	api.GET("/content/pieces/low-scoring", contentHandler.GetLowScoringPieces)
	api.GET("/content/stats", contentHandler.GetContentStats)

	docs.SwaggerInfo.Title = fmt.Sprintf("Rank API (%s)", cfg.ServiceName)
	docs.SwaggerInfo.Description = "SEO, traffic, social, advertising and AI-visibility metrics, with keyword and backlink gap analysis."
	docs.SwaggerInfo.Version = cfg.Version
	docs.SwaggerInfo.BasePath = cfg.ApiUrlPath
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound,
			gin.H{"message": fmt.Sprintf("no route found for %s %s", c.Request.Method, c.Request.URL)})
	})

	return r
}

func setCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { //allow all origins and echoes back the caller domain
			return true
		},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-Forwarded-For",
			"X-CSRF-Token", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           cfg.CorsMaxAgeHours,
	})
}

func setupLogger() *slog.Logger {
	resolvedLogLevel := func() slog.Level {
		envLogLevel := strings.ToLower(cfg.LogLevel)
		switch envLogLevel {
		case "info":
			return slog.LevelInfo
		case "warn":
			return slog.LevelWarn
		case "error":
			return slog.LevelError
		default:
			return slog.LevelDebug
		}
	}

	replaceAttrs := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			source := a.Value.Any().(*slog.Source)
			source.File = filepath.Base(source.File)
		}
		return a
	}

	var logger *slog.Logger
	if strings.ToLower(cfg.LogType) == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource:   true,
			Level:       resolvedLogLevel(),
			ReplaceAttr: replaceAttrs}))
	} else {
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			AddSource:   true,
			Level:       resolvedLogLevel(),
			ReplaceAttr: replaceAttrs,
			NoColor:     false}))
	}

	slog.SetDefault(logger)
	logger.Debug("debug messages are enabled.")

	return logger
}

func setupGinMod() {
	env := strings.ToLower(cfg.Env)
	if env == "dev" || env == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}

func setupMetrics() {
	if err := metrics.Register(); err != nil {
		log.Error("failed to register gap metrics.", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func setupDatabase() *sql.DB {
	log.Info("connecting to the database...")
	sqlCfg := mysql.Config{
		User:                 cfg.DbSettings.User,
		Passwd:               cfg.DbSettings.Password,
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%s", cfg.DbSettings.Host, cfg.DbSettings.Port),
		DBName:               cfg.DbSettings.Name,
		AllowNativePasswords: true,
		ParseTime:            true,
	}
	database, err := sql.Open("mysql", sqlCfg.FormatDSN())
	if err != nil {
		log.Error("failed to establish database connection.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	database.SetConnMaxLifetime(cfg.DbSettings.ConnMaxLifetime)
	database.SetMaxOpenConns(cfg.DbSettings.MaxOpenConns)
	database.SetMaxIdleConns(cfg.DbSettings.MaxIdleConns)

	maxRetry := 6
	for i := 1; i <= maxRetry; i++ {
		log.Info("ping the database.", slog.String("attempt", fmt.Sprintf("%d/%d", i, maxRetry)))
		pingErr := database.Ping()
		if pingErr != nil {
			log.Error("not responding.", slog.String("err", pingErr.Error()))
			if i == maxRetry {
				log.Error("failed to establish database connection.")
				os.Exit(1)
			}
			log.Info(fmt.Sprintf("wait %d seconds", 5*i))
			time.Sleep(time.Duration(5*i) * time.Second)
		} else {
			break
		}
	}
	log.Info("connected to the database!")

	return database
}

func closeDatabase() {
	log.Info("closing database connection.")
	err := db.Close()
	if err != nil {
		log.Error("failed to close database connection.", slog.String("err", err.Error()))
	}
}
