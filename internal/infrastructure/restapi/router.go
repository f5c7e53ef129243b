package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RouterOptions configures SetupRouter.
type RouterOptions struct {
	Limiter     *rate.Limiter
	MetricsPath string // empty disables /metrics
	Logger      *zap.Logger
}

// SetupRouter configures and returns the gin engine.
func SetupRouter(handler *ActionHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", APIKeyHeader}
	router.Use(cors.New(corsConfig))

	if opts.Logger != nil {
		router.Use(ZapLoggerMiddleware(opts.Logger))
	}
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/operations", handler.ListOperationsHandler)
		v1.GET("/networks", handler.ListNetworksHandler)

		actions := v1.Group("/actions")
		if opts.Limiter != nil {
			actions.Use(RateLimitMiddleware(opts.Limiter))
		}
		actions.POST("", handler.ExecuteActionHandler)
	}

	return router
}
