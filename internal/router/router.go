package router

import (
	"net/http"
	"time"

	"coolpay/config"
	"coolpay/internal/cache"
	"coolpay/internal/events"
	"coolpay/internal/handler"
	"coolpay/internal/middleware"
	"coolpay/internal/repository"
	"coolpay/internal/service"
	"coolpay/pkg/coolpay"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, replay *cache.ReplayCache, publisher *events.Publisher) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(300, time.Minute)))

	orderRepo := repository.NewOrderRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	gatewaySvc := service.NewGatewayConfigService(settingRepo)
	client := coolpay.NewClient(cfg.CoolPay.BaseURL, cfg.CoolPay.RequestTimeout, cfg.CoolPay.InsecureSkipVerify)

	checkoutHandler := handler.NewCheckoutHandler(orderRepo, gatewaySvc, client, publisher)
	callbackHandler := handler.NewCallbackHandler(cfg.CoolPay.ProviderIP, orderRepo, gatewaySvc, auditRepo, replay, publisher)
	orderHandler := handler.NewOrderHandler(orderRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/callback/:token", callbackHandler.Handle)
		api.POST("/checkout/:order_id/pay", authMw, checkoutHandler.Pay)
		api.GET("/orders/:id", authMw, orderHandler.Get)
	}
	return r
}
