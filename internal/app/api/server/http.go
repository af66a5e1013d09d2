package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/homegrove/estate/docs"
	"github.com/homegrove/estate/internal/app/api/handlers"
	mw "github.com/homegrove/estate/internal/app/api/middleware"
	"github.com/homegrove/estate/internal/app/service/account"
	"github.com/homegrove/estate/internal/app/service/listing"
	"github.com/homegrove/estate/internal/app/service/plan"
	"github.com/homegrove/estate/internal/app/service/statistics"
	subsvc "github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/internal/app/service/transaction"
	cfgpkg "github.com/homegrove/estate/pkg/config"
	metrics "github.com/homegrove/estate/pkg/metrics"
	"github.com/homegrove/estate/pkg/token"
	"github.com/homegrove/estate/pkg/types"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log   *zap.SugaredLogger
	Cfg   *cfgpkg.Config
	Maker *token.Maker
	Accts *account.Service
	Plans *plan.Service
	Subs  subsvc.Manager
	Lists *listing.Service
	TxMgr transaction.Manager
	Stats *statistics.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Prometheus metrics
	if d.Cfg != nil && d.Cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: d.Log,
		})
		p.SetListenAddress(d.Cfg.MetricsAddr)
		p.Use(r)

		d.Log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())

	// Unauthenticated surface: registration, login, plan catalog, browsing.
	handlers.RegisterAuthRoutes(api.Group("/auth"), d.Accts, d.Maker)
	api.GET("/subscription-plans", handlers.ApiListPlans(d.Plans))
	handlers.RegisterPublicListingRoutes(api.Group("/listings"), d.Lists)

	// Seller surface: demo payments and listing mutations.
	seller := api.Group("/")
	seller.Use(mw.RequireRole(d.Maker, types.RoleSeller))
	handlers.RegisterDemoPaymentRoutes(seller.Group("/demo-payment"), d.Subs)
	handlers.RegisterSellerListingRoutes(seller.Group("/listings"), d.Lists)

	// Staff surface: assisted subscription management.
	staff := api.Group("/staff-subscription")
	staff.Use(mw.RequireRole(d.Maker, types.RoleStaff))
	handlers.RegisterStaffSubscriptionRoutes(staff, d.Subs, d.Accts)

	// Admin surface: catalog management, transaction scans, statistics.
	admin := api.Group("/")
	admin.Use(mw.RequireRole(d.Maker, types.RoleAdmin))
	admin.PUT("/subscription-plans/update-all", handlers.ApiUpdateAllPlans(d.Plans))
	handlers.RegisterAdminRoutes(admin.Group("/admin"), d.TxMgr, d.Stats)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
