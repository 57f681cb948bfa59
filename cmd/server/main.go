package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"calorsos.xyz/heat-alert-service/pkg/auth"
	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/config"
	"calorsos.xyz/heat-alert-service/pkg/db"
	"calorsos.xyz/heat-alert-service/pkg/heat"
	heatHttp "calorsos.xyz/heat-alert-service/pkg/http"
	"calorsos.xyz/heat-alert-service/pkg/models"
	"calorsos.xyz/heat-alert-service/pkg/observability"
	"calorsos.xyz/heat-alert-service/pkg/weather"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var dbInstance *db.DB
	switch cfg.DBType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HEAT_DB_TYPE: " + cfg.DBType)
	}

	logger := common.GetLogger()

	heatCore := heat.Heat{
		Db: *dbInstance,
	}
	heatCore.WithServices(heat.ServiceOpts{
		Alert:  heatCore.GetIAlert(),
		Notify: heatCore.GetINotify(),
		Report: heatCore.GetIReport(),
		Place:  heatCore.GetIPlace(),
	})

	weatherClient := weather.NewClient(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey, cfg.WeatherTimeout)

	metrics := observability.NewMetrics()

	scheduler := heat.NewAlertScheduler(&heatCore, weatherClient, cfg.City, metrics)
	scheduler.Interval = cfg.AlertInterval
	scheduler.FetchTimeout = cfg.WeatherTimeout
	scheduler.Start(context.Background())

	tokens := auth.NewStaticTokens()
	if cfg.AdminToken != "" {
		admin := models.User{Nombre: "admin", Correo: "admin@calorsos.local", Rol: auth.RoleAdmin}
		if err := dbInstance.Conn.Where(models.User{Correo: admin.Correo}).FirstOrCreate(&admin).Error; err != nil {
			log.Fatalf("failed to ensure admin user: %v", err)
		}
		tokens.Register(cfg.AdminToken, auth.Identity{IDUsuario: admin.ID, Nombre: admin.Nombre, Rol: auth.RoleAdmin})
	} else {
		logger.Warn("HEAT_ADMIN_TOKEN not set, admin endpoints will reject every request")
	}

	logger.Info("Starting HTTP server on port " + cfg.HTTPHostPort)
	rs := &heatHttp.RestfulServer{
		Server:           gin.Default(),
		Heat:             &heatCore,
		Weather:          weatherClient,
		Scheduler:        scheduler,
		Verifier:         tokens,
		RateLimiterStore: heat.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		City:             cfg.City,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("city", cfg.City),
		zap.Duration("alert_interval", cfg.AlertInterval),
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)))

	logger.Info("Starting HTTP server on: " + cfg.HTTPHostPort)
	if err := rs.Server.Run(cfg.HTTPHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
