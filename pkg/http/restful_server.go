package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"calorsos.xyz/heat-alert-service/pkg/auth"
	"calorsos.xyz/heat-alert-service/pkg/heat"
	"calorsos.xyz/heat-alert-service/pkg/weather"
)

const identityKey = "identity"

type RestfulServer struct {
	Server           *gin.Engine
	Heat             *heat.Heat
	Weather          weather.Source
	Scheduler        *heat.AlertScheduler
	Verifier         auth.Verifier
	RateLimiterStore *heat.RateLimiterStore
	City             string
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(clientKey)
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// RequireRole verifies the bearer token and, when roles are given, the role
// it carries, before any handler mutation runs.
func (rs *RestfulServer) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		identity, err := rs.Verifier.VerifyRole(token, roles...)
		if err != nil {
			c.AbortWithStatusJSON(statusForAuthError(err), gin.H{"error": err.Error()})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

func identityFrom(c *gin.Context) *auth.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*auth.Identity)
	return identity
}

func statusForAuthError(err error) int {
	if err == auth.ErrForbidden {
		return http.StatusForbidden
	}
	return http.StatusUnauthorized
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rs.Server.GET("/clima", rs.GetClima)

	alertas := rs.Server.Group("/alertas_calor")
	{
		alertas.POST("", rs.RequireRole(auth.RoleAdmin), rs.CreateAlert)
		alertas.GET("", rs.ListAlerts)
		alertas.GET("/:id_alerta", rs.GetAlert)
		alertas.DELETE("/:id_alerta", rs.RequireRole(auth.RoleAdmin), rs.DeleteAlert)
	}

	reportes := rs.Server.Group("/reportes")
	{
		reportes.POST("", rs.RequireRole(), rs.CreateReport)
		reportes.GET("", rs.ListReports)
	}

	rs.Server.GET("/notificaciones", rs.ListNotifications)

	zonas := rs.Server.Group("/zonas_frescas")
	{
		zonas.GET("", rs.ListCoolZones)
		zonas.GET("/:id_zona", rs.GetCoolZone)
	}

	rs.Server.GET("/puntos_hidratacion", rs.ListHydrationPoints)

	admin := rs.Server.Group("/admin", rs.RequireRole(auth.RoleAdmin))
	{
		admin.PUT("/validar_reporte/:id_reporte", rs.ValidateReport)
		admin.PUT("/rechazar_reporte/:id_reporte", rs.RejectReport)
		admin.POST("/ejecutar_alerta", rs.TriggerAlertRun)
	}
}
