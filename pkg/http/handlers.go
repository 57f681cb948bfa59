package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"calorsos.xyz/heat-alert-service/pkg/auth"
	"calorsos.xyz/heat-alert-service/pkg/heat"
	"calorsos.xyz/heat-alert-service/pkg/models"
	"calorsos.xyz/heat-alert-service/pkg/risk"
	"calorsos.xyz/heat-alert-service/pkg/weather"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, heat.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, heat.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, heat.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, heat.ErrRunInFlight):
		return http.StatusConflict
	case errors.Is(err, weather.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, weather.ErrBadStatus):
		return http.StatusBadGateway
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
}

func success(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetClima(c *gin.Context) {
	obs, err := rs.Weather.Current(c.Request.Context(), rs.City)
	if err != nil {
		abortWithError(c, err)
		return
	}

	derived := risk.Compute(obs)

	success(c, http.StatusOK, gin.H{
		"clima":             obs,
		"nivel_calor":       derived.NivelCalor,
		"nivel_hidratacion": derived.NivelHidratacion,
		"riesgo_termico":    derived.RiesgoTermico,
		"nivel_alerta":      derived.NivelAlerta,
	})
}

type AlertRequest struct {
	Temperatura float64 `json:"temperatura"`
	Humedad     float64 `json:"humedad"`
	IndiceUv    float64 `json:"indice_uv"`
	NivelRiesgo string  `json:"nivel_riesgo"`
	Fuente      string  `json:"fuente"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"Temperatura": z.Float64().Required(),
	"Humedad":     z.Float64().Required(),
	"IndiceUv":    z.Float64().Required(),
	"NivelRiesgo": z.String().Required(),
	"Fuente":      z.String(),
})

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err})
		return
	}

	alert, err := rs.Heat.Alert.CreateAlert(&models.HeatAlert{
		Temperatura: req.Temperatura,
		Humedad:     req.Humedad,
		IndiceUV:    req.IndiceUv,
		NivelRiesgo: models.RiskLevel(req.NivelRiesgo),
		Fuente:      req.Fuente,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	success(c, http.StatusCreated, alert)
}

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	alerts, err := rs.Heat.Alert.ListAlerts()
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, alerts)
}

func (rs *RestfulServer) GetAlert(c *gin.Context) {
	alertID, ok := paramUint(c, "id_alerta")
	if !ok {
		return
	}

	alert, err := rs.Heat.Alert.GetAlert(alertID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, alert)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	alertID, ok := paramUint(c, "id_alerta")
	if !ok {
		return
	}

	alert, err := rs.Heat.Alert.DeleteAlert(alertID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, alert)
}

type ReportRequest struct {
	Tipo        string  `json:"tipo"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Latitud     float64 `json:"latitud"`
	Longitud    float64 `json:"longitud"`
}

var reportRequestSchema = z.Struct(z.Shape{
	"Tipo":        z.String().Required(),
	"Nombre":      z.String(),
	"Descripcion": z.String(),
	"Latitud":     z.Float64().Required(),
	"Longitud":    z.Float64().Required(),
})

func (rs *RestfulServer) CreateReport(c *gin.Context) {
	identity := identityFrom(c)
	if identity == nil {
		abortWithError(c, auth.ErrUnauthorized)
		return
	}

	if !rs.CheckClientLimiter(strconv.FormatUint(uint64(identity.IDUsuario), 10)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReportRequest
	if err := reportRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err})
		return
	}

	if req.Tipo != string(models.ReportTypeCoolZone) && req.Tipo != string(models.ReportTypeHydration) {
		abortWithError(c, heat.ErrUnsupportedType)
		return
	}

	report, err := rs.Heat.Report.CreateReport(&models.Report{
		IDUsuario:   identity.IDUsuario,
		Tipo:        models.ReportType(req.Tipo),
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Latitud:     req.Latitud,
		Longitud:    req.Longitud,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	success(c, http.StatusCreated, report)
}

func (rs *RestfulServer) ListReports(c *gin.Context) {
	estado := models.ReportStatus(c.Query("estado"))

	reports, err := rs.Heat.Report.ListReports(estado)
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, reports)
}

func (rs *RestfulServer) ListNotifications(c *gin.Context) {
	var userID *uint
	if raw := c.Query("id_usuario"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid id_usuario"})
			return
		}
		id := uint(parsed)
		userID = &id
	}

	notifications, err := rs.Heat.Notify.ListNotifications(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, notifications)
}

func (rs *RestfulServer) ListCoolZones(c *gin.Context) {
	zones, err := rs.Heat.Place.ListCoolZones(c.Query("estado"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, zones)
}

func (rs *RestfulServer) GetCoolZone(c *gin.Context) {
	zoneID, ok := paramUint(c, "id_zona")
	if !ok {
		return
	}

	zone, err := rs.Heat.Place.GetCoolZone(zoneID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, zone)
}

func (rs *RestfulServer) ListHydrationPoints(c *gin.Context) {
	points, err := rs.Heat.Place.ListHydrationPoints()
	if err != nil {
		abortWithError(c, err)
		return
	}
	success(c, http.StatusOK, points)
}

func (rs *RestfulServer) ValidateReport(c *gin.Context) {
	reportID, ok := paramUint(c, "id_reporte")
	if !ok {
		return
	}

	identity := identityFrom(c)
	if identity == nil {
		abortWithError(c, auth.ErrUnauthorized)
		return
	}

	result, err := rs.Heat.Report.ValidateReport(reportID, identity.IDUsuario)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var mensaje string
	switch result.Tipo {
	case models.ReportTypeCoolZone:
		mensaje = "Reporte validado y zona fresca creada correctamente"
	case models.ReportTypeHydration:
		mensaje = "Reporte validado y punto de hidratacion creado correctamente"
	default:
		mensaje = "Reporte validado correctamente"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": mensaje,
		"data": gin.H{
			"tipo":           result.Tipo,
			"reporte":        result.Reporte,
			"entidad_creada": result.EntidadCreada,
		},
	})
}

func (rs *RestfulServer) RejectReport(c *gin.Context) {
	reportID, ok := paramUint(c, "id_reporte")
	if !ok {
		return
	}

	report, err := rs.Heat.Report.RejectReport(reportID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reporte rechazado correctamente",
		"data":    report,
	})
}

// TriggerAlertRun forces one evaluation cycle outside the ticker cadence.
func (rs *RestfulServer) TriggerAlertRun(c *gin.Context) {
	if rs.Scheduler == nil {
		abortWithError(c, errors.New("scheduler not configured"))
		return
	}

	if err := rs.Scheduler.RunOnce(context.Background()); err != nil {
		abortWithError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"ejecutado": true})
}
