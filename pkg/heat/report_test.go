package heat_test

import (
	. "calorsos.xyz/heat-alert-service/pkg/heat"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calorsos.xyz/heat-alert-service/pkg/auth"
	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/models"
	_ "calorsos.xyz/heat-alert-service/pkg/testing"
)

func seedReport(t *testing.T, h *Heat, tipo models.ReportType, estado models.ReportStatus) *models.Report {
	t.Helper()

	reporter := seedUser(t, h, auth.RoleUser)
	report := models.Report{
		IDUsuario:   reporter.ID,
		Tipo:        tipo,
		Nombre:      "Parque del barrio",
		Descripcion: "Sombra amplia y bancas",
		Latitud:     10.391,
		Longitud:    -75.479,
		Estado:      estado,
	}
	require.NoError(t, h.Db.Conn.Create(&report).Error)
	return &report
}

func TestValidateReport_CoolZone(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	report := seedReport(t, heatObj, models.ReportTypeCoolZone, models.ReportStatusPending)

	result, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.NoError(t, err)

	assert.Equal(t, models.ReportTypeCoolZone, result.Tipo)
	// the snapshot is the report as loaded, before the status flip
	assert.Equal(t, models.ReportStatusPending, result.Reporte.Estado)

	zone, ok := result.EntidadCreada.(*models.CoolZone)
	require.True(t, ok, "expected a cool zone, got %T", result.EntidadCreada)
	assert.Equal(t, "Parque del barrio", zone.Nombre)
	assert.Equal(t, "urbana", zone.Tipo)
	assert.Equal(t, "activa", zone.Estado)
	assert.Equal(t, adminID, zone.ValidadoPor)
	assert.Equal(t, report.ID, zone.IDReporte)

	var saved models.Report
	require.NoError(t, heatObj.Db.Conn.First(&saved, report.ID).Error)
	assert.Equal(t, models.ReportStatusValidated, saved.Estado)

	var zones []models.CoolZone
	require.NoError(t, heatObj.Db.Conn.Where("id_reporte = ?", report.ID).Find(&zones).Error)
	assert.Len(t, zones, 1)
}

func TestValidateReport_HydrationPoint(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	reporter := seedUser(t, heatObj, auth.RoleUser)

	// no name given, so the point gets the generic label
	report := models.Report{
		IDUsuario: reporter.ID,
		Tipo:      models.ReportTypeHydration,
		Latitud:   10.4,
		Longitud:  -75.5,
		Estado:    models.ReportStatusPending,
	}
	require.NoError(t, heatObj.Db.Conn.Create(&report).Error)

	result, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.NoError(t, err)

	point, ok := result.EntidadCreada.(*models.HydrationPoint)
	require.True(t, ok, "expected a hydration point, got %T", result.EntidadCreada)
	assert.Equal(t, "Punto de hidratacion reportado", point.Nombre)
	assert.Equal(t, "reporte ciudadano", point.Fuente)
	assert.Equal(t, "activa", point.Estado)
	assert.Equal(t, adminID, point.ValidadoPor)

	var saved models.Report
	require.NoError(t, heatObj.Db.Conn.First(&saved, report.ID).Error)
	assert.Equal(t, models.ReportStatusValidated, saved.Estado)
}

func TestValidateReport_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := heatObj.Report.ValidateReport(999999999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestValidateReport_NotPending(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	report := seedReport(t, heatObj, models.ReportTypeCoolZone, models.ReportStatusValidated)

	_, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.ErrorIs(t, err, ErrInvalidState)

	var zones []models.CoolZone
	require.NoError(t, heatObj.Db.Conn.Where("id_reporte = ?", report.ID).Find(&zones).Error)
	assert.Empty(t, zones)
}

func TestValidateReport_UnsupportedType(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	report := seedReport(t, heatObj, models.ReportType("peligro"), models.ReportStatusPending)

	_, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.ErrorIs(t, err, ErrUnsupportedType)

	// report left untouched
	var saved models.Report
	require.NoError(t, heatObj.Db.Conn.First(&saved, report.ID).Error)
	assert.Equal(t, models.ReportStatusPending, saved.Estado)
}

func TestValidateReport_SecondValidationLoses(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	report := seedReport(t, heatObj, models.ReportTypeCoolZone, models.ReportStatusPending)

	_, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.NoError(t, err)

	_, err = heatObj.Report.ValidateReport(report.ID, adminID)
	require.ErrorIs(t, err, ErrInvalidState)

	// exactly one promotion happened
	var zones []models.CoolZone
	require.NoError(t, heatObj.Db.Conn.Where("id_reporte = ?", report.ID).Find(&zones).Error)
	assert.Len(t, zones, 1)
}

func TestRejectReport(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	report := seedReport(t, heatObj, models.ReportTypeHydration, models.ReportStatusPending)

	snapshot, err := heatObj.Report.RejectReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, snapshot.ID)
	assert.Equal(t, models.ReportStatusPending, snapshot.Estado)

	// the row is gone, not soft-deleted
	_, err = heatObj.Report.RejectReport(report.ID)
	require.ErrorIs(t, err, ErrNotFound)

	reports, err := heatObj.Report.ListReports("")
	require.NoError(t, err)
	for _, r := range reports {
		assert.NotEqual(t, report.ID, r.ID)
	}
}

func TestCreateAndListReports(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	reporter := seedUser(t, heatObj, auth.RoleUser)

	created, err := heatObj.Report.CreateReport(&models.Report{
		IDUsuario:   reporter.ID,
		Tipo:        models.ReportTypeCoolZone,
		Nombre:      "Plaza sombreada",
		Descripcion: "Arboles grandes",
		Latitud:     10.42,
		Longitud:    -75.54,
	})
	require.NoError(t, err)
	// submissions always start pending regardless of input
	assert.Equal(t, models.ReportStatusPending, created.Estado)

	pending, err := heatObj.Report.ListReports(models.ReportStatusPending)
	require.NoError(t, err)

	var found bool
	for _, r := range pending {
		if r.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}
