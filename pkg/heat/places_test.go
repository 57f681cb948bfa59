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

func TestListCoolZones_AfterPromotion(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	report := seedReport(t, heatObj, models.ReportTypeCoolZone, models.ReportStatusPending)

	result, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.NoError(t, err)
	promoted := result.EntidadCreada.(*models.CoolZone)

	active, err := heatObj.Place.ListCoolZones("activa")
	require.NoError(t, err)

	var found bool
	for _, z := range active {
		if z.ID == promoted.ID {
			found = true
		}
	}
	assert.True(t, found)

	inactive, err := heatObj.Place.ListCoolZones("inactiva")
	require.NoError(t, err)
	for _, z := range inactive {
		assert.NotEqual(t, promoted.ID, z.ID)
	}
}

func TestGetCoolZone(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	report := seedReport(t, heatObj, models.ReportTypeCoolZone, models.ReportStatusPending)

	result, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.NoError(t, err)
	promoted := result.EntidadCreada.(*models.CoolZone)

	zone, err := heatObj.Place.GetCoolZone(promoted.ID)
	require.NoError(t, err)
	assert.Equal(t, promoted.Nombre, zone.Nombre)
	assert.Equal(t, report.ID, zone.IDReporte)

	_, err = heatObj.Place.GetCoolZone(999999999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListHydrationPoints_AfterPromotion(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, heatObj, _, _, _ := GetMockHeatWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	adminID := seedUser(t, heatObj, auth.RoleAdmin).ID
	report := seedReport(t, heatObj, models.ReportTypeHydration, models.ReportStatusPending)

	result, err := heatObj.Report.ValidateReport(report.ID, adminID)
	require.NoError(t, err)
	promoted := result.EntidadCreada.(*models.HydrationPoint)

	points, err := heatObj.Place.ListHydrationPoints()
	require.NoError(t, err)

	var found bool
	for _, p := range points {
		if p.ID == promoted.ID {
			found = true
			assert.Equal(t, "reporte ciudadano", p.Fuente)
		}
	}
	assert.True(t, found)
}
