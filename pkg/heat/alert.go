package heat

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/models"
)

func (h *Heat) createAlert(input *models.HeatAlert) (*models.HeatAlert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHeatCore,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryHeatAlert),
	)

	alert := models.HeatAlert{
		Temperatura: input.Temperatura,
		Humedad:     input.Humedad,
		IndiceUV:    input.IndiceUV,
		NivelRiesgo: input.NivelRiesgo,
		Fuente:      input.Fuente,
	}
	if alert.Fuente == "" {
		alert.Fuente = "OpenWeatherMap"
	}

	if err := h.Db.Conn.Create(&alert).Error; err != nil {
		return nil, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))

	return &alert, nil
}

func (h *Heat) listAlerts() ([]models.HeatAlert, error) {
	var alerts []models.HeatAlert
	err := h.Db.Conn.
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

func (h *Heat) getAlert(alertID uint) (*models.HeatAlert, error) {
	var alert models.HeatAlert
	if err := h.Db.Conn.First(&alert, alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("alert %d: %w", alertID, ErrNotFound)
		}
		return nil, err
	}
	return &alert, nil
}

func (h *Heat) deleteAlert(alertID uint) (*models.HeatAlert, error) {
	alert, err := h.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	if err := h.Db.Conn.Delete(&models.HeatAlert{}, alertID).Error; err != nil {
		return nil, err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameHeatCore,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryHeatAlert),
	)
	logger.Info("Alert deleted", zap.Uint("alert_id", alertID))

	return alert, nil
}

type IAlertImpl struct {
	heat *Heat
}

func (ia *IAlertImpl) CreateAlert(input *models.HeatAlert) (*models.HeatAlert, error) {
	return ia.heat.createAlert(input)
}

func (ia *IAlertImpl) ListAlerts() ([]models.HeatAlert, error) {
	return ia.heat.listAlerts()
}

func (ia *IAlertImpl) GetAlert(alertID uint) (*models.HeatAlert, error) {
	return ia.heat.getAlert(alertID)
}

func (ia *IAlertImpl) DeleteAlert(alertID uint) (*models.HeatAlert, error) {
	return ia.heat.deleteAlert(alertID)
}

func (h *Heat) GetIAlert() IAlert {
	return &IAlertImpl{heat: h}
}
