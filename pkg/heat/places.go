package heat

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"calorsos.xyz/heat-alert-service/pkg/models"
)

// The public map reads promoted entities only; creation happens exclusively
// through report validation.

func (h *Heat) listCoolZones(estado string) ([]models.CoolZone, error) {
	var zones []models.CoolZone
	query := h.Db.Conn.Order("created_at desc")
	if estado != "" {
		query = query.Where("estado = ?", estado)
	}
	err := query.Find(&zones).Error
	return zones, err
}

func (h *Heat) getCoolZone(zoneID uint) (*models.CoolZone, error) {
	var zone models.CoolZone
	if err := h.Db.Conn.First(&zone, zoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cool zone %d: %w", zoneID, ErrNotFound)
		}
		return nil, err
	}
	return &zone, nil
}

func (h *Heat) listHydrationPoints() ([]models.HydrationPoint, error) {
	var points []models.HydrationPoint
	err := h.Db.Conn.Order("created_at desc").Find(&points).Error
	return points, err
}

type IPlaceImpl struct {
	heat *Heat
}

func (ip *IPlaceImpl) ListCoolZones(estado string) ([]models.CoolZone, error) {
	return ip.heat.listCoolZones(estado)
}

func (ip *IPlaceImpl) GetCoolZone(zoneID uint) (*models.CoolZone, error) {
	return ip.heat.getCoolZone(zoneID)
}

func (ip *IPlaceImpl) ListHydrationPoints() ([]models.HydrationPoint, error) {
	return ip.heat.listHydrationPoints()
}

func (h *Heat) GetIPlace() IPlace {
	return &IPlaceImpl{heat: h}
}
