package heat

import (
	"go.uber.org/zap"

	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/models"
)

// fanoutAlert creates one pending notification per registered user, or a
// single global record (nil id_usuario) when no users exist. Returns the
// number of rows created.
func (h *Heat) fanoutAlert(mensaje string) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHeatCore,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryHeatNotify),
	)

	var users []models.User
	if err := h.Db.Conn.Find(&users).Error; err != nil {
		return 0, err
	}

	var notifications []models.Notification
	if len(users) == 0 {
		notifications = []models.Notification{{
			Mensaje: mensaje,
			Estado:  models.NotificationStatusPending,
		}}
	} else {
		notifications = common.Mapper(users, func(u models.User) models.Notification {
			userID := u.ID
			return models.Notification{
				IDUsuario: &userID,
				Mensaje:   mensaje,
				Estado:    models.NotificationStatusPending,
			}
		})
	}

	if err := h.Db.Conn.CreateInBatches(&notifications, 200).Error; err != nil {
		return 0, err
	}

	logger.Info("Notification fan-out complete",
		zap.Int("count", len(notifications)),
		zap.String("mensaje", mensaje))

	return len(notifications), nil
}

func (h *Heat) listNotifications(userID *uint) ([]models.Notification, error) {
	var notifications []models.Notification
	query := h.Db.Conn.Order("created_at desc")
	if userID != nil {
		query = query.Where("id_usuario = ?", *userID)
	}
	err := query.Find(&notifications).Error
	return notifications, err
}

type INotifyImpl struct {
	heat *Heat
}

func (in *INotifyImpl) FanoutAlert(mensaje string) (int, error) {
	return in.heat.fanoutAlert(mensaje)
}

func (in *INotifyImpl) ListNotifications(userID *uint) ([]models.Notification, error) {
	return in.heat.listNotifications(userID)
}

func (h *Heat) GetINotify() INotify {
	return &INotifyImpl{heat: h}
}
