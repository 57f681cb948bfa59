// Package heat is the core of the alerting backend: the alert store, the
// notification fan-out, the report promotion workflow and the recurring
// alert scheduler.
package heat

import (
	"calorsos.xyz/heat-alert-service/pkg/db"
	"calorsos.xyz/heat-alert-service/pkg/models"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks calorsos.xyz/heat-alert-service/pkg/heat IAlert,INotify,IReport,IPlace

type IAlert interface {
	CreateAlert(input *models.HeatAlert) (*models.HeatAlert, error)
	ListAlerts() ([]models.HeatAlert, error)
	GetAlert(alertID uint) (*models.HeatAlert, error)
	DeleteAlert(alertID uint) (*models.HeatAlert, error)
}

type INotify interface {
	FanoutAlert(mensaje string) (int, error)
	ListNotifications(userID *uint) ([]models.Notification, error)
}

type IReport interface {
	CreateReport(input *models.Report) (*models.Report, error)
	ListReports(estado models.ReportStatus) ([]models.Report, error)
	ValidateReport(reportID uint, adminID uint) (*PromotionResult, error)
	RejectReport(reportID uint) (*models.Report, error)
}

// IPlace reads the community map entities promoted from reports.
type IPlace interface {
	ListCoolZones(estado string) ([]models.CoolZone, error)
	GetCoolZone(zoneID uint) (*models.CoolZone, error)
	ListHydrationPoints() ([]models.HydrationPoint, error)
}

type Heat struct {
	Db     db.DB
	Alert  IAlert
	Notify INotify
	Report IReport
	Place  IPlace
}

type ServiceOpts struct {
	Alert  IAlert
	Notify INotify
	Report IReport
	Place  IPlace
}

func (h *Heat) WithServices(opts ServiceOpts) *Heat {
	if opts.Alert != nil {
		h.Alert = opts.Alert
	}
	if opts.Notify != nil {
		h.Notify = opts.Notify
	}
	if opts.Report != nil {
		h.Report = opts.Report
	}
	if opts.Place != nil {
		h.Place = opts.Place
	}
	return h
}
