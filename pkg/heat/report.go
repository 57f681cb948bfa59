package heat

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/models"
)

// PromotionResult is what a successful validation returns: the report
// snapshot as it was loaded plus the entity created from it.
type PromotionResult struct {
	Tipo          models.ReportType `json:"tipo"`
	Reporte       models.Report     `json:"reporte"`
	EntidadCreada any               `json:"entidad_creada"`
}

func (h *Heat) createReport(input *models.Report) (*models.Report, error) {
	report := models.Report{
		IDUsuario:   input.IDUsuario,
		Tipo:        input.Tipo,
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		Latitud:     input.Latitud,
		Longitud:    input.Longitud,
		Estado:      models.ReportStatusPending,
	}

	if err := h.Db.Conn.Create(&report).Error; err != nil {
		return nil, err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameHeatCore,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryHeatReport),
	)
	logger.Info("Report received", zap.Reflect("report", report))

	return &report, nil
}

func (h *Heat) listReports(estado models.ReportStatus) ([]models.Report, error) {
	var reports []models.Report
	query := h.Db.Conn.Order("created_at desc")
	if estado != "" {
		query = query.Where("estado = ?", estado)
	}
	err := query.Find(&reports).Error
	return reports, err
}

// validateReport promotes a pending report into a cool zone or hydration
// point and flips the report to validado. Entity creation and the status flip
// run in one transaction; the flip is conditional on the report still being
// pending, so a concurrent validation loses cleanly and its entity rolls back.
func (h *Heat) validateReport(reportID uint, adminID uint) (*PromotionResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHeatCore,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryHeatReport),
	)

	var report models.Report
	if err := h.Db.Conn.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report %d: %w", reportID, ErrNotFound)
		}
		return nil, err
	}

	if report.Estado != models.ReportStatusPending {
		return nil, fmt.Errorf("report %d is %q: %w", reportID, report.Estado, ErrInvalidState)
	}

	var created any
	err := h.Db.Conn.Transaction(func(tx *gorm.DB) error {
		switch report.Tipo {
		case models.ReportTypeCoolZone:
			zone := &models.CoolZone{
				Nombre:      nameOrDefault(report.Nombre, "Zona fresca reportada"),
				Descripcion: report.Descripcion,
				Latitud:     report.Latitud,
				Longitud:    report.Longitud,
				Tipo:        "urbana",
				Estado:      "activa",
				ValidadoPor: adminID,
				IDReporte:   report.ID,
			}
			if err := tx.Create(zone).Error; err != nil {
				return err
			}
			created = zone

		case models.ReportTypeHydration:
			point := &models.HydrationPoint{
				Nombre:      nameOrDefault(report.Nombre, "Punto de hidratacion reportado"),
				Direccion:   report.Descripcion,
				Latitud:     report.Latitud,
				Longitud:    report.Longitud,
				Estado:      "activa",
				Fuente:      "reporte ciudadano",
				ValidadoPor: adminID,
				IDReporte:   report.ID,
			}
			if err := tx.Create(point).Error; err != nil {
				return err
			}
			created = point

		default:
			return fmt.Errorf("report %d type %q: %w", report.ID, report.Tipo, ErrUnsupportedType)
		}

		result := tx.Model(&models.Report{}).
			Where("id = ? AND estado = ?", report.ID, models.ReportStatusPending).
			Update("estado", models.ReportStatusValidated)
		if result.Error != nil {
			// the entity insert already succeeded inside this transaction;
			// the rollback is attempted, and the condition is still flagged
			// for manual remediation
			return fmt.Errorf("report %d: %v: %w", report.ID, result.Error, ErrInconsistency)
		}
		if result.RowsAffected == 0 {
			// a concurrent validation won the compare-and-set
			return fmt.Errorf("report %d: %w", report.ID, ErrInvalidState)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Report validated",
		zap.Uint("report_id", report.ID),
		zap.Uint("admin_id", adminID),
		zap.String("tipo", string(report.Tipo)))

	return &PromotionResult{
		Tipo:          report.Tipo,
		Reporte:       report,
		EntidadCreada: created,
	}, nil
}

// rejectReport deletes the report outright and returns its prior snapshot.
// There is no audit trail for rejected reports.
func (h *Heat) rejectReport(reportID uint) (*models.Report, error) {
	var report models.Report
	if err := h.Db.Conn.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report %d: %w", reportID, ErrNotFound)
		}
		return nil, err
	}

	if err := h.Db.Conn.Delete(&models.Report{}, reportID).Error; err != nil {
		return nil, err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameHeatCore,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryHeatReport),
	)
	logger.Info("Report rejected and removed", zap.Uint("report_id", reportID))

	return &report, nil
}

func nameOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

type IReportImpl struct {
	heat *Heat
}

func (ir *IReportImpl) CreateReport(input *models.Report) (*models.Report, error) {
	return ir.heat.createReport(input)
}

func (ir *IReportImpl) ListReports(estado models.ReportStatus) ([]models.Report, error) {
	return ir.heat.listReports(estado)
}

func (ir *IReportImpl) ValidateReport(reportID uint, adminID uint) (*PromotionResult, error) {
	return ir.heat.validateReport(reportID, adminID)
}

func (ir *IReportImpl) RejectReport(reportID uint) (*models.Report, error) {
	return ir.heat.rejectReport(reportID)
}

func (h *Heat) GetIReport() IReport {
	return &IReportImpl{heat: h}
}
