package models

import "time"

// RiskLevel is the severity recorded on a heat alert. Values are ordered:
// ninguno < moderado < alto < extremo.
type RiskLevel string

const (
	RiskLevelNone     RiskLevel = "ninguno"
	RiskLevelModerate RiskLevel = "moderado"
	RiskLevelHigh     RiskLevel = "alto"
	RiskLevelExtreme  RiskLevel = "extremo"
)

type ReportType string

const (
	ReportTypeCoolZone  ReportType = "zona_fresca"
	ReportTypeHydration ReportType = "hidratacion"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pendiente"
	ReportStatusValidated ReportStatus = "validado"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pendiente"
	NotificationStatusSent    NotificationStatus = "enviada"
)

type User struct {
	ID     uint   `gorm:"primaryKey" json:"id_usuario"`
	Nombre string `json:"nombre"`
	Correo string `gorm:"uniqueIndex" json:"correo"`
	Rol    string `gorm:"type:varchar(20)" json:"rol"`
}

func (User) TableName() string { return "usuarios" }

// HeatAlert rows are immutable after creation except for deletion.
type HeatAlert struct {
	ID          uint      `gorm:"primaryKey" json:"id_alerta"`
	Temperatura float64   `json:"temperatura"`
	Humedad     float64   `json:"humedad"`
	IndiceUV    float64   `gorm:"column:indice_uv" json:"indice_uv"`
	NivelRiesgo RiskLevel `gorm:"type:varchar(20)" json:"nivel_riesgo"`
	Fuente      string    `json:"fuente"`
	CreatedAt   time.Time `json:"created_at"`
}

func (HeatAlert) TableName() string { return "alertas_calor" }

// Notification with a nil IDUsuario is a global broadcast record.
type Notification struct {
	ID        uint               `gorm:"primaryKey" json:"id_notificacion"`
	IDUsuario *uint              `gorm:"column:id_usuario;index" json:"id_usuario"`
	Mensaje   string             `json:"mensaje"`
	Estado    NotificationStatus `gorm:"type:varchar(20)" json:"estado"`
	CreatedAt time.Time          `json:"created_at"`
}

func (Notification) TableName() string { return "notificaciones" }

type Report struct {
	ID          uint         `gorm:"primaryKey" json:"id_reporte"`
	IDUsuario   uint         `gorm:"column:id_usuario;index" json:"id_usuario"`
	Tipo        ReportType   `gorm:"type:varchar(20)" json:"tipo"`
	Nombre      string       `json:"nombre"`
	Descripcion string       `json:"descripcion"`
	Latitud     float64      `json:"latitud"`
	Longitud    float64      `json:"longitud"`
	Estado      ReportStatus `gorm:"type:varchar(20);index" json:"estado"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (Report) TableName() string { return "reportes" }

// CoolZone keeps a back-reference to the report it was promoted from; the
// report stays the source of truth for audit.
type CoolZone struct {
	ID          uint      `gorm:"primaryKey" json:"id_zona"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Latitud     float64   `json:"latitud"`
	Longitud    float64   `json:"longitud"`
	Tipo        string    `gorm:"type:varchar(20)" json:"tipo"`
	Estado      string    `gorm:"type:varchar(20)" json:"estado"`
	ValidadoPor uint      `gorm:"column:validado_por" json:"validado_por"`
	IDReporte   uint      `gorm:"column:id_reporte;index" json:"id_reporte"`
	CreatedAt   time.Time `json:"created_at"`
}

func (CoolZone) TableName() string { return "zonas_frescas" }

type HydrationPoint struct {
	ID          uint      `gorm:"primaryKey" json:"id_punto"`
	Nombre      string    `json:"nombre"`
	Direccion   string    `json:"direccion"`
	Latitud     float64   `json:"latitud"`
	Longitud    float64   `json:"longitud"`
	Estado      string    `gorm:"type:varchar(20)" json:"estado"`
	Fuente      string    `json:"fuente"`
	ValidadoPor uint      `gorm:"column:validado_por" json:"validado_por"`
	IDReporte   uint      `gorm:"column:id_reporte;index" json:"id_reporte"`
	CreatedAt   time.Time `json:"created_at"`
}

func (HydrationPoint) TableName() string { return "puntos_hidratacion" }
