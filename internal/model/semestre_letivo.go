package model

import "time"

// SemestreLetivo 学期表 — 对应 semestres_letivos
// "ativo" 不是持久化标志：当前日期落在 [data_inicio, data_fim] 内即为活动学期
type SemestreLetivo struct {
	SemestreLetivoID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semestre_letivo_id"`
	Nome             string    `gorm:"type:varchar(40);not null"                      json:"nome"` // 例: "2025.2"
	DataInicio       time.Time `gorm:"type:date;not null"                             json:"data_inicio"`
	DataFim          time.Time `gorm:"type:date;not null"                             json:"data_fim"`
	BaseModel
}

// TableName 指定表名
func (SemestreLetivo) TableName() string { return "semestres_letivos" }
