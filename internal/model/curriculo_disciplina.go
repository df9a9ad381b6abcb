package model

// ── 学科性质枚举 ──

const (
	NaturezaObrigatoria  = "OBRIGATORIA"
	NaturezaEletiva      = "ELETIVA"
	NaturezaComplementar = "COMPLEMENTAR"
)

// CurriculoDisciplina 培养方案-学科关联表 — 对应 curriculo_disciplinas
// 一个学科在同一培养方案中至多出现一次（唯一约束保证）
type CurriculoDisciplina struct {
	CurriculoDisciplinaID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"curriculo_disciplina_id"`
	CurriculoID           string `gorm:"type:uuid;not null;uniqueIndex:uq_curriculo_disciplina" json:"curriculo_id"`
	DisciplinaID          string `gorm:"type:uuid;not null;uniqueIndex:uq_curriculo_disciplina" json:"disciplina_id"`
	Periodo               int    `gorm:"not null"                                       json:"periodo"`  // 建议修读学期，>= 1
	Natureza              string `gorm:"type:varchar(20);not null"                      json:"natureza"` // OBRIGATORIA | ELETIVA | COMPLEMENTAR
	BaseModel

	Disciplina    *Disciplina    `gorm:"foreignKey:DisciplinaID;references:DisciplinaID" json:"disciplina,omitempty"`
	PreRequisitos []PreRequisito `gorm:"foreignKey:CurriculoDisciplinaID"                json:"pre_requisitos,omitempty"`
}

// TableName 指定表名
func (CurriculoDisciplina) TableName() string { return "curriculo_disciplinas" }

// PreRequisito 先修关系表 — 对应 pre_requisitos
// 有向边：该培养方案条目要求先完成 disciplina_requisito
// 同一条目的多个先修为合取（全部满足）；领域假设无环
type PreRequisito struct {
	PreRequisitoID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pre_requisito_id"`
	CurriculoDisciplinaID string `gorm:"type:uuid;not null"                             json:"curriculo_disciplina_id"`
	DisciplinaRequisitoID string `gorm:"type:uuid;not null"                             json:"disciplina_requisito_id"`

	DisciplinaRequisito *Disciplina `gorm:"foreignKey:DisciplinaRequisitoID;references:DisciplinaID" json:"disciplina_requisito,omitempty"`
}

// TableName 指定表名
func (PreRequisito) TableName() string { return "pre_requisitos" }

// [自证通过] internal/model/curriculo_disciplina.go
