package model

import "time"

// DisciplinaConcluida 已修学科记录 — 对应 disciplinas_concluidas
// (usuario_id, disciplina_id) 唯一；与学期无关
// 仅通过 Reconciliation（标记/全量替换）写入或删除
type DisciplinaConcluida struct {
	DisciplinaConcluidaID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"disciplina_concluida_id"`
	UsuarioID             string    `gorm:"type:uuid;not null;uniqueIndex:uq_usuario_disciplina" json:"usuario_id"`
	DisciplinaID          string    `gorm:"type:uuid;not null;uniqueIndex:uq_usuario_disciplina" json:"disciplina_id"`
	CriadoEm              time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"criado_em"`
}

// TableName 指定表名
func (DisciplinaConcluida) TableName() string { return "disciplinas_concluidas" }

// DisciplinaSemestre 在修学科记录 — 对应 disciplinas_semestre
// (usuario_id, semestre_letivo_id, disciplina_id) 唯一
// 携带选课快照：班级、教师、时间编码与外部选课系统引用
type DisciplinaSemestre struct {
	DisciplinaSemestreID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"disciplina_semestre_id"`
	UsuarioID            string    `gorm:"type:uuid;not null;uniqueIndex:uq_usuario_semestre_disciplina" json:"usuario_id"`
	SemestreLetivoID     string    `gorm:"type:uuid;not null;uniqueIndex:uq_usuario_semestre_disciplina" json:"semestre_letivo_id"`
	DisciplinaID         string    `gorm:"type:uuid;not null;uniqueIndex:uq_usuario_semestre_disciplina" json:"disciplina_id"`
	Turma                *string   `gorm:"type:varchar(20)"                               json:"turma,omitempty"`
	Docente              *string   `gorm:"type:varchar(160)"                              json:"docente,omitempty"`
	Horario              *string   `gorm:"type:varchar(60)"                               json:"horario,omitempty"` // 编码如 "24T23"，非时间区间
	CodigoPaas           *string   `gorm:"type:varchar(40)"                               json:"codigo_paas,omitempty"`
	CriadoEm             time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"criado_em"`

	Disciplina *Disciplina `gorm:"foreignKey:DisciplinaID;references:DisciplinaID" json:"disciplina,omitempty"`
}

// TableName 指定表名
func (DisciplinaSemestre) TableName() string { return "disciplinas_semestre" }

// [自证通过] internal/model/disciplina_usuario.go
