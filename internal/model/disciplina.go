package model

// Disciplina 学科（课程单元）表 — 对应 disciplinas
// 参考数据，由外部导入流程填充，核心逻辑只读
type Disciplina struct {
	DisciplinaID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"disciplina_id"`
	Codigo              string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"codigo"`
	Nome                string `gorm:"type:varchar(160);not null"                     json:"nome"`
	CargaHorariaTotal   int    `gorm:"not null;default:0"                             json:"carga_horaria_total"`
	CargaHorariaTeoria  int    `gorm:"not null;default:0"                             json:"carga_horaria_teoria"`
	CargaHorariaPratica int    `gorm:"not null;default:0"                             json:"carga_horaria_pratica"`
	Departamento        string `gorm:"type:varchar(120)"                              json:"departamento"`
	Modalidade          string `gorm:"type:varchar(40)"                               json:"modalidade"`
	Ementa              string `gorm:"type:text"                                      json:"ementa"`
	BaseModel
}

// TableName 指定表名
func (Disciplina) TableName() string { return "disciplinas" }

// Equivalencia 学科等价关系表 — 对应 equivalencias
// 语义上无方向（A 等价 B 即 B 等价 A），仅用于展示标注
type Equivalencia struct {
	EquivalenciaID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"equivalencia_id"`
	DisciplinaID            string `gorm:"type:uuid;not null"                             json:"disciplina_id"`
	DisciplinaEquivalenteID string `gorm:"type:uuid;not null"                             json:"disciplina_equivalente_id"`

	Disciplina            *Disciplina `gorm:"foreignKey:DisciplinaID;references:DisciplinaID"            json:"disciplina,omitempty"`
	DisciplinaEquivalente *Disciplina `gorm:"foreignKey:DisciplinaEquivalenteID;references:DisciplinaID" json:"disciplina_equivalente,omitempty"`
}

// TableName 指定表名
func (Equivalencia) TableName() string { return "equivalencias" }
