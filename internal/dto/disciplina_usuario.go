package dto

// ── 用户学科状态模块 DTO ──

// 标记状态常量（与 API 契约一致，不做翻译）
const (
	StatusConcluida = "concluida"
	StatusCursando  = "cursando"
	StatusNone      = "none"
)

// DisciplinasConcluidasResponse 用户已修学科 ID 集合
type DisciplinasConcluidasResponse struct {
	DisciplinaIDs []string `json:"disciplinaIds"`
}

// ReplaceDisciplinasConcluidasRequest 全量替换已修集合
// 空列表合法：清空该用户全部已修记录
type ReplaceDisciplinasConcluidasRequest struct {
	DisciplinaIDs []string `json:"disciplinaIds" binding:"dive,uuid"`
}

// MarcarDisciplinasRequest 批量标记学科状态
type MarcarDisciplinasRequest struct {
	DisciplinaIDs []string `json:"disciplinaIds" binding:"required,min=1,dive,uuid"`
	Status        string   `json:"status"        binding:"required,oneof=concluida cursando none"`
}

// MarcarDisciplinasResponse 标记结果
type MarcarDisciplinasResponse struct {
	OK bool `json:"ok"`
}
