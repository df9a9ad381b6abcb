package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aquario-ufpb/aquario-sub003/internal/dto"
	"github.com/aquario-ufpb/aquario-sub003/internal/service"
	"github.com/aquario-ufpb/aquario-sub003/pkg/response"
)

// semestreAtivoToken URL 中表示"当前活动学期"的字面量
const semestreAtivoToken = "ativo"

// SemestreHandler 学期选课模块 HTTP 处理器
// "ativo" 令牌在此层解析为具体学期 ID；核心 Service 只接受显式 ID
type SemestreHandler struct {
	semestreSvc service.SemestreService
}

// NewSemestreHandler 创建 SemestreHandler
func NewSemestreHandler(semestreSvc service.SemestreService) *SemestreHandler {
	return &SemestreHandler{semestreSvc: semestreSvc}
}

// GetAtivo 获取当前活动学期
// GET /api/v1/semestres/ativo
func (h *SemestreHandler) GetAtivo(c *gin.Context) {
	semestre, err := h.semestreSvc.GetAtivo(c.Request.Context())
	if err != nil {
		h.handleSemestreError(c, err)
		return
	}

	response.OK(c, semestre)
}

// List 列出全部学期
// GET /api/v1/semestres
func (h *SemestreHandler) List(c *gin.Context) {
	semestres, err := h.semestreSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, semestres)
}

// ListDisciplinas 获取当前用户某学期的选课列表
// GET /api/v1/me/semestres/:semestreId/disciplinas
func (h *SemestreHandler) ListDisciplinas(c *gin.Context) {
	usuarioID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semestreID := c.Param("semestreId")
	if semestreID == semestreAtivoToken {
		resolvido, err := h.semestreSvc.ResolveAtivoID(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			return
		}
		// 只读路径容忍无活动学期：返回空列表而非错误
		if resolvido == nil {
			response.OK(c, dto.DisciplinasSemestreResponse{
				SemestreLetivoID: nil,
				Disciplinas:      []dto.DisciplinaSemestreResponse{},
			})
			return
		}
		semestreID = *resolvido
	}

	result, err := h.semestreSvc.ListDisciplinas(c.Request.Context(), usuarioID, semestreID)
	if err != nil {
		h.handleSemestreError(c, err)
		return
	}

	response.OK(c, result)
}

// ReplaceDisciplinas 全量替换当前用户某学期的选课
// PUT /api/v1/me/semestres/:semestreId/disciplinas
func (h *SemestreHandler) ReplaceDisciplinas(c *gin.Context) {
	usuarioID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semestreID, ok := h.resolveSemestreParam(c)
	if !ok {
		return
	}

	var req dto.ReplaceDisciplinasSemestreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.semestreSvc.ReplaceDisciplinas(c.Request.Context(), usuarioID, semestreID, &req)
	if err != nil {
		h.handleSemestreError(c, err)
		return
	}

	response.OK(c, result)
}

// AtualizarDisciplina 部分更新单条选课记录
// PATCH /api/v1/me/semestres/:semestreId/disciplinas/:disciplinaSemestreId
func (h *SemestreHandler) AtualizarDisciplina(c *gin.Context) {
	usuarioID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semestreID, ok := h.resolveSemestreParam(c)
	if !ok {
		return
	}

	registroID := c.Param("disciplinaSemestreId")
	if registroID == "" {
		response.BadRequest(c, 10001, "disciplinaSemestreId é obrigatório")
		return
	}

	var req dto.AtualizarDisciplinaSemestreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.semestreSvc.AtualizarDisciplina(c.Request.Context(), usuarioID, semestreID, registroID, &req)
	if err != nil {
		h.handleSemestreError(c, err)
		return
	}

	response.OK(c, result)
}

// ── 内部辅助方法 ──

// resolveSemestreParam 解析 :semestreId 路径参数
// 写路径必须落到显式学期："ativo" 无法解析时返回 400
func (h *SemestreHandler) resolveSemestreParam(c *gin.Context) (string, bool) {
	semestreID := c.Param("semestreId")
	if semestreID == "" {
		response.BadRequest(c, 10001, "semestreId é obrigatório")
		return "", false
	}

	if semestreID != semestreAtivoToken {
		return semestreID, true
	}

	resolvido, err := h.semestreSvc.ResolveAtivoID(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return "", false
	}
	if resolvido == nil {
		response.BadRequest(c, 13001, "nenhum semestre letivo ativo no momento")
		return "", false
	}
	return *resolvido, true
}

// handleSemestreError 统一处理学期选课模块业务错误
func (h *SemestreHandler) handleSemestreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSemestreNaoEncontrado):
		response.NotFound(c, 14001, "semestre letivo não encontrado")
	case errors.Is(err, service.ErrMatriculaNaoEncontrada):
		response.NotFound(c, 14002, "disciplina do semestre não encontrada")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/semestre_handler.go
