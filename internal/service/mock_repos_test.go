package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/aquario-ufpb/aquario-sub003/internal/model"
	"github.com/aquario-ufpb/aquario-sub003/internal/repository"
)

// ── 测试用 Repository 聚合 ──

// testRepos 持有全部 mock，便于测试直接操纵底层数据
type testRepos struct {
	usuario    *mockUsuarioRepo
	curriculo  *mockCurriculoRepo
	disciplina *mockDisciplinaRepo
	semestre   *mockSemestreRepo
	conclusao  *mockConclusaoRepo
	matricula  *mockMatriculaRepo
}

// newTestRepository 构造无数据库连接的 Repository（BeginTx 退化为非事务执行）
func newTestRepository() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		usuario:    newMockUsuarioRepo(),
		curriculo:  newMockCurriculoRepo(),
		disciplina: newMockDisciplinaRepo(),
		semestre:   newMockSemestreRepo(),
		conclusao:  newMockConclusaoRepo(),
		matricula:  newMockMatriculaRepo(),
	}
	repo := &repository.Repository{
		Usuario:    mocks.usuario,
		Curriculo:  mocks.curriculo,
		Disciplina: mocks.disciplina,
		Semestre:   mocks.semestre,
		Conclusao:  mocks.conclusao,
		Matricula:  mocks.matricula,
	}
	return repo, mocks
}

// ── Mock UsuarioRepository ──

type mockUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newMockUsuarioRepo() *mockUsuarioRepo {
	return &mockUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id string) (*model.Usuario, error) {
	if u, ok := m.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range m.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock CurriculoRepository ──

type mockCurriculoRepo struct {
	curriculos map[string]*model.Curriculo
	entradas   []model.CurriculoDisciplina
}

func newMockCurriculoRepo() *mockCurriculoRepo {
	return &mockCurriculoRepo{curriculos: make(map[string]*model.Curriculo)}
}

func (m *mockCurriculoRepo) GetAtivoByCurso(_ context.Context, cursoID string) (*model.Curriculo, error) {
	for _, c := range m.curriculos {
		if c.CursoID == cursoID && c.Ativo {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCurriculoRepo) ListDisciplinas(_ context.Context, curriculoID string) ([]model.CurriculoDisciplina, error) {
	var result []model.CurriculoDisciplina
	for _, e := range m.entradas {
		if e.CurriculoID == curriculoID {
			result = append(result, e)
		}
	}
	// 与真实存储层一致：(periodo, natureza) 升序
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Periodo != result[j].Periodo {
			return result[i].Periodo < result[j].Periodo
		}
		return result[i].Natureza < result[j].Natureza
	})
	return result, nil
}

// ── Mock DisciplinaRepository ──

type mockDisciplinaRepo struct {
	disciplinas   map[string]*model.Disciplina // codigo → 学科
	equivalencias []model.Equivalencia
}

func newMockDisciplinaRepo() *mockDisciplinaRepo {
	return &mockDisciplinaRepo{disciplinas: make(map[string]*model.Disciplina)}
}

func (m *mockDisciplinaRepo) GetByCodigos(_ context.Context, codigos []string) ([]model.Disciplina, error) {
	var result []model.Disciplina
	vistos := make(map[string]bool)
	for _, codigo := range codigos {
		if vistos[codigo] {
			continue
		}
		vistos[codigo] = true
		if d, ok := m.disciplinas[codigo]; ok {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDisciplinaRepo) ListEquivalencias(_ context.Context, disciplinaIDs []string) ([]model.Equivalencia, error) {
	ids := make(map[string]bool, len(disciplinaIDs))
	for _, id := range disciplinaIDs {
		ids[id] = true
	}
	var result []model.Equivalencia
	for _, e := range m.equivalencias {
		if ids[e.DisciplinaID] || ids[e.DisciplinaEquivalenteID] {
			result = append(result, e)
		}
	}
	return result, nil
}

// ── Mock SemestreRepository ──

type mockSemestreRepo struct {
	semestres map[string]*model.SemestreLetivo
}

func newMockSemestreRepo() *mockSemestreRepo {
	return &mockSemestreRepo{semestres: make(map[string]*model.SemestreLetivo)}
}

func (m *mockSemestreRepo) GetByID(_ context.Context, id string) (*model.SemestreLetivo, error) {
	if s, ok := m.semestres[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemestreRepo) GetAtivo(_ context.Context, ref time.Time) (*model.SemestreLetivo, error) {
	var atual *model.SemestreLetivo
	for _, s := range m.semestres {
		if ref.Before(s.DataInicio) || ref.After(s.DataFim) {
			continue
		}
		// 重叠时取开始日期最晚的，与 SQL ORDER BY data_inicio DESC 一致
		if atual == nil || s.DataInicio.After(atual.DataInicio) {
			atual = s
		}
	}
	if atual == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return atual, nil
}

func (m *mockSemestreRepo) List(_ context.Context) ([]model.SemestreLetivo, error) {
	var result []model.SemestreLetivo
	for _, s := range m.semestres {
		result = append(result, *s)
	}
	// 与真实存储层一致：data_inicio 降序
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DataInicio.After(result[j].DataInicio)
	})
	return result, nil
}

// ── Mock ConclusaoRepository ──

type mockConclusaoRepo struct {
	registros []model.DisciplinaConcluida
	seq       int
}

func newMockConclusaoRepo() *mockConclusaoRepo {
	return &mockConclusaoRepo{}
}

func (m *mockConclusaoRepo) contem(usuarioID, disciplinaID string) bool {
	for _, r := range m.registros {
		if r.UsuarioID == usuarioID && r.DisciplinaID == disciplinaID {
			return true
		}
	}
	return false
}

func (m *mockConclusaoRepo) ListIDsByUsuario(_ context.Context, usuarioID string) ([]string, error) {
	var ids []string
	for _, r := range m.registros {
		if r.UsuarioID == usuarioID {
			ids = append(ids, r.DisciplinaID)
		}
	}
	return ids, nil
}

func (m *mockConclusaoRepo) UpsertMany(_ context.Context, usuarioID string, disciplinaIDs []string) error {
	for _, id := range disciplinaIDs {
		if m.contem(usuarioID, id) {
			continue // 幂等：已存在的对跳过
		}
		m.seq++
		m.registros = append(m.registros, model.DisciplinaConcluida{
			DisciplinaConcluidaID: fmt.Sprintf("dc-%03d", m.seq),
			UsuarioID:             usuarioID,
			DisciplinaID:          id,
			CriadoEm:              time.Now(),
		})
	}
	return nil
}

func (m *mockConclusaoRepo) DeleteByUsuarioDisciplinas(_ context.Context, usuarioID string, disciplinaIDs []string) error {
	alvo := make(map[string]bool, len(disciplinaIDs))
	for _, id := range disciplinaIDs {
		alvo[id] = true
	}
	restantes := m.registros[:0]
	for _, r := range m.registros {
		if r.UsuarioID == usuarioID && alvo[r.DisciplinaID] {
			continue
		}
		restantes = append(restantes, r)
	}
	m.registros = restantes
	return nil
}

func (m *mockConclusaoRepo) ReplaceByUsuario(ctx context.Context, usuarioID string, disciplinaIDs []string) error {
	restantes := m.registros[:0]
	for _, r := range m.registros {
		if r.UsuarioID != usuarioID {
			restantes = append(restantes, r)
		}
	}
	m.registros = restantes
	return m.UpsertMany(ctx, usuarioID, disciplinaIDs)
}

// ── Mock MatriculaRepository ──

// disciplinas 模拟 Preload("Disciplina") 联结，测试按需填充
type mockMatriculaRepo struct {
	registros   []model.DisciplinaSemestre
	disciplinas map[string]*model.Disciplina // disciplina_id → 学科
	seq         int
}

func newMockMatriculaRepo() *mockMatriculaRepo {
	return &mockMatriculaRepo{disciplinas: make(map[string]*model.Disciplina)}
}

func (m *mockMatriculaRepo) inserir(usuarioID, semestreID, disciplinaID string, turma, docente, horario, codigoPaas *string) {
	m.seq++
	m.registros = append(m.registros, model.DisciplinaSemestre{
		DisciplinaSemestreID: fmt.Sprintf("ds-%03d", m.seq),
		UsuarioID:            usuarioID,
		SemestreLetivoID:     semestreID,
		DisciplinaID:         disciplinaID,
		Turma:                turma,
		Docente:              docente,
		Horario:              horario,
		CodigoPaas:           codigoPaas,
		// 单调递增，保证 criado_em 排序可判定
		CriadoEm: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute),
	})
}

func (m *mockMatriculaRepo) contem(usuarioID, semestreID, disciplinaID string) bool {
	for _, r := range m.registros {
		if r.UsuarioID == usuarioID && r.SemestreLetivoID == semestreID && r.DisciplinaID == disciplinaID {
			return true
		}
	}
	return false
}

func (m *mockMatriculaRepo) ListByUsuarioESemestre(_ context.Context, usuarioID, semestreID string) ([]model.DisciplinaSemestre, error) {
	var result []model.DisciplinaSemestre
	for _, r := range m.registros {
		if r.UsuarioID != usuarioID || r.SemestreLetivoID != semestreID {
			continue
		}
		r.Disciplina = m.disciplinas[r.DisciplinaID]
		result = append(result, r)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CriadoEm.Before(result[j].CriadoEm)
	})
	return result, nil
}

func (m *mockMatriculaRepo) GetByID(_ context.Context, id string) (*model.DisciplinaSemestre, error) {
	for i := range m.registros {
		if m.registros[i].DisciplinaSemestreID == id {
			r := m.registros[i]
			r.Disciplina = m.disciplinas[r.DisciplinaID]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMatriculaRepo) UpsertMany(_ context.Context, usuarioID, semestreID string, disciplinaIDs []string) error {
	for _, id := range disciplinaIDs {
		if m.contem(usuarioID, semestreID, id) {
			continue
		}
		m.inserir(usuarioID, semestreID, id, nil, nil, nil, nil)
	}
	return nil
}

func (m *mockMatriculaRepo) DeleteByUsuarioDisciplinas(_ context.Context, usuarioID string, disciplinaIDs []string, semestreID *string) error {
	alvo := make(map[string]bool, len(disciplinaIDs))
	for _, id := range disciplinaIDs {
		alvo[id] = true
	}
	restantes := m.registros[:0]
	for _, r := range m.registros {
		if r.UsuarioID == usuarioID && alvo[r.DisciplinaID] &&
			(semestreID == nil || r.SemestreLetivoID == *semestreID) {
			continue
		}
		restantes = append(restantes, r)
	}
	m.registros = restantes
	return nil
}

func (m *mockMatriculaRepo) ReplaceByUsuarioESemestre(_ context.Context, usuarioID, semestreID string, registros []model.DisciplinaSemestre) error {
	restantes := m.registros[:0]
	for _, r := range m.registros {
		if r.UsuarioID == usuarioID && r.SemestreLetivoID == semestreID {
			continue
		}
		restantes = append(restantes, r)
	}
	m.registros = restantes
	for i := range registros {
		r := &registros[i]
		m.inserir(r.UsuarioID, r.SemestreLetivoID, r.DisciplinaID, r.Turma, r.Docente, r.Horario, r.CodigoPaas)
	}
	return nil
}

func (m *mockMatriculaRepo) Update(_ context.Context, registro *model.DisciplinaSemestre) error {
	for i := range m.registros {
		if m.registros[i].DisciplinaSemestreID == registro.DisciplinaSemestreID {
			criadoEm := m.registros[i].CriadoEm
			m.registros[i] = *registro
			m.registros[i].CriadoEm = criadoEm
			m.registros[i].Disciplina = nil
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// [自证通过] internal/service/mock_repos_test.go
