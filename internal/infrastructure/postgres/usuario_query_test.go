package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func TestBuildUsuarioSelect(t *testing.T) {
	t.Run("esquema completo", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"id", "nome", "cpf", "senha", "tipo_acesso", "id_empresa"})
		proj := buildUsuarioSelect(cat)
		assert.Equal(t, []string{"id", "nome", "cpf", "senha", "tipo_acesso", "id_empresa"}, proj.cols)
		assert.Equal(t, "id_empresa", proj.empresaCol)
	})

	t.Run("esquema mínimo sem tipo nem empresa", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"id", "nome", "cpf", "senha"})
		proj := buildUsuarioSelect(cat)
		assert.Equal(t, []string{"id", "nome", "cpf", "senha"}, proj.cols)
		assert.Empty(t, proj.empresaCol)
	})

	t.Run("variação de grafia da coluna de empresa", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"cpf", "senha", "company_id"})
		proj := buildUsuarioSelect(cat)
		assert.Equal(t, "company_id", proj.empresaCol)
		assert.Contains(t, proj.cols, "company_id")
	})

	t.Run("tabela ausente", func(t *testing.T) {
		proj := buildUsuarioSelect(NewCatalog("usuario", nil))
		assert.Empty(t, proj.cols)
	})
}

func TestBuildUsuarioInsert(t *testing.T) {
	params := repository.CreateUsuarioParams{
		CPF:        "123.456.789-01",
		SenhaHash:  "abc123",
		Nome:       "Ana",
		TipoAcesso: entity.TipoFuncionario,
		IDEmpresa:  strPtr("3"),
	}

	t.Run("esquema completo grava tipo e empresa", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"id", "nome", "cpf", "senha", "tipo_acesso", "id_empresa"})
		cols, vals := buildUsuarioInsert(cat, params, "12345678901")
		assert.Equal(t, []string{"nome", "cpf", "senha", "tipo_acesso", "id_empresa"}, cols)
		require.Len(t, vals, 5)
		assert.Equal(t, "12345678901", vals[1], "CPF entra sem pontuação")
		assert.Equal(t, int64(3), vals[4], "empresa numérica é coagida para int")
	})

	t.Run("esquema sem tipo nem empresa insere só o que existe", func(t *testing.T) {
		// O cenário das bases mais antigas: usuario(id, nome, cpf, senha).
		// A criação de funcionário ainda tem que funcionar; o vínculo de
		// empresa fica por conta da tabela auxiliar.
		cat := NewCatalog("usuario", []string{"id", "nome", "cpf", "senha"})
		cols, vals := buildUsuarioInsert(cat, params, "12345678901")
		assert.Equal(t, []string{"nome", "cpf", "senha"}, cols)
		assert.Len(t, vals, 3)
	})

	t.Run("chefe não grava coluna de empresa mesmo quando existe", func(t *testing.T) {
		chefe := params
		chefe.TipoAcesso = entity.TipoChefe
		chefe.IDEmpresa = nil
		cat := NewCatalog("usuario", []string{"nome", "cpf", "senha", "tipo_acesso", "id_empresa"})
		cols, _ := buildUsuarioInsert(cat, chefe, "12345678901")
		assert.NotContains(t, cols, "id_empresa")
	})

	t.Run("tipo vazio vira chefe", func(t *testing.T) {
		p := params
		p.TipoAcesso = ""
		p.IDEmpresa = nil
		cat := NewCatalog("usuario", []string{"cpf", "senha", "tipo_acesso"})
		cols, vals := buildUsuarioInsert(cat, p, "12345678901")
		require.Equal(t, []string{"cpf", "senha", "tipo_acesso"}, cols)
		assert.Equal(t, entity.TipoChefe, vals[2])
	})

	t.Run("email só entra se a coluna existir e houver valor", func(t *testing.T) {
		p := params
		p.Email = "ana@example.com"
		sem := NewCatalog("usuario", []string{"cpf", "senha"})
		cols, _ := buildUsuarioInsert(sem, p, "12345678901")
		assert.NotContains(t, cols, "email")

		com := NewCatalog("usuario", []string{"cpf", "senha", "email"})
		cols, vals := buildUsuarioInsert(com, p, "12345678901")
		assert.Contains(t, cols, "email")
		assert.Contains(t, vals, "ana@example.com")
	})
}

func TestBuildFuncionarioDelete(t *testing.T) {
	t.Run("esquema completo filtra cpf, tipo e empresa", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"id", "cpf", "tipo_acesso", "id_empresa"})
		conds, params := buildFuncionarioDelete(cat, "12345678901", "3")
		assert.Equal(t, []string{"cpf = $1", "tipo_acesso = 'funcionario'", "id_empresa = $2"}, conds)
		assert.Equal(t, []any{"12345678901", int64(3)}, params)
	})

	t.Run("sem colunas opcionais filtra só por cpf", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"id", "cpf", "senha"})
		conds, params := buildFuncionarioDelete(cat, "12345678901", "3")
		assert.Equal(t, []string{"cpf = $1"}, conds)
		assert.Equal(t, []any{"12345678901"}, params)
	})

	t.Run("empresa não numérica passa como string", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"cpf", "empresa_id"})
		_, params := buildFuncionarioDelete(cat, "12345678901", "loja-sul")
		assert.Equal(t, []any{"12345678901", "loja-sul"}, params)
	})
}

func TestMapUsuarioRow(t *testing.T) {
	t.Run("linha completa", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"id", "nome", "cpf", "senha", "tipo_acesso", "id_empresa"})
		proj := buildUsuarioSelect(cat)
		u := mapUsuarioRow(proj, []any{int32(7), "Ana", "12345678901", "hash", "funcionario", int64(3)})
		require.NotNil(t, u.ID)
		assert.Equal(t, int64(7), *u.ID)
		assert.Equal(t, "Ana", u.Nome)
		assert.Equal(t, "12345678901", u.CPF)
		assert.Equal(t, "hash", u.SenhaHash)
		assert.Equal(t, entity.TipoFuncionario, u.TipoAcesso)
		require.NotNil(t, u.IDEmpresa)
		assert.Equal(t, "3", *u.IDEmpresa, "empresa numérica vira string opaca")
	})

	t.Run("campos nulos ficam explícitos, nunca defaults enganosos", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"id", "cpf", "senha", "tipo_acesso", "id_empresa"})
		proj := buildUsuarioSelect(cat)
		u := mapUsuarioRow(proj, []any{int64(1), "12345678901", "hash", nil, nil})
		assert.Equal(t, entity.TipoDesconhecido, u.TipoAcesso)
		assert.Nil(t, u.IDEmpresa)
	})

	t.Run("projeção mínima", func(t *testing.T) {
		cat := NewCatalog("usuario", []string{"cpf", "senha"})
		proj := buildUsuarioSelect(cat)
		u := mapUsuarioRow(proj, []any{"12345678901", "hash"})
		assert.Nil(t, u.ID)
		assert.Empty(t, u.Nome)
		assert.Equal(t, entity.TipoDesconhecido, u.TipoAcesso)
		assert.Nil(t, u.IDEmpresa)
	})
}
