package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
	"github.com/techtitans/estoque-api/pkg/cpf"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo adaptador de persistência da tabela usuario. As queries são
// montadas a cada operação contra o subconjunto de colunas que a instalação
// realmente tem; o vínculo de empresa não resolvido cai para a tabela auxiliar
// funcionarios via shadow.
type UsuarioRepo struct {
	q      Querier
	schema *Introspector
	shadow repository.FuncionarioShadow
	log    zerolog.Logger
}

// NewUsuarioRepository constrói o adaptador. shadow pode ser nil em contextos
// (testes, diagnóstico) onde o fallback de empresa não interessa.
func NewUsuarioRepository(q Querier, schema *Introspector, shadow repository.FuncionarioShadow, log zerolog.Logger) *UsuarioRepo {
	return &UsuarioRepo{q: q, schema: schema, shadow: shadow, log: log}
}

// usuarioProjection resultado da montagem do SELECT: colunas projetadas na
// ordem e o nome físico da coluna de empresa (vazio se a tabela não tem).
type usuarioProjection struct {
	cols       []string
	empresaCol string
}

// buildUsuarioSelect monta a projeção só com as colunas lógicas presentes no
// catálogo. Função pura: recebe o Catalog, não consulta o banco.
func buildUsuarioSelect(cat Catalog) usuarioProjection {
	var p usuarioProjection
	for _, col := range []string{"id", "nome", "cpf", "senha", "tipo_acesso"} {
		if cat.Has(col) {
			p.cols = append(p.cols, col)
		}
	}
	if col, ok := cat.Resolve(usuarioEmpresaCols...); ok {
		p.empresaCol = col
		p.cols = append(p.cols, col)
	}
	return p
}

// buildUsuarioInsert monta colunas e valores do INSERT a partir do catálogo.
// A coluna de empresa só entra quando há vínculo a gravar — gravar sentinela
// numa instalação que não espera o valor quebraria constraints NOT NULL.
// tipo_acesso vazio vira chefe, a convenção de cadastro direto.
func buildUsuarioInsert(cat Catalog, p repository.CreateUsuarioParams, cpfClean string) (cols []string, vals []any) {
	if cat.Has("nome") {
		cols = append(cols, "nome")
		vals = append(vals, p.Nome)
	}
	if cat.Has("cpf") {
		cols = append(cols, "cpf")
		vals = append(vals, cpfClean)
	}
	if cat.Has("senha") {
		cols = append(cols, "senha")
		vals = append(vals, p.SenhaHash)
	}
	if cat.Has("tipo_acesso") {
		tipo := p.TipoAcesso
		if tipo == "" {
			tipo = entity.TipoChefe
		}
		cols = append(cols, "tipo_acesso")
		vals = append(vals, tipo)
	}
	if col, ok := cat.Resolve(usuarioEmpresaCols...); ok && p.IDEmpresa != nil {
		cols = append(cols, col)
		vals = append(vals, dbID(*p.IDEmpresa))
	}
	if p.Email != "" && cat.Has("email") {
		cols = append(cols, "email")
		vals = append(vals, p.Email)
	}
	return cols, vals
}

// buildFuncionarioDelete monta o WHERE do DELETE de funcionário: CPF sempre,
// tipo e empresa só quando as colunas existem.
func buildFuncionarioDelete(cat Catalog, cpfClean, idEmpresa string) (conds []string, params []any) {
	conds = append(conds, fmt.Sprintf("cpf = $%d", 1))
	params = append(params, cpfClean)
	if cat.Has("tipo_acesso") {
		conds = append(conds, "tipo_acesso = 'funcionario'")
	}
	if col, ok := cat.Resolve(usuarioEmpresaCols...); ok {
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(params)+1))
		params = append(params, dbID(idEmpresa))
	}
	return conds, params
}

// FindByCPF busca o usuário pelo CPF, pontuado ou não. Primeiro tenta o match
// exato pelos dígitos; se nada casar, repete aceitando também a forma pontuada
// canônica (bases antigas persistiram o CPF com máscara). Devolve (nil, nil)
// quando não há registro ou quando o esquema não oferece colunas utilizáveis.
func (r *UsuarioRepo) FindByCPF(ctx context.Context, raw string) (*entity.Usuario, error) {
	cpfClean := cpf.Normalize(raw)
	if cpfClean == "" {
		return nil, nil
	}

	cat := r.schema.Columns(ctx, "usuario")
	proj := buildUsuarioSelect(cat)
	if len(proj.cols) == 0 || !cat.Has("cpf") {
		r.log.Warn().Str("table", "usuario").Msg("nenhuma coluna utilizável para busca de usuário")
		return nil, nil
	}

	selectList := strings.Join(proj.cols, ", ")

	query := fmt.Sprintf("SELECT %s FROM usuario WHERE cpf = $1", selectList)
	vals, err := r.queryOneRow(ctx, query, cpfClean)
	if err != nil {
		return nil, err
	}

	if vals == nil {
		// Retry tolerante a CPF persistido com pontuação
		retry := fmt.Sprintf("SELECT %s FROM usuario WHERE cpf LIKE $1 OR cpf = $2", selectList)
		vals, err = r.queryOneRow(ctx, retry, "%"+cpfClean+"%", cpf.Format(cpfClean))
		if err != nil {
			return nil, err
		}
	}
	if vals == nil {
		return nil, nil
	}

	u := mapUsuarioRow(proj, vals)

	if u.IDEmpresa == nil && r.shadow != nil {
		if emp, ok := r.shadow.LookupEmpresa(ctx, cpfClean); ok {
			u.IDEmpresa = &emp
		}
	}
	return u, nil
}

// queryOneRow executa a query e devolve os valores da primeira linha, ou nil
// se nenhuma casou.
func (r *UsuarioRepo) queryOneRow(ctx context.Context, query string, args ...any) ([]any, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		r.log.Error().Err(err).Msg("buscar usuário")
		return nil, fmt.Errorf("buscar usuário: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			r.log.Error().Err(err).Msg("buscar usuário")
			return nil, fmt.Errorf("buscar usuário: %w", err)
		}
		return nil, nil
	}
	vals, err := rows.Values()
	if err != nil {
		r.log.Error().Err(err).Msg("ler linha de usuário")
		return nil, fmt.Errorf("ler linha de usuário: %w", err)
	}
	return vals, nil
}

// mapUsuarioRow converte a linha dinâmica no Usuario canônico. Campos ausentes
// da projeção ficam explícitos (nil / TipoDesconhecido), nunca defaults.
func mapUsuarioRow(proj usuarioProjection, vals []any) *entity.Usuario {
	u := &entity.Usuario{}
	for i, col := range proj.cols {
		if i >= len(vals) {
			break
		}
		v := vals[i]
		switch col {
		case "id":
			u.ID = asInt64Ptr(v)
		case "nome":
			u.Nome = asString(v)
		case "cpf":
			u.CPF = asString(v)
		case "senha":
			u.SenhaHash = asString(v)
		case "tipo_acesso":
			u.TipoAcesso = asString(v)
		case proj.empresaCol:
			u.IDEmpresa = asStringPtr(v)
		}
	}
	return u
}

// Create insere um usuário usando só as colunas existentes. Violação de
// unicidade do CPF é resultado esperado (corrida de cadastro) e vira
// domain.ErrCPFAlreadyExists; o resto é falha de storage.
func (r *UsuarioRepo) Create(ctx context.Context, p repository.CreateUsuarioParams) error {
	cpfClean := cpf.Normalize(p.CPF)

	cat := r.schema.Columns(ctx, "usuario")
	cols, vals := buildUsuarioInsert(cat, p, cpfClean)
	if len(cols) == 0 {
		r.log.Warn().Str("table", "usuario").Msg("nenhuma coluna utilizável para inserção")
		return fmt.Errorf("criar usuário: esquema sem colunas utilizáveis")
	}

	placeholders := make([]string, len(vals))
	for i := range vals {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO usuario (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	if _, err := r.q.Exec(ctx, query, vals...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCPFAlreadyExists
		}
		r.log.Error().Err(err).Msg("criar usuário")
		return fmt.Errorf("criar usuário: %w", err)
	}
	return nil
}

// DeleteFuncionario apaga o funcionário casando CPF e, quando as colunas
// existem, tipo e empresa. Zero linhas afetadas é domain.ErrNotFound —
// resultado normal, distinto de falha de storage.
func (r *UsuarioRepo) DeleteFuncionario(ctx context.Context, raw, idEmpresa string) error {
	cpfClean := cpf.Normalize(raw)

	cat := r.schema.Columns(ctx, "usuario")
	if cat.Empty() || !cat.Has("cpf") {
		r.log.Warn().Str("table", "usuario").Msg("nenhuma coluna utilizável para exclusão")
		return domain.ErrNotFound
	}

	conds, params := buildFuncionarioDelete(cat, cpfClean, idEmpresa)
	query := "DELETE FROM usuario WHERE " + strings.Join(conds, " AND ")

	tag, err := r.q.Exec(ctx, query, params...)
	if err != nil {
		r.log.Error().Err(err).Msg("excluir funcionário")
		return fmt.Errorf("excluir funcionário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListFuncionariosByEmpresa lista os funcionários da empresa. Sem coluna de
// empresa na tabela usuario, a listagem legada da tabela funcionarios tem
// preferência; na falta dela, filtra por tipo_acesso quando possível.
func (r *UsuarioRepo) ListFuncionariosByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.Funcionario, error) {
	cat := r.schema.Columns(ctx, "usuario")
	if cat.Empty() {
		return nil, nil
	}

	empresaCol, temEmpresa := cat.Resolve(usuarioEmpresaCols...)

	var (
		query  string
		params []any
	)
	switch {
	case temEmpresa && cat.Has("tipo_acesso"):
		query = fmt.Sprintf("SELECT id, nome, cpf FROM usuario WHERE %s = $1 AND tipo_acesso = 'funcionario'", empresaCol)
		params = []any{dbID(idEmpresa)}
	case temEmpresa:
		query = fmt.Sprintf("SELECT id, nome, cpf FROM usuario WHERE %s = $1", empresaCol)
		params = []any{dbID(idEmpresa)}
	case cat.Has("tipo_acesso"):
		query = "SELECT id, nome, cpf FROM usuario WHERE tipo_acesso = 'funcionario'"
	default:
		// Sem empresa nem tipo não há como distinguir funcionários aqui;
		// resta a listagem legada.
		if r.shadow != nil {
			return r.shadow.ListByEmpresa(ctx, idEmpresa), nil
		}
		return nil, nil
	}

	rows, err := r.q.Query(ctx, query, params...)
	if err != nil {
		r.log.Error().Err(err).Msg("listar funcionários")
		return nil, fmt.Errorf("listar funcionários: %w", err)
	}
	defer rows.Close()

	var out []*entity.Funcionario
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("ler linha de funcionário: %w", err)
		}
		f := &entity.Funcionario{}
		if len(vals) == 3 {
			f.ID = asInt64Ptr(vals[0])
			f.Nome = asString(vals[1])
			f.CPF = asString(vals[2])
		}
		if temEmpresa {
			emp := asString(dbID(idEmpresa))
			f.IDEmpresa = &emp
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar funcionários: %w", err)
	}

	if !temEmpresa && r.shadow != nil {
		// Instalação sem coluna de empresa: a tabela auxiliar é a fonte com
		// escopo correto quando tem linhas.
		if legacy := r.shadow.ListByEmpresa(ctx, idEmpresa); len(legacy) > 0 {
			return legacy, nil
		}
	}
	return out, nil
}
