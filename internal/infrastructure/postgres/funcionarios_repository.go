package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
	"github.com/techtitans/estoque-api/pkg/cpf"
)

var _ repository.FuncionarioShadow = (*FuncionariosRepo)(nil)

// FuncionariosRepo adaptador da tabela auxiliar funcionarios. Existe para
// cobrir instalações cuja tabela usuario não tem coluna de empresa, sem exigir
// migração destrutiva. É consultiva: toda falha aqui é registrada e engolida,
// porque a tabela primária continua sendo a autoridade.
type FuncionariosRepo struct {
	q      Querier
	schema *Introspector
	log    zerolog.Logger
}

// NewFuncionariosRepository constrói o adaptador da tabela auxiliar.
func NewFuncionariosRepository(q Querier, schema *Introspector, log zerolog.Logger) *FuncionariosRepo {
	return &FuncionariosRepo{q: q, schema: schema, log: log}
}

// EnsureTable garante a existência da tabela auxiliar. Idempotente; nunca
// altera uma tabela que já exista com outro formato.
func (r *FuncionariosRepo) EnsureTable(ctx context.Context) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS funcionarios (
			cpf VARCHAR(14) PRIMARY KEY,
			nome VARCHAR(100),
			senha VARCHAR(255),
			id_empresa INTEGER,
			criado_em TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := r.q.Exec(ctx, ddl); err != nil {
		r.log.Warn().Err(err).Msg("garantir tabela funcionarios")
	}
}

// shadowCols resolve as colunas lógicas da tabela auxiliar no esquema corrente.
type shadowCols struct {
	id, cpf, empresa, senha, nome string
}

func resolveShadowCols(cat Catalog) shadowCols {
	var s shadowCols
	s.id, _ = cat.Resolve(funcionariosIDCols...)
	s.cpf, _ = cat.Resolve(funcionariosCPFCols...)
	s.empresa, _ = cat.Resolve(funcionariosEmpresaCols...)
	s.senha, _ = cat.Resolve(funcionariosSenhaCols...)
	s.nome, _ = cat.Resolve(funcionariosNomeCols...)
	return s
}

// usable exige o mínimo para qualquer operação: coluna de CPF e de empresa.
func (s shadowCols) usable() bool { return s.cpf != "" && s.empresa != "" }

// LookupEmpresa devolve o vínculo de empresa registrado para o CPF, aceitando
// a forma com ou sem pontuação. Usado só quando a tabela usuario não resolveu
// a empresa.
func (r *FuncionariosRepo) LookupEmpresa(ctx context.Context, raw string) (string, bool) {
	r.EnsureTable(ctx)
	cat := r.schema.Columns(ctx, "funcionarios")
	if cat.Empty() {
		return "", false
	}
	cols := resolveShadowCols(cat)
	if !cols.usable() {
		return "", false
	}

	cpfClean := cpf.Normalize(raw)
	query := fmt.Sprintf("SELECT %s FROM funcionarios WHERE %s = $1 OR %s = $2 LIMIT 1",
		cols.empresa, cols.cpf, cols.cpf)

	rows, err := r.q.Query(ctx, query, cpfClean, cpf.Format(cpfClean))
	if err != nil {
		r.log.Warn().Err(err).Msg("buscar empresa em funcionarios")
		return "", false
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false
	}
	vals, err := rows.Values()
	if err != nil || len(vals) == 0 || vals[0] == nil {
		return "", false
	}
	return asString(vals[0]), true
}

// Sync insere ou atualiza o vínculo (cpf, empresa) após a criação de um
// funcionário, tocando só as colunas que o esquema da tabela auxiliar tiver.
func (r *FuncionariosRepo) Sync(ctx context.Context, raw, senhaHash, idEmpresa, nome string) {
	r.EnsureTable(ctx)
	cat := r.schema.Columns(ctx, "funcionarios")
	if cat.Empty() {
		return
	}
	cols := resolveShadowCols(cat)
	if !cols.usable() {
		return
	}

	cpfClean := cpf.Normalize(raw)
	empresaVal := dbID(idEmpresa)

	existsQuery := fmt.Sprintf("SELECT 1 FROM funcionarios WHERE %s = $1 AND %s = $2 LIMIT 1",
		cols.cpf, cols.empresa)
	var one int
	err := r.q.QueryRow(ctx, existsQuery, cpfClean, empresaVal).Scan(&one)
	exists := err == nil

	if exists {
		var sets []string
		var params []any
		if cols.senha != "" {
			params = append(params, senhaHash)
			sets = append(sets, fmt.Sprintf("%s = $%d", cols.senha, len(params)))
		}
		if cols.nome != "" && nome != "" {
			params = append(params, nome)
			sets = append(sets, fmt.Sprintf("%s = $%d", cols.nome, len(params)))
		}
		if len(sets) == 0 {
			return
		}
		params = append(params, cpfClean, empresaVal)
		update := fmt.Sprintf("UPDATE funcionarios SET %s WHERE %s = $%d AND %s = $%d",
			strings.Join(sets, ", "), cols.cpf, len(params)-1, cols.empresa, len(params))
		if _, err := r.q.Exec(ctx, update, params...); err != nil {
			r.log.Warn().Err(err).Msg("sincronizar funcionarios")
		}
		return
	}

	insertCols := []string{cols.cpf, cols.empresa}
	vals := []any{cpfClean, empresaVal}
	if cols.senha != "" {
		insertCols = append(insertCols, cols.senha)
		vals = append(vals, senhaHash)
	}
	if cols.nome != "" && nome != "" {
		insertCols = append(insertCols, cols.nome)
		vals = append(vals, nome)
	}
	placeholders := make([]string, len(vals))
	for i := range vals {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	insert := fmt.Sprintf("INSERT INTO funcionarios (%s) VALUES (%s)",
		strings.Join(insertCols, ", "), strings.Join(placeholders, ", "))
	if _, err := r.q.Exec(ctx, insert, vals...); err != nil {
		r.log.Warn().Err(err).Msg("sincronizar funcionarios")
	}
}

// Remove apaga o vínculo do funcionário na tabela auxiliar. Melhor esforço:
// linha ausente não é erro e falha só gera log.
func (r *FuncionariosRepo) Remove(ctx context.Context, raw, idEmpresa string) {
	r.EnsureTable(ctx)
	cat := r.schema.Columns(ctx, "funcionarios")
	if cat.Empty() {
		return
	}
	cols := resolveShadowCols(cat)
	if !cols.usable() {
		return
	}

	cpfClean := cpf.Normalize(raw)
	query := fmt.Sprintf("DELETE FROM funcionarios WHERE (%s = $1 OR %s = $2) AND %s = $3",
		cols.cpf, cols.cpf, cols.empresa)
	if _, err := r.q.Exec(ctx, query, cpfClean, cpf.Format(cpfClean), dbID(idEmpresa)); err != nil {
		r.log.Warn().Err(err).Msg("remover vínculo em funcionarios")
	}
}

// ListByEmpresa lista os vínculos da empresa para instalações legadas cuja
// tabela usuario não tem coluna de empresa. Falha devolve lista vazia.
func (r *FuncionariosRepo) ListByEmpresa(ctx context.Context, idEmpresa string) []*entity.Funcionario {
	r.EnsureTable(ctx)
	cat := r.schema.Columns(ctx, "funcionarios")
	if cat.Empty() {
		return nil
	}
	cols := resolveShadowCols(cat)
	if !cols.usable() {
		return nil
	}

	sel := make([]string, 0, 4)
	if cols.id != "" {
		sel = append(sel, cols.id)
	}
	sel = append(sel, cols.cpf, cols.empresa)
	if cols.nome != "" {
		sel = append(sel, cols.nome)
	}

	query := fmt.Sprintf("SELECT %s FROM funcionarios WHERE %s = $1",
		strings.Join(sel, ", "), cols.empresa)
	rows, err := r.q.Query(ctx, query, dbID(idEmpresa))
	if err != nil {
		r.log.Warn().Err(err).Msg("listar funcionarios legados")
		return nil
	}
	defer rows.Close()

	var out []*entity.Funcionario
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			r.log.Warn().Err(err).Msg("ler linha de funcionarios")
			return nil
		}
		f := &entity.Funcionario{}
		i := 0
		if cols.id != "" {
			f.ID = asInt64Ptr(vals[i])
			i++
		}
		f.CPF = asString(vals[i])
		i++
		f.IDEmpresa = asStringPtr(vals[i])
		i++
		if cols.nome != "" && i < len(vals) {
			f.Nome = asString(vals[i])
		}
		if f.Nome == "" && len(f.CPF) >= 3 {
			// Mesmo placeholder de nome usado no cadastro sem nome informado
			f.Nome = "Funcionário " + f.CPF[:3]
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		r.log.Warn().Err(err).Msg("listar funcionarios legados")
		return nil
	}
	return out
}
