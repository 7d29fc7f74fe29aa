package postgres

import (
	"context"

	"github.com/rs/zerolog"
)

// Listas de candidatos, da grafia mais provável para a menos provável, conforme
// os esquemas observados nas instalações em produção. A ordem importa: o
// primeiro candidato presente no catálogo vence.
var (
	usuarioEmpresaCols = []string{"id_empresa", "empresa_id", "empresa", "company_id"}

	funcionariosCPFCols     = []string{"cpf", "cpf_funcionario", "cpf_colaborador", "cpf_colab"}
	funcionariosEmpresaCols = []string{"id_empresa", "empresa_id", "company_id", "idempresa", "empresa"}
	funcionariosSenhaCols   = []string{"senha", "password_hash", "hash_senha"}
	funcionariosNomeCols    = []string{"nome", "name"}
	funcionariosIDCols      = []string{"id", "id_funcionario", "funcionario_id"}
)

// LogicalField um campo lógico e as colunas candidatas que podem
// materializá-lo, na ordem de resolução.
type LogicalField struct {
	Name       string
	Candidates []string
}

// LogicalFields devolve os campos adaptáveis da tabela. Usado pelo dbcheck
// para mostrar como cada campo resolve numa instalação concreta.
func LogicalFields(table string) []LogicalField {
	switch table {
	case "usuario":
		return []LogicalField{
			{Name: "empresa", Candidates: usuarioEmpresaCols},
			{Name: "tipo_acesso", Candidates: []string{"tipo_acesso"}},
			{Name: "email", Candidates: []string{"email"}},
		}
	case "funcionarios":
		return []LogicalField{
			{Name: "id", Candidates: funcionariosIDCols},
			{Name: "cpf", Candidates: funcionariosCPFCols},
			{Name: "empresa", Candidates: funcionariosEmpresaCols},
			{Name: "senha", Candidates: funcionariosSenhaCols},
			{Name: "nome", Candidates: funcionariosNomeCols},
		}
	}
	return nil
}

// Catalog é o retrato das colunas físicas de uma tabela no momento de uma
// operação. É um valor: os montadores de query o recebem como parâmetro em vez
// de consultarem o banco por conta própria, o que deixa a montagem testável.
// Não é cacheado entre operações — cada chamada reflete o esquema corrente.
type Catalog struct {
	table string
	cols  []string
	set   map[string]struct{}
}

// NewCatalog monta um catálogo a partir da lista ordenada de colunas.
func NewCatalog(table string, cols []string) Catalog {
	set := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}
	return Catalog{table: table, cols: cols, set: set}
}

// Table devolve o nome da tabela inspecionada.
func (c Catalog) Table() string { return c.table }

// Empty informa se nenhuma coluna foi descoberta (tabela ausente ou ilegível).
func (c Catalog) Empty() bool { return len(c.cols) == 0 }

// Columns devolve as colunas na ordem física (ordinal_position).
func (c Catalog) Columns() []string { return c.cols }

// Has informa se a coluna física existe na tabela.
func (c Catalog) Has(name string) bool {
	_, ok := c.set[name]
	return ok
}

// Resolve devolve o primeiro candidato presente no catálogo. Função pura,
// determinística e sensível à ordem da lista de candidatos.
func (c Catalog) Resolve(candidates ...string) (string, bool) {
	for _, cand := range candidates {
		if c.Has(cand) {
			return cand, true
		}
	}
	return "", false
}

// Introspector descobre o conjunto real de colunas de uma tabela em tempo de
// chamada, consultando o catálogo do PostgreSQL.
type Introspector struct {
	q   Querier
	log zerolog.Logger
}

// NewIntrospector constrói o introspector sobre o pool (ou uma tx).
func NewIntrospector(q Querier, log zerolog.Logger) *Introspector {
	return &Introspector{q: q, log: log}
}

// Columns devolve o Catalog da tabela. Tabela ausente ou qualquer falha de
// transporte resulta em catálogo vazio com log de aviso — nunca em erro: quem
// chama deve tratar catálogo vazio como "nada utilizável".
func (i *Introspector) Columns(ctx context.Context, table string) Catalog {
	const query = `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = $1
		ORDER BY ordinal_position`

	rows, err := i.q.Query(ctx, query, table)
	if err != nil {
		i.log.Warn().Err(err).Str("table", table).Msg("introspecção de colunas falhou")
		return NewCatalog(table, nil)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			i.log.Warn().Err(err).Str("table", table).Msg("scan de coluna falhou")
			return NewCatalog(table, nil)
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		i.log.Warn().Err(err).Str("table", table).Msg("leitura de colunas falhou")
		return NewCatalog(table, nil)
	}
	return NewCatalog(table, cols)
}
