package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo adaptador da tabela empresa, que é opcional: muitas instalações
// só têm a empresa implícita no id_empresa de usuários e produtos.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Get busca a empresa pelo id. Tabela inexistente ou linha ausente devolvem
// (nil, nil): quem chama decide o fallback de apresentação.
func (r *EmpresaRepo) Get(ctx context.Context, id string) (*entity.Empresa, error) {
	row := r.q.QueryRow(ctx, "SELECT id, nome FROM empresa WHERE id = $1", dbID(id))

	var (
		rawID any
		nome  string
	)
	if err := row.Scan(&rawID, &nome); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar empresa: %w", err)
	}
	return &entity.Empresa{ID: asString(rawID), Nome: nome}, nil
}
