package repository

import (
	"context"

	"github.com/techtitans/estoque-api/internal/domain/entity"
)

// EmpresaRepository porta de consulta da tabela empresa, que pode nem existir
// na instalação — nesse caso Get devolve (nil, nil).
type EmpresaRepository interface {
	Get(ctx context.Context, id string) (*entity.Empresa, error)
}
