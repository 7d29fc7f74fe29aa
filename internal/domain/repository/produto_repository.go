package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/techtitans/estoque-api/internal/domain/entity"
)

// ProdutoUpdate campos alteráveis de um produto; nil não altera.
type ProdutoUpdate struct {
	Nome       *string
	Quantidade *int
	Preco      *decimal.Decimal
}

// ProdutoRepository porta de persistência da tabela produto (esquema fixo).
// Identificadores de empresa e produto chegam como string e são coagidos para
// numérico quando possível.
type ProdutoRepository interface {
	ListByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.Produto, error)
	GetByID(ctx context.Context, idEmpresa, idProduto string) (*entity.Produto, error)
	GetByNome(ctx context.Context, idEmpresa, nome string) (*entity.Produto, error)
	Create(ctx context.Context, idEmpresa, nome string, quantidade int, preco decimal.Decimal) (*entity.Produto, error)
	UpdateQuantidade(ctx context.Context, idEmpresa, idProduto string, quantidade int) (*entity.Produto, error)
	// Update aplica alterações parciais; devolve domain.ErrNotFound se nada casou.
	Update(ctx context.Context, idEmpresa, idProduto string, upd ProdutoUpdate) (*entity.Produto, error)
	// Delete devolve domain.ErrNotFound quando nenhuma linha casou.
	Delete(ctx context.Context, idEmpresa, idProduto string) error
}
