package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
)

// ProdutoUseCase CRUD do catálogo de produtos de uma empresa.
type ProdutoUseCase struct {
	produtos repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso de produtos.
func NewProdutoUseCase(produtos repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtos: produtos}
}

// List lista os produtos da empresa.
func (uc *ProdutoUseCase) List(ctx context.Context, idEmpresa string) ([]*entity.Produto, error) {
	return uc.produtos.ListByEmpresa(ctx, idEmpresa)
}

// CreateOrAccumulate cria o produto ou, se já existe um com o mesmo nome na
// empresa, soma a quantidade ao existente. O booleano indica o caminho de
// acúmulo.
func (uc *ProdutoUseCase) CreateOrAccumulate(ctx context.Context, idEmpresa, nome string, quantidade int, preco decimal.Decimal) (*entity.Produto, bool, error) {
	existing, err := uc.produtos.GetByNome(ctx, idEmpresa, nome)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		p, err := uc.produtos.UpdateQuantidade(ctx, idEmpresa, fmt.Sprint(existing.ID), existing.Quantidade+quantidade)
		if err != nil {
			return nil, false, err
		}
		return p, true, nil
	}
	p, err := uc.produtos.Create(ctx, idEmpresa, nome, quantidade, preco)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

// Update aplica alterações parciais; domain.ErrNotFound se o produto não
// existe na empresa.
func (uc *ProdutoUseCase) Update(ctx context.Context, idEmpresa, idProduto string, upd repository.ProdutoUpdate) (*entity.Produto, error) {
	existing, err := uc.produtos.GetByID(ctx, idEmpresa, idProduto)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	return uc.produtos.Update(ctx, idEmpresa, idProduto, upd)
}

// Delete exclui o produto; domain.ErrNotFound se nada casou.
func (uc *ProdutoUseCase) Delete(ctx context.Context, idEmpresa, idProduto string) error {
	return uc.produtos.Delete(ctx, idEmpresa, idProduto)
}
