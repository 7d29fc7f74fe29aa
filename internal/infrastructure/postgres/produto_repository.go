package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo adaptador de persistência da tabela produto. Esquema fixo em
// todas as instalações: produto(id, nome, quantidade, preco, id_empresa).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoSelect = "SELECT id, nome, quantidade, preco, id_empresa FROM produto"

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var (
		p         entity.Produto
		preco     decimal.Decimal
		idEmpresa any
	)
	if err := row.Scan(&p.ID, &p.Nome, &p.Quantidade, &preco, &idEmpresa); err != nil {
		return nil, err
	}
	p.Preco = preco
	p.IDEmpresa = asString(idEmpresa)
	return &p, nil
}

// ListByEmpresa lista os produtos da empresa em ordem de id.
func (r *ProdutoRepo) ListByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.Produto, error) {
	rows, err := r.q.Query(ctx, produtoSelect+" WHERE id_empresa = $1 ORDER BY id", dbID(idEmpresa))
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("ler produto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID busca o produto pelo id dentro da empresa. (nil, nil) se não existir.
func (r *ProdutoRepo) GetByID(ctx context.Context, idEmpresa, idProduto string) (*entity.Produto, error) {
	row := r.q.QueryRow(ctx, produtoSelect+" WHERE id = $1 AND id_empresa = $2",
		dbID(idProduto), dbID(idEmpresa))
	p, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar produto: %w", err)
	}
	return p, nil
}

// GetByNome busca o produto pelo nome exato dentro da empresa. (nil, nil) se não existir.
func (r *ProdutoRepo) GetByNome(ctx context.Context, idEmpresa, nome string) (*entity.Produto, error) {
	row := r.q.QueryRow(ctx, produtoSelect+" WHERE id_empresa = $1 AND nome = $2",
		dbID(idEmpresa), nome)
	p, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar produto por nome: %w", err)
	}
	return p, nil
}

// Create insere o produto e o relê pelo id devolvido.
func (r *ProdutoRepo) Create(ctx context.Context, idEmpresa, nome string, quantidade int, preco decimal.Decimal) (*entity.Produto, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		"INSERT INTO produto (nome, quantidade, preco, id_empresa) VALUES ($1, $2, $3, $4) RETURNING id",
		nome, quantidade, preco, dbID(idEmpresa),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("criar produto: %w", err)
	}
	return r.GetByID(ctx, idEmpresa, fmt.Sprint(id))
}

// UpdateQuantidade atualiza só a quantidade; domain.ErrNotFound se nada casou.
func (r *ProdutoRepo) UpdateQuantidade(ctx context.Context, idEmpresa, idProduto string, quantidade int) (*entity.Produto, error) {
	tag, err := r.q.Exec(ctx,
		"UPDATE produto SET quantidade = $1 WHERE id = $2 AND id_empresa = $3",
		quantidade, dbID(idProduto), dbID(idEmpresa),
	)
	if err != nil {
		return nil, fmt.Errorf("atualizar quantidade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, idEmpresa, idProduto)
}

// Update aplica alterações parciais (SET só dos campos informados).
func (r *ProdutoRepo) Update(ctx context.Context, idEmpresa, idProduto string, upd repository.ProdutoUpdate) (*entity.Produto, error) {
	var sets []string
	var params []any

	if upd.Nome != nil {
		params = append(params, *upd.Nome)
		sets = append(sets, fmt.Sprintf("nome = $%d", len(params)))
	}
	if upd.Quantidade != nil {
		params = append(params, *upd.Quantidade)
		sets = append(sets, fmt.Sprintf("quantidade = $%d", len(params)))
	}
	if upd.Preco != nil {
		params = append(params, *upd.Preco)
		sets = append(sets, fmt.Sprintf("preco = $%d", len(params)))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, idEmpresa, idProduto)
	}

	params = append(params, dbID(idProduto), dbID(idEmpresa))
	query := fmt.Sprintf("UPDATE produto SET %s WHERE id = $%d AND id_empresa = $%d",
		strings.Join(sets, ", "), len(params)-1, len(params))

	tag, err := r.q.Exec(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, idEmpresa, idProduto)
}

// Delete exclui o produto; domain.ErrNotFound se nada casou.
func (r *ProdutoRepo) Delete(ctx context.Context, idEmpresa, idProduto string) error {
	tag, err := r.q.Exec(ctx,
		"DELETE FROM produto WHERE id = $1 AND id_empresa = $2",
		dbID(idProduto), dbID(idEmpresa),
	)
	if err != nil {
		return fmt.Errorf("excluir produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
