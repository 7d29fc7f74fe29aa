package repository

import (
	"context"

	"github.com/techtitans/estoque-api/internal/domain/entity"
)

// CreateUsuarioParams parâmetros de criação de um usuário. Colunas que a tabela
// não tiver são simplesmente omitidas do INSERT; IDEmpresa nil omite a coluna
// de empresa mesmo quando ela existe (chefes não têm vínculo).
type CreateUsuarioParams struct {
	CPF        string
	SenhaHash  string
	Nome       string
	Email      string
	TipoAcesso string
	IDEmpresa  *string
}

// UsuarioRepository porta de persistência da tabela usuario, tolerante a
// variações de esquema entre instalações.
type UsuarioRepository interface {
	// FindByCPF aceita o CPF pontuado ou só com dígitos; devolve (nil, nil)
	// quando não há registro ou quando o esquema não tem colunas utilizáveis.
	FindByCPF(ctx context.Context, cpf string) (*entity.Usuario, error)
	// Create devolve domain.ErrCPFAlreadyExists em violação de unicidade.
	Create(ctx context.Context, params CreateUsuarioParams) error
	// DeleteFuncionario devolve domain.ErrNotFound quando nenhuma linha casou.
	DeleteFuncionario(ctx context.Context, cpf, idEmpresa string) error
	ListFuncionariosByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.Funcionario, error)
}
