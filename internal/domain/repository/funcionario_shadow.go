package repository

import (
	"context"

	"github.com/techtitans/estoque-api/internal/domain/entity"
)

// FuncionarioShadow porta da tabela auxiliar funcionarios, que guarda o vínculo
// funcionário-empresa para instalações cuja tabela usuario não tem coluna de
// empresa. A tabela é consultiva, nunca autoritativa: nenhuma operação devolve
// erro — falhas são registradas em log e engolidas.
type FuncionarioShadow interface {
	// EnsureTable cria a tabela auxiliar se não existir. Idempotente, nunca destrutivo.
	EnsureTable(ctx context.Context)
	// LookupEmpresa devolve o vínculo de empresa do CPF (pontuado ou não), se houver.
	LookupEmpresa(ctx context.Context, cpf string) (string, bool)
	// Sync insere ou atualiza o vínculo após a criação de um funcionário.
	Sync(ctx context.Context, cpf, senhaHash, idEmpresa, nome string)
	// Remove apaga o vínculo; ausência de linha não é erro.
	Remove(ctx context.Context, cpf, idEmpresa string)
	// ListByEmpresa lista vínculos da empresa para instalações legadas.
	ListByEmpresa(ctx context.Context, idEmpresa string) []*entity.Funcionario
}
