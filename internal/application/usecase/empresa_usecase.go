package usecase

import (
	"context"

	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
)

// EmpresaUseCase consulta de informações de empresa.
type EmpresaUseCase struct {
	empresas repository.EmpresaRepository
}

// NewEmpresaUseCase constrói o caso de uso de empresa.
func NewEmpresaUseCase(empresas repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{empresas: empresas}
}

// Get devolve a empresa, ou (nil, nil) quando a tabela/linha não existe —
// o handler apresenta o fallback "Empresa <id>" nesse caso.
func (uc *EmpresaUseCase) Get(ctx context.Context, id string) (*entity.Empresa, error) {
	return uc.empresas.Get(ctx, id)
}
