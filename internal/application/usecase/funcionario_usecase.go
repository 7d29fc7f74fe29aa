package usecase

import (
	"context"
	"strings"

	"github.com/techtitans/estoque-api/internal/application/dto"
	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/access"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
	"github.com/techtitans/estoque-api/pkg/cpf"
)

// FuncionarioUseCase gestão de funcionários de uma empresa pelo chefe.
// Toda criação bem-sucedida sincroniza a tabela auxiliar funcionarios, para
// que instalações sem coluna de empresa em usuario não percam o vínculo.
type FuncionarioUseCase struct {
	usuarios repository.UsuarioRepository
	shadow   repository.FuncionarioShadow
}

// NewFuncionarioUseCase constrói o caso de uso de funcionários.
func NewFuncionarioUseCase(usuarios repository.UsuarioRepository, shadow repository.FuncionarioShadow) *FuncionarioUseCase {
	return &FuncionarioUseCase{usuarios: usuarios, shadow: shadow}
}

// List lista os funcionários da empresa.
func (uc *FuncionarioUseCase) List(ctx context.Context, idEmpresa string) ([]*entity.Funcionario, error) {
	return uc.usuarios.ListFuncionariosByEmpresa(ctx, idEmpresa)
}

// Create cadastra um funcionário na empresa. Se o CPF já resolve para um
// funcionário dessa empresa (ou para um funcionário sem vínculo resolvido),
// devolve domain.ErrCPFAlreadyExists; a corrida de criação contra o mesmo CPF
// é desempatada pela constraint de unicidade e resulta no mesmo erro.
func (uc *FuncionarioUseCase) Create(ctx context.Context, idEmpresa string, in dto.FuncionarioRequest) error {
	existing, err := uc.usuarios.FindByCPF(ctx, in.CPF)
	if err != nil {
		return err
	}
	if existing != nil {
		d := access.Classify(existing)
		if !d.IsChefe() {
			if d.IDEmpresa == nil || strings.TrimSpace(*d.IDEmpresa) == strings.TrimSpace(idEmpresa) {
				return domain.ErrCPFAlreadyExists
			}
			// Vínculo com outra empresa: a tentativa segue e esbarra na
			// unicidade global do CPF, mantendo um registro por CPF.
		}
	}

	cpfClean := cpf.Normalize(in.CPF)
	nome := in.Name
	if nome == "" && len(cpfClean) >= 3 {
		nome = "Funcionário " + cpfClean[:3]
	}
	senhaHash := HashPassword(in.Password)

	err = uc.usuarios.Create(ctx, repository.CreateUsuarioParams{
		CPF:        in.CPF,
		SenhaHash:  senhaHash,
		Nome:       nome,
		TipoAcesso: entity.TipoFuncionario,
		IDEmpresa:  &idEmpresa,
	})
	if err != nil {
		return err
	}

	uc.shadow.Sync(ctx, cpfClean, senhaHash, idEmpresa, nome)
	return nil
}

// Delete exclui o funcionário da empresa e remove o vínculo da tabela
// auxiliar. domain.ErrNotFound quando nada casou no armazenamento primário.
func (uc *FuncionarioUseCase) Delete(ctx context.Context, idEmpresa, rawCPF string) error {
	if err := uc.usuarios.DeleteFuncionario(ctx, rawCPF, idEmpresa); err != nil {
		return err
	}
	uc.shadow.Remove(ctx, cpf.Normalize(rawCPF), idEmpresa)
	return nil
}
