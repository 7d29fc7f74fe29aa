// Package access decide, a partir de um Usuario canônico, se o registro
// representa um chefe ou um funcionário, e se um funcionário pertence a uma
// dada empresa. É lógica pura, sem I/O.
package access

import (
	"strings"

	"github.com/techtitans/estoque-api/internal/domain/entity"
)

// Decision resultado da classificação de um Usuario.
type Decision struct {
	UserType  string  // entity.TipoChefe | entity.TipoFuncionario
	IDEmpresa *string // só para funcionário; nil = vínculo não resolvido (login deve ser recusado)
}

// IsChefe informa se a decisão é de chefe.
func (d Decision) IsChefe() bool { return d.UserType == entity.TipoChefe }

// Classify aplica a convenção das bases em produção:
//   - tipo_acesso "chefe" -> chefe;
//   - tipo_acesso "funcionario" -> funcionário (empresa pode seguir não resolvida);
//   - tipo_acesso desconhecido: sem empresa -> chefe, com empresa -> funcionário.
//
// A última regra é herdada das bases sem coluna de tipo: ausência de vínculo de
// empresa sempre significou conta de chefe. Um funcionário cujo vínculo se
// perdeu (sem linha na tabela funcionarios) é classificado como chefe aqui;
// comportamento conhecido, mantido por compatibilidade.
func Classify(u *entity.Usuario) Decision {
	switch strings.ToLower(u.TipoAcesso) {
	case entity.TipoChefe:
		return Decision{UserType: entity.TipoChefe}
	case entity.TipoFuncionario:
		return Decision{UserType: entity.TipoFuncionario, IDEmpresa: u.IDEmpresa}
	}
	if u.IDEmpresa == nil {
		return Decision{UserType: entity.TipoChefe}
	}
	return Decision{UserType: entity.TipoFuncionario, IDEmpresa: u.IDEmpresa}
}

// AllowsCompany informa se a decisão permite agir no escopo da empresa pedida.
// Chefes passam nesta camada (o CRUD em volta restringe aos escopos que
// criaram); funcionários só se o vínculo bater com a empresa pedida,
// comparando as duas referências como strings normalizadas.
func (d Decision) AllowsCompany(idEmpresa string) bool {
	if d.IsChefe() {
		return true
	}
	if d.IDEmpresa == nil {
		return false
	}
	return normalizeRef(*d.IDEmpresa) == normalizeRef(idEmpresa)
}

// AuthorizeCompanyScope é AllowsCompany a partir do registro canônico.
func AuthorizeCompanyScope(u *entity.Usuario, idEmpresa string) bool {
	return Classify(u).AllowsCompany(idEmpresa)
}

func normalizeRef(s string) string {
	return strings.TrimSpace(s)
}
