package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techtitans/estoque-api/internal/domain/access"
	"github.com/techtitans/estoque-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		usuario     *entity.Usuario
		wantType    string
		wantEmpresa *string
	}{
		{
			name:     "tipo_acesso chefe explícito",
			usuario:  &entity.Usuario{TipoAcesso: entity.TipoChefe},
			wantType: entity.TipoChefe,
		},
		{
			name:        "tipo_acesso funcionario com empresa",
			usuario:     &entity.Usuario{TipoAcesso: entity.TipoFuncionario, IDEmpresa: strPtr("3")},
			wantType:    entity.TipoFuncionario,
			wantEmpresa: strPtr("3"),
		},
		{
			name:     "funcionario sem empresa resolvida mantém o tipo, empresa nil",
			usuario:  &entity.Usuario{TipoAcesso: entity.TipoFuncionario},
			wantType: entity.TipoFuncionario,
		},
		{
			name:     "tipo desconhecido e sem empresa: convenção legada de chefe",
			usuario:  &entity.Usuario{TipoAcesso: entity.TipoDesconhecido},
			wantType: entity.TipoChefe,
		},
		{
			name:        "tipo desconhecido com empresa: funcionário",
			usuario:     &entity.Usuario{TipoAcesso: entity.TipoDesconhecido, IDEmpresa: strPtr("7")},
			wantType:    entity.TipoFuncionario,
			wantEmpresa: strPtr("7"),
		},
		{
			name:     "tipo_acesso com caixa diferente",
			usuario:  &entity.Usuario{TipoAcesso: "CHEFE"},
			wantType: entity.TipoChefe,
		},
		{
			// Chefe explícito com empresa gravada por engano: o marcador de tipo manda.
			name:     "chefe explícito ignora empresa residual",
			usuario:  &entity.Usuario{TipoAcesso: entity.TipoChefe, IDEmpresa: strPtr("9")},
			wantType: entity.TipoChefe,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := access.Classify(tt.usuario)
			assert.Equal(t, tt.wantType, d.UserType)
			if tt.wantEmpresa == nil {
				assert.Nil(t, d.IDEmpresa)
			} else {
				assert.NotNil(t, d.IDEmpresa)
				assert.Equal(t, *tt.wantEmpresa, *d.IDEmpresa)
			}
		})
	}
}

func TestAuthorizeCompanyScope(t *testing.T) {
	chefe := &entity.Usuario{TipoAcesso: entity.TipoChefe}
	assert.True(t, access.AuthorizeCompanyScope(chefe, "1"), "chefe passa nesta camada")

	func3 := &entity.Usuario{TipoAcesso: entity.TipoFuncionario, IDEmpresa: strPtr("3")}
	assert.True(t, access.AuthorizeCompanyScope(func3, "3"))
	assert.False(t, access.AuthorizeCompanyScope(func3, "4"))
	assert.True(t, access.AuthorizeCompanyScope(func3, " 3 "), "comparação normalizada de referências")

	semEmpresa := &entity.Usuario{TipoAcesso: entity.TipoFuncionario}
	assert.False(t, access.AuthorizeCompanyScope(semEmpresa, "3"), "funcionário sem vínculo não é autorizado")
}
