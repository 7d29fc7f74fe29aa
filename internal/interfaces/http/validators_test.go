package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apphttp "github.com/techtitans/estoque-api/internal/interfaces/http"
)

func TestValidateCPF(t *testing.T) {
	assert.Empty(t, apphttp.ValidateCPF("12345678901"))
	assert.Empty(t, apphttp.ValidateCPF("123.456.789-01"), "CPF pontuado é aceito")

	assert.Equal(t, "CPF é obrigatório", apphttp.ValidateCPF(""))
	assert.Equal(t, "CPF é obrigatório", apphttp.ValidateCPF("   "))
	assert.Equal(t, "CPF inválido", apphttp.ValidateCPF("1234567890"))
	assert.Equal(t, "CPF inválido", apphttp.ValidateCPF("123456789012"))
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, apphttp.ValidatePassword("Senha123!"))

	assert.Equal(t, "Senha deve ter pelo menos 8 caracteres", apphttp.ValidatePassword("S3nh@"))
	assert.Equal(t, "Senha deve conter pelo menos uma letra maiúscula", apphttp.ValidatePassword("senha123!"))
	assert.Equal(t, "Senha deve conter pelo menos uma letra minúscula", apphttp.ValidatePassword("SENHA123!"))
	assert.Equal(t, "Senha deve conter pelo menos um número", apphttp.ValidatePassword("SenhaForte!"))
	assert.Equal(t, "Senha deve conter pelo menos um caractere especial", apphttp.ValidatePassword("Senha1234"))
}
