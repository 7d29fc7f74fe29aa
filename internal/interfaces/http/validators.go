package http

import (
	"strings"
	"unicode"

	"github.com/techtitans/estoque-api/pkg/cpf"
)

// ValidateCPF devolve a mensagem de erro para o frontend, ou "" se o CPF é
// aceitável (11 dígitos depois de remover a pontuação).
func ValidateCPF(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "CPF é obrigatório"
	}
	if !cpf.IsValid(raw) {
		return "CPF inválido"
	}
	return ""
}

// ValidatePassword aplica as regras de senha do cadastro. Devolve a primeira
// mensagem que falhou, ou "" quando a senha é aceitável.
func ValidatePassword(password string) string {
	if len(password) < 8 {
		return "Senha deve ter pelo menos 8 caracteres"
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !upper:
		return "Senha deve conter pelo menos uma letra maiúscula"
	case !lower:
		return "Senha deve conter pelo menos uma letra minúscula"
	case !digit:
		return "Senha deve conter pelo menos um número"
	case !special:
		return "Senha deve conter pelo menos um caractere especial"
	}
	return ""
}
