package domain

import "errors"

// Erros de domínio (sem dependências externas). A camada de persistência nunca
// deixa um erro do driver atravessar sua fronteira: ou mapeia para um destes,
// ou devolve um erro embrulhado de falha de storage.
var (
	ErrNotFound              = errors.New("recurso não encontrado")
	ErrUsuarioNotFound       = errors.New("usuário não encontrado")
	ErrCPFAlreadyExists      = errors.New("CPF já cadastrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("não autorizado")
	ErrForbidden             = errors.New("acesso negado")
	ErrFuncionarioSemEmpresa = errors.New("funcionário sem empresa associada")
)
