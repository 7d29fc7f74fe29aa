package dto

// MessageResponse resposta genérica com mensagem.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse corpo de erro devolvido pelos handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}

// EmpresaResponse informações de uma empresa.
type EmpresaResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
