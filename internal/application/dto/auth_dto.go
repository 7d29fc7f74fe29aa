package dto

// LoginRequest credenciais de login. O CPF pode vir pontuado ou só com dígitos.
type LoginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// UserPayload dados do usuário autenticado devolvidos ao frontend.
// CompanyID só aparece para funcionários.
type UserPayload struct {
	CPF       string `json:"cpf"`
	Name      string `json:"name,omitempty"`
	CompanyID string `json:"company_id,omitempty"`
	UserType  string `json:"user_type"`
}

// LoginResponse resposta do login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    UserPayload `json:"user"`
}

// RegisterRequest cadastro de um novo chefe.
type RegisterRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
