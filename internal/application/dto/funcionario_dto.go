package dto

// FuncionarioRequest cadastro de funcionário numa empresa.
type FuncionarioRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// FuncionarioResponse um funcionário na listagem da empresa. Os nomes de campo
// seguem o contrato que o frontend já consome.
type FuncionarioResponse struct {
	ID        *int64  `json:"id"`
	Nome      string  `json:"nome"`
	CPF       string  `json:"cpf"`
	IDEmpresa *string `json:"id_empresa"`
}

// FuncionariosListResponse envelope da listagem.
type FuncionariosListResponse struct {
	Employees []FuncionarioResponse `json:"employees"`
}

// FuncionarioCriadoResponse resposta da criação.
type FuncionarioCriadoResponse struct {
	Message  string `json:"message"`
	Employee struct {
		CPF       string `json:"cpf"`
		CompanyID string `json:"company_id"`
	} `json:"employee"`
}
