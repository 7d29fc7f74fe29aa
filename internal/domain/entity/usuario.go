package entity

// Tipos de acesso conhecidos para Usuario. O valor vem da coluna tipo_acesso
// quando ela existe; bases antigas não têm a coluna e ficam com TipoDesconhecido.
const (
	TipoChefe        = "chefe"
	TipoFuncionario  = "funcionario"
	TipoDesconhecido = "" // coluna ausente ou valor nulo no banco
)

// Usuario é o registro canônico de um usuário (chefe ou funcionário), montado
// a partir de qualquer subconjunto de colunas que a tabela usuario tenha.
// Campos logicamente ausentes ficam explícitos: ponteiro nil ou TipoDesconhecido,
// nunca um valor default enganoso.
type Usuario struct {
	ID         *int64 // nil quando a tabela não tem coluna id
	CPF        string // sempre na forma como está persistido no banco
	Nome       string
	SenhaHash  string  // sha256 hex da senha, sem salt (compatibilidade com as bases existentes)
	TipoAcesso string  // TipoChefe | TipoFuncionario | TipoDesconhecido
	IDEmpresa  *string // nil = vínculo de empresa não resolvido
}

// Funcionario é a visão de listagem de um funcionário de uma empresa,
// vinda da tabela usuario ou, em bases legadas, da tabela funcionarios.
type Funcionario struct {
	ID        *int64
	Nome      string
	CPF       string
	IDEmpresa *string
}
