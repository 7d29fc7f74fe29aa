package entity

// Empresa pode existir como linha da tabela empresa ou apenas implicitamente
// como valor de id_empresa em usuários e produtos.
type Empresa struct {
	ID   string
	Nome string
}
