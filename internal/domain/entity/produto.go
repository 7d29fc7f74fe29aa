package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto item do catálogo de uma empresa. Esquema fixo: produto(id, nome,
// quantidade, preco, id_empresa).
type Produto struct {
	ID         int64
	Nome       string
	Quantidade int
	Preco      decimal.Decimal
	IDEmpresa  string
	CriadoEm   *time.Time // nil quando a tabela não tem a coluna (caso das bases atuais)
}
