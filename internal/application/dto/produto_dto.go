package dto

import "time"

// ProdutoRequest criação de produto. Quantity e Value chegam como número JSON.
type ProdutoRequest struct {
	Name     string   `json:"name"`
	Quantity *int     `json:"quantity"`
	Value    *float64 `json:"value"`
}

// ProdutoUpdateRequest atualização parcial; campo ausente não altera.
type ProdutoUpdateRequest struct {
	Name     *string  `json:"name"`
	Quantity *int     `json:"quantity"`
	Value    *float64 `json:"value"`
}

// ProdutoResponse um produto no formato que o frontend consome: id como
// string, value como número.
type ProdutoResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	Value     float64    `json:"value"`
	CompanyID string     `json:"company_id"`
	CreatedAt *time.Time `json:"created_at"`
}

// ProdutosListResponse envelope da listagem.
type ProdutosListResponse struct {
	Products []ProdutoResponse `json:"products"`
}

// ProdutoMutationResponse resposta da criação; Updated indica que a criação
// caiu no caminho de acúmulo de quantidade.
type ProdutoMutationResponse struct {
	Message string          `json:"message"`
	Product ProdutoResponse `json:"product"`
	Updated bool            `json:"updated"`
}

// ProdutoUpdatedResponse resposta da atualização parcial.
type ProdutoUpdatedResponse struct {
	Message string          `json:"message"`
	Product ProdutoResponse `json:"product"`
}
