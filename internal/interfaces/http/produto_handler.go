package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/techtitans/estoque-api/internal/application/dto"
	"github.com/techtitans/estoque-api/internal/application/usecase"
	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
)

// ProdutoHandler trata o catálogo de produtos de uma empresa.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler de produtos.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

func toProdutoResponse(p *entity.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:        fmt.Sprint(p.ID),
		Name:      p.Nome,
		Quantity:  p.Quantidade,
		Value:     p.Preco.InexactFloat64(),
		CompanyID: p.IDEmpresa,
		CreatedAt: p.CriadoEm,
	}
}

// validateProdutoNome devolve a mensagem de erro para o nome, ou "".
func validateProdutoNome(nome string) string {
	if nome == "" {
		return "Nome do produto é obrigatório"
	}
	if len([]rune(nome)) > 100 {
		return "Nome do produto deve ter no máximo 100 caracteres"
	}
	return ""
}

// List lista os produtos da empresa da rota.
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	idEmpresa := c.Params("companyID")

	produtos, err := h.uc.List(c.UserContext(), idEmpresa)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao listar produtos"})
	}

	out := dto.ProdutosListResponse{Products: make([]dto.ProdutoResponse, 0, len(produtos))}
	for _, p := range produtos {
		out.Products = append(out.Products, toProdutoResponse(p))
	}
	return c.JSON(out)
}

// Create adiciona um produto. Nome já existente na empresa soma a quantidade
// ao produto existente em vez de duplicar. Quantidade e valor ausentes valem
// zero, o mesmo default que o frontend sempre teve.
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	idEmpresa := c.Params("companyID")

	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Dados não fornecidos"})
	}
	if msg := validateProdutoNome(in.Name); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
	}
	quantidade := 0
	if in.Quantity != nil {
		quantidade = *in.Quantity
	}
	if quantidade < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Quantidade deve ser maior ou igual a zero"})
	}
	valor := 0.0
	if in.Value != nil {
		valor = *in.Value
	}
	if valor < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Valor deve ser maior ou igual a zero"})
	}

	p, acumulou, err := h.uc.CreateOrAccumulate(c.UserContext(), idEmpresa, in.Name,
		quantidade, decimal.NewFromFloat(valor))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro ao cadastrar produto"})
	}

	if acumulou {
		anterior := p.Quantidade - quantidade
		return c.JSON(dto.ProdutoMutationResponse{
			Message: fmt.Sprintf("Produto '%s' já existe. Quantidade atualizada de %d para %d",
				in.Name, anterior, p.Quantidade),
			Product: toProdutoResponse(p),
			Updated: true,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProdutoMutationResponse{
		Message: "Produto cadastrado com sucesso",
		Product: toProdutoResponse(p),
		Updated: false,
	})
}

// Update aplica alterações parciais ao produto da rota; campo ausente do corpo
// não altera.
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	idEmpresa := c.Params("companyID")
	idProduto := c.Params("productID")

	var in dto.ProdutoUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Dados não fornecidos"})
	}
	if in.Name != nil {
		if msg := validateProdutoNome(*in.Name); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
		}
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Quantidade deve ser maior ou igual a zero"})
	}
	if in.Value != nil && *in.Value < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Valor deve ser maior ou igual a zero"})
	}

	upd := repository.ProdutoUpdate{Nome: in.Name, Quantidade: in.Quantity}
	if in.Value != nil {
		preco := decimal.NewFromFloat(*in.Value)
		upd.Preco = &preco
	}

	p, err := h.uc.Update(c.UserContext(), idEmpresa, idProduto, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro ao atualizar produto"})
	}
	return c.JSON(dto.ProdutoUpdatedResponse{
		Message: "Produto atualizado com sucesso",
		Product: toProdutoResponse(p),
	})
}

// Delete exclui o produto da rota.
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	idEmpresa := c.Params("companyID")
	idProduto := c.Params("productID")

	if err := h.uc.Delete(c.UserContext(), idEmpresa, idProduto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao excluir produto"})
	}
	return c.JSON(dto.MessageResponse{Message: "Produto excluído com sucesso"})
}
