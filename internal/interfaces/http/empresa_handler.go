package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-api/internal/application/dto"
	"github.com/techtitans/estoque-api/internal/application/usecase"
)

// EmpresaHandler consulta de empresas.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler constrói o handler de empresas.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Get devolve a empresa pelo id. Quando a tabela não existe ou o registro não
// está lá, devolve um placeholder com o próprio id para o frontend não quebrar.
func (h *EmpresaHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	empresa, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao consultar empresa"})
	}
	if empresa == nil {
		return c.JSON(dto.EmpresaResponse{ID: id, Name: "Empresa " + id})
	}
	nome := empresa.Nome
	if nome == "" {
		nome = "Empresa " + id
	}
	return c.JSON(dto.EmpresaResponse{ID: empresa.ID, Name: nome})
}
