package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-api/internal/application/dto"
	"github.com/techtitans/estoque-api/internal/application/usecase"
	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/pkg/cpf"
)

// FuncionarioHandler trata a gestão de funcionários de uma empresa.
type FuncionarioHandler struct {
	uc *usecase.FuncionarioUseCase
}

// NewFuncionarioHandler constrói o handler de funcionários.
func NewFuncionarioHandler(uc *usecase.FuncionarioUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc}
}

// List lista os funcionários da empresa da rota.
func (h *FuncionarioHandler) List(c *fiber.Ctx) error {
	idEmpresa := c.Params("companyID")

	funcionarios, err := h.uc.List(c.UserContext(), idEmpresa)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao listar funcionários"})
	}

	out := dto.FuncionariosListResponse{Employees: make([]dto.FuncionarioResponse, 0, len(funcionarios))}
	for _, f := range funcionarios {
		out.Employees = append(out.Employees, dto.FuncionarioResponse{
			ID:        f.ID,
			Nome:      f.Nome,
			CPF:       f.CPF,
			IDEmpresa: f.IDEmpresa,
		})
	}
	return c.JSON(out)
}

// Create cadastra um funcionário na empresa da rota.
func (h *FuncionarioHandler) Create(c *fiber.Ctx) error {
	idEmpresa := c.Params("companyID")

	var in dto.FuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Dados não fornecidos"})
	}
	if msg := ValidateCPF(in.CPF); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
	}
	if msg := ValidatePassword(in.Password); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
	}

	if err := h.uc.Create(c.UserContext(), idEmpresa, in); err != nil {
		if errors.Is(err, domain.ErrCPFAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Funcionário já cadastrado nesta empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao cadastrar funcionário"})
	}

	out := dto.FuncionarioCriadoResponse{Message: "Funcionário cadastrado com sucesso"}
	out.Employee.CPF = cpf.Normalize(in.CPF)
	out.Employee.CompanyID = idEmpresa
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete exclui um funcionário da empresa da rota.
func (h *FuncionarioHandler) Delete(c *fiber.Ctx) error {
	idEmpresa := c.Params("companyID")
	rawCPF := c.Params("cpf")

	if err := h.uc.Delete(c.UserContext(), idEmpresa, rawCPF); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Funcionário não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao excluir funcionário"})
	}
	return c.JSON(dto.MessageResponse{Message: "Funcionário excluído com sucesso"})
}
