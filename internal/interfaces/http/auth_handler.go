package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-api/internal/application/dto"
	"github.com/techtitans/estoque-api/internal/application/usecase"
	"github.com/techtitans/estoque-api/internal/domain"
)

// AuthHandler trata login e cadastro de chefe.
type AuthHandler struct {
	uc *usecase.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica por CPF e senha. As mensagens seguem o contrato que o
// frontend já exibe.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Dados não fornecidos"})
	}
	if msg := ValidateCPF(in.CPF); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
	}
	if msg := ValidatePassword(in.Password); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
	}

	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "CPF ou senha incorretos, tente novamente"})
		case errors.Is(err, domain.ErrFuncionarioSemEmpresa):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Funcionário sem empresa associada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao realizar login"})
		}
	}
	return c.JSON(out)
}

// Register cadastra um novo chefe.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Dados não fornecidos"})
	}
	if msg := ValidateCPF(in.CPF); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
	}
	if msg := ValidatePassword(in.Password); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
	}

	if err := h.uc.Register(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrCPFAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Usuário já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Erro interno ao cadastrar usuário"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Usuário cadastrado com sucesso"})
}
