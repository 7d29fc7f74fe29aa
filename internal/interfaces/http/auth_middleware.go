package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-api/internal/application/dto"
	"github.com/techtitans/estoque-api/internal/domain/access"
	"github.com/techtitans/estoque-api/pkg/jwt"
)

// Locals keys para os claims extraídos do token.
const (
	LocalCPF       = "cpf"
	LocalCompanyID = "company_id"
	LocalUserType  = "user_type"
)

// AuthMiddleware valida o Bearer Token JWT e extrai cpf, company_id e
// user_type para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token de autenticação ausente"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Formato esperado: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token de autenticação ausente"})
		}
		cpfClaim, companyID, userType, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token inválido ou expirado"})
		}
		c.Locals(LocalCPF, cpfClaim)
		c.Locals(LocalCompanyID, companyID)
		c.Locals(LocalUserType, userType)
		return c.Next()
	}
}

// RequireCompanyAccess autoriza o acesso à empresa da rota: chefe acessa
// qualquer empresa, funcionário só a empresa do próprio vínculo. O parâmetro
// de rota é nomeado na montagem do router.
func RequireCompanyAccess(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := access.Decision{UserType: GetUserType(c)}
		if companyID := GetCompanyID(c); companyID != "" {
			d.IDEmpresa = &companyID
		}
		if !d.AllowsCompany(c.Params(param)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Acesso negado a esta empresa"})
		}
		return c.Next()
	}
}

// GetCPF devolve o CPF do contexto (depois do middleware de auth).
func GetCPF(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCPF).(string)
	return s
}

// GetCompanyID devolve o company_id do contexto; vazio para chefes.
func GetCompanyID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCompanyID).(string)
	return s
}

// GetUserType devolve o tipo de acesso do contexto.
func GetUserType(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserType).(string)
	return s
}
