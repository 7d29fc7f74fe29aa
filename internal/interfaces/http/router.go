package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *usecase.AuthUseCase
	FuncionarioUC *usecase.FuncionarioUseCase
	ProdutoUC     *usecase.ProdutoUseCase
	EmpresaUC     *usecase.EmpresaUseCase
	JWTSecret     string
}

// Router registra as rotas da API. Os caminhos são os que o frontend já
// consome, sem prefixo de versão.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "Servidor funcionando"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)

	auth := AuthMiddleware(deps.JWTSecret)
	scoped := RequireCompanyAccess("companyID")

	// Funcionários (protegido, escopo de empresa)
	funcionarioHandler := NewFuncionarioHandler(deps.FuncionarioUC)
	app.Get("/employees/:companyID", auth, scoped, funcionarioHandler.List)
	app.Post("/employees/:companyID", auth, scoped, funcionarioHandler.Create)
	app.Delete("/employees/:companyID/:cpf", auth, scoped, funcionarioHandler.Delete)

	// Produtos (protegido, escopo de empresa)
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	app.Get("/products/:companyID", auth, scoped, produtoHandler.List)
	app.Post("/products/:companyID", auth, scoped, produtoHandler.Create)
	app.Put("/products/:companyID/:productID", auth, scoped, produtoHandler.Update)
	app.Delete("/products/:companyID/:productID", auth, scoped, produtoHandler.Delete)

	// Empresa (protegido)
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	app.Get("/company/:id", auth, empresaHandler.Get)
}
