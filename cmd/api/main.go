package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/techtitans/estoque-api/internal/application/usecase"
	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
	"github.com/techtitans/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/techtitans/estoque-api/internal/interfaces/http"
	"github.com/techtitans/estoque-api/pkg/config"
	"github.com/techtitans/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	introspector := postgres.NewIntrospector(pool, log.Zerolog())
	funcionariosRepo := postgres.NewFuncionariosRepository(pool, introspector, log.Zerolog())
	usuarioRepo := postgres.NewUsuarioRepository(pool, introspector, funcionariosRepo, log.Zerolog())
	produtoRepo := postgres.NewProdutoRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)

	// A tabela auxiliar de vínculos é criada na subida; falha vira warning e o
	// resto segue funcionando pelo esquema primário.
	funcionariosRepo.EnsureTable(ctx)

	authUC := usecase.NewAuthUseCase(usuarioRepo, usecase.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	funcionarioUC := usecase.NewFuncionarioUseCase(usuarioRepo, funcionariosRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)

	if cfg.App.Env == "development" {
		seedDevUser(ctx, usuarioRepo, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggingMiddleware(log.Zerolog()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		FuncionarioUC: funcionarioUC,
		ProdutoUC:     produtoUC,
		EmpresaUC:     empresaUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

// seedDevUser garante o chefe de teste usado pelo frontend em desenvolvimento.
func seedDevUser(ctx context.Context, usuarios repository.UsuarioRepository, log *logger.Logger) {
	err := usuarios.Create(ctx, repository.CreateUsuarioParams{
		CPF:        "12345678901",
		SenhaHash:  usecase.HashPassword("Senha123!"),
		Nome:       "Usuário Teste",
		TipoAcesso: entity.TipoChefe,
	})
	switch {
	case err == nil:
		log.Info().Str("cpf", "12345678901").Msg("usuário de desenvolvimento criado")
	case errors.Is(err, domain.ErrCPFAlreadyExists):
		// Já estava lá de uma subida anterior.
	default:
		log.Warn().Err(err).Msg("seed do usuário de desenvolvimento")
	}
}
