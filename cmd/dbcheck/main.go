package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/techtitans/estoque-api/internal/domain/access"
	"github.com/techtitans/estoque-api/internal/infrastructure/postgres"
	"github.com/techtitans/estoque-api/pkg/config"
	"github.com/techtitans/estoque-api/pkg/cpf"
	"github.com/techtitans/estoque-api/pkg/logger"
)

// dbcheck inspeciona o esquema de uma instalação: mostra as colunas reais das
// tabelas e para qual coluna cada campo lógico resolve. Útil no suporte a
// bases antigas cujo esquema ninguém documenta.

func main() {
	root := &cobra.Command{
		Use:   "dbcheck",
		Short: "Inspeciona o esquema do banco e a resolução de colunas",
		Long: `Conecta no banco configurado (DATABASE_URL ou DB_*) e mostra o que a
introspecção enxerga: as colunas reais de cada tabela e para qual coluna cada
campo lógico resolve nessa instalação.`,
		SilenceUsage: true,
	}
	root.AddCommand(newTablesCommand())
	root.AddCommand(newUserCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Mostra as colunas das tabelas e a resolução dos campos lógicos",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := connect(ctx)
			if err != nil {
				return err
			}
			defer deps.pool.Close()

			for _, table := range []string{"usuario", "funcionarios", "produto", "empresa"} {
				cat := deps.introspector.Columns(ctx, table)
				if cat.Empty() {
					fmt.Printf("%s: ausente ou inacessível\n", table)
					continue
				}
				fmt.Printf("%s: %s\n", table, strings.Join(cat.Columns(), ", "))
				for _, field := range postgres.LogicalFields(table) {
					if col, ok := cat.Resolve(field.Candidates...); ok {
						fmt.Printf("  %-12s -> %s\n", field.Name, col)
					} else {
						fmt.Printf("  %-12s -> (sem coluna)\n", field.Name)
					}
				}
			}
			return nil
		},
	}
}

func newUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user <cpf>",
		Short: "Busca um usuário pelo CPF e mostra como ele seria classificado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := connect(ctx)
			if err != nil {
				return err
			}
			defer deps.pool.Close()

			u, err := deps.usuarios.FindByCPF(ctx, args[0])
			if err != nil {
				return fmt.Errorf("buscar usuário: %w", err)
			}
			if u == nil {
				fmt.Printf("CPF %s não encontrado\n", cpf.Normalize(args[0]))
				return nil
			}

			fmt.Printf("cpf:         %s\n", u.CPF)
			fmt.Printf("nome:        %s\n", u.Nome)
			fmt.Printf("tipo_acesso: %q\n", u.TipoAcesso)
			if u.IDEmpresa != nil {
				fmt.Printf("id_empresa:  %s\n", *u.IDEmpresa)
			} else {
				fmt.Println("id_empresa:  (nenhum)")
			}

			d := access.Classify(u)
			fmt.Printf("classificação: %s\n", d.UserType)
			if d.IDEmpresa != nil {
				fmt.Printf("empresa efetiva: %s\n", *d.IDEmpresa)
			}
			return nil
		},
	}
}

type cliDeps struct {
	pool         *pgxpool.Pool
	introspector *postgres.Introspector
	usuarios     *postgres.UsuarioRepo
}

func connect(ctx context.Context) (*cliDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("carregar configuração: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexão ao PostgreSQL: %w", err)
	}

	introspector := postgres.NewIntrospector(pool, log.Zerolog())
	funcionarios := postgres.NewFuncionariosRepository(pool, introspector, log.Zerolog())
	usuarios := postgres.NewUsuarioRepository(pool, introspector, funcionarios, log.Zerolog())
	return &cliDeps{pool: pool, introspector: introspector, usuarios: usuarios}, nil
}
