package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/techtitans/estoque-api/internal/application/dto"
	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/access"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
	"github.com/techtitans/estoque-api/pkg/cpf"
	"github.com/techtitans/estoque-api/pkg/jwt"
)

// HashPassword gera o digest sha256 hex da senha, sem salt. Fraqueza conhecida:
// senhas iguais produzem digests iguais entre todos os usuários. Mantido assim
// porque as bases em produção guardam exatamente esse formato e os logins
// existentes têm que continuar verificando.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// JWTConfig configuração de emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login e cadastro de chefe.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica CPF/senha, classifica o usuário e monta a resposta.
// Credencial errada e CPF inexistente devolvem o mesmo ErrUnauthorized para a
// mensagem genérica do frontend; funcionário sem vínculo de empresa resolvível
// é recusado com ErrFuncionarioSemEmpresa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.FindByCPF(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	if u == nil || u.SenhaHash != HashPassword(in.Password) {
		return nil, domain.ErrUnauthorized
	}

	d := access.Classify(u)

	payload := dto.UserPayload{CPF: u.CPF, UserType: d.UserType}
	var companyID string
	if d.IsChefe() {
		payload.Name = u.Nome
	} else {
		if d.IDEmpresa == nil {
			return nil, domain.ErrFuncionarioSemEmpresa
		}
		companyID = *d.IDEmpresa
		payload.CompanyID = companyID
	}

	resp := &dto.LoginResponse{Message: "Login realizado com sucesso", User: payload}
	if uc.jwtCfg.Secret != "" {
		token, err := jwt.Generate(uc.jwtCfg.Secret, cpf.Normalize(u.CPF), companyID,
			d.UserType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		resp.Token = token
	}
	return resp, nil
}

// Register cadastra um chefe (sem vínculo de empresa). CPF já cadastrado
// devolve domain.ErrCPFAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	existing, err := uc.usuarios.FindByCPF(ctx, in.CPF)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrCPFAlreadyExists
	}
	return uc.usuarios.Create(ctx, repository.CreateUsuarioParams{
		CPF:        in.CPF,
		SenhaHash:  HashPassword(in.Password),
		Nome:       in.Name,
		Email:      in.Email,
		TipoAcesso: entity.TipoChefe,
		IDEmpresa:  nil, // chefe não tem vínculo; a coluna nem entra no INSERT
	})
}
