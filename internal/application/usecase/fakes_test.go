package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/techtitans/estoque-api/internal/application/usecase"
	"github.com/techtitans/estoque-api/internal/domain"
	"github.com/techtitans/estoque-api/internal/domain/entity"
	"github.com/techtitans/estoque-api/internal/domain/repository"
	"github.com/techtitans/estoque-api/pkg/cpf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória das portas de persistência. Reproduzem os contratos dos
// adaptadores postgres, inclusive a variação de esquema: com suportaEmpresa /
// suportaTipo desligados o fake se comporta como uma instalação cuja tabela
// usuario só tem {id, nome, cpf, senha}.
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)
	_ repository.FuncionarioShadow = (*fakeShadow)(nil)
	_ repository.ProdutoRepository = (*fakeProdutoRepo)(nil)
)

type fakeUsuarioRepo struct {
	suportaEmpresa bool
	suportaTipo    bool
	porCPF         map[string]*entity.Usuario // chave: CPF normalizado
	shadow         *fakeShadow                // fallback de empresa, como no adaptador real
	nextID         int64
}

func newFakeUsuarioRepo(suportaEmpresa, suportaTipo bool, shadow *fakeShadow) *fakeUsuarioRepo {
	return &fakeUsuarioRepo{
		suportaEmpresa: suportaEmpresa,
		suportaTipo:    suportaTipo,
		porCPF:         map[string]*entity.Usuario{},
		shadow:         shadow,
	}
}

func (f *fakeUsuarioRepo) FindByCPF(ctx context.Context, raw string) (*entity.Usuario, error) {
	clean := cpf.Normalize(raw)
	u, ok := f.porCPF[clean]
	if !ok {
		return nil, nil
	}
	cp := *u
	if cp.IDEmpresa == nil && f.shadow != nil {
		if emp, ok := f.shadow.LookupEmpresa(ctx, clean); ok {
			cp.IDEmpresa = &emp
		}
	}
	return &cp, nil
}

func (f *fakeUsuarioRepo) Create(ctx context.Context, p repository.CreateUsuarioParams) error {
	clean := cpf.Normalize(p.CPF)
	if _, ok := f.porCPF[clean]; ok {
		return domain.ErrCPFAlreadyExists
	}
	f.nextID++
	id := f.nextID
	u := &entity.Usuario{ID: &id, CPF: clean, Nome: p.Nome, SenhaHash: p.SenhaHash}
	if f.suportaTipo {
		tipo := p.TipoAcesso
		if tipo == "" {
			tipo = entity.TipoChefe
		}
		u.TipoAcesso = tipo
	}
	if f.suportaEmpresa && p.IDEmpresa != nil {
		emp := *p.IDEmpresa
		u.IDEmpresa = &emp
	}
	f.porCPF[clean] = u
	return nil
}

func (f *fakeUsuarioRepo) DeleteFuncionario(ctx context.Context, raw, idEmpresa string) error {
	clean := cpf.Normalize(raw)
	u, ok := f.porCPF[clean]
	if !ok {
		return domain.ErrNotFound
	}
	if f.suportaTipo && u.TipoAcesso != entity.TipoFuncionario {
		return domain.ErrNotFound
	}
	if f.suportaEmpresa && (u.IDEmpresa == nil || strings.TrimSpace(*u.IDEmpresa) != strings.TrimSpace(idEmpresa)) {
		return domain.ErrNotFound
	}
	delete(f.porCPF, clean)
	return nil
}

func (f *fakeUsuarioRepo) ListFuncionariosByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.Funcionario, error) {
	var out []*entity.Funcionario
	for _, u := range f.porCPF {
		if u.TipoAcesso != entity.TipoFuncionario {
			continue
		}
		if u.IDEmpresa == nil || *u.IDEmpresa != idEmpresa {
			continue
		}
		out = append(out, &entity.Funcionario{ID: u.ID, Nome: u.Nome, CPF: u.CPF, IDEmpresa: u.IDEmpresa})
	}
	if len(out) == 0 && f.shadow != nil {
		return f.shadow.ListByEmpresa(ctx, idEmpresa), nil
	}
	return out, nil
}

var usecaseHash = usecase.HashPassword

func newChefeParams(rawCPF, senha, nome string) repository.CreateUsuarioParams {
	return repository.CreateUsuarioParams{
		CPF:        rawCPF,
		SenhaHash:  usecaseHash(senha),
		Nome:       nome,
		TipoAcesso: entity.TipoChefe,
	}
}

func newFuncionarioParams(rawCPF, senha, nome string, idEmpresa *string) repository.CreateUsuarioParams {
	return repository.CreateUsuarioParams{
		CPF:        rawCPF,
		SenhaHash:  usecaseHash(senha),
		Nome:       nome,
		TipoAcesso: entity.TipoFuncionario,
		IDEmpresa:  idEmpresa,
	}
}

func newFuncionarioParamsSemEmpresa(rawCPF, senha, nome string) repository.CreateUsuarioParams {
	return newFuncionarioParams(rawCPF, senha, nome, nil)
}

// fakeShadow grava os vínculos em memória e registra as chamadas recebidas.
type fakeShadow struct {
	vinculos map[string]string // cpf normalizado -> id_empresa
	syncs    int
	removes  int
}

func newFakeShadow() *fakeShadow {
	return &fakeShadow{vinculos: map[string]string{}}
}

func (f *fakeShadow) EnsureTable(ctx context.Context) {}

func (f *fakeShadow) LookupEmpresa(ctx context.Context, raw string) (string, bool) {
	emp, ok := f.vinculos[cpf.Normalize(raw)]
	return emp, ok
}

func (f *fakeShadow) Sync(ctx context.Context, raw, senhaHash, idEmpresa, nome string) {
	f.syncs++
	f.vinculos[cpf.Normalize(raw)] = idEmpresa
}

func (f *fakeShadow) Remove(ctx context.Context, raw, idEmpresa string) {
	f.removes++
	delete(f.vinculos, cpf.Normalize(raw))
}

func (f *fakeShadow) ListByEmpresa(ctx context.Context, idEmpresa string) []*entity.Funcionario {
	var out []*entity.Funcionario
	for c, emp := range f.vinculos {
		if emp == idEmpresa {
			e := emp
			out = append(out, &entity.Funcionario{CPF: c, IDEmpresa: &e})
		}
	}
	return out
}

// fakeProdutoRepo catálogo em memória com esquema fixo.
type fakeProdutoRepo struct {
	porID  map[int64]*entity.Produto
	nextID int64
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{porID: map[int64]*entity.Produto{}}
}

func (f *fakeProdutoRepo) ListByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.porID {
		if p.IDEmpresa == idEmpresa {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) GetByID(ctx context.Context, idEmpresa, idProduto string) (*entity.Produto, error) {
	for _, p := range f.porID {
		if p.IDEmpresa == idEmpresa && fmt.Sprint(p.ID) == idProduto {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProdutoRepo) GetByNome(ctx context.Context, idEmpresa, nome string) (*entity.Produto, error) {
	for _, p := range f.porID {
		if p.IDEmpresa == idEmpresa && p.Nome == nome {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProdutoRepo) Create(ctx context.Context, idEmpresa, nome string, quantidade int, preco decimal.Decimal) (*entity.Produto, error) {
	f.nextID++
	p := &entity.Produto{ID: f.nextID, Nome: nome, Quantidade: quantidade, Preco: preco, IDEmpresa: idEmpresa}
	f.porID[p.ID] = p
	cp := *p
	return &cp, nil
}

func (f *fakeProdutoRepo) UpdateQuantidade(ctx context.Context, idEmpresa, idProduto string, quantidade int) (*entity.Produto, error) {
	for _, p := range f.porID {
		if p.IDEmpresa == idEmpresa && fmt.Sprint(p.ID) == idProduto {
			p.Quantidade = quantidade
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProdutoRepo) Update(ctx context.Context, idEmpresa, idProduto string, upd repository.ProdutoUpdate) (*entity.Produto, error) {
	for _, p := range f.porID {
		if p.IDEmpresa == idEmpresa && fmt.Sprint(p.ID) == idProduto {
			if upd.Nome != nil {
				p.Nome = *upd.Nome
			}
			if upd.Quantidade != nil {
				p.Quantidade = *upd.Quantidade
			}
			if upd.Preco != nil {
				p.Preco = *upd.Preco
			}
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProdutoRepo) Delete(ctx context.Context, idEmpresa, idProduto string) error {
	for id, p := range f.porID {
		if p.IDEmpresa == idEmpresa && fmt.Sprint(p.ID) == idProduto {
			delete(f.porID, id)
			return nil
		}
	}
	return domain.ErrNotFound
}
