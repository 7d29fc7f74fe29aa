package postgres

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica se um erro é violação de constraint de unicidade (23505).
// É assim que duas criações concorrentes do mesmo CPF são desempatadas: o perdedor
// observa 23505 e o mapeia para "já existe", não para falha genérica.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isUndefinedTable verifica se um erro é de tabela inexistente (42P01).
// Tabela ausente é resultado normal entre instalações, não falha.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" // undefined_table
	}
	return strings.Contains(err.Error(), "42P01")
}

// dbID coage um identificador de empresa/produto para int64 quando possível,
// senão devolve a string original. As colunas de id são numéricas na maioria
// das instalações, mas não em todas; a coerção com fallback cobre as duas.
func dbID(s string) any {
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return n
	}
	return s
}

// asString converte um valor vindo do banco para string, qualquer que seja o
// tipo físico da coluna (varchar, int, numeric...).
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

// asStringPtr é asString preservando a distinção entre NULL e valor presente.
func asStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := asString(v)
	return &s
}

// asInt64Ptr converte um valor numérico do banco para *int64; NULL ou tipo
// não numérico viram nil.
func asInt64Ptr(v any) *int64 {
	switch t := v.(type) {
	case int64:
		return &t
	case int32:
		n := int64(t)
		return &n
	case int16:
		n := int64(t)
		return &n
	case int:
		n := int64(t)
		return &n
	}
	return nil
}
