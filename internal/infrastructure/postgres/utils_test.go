package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBID(t *testing.T) {
	assert.Equal(t, int64(3), dbID("3"))
	assert.Equal(t, int64(42), dbID(" 42 "))
	// Identificador não numérico passa intacto: algumas instalações usam
	// referências de empresa textuais.
	assert.Equal(t, "loja-sul", dbID("loja-sul"))
	assert.Equal(t, "", dbID(""))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "abc", asString("abc"))
	assert.Equal(t, "abc", asString([]byte("abc")))
	assert.Equal(t, "7", asString(int64(7)))
	assert.Equal(t, "7", asString(int32(7)))
	assert.Equal(t, "", asString(nil))
}

func TestAsStringPtr(t *testing.T) {
	assert.Nil(t, asStringPtr(nil), "NULL do banco continua distinguível de valor presente")
	p := asStringPtr(int64(3))
	require.NotNil(t, p)
	assert.Equal(t, "3", *p)
}

func TestAsInt64Ptr(t *testing.T) {
	for _, v := range []any{int64(7), int32(7), int16(7), int(7)} {
		p := asInt64Ptr(v)
		require.NotNil(t, p)
		assert.Equal(t, int64(7), *p)
	}
	assert.Nil(t, asInt64Ptr(nil))
	assert.Nil(t, asInt64Ptr("7"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("qualquer outra coisa")))
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
}
