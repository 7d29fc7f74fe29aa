// Package cpf normaliza e valida o CPF usado como chave de login.
// As bases em produção guardam o CPF ora com pontuação ("123.456.789-01"),
// ora só com dígitos ("12345678901"); as duas formas têm que ser equivalentes
// para efeito de busca.
package cpf

// Normalize remove qualquer caractere que não seja dígito.
// "123.456.789-01" e "12345678901" normalizam para o mesmo valor.
func Normalize(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}

// Format devolve a forma pontuada canônica (XXX.XXX.XXX-XX).
// Se o valor não tiver exatamente 11 dígitos, devolve os dígitos sem pontuação,
// que é o que as queries de fallback esperam nesse caso.
func Format(raw string) string {
	digits := Normalize(raw)
	if len(digits) != 11 {
		return digits
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// IsValid verifica se o CPF tem 11 dígitos numéricos, com ou sem pontuação.
// Não valida dígito verificador: as bases legadas contêm CPFs de teste que
// não passariam, e o sistema sempre aceitou qualquer sequência de 11 dígitos.
func IsValid(raw string) bool {
	return len(Normalize(raw)) == 11
}
