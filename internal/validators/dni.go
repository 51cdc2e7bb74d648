package validators

import "strings"

// IsValidDNI aceita o formato argentino: 7 ou 8 dígitos, com ou
// sem pontos de milhar ("30.123.456").
func IsValidDNI(dni string) bool {
	cleaned := strings.ReplaceAll(strings.TrimSpace(dni), ".", "")

	if len(cleaned) < 7 || len(cleaned) > 8 {
		return false
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
