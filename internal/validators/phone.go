package validators

import "unicode"

// IsPhoneValid faz a checagem de formato que o formulário aplica antes dos
// dados chegarem ao store: aceita máscaras como "(11) 99999-1234" e exige
// entre 8 e 13 dígitos. O store em si não valida nada.
func IsPhoneValid(phone string) bool {
	digits := 0

	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '+':
			// máscara permitida
		default:
			return false
		}
	}

	return digits >= 8 && digits <= 13
}
