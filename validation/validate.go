package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func Validate(data interface{}) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(data)
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	specialCharRegex := regexp.MustCompile(`[!@#$%^&*()\-_=+\[\]{}|;:'",.<>?/\\` + "`~]")
	hasSpecial := specialCharRegex.MatchString(password)

	return hasUpper && hasDigit && hasSpecial
}

func ValidateCPF(cpf string) bool {
	reg := regexp.MustCompile(`\D`)
	cpf = reg.ReplaceAllString(cpf, "")

	if len(cpf) != 11 {
		return false
	}

	for i := 0; i < 10; i++ {
		if cpf == strings.Repeat(strconv.Itoa(i), 11) {
			return false
		}
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	firstCheck := 0
	if remainder := sum % 11; remainder >= 2 {
		firstCheck = 11 - remainder
	}
	if firstCheck != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	secondCheck := 0
	if remainder := sum % 11; remainder >= 2 {
		secondCheck = 11 - remainder
	}
	return secondCheck == int(cpf[10]-'0')
}

func ValidateCNH(cnh string) bool {
	reg := regexp.MustCompile(`\D`)
	cnh = reg.ReplaceAllString(cnh, "")

	if len(cnh) != 11 {
		return false
	}
	for i := 0; i < 10; i++ {
		if cnh == strings.Repeat(strconv.Itoa(i), 11) {
			return false
		}
	}

	sum1 := 0
	for i := 0; i < 9; i++ {
		sum1 += int(cnh[i]-'0') * (9 - i)
	}
	check1 := sum1 % 11
	if check1 == 10 {
		check1 = 0
	}

	sum2 := 0
	for i := 0; i < 9; i++ {
		sum2 += int(cnh[i]-'0') * (1 + i)
	}
	sum2 += check1 * 9
	check2 := sum2 % 11
	if check2 == 10 {
		check2 = 0
	}

	return check1 == int(cnh[9]-'0') && check2 == int(cnh[10]-'0')
}

func ValidatePhone(phone string) bool {
	re := regexp.MustCompile(`^(?:\+55\s?)?(?:\(?\d{2}\)?\s?)?(?:9\d{4}|\d{4})-?\d{4}$`)
	return re.MatchString(phone)
}

// ValidatePlaca aceita o padrao antigo (ABC1234) e o padrao Mercosul (ABC1D23).
func ValidatePlaca(placa string) bool {
	placa = strings.ToUpper(strings.ReplaceAll(placa, "-", ""))
	re := regexp.MustCompile(`^[A-Z]{3}\d[A-Z0-9]\d{2}$`)
	return re.MatchString(placa)
}
