package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("cpf", validateCPF)
	validate.RegisterValidation("cep", validateCEP)
	validate.RegisterValidation("uf", validateUF)
	validate.RegisterValidation("placa", validatePlaca)
	validate.RegisterValidation("nota", validateNota)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(e))
	for _, err := range e {
		m[err.Field] = err.Message
	}
	return m
}

func ValidateStruct(s interface{}) ValidationErrors {
	var errs ValidationErrors

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	for _, fieldErr := range err.(validator.ValidationErrors) {
		errs = append(errs, ValidationError{
			Field:   strings.ToLower(fieldErr.Field()),
			Tag:     fieldErr.Tag(),
			Message: messageFor(fieldErr),
		})
	}

	return errs
}

func messageFor(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "min":
		return fmt.Sprintf("Valor mínimo: %s", err.Param())
	case "max":
		return fmt.Sprintf("Valor máximo: %s", err.Param())
	case "oneof":
		return fmt.Sprintf("Deve ser um de: %s", err.Param())
	case "cpf":
		return "CPF inválido"
	case "cep":
		return "CEP deve conter 8 dígitos"
	case "uf":
		return "UF inválida"
	case "placa":
		return "Placa inválida"
	case "nota":
		return "Avaliação deve estar entre 1 e 5"
	default:
		return fmt.Sprintf("Campo inválido (%s)", err.Tag())
	}
}

var (
	cepRegex         = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	placaAntigaRegex = regexp.MustCompile(`^[A-Z]{3}-?\d{4}$`)
	placaMercosul    = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
	naoDigito        = regexp.MustCompile(`\D`)

	ufs = map[string]bool{
		"AC": true, "AL": true, "AP": true, "AM": true, "BA": true,
		"CE": true, "DF": true, "ES": true, "GO": true, "MA": true,
		"MT": true, "MS": true, "MG": true, "PA": true, "PB": true,
		"PR": true, "PE": true, "PI": true, "RJ": true, "RN": true,
		"RS": true, "RO": true, "RR": true, "SC": true, "SP": true,
		"SE": true, "TO": true,
	}
)

func validateCEP(fl validator.FieldLevel) bool {
	return cepRegex.MatchString(fl.Field().String())
}

func validateUF(fl validator.FieldLevel) bool {
	return ufs[strings.ToUpper(fl.Field().String())]
}

func validatePlaca(fl validator.FieldLevel) bool {
	placa := strings.ToUpper(fl.Field().String())
	return placaAntigaRegex.MatchString(placa) || placaMercosul.MatchString(placa)
}

func validateNota(fl validator.FieldLevel) bool {
	nota := fl.Field().Int()
	return nota >= 1 && nota <= 5
}

func validateCPF(fl validator.FieldLevel) bool {
	return ValidarCPF(fl.Field().String())
}

// ValidarCPF checks the two verification digits of a CPF.
func ValidarCPF(cpf string) bool {
	cpf = naoDigito.ReplaceAllString(cpf, "")
	if len(cpf) != 11 {
		return false
	}

	// Sequences like 111.111.111-11 pass the digit check but are invalid.
	repetido := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			repetido = false
			break
		}
	}
	if repetido {
		return false
	}

	digito := func(base int) int {
		soma := 0
		for i := 0; i < base; i++ {
			soma += int(cpf[i]-'0') * (base + 1 - i)
		}
		resto := soma % 11
		if resto < 2 {
			return 0
		}
		return 11 - resto
	}

	return digito(9) == int(cpf[9]-'0') && digito(10) == int(cpf[10]-'0')
}
