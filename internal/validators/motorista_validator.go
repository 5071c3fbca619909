package validators

type VeiculoRequest struct {
	Tipo      string `json:"tipo" validate:"required,oneof=moto fiorino van vuc toco truck"`
	Descricao string `json:"descricao" validate:"omitempty,max=120"`
}

type CriarMotoristaRequest struct {
	Nome         string           `json:"nome" validate:"required,min=3,max=120"`
	Email        string           `json:"email" validate:"required,email"`
	Telefone     string           `json:"telefone" validate:"required,max=20"`
	Veiculo      VeiculoRequest   `json:"veiculo" validate:"required"`
	CPF          string           `json:"cpf" validate:"omitempty,cpf"`
	RG           string           `json:"rg" validate:"omitempty,max=20"`
	Placa        string           `json:"placa" validate:"omitempty,placa"`
	CapacidadeKG float64          `json:"capacidade_kg" validate:"omitempty,min=0"`
	AreaAtuacao  string           `json:"area_atuacao" validate:"omitempty,max=120"`
	Endereco     *EnderecoRequest `json:"endereco" validate:"omitempty"`
	ContaAuthID  string           `json:"conta_auth_id" validate:"omitempty,max=64"`
}

type AtualizarMotoristaRequest struct {
	Nome         *string          `json:"nome" validate:"omitempty,min=3,max=120"`
	Email        *string          `json:"email" validate:"omitempty,email"`
	Telefone     *string          `json:"telefone" validate:"omitempty,max=20"`
	Veiculo      *VeiculoRequest  `json:"veiculo" validate:"omitempty"`
	CPF          *string          `json:"cpf" validate:"omitempty,cpf"`
	RG           *string          `json:"rg" validate:"omitempty,max=20"`
	Placa        *string          `json:"placa" validate:"omitempty,placa"`
	CapacidadeKG *float64         `json:"capacidade_kg" validate:"omitempty,min=0"`
	AreaAtuacao  *string          `json:"area_atuacao" validate:"omitempty,max=120"`
	Endereco     *EnderecoRequest `json:"endereco" validate:"omitempty"`
}

type AtualizarStatusMotoristaRequest struct {
	Status string `json:"status" validate:"required,oneof=ativo inativo afastado suspenso"`
}

func ValidateCriarMotorista(req *CriarMotoristaRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateAtualizarMotorista(req *AtualizarMotoristaRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateAtualizarStatusMotorista(req *AtualizarStatusMotoristaRequest) ValidationErrors {
	return ValidateStruct(req)
}
