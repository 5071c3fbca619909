package validators

import (
	"time"
)

type EnderecoRequest struct {
	Logradouro  string `json:"logradouro" validate:"required,max=255"`
	Numero      string `json:"numero" validate:"omitempty,max=20"`
	Complemento string `json:"complemento" validate:"omitempty,max=100"`
	Bairro      string `json:"bairro" validate:"omitempty,max=100"`
	Cidade      string `json:"cidade" validate:"required,max=100"`
	UF          string `json:"uf" validate:"required,uf"`
	CEP         string `json:"cep" validate:"omitempty,cep"`
	Referencia  string `json:"referencia" validate:"omitempty,max=255"`
}

type CriarSolicitacaoRequest struct {
	NomeCliente     string          `json:"nome_cliente" validate:"required,min=3,max=120"`
	Telefone        string          `json:"telefone" validate:"required,max=20"`
	Email           string          `json:"email" validate:"omitempty,email"`
	Empresa         string          `json:"empresa" validate:"omitempty,max=120"`
	Origem          EnderecoRequest `json:"origem" validate:"required"`
	Destino         EnderecoRequest `json:"destino" validate:"required"`
	DescricaoCarga  string          `json:"descricao_carga" validate:"required,max=500"`
	Dimensoes       string          `json:"dimensoes" validate:"omitempty,max=100"`
	PesoAproximado  float64         `json:"peso_aproximado" validate:"omitempty,min=0"`
	QuantidadeItens int             `json:"quantidade_itens" validate:"omitempty,min=0"`
	TipoVeiculo     string          `json:"tipo_veiculo" validate:"required,oneof=moto fiorino van vuc toco truck"`
	DataColeta      *time.Time      `json:"data_coleta" validate:"omitempty"`
	PeriodoColeta   string          `json:"periodo_coleta" validate:"omitempty,oneof=manha tarde noite"`
	Ajudantes       int             `json:"ajudantes" validate:"min=0,max=10"`
	ValorBase       string          `json:"valor_base" validate:"omitempty,max=20"`
}

type AtribuirMotoristaRequest struct {
	MotoristaID string `json:"motorista_id" validate:"required,len=24,hexadecimal"`
}

type FinalizarCorridaRequest struct {
	Valor       string   `json:"valor" validate:"required,max=20"`
	Observacoes string   `json:"observacoes" validate:"omitempty,max=500"`
	Avaliacao   *int     `json:"avaliacao" validate:"omitempty,nota"`
	Feedback    string   `json:"feedback" validate:"omitempty,max=500"`
	DistanciaKM *float64 `json:"distancia_km" validate:"omitempty,min=0"`
}

type CancelarCorridaRequest struct {
	Motivo string `json:"motivo" validate:"omitempty,max=255"`
}

func ValidateCriarSolicitacao(req *CriarSolicitacaoRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateAtribuirMotorista(req *AtribuirMotoristaRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateFinalizarCorrida(req *FinalizarCorridaRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateCancelarCorrida(req *CancelarCorridaRequest) ValidationErrors {
	return ValidateStruct(req)
}
