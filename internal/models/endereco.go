package models

// Endereco is the address shape shared by solicitações (origem/destino) and
// motoristas. CEP is stored as 8 digits, without the dash.
type Endereco struct {
	Logradouro  string `json:"logradouro" bson:"logradouro" validate:"required"`
	Numero      string `json:"numero" bson:"numero"`
	Complemento string `json:"complemento" bson:"complemento"`
	Bairro      string `json:"bairro" bson:"bairro"`
	Cidade      string `json:"cidade" bson:"cidade" validate:"required"`
	UF          string `json:"uf" bson:"uf" validate:"required,uf"`
	CEP         string `json:"cep" bson:"cep" validate:"omitempty,cep"`
	Referencia  string `json:"referencia" bson:"referencia"`
}
