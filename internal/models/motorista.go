package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MotoristaStatus string

const (
	MotoristaStatusAtivo    MotoristaStatus = "ativo"
	MotoristaStatusInativo  MotoristaStatus = "inativo"
	MotoristaStatusAfastado MotoristaStatus = "afastado"
	MotoristaStatusSuspenso MotoristaStatus = "suspenso"
)

type Veiculo struct {
	Tipo      string `json:"tipo" bson:"tipo" validate:"required"`
	Descricao string `json:"descricao" bson:"descricao"`
}

// DocumentosMotorista holds object-store references, not the files themselves.
type DocumentosMotorista struct {
	CNH              string   `json:"cnh" bson:"cnh"`
	Identidade       []string `json:"identidade" bson:"identidade"`
	DocumentoVeiculo string   `json:"documento_veiculo" bson:"documento_veiculo"`
}

// Motorista is a registered carrier. Only motoristas with status "ativo" are
// eligible for assignment; toggling the status later does not cascade to
// corridas already assigned to them.
type Motorista struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Nome         string              `json:"nome" bson:"nome" validate:"required"`
	Email        string              `json:"email" bson:"email" validate:"required,email"`
	Telefone     string              `json:"telefone" bson:"telefone" validate:"required"`
	Veiculo      Veiculo             `json:"veiculo" bson:"veiculo" validate:"required"`
	Status       MotoristaStatus     `json:"status" bson:"status" default:"ativo"`
	CPF          string              `json:"cpf" bson:"cpf" validate:"omitempty,cpf"`
	RG           string              `json:"rg" bson:"rg"`
	Placa        string              `json:"placa" bson:"placa" validate:"omitempty,placa"`
	CapacidadeKG float64             `json:"capacidade_kg" bson:"capacidade_kg" validate:"omitempty,min=0"`
	AreaAtuacao  string              `json:"area_atuacao" bson:"area_atuacao"`
	Endereco     *Endereco           `json:"endereco" bson:"endereco"`
	Documentos   DocumentosMotorista `json:"documentos" bson:"documentos"`
	FotoPerfil   string              `json:"foto_perfil" bson:"foto_perfil"`
	ContaAuthID  string              `json:"conta_auth_id" bson:"conta_auth_id"`
	CreatedAt    time.Time           `json:"created_at" bson:"created_at"`
}
