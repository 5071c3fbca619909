package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SolicitacaoStatus string

const (
	SolicitacaoStatusPendente    SolicitacaoStatus = "pendente"
	SolicitacaoStatusEmAndamento SolicitacaoStatus = "em_andamento"
	SolicitacaoStatusFinalizada  SolicitacaoStatus = "finalizada"
	SolicitacaoStatusCancelada   SolicitacaoStatus = "cancelada"
)

// Solicitacao is the customer's shipment ask. Its status always mirrors the
// paired Corrida: the two records are written together, never independently.
type Solicitacao struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	NomeCliente     string             `json:"nome_cliente" bson:"nome_cliente" validate:"required"`
	Telefone        string             `json:"telefone" bson:"telefone" validate:"required"`
	Email           string             `json:"email" bson:"email"`
	Empresa         string             `json:"empresa" bson:"empresa"`
	Origem          Endereco           `json:"origem" bson:"origem" validate:"required"`
	Destino         Endereco           `json:"destino" bson:"destino" validate:"required"`
	DescricaoCarga  string             `json:"descricao_carga" bson:"descricao_carga" validate:"required"`
	Dimensoes       string             `json:"dimensoes" bson:"dimensoes"`
	PesoAproximado  float64            `json:"peso_aproximado" bson:"peso_aproximado"`
	QuantidadeItens int                `json:"quantidade_itens" bson:"quantidade_itens"`
	TipoVeiculo     string             `json:"tipo_veiculo" bson:"tipo_veiculo" validate:"required"`
	DataColeta      *time.Time         `json:"data_coleta" bson:"data_coleta"`
	PeriodoColeta   string             `json:"periodo_coleta" bson:"periodo_coleta"`
	Ajudantes       int                `json:"ajudantes" bson:"ajudantes" validate:"min=0"`
	FotosCarga      []string           `json:"fotos_carga" bson:"fotos_carga" validate:"omitempty,max=5"`
	Status          SolicitacaoStatus  `json:"status" bson:"status" default:"pendente"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
