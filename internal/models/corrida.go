package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CorridaStatus string

const (
	CorridaStatusPendente   CorridaStatus = "pendente"
	CorridaStatusAtribuida  CorridaStatus = "atribuida"
	CorridaStatusFinalizada CorridaStatus = "finalizada"
	CorridaStatusCancelada  CorridaStatus = "cancelada"
)

// Corrida is the operational unit tracked from assignment to completion.
// It exists if and only if its paired Solicitacao exists; both are inserted
// in the same transaction. MotoristaID is set exactly once, on the
// pendente -> atribuida transition, and never cleared afterwards.
//
// Versao is the optimistic-concurrency token: assignment is a conditional
// update on {status: pendente, versao: N}, so two operators racing on the
// same corrida produce a detectable conflict instead of a silent overwrite.
type Corrida struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	SolicitacaoID primitive.ObjectID  `json:"solicitacao_id" bson:"solicitacao_id" validate:"required"`
	MotoristaID   *primitive.ObjectID `json:"motorista_id" bson:"motorista_id"`
	DataInicio    *time.Time          `json:"data_inicio" bson:"data_inicio"`
	DataFim       *time.Time          `json:"data_fim" bson:"data_fim"`
	Status        CorridaStatus       `json:"status" bson:"status" default:"pendente"`
	Valor         *float64            `json:"valor" bson:"valor"`
	Observacoes   string              `json:"observacoes" bson:"observacoes"`
	FotosEntrega  []string            `json:"fotos_entrega" bson:"fotos_entrega" validate:"omitempty,max=5"`
	Avaliacao     *int                `json:"avaliacao" bson:"avaliacao" validate:"omitempty,min=1,max=5"`
	Feedback      string              `json:"feedback" bson:"feedback"`
	DistanciaKM   *float64            `json:"distancia_km" bson:"distancia_km" validate:"omitempty,min=0"`
	Versao        int64               `json:"versao" bson:"versao"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" bson:"updated_at"`
}

// Terminal reports whether the corrida reached a final state. No transition
// leaves finalizada or cancelada.
func (c *Corrida) Terminal() bool {
	return c.Status == CorridaStatusFinalizada || c.Status == CorridaStatusCancelada
}
