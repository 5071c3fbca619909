package services

import (
	"context"
	"testing"
	"time"

	"fretedash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func corridaFinalizada(valor float64, dataFim time.Time, avaliacao *int) *models.Corrida {
	return &models.Corrida{
		ID:            primitive.NewObjectID(),
		SolicitacaoID: primitive.NewObjectID(),
		Status:        models.CorridaStatusFinalizada,
		Valor:         &valor,
		DataFim:       &dataFim,
		Avaliacao:     avaliacao,
	}
}

func TestResumoSemDados(t *testing.T) {
	service := NewDashboardService(newFakeCorridaRepo(), newFakeMotoristaRepo(), testLogger(t))

	resumo, err := service.Resumo(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resumo.TotalMotoristas)
	assert.Zero(t, resumo.MotoristasAtivos)
	assert.Zero(t, resumo.TotalCorridas)
	assert.Zero(t, resumo.CorridasFinalizadas)
	assert.Zero(t, resumo.CorridasEmAndamento)
	assert.Zero(t, resumo.CorridasCanceladas)
	assert.Zero(t, resumo.FaturamentoTotal)
	assert.Zero(t, resumo.FaturamentoMes)
	assert.Zero(t, resumo.AvaliacaoMedia)
}

func TestResumoAgregaContagensEValores(t *testing.T) {
	corridas := newFakeCorridaRepo()
	motoristas := newFakeMotoristaRepo()
	ctx := context.Background()

	require.NoError(t, motoristas.Create(ctx, &models.Motorista{Nome: "A", Status: models.MotoristaStatusAtivo}))
	require.NoError(t, motoristas.Create(ctx, &models.Motorista{Nome: "B", Status: models.MotoristaStatusAtivo}))
	require.NoError(t, motoristas.Create(ctx, &models.Motorista{Nome: "C", Status: models.MotoristaStatusInativo}))

	agora := time.Now()
	mesPassado := agora.AddDate(0, -2, 0)
	nota4, nota5 := 4, 5

	corridas.itens[primitive.NewObjectID()] = corridaFinalizada(100, agora, &nota4)
	corridas.itens[primitive.NewObjectID()] = corridaFinalizada(200, mesPassado, &nota5)

	// Cancelled rides keep their valor but never count toward faturamento.
	valorCancelada := 999.0
	corridas.itens[primitive.NewObjectID()] = &models.Corrida{
		ID:            primitive.NewObjectID(),
		SolicitacaoID: primitive.NewObjectID(),
		Status:        models.CorridaStatusCancelada,
		Valor:         &valorCancelada,
	}
	corridas.itens[primitive.NewObjectID()] = &models.Corrida{
		ID:            primitive.NewObjectID(),
		SolicitacaoID: primitive.NewObjectID(),
		Status:        models.CorridaStatusAtribuida,
	}

	service := NewDashboardService(corridas, motoristas, testLogger(t))
	resumo, err := service.Resumo(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resumo.TotalMotoristas)
	assert.Equal(t, int64(2), resumo.MotoristasAtivos)
	assert.Equal(t, int64(4), resumo.TotalCorridas)
	assert.Equal(t, int64(2), resumo.CorridasFinalizadas)
	assert.Equal(t, int64(1), resumo.CorridasEmAndamento)
	assert.Equal(t, int64(1), resumo.CorridasCanceladas)
	assert.Equal(t, 300.0, resumo.FaturamentoTotal)
	assert.Equal(t, 100.0, resumo.FaturamentoMes)
	assert.Equal(t, 4.5, resumo.AvaliacaoMedia)
}

func TestResumoIgnoraAvaliacoesAusentes(t *testing.T) {
	corridas := newFakeCorridaRepo()
	agora := time.Now()
	nota5 := 5

	corridas.itens[primitive.NewObjectID()] = corridaFinalizada(100, agora, &nota5)
	corridas.itens[primitive.NewObjectID()] = corridaFinalizada(100, agora, nil)

	service := NewDashboardService(corridas, newFakeMotoristaRepo(), testLogger(t))
	resumo, err := service.Resumo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5.0, resumo.AvaliacaoMedia)
}

func TestJanelaMesAtual(t *testing.T) {
	ref := time.Date(2025, time.March, 17, 15, 4, 5, 0, time.UTC)
	inicio, fim := janelaMesAtual(ref)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), inicio)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), fim)
}
