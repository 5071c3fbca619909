package models

// DashboardResumo carries the metric cards of the dashboard landing page.
// Every value is recomputed from the collections on each request.
type DashboardResumo struct {
	TotalMotoristas     int64   `json:"total_motoristas"`
	MotoristasAtivos    int64   `json:"motoristas_ativos"`
	TotalCorridas       int64   `json:"total_corridas"`
	CorridasFinalizadas int64   `json:"corridas_finalizadas"`
	CorridasEmAndamento int64   `json:"corridas_em_andamento"`
	CorridasCanceladas  int64   `json:"corridas_canceladas"`
	FaturamentoTotal    float64 `json:"faturamento_total"`
	FaturamentoMes      float64 `json:"faturamento_mes"`
	AvaliacaoMedia      float64 `json:"avaliacao_media"`
}
