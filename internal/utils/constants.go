package utils

import "time"

const (
	AppName = "FreteDash"

	StatusSuccess = "success"
	StatusError   = "error"

	ErrValidationFailed = "Um ou mais campos são inválidos"
	ErrInternalServer   = "Erro interno do servidor"
	ErrUnauthorized     = "Não autorizado"
	ErrForbidden        = "Acesso negado"

	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100

	// Adicional fixo cobrado por ajudante na criação da corrida, em reais.
	ValorPorAjudante = 100.00

	// Limite de fotos por lote (carga na criação, comprovantes na finalização).
	MaxFotosPorLote = 5

	// Prefixos de chave no object storage.
	PrefixoCorridas   = "corridas"
	PrefixoDocumentos = "documentos"

	JWTAccessTokenTTL = 24 * time.Hour
)
