package services

import "errors"

var (
	ErrSolicitacaoNaoEncontrada = errors.New("solicitação não encontrada")
	ErrCorridaNaoEncontrada     = errors.New("corrida não encontrada")
	ErrMotoristaNaoEncontrado   = errors.New("motorista não encontrado")

	// ErrMotoristaInativo: only motoristas with status "ativo" may be assigned.
	ErrMotoristaInativo = errors.New("motorista não está ativo")

	// ErrTransicaoInvalida: the corrida is not in a state the requested
	// transition accepts (finalizada and cancelada are terminal).
	ErrTransicaoInvalida = errors.New("transição de status inválida para o estado atual")

	// ErrConflitoAtribuicao: another operator assigned the corrida first.
	ErrConflitoAtribuicao = errors.New("corrida já foi atribuída por outro operador")

	ErrLimiteFotos = errors.New("máximo de 5 fotos por envio")
)
