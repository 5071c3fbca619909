package interfaces

import "errors"

var (
	// ErrNaoEncontrado is returned when a lookup matches no document.
	ErrNaoEncontrado = errors.New("registro não encontrado")

	// ErrConflitoVersao is returned by conditional updates whose filter
	// (status + versao) matched no document, i.e. a concurrent writer won.
	ErrConflitoVersao = errors.New("conflito de versão na atualização condicional")
)
