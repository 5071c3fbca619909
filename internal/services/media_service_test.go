package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fretedash/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arquivoTeste(nome string) UploadArquivo {
	return UploadArquivo{
		Nome:        nome,
		ContentType: "image/jpeg",
		Tamanho:     3,
		Conteudo:    strings.NewReader("img"),
	}
}

func TestUploadLoteTodosComSucesso(t *testing.T) {
	provider := &fakeStorage{}
	service := NewMediaService(provider, testLogger(t))

	resultado := service.UploadLote(context.Background(), "corridas", "abc123", []UploadArquivo{
		arquivoTeste("frente.jpg"),
		arquivoTeste("lateral.png"),
	})

	assert.Len(t, resultado.Enviadas, 2)
	assert.Empty(t, resultado.Falhas)

	// Keys carry the folder, prefix, index and original extension.
	require.Len(t, provider.uploads, 2)
	assert.True(t, strings.HasPrefix(provider.uploads[0], "corridas/abc123_"))
	assert.True(t, strings.HasSuffix(provider.uploads[0], "_0.jpg"))
	assert.True(t, strings.HasSuffix(provider.uploads[1], "_1.png"))
}

func TestUploadLoteFalhaParcialPreservaOrdem(t *testing.T) {
	provider := &fakeStorage{
		falhar: func(req *storage.UploadRequest) error {
			if strings.HasSuffix(req.Key, "_1.jpg") {
				return errors.New("bucket indisponível")
			}
			return nil
		},
	}
	service := NewMediaService(provider, testLogger(t))

	resultado := service.UploadLote(context.Background(), "corridas", "abc123", []UploadArquivo{
		arquivoTeste("a.jpg"),
		arquivoTeste("b.jpg"),
		arquivoTeste("c.jpg"),
	})

	require.Len(t, resultado.Enviadas, 2)
	assert.Contains(t, resultado.Enviadas[0], "_0.jpg")
	assert.Contains(t, resultado.Enviadas[1], "_2.jpg")

	require.Len(t, resultado.Falhas, 1)
	assert.Equal(t, 1, resultado.Falhas[0].Indice)
	assert.Equal(t, "b.jpg", resultado.Falhas[0].Nome)
	assert.Equal(t, "bucket indisponível", resultado.Falhas[0].Motivo)
}

func TestUploadLoteVazio(t *testing.T) {
	service := NewMediaService(&fakeStorage{}, testLogger(t))

	resultado := service.UploadLote(context.Background(), "corridas", "abc123", nil)

	assert.Empty(t, resultado.Enviadas)
	assert.Empty(t, resultado.Falhas)
}

func TestUploadLoteSemExtensaoUsaBin(t *testing.T) {
	provider := &fakeStorage{}
	service := NewMediaService(provider, testLogger(t))

	resultado := service.UploadLote(context.Background(), "documentos", "doc", []UploadArquivo{
		arquivoTeste("semextensao"),
	})

	require.Len(t, resultado.Enviadas, 1)
	assert.True(t, strings.HasSuffix(provider.uploads[0], "_0.bin"))
}

func TestUploadDocumento(t *testing.T) {
	provider := &fakeStorage{}
	service := NewMediaService(provider, testLogger(t))

	url, err := service.UploadDocumento(context.Background(), "documentos", "abc_cnh", arquivoTeste("cnh.pdf"))
	require.NoError(t, err)

	assert.Contains(t, url, "documentos/abc_cnh_")
	assert.True(t, strings.HasSuffix(url, ".pdf"))
}

func TestUploadDocumentoPropagaErro(t *testing.T) {
	provider := &fakeStorage{
		falhar: func(*storage.UploadRequest) error { return errors.New("sem permissão") },
	}
	service := NewMediaService(provider, testLogger(t))

	_, err := service.UploadDocumento(context.Background(), "documentos", "abc_cnh", arquivoTeste("cnh.pdf"))
	assert.Error(t, err)
}
