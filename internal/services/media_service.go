package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"fretedash/pkg/logger"
	"fretedash/pkg/storage"
)

// MediaService uploads photo/document batches to the object store. Files go
// up one at a time; a failure skips the file instead of aborting the batch,
// and the result reports both sides so callers can tell the user exactly
// what happened.
type MediaService interface {
	UploadLote(ctx context.Context, pasta, prefixo string, arquivos []UploadArquivo) *UploadLoteResultado
	UploadDocumento(ctx context.Context, pasta, nome string, arquivo UploadArquivo) (string, error)
}

type UploadArquivo struct {
	Nome        string
	ContentType string
	Tamanho     int64
	Conteudo    io.Reader
}

type FalhaUpload struct {
	Indice int    `json:"indice"`
	Nome   string `json:"nome"`
	Motivo string `json:"motivo"`
}

type UploadLoteResultado struct {
	Enviadas []string      `json:"enviadas"`
	Falhas   []FalhaUpload `json:"falhas"`
}

type mediaService struct {
	storage storage.StorageProvider
	logger  *logger.Logger
}

func NewMediaService(storageProvider storage.StorageProvider, log *logger.Logger) MediaService {
	return &mediaService{
		storage: storageProvider,
		logger:  log,
	}
}

// UploadLote stores each file under "{pasta}/{prefixo}_{timestamp}_{indice}{ext}".
// Order of Enviadas follows the input order of the files that succeeded.
func (s *mediaService) UploadLote(ctx context.Context, pasta, prefixo string, arquivos []UploadArquivo) *UploadLoteResultado {
	resultado := &UploadLoteResultado{}
	timestamp := time.Now().UnixMilli()

	for i, arquivo := range arquivos {
		key := fmt.Sprintf("%s/%s_%d_%d%s", pasta, prefixo, timestamp, i, extensao(arquivo.Nome))

		resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
			Key:         key,
			Reader:      arquivo.Conteudo,
			ContentType: contentType(arquivo.ContentType),
			Size:        arquivo.Tamanho,
		})
		if err != nil {
			s.logger.WithError(err).WithField("arquivo", arquivo.Nome).Warn("Falha ao enviar arquivo do lote")
			resultado.Falhas = append(resultado.Falhas, FalhaUpload{
				Indice: i,
				Nome:   arquivo.Nome,
				Motivo: err.Error(),
			})
			continue
		}

		resultado.Enviadas = append(resultado.Enviadas, resp.URL)
	}

	return resultado
}

func (s *mediaService) UploadDocumento(ctx context.Context, pasta, nome string, arquivo UploadArquivo) (string, error) {
	key := fmt.Sprintf("%s/%s_%d%s", pasta, nome, time.Now().UnixMilli(), extensao(arquivo.Nome))

	resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      arquivo.Conteudo,
		ContentType: contentType(arquivo.ContentType),
		Size:        arquivo.Tamanho,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload documento: %w", err)
	}

	return resp.URL, nil
}

func extensao(nome string) string {
	ext := filepath.Ext(nome)
	if ext == "" {
		ext = ".bin"
	}
	return ext
}

func contentType(ct string) string {
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
