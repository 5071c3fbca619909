package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"strings"

	"fretedash/internal/services"

	"github.com/gin-gonic/gin"
)

// isMultipart reports whether the request carries form-data (photos come as
// files next to a "dados" JSON field) instead of a plain JSON body.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bindDados decodes the "dados" form field into dest when the request is
// multipart, falling back to the JSON body otherwise.
func bindDados(c *gin.Context, dest interface{}) error {
	if !isMultipart(c) {
		return c.ShouldBindJSON(dest)
	}
	return json.Unmarshal([]byte(c.Request.FormValue("dados")), dest)
}

// arquivosDoForm opens every file sent under the given form field. The
// returned cleanup closes all of them and must be deferred by the caller.
func arquivosDoForm(c *gin.Context, campo string) ([]services.UploadArquivo, func(), error) {
	noop := func() {}

	if !isMultipart(c) {
		return nil, noop, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, err
	}

	headers := form.File[campo]
	arquivos := make([]services.UploadArquivo, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))

	cleanup := func() {
		for _, closer := range closers {
			closer.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			cleanup()
			return nil, noop, err
		}
		closers = append(closers, file)
		arquivos = append(arquivos, toUploadArquivo(header, file))
	}

	return arquivos, cleanup, nil
}

// arquivoDoForm opens a single optional file from the given form field.
// Returns nil without error when the field is absent.
func arquivoDoForm(c *gin.Context, campo string) (*services.UploadArquivo, io.Closer, error) {
	header, err := c.FormFile(campo)
	if err != nil {
		// Absent field, not a failure.
		return nil, nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	arquivo := toUploadArquivo(header, file)
	return &arquivo, file, nil
}

func toUploadArquivo(header *multipart.FileHeader, file multipart.File) services.UploadArquivo {
	return services.UploadArquivo{
		Nome:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Tamanho:     header.Size,
		Conteudo:    file,
	}
}
