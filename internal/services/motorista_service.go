package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fretedash/internal/models"
	"fretedash/internal/repositories/interfaces"
	"fretedash/internal/utils"
	"fretedash/internal/validators"
	"fretedash/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentosUpload carries the optional document files sent on a single
// multipart request. Nil fields are skipped.
type DocumentosUpload struct {
	CNH              *UploadArquivo
	Identidade       []UploadArquivo
	DocumentoVeiculo *UploadArquivo
	FotoPerfil       *UploadArquivo
}

type MotoristaService interface {
	Criar(ctx context.Context, req *validators.CriarMotoristaRequest) (*models.Motorista, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Motorista, error)
	List(ctx context.Context, status models.MotoristaStatus, params *utils.PaginationParams) ([]*models.Motorista, int64, error)
	Atualizar(ctx context.Context, id primitive.ObjectID, req *validators.AtualizarMotoristaRequest) (*models.Motorista, error)
	AtualizarStatus(ctx context.Context, id primitive.ObjectID, status models.MotoristaStatus) (*models.Motorista, error)
	Excluir(ctx context.Context, id primitive.ObjectID) error
	EnviarDocumentos(ctx context.Context, id primitive.ObjectID, docs *DocumentosUpload) (*models.Motorista, error)
}

type motoristaService struct {
	motoristas interfaces.MotoristaRepository
	media      MediaService
	logger     *logger.Logger
}

func NewMotoristaService(motoristas interfaces.MotoristaRepository, media MediaService, log *logger.Logger) MotoristaService {
	return &motoristaService{
		motoristas: motoristas,
		media:      media,
		logger:     log,
	}
}

func (s *motoristaService) Criar(ctx context.Context, req *validators.CriarMotoristaRequest) (*models.Motorista, error) {
	motorista := &models.Motorista{
		Nome:     req.Nome,
		Email:    strings.ToLower(req.Email),
		Telefone: req.Telefone,
		Veiculo: models.Veiculo{
			Tipo:      req.Veiculo.Tipo,
			Descricao: req.Veiculo.Descricao,
		},
		Status:       models.MotoristaStatusAtivo,
		CPF:          req.CPF,
		RG:           req.RG,
		Placa:        strings.ToUpper(req.Placa),
		CapacidadeKG: req.CapacidadeKG,
		AreaAtuacao:  req.AreaAtuacao,
		ContaAuthID:  req.ContaAuthID,
	}
	if req.Endereco != nil {
		endereco := toEndereco(*req.Endereco)
		motorista.Endereco = &endereco
	}

	if err := s.motoristas.Create(ctx, motorista); err != nil {
		return nil, fmt.Errorf("failed to create motorista: %w", err)
	}

	s.logger.WithMotoristaID(motorista.ID).Info("Motorista cadastrado")

	return motorista, nil
}

func (s *motoristaService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Motorista, error) {
	motorista, err := s.motoristas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNaoEncontrado) {
			return nil, ErrMotoristaNaoEncontrado
		}
		return nil, err
	}
	return motorista, nil
}

func (s *motoristaService) List(ctx context.Context, status models.MotoristaStatus, params *utils.PaginationParams) ([]*models.Motorista, int64, error) {
	return s.motoristas.List(ctx, status, params)
}

func (s *motoristaService) Atualizar(ctx context.Context, id primitive.ObjectID, req *validators.AtualizarMotoristaRequest) (*models.Motorista, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["nome"] = *req.Nome
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(*req.Email)
	}
	if req.Telefone != nil {
		updates["telefone"] = *req.Telefone
	}
	if req.Veiculo != nil {
		updates["veiculo"] = models.Veiculo{
			Tipo:      req.Veiculo.Tipo,
			Descricao: req.Veiculo.Descricao,
		}
	}
	if req.CPF != nil {
		updates["cpf"] = *req.CPF
	}
	if req.RG != nil {
		updates["rg"] = *req.RG
	}
	if req.Placa != nil {
		updates["placa"] = strings.ToUpper(*req.Placa)
	}
	if req.CapacidadeKG != nil {
		updates["capacidade_kg"] = *req.CapacidadeKG
	}
	if req.AreaAtuacao != nil {
		updates["area_atuacao"] = *req.AreaAtuacao
	}
	if req.Endereco != nil {
		updates["endereco"] = toEndereco(*req.Endereco)
	}

	if len(updates) > 0 {
		if err := s.motoristas.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update motorista: %w", err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *motoristaService) AtualizarStatus(ctx context.Context, id primitive.ObjectID, status models.MotoristaStatus) (*models.Motorista, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.motoristas.Update(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return nil, fmt.Errorf("failed to update status do motorista: %w", err)
	}

	s.logger.WithMotoristaID(id).WithField("status", status).Info("Status do motorista atualizado")

	return s.GetByID(ctx, id)
}

func (s *motoristaService) Excluir(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.motoristas.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete motorista: %w", err)
	}

	s.logger.WithMotoristaID(id).Info("Motorista excluído")

	return nil
}

// EnviarDocumentos uploads whichever documents came on the request and
// stores their URLs on the motorista. Identidade accepts multiple files
// (front and back); a partial failure there keeps the ones that made it.
func (s *motoristaService) EnviarDocumentos(ctx context.Context, id primitive.ObjectID, docs *DocumentosUpload) (*models.Motorista, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if docs.CNH != nil {
		url, err := s.media.UploadDocumento(ctx, utils.PrefixoDocumentos, id.Hex()+"_cnh", *docs.CNH)
		if err != nil {
			return nil, err
		}
		updates["documentos.cnh"] = url
	}
	if docs.DocumentoVeiculo != nil {
		url, err := s.media.UploadDocumento(ctx, utils.PrefixoDocumentos, id.Hex()+"_veiculo", *docs.DocumentoVeiculo)
		if err != nil {
			return nil, err
		}
		updates["documentos.documento_veiculo"] = url
	}
	if docs.FotoPerfil != nil {
		url, err := s.media.UploadDocumento(ctx, utils.PrefixoDocumentos, id.Hex()+"_perfil", *docs.FotoPerfil)
		if err != nil {
			return nil, err
		}
		updates["foto_perfil"] = url
	}
	if len(docs.Identidade) > 0 {
		resultado := s.media.UploadLote(ctx, utils.PrefixoDocumentos, id.Hex()+"_identidade", docs.Identidade)
		if len(resultado.Falhas) > 0 {
			s.logger.WithMotoristaID(id).
				Warnf("Documentos de identidade: %d enviados, %d com falha", len(resultado.Enviadas), len(resultado.Falhas))
		}
		if len(resultado.Enviadas) > 0 {
			updates["documentos.identidade"] = resultado.Enviadas
		}
	}

	if len(updates) > 0 {
		if err := s.motoristas.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update documentos do motorista: %w", err)
		}
	}

	return s.GetByID(ctx, id)
}
