package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fretedash/internal/models"
	"fretedash/internal/repositories/interfaces"
	"fretedash/internal/utils"
	"fretedash/internal/validators"
	"fretedash/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TxRunner runs a function inside a storage transaction. Every lifecycle
// transition writes the corrida and its solicitação through one of these, so
// the pair can never diverge on a partial failure.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CorridaService owns the ride lifecycle state machine:
//
//	pendente --atribuir--> atribuida --finalizar--> finalizada
//	pendente --cancelar--> cancelada
//	atribuida --cancelar--> cancelada
//
// finalizada and cancelada are terminal. The solicitação mirrors every
// transition (pendente / em_andamento / finalizada / cancelada).
type CorridaService interface {
	Criar(ctx context.Context, req *validators.CriarSolicitacaoRequest, fotos []UploadArquivo) (*models.Solicitacao, *models.Corrida, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Corrida, error)
	List(ctx context.Context, status models.CorridaStatus, params *utils.PaginationParams) ([]*models.Corrida, int64, error)
	Atribuir(ctx context.Context, corridaID, motoristaID primitive.ObjectID) (*models.Corrida, error)
	Finalizar(ctx context.Context, corridaID primitive.ObjectID, req *validators.FinalizarCorridaRequest, fotos []UploadArquivo) (*models.Corrida, *UploadLoteResultado, error)
	Cancelar(ctx context.Context, corridaID primitive.ObjectID, motivo string) (*models.Corrida, error)
}

type corridaService struct {
	solicitacoes interfaces.SolicitacaoRepository
	corridas     interfaces.CorridaRepository
	motoristas   interfaces.MotoristaRepository
	media        MediaService
	tx           TxRunner
	logger       *logger.Logger
}

func NewCorridaService(
	solicitacoes interfaces.SolicitacaoRepository,
	corridas interfaces.CorridaRepository,
	motoristas interfaces.MotoristaRepository,
	media MediaService,
	tx TxRunner,
	log *logger.Logger,
) CorridaService {
	return &corridaService{
		solicitacoes: solicitacoes,
		corridas:     corridas,
		motoristas:   motoristas,
		media:        media,
		tx:           tx,
		logger:       log,
	}
}

func (s *corridaService) Criar(ctx context.Context, req *validators.CriarSolicitacaoRequest, fotos []UploadArquivo) (*models.Solicitacao, *models.Corrida, error) {
	if len(fotos) > utils.MaxFotosPorLote {
		return nil, nil, ErrLimiteFotos
	}

	solicitacao := &models.Solicitacao{
		ID:              primitive.NewObjectID(),
		NomeCliente:     req.NomeCliente,
		Telefone:        req.Telefone,
		Email:           req.Email,
		Empresa:         req.Empresa,
		Origem:          toEndereco(req.Origem),
		Destino:         toEndereco(req.Destino),
		DescricaoCarga:  req.DescricaoCarga,
		Dimensoes:       req.Dimensoes,
		PesoAproximado:  req.PesoAproximado,
		QuantidadeItens: req.QuantidadeItens,
		TipoVeiculo:     req.TipoVeiculo,
		DataColeta:      req.DataColeta,
		PeriodoColeta:   req.PeriodoColeta,
		Ajudantes:       req.Ajudantes,
		Status:          models.SolicitacaoStatusPendente,
	}

	if len(fotos) > 0 {
		resultado := s.media.UploadLote(ctx, utils.PrefixoCorridas, solicitacao.ID.Hex(), fotos)
		if len(resultado.Falhas) > 0 {
			s.logger.WithSolicitacaoID(solicitacao.ID).
				Warnf("Fotos da carga: %d enviadas, %d com falha", len(resultado.Enviadas), len(resultado.Falhas))
		}
		solicitacao.FotosCarga = resultado.Enviadas
	}

	valor := utils.ValorFrete(req.ValorBase, req.Ajudantes)
	corrida := &models.Corrida{
		SolicitacaoID: solicitacao.ID,
		Status:        models.CorridaStatusPendente,
		Valor:         &valor,
	}

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.solicitacoes.Create(txCtx, solicitacao); err != nil {
			return err
		}
		return s.corridas.Create(txCtx, corrida)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao criar solicitação e corrida: %w", err)
	}

	s.logger.WithCorridaID(corrida.ID).WithSolicitacaoID(solicitacao.ID).Info("Corrida criada")

	return solicitacao, corrida, nil
}

func (s *corridaService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Corrida, error) {
	corrida, err := s.corridas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNaoEncontrado) {
			return nil, ErrCorridaNaoEncontrada
		}
		return nil, err
	}
	return corrida, nil
}

func (s *corridaService) List(ctx context.Context, status models.CorridaStatus, params *utils.PaginationParams) ([]*models.Corrida, int64, error) {
	return s.corridas.List(ctx, status, params)
}

func (s *corridaService) Atribuir(ctx context.Context, corridaID, motoristaID primitive.ObjectID) (*models.Corrida, error) {
	corrida, err := s.GetByID(ctx, corridaID)
	if err != nil {
		return nil, err
	}
	if corrida.Status != models.CorridaStatusPendente {
		return nil, ErrTransicaoInvalida
	}

	motorista, err := s.motoristas.GetByID(ctx, motoristaID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNaoEncontrado) {
			return nil, ErrMotoristaNaoEncontrado
		}
		return nil, err
	}
	if motorista.Status != models.MotoristaStatusAtivo {
		return nil, ErrMotoristaInativo
	}

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.corridas.AtribuirMotorista(txCtx, corridaID, motorista.ID, corrida.Versao); err != nil {
			return err
		}
		return s.solicitacoes.Update(txCtx, corrida.SolicitacaoID, map[string]interface{}{
			"status": models.SolicitacaoStatusEmAndamento,
		})
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConflitoVersao) {
			return nil, ErrConflitoAtribuicao
		}
		return nil, fmt.Errorf("falha na transição atribuir: %w", err)
	}

	s.logger.LogTransicao(corridaID, string(models.CorridaStatusPendente), string(models.CorridaStatusAtribuida))

	return s.GetByID(ctx, corridaID)
}

func (s *corridaService) Finalizar(ctx context.Context, corridaID primitive.ObjectID, req *validators.FinalizarCorridaRequest, fotos []UploadArquivo) (*models.Corrida, *UploadLoteResultado, error) {
	corrida, err := s.GetByID(ctx, corridaID)
	if err != nil {
		return nil, nil, err
	}
	if corrida.Status != models.CorridaStatusAtribuida {
		return nil, nil, ErrTransicaoInvalida
	}
	if len(fotos) > utils.MaxFotosPorLote {
		return nil, nil, ErrLimiteFotos
	}

	var resultado *UploadLoteResultado
	if len(fotos) > 0 {
		resultado = s.media.UploadLote(ctx, utils.PrefixoCorridas, corridaID.Hex(), fotos)
		if len(resultado.Falhas) > 0 {
			s.logger.WithCorridaID(corridaID).
				Warnf("Comprovantes de entrega: %d enviados, %d com falha", len(resultado.Enviadas), len(resultado.Falhas))
		}
	}

	updates := map[string]interface{}{
		"status":      models.CorridaStatusFinalizada,
		"data_fim":    time.Now(),
		"valor":       utils.ParseDecimalBR(req.Valor),
		"observacoes": req.Observacoes,
		"feedback":    req.Feedback,
	}
	if resultado != nil && len(resultado.Enviadas) > 0 {
		updates["fotos_entrega"] = resultado.Enviadas
	}
	if req.Avaliacao != nil {
		updates["avaliacao"] = *req.Avaliacao
	}
	if req.DistanciaKM != nil {
		updates["distancia_km"] = *req.DistanciaKM
	}

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.corridas.Update(txCtx, corridaID, updates); err != nil {
			return err
		}
		return s.solicitacoes.Update(txCtx, corrida.SolicitacaoID, map[string]interface{}{
			"status": models.SolicitacaoStatusFinalizada,
		})
	})
	if err != nil {
		return nil, resultado, fmt.Errorf("falha na transição finalizar: %w", err)
	}

	s.logger.LogTransicao(corridaID, string(models.CorridaStatusAtribuida), string(models.CorridaStatusFinalizada))

	atualizada, err := s.GetByID(ctx, corridaID)
	if err != nil {
		return nil, resultado, err
	}
	return atualizada, resultado, nil
}

func (s *corridaService) Cancelar(ctx context.Context, corridaID primitive.ObjectID, motivo string) (*models.Corrida, error) {
	corrida, err := s.GetByID(ctx, corridaID)
	if err != nil {
		return nil, err
	}
	if corrida.Terminal() {
		return nil, ErrTransicaoInvalida
	}

	updates := map[string]interface{}{
		"status": models.CorridaStatusCancelada,
	}
	if motivo != "" {
		updates["observacoes"] = motivo
	}

	statusAnterior := corrida.Status

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.corridas.Update(txCtx, corridaID, updates); err != nil {
			return err
		}
		return s.solicitacoes.Update(txCtx, corrida.SolicitacaoID, map[string]interface{}{
			"status": models.SolicitacaoStatusCancelada,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("falha na transição cancelar: %w", err)
	}

	s.logger.LogTransicao(corridaID, string(statusAnterior), string(models.CorridaStatusCancelada))

	return s.GetByID(ctx, corridaID)
}

func toEndereco(req validators.EnderecoRequest) models.Endereco {
	return models.Endereco{
		Logradouro:  req.Logradouro,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		UF:          strings.ToUpper(req.UF),
		CEP:         strings.ReplaceAll(req.CEP, "-", ""),
		Referencia:  req.Referencia,
	}
}
