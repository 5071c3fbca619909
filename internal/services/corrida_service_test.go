package services

import (
	"context"
	"io"
	"testing"
	"time"

	"fretedash/internal/models"
	"fretedash/internal/repositories/interfaces"
	"fretedash/internal/utils"
	"fretedash/internal/validators"
	"fretedash/pkg/logger"
	"fretedash/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes shared by the service tests in this package.

type fakeSolicitacaoRepo struct {
	itens map[primitive.ObjectID]*models.Solicitacao
}

func newFakeSolicitacaoRepo() *fakeSolicitacaoRepo {
	return &fakeSolicitacaoRepo{itens: make(map[primitive.ObjectID]*models.Solicitacao)}
}

func (r *fakeSolicitacaoRepo) Create(_ context.Context, s *models.Solicitacao) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.itens[s.ID] = s
	return nil
}

func (r *fakeSolicitacaoRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Solicitacao, error) {
	s, ok := r.itens[id]
	if !ok {
		return nil, interfaces.ErrNaoEncontrado
	}
	return s, nil
}

func (r *fakeSolicitacaoRepo) List(_ context.Context, status models.SolicitacaoStatus, _ *utils.PaginationParams) ([]*models.Solicitacao, int64, error) {
	var out []*models.Solicitacao
	for _, s := range r.itens {
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSolicitacaoRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	s, ok := r.itens[id]
	if !ok {
		return interfaces.ErrNaoEncontrado
	}
	if v, ok := updates["status"]; ok {
		s.Status = v.(models.SolicitacaoStatus)
	}
	return nil
}

type fakeCorridaRepo struct {
	itens map[primitive.ObjectID]*models.Corrida
}

func newFakeCorridaRepo() *fakeCorridaRepo {
	return &fakeCorridaRepo{itens: make(map[primitive.ObjectID]*models.Corrida)}
}

func (r *fakeCorridaRepo) Create(_ context.Context, c *models.Corrida) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.Versao = 1
	r.itens[c.ID] = c
	return nil
}

func (r *fakeCorridaRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Corrida, error) {
	c, ok := r.itens[id]
	if !ok {
		return nil, interfaces.ErrNaoEncontrado
	}
	copia := *c
	return &copia, nil
}

func (r *fakeCorridaRepo) GetBySolicitacaoID(_ context.Context, solicitacaoID primitive.ObjectID) (*models.Corrida, error) {
	for _, c := range r.itens {
		if c.SolicitacaoID == solicitacaoID {
			copia := *c
			return &copia, nil
		}
	}
	return nil, interfaces.ErrNaoEncontrado
}

func (r *fakeCorridaRepo) List(_ context.Context, status models.CorridaStatus, _ *utils.PaginationParams) ([]*models.Corrida, int64, error) {
	var out []*models.Corrida
	for _, c := range r.itens {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCorridaRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	c, ok := r.itens[id]
	if !ok {
		return interfaces.ErrNaoEncontrado
	}
	for k, v := range updates {
		switch k {
		case "status":
			c.Status = v.(models.CorridaStatus)
		case "observacoes":
			c.Observacoes = v.(string)
		case "feedback":
			c.Feedback = v.(string)
		case "valor":
			valor := v.(float64)
			c.Valor = &valor
		case "data_fim":
			dataFim := v.(time.Time)
			c.DataFim = &dataFim
		case "avaliacao":
			avaliacao := v.(int)
			c.Avaliacao = &avaliacao
		case "distancia_km":
			distancia := v.(float64)
			c.DistanciaKM = &distancia
		case "fotos_entrega":
			c.FotosEntrega = v.([]string)
		}
	}
	return nil
}

func (r *fakeCorridaRepo) AtribuirMotorista(_ context.Context, id, motoristaID primitive.ObjectID, versao int64) error {
	c, ok := r.itens[id]
	if !ok || c.Status != models.CorridaStatusPendente || c.Versao != versao {
		return interfaces.ErrConflitoVersao
	}
	agora := time.Now()
	c.MotoristaID = &motoristaID
	c.DataInicio = &agora
	c.Status = models.CorridaStatusAtribuida
	c.Versao++
	return nil
}

func (r *fakeCorridaRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.itens)), nil
}

func (r *fakeCorridaRepo) CountByStatus(_ context.Context, status models.CorridaStatus) (int64, error) {
	var n int64
	for _, c := range r.itens {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeCorridaRepo) SumValorFinalizadas(_ context.Context) (float64, error) {
	var total float64
	for _, c := range r.itens {
		if c.Status == models.CorridaStatusFinalizada && c.Valor != nil {
			total += *c.Valor
		}
	}
	return total, nil
}

func (r *fakeCorridaRepo) SumValorFinalizadasEntre(_ context.Context, inicio, fim time.Time) (float64, error) {
	var total float64
	for _, c := range r.itens {
		if c.Status != models.CorridaStatusFinalizada || c.Valor == nil || c.DataFim == nil {
			continue
		}
		if !c.DataFim.Before(inicio) && c.DataFim.Before(fim) {
			total += *c.Valor
		}
	}
	return total, nil
}

func (r *fakeCorridaRepo) AvaliacaoMedia(_ context.Context) (float64, error) {
	var soma, n float64
	for _, c := range r.itens {
		if c.Status == models.CorridaStatusFinalizada && c.Avaliacao != nil {
			soma += float64(*c.Avaliacao)
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return soma / n, nil
}

type fakeMotoristaRepo struct {
	itens map[primitive.ObjectID]*models.Motorista
}

func newFakeMotoristaRepo() *fakeMotoristaRepo {
	return &fakeMotoristaRepo{itens: make(map[primitive.ObjectID]*models.Motorista)}
}

func (r *fakeMotoristaRepo) Create(_ context.Context, m *models.Motorista) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	r.itens[m.ID] = m
	return nil
}

func (r *fakeMotoristaRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Motorista, error) {
	m, ok := r.itens[id]
	if !ok {
		return nil, interfaces.ErrNaoEncontrado
	}
	return m, nil
}

func (r *fakeMotoristaRepo) List(_ context.Context, status models.MotoristaStatus, _ *utils.PaginationParams) ([]*models.Motorista, int64, error) {
	var out []*models.Motorista
	for _, m := range r.itens {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeMotoristaRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	m, ok := r.itens[id]
	if !ok {
		return interfaces.ErrNaoEncontrado
	}
	for k, v := range updates {
		switch k {
		case "status":
			m.Status = v.(models.MotoristaStatus)
		case "nome":
			m.Nome = v.(string)
		case "email":
			m.Email = v.(string)
		case "foto_perfil":
			m.FotoPerfil = v.(string)
		case "documentos.cnh":
			m.Documentos.CNH = v.(string)
		}
	}
	return nil
}

func (r *fakeMotoristaRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.itens[id]; !ok {
		return interfaces.ErrNaoEncontrado
	}
	delete(r.itens, id)
	return nil
}

func (r *fakeMotoristaRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.itens)), nil
}

func (r *fakeMotoristaRepo) CountByStatus(_ context.Context, status models.MotoristaStatus) (int64, error) {
	var n int64
	for _, m := range r.itens {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeTx just runs the function; transactional semantics are the driver's job.
type fakeTx struct{}

func (fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeStorage struct {
	// falhar, when set, vetoes individual uploads.
	falhar  func(req *storage.UploadRequest) error
	uploads []string
}

func (f *fakeStorage) Upload(_ context.Context, req *storage.UploadRequest) (*storage.UploadResponse, error) {
	if f.falhar != nil {
		if err := f.falhar(req); err != nil {
			return nil, err
		}
	}
	f.uploads = append(f.uploads, req.Key)
	return &storage.UploadResponse{Key: req.Key, URL: "https://cdn.test/" + req.Key}, nil
}

func (f *fakeStorage) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeStorage) GetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (f *fakeStorage) FileExists(_ context.Context, _ string) (bool, error) { return false, nil }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	require.NoError(t, err)
	log.SetOutput(io.Discard)
	return log
}

type fixture struct {
	solicitacoes *fakeSolicitacaoRepo
	corridas     *fakeCorridaRepo
	motoristas   *fakeMotoristaRepo
	service      CorridaService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	solicitacoes := newFakeSolicitacaoRepo()
	corridas := newFakeCorridaRepo()
	motoristas := newFakeMotoristaRepo()
	media := NewMediaService(&fakeStorage{}, testLogger(t))

	return &fixture{
		solicitacoes: solicitacoes,
		corridas:     corridas,
		motoristas:   motoristas,
		service:      NewCorridaService(solicitacoes, corridas, motoristas, media, fakeTx{}, testLogger(t)),
	}
}

func criarRequestValida() *validators.CriarSolicitacaoRequest {
	return &validators.CriarSolicitacaoRequest{
		NomeCliente:    "Maria Souza",
		Telefone:       "11999990000",
		Origem:         validators.EnderecoRequest{Logradouro: "Rua A", Cidade: "São Paulo", UF: "SP"},
		Destino:        validators.EnderecoRequest{Logradouro: "Rua B", Cidade: "Campinas", UF: "SP"},
		DescricaoCarga: "Caixas de mudança",
		TipoVeiculo:    "van",
		Ajudantes:      2,
		ValorBase:      "100,00",
	}
}

func (f *fixture) motoristaAtivo(t *testing.T) *models.Motorista {
	t.Helper()
	m := &models.Motorista{Nome: "João", Status: models.MotoristaStatusAtivo}
	require.NoError(t, f.motoristas.Create(context.Background(), m))
	return m
}

func TestCriarInserePar(t *testing.T) {
	f := newFixture(t)

	solicitacao, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)

	assert.Equal(t, models.SolicitacaoStatusPendente, solicitacao.Status)
	assert.Equal(t, models.CorridaStatusPendente, corrida.Status)
	assert.Equal(t, solicitacao.ID, corrida.SolicitacaoID)
	assert.Equal(t, int64(1), corrida.Versao)

	// base 100,00 + 2 ajudantes x 100,00
	require.NotNil(t, corrida.Valor)
	assert.Equal(t, 300.0, *corrida.Valor)
}

func TestCriarRejeitaExcessoDeFotos(t *testing.T) {
	f := newFixture(t)

	fotos := make([]UploadArquivo, 6)
	_, _, err := f.service.Criar(context.Background(), criarRequestValida(), fotos)
	assert.ErrorIs(t, err, ErrLimiteFotos)
}

func TestAtribuirTransicionaOPar(t *testing.T) {
	f := newFixture(t)
	motorista := f.motoristaAtivo(t)

	solicitacao, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)

	atribuida, err := f.service.Atribuir(context.Background(), corrida.ID, motorista.ID)
	require.NoError(t, err)

	assert.Equal(t, models.CorridaStatusAtribuida, atribuida.Status)
	require.NotNil(t, atribuida.MotoristaID)
	assert.Equal(t, motorista.ID, *atribuida.MotoristaID)
	assert.NotNil(t, atribuida.DataInicio)
	assert.Equal(t, int64(2), atribuida.Versao)

	// Assignment only sets motorista_id, data_inicio and status.
	require.NotNil(t, atribuida.Valor)
	assert.Equal(t, *corrida.Valor, *atribuida.Valor)
	assert.Nil(t, atribuida.Avaliacao)
	assert.Nil(t, atribuida.DataFim)

	s, err := f.solicitacoes.GetByID(context.Background(), solicitacao.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SolicitacaoStatusEmAndamento, s.Status)
}

func TestAtribuirExigeMotoristaAtivo(t *testing.T) {
	f := newFixture(t)

	motorista := &models.Motorista{Nome: "Carlos", Status: models.MotoristaStatusAfastado}
	require.NoError(t, f.motoristas.Create(context.Background(), motorista))

	_, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)

	_, err = f.service.Atribuir(context.Background(), corrida.ID, motorista.ID)
	assert.ErrorIs(t, err, ErrMotoristaInativo)
}

func TestAtribuirDetectaConflito(t *testing.T) {
	f := newFixture(t)
	motorista := f.motoristaAtivo(t)
	outro := f.motoristaAtivo(t)

	_, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)

	_, err = f.service.Atribuir(context.Background(), corrida.ID, motorista.ID)
	require.NoError(t, err)

	// Second assignment loses: the corrida is no longer pendente at versao 1.
	_, err = f.service.Atribuir(context.Background(), corrida.ID, outro.ID)
	assert.ErrorIs(t, err, ErrTransicaoInvalida)
}

// racingCorridaRepo commits a competing assignment between the service's read
// and its conditional write, so the caller's versao is stale by write time.
type racingCorridaRepo struct {
	*fakeCorridaRepo
	vencedor primitive.ObjectID
}

func (r *racingCorridaRepo) AtribuirMotorista(ctx context.Context, id, motoristaID primitive.ObjectID, versao int64) error {
	if err := r.fakeCorridaRepo.AtribuirMotorista(ctx, id, r.vencedor, versao); err != nil {
		return err
	}
	return r.fakeCorridaRepo.AtribuirMotorista(ctx, id, motoristaID, versao)
}

func TestAtribuirPerdeCorridaDeVersao(t *testing.T) {
	ctx := context.Background()
	solicitacoes := newFakeSolicitacaoRepo()
	base := newFakeCorridaRepo()
	motoristas := newFakeMotoristaRepo()
	media := NewMediaService(&fakeStorage{}, testLogger(t))

	vencedor := &models.Motorista{Nome: "Rita", Status: models.MotoristaStatusAtivo}
	require.NoError(t, motoristas.Create(ctx, vencedor))
	perdedor := &models.Motorista{Nome: "Sérgio", Status: models.MotoristaStatusAtivo}
	require.NoError(t, motoristas.Create(ctx, perdedor))

	corridas := &racingCorridaRepo{fakeCorridaRepo: base, vencedor: vencedor.ID}
	service := NewCorridaService(solicitacoes, corridas, motoristas, media, fakeTx{}, testLogger(t))

	_, corrida, err := service.Criar(ctx, criarRequestValida(), nil)
	require.NoError(t, err)

	// The read sees pendente at versao 1, but the competing operator commits
	// first; the stale conditional write must surface as an assignment conflict.
	_, err = service.Atribuir(ctx, corrida.ID, perdedor.ID)
	assert.ErrorIs(t, err, ErrConflitoAtribuicao)

	atual, err := base.GetByID(ctx, corrida.ID)
	require.NoError(t, err)
	require.NotNil(t, atual.MotoristaID)
	assert.Equal(t, vencedor.ID, *atual.MotoristaID)
	assert.Equal(t, models.CorridaStatusAtribuida, atual.Status)
}

func TestAtribuirCorridaInexistente(t *testing.T) {
	f := newFixture(t)
	motorista := f.motoristaAtivo(t)

	_, err := f.service.Atribuir(context.Background(), primitive.NewObjectID(), motorista.ID)
	assert.ErrorIs(t, err, ErrCorridaNaoEncontrada)
}

func TestFinalizarRegistraValorEDataFim(t *testing.T) {
	f := newFixture(t)
	motorista := f.motoristaAtivo(t)

	solicitacao, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)
	_, err = f.service.Atribuir(context.Background(), corrida.ID, motorista.ID)
	require.NoError(t, err)

	nota := 5
	finalizada, _, err := f.service.Finalizar(context.Background(), corrida.ID, &validators.FinalizarCorridaRequest{
		Valor:     "1.234,50",
		Avaliacao: &nota,
		Feedback:  "Entrega sem avarias",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.CorridaStatusFinalizada, finalizada.Status)
	require.NotNil(t, finalizada.Valor)
	assert.Equal(t, 1234.5, *finalizada.Valor)
	assert.NotNil(t, finalizada.DataFim)
	require.NotNil(t, finalizada.Avaliacao)
	assert.Equal(t, 5, *finalizada.Avaliacao)

	s, err := f.solicitacoes.GetByID(context.Background(), solicitacao.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SolicitacaoStatusFinalizada, s.Status)
}

func TestFinalizarExigeAtribuida(t *testing.T) {
	f := newFixture(t)

	_, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)

	_, _, err = f.service.Finalizar(context.Background(), corrida.ID, &validators.FinalizarCorridaRequest{Valor: "100,00"}, nil)
	assert.ErrorIs(t, err, ErrTransicaoInvalida)
}

func TestFinalizarCorridaCanceladaFalha(t *testing.T) {
	f := newFixture(t)

	_, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)

	_, err = f.service.Cancelar(context.Background(), corrida.ID, "cliente desistiu")
	require.NoError(t, err)

	_, _, err = f.service.Finalizar(context.Background(), corrida.ID, &validators.FinalizarCorridaRequest{Valor: "100,00"}, nil)
	assert.ErrorIs(t, err, ErrTransicaoInvalida)
}

func TestCancelarGuardaMotivoEPreservaCampos(t *testing.T) {
	f := newFixture(t)
	motorista := f.motoristaAtivo(t)

	solicitacao, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)
	atribuida, err := f.service.Atribuir(context.Background(), corrida.ID, motorista.ID)
	require.NoError(t, err)

	cancelada, err := f.service.Cancelar(context.Background(), corrida.ID, "endereço incorreto")
	require.NoError(t, err)

	assert.Equal(t, models.CorridaStatusCancelada, cancelada.Status)
	assert.Equal(t, "endereço incorreto", cancelada.Observacoes)

	// motorista_id and valor survive cancellation.
	require.NotNil(t, cancelada.MotoristaID)
	assert.Equal(t, *atribuida.MotoristaID, *cancelada.MotoristaID)
	require.NotNil(t, cancelada.Valor)
	assert.Equal(t, *atribuida.Valor, *cancelada.Valor)

	s, err := f.solicitacoes.GetByID(context.Background(), solicitacao.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SolicitacaoStatusCancelada, s.Status)
}

func TestCancelarCorridaTerminalFalha(t *testing.T) {
	f := newFixture(t)

	_, corrida, err := f.service.Criar(context.Background(), criarRequestValida(), nil)
	require.NoError(t, err)

	_, err = f.service.Cancelar(context.Background(), corrida.ID, "")
	require.NoError(t, err)

	_, err = f.service.Cancelar(context.Background(), corrida.ID, "de novo")
	assert.ErrorIs(t, err, ErrTransicaoInvalida)
}
