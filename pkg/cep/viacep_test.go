package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu        sync.Mutex
	itens     map[string]Endereco
	ultimoTTL time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{itens: make(map[string]Endereco)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	endereco, ok := m.itens[key]
	if !ok {
		return assert.AnError
	}
	*dest.(*Endereco) = endereco
	return nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ultimoTTL = ttl
	switch v := value.(type) {
	case Endereco:
		m.itens[key] = v
	case *Endereco:
		m.itens[key] = *v
	}
	return nil
}

func viaCEPServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ws/01310100/json/":
			w.Write([]byte(`{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
		case "/ws/99999999/json/":
			w.Write([]byte(`{"erro":true}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
}

func TestLookup(t *testing.T) {
	server := viaCEPServer(t, nil)
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, nil, 0)

	endereco, err := client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)

	assert.Equal(t, "Avenida Paulista", endereco.Logradouro)
	assert.Equal(t, "São Paulo", endereco.Localidade)
	assert.Equal(t, "SP", endereco.UF)
}

func TestLookupCEPInvalido(t *testing.T) {
	client := NewClientWithBaseURL("http://viacep.invalid", nil, 0)

	for _, cep := range []string{"", "1234", "abcdefgh", "123456789"} {
		_, err := client.Lookup(context.Background(), cep)
		assert.ErrorIs(t, err, ErrCEPInvalido, "cep %q", cep)
	}
}

func TestLookupCEPNaoEncontrado(t *testing.T) {
	server := viaCEPServer(t, nil)
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, nil, 0)

	_, err := client.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, ErrCEPNaoEncontrado)
}

func TestLookupUsaCache(t *testing.T) {
	hits := 0
	server := viaCEPServer(t, &hits)
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, newMemoryCache(), 0)

	_, err := client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)

	endereco, err := client.Lookup(context.Background(), "01310100")
	require.NoError(t, err)

	assert.Equal(t, "Avenida Paulista", endereco.Logradouro)
	assert.Equal(t, 1, hits, "second lookup must come from cache")
}

func TestLookupRespeitaTTLConfigurado(t *testing.T) {
	server := viaCEPServer(t, nil)
	defer server.Close()

	cache := newMemoryCache()
	client := NewClientWithBaseURL(server.URL, cache, time.Hour)

	_, err := client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cache.ultimoTTL)

	// Zero falls back to the one-day default.
	padrao := newMemoryCache()
	client = NewClientWithBaseURL(server.URL, padrao, 0)
	_, err = client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, padrao.ultimoTTL)
}

func TestLookupErroDoServidor(t *testing.T) {
	server := viaCEPServer(t, nil)
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, nil, 0)

	_, err := client.Lookup(context.Background(), "55555555")
	assert.Error(t, err)
}
