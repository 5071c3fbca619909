package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Client consults ViaCEP to prefill address forms. Responses are immutable,
// so hits are cached (one day by default) when a cache is configured.

const (
	defaultBaseURL  = "https://viacep.com.br"
	defaultCacheTTL = 24 * time.Hour
)

var (
	ErrCEPInvalido      = errors.New("CEP deve conter 8 dígitos")
	ErrCEPNaoEncontrado = errors.New("CEP não encontrado")

	cepPattern = regexp.MustCompile(`^\d{8}$`)
)

type Endereco struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
}

type viaCEPResponse struct {
	Endereco
	Erro bool `json:"erro"`
}

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      Cache
	cacheTTL   time.Duration
}

// NewClient builds a client; cacheTTL <= 0 falls back to one day.
func NewClient(cache Cache, cacheTTL time.Duration) *Client {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// NewClientWithBaseURL exists for tests pointing at a local server.
func NewClientWithBaseURL(baseURL string, cache Cache, cacheTTL time.Duration) *Client {
	c := NewClient(cache, cacheTTL)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

func (c *Client) Lookup(ctx context.Context, cep string) (*Endereco, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(cep), "-", "")
	if !cepPattern.MatchString(digits) {
		return nil, ErrCEPInvalido
	}

	cacheKey := "cep:" + digits
	if c.cache != nil {
		var cached Endereco
		if err := c.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ViaCEP returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode ViaCEP response: %w", err)
	}

	if body.Erro {
		return nil, ErrCEPNaoEncontrado
	}

	if c.cache != nil {
		// Best effort; a cache failure must not fail the lookup.
		_ = c.cache.Set(ctx, cacheKey, body.Endereco, c.cacheTTL)
	}

	return &body.Endereco, nil
}
