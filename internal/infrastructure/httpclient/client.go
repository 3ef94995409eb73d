package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tecobot/tecopos-api/pkg/config"
)

// ErrCircuitoAbierto se devuelve cuando el breaker del host destino está abierto.
var ErrCircuitoAbierto = errors.New("circuito abierto para el host destino")

// Response respuesta cruda de una llamada upstream.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client cliente HTTP saliente compartido, con pooling de conexiones, timeout
// duro, reintentos con backoff exponencial y corta-circuito por host.
//
// Los reintentos aplican exclusivamente a GET (idempotente por definición);
// los demás métodos se envían una sola vez y el error se propaga de inmediato.
// Debe instanciarse una vez por proceso y compartirse entre servicios.
type Client struct {
	http       *http.Client
	breaker    *CircuitBreaker
	maxRetries int
	backoff    time.Duration
}

// New construye el cliente con la configuración upstream.
func New(cfg config.UpstreamConfig) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		breaker:    NewCircuitBreaker(5, time.Minute),
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
	}
}

// Get ejecuta un GET con reintentos. Solo los errores de transporte se
// reintentan; una respuesta HTTP (aunque sea 5xx) se devuelve al caller.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string, query url.Values) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.do(ctx, http.MethodGet, rawURL, headers, query, nil)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if errors.Is(err, ErrCircuitoAbierto) || ctx.Err() != nil || attempt >= c.maxRetries {
			break
		}
		delay := c.backoff * (1 << attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

// Send ejecuta un método no idempotente (POST/PATCH/...) una sola vez.
// body se serializa como JSON cuando no es nil.
func (c *Client) Send(ctx context.Context, method, rawURL string, headers map[string]string, body any) (*Response, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		payload = bytes.NewReader(raw)
	}
	return c.do(ctx, method, rawURL, headers, nil, payload)
}

func (c *Client) do(ctx context.Context, method, rawURL string, headers map[string]string, query url.Values, body io.Reader) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url inválida %q: %w", rawURL, err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}
	host := u.Host
	if !c.breaker.CanRequest(host) {
		return nil, fmt.Errorf("%w: %s", ErrCircuitoAbierto, host)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.breaker.RecordFailure(host)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.breaker.RecordFailure(host)
		return nil, err
	}

	// Solo los 5xx marcan fallo; los 4xx son error del cliente y no deben
	// bloquear el host.
	if resp.StatusCode >= 500 {
		c.breaker.RecordFailure(host)
	} else {
		c.breaker.RecordSuccess(host)
	}
	return &Response{StatusCode: resp.StatusCode, Body: raw}, nil
}
