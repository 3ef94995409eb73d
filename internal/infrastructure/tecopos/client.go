package tecopos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/infrastructure/httpclient"
)

// APIError error de una llamada upstream con status no exitoso.
// Conserva el status y el cuerpo para que los handlers puedan propagarlos.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tecopos: status %d: %s", e.Status, e.Body)
}

// Client cliente autenticado del API de administración de Tecopos.
// Centraliza base URL por región, headers de autenticación y paginación
// explícita con ?page=N que corta en la primera página vacía.
type Client struct {
	http     *httpclient.Client
	baseURL  string
	headers  map[string]string
	maxPages int
}

// NewClient construye el cliente para una sesión. businessID 0 omite el
// header x-app-businessid (estado previo a la selección de negocio).
func NewClient(hc *httpclient.Client, region, token string, businessID, maxPages int) (*Client, error) {
	base, err := BaseURL(region)
	if err != nil {
		return nil, err
	}
	headers, err := AuthHeaders(token, businessID, region)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, baseURL: base, headers: headers, maxPages: maxPages}, nil
}

// NewClientForSession construye el cliente a partir de una sesión almacenada.
func NewClientForSession(hc *httpclient.Client, ses *entity.Sesion, maxPages int) (*Client, error) {
	return NewClient(hc, ses.Region, ses.Token, ses.BusinessID, maxPages)
}

// AuthHeaders construye los headers de autenticación y metadatos del API.
func AuthHeaders(token string, businessID int, region string) (map[string]string, error) {
	origin, err := OriginURL(region)
	if err != nil {
		return nil, err
	}
	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
		"Accept":        "*/*",
		"Origin":        origin,
		"Referer":       origin + "/",
		"x-app-origin":  "Tecopos-Admin",
		"User-Agent":    "Mozilla/5.0",
	}
	if businessID > 0 {
		headers["x-app-businessid"] = strconv.Itoa(businessID)
	}
	return headers, nil
}

// getJSON hace un GET autenticado y decodifica el JSON en out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.http.Get(ctx, c.baseURL+path, c.headers, query)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: string(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("tecopos: decodificar %s: %w", path, err)
	}
	return nil
}

// sendJSON hace un POST/PATCH autenticado y decodifica la respuesta en out (si no es nil).
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.http.Send(ctx, method, c.baseURL+path, c.headers, body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: string(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("tecopos: decodificar %s: %w", path, err)
	}
	return nil
}
