package tecopos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/infrastructure/httpclient"
)

// AuthClient llamadas de seguridad previas a tener una sesión completa
// (login, información del usuario, sucursales).
type AuthClient struct {
	http *httpclient.Client
}

// NewAuthClient construye el cliente de autenticación upstream.
func NewAuthClient(hc *httpclient.Client) *AuthClient {
	return &AuthClient{http: hc}
}

func headersPublicos(region string) (map[string]string, error) {
	origin, err := OriginURL(region)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "*/*",
		"Origin":       origin,
		"Referer":      origin + "/",
		"x-app-origin": "Tecopos-Admin",
		"User-Agent":   "Mozilla/5.0",
	}, nil
}

// Login autentica contra Tecopos y devuelve el token Bearer.
func (a *AuthClient) Login(ctx context.Context, region, usuario, password string) (string, error) {
	base, err := BaseURL(region)
	if err != nil {
		return "", err
	}
	headers, err := headersPublicos(region)
	if err != nil {
		return "", err
	}

	body := map[string]string{"username": usuario, "password": password}
	resp, err := a.http.Send(ctx, "POST", base+"/api/v1/security/login", headers, body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != 200 {
		return "", domain.ErrCredenciales
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil || out.Token == "" {
		return "", fmt.Errorf("tecopos: login sin token en la respuesta")
	}
	return out.Token, nil
}

// InfoUsuario devuelve el businessId real del usuario autenticado.
func (a *AuthClient) InfoUsuario(ctx context.Context, region, token string) (int, error) {
	base, err := BaseURL(region)
	if err != nil {
		return 0, err
	}
	headers, err := AuthHeaders(token, 0, region)
	if err != nil {
		return 0, err
	}

	resp, err := a.http.Get(ctx, base+"/api/v1/security/user", headers, nil)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != 200 {
		return 0, &APIError{Status: resp.StatusCode, Body: string(resp.Body)}
	}
	var out struct {
		BusinessID int `json:"businessId"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil || out.BusinessID == 0 {
		return 0, fmt.Errorf("tecopos: businessId ausente en la información del usuario")
	}
	return out.BusinessID, nil
}

// MisSucursales lista las sucursales disponibles del usuario. Una lista vacía
// significa que se usa el negocio principal.
func (a *AuthClient) MisSucursales(ctx context.Context, region, token string) ([]entity.Negocio, error) {
	base, err := BaseURL(region)
	if err != nil {
		return nil, err
	}
	headers, err := AuthHeaders(token, 0, region)
	if err != nil {
		return nil, err
	}

	resp, err := a.http.Get(ctx, base+"/api/v1/administration/my-branches", headers, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(resp.Body)}
	}
	var out []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("tecopos: decodificar sucursales: %w", err)
	}
	negocios := make([]entity.Negocio, 0, len(out))
	for _, n := range out {
		negocios = append(negocios, entity.Negocio{ID: n.ID, Nombre: n.Name})
	}
	return negocios, nil
}
