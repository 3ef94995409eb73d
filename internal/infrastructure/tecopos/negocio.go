package tecopos

import (
	"context"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

// MiNegocio devuelve los sistemas de precio configurados en el negocio activo.
func (c *Client) MiNegocio(ctx context.Context) ([]entity.SistemaPrecio, error) {
	var out struct {
		PriceSystems []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"priceSystems"`
	}
	if err := c.getJSON(ctx, "/api/v1/administration/my-business", nil, &out); err != nil {
		return nil, err
	}
	sistemas := make([]entity.SistemaPrecio, 0, len(out.PriceSystems))
	for _, s := range out.PriceSystems {
		sistemas = append(sistemas, entity.SistemaPrecio{ID: s.ID, Nombre: s.Name})
	}
	return sistemas, nil
}

// DisponibilidadStock devuelve el reporte de disponibilidad de inventario.
func (c *Client) DisponibilidadStock(ctx context.Context) ([]entity.DisponibilidadProducto, error) {
	var out struct {
		Result []struct {
			ProductName    string  `json:"productName"`
			Disponibility  float64 `json:"disponibility"`
			Measure        string  `json:"measure"`
		} `json:"result"`
	}
	if err := c.getJSON(ctx, "/api/v1/report/stock/disponibility", nil, &out); err != nil {
		return nil, err
	}
	filas := make([]entity.DisponibilidadProducto, 0, len(out.Result))
	for _, r := range out.Result {
		filas = append(filas, entity.DisponibilidadProducto{
			Producto:       r.ProductName,
			Disponibilidad: r.Disponibility,
			Medida:         r.Measure,
		})
	}
	return filas, nil
}
