package tecopos

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

type precioWire struct {
	PriceSystemID int             `json:"priceSystemId"`
	Price         decimal.Decimal `json:"price"`
	CodeCurrency  string          `json:"codeCurrency"`
}

type productoWire struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Code    string       `json:"code"`
	Measure string       `json:"measure"`
	Prices  []precioWire `json:"prices"`
}

type pagedProductos struct {
	Items []productoWire `json:"items"`
}

// ListarProductos devuelve una página del catálogo; página vacía = fin.
func (c *Client) ListarProductos(ctx context.Context, page int) ([]entity.Producto, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var out pagedProductos
	if err := c.getJSON(ctx, "/api/v1/administration/product", query, &out); err != nil {
		return nil, err
	}
	productos := make([]entity.Producto, 0, len(out.Items))
	for _, p := range out.Items {
		productos = append(productos, p.toEntity())
	}
	return productos, nil
}

// BuscarProductos busca productos por texto libre (parámetro search).
func (c *Client) BuscarProductos(ctx context.Context, search string) ([]entity.Producto, error) {
	query := url.Values{}
	query.Set("search", search)

	var out pagedProductos
	if err := c.getJSON(ctx, "/api/v1/administration/product", query, &out); err != nil {
		return nil, err
	}
	productos := make([]entity.Producto, 0, len(out.Items))
	for _, p := range out.Items {
		productos = append(productos, p.toEntity())
	}
	return productos, nil
}

// CrearProducto crea un producto de tipo STOCK y devuelve su id.
func (c *Client) CrearProducto(ctx context.Context, nuevo entity.NuevoProducto) (int, error) {
	body := map[string]any{
		"type": "STOCK",
		"name": nuevo.Nombre,
		"prices": []map[string]any{
			{"price": nuevo.Precio, "codeCurrency": nuevo.Moneda},
		},
		"images":          []any{},
		"salesCategoryId": nuevo.CategoriaID,
	}
	var out struct {
		ID int `json:"id"`
	}
	if err := c.sendJSON(ctx, "POST", "/api/v1/administration/product", body, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// ActualizarPrecioProducto aplica un cambio de precio/moneda vía PATCH.
func (c *Client) ActualizarPrecioProducto(ctx context.Context, productoID int, precio entity.Precio) error {
	body := map[string]any{
		"prices": []map[string]any{
			{
				"systemPriceId": precio.SistemaID,
				"price":         precio.Monto,
				"codeCurrency":  precio.Moneda,
			},
		},
	}
	path := fmt.Sprintf("/api/v1/administration/product/%d", productoID)
	return c.sendJSON(ctx, "PATCH", path, body, nil)
}

// ListarCategoriasVenta devuelve las categorías de venta del negocio.
func (c *Client) ListarCategoriasVenta(ctx context.Context) ([]entity.CategoriaVenta, error) {
	var out struct {
		Items []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/v1/administration/salescategory", nil, &out); err != nil {
		return nil, err
	}
	categorias := make([]entity.CategoriaVenta, 0, len(out.Items))
	for _, cat := range out.Items {
		categorias = append(categorias, entity.CategoriaVenta{ID: cat.ID, Nombre: cat.Name})
	}
	return categorias, nil
}

// CrearCategoriaVenta crea una categoría de venta y devuelve su id.
func (c *Client) CrearCategoriaVenta(ctx context.Context, nombre string) (int, error) {
	var out struct {
		ID int `json:"id"`
	}
	if err := c.sendJSON(ctx, "POST", "/api/v1/administration/salescategory", map[string]string{"name": nombre}, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (w productoWire) toEntity() entity.Producto {
	p := entity.Producto{
		ID:     w.ID,
		Nombre: w.Name,
		Codigo: w.Code,
		Medida: w.Measure,
	}
	for _, pr := range w.Prices {
		p.Precios = append(p.Precios, entity.Precio{
			SistemaID: pr.PriceSystemID,
			Monto:     pr.Price,
			Moneda:    pr.CodeCurrency,
		})
	}
	return p
}
