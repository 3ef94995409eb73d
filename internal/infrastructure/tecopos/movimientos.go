package tecopos

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

type movimientoItem struct {
	ID int64 `json:"id"`
}

type pagedMovimientos struct {
	Items []movimientoItem `json:"items"`
}

type productoRefWire struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Measure string `json:"measure"`
}

type movimientoHijoWire struct {
	Operation string          `json:"operation"`
	Category  string          `json:"category"`
	Quantity  float64         `json:"quantity"`
	Product   productoRefWire `json:"product"`
}

type movimientoDetalleWire struct {
	ID        int64                `json:"id"`
	CreatedAt string               `json:"createdAt"`
	Operation string               `json:"operation"`
	Category  string               `json:"category"`
	Quantity  float64              `json:"quantity"`
	Product   productoRefWire      `json:"product"`
	Childs    []movimientoHijoWire `json:"childs"`
}

// ListarMovimientosPadre devuelve los ids de movimientos OUT/DESCOMPOSITION
// del área en el rango [desde, hasta] (fechas YYYY-MM-DD), paginando hasta la
// primera página vacía.
func (c *Client) ListarMovimientosPadre(ctx context.Context, areaID int, desde, hasta string) ([]int64, error) {
	// Tecopos espera dateFrom/dateTo en YYYY-MM-DD; se recorta por si llega hora.
	if len(desde) > 10 {
		desde = desde[:10]
	}
	if len(hasta) > 10 {
		hasta = hasta[:10]
	}

	var ids []int64
	for page := 1; page <= c.maxPages; page++ {
		query := url.Values{}
		query.Set("areaId", strconv.Itoa(areaID))
		query.Set("all_data", "true")
		query.Set("dateFrom", desde)
		query.Set("dateTo", hasta)
		query.Set("operation", entity.OperacionSalida)
		query.Set("category", entity.CategoriaDescomposicion)
		query.Set("page", strconv.Itoa(page))

		var out pagedMovimientos
		if err := c.getJSON(ctx, "/api/v1/administration/movement", query, &out); err != nil {
			return nil, err
		}
		if len(out.Items) == 0 {
			break
		}
		for _, it := range out.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids, nil
}

// DetalleMovimiento obtiene el detalle de un movimiento con sus hijos.
func (c *Client) DetalleMovimiento(ctx context.Context, id int64) (*entity.Movimiento, error) {
	var out movimientoDetalleWire
	path := fmt.Sprintf("/api/v1/administration/movement/%d", id)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}

	mov := &entity.Movimiento{
		ID:        out.ID,
		CreadoEn:  out.CreatedAt,
		Operacion: out.Operation,
		Categoria: out.Category,
		Cantidad:  out.Quantity,
		Producto:  out.Product.toEntity(),
		Hijos:     make([]entity.MovimientoHijo, 0, len(out.Childs)),
	}
	for _, ch := range out.Childs {
		mov.Hijos = append(mov.Hijos, entity.MovimientoHijo{
			Operacion: ch.Operation,
			Categoria: ch.Category,
			Cantidad:  ch.Quantity,
			Producto:  ch.Product.toEntity(),
		})
	}
	return mov, nil
}

func (w productoRefWire) toEntity() entity.ProductoRef {
	return entity.ProductoRef{ID: w.ID, Nombre: w.Name, Tipo: w.Type, Medida: w.Measure}
}
