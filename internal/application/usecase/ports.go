package usecase

import (
	"context"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

// AdminClient operaciones administrativas de Tecopos que consumen los casos de
// uso de moneda, inventario y productos. Implementado por infrastructure/tecopos.
type AdminClient interface {
	MiNegocio(ctx context.Context) ([]entity.SistemaPrecio, error)
	DisponibilidadStock(ctx context.Context) ([]entity.DisponibilidadProducto, error)
	ListarProductos(ctx context.Context, page int) ([]entity.Producto, error)
	BuscarProductos(ctx context.Context, search string) ([]entity.Producto, error)
	CrearProducto(ctx context.Context, nuevo entity.NuevoProducto) (int, error)
	ActualizarPrecioProducto(ctx context.Context, productoID int, precio entity.Precio) error
	ListarCategoriasVenta(ctx context.Context) ([]entity.CategoriaVenta, error)
	CrearCategoriaVenta(ctx context.Context, nombre string) (int, error)
}

// AdminClientFactory construye el cliente administrativo para una sesión.
type AdminClientFactory func(ses *entity.Sesion) (AdminClient, error)
