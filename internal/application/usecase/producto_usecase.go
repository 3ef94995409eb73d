package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
	"github.com/tecobot/tecopos-api/internal/domain/repository"
	"github.com/tecobot/tecopos-api/pkg/logger"
)

const categoriaPorDefecto = "General"

// categoriaKeywords palabras clave para inferir la categoría de venta de un
// producto nuevo a partir de su nombre.
var categoriaKeywords = map[string][]string{
	"Bebidas":   {"refresco", "jugo", "agua", "cerveza", "malta", "ron", "vino"},
	"Cárnicos":  {"pollo", "cerdo", "res", "pescado", "jamon", "jamón", "picadillo"},
	"Agro":      {"tomate", "cebolla", "ajo", "platano", "plátano", "yuca", "malanga", "arroz", "frijol"},
	"Lácteos":   {"leche", "queso", "yogur", "mantequilla"},
	"Panadería": {"pan", "galleta", "dulce", "harina"},
}

// ProductoUseCase alta de productos con reutilización por nombre: si ya existe
// un producto con el mismo nombre se devuelve en lugar de duplicarlo.
type ProductoUseCase struct {
	sesiones repository.SessionRepository
	clientes AdminClientFactory
	log      *logger.Logger
}

func NewProductoUseCase(sesiones repository.SessionRepository, clientes AdminClientFactory, log *logger.Logger) *ProductoUseCase {
	return &ProductoUseCase{sesiones: sesiones, clientes: clientes, log: log}
}

// Crear crea el producto (tipo STOCK) o devuelve el existente con el mismo
// nombre. La categoría de venta se infiere por palabras clave y se crea si no
// existe en el negocio.
func (uc *ProductoUseCase) Crear(ctx context.Context, usuario string, req *dto.CrearProductoRequest) (*dto.CrearProductoResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: falta 'nombre'", domain.ErrEntradaInvalida)
	}
	moneda := strings.ToUpper(strings.TrimSpace(req.Moneda))
	if moneda == "" {
		moneda = "CUP"
	}

	ses, err := uc.sesiones.Obtener(usuario)
	if err != nil {
		return nil, err
	}
	if ses == nil || ses.Token == "" {
		return nil, domain.ErrNoAutenticado
	}
	cli, err := uc.clientes(ses)
	if err != nil {
		return nil, err
	}

	// reutilización por nombre, sin distinguir mayúsculas ni espacios extra
	existentes, err := cli.BuscarProductos(ctx, nombre)
	if err != nil {
		return nil, err
	}
	for _, p := range existentes {
		if mismoNombre(p.Nombre, nombre) {
			return &dto.CrearProductoResponse{ID: p.ID, Nombre: p.Nombre, Creado: false}, nil
		}
	}

	categoria := inferirCategoria(nombre)
	categoriaID, err := uc.asegurarCategoria(ctx, cli, categoria)
	if err != nil {
		return nil, err
	}

	id, err := cli.CrearProducto(ctx, entity.NuevoProducto{
		Nombre:      nombre,
		Precio:      req.Precio,
		Moneda:      moneda,
		CategoriaID: categoriaID,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario", usuario).Int("producto_id", id).
		Str("categoria", categoria).Msg("producto creado")
	return &dto.CrearProductoResponse{ID: id, Nombre: nombre, Categoria: categoria, Creado: true}, nil
}

// Buscar busca productos del catálogo por texto libre.
func (uc *ProductoUseCase) Buscar(ctx context.Context, usuario, texto string) ([]dto.ProductoResponse, error) {
	if strings.TrimSpace(texto) == "" {
		return nil, fmt.Errorf("%w: falta el texto de búsqueda", domain.ErrEntradaInvalida)
	}

	ses, err := uc.sesiones.Obtener(usuario)
	if err != nil {
		return nil, err
	}
	if ses == nil || ses.Token == "" {
		return nil, domain.ErrNoAutenticado
	}
	cli, err := uc.clientes(ses)
	if err != nil {
		return nil, err
	}

	productos, err := cli.BuscarProductos(ctx, strings.TrimSpace(texto))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoResponse{ID: p.ID, Nombre: p.Nombre, Codigo: p.Codigo, Medida: p.Medida})
	}
	return out, nil
}

// asegurarCategoria devuelve el id de la categoría de venta, creándola si el
// negocio todavía no la tiene.
func (uc *ProductoUseCase) asegurarCategoria(ctx context.Context, cli AdminClient, nombre string) (int, error) {
	categorias, err := cli.ListarCategoriasVenta(ctx)
	if err != nil {
		return 0, err
	}
	for _, c := range categorias {
		if mismoNombre(c.Nombre, nombre) {
			return c.ID, nil
		}
	}
	return cli.CrearCategoriaVenta(ctx, nombre)
}

func inferirCategoria(nombre string) string {
	n := strings.ToLower(nombre)
	for categoria, palabras := range categoriaKeywords {
		for _, p := range palabras {
			if strings.Contains(n, p) {
				return categoria
			}
		}
	}
	return categoriaPorDefecto
}

func mismoNombre(a, b string) bool {
	limpiar := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	return limpiar(a) == limpiar(b)
}
