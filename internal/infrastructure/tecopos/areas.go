package tecopos

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

type areaItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type pagedAreas struct {
	Items []areaItem `json:"items"`
}

// ListarAreasStock lista todas las áreas de tipo STOCK del negocio,
// paginando hasta la primera página vacía.
func (c *Client) ListarAreasStock(ctx context.Context) ([]entity.Area, error) {
	var areas []entity.Area
	for page := 1; page <= c.maxPages; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("type", "STOCK")

		var out pagedAreas
		if err := c.getJSON(ctx, "/api/v1/administration/area", query, &out); err != nil {
			return nil, err
		}
		if len(out.Items) == 0 {
			break
		}
		for _, it := range out.Items {
			areas = append(areas, entity.Area{ID: it.ID, Nombre: it.Name})
		}
	}
	return areas, nil
}
