package rendimiento

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tecobot/tecopos-api/internal/application/dto"
	"github.com/tecobot/tecopos-api/internal/domain"
	"github.com/tecobot/tecopos-api/internal/domain/entity"
)

const intentDescomposicion = "rendimiento_descomposicion"

// quitarAcentos descompone a NFD, elimina las marcas diacríticas y recompone.
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar minúsculas, sin acentos y con espacios colapsados.
func normalizar(s string) string {
	limpio, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		limpio = s
	}
	return strings.Join(strings.Fields(strings.ToLower(limpio)), " ")
}

// areaResuelta resultado de la resolución: o un área concreta, o una pregunta
// de desambiguación para el asistente.
type areaResuelta struct {
	ID       int
	Nombre   string
	Pregunta *dto.PreguntaAsistente
}

// resolverArea resuelve el área objetivo a partir de id explícito o nombre
// libre. Con id se intenta resolver el nombre (mejor esfuerzo). Con nombre se
// aplica coincidencia exacta normalizada, luego prefijo, luego substring; una
// única candidata se auto-selecciona, varias producen una pregunta, ninguna es
// error. Sin id ni nombre, el modo asistente devuelve hasta 15 opciones.
func resolverArea(ctx context.Context, cli Client, areaID int, areaNombre string, modoAsistente bool) (*areaResuelta, error) {
	if areaID > 0 {
		resultado := &areaResuelta{ID: areaID}
		// nombre informativo; un fallo aquí no invalida el id
		if areas, err := cli.ListarAreasStock(ctx); err == nil {
			for _, a := range areas {
				if a.ID == areaID {
					resultado.Nombre = a.Nombre
					break
				}
			}
		}
		return resultado, nil
	}

	if strings.TrimSpace(areaNombre) != "" {
		areas, err := cli.ListarAreasStock(ctx)
		if err != nil {
			return nil, err
		}
		return buscarPorNombre(areas, areaNombre)
	}

	if modoAsistente {
		opciones := make([]dto.OpcionArea, 0, 15)
		if areas, err := cli.ListarAreasStock(ctx); err == nil {
			for _, a := range areas {
				if len(opciones) == 15 {
					break
				}
				opciones = append(opciones, dto.OpcionArea{ID: a.ID, Nombre: a.Nombre})
			}
		}
		return &areaResuelta{Pregunta: &dto.PreguntaAsistente{
			Status:  "ask",
			Intent:  intentDescomposicion,
			Prompt:  "¿Sobre qué área quieres calcular el rendimiento de descomposición?",
			Missing: []string{"area_id o area_nombre"},
			Options: opciones,
		}}, nil
	}

	return nil, fmt.Errorf("%w: debes enviar 'area_id' o 'area_nombre'", domain.ErrEntradaInvalida)
}

func buscarPorNombre(areas []entity.Area, nombre string) (*areaResuelta, error) {
	objetivo := normalizar(nombre)

	var exactas, prefijos, substrings []entity.Area
	for _, a := range areas {
		n := normalizar(a.Nombre)
		switch {
		case n == objetivo:
			exactas = append(exactas, a)
		case strings.HasPrefix(n, objetivo):
			prefijos = append(prefijos, a)
		case strings.Contains(n, objetivo):
			substrings = append(substrings, a)
		}
	}

	if len(exactas) == 1 {
		return &areaResuelta{ID: exactas[0].ID, Nombre: exactas[0].Nombre}, nil
	}
	if len(exactas) > 1 {
		return preguntaCandidatas(nombre, exactas), nil
	}

	// prefijos primero, substrings después, sin duplicados por id
	candidatas := make([]entity.Area, 0, len(prefijos)+len(substrings))
	vistas := make(map[int]bool)
	for _, a := range append(prefijos, substrings...) {
		if vistas[a.ID] {
			continue
		}
		vistas[a.ID] = true
		candidatas = append(candidatas, a)
	}

	switch len(candidatas) {
	case 0:
		return nil, fmt.Errorf("%w: área %q", domain.ErrAreaNoEncontrada, nombre)
	case 1:
		return &areaResuelta{ID: candidatas[0].ID, Nombre: candidatas[0].Nombre}, nil
	default:
		return preguntaCandidatas(nombre, candidatas), nil
	}
}

func preguntaCandidatas(nombre string, candidatas []entity.Area) *areaResuelta {
	if len(candidatas) > 10 {
		candidatas = candidatas[:10]
	}
	opciones := make([]dto.OpcionArea, 0, len(candidatas))
	for _, a := range candidatas {
		opciones = append(opciones, dto.OpcionArea{ID: a.ID, Nombre: a.Nombre})
	}
	return &areaResuelta{Pregunta: &dto.PreguntaAsistente{
		Status:  "ask",
		Intent:  intentDescomposicion,
		Prompt:  fmt.Sprintf("Tu búsqueda coincide con varias áreas parecidas a '%s'. Elige una:", nombre),
		Missing: []string{"area_id o area_nombre"},
		Options: opciones,
	}}
}
