package rendimiento

import (
	"fmt"
	"strings"
	"time"
)

const formatoFecha = "2006-01-02"

// Granularidades de agrupación de la serie temporal.
const (
	GranularidadDia    = "DIA"
	GranularidadSemana = "SEMANA"
	GranularidadMes    = "MES"
)

// zonaNegocio zona horaria de referencia para "hoy" cuando no llegan fechas.
var zonaNegocio = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

func parseFecha(s string) (time.Time, error) {
	t, err := time.Parse(formatoFecha, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q (se espera YYYY-MM-DD)", s)
	}
	return t, nil
}

func hoy() string {
	return time.Now().In(zonaNegocio).Format(formatoFecha)
}

// normalizarGranularidad deja DIA como valor por defecto ante entradas desconocidas.
func normalizarGranularidad(g string) string {
	switch strings.ToUpper(strings.TrimSpace(g)) {
	case GranularidadSemana:
		return GranularidadSemana
	case GranularidadMes:
		return GranularidadMes
	default:
		return GranularidadDia
	}
}

// ventana rango inclusivo de fechas de un chunk.
type ventana struct {
	desde time.Time
	hasta time.Time
}

// ventanas parte el rango [desde, hasta] en ventanas consecutivas de a lo sumo
// chunkDays días. Un rango de 65 días con chunks de 30 produce 30+30+5.
func ventanas(desde, hasta time.Time, chunkDays int) []ventana {
	if chunkDays <= 0 {
		chunkDays = 30
	}
	var vs []ventana
	for cur := desde; !cur.After(hasta); {
		fin := cur.AddDate(0, 0, chunkDays-1)
		if fin.After(hasta) {
			fin = hasta
		}
		vs = append(vs, ventana{desde: cur, hasta: fin})
		cur = fin.AddDate(0, 0, 1)
	}
	return vs
}

// layouts ISO aceptados para el createdAt del upstream, en orden de intento.
var layoutsCreadoEn = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// claveBucket deriva la clave de agrupación del timestamp según granularidad:
// DIA -> YYYY-MM-DD, SEMANA -> YYYY-Www (semana ISO), MES -> YYYY-MM.
func claveBucket(creadoEn, granularidad string) string {
	ts, ok := parseCreadoEn(creadoEn)
	if !ok {
		// último recurso: el prefijo de fecha tal cual llegó
		if len(creadoEn) >= 10 {
			creadoEn = creadoEn[:10]
		}
		ts, ok = parseCreadoEn(creadoEn)
		if !ok {
			return creadoEn
		}
	}
	switch granularidad {
	case GranularidadSemana:
		year, week := ts.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case GranularidadMes:
		return ts.Format("2006-01")
	default:
		return ts.Format(formatoFecha)
	}
}

func parseCreadoEn(s string) (time.Time, bool) {
	for _, layout := range layoutsCreadoEn {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	if ts, err := time.Parse(formatoFecha, s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
