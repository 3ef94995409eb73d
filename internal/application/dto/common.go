package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PreguntaAsistente respuesta "ask" del modo asistente: la petición está
// incompleta o es ambigua y el caller debe elegir una opción.
type PreguntaAsistente struct {
	Status  string       `json:"status"` // siempre "ask"
	Intent  string       `json:"intent"`
	Prompt  string       `json:"prompt"`
	Missing []string     `json:"missing"`
	Options []OpcionArea `json:"options"`
}

// OpcionArea opción de área para desambiguar.
type OpcionArea struct {
	ID     int    `json:"id"`
	Nombre string `json:"name"`
}
