package dto

// LoginRequest credenciales de login contra Tecopos.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
	Region   string `json:"region"` // apidev, api1, api0..api4
}

// LoginResponse resultado del login. Status "ok" cuando el negocio principal
// quedó activo; "seleccion-necesaria" cuando el usuario debe elegir sucursal.
type LoginResponse struct {
	Status              string   `json:"status"`
	Mensaje             string   `json:"mensaje"`
	BusinessID          int      `json:"businessId,omitempty"`
	NegociosDisponibles []string `json:"negocios_disponibles,omitempty"`
	SessionToken        string   `json:"session_token"`
}

// SeleccionNegocioRequest selección de sucursal por nombre.
type SeleccionNegocioRequest struct {
	NombreNegocio string `json:"nombre_negocio"`
}

// SeleccionNegocioResponse confirmación de la sucursal activa.
type SeleccionNegocioResponse struct {
	Status     string `json:"status"`
	Mensaje    string `json:"mensaje"`
	BusinessID int    `json:"businessId"`
}
