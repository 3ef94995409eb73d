package dto

import "github.com/shopspring/decimal"

// CambioMonedaRequest petición de cambio masivo de moneda. Sin confirmar se
// ejecuta en modo simulación; con SystemPriceID en cero se devuelven los
// sistemas de precio disponibles.
type CambioMonedaRequest struct {
	MonedaActual  string `json:"moneda_actual"`
	MonedaDeseada string `json:"moneda_deseada"`
	SystemPriceID int    `json:"system_price_id"`
	Confirmar     bool   `json:"confirmar"`
}

// ProductoCandidato producto que cambiaría de moneda (modo simulación).
type ProductoCandidato struct {
	ID            int             `json:"id"`
	Nombre        string          `json:"nombre"`
	SystemPriceID int             `json:"systemPriceId"`
	Price         decimal.Decimal `json:"price"`
	CodeCurrency  string          `json:"codeCurrency"`
}

// CambioMonedaResponse resultado del cambio de moneda en cualquiera de sus modos.
type CambioMonedaResponse struct {
	Status                string              `json:"status"`
	Mensaje               string              `json:"mensaje"`
	SistemasDisponibles   []string            `json:"sistemas_disponibles,omitempty"`
	ProductosParaCambiar  []ProductoCandidato `json:"productos_para_cambiar,omitempty"`
	ProductosActualizados []string            `json:"productos_actualizados,omitempty"`
}
