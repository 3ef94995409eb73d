package tecopos

import (
	"fmt"
	"strings"

	"github.com/tecobot/tecopos-api/internal/domain"
)

// Regiones válidas: apidev y api0..api4 (api1 es producción).

// BaseURL devuelve la URL base del API para una región.
func BaseURL(region string) (string, error) {
	r := strings.ToLower(strings.TrimSpace(region))
	switch {
	case r == "apidev":
		return "https://apidev.tecopos.com", nil
	case r == "api1":
		return "https://api.tecopos.com", nil
	case esRegionNumerada(r):
		return fmt.Sprintf("https://%s.tecopos.com", r), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrRegionInvalida, region)
}

// OriginURL devuelve el origen que esperan los headers del API por región.
func OriginURL(region string) (string, error) {
	r := strings.ToLower(strings.TrimSpace(region))
	switch {
	case r == "apidev":
		return "https://admindev.tecopos.com", nil
	case r == "api1" || esRegionNumerada(r):
		return "https://admin.tecopos.com", nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrRegionInvalida, region)
}

func esRegionNumerada(r string) bool {
	for i := 0; i <= 4; i++ {
		if r == fmt.Sprintf("api%d", i) {
			return true
		}
	}
	return false
}
