// Package settings maneja la configuración clave/valor de la aplicación.
// El core de facturación solo consume tax_percent (vía billing.Params en el
// arranque); el resto son datos opacos de presentación.
package settings

import "github.com/jcaicedo/facturas-api/internal/domain/repository"

// AllowedKeys claves aceptadas en el upsert; cualquier otra se ignora.
var AllowedKeys = []string{"company_name", "default_currency", "company_date", "tax_percent"}

// UseCase lectura y actualización de la configuración.
type UseCase struct {
	repo repository.SettingRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SettingRepository) *UseCase {
	return &UseCase{repo: repo}
}

// GetAll devuelve toda la configuración como mapa clave -> valor.
func (uc *UseCase) GetAll() (map[string]string, error) {
	return uc.repo.GetAll()
}

// Upsert inserta o actualiza las claves permitidas del mapa recibido, todas en
// una sola transacción. Las claves fuera del allow-list se descartan en silencio.
func (uc *UseCase) Upsert(values map[string]string) error {
	filtered := make(map[string]string, len(AllowedKeys))
	for _, key := range AllowedKeys {
		if value, ok := values[key]; ok {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return uc.repo.Upsert(filtered)
}
