package repository

// SettingRepository define el puerto de persistencia para la configuración
// clave/valor de la aplicación.
type SettingRepository interface {
	GetAll() (map[string]string, error)
	// Upsert inserta o actualiza las claves recibidas (ON CONFLICT DO UPDATE)
	// en una sola transacción.
	Upsert(values map[string]string) error
}
