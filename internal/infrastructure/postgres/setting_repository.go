package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcaicedo/facturas-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository sobre PostgreSQL.
// Maneja su propia transacción en Upsert, por eso recibe el pool y no un Querier.
type SettingRepo struct {
	pool *pgxpool.Pool
}

// NewSettingRepository construye el adaptador de configuración.
func NewSettingRepository(pool *pgxpool.Pool) *SettingRepo {
	return &SettingRepo{pool: pool}
}

// GetAll devuelve toda la configuración como mapa clave -> valor.
func (r *SettingRepo) GetAll() (map[string]string, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT config_key, config_value FROM configuration`)
	if err != nil {
		return nil, fmt.Errorf("list configuration: %w", err)
	}
	defer rows.Close()
	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan configuration: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// Upsert inserta o actualiza las claves recibidas en una sola transacción.
func (r *SettingRepo) Upsert(values map[string]string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO configuration (config_key, config_value)
		VALUES ($1, $2)
		ON CONFLICT (config_key) DO UPDATE SET config_value = EXCLUDED.config_value`
	for key, value := range values {
		if _, err := tx.Exec(ctx, query, key, value); err != nil {
			return fmt.Errorf("upsert configuration %s: %w", key, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
