package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcaicedo/facturas-api/internal/application/settings"
)

type recordingSettingRepo struct {
	values  map[string]string
	upserts []map[string]string
}

func (r *recordingSettingRepo) GetAll() (map[string]string, error) {
	return r.values, nil
}

func (r *recordingSettingRepo) Upsert(values map[string]string) error {
	r.upserts = append(r.upserts, values)
	return nil
}

func TestUpsert_FiltraClavesPermitidas(t *testing.T) {
	repo := &recordingSettingRepo{}
	uc := settings.NewUseCase(repo)

	err := uc.Upsert(map[string]string{
		"company_name":     "Acme Ltda",
		"default_currency": "EUR",
		"drop_tables":      "sí", // fuera del allow-list, se descarta
	})
	require.NoError(t, err)

	require.Len(t, repo.upserts, 1, "todas las claves válidas van en una sola llamada")
	assert.Equal(t, map[string]string{
		"company_name":     "Acme Ltda",
		"default_currency": "EUR",
	}, repo.upserts[0])
}

// Si ninguna clave sobrevive al filtro no se toca el repositorio.
func TestUpsert_SinClavesValidas(t *testing.T) {
	repo := &recordingSettingRepo{}
	uc := settings.NewUseCase(repo)

	err := uc.Upsert(map[string]string{"unknown": "x"})
	require.NoError(t, err)
	assert.Empty(t, repo.upserts)

	err = uc.Upsert(nil)
	require.NoError(t, err)
	assert.Empty(t, repo.upserts)
}

func TestGetAll(t *testing.T) {
	repo := &recordingSettingRepo{values: map[string]string{
		"company_name": "Acme Ltda",
		"tax_percent":  "10",
	}}
	uc := settings.NewUseCase(repo)

	got, err := uc.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "10", got["tax_percent"])
}
