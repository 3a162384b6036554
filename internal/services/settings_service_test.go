package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

func TestSettingsService_CreatesDocumentWithDefaults(t *testing.T) {
	repo := repositories.NewMockSettingsRepository()
	service := services.NewSettingsService(repo)

	// Empty table: the first read materialises the row with the defaults.
	ds, err := service.DeliverySettings()
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultDeliverySettings(), ds)

	stored, err := repo.Get()
	assert.NoError(t, err)
	assert.Contains(t, stored.Data, models.SectionDelivery)

	// Document materialises all known sections in one row.
	doc, err := service.Document()
	assert.NoError(t, err)
	assert.Contains(t, doc.Data, models.SectionDelivery)
	assert.Contains(t, doc.Data, models.SectionSupport)
}

func TestSettingsService_PatchesMissingSection(t *testing.T) {
	repo := repositories.NewMockSettingsRepository()
	service := services.NewSettingsService(repo)

	// A row that predates the support section.
	assert.NoError(t, repo.Save(&models.Settings{
		Data: map[string]any{
			models.SectionDelivery: map[string]any{
				"fee":        25.0,
				"free_above": 300.0,
			},
		},
	}))

	ss, err := service.SupportSettings()
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultSupportSettings(), ss)

	// The patched section is persisted and the existing one untouched.
	stored, err := repo.Get()
	assert.NoError(t, err)
	assert.Contains(t, stored.Data, models.SectionSupport)

	ds, err := service.DeliverySettings()
	assert.NoError(t, err)
	assert.InDelta(t, 25.0, ds.Fee, 0.001)
	assert.InDelta(t, 300.0, ds.FreeAbove, 0.001)
}

func TestSettingsService_ExistingSectionNotOverwritten(t *testing.T) {
	repo := repositories.NewMockSettingsRepository()
	service := services.NewSettingsService(repo)

	first, err := service.DeliverySettings()
	assert.NoError(t, err)

	// A second read must not re-save the defaults over the stored data.
	stored, err := repo.Get()
	assert.NoError(t, err)
	stored.Data[models.SectionDelivery].(map[string]any)["fee"] = 99.0
	assert.NoError(t, repo.Save(stored))

	second, err := service.DeliverySettings()
	assert.NoError(t, err)
	assert.NotEqual(t, first.Fee, second.Fee)
	assert.InDelta(t, 99.0, second.Fee, 0.001)
}

func TestSettingsService_AdminWrite(t *testing.T) {
	repo := repositories.NewMockSettingsRepository()
	service := services.NewSettingsService(repo)

	data := map[string]any{
		models.SectionDelivery: map[string]any{"fee": 10.0, "free_above": 200.0},
		"announcements":        []any{"weekend sale"},
	}

	// No row yet: the write creates one.
	doc, err := service.AdminWrite(data)
	assert.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, data, doc.Data)

	// A second write replaces the document wholesale under the same row.
	replacement := map[string]any{"announcements": []any{}}
	doc2, err := service.AdminWrite(replacement)
	assert.NoError(t, err)
	assert.Equal(t, doc.ID, doc2.ID)
	assert.Equal(t, replacement, doc2.Data)
	assert.NotContains(t, doc2.Data, models.SectionDelivery)
}
