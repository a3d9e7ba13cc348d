package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunci-cimahi/service-booking/internal/domain"
)

func validFields() Fields {
	return Fields{
		Title:         "Duplikat Kunci Motor",
		Description:   "Pembuatan kunci motor baru di tempat",
		Price:         35000,
		EstimatedTime: "15-30 menit",
		Category:      CategoryMotor,
		Icon:          "key",
	}
}

func TestNew(t *testing.T) {
	svc, err := New(validFields())
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", svc.ID.String())
	assert.Equal(t, "Duplikat Kunci Motor", svc.Title)
	assert.Equal(t, int64(35000), svc.Price)
	assert.Equal(t, CategoryMotor, svc.Category)
	assert.False(t, svc.CreatedAt.IsZero())
}

func TestNew_OptionalFieldsMayBeEmpty(t *testing.T) {
	f := validFields()
	f.Description = ""
	f.Icon = ""

	_, err := New(f)
	assert.NoError(t, err)
}

func TestFieldsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
	}{
		{"missing title", func(f *Fields) { f.Title = "" }},
		{"negative price", func(f *Fields) { f.Price = -1 }},
		{"missing estimated time", func(f *Fields) { f.EstimatedTime = "" }},
		{"unknown category", func(f *Fields) { f.Category = "helikopter" }},
		{"empty category", func(f *Fields) { f.Category = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			err := f.Validate()
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range []Category{CategoryMotor, CategoryMobil, CategoryRumah, CategoryBrankas, CategoryLainnya} {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, Category("sepeda").IsValid())
}

func TestApply(t *testing.T) {
	svc, err := New(validFields())
	require.NoError(t, err)

	updated := validFields()
	updated.Title = "Buka Brankas"
	updated.Category = CategoryBrankas
	updated.Price = 250000
	require.NoError(t, svc.Apply(updated))

	assert.Equal(t, "Buka Brankas", svc.Title)
	assert.Equal(t, CategoryBrankas, svc.Category)
	assert.Equal(t, int64(250000), svc.Price)
}

func TestApply_RejectsInvalidFields(t *testing.T) {
	svc, err := New(validFields())
	require.NoError(t, err)

	bad := validFields()
	bad.Title = ""
	require.Error(t, svc.Apply(bad))

	// Entry untouched after rejection.
	assert.Equal(t, "Duplikat Kunci Motor", svc.Title)
}
