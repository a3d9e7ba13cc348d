package testimonial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunci-cimahi/service-booking/internal/domain"
)

func TestNew(t *testing.T) {
	tm, err := New("Siti", "Cimahi Tengah", 5, "Cepat dan rapi", "kunci rumah")
	require.NoError(t, err)

	assert.Equal(t, "Siti", tm.CustomerName)
	assert.Equal(t, 5, tm.Rating)
	assert.True(t, tm.IsActive, "new testimonials are visible by default")
	assert.False(t, tm.CreatedAt.IsZero())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name         string
		customerName string
		rating       int
		comment      string
	}{
		{"missing name", "", 4, "Bagus"},
		{"rating too low", "Siti", 0, "Bagus"},
		{"rating too high", "Siti", 6, "Bagus"},
		{"missing comment", "Siti", 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.customerName, "Cimahi", tt.rating, tt.comment, "kunci motor")
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}
