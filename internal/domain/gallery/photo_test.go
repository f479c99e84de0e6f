//go:build unit

package gallery_test

import (
	"testing"
	"time"

	"eventora/internal/domain/gallery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoto(t *testing.T) {
	providerID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("trims the url", func(t *testing.T) {
		p, err := gallery.NewPhoto(providerID, "  https://cdn.example.com/a.jpg  ", nil, 0, now)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.jpg", p.URL())
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := gallery.NewPhoto(providerID, "   ", nil, 0, now)
		require.ErrorIs(t, err, gallery.ErrEmptyURL)
	})
}

func TestPhoto_ApplyUpdate(t *testing.T) {
	providerID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	desc := "Montaje principal"

	p, err := gallery.NewPhoto(providerID, "https://cdn.example.com/a.jpg", &desc, 1, now)
	require.NoError(t, err)

	t.Run("nil fields keep current values", func(t *testing.T) {
		p.ApplyUpdate(nil, nil)
		assert.Equal(t, &desc, p.Description())
		assert.Equal(t, int32(1), p.OrderIndex())
	})

	t.Run("set fields overwrite", func(t *testing.T) {
		newDesc := "Vista nocturna"
		newIndex := int32(0)
		p.ApplyUpdate(&newDesc, &newIndex)
		assert.Equal(t, "Vista nocturna", *p.Description())
		assert.Equal(t, int32(0), p.OrderIndex())
	})
}
