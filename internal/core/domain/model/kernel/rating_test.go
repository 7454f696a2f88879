package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	for v := kernel.MinRating; v <= kernel.MaxRating; v++ {
		r, err := kernel.NewRating(v)

		require.NoError(t, err)
		assert.True(t, r.IsSet())
		assert.Equal(t, v, r.Int())
	}

	for _, v := range []int{-1, 0, 6, 10} {
		_, err := kernel.NewRating(v)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "value %d", v)
	}
}

func TestRating_Validate(t *testing.T) {
	var unset kernel.Rating

	assert.False(t, unset.IsSet())
	require.NoError(t, unset.Validate())
	require.ErrorIs(t, kernel.Rating(9).Validate(), errs.ErrValueIsOutOfRange)
}
