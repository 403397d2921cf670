package utils_test

import (
	"testing"

	"github.com/LudNieto/ecommerce-go/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := utils.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)

	assert.NoError(t, utils.ComparePassword("secret", hashed))
	assert.Error(t, utils.ComparePassword("not-the-secret", hashed))
}
