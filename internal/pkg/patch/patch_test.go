//go:build unit

package patch_test

import (
	"testing"

	"appointment-scheduler/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	date := "2024-03-20"

	assert.Equal(t, "2024-03-20", patch.Coalesce(&date, "2024-03-15"))
	assert.Equal(t, "2024-03-15", patch.Coalesce(nil, "2024-03-15"))
	assert.Equal(t, 50, patch.Coalesce[int](nil, 50))
}
