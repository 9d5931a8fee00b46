package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceSet(t *testing.T) {
	t.Run("explicit types", func(t *testing.T) {
		set := resourceSet([]string{ResourceImage, ResourceFont})

		assert.Contains(t, set, ResourceImage)
		assert.Contains(t, set, ResourceFont)
		assert.NotContains(t, set, ResourceDocument)
	})

	t.Run("empty input falls back to the light preset", func(t *testing.T) {
		set := resourceSet(nil)

		assert.Len(t, set, len(LightBlockPreset))
		for _, rt := range LightBlockPreset {
			assert.Contains(t, set, rt)
		}
		assert.NotContains(t, set, ResourceScript)
		assert.NotContains(t, set, ResourceXHR)
	})
}
