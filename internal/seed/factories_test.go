package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMedia_MatchesGalleryShape(t *testing.T) {
	f := NewFactory(nil)

	media := f.buildMedia(20)
	require.Len(t, media, 20)

	for _, item := range media {
		// Galleries only ever hold images, same as the admin UI produces.
		assert.Equal(t, "image", item.Type)
		assert.True(t, strings.HasPrefix(item.URL, "https://"))
	}
}
