package server

import (
	"net/http"
	"testing"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialPublicSubmit(t *testing.T) {
	s, app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/testimonials/submit", "", map[string]any{
		"author_name": "Famille Dubois",
		"content":     "A pleasure from start to finish.",
		"rating":      5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Anonymous, no rating.
	resp = doJSON(t, app, http.MethodPost, "/api/testimonials/submit", "", map[string]any{
		"content": "Great communication.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var anon models.Testimonial
	decodeBody(t, resp, &anon)
	assert.Equal(t, "Anonyme", anon.AuthorName)

	// Content is the only required field.
	resp = doJSON(t, app, http.MethodPost, "/api/testimonials/submit", "", map[string]any{
		"author_name": "Silent",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Duplicate content is allowed; testimonials have no unique constraint.
	resp = doJSON(t, app, http.MethodPost, "/api/testimonials/submit", "", map[string]any{
		"content": "Great communication.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&models.Testimonial{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestTestimonialSubmit_Honeypot(t *testing.T) {
	s, app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/testimonials/submit", "", map[string]any{
		"content": "totally real review",
		"subject": "filled by a bot",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var fake models.Testimonial
	decodeBody(t, resp, &fake)
	assert.NotZero(t, fake.ID)
	assert.False(t, fake.CreatedAt.IsZero())

	var count int64
	require.NoError(t, s.db.Model(&models.Testimonial{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTestimonialAdminLifecycle(t *testing.T) {
	s, app, _ := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/testimonials", admin, map[string]any{
		"author_name": "B. Martin",
		"content":     "Initial text",
		"rating":      4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Testimonial
	decodeBody(t, resp, &created)

	// Partial update: rating only.
	resp = doJSON(t, app, http.MethodPut, "/api/testimonials/"+itoa(created.ID), admin, map[string]any{
		"rating": 5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Testimonial
	decodeBody(t, resp, &updated)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "Initial text", updated.Content)
	assert.Equal(t, "B. Martin", updated.AuthorName)

	resp = doJSON(t, app, http.MethodDelete, "/api/testimonials/"+itoa(created.ID), admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/testimonials/"+itoa(created.ID), admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTestimonials_ListNewestFirst(t *testing.T) {
	_, app, _ := newTestServer(t)

	for _, content := range []string{"first", "second", "third"} {
		resp := doJSON(t, app, http.MethodPost, "/api/testimonials/submit", "", map[string]any{
			"content": content,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/testimonials", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var testimonials []models.Testimonial
	decodeBody(t, resp, &testimonials)
	require.Len(t, testimonials, 3)
	assert.Equal(t, "third", testimonials[0].Content)
}
