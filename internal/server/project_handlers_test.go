package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCRUD(t *testing.T) {
	s, app, _ := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/projects", admin, map[string]any{
		"title":       "Hillside Residence",
		"description": "A terraced family home.",
		"category":    "residential",
		"location":    "Annecy, France",
		"year":        "2021-2023",
		"media": []map[string]string{
			{"url": "https://img.test/1.jpg", "type": "image"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Project
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "2021-2023", created.Year)
	require.Len(t, created.Media, 1)

	// Read back
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Duplicate title is a conflict
	resp = doJSON(t, app, http.MethodPost, "/api/projects", admin, map[string]any{
		"title": "Hillside Residence",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var conflictBody map[string]any
	decodeBody(t, resp, &conflictBody)
	assert.Equal(t, "CONFLICT", conflictBody["code"])

	// Delete
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), admin, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Deleting again is a 404
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), admin, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectCreate_Validation(t *testing.T) {
	s, app, _ := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/projects", admin, map[string]any{
		"description": "no title",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProjectUpdate_PartialLeavesOmittedFieldsUntouched(t *testing.T) {
	s, app, _ := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/projects", admin, map[string]any{
		"title":       "Harbor Offices",
		"description": "Original description",
		"category":    "commercial",
		"location":    "Lyon",
		"year":        "2020",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Project
	decodeBody(t, resp, &created)

	// Only the location changes.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), admin, map[string]any{
		"location": "Marseille",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Project
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Marseille", updated.Location)
	assert.Equal(t, "Harbor Offices", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, "commercial", updated.Category)
	assert.Equal(t, "2020", updated.Year)
}

func TestProjectUpdate_NotFoundAndDuplicateRename(t *testing.T) {
	s, app, _ := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	resp := doJSON(t, app, http.MethodPut, "/api/projects/9999", admin, map[string]any{
		"title": "Ghost",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	for _, title := range []string{"Alpha", "Beta"} {
		resp = doJSON(t, app, http.MethodPost, "/api/projects", admin, map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	var beta models.Project
	decodeBody(t, resp, &beta)

	// Renaming Beta onto Alpha's title trips the unique constraint.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/projects/%d", beta.ID), admin, map[string]any{
		"title": "Alpha",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProjects_ListOrderingAndPublicAccess(t *testing.T) {
	s, app, _ := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	for _, title := range []string{"Zenith Tower", "Atrium House", "Meridian Hall"} {
		resp := doJSON(t, app, http.MethodPost, "/api/projects", admin, map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// No token needed for reads.
	resp := doJSON(t, app, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []models.Project
	decodeBody(t, resp, &projects)
	require.Len(t, projects, 3)
	assert.Equal(t, "Atrium House", projects[0].Title)
	assert.Equal(t, "Meridian Hall", projects[1].Title)
	assert.Equal(t, "Zenith Tower", projects[2].Title)
}

func TestProjectMutations_RequireAdmin(t *testing.T) {
	s, app, _ := newTestServer(t)
	user := tokenFor(t, s, models.RoleUser)

	body := map[string]any{"title": "Nope"}

	resp := doJSON(t, app, http.MethodPost, "/api/projects", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/projects", user, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/projects/1", user, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
