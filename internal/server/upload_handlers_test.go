package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(token, filename string, body []byte) *http.Request {
	path := "/api/upload"
	if filename != "" {
		path += "?filename=" + filename
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "image/png")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestUploadFile(t *testing.T) {
	s, app, store := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	resp, err := app.Test(uploadRequest(admin, "render.png", []byte("png bytes")), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body["url"])
	assert.True(t, strings.HasPrefix(body["url"], store.BaseURL+"/uploads/"), body["url"])
	assert.True(t, strings.HasSuffix(body["url"], "-render.png"), body["url"])

	keys := store.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, []byte("png bytes"), store.Objects[keys[0]])
	assert.Equal(t, "image/png", store.Types[keys[0]])
}

func TestUploadFile_Validation(t *testing.T) {
	s, app, store := newTestServer(t)
	admin := tokenFor(t, s, models.RoleAdmin)

	resp, err := app.Test(uploadRequest(admin, "", []byte("data")), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(uploadRequest(admin, "empty.bin", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, store.Keys())
}

func TestUploadFile_AdminOnly(t *testing.T) {
	s, app, store := newTestServer(t)
	user := tokenFor(t, s, models.RoleUser)

	resp, err := app.Test(uploadRequest("", "x.png", []byte("data")), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(uploadRequest(user, "x.png", []byte("data")), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	assert.Empty(t, store.Keys())
}
