package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"wacblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogController(t *testing.T) {
	app := setupTestApp(t)
	c := app.client()

	t.Run("categories", func(t *testing.T) {
		w := c.do(http.MethodGet, "/api/categories", "")
		require.Equal(t, http.StatusOK, w.Code)

		var cats []models.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
		require.Len(t, cats, 6)
		assert.Equal(t, models.Category{ID: "vue", Name: "Vue.js", Count: 8, Icon: "bi-bootstrap"}, cats[0])
	})

	t.Run("category posts", func(t *testing.T) {
		w := c.do(http.MethodGet, "/api/categories/vue/posts", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []int{1, 3, 4}, decodePosts(t, w))
	})

	t.Run("empty category", func(t *testing.T) {
		w := c.do(http.MethodGet, "/api/categories/architecture/posts", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("keywords", func(t *testing.T) {
		w := c.do(http.MethodGet, "/api/keywords", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["Vue 3","TypeScript","性能优化","Vite","Pinia","前端框架"]`, w.Body.String())
	})
}

func TestSessionController(t *testing.T) {
	app := setupTestApp(t)
	c := app.client()

	w := c.do(http.MethodGet, "/api/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, c.cookie)

	var state struct {
		ID     string `json:"id"`
		Liked  []int  `json:"liked"`
		Viewed []int  `json:"viewed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, c.cookie.Value, state.ID)
	assert.Empty(t, state.Liked)

	c.do(http.MethodPost, "/api/posts/2/like", "")
	c.do(http.MethodPost, "/api/posts/5/view", "")

	w = c.do(http.MethodGet, "/api/session", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, []int{2}, state.Liked)
	assert.Equal(t, []int{5}, state.Viewed)
	assert.Equal(t, 1, app.sessions.Len())

	t.Run("missing session", func(t *testing.T) {
		w := recordHandler(NewSessionController(nil).Show, newRequestWithVars(http.MethodGet, "/api/session", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
