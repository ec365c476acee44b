package controllers

import (
	"html/template"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageControllerHome(t *testing.T) {
	app := setupTestApp(t)
	c := app.client()

	w := c.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "精选文章")
	assert.Contains(t, body, "探索Vue 3中的组合式API")
	assert.Contains(t, body, "Vue.js")
	assert.Contains(t, body, "性能优化")

	t.Run("search", func(t *testing.T) {
		w := c.do(http.MethodGet, "/?q=pinia", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "使用Pinia进行Vue状态管理")
		assert.NotContains(t, w.Body.String(), "Vite入门")
	})

	t.Run("search without results", func(t *testing.T) {
		w := c.do(http.MethodGet, "/?q=golang", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "没有找到相关文章")
	})

	t.Run("category", func(t *testing.T) {
		w := c.do(http.MethodGet, "/?category=tools", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Vite入门")
		assert.NotContains(t, w.Body.String(), "使用Pinia进行Vue状态管理")
	})
}

func TestPageControllerPost(t *testing.T) {
	app := setupTestApp(t)
	c := app.client()

	w := c.do(http.MethodGet, "/post/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "探索Vue 3中的组合式API")
	assert.Contains(t, w.Body.String(), "2346 阅读")

	// The second visit from the same browser does not count again.
	w = c.do(http.MethodGet, "/post/1", "")
	assert.Contains(t, w.Body.String(), "2346 阅读")

	t.Run("unknown post", func(t *testing.T) {
		w := c.do(http.MethodGet, "/post/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "文章不存在")
	})

	t.Run("without a session nothing is counted", func(t *testing.T) {
		pc := NewPageController(app.store, app.pages(t), nil)
		w := recordHandler(pc.Post, newRequestWithVars(http.MethodGet, "/post/1", map[string]string{"id": "1"}))
		require.Equal(t, http.StatusOK, w.Code)

		post, _, err := app.store.Post(1)
		require.NoError(t, err)
		assert.Equal(t, 2346, post.Views)
	})
}

func TestPageControllerAbout(t *testing.T) {
	w := setupTestApp(t).client().do(http.MethodGet, "/about", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "共有 6 篇文章，6 个分类")
}

func TestPageControllerNotFound(t *testing.T) {
	c := setupTestApp(t).client()

	w := c.do(http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "页面不存在")

	w = c.do(http.MethodGet, "/api/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestPageControllerTemplateErrors(t *testing.T) {
	app := setupTestApp(t)
	broken := map[string]*template.Template{
		"about": template.Must(template.New("about").Parse(`{{define "layout"}}{{.Missing}}{{end}}`)),
	}
	pc := NewPageController(app.store, broken, nil)

	w := recordHandler(pc.About, newRequestWithVars(http.MethodGet, "/about", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Template error")

	w = recordHandler(pc.Home, newRequestWithVars(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Template not found: home")
}
