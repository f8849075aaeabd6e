package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

func TestBlogList(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Get("/{locale}/blogs", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "en", chi.URLParam(req, "locale"))
			assert.Equal(t, "2", req.URL.Query().Get("page"))
			assert.Equal(t, "6", req.URL.Query().Get("limit"))
			assert.Equal(t, "150", req.URL.Query().Get("truncate"))
			writeJSON(t, w, `{
				"blogs": [{"id":1,"name":"Market update","slug":"market-update"}],
				"pagination": {"total":7,"page":2,"limit":6,"totalPages":2}
			}`)
		})
	})

	list, err := services.Blogs.List(context.Background(), "en", 2, 6, 150)
	require.NoError(t, err)
	require.Len(t, list.Blogs, 1)
	assert.Equal(t, model.Pagination{Total: 7, Page: 2, Limit: 6, TotalPages: 2}, list.Pagination)

	// Absent collections come back as empty slices, not nil.
	assert.NotNil(t, list.Blogs[0].Pictures)
	assert.NotNil(t, list.Blogs[0].Tags)
	assert.NotNil(t, list.Blogs[0].Translations)
}

func TestBlogListBareArray(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Get("/{locale}/blogs", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, `[{"id":1,"name":"A"},{"id":2,"name":"B"}]`)
		})
	})

	list, err := services.Blogs.List(context.Background(), "en", 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list.Blogs, 2)
	// Single page synthesized from the item count.
	assert.Equal(t, model.SinglePage(2), list.Pagination)
}

func TestBlogListDataEnvelope(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Get("/{locale}/blogs", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, `{"data":{
				"blogs": [{"id":3,"name":"Wrapped"}],
				"pagination": {"total":1,"page":1,"limit":12,"totalPages":1}
			}}`)
		})
	})

	list, err := services.Blogs.List(context.Background(), "en", 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, list.Blogs, 1)
	assert.Equal(t, "Wrapped", list.Blogs[0].Name)
	assert.Equal(t, 1, list.Pagination.Total)
}

func TestBlogGetBySlug(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Get("/{locale}/blogs/{slug}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "cs", chi.URLParam(req, "locale"))
			assert.Equal(t, "market-update", chi.URLParam(req, "slug"))
			writeJSON(t, w, `{"id":1,"name":"Market update","slug":"market-update","tags":["prague"]}`)
		})
	})

	blog, err := services.Blogs.GetBySlug(context.Background(), "cs", "market-update")
	require.NoError(t, err)
	assert.Equal(t, "market-update", blog.Slug)
	assert.Equal(t, []string{"prague"}, blog.Tags)
	assert.NotNil(t, blog.Pictures)
}

func TestBlogCreateMultipart(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Post("/{locale}/blogs", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, req.ParseMultipartForm(1<<20))
			assert.Equal(t, "New listing tips", req.FormValue("name"))

			file, header, err := req.FormFile("pictures")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "cover.png", header.Filename)

			writeJSON(t, w, `{"id":4,"name":"New listing tips","slug":"new-listing-tips"}`)
		})
	})

	form := api.NewForm().
		AddField("name", "New listing tips").
		AddFile("pictures", "cover.png", strings.NewReader("png-bytes"))

	blog, err := services.Blogs.Create(context.Background(), "en", form)
	require.NoError(t, err)
	assert.Equal(t, 4, blog.ID)
}

func TestBlogUpdate(t *testing.T) {
	name := "Renamed post"
	services := newTestServices(t, func(r chi.Router) {
		r.Put("/{locale}/blogs/{id}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "4", chi.URLParam(req, "id"))
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"name":"Renamed post"}`, string(body))
			writeJSON(t, w, `{"id":4,"name":"Renamed post","slug":"renamed-post"}`)
		})
	})

	blog, err := services.Blogs.Update(context.Background(), "en", 4, model.UpdateBlogInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed post", blog.Name)
}

func TestBlogDelete(t *testing.T) {
	var deleted bool
	services := newTestServices(t, func(r chi.Router) {
		r.Delete("/{locale}/blogs/{id}", func(w http.ResponseWriter, req *http.Request) {
			deleted = true
			writeJSON(t, w, `{}`)
		})
	})

	require.NoError(t, services.Blogs.Delete(context.Background(), "en", 4))
	assert.True(t, deleted)
}

func TestBlogTranslate(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Post("/{locale}/blogs/{id}/translate", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "en", chi.URLParam(req, "locale"))
			assert.Equal(t, "3", chi.URLParam(req, "id"))

			var input model.TranslationInput
			require.NoError(t, json.NewDecoder(req.Body).Decode(&input))
			assert.Equal(t, "cs", input.TargetLanguage)
			assert.Equal(t, "en", input.SourceLanguage)

			writeJSON(t, w, `{"id":3,"targetLanguage":"cs","translatedContent":{"name":"Novinky z trhu"},"createdAt":"2025-06-01T12:00:00Z"}`)
		})
	})

	result, err := services.Blogs.Translate(context.Background(), "en", 3, model.TranslationInput{
		TargetLanguage: "cs",
		SourceLanguage: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs", result.TargetLanguage)
}

// The languages listing is addressed by viewing language, which is not the
// locale the rest of the session runs under.
func TestBlogLanguagesUsesViewingLanguage(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Get("/{language}/blogs/{id}/languages", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "de", chi.URLParam(req, "language"))
			assert.Equal(t, "9", chi.URLParam(req, "id"))
			writeJSON(t, w, `{
				"blogId": 9,
				"blogName": "Market update",
				"languages": ["en","cs","de"],
				"originalLanguage": "en",
				"translatedLanguages": ["cs","de"]
			}`)
		})
	})

	languages, err := services.Blogs.Languages(context.Background(), "de", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, languages.BlogID)
	assert.Equal(t, "en", languages.OriginalLanguage)
	assert.Equal(t, []string{"cs", "de"}, languages.TranslatedLanguages)
}
