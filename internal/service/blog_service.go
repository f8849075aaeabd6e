package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

type blogService struct {
	client *api.Client
}

func NewBlogService(client *api.Client) IBlogService {
	return &blogService{client: client}
}

func (s *blogService) List(ctx context.Context, locale string, page, limit, truncate int) (*model.BlogList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if truncate > 0 {
		query.Set("truncate", strconv.Itoa(truncate))
	}

	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   blogsPath(locale),
		Query:  query,
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("fetch blogs", err)
	}

	items, pagination, err := splitList(resp.Body, "blogs")
	if err != nil {
		return nil, wrap("fetch blogs", err)
	}
	var blogs []model.Blog
	if err := json.Unmarshal(items, &blogs); err != nil {
		return nil, wrap("fetch blogs", err)
	}
	if pagination == nil {
		pg := model.SinglePage(len(blogs))
		pagination = &pg
	}
	return &model.BlogList{Blogs: transformBlogs(blogs), Pagination: *pagination}, nil
}

func (s *blogService) GetBySlug(ctx context.Context, locale, slug string) (*model.Blog, error) {
	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   blogPath(locale, slug),
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("fetch blog", err)
	}
	return decodeBlog(resp, "fetch blog")
}

func (s *blogService) Create(ctx context.Context, locale string, form *api.Form) (*model.Blog, error) {
	resp, err := s.client.Upload(ctx, blogsPath(locale), form)
	if err != nil {
		return nil, wrap("create blog", err)
	}
	return decodeBlog(resp, "create blog")
}

func (s *blogService) Update(ctx context.Context, locale string, id int, input model.UpdateBlogInput) (*model.Blog, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodPut,
		Path:   blogByIDPath(locale, id),
		Body:   input,
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("update blog", err)
	}
	return decodeBlog(resp, "update blog")
}

func (s *blogService) Delete(ctx context.Context, locale string, id int) error {
	_, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodDelete,
		Path:   blogByIDPath(locale, id),
		Locale: locale,
	})
	if err != nil {
		return wrap("delete blog", err)
	}
	return nil
}

func (s *blogService) Translate(ctx context.Context, locale string, id int, input model.TranslationInput) (*model.TranslationResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodPost,
		Path:   blogTranslatePath(locale, id),
		Body:   input,
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("translate blog", err)
	}
	var result model.TranslationResult
	if err := resp.JSON(&result); err != nil {
		return nil, wrap("translate blog", err)
	}
	return &result, nil
}

// Languages lists the content languages available for a blog. The path
// segment is the viewing language, not the routing locale, so a caller
// browsing the dashboard in Czech can still inspect the English rendition.
func (s *blogService) Languages(ctx context.Context, language string, id int) (*model.BlogLanguages, error) {
	resp, err := s.client.Get(ctx, blogLanguagesPath(language, id), nil)
	if err != nil {
		return nil, wrap("fetch blog languages", err)
	}
	var languages model.BlogLanguages
	if err := resp.JSON(&languages); err != nil {
		return nil, wrap("fetch blog languages", err)
	}
	return &languages, nil
}

func decodeBlog(resp *api.Response, op string) (*model.Blog, error) {
	var blog model.Blog
	if err := resp.JSON(&blog); err != nil {
		return nil, wrap(op, err)
	}
	return transformBlog(&blog), nil
}
