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

type propertyService struct {
	client *api.Client
}

func NewPropertyService(client *api.Client) IPropertyService {
	return &propertyService{client: client}
}

func (s *propertyService) List(ctx context.Context, locale string, filter model.PropertyFilter) (*model.PropertyList, error) {
	if err := validateInput(filter); err != nil {
		return nil, err
	}

	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.CategoryID > 0 {
		query.Set("categoryId", strconv.Itoa(filter.CategoryID))
	}

	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   propertiesPath(locale),
		Query:  query,
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("fetch properties", err)
	}

	properties, pagination, err := decodePropertyList(resp.Body)
	if err != nil {
		return nil, wrap("fetch properties", err)
	}
	return &model.PropertyList{Properties: properties, Pagination: pagination}, nil
}

func (s *propertyService) Get(ctx context.Context, locale string, id int) (*model.Property, error) {
	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   propertyPath(locale, id),
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("fetch property", err)
	}
	return decodeProperty(resp, "fetch property")
}

// Create sends the multipart form assembled by the caller (fields plus
// images/floorplans) to the locale-scoped create endpoint.
func (s *propertyService) Create(ctx context.Context, locale string, form *api.Form) (*model.Property, error) {
	resp, err := s.client.Upload(ctx, propertiesPath(locale), form)
	if err != nil {
		return nil, wrap("create property", err)
	}
	return decodeProperty(resp, "create property")
}

func (s *propertyService) Update(ctx context.Context, locale string, id int, input model.UpdatePropertyInput) (*model.Property, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodPut,
		Path:   propertyPath(locale, id),
		Body:   input,
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("update property", err)
	}
	return decodeProperty(resp, "update property")
}

func (s *propertyService) Delete(ctx context.Context, locale string, id int) error {
	_, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodDelete,
		Path:   propertyPath(locale, id),
		Locale: locale,
	})
	if err != nil {
		return wrap("delete property", err)
	}
	return nil
}

// UpdateState is a status-only partial update against the /state endpoint.
func (s *propertyService) UpdateState(ctx context.Context, locale string, id int, status model.PropertyStatus) (*model.Property, error) {
	if err := validateInput(struct {
		Status model.PropertyStatus `validate:"required,oneof=ACTIVE SOLD RENT"`
	}{status}); err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodPatch,
		Path:   propertyStatePath(locale, id),
		Body:   map[string]model.PropertyStatus{"status": status},
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("update property state", err)
	}
	return decodeProperty(resp, "update property state")
}

func (s *propertyService) Top(ctx context.Context, locale string, limit int) ([]model.Property, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("sort", "rating")

	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   propertiesPath(locale),
		Query:  query,
		Locale: locale,
	})
	if err != nil {
		return nil, wrap("fetch top properties", err)
	}
	properties, _, err := decodePropertyList(resp.Body)
	if err != nil {
		return nil, wrap("fetch top properties", err)
	}
	return properties, nil
}

func (s *propertyService) Stats(ctx context.Context) (*model.PropertyStats, error) {
	resp, err := s.client.Get(ctx, propertyStatsPath(), nil)
	if err != nil {
		return nil, wrap("fetch property stats", err)
	}
	var stats model.PropertyStats
	if err := resp.JSON(&stats); err != nil {
		return nil, wrap("fetch property stats", err)
	}
	return &stats, nil
}

func (s *propertyService) CategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	resp, err := s.client.Get(ctx, propertyCategoryStatsPath(), nil)
	if err != nil {
		return nil, wrap("fetch category stats", err)
	}
	var stats []model.CategoryStats
	if err := resp.JSON(&stats); err != nil {
		return nil, wrap("fetch category stats", err)
	}
	return stats, nil
}

func (s *propertyService) VideoTours(ctx context.Context) ([]model.Property, error) {
	resp, err := s.client.Get(ctx, propertyVideoToursPath(), nil)
	if err != nil {
		return nil, wrap("fetch video tours", err)
	}
	properties, _, err := decodePropertyList(resp.Body)
	if err != nil {
		return nil, wrap("fetch video tours", err)
	}
	return properties, nil
}

func (s *propertyService) CreateExternal(ctx context.Context, input model.CreatePropertyInput) (*model.Property, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Post(ctx, propertyExternalPath(), input)
	if err != nil {
		return nil, wrap("create external property", err)
	}
	return decodeProperty(resp, "create external property")
}

func (s *propertyService) SyncFiles(ctx context.Context, id int) (*model.Property, error) {
	resp, err := s.client.Put(ctx, propertySyncPath(id), nil)
	if err != nil {
		return nil, wrap("sync property files", err)
	}
	return decodeProperty(resp, "sync property files")
}

func (s *propertyService) Translate(ctx context.Context, id int, input model.TranslationInput) (*model.TranslationResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Post(ctx, propertyTranslatePath(id), input)
	if err != nil {
		return nil, wrap("translate property", err)
	}
	var result model.TranslationResult
	if err := resp.JSON(&result); err != nil {
		return nil, wrap("translate property", err)
	}
	return &result, nil
}

func decodeProperty(resp *api.Response, op string) (*model.Property, error) {
	var property model.Property
	if err := resp.JSON(&property); err != nil {
		return nil, wrap(op, err)
	}
	return transformProperty(&property), nil
}

func decodePropertyList(body []byte) ([]model.Property, model.Pagination, error) {
	items, pagination, err := splitList(body, "properties")
	if err != nil {
		return nil, model.Pagination{}, err
	}
	var properties []model.Property
	if err := json.Unmarshal(items, &properties); err != nil {
		return nil, model.Pagination{}, err
	}
	if pagination == nil {
		pg := model.SinglePage(len(properties))
		pagination = &pg
	}
	return transformProperties(properties), *pagination, nil
}
