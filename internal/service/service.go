// Package service provides the domain façades of the realitypuchyr admin
// client: one stateless service per entity, each translating typed method
// calls into transport client requests against the REST API.
//
// Every call takes an explicit context and, for localized entities, an
// explicit routing locale. There is no ambient locale state. Content
// language (translate/languages operations) is always a separate parameter
// from the routing locale.
package service

import (
	"context"
	"io"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

type IPropertyService interface {
	List(ctx context.Context, locale string, filter model.PropertyFilter) (*model.PropertyList, error)
	Get(ctx context.Context, locale string, id int) (*model.Property, error)
	Create(ctx context.Context, locale string, form *api.Form) (*model.Property, error)
	Update(ctx context.Context, locale string, id int, input model.UpdatePropertyInput) (*model.Property, error)
	Delete(ctx context.Context, locale string, id int) error
	UpdateState(ctx context.Context, locale string, id int, status model.PropertyStatus) (*model.Property, error)
	Top(ctx context.Context, locale string, limit int) ([]model.Property, error)
	Stats(ctx context.Context) (*model.PropertyStats, error)
	CategoryStats(ctx context.Context) ([]model.CategoryStats, error)
	VideoTours(ctx context.Context) ([]model.Property, error)
	CreateExternal(ctx context.Context, input model.CreatePropertyInput) (*model.Property, error)
	SyncFiles(ctx context.Context, id int) (*model.Property, error)
	Translate(ctx context.Context, id int, input model.TranslationInput) (*model.TranslationResult, error)
}

type IBlogService interface {
	List(ctx context.Context, locale string, page, limit, truncate int) (*model.BlogList, error)
	GetBySlug(ctx context.Context, locale, slug string) (*model.Blog, error)
	Create(ctx context.Context, locale string, form *api.Form) (*model.Blog, error)
	Update(ctx context.Context, locale string, id int, input model.UpdateBlogInput) (*model.Blog, error)
	Delete(ctx context.Context, locale string, id int) error
	Translate(ctx context.Context, locale string, id int, input model.TranslationInput) (*model.TranslationResult, error)
	// Languages takes the viewing language, which may differ from the
	// routing locale used by the other operations.
	Languages(ctx context.Context, language string, id int) (*model.BlogLanguages, error)
}

type IReviewService interface {
	List(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, input model.CreateReviewInput) (*model.Review, error)
	Update(ctx context.Context, id int, input model.CreateReviewInput) (*model.Review, error)
	Delete(ctx context.Context, id int) error
}

type IContactService interface {
	Submit(ctx context.Context, input model.ContactFormInput) (*model.ContactFormSubmission, error)
	List(ctx context.Context) ([]model.ContactFormSubmission, error)
}

// Upload is one file handed to the upload service.
type Upload struct {
	Filename string
	Content  io.Reader
}

type IUploadService interface {
	Image(ctx context.Context, file Upload) (*model.UploadResult, error)
	Images(ctx context.Context, files []Upload) ([]model.UploadResult, error)
	File(ctx context.Context, file Upload) (*model.UploadResult, error)
	Files(ctx context.Context, files []Upload) ([]model.UploadResult, error)
}

type IHealthService interface {
	Check(ctx context.Context) (*model.HealthStatus, error)
}

// Services bundles one instance of every domain service over a shared
// transport client.
type Services struct {
	Properties IPropertyService
	Blogs      IBlogService
	Reviews    IReviewService
	Contact    IContactService
	Uploads    IUploadService
	Health     IHealthService
}

func New(client *api.Client) *Services {
	return &Services{
		Properties: NewPropertyService(client),
		Blogs:      NewBlogService(client),
		Reviews:    NewReviewService(client),
		Contact:    NewContactService(client),
		Uploads:    NewUploadService(client),
		Health:     NewHealthService(client),
	}
}
