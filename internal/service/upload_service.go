package service

import (
	"context"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

// Multipart field names the upload endpoints expect.
const (
	fieldImage  = "image"
	fieldImages = "images"
	fieldFile   = "file"
	fieldFiles  = "files"
)

type uploadService struct {
	client *api.Client
}

func NewUploadService(client *api.Client) IUploadService {
	return &uploadService{client: client}
}

func (s *uploadService) Image(ctx context.Context, file Upload) (*model.UploadResult, error) {
	return s.uploadOne(ctx, uploadImagePath(), fieldImage, file, "upload image")
}

func (s *uploadService) Images(ctx context.Context, files []Upload) ([]model.UploadResult, error) {
	return s.uploadMany(ctx, uploadImagesPath(), fieldImages, files, "upload images")
}

func (s *uploadService) File(ctx context.Context, file Upload) (*model.UploadResult, error) {
	return s.uploadOne(ctx, uploadFilePath(), fieldFile, file, "upload file")
}

func (s *uploadService) Files(ctx context.Context, files []Upload) ([]model.UploadResult, error) {
	return s.uploadMany(ctx, uploadFilesPath(), fieldFiles, files, "upload files")
}

func (s *uploadService) uploadOne(ctx context.Context, path, field string, file Upload, op string) (*model.UploadResult, error) {
	form := api.NewForm().AddFile(field, file.Filename, file.Content)
	resp, err := s.client.Upload(ctx, path, form)
	if err != nil {
		return nil, wrap(op, err)
	}
	var result model.UploadResult
	if err := resp.JSON(&result); err != nil {
		return nil, wrap(op, err)
	}
	return &result, nil
}

func (s *uploadService) uploadMany(ctx context.Context, path, field string, files []Upload, op string) ([]model.UploadResult, error) {
	form := api.NewForm()
	for _, file := range files {
		form.AddFile(field, file.Filename, file.Content)
	}
	resp, err := s.client.Upload(ctx, path, form)
	if err != nil {
		return nil, wrap(op, err)
	}
	var results []model.UploadResult
	if err := resp.JSON(&results); err != nil {
		return nil, wrap(op, err)
	}
	return results, nil
}
