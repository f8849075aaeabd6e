package service

import (
	"context"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

type contactService struct {
	client *api.Client
}

func NewContactService(client *api.Client) IContactService {
	return &contactService{client: client}
}

func (s *contactService) Submit(ctx context.Context, input model.ContactFormInput) (*model.ContactFormSubmission, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Post(ctx, contactFormPath(), input)
	if err != nil {
		return nil, wrap("submit contact form", err)
	}
	var submission model.ContactFormSubmission
	if err := resp.JSON(&submission); err != nil {
		return nil, wrap("submit contact form", err)
	}
	return &submission, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactFormSubmission, error) {
	resp, err := s.client.Get(ctx, contactFormPath(), nil)
	if err != nil {
		return nil, wrap("fetch contact form submissions", err)
	}
	var submissions []model.ContactFormSubmission
	if err := resp.JSON(&submissions); err != nil {
		return nil, wrap("fetch contact form submissions", err)
	}
	return submissions, nil
}
