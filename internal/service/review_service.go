package service

import (
	"context"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

type reviewService struct {
	client *api.Client
}

func NewReviewService(client *api.Client) IReviewService {
	return &reviewService{client: client}
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	resp, err := s.client.Get(ctx, reviewsPath(), nil)
	if err != nil {
		return nil, wrap("fetch reviews", err)
	}
	var reviews []model.Review
	if err := resp.JSON(&reviews); err != nil {
		return nil, wrap("fetch reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) Create(ctx context.Context, input model.CreateReviewInput) (*model.Review, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Post(ctx, reviewsPath(), input)
	if err != nil {
		return nil, wrap("create review", err)
	}
	var review model.Review
	if err := resp.JSON(&review); err != nil {
		return nil, wrap("create review", err)
	}
	return &review, nil
}

func (s *reviewService) Update(ctx context.Context, id int, input model.CreateReviewInput) (*model.Review, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	resp, err := s.client.Put(ctx, reviewPath(id), input)
	if err != nil {
		return nil, wrap("update review", err)
	}
	var review model.Review
	if err := resp.JSON(&review); err != nil {
		return nil, wrap("update review", err)
	}
	return &review, nil
}

func (s *reviewService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.Delete(ctx, reviewPath(id)); err != nil {
		return wrap("delete review", err)
	}
	return nil
}
