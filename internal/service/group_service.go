package service

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/d60-Lab/timeline-service/internal/model"
	"github.com/d60-Lab/timeline-service/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// GroupService 分组创建与查询；slug 唯一性在创建时强制
type GroupService interface {
	Create(ctx context.Context, title, slug, description string) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) Create(ctx context.Context, title, slug, description string) (*model.Group, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > model.MaxGroupTitleLen {
		return nil, ErrTitleTooLong
	}
	if !slugPattern.MatchString(slug) {
		return nil, ErrValidation
	}
	taken, err := s.groupRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}
	g := &model.Group{Title: title, Slug: slug, Description: description}
	if err := s.groupRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}
