package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository"
)

var (
	ErrGroupNameExists = repository.ErrGroupNameExists
	ErrGroupNotFound   = repository.ErrGroupNotFound
	ErrStockNotInGroup = repository.ErrStockNotInGroup
)

type StockGroupRepository interface {
	Create(ctx context.Context, group domain.StockGroup) (domain.StockGroup, error)
	FindAll(ctx context.Context) ([]domain.StockGroup, error)
	FindByID(ctx context.Context, id uint) (domain.StockGroup, error)
	FindByName(ctx context.Context, name string) (domain.StockGroup, error)
	FindByMemberID(ctx context.Context, memberID uint) ([]domain.StockGroup, error)
	Update(ctx context.Context, group domain.StockGroup) (domain.StockGroup, error)
	Delete(ctx context.Context, id uint) error
	AddStock(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error)
	RemoveStock(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error)
}

// GroupMemberRepository and GroupStockRepository are the slices of the
// member and stock repositories the group service needs to resolve
// foreign keys.
type GroupMemberRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Member, error)
}

type GroupStockRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Stock, error)
}

type StockGroupService struct {
	repo       StockGroupRepository
	memberRepo GroupMemberRepository
	stockRepo  GroupStockRepository
}

func NewStockGroupService(repo StockGroupRepository, memberRepo GroupMemberRepository, stockRepo GroupStockRepository) *StockGroupService {
	return &StockGroupService{
		repo:       repo,
		memberRepo: memberRepo,
		stockRepo:  stockRepo,
	}
}

func (s *StockGroupService) GetAllStockGroups(ctx context.Context) ([]domain.StockGroup, error) {
	groups, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return groups, nil
}

func (s *StockGroupService) GetStockGroup(ctx context.Context, id uint) (domain.StockGroup, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return group, nil
}

func (s *StockGroupService) GetStockGroupByName(ctx context.Context, name string) (domain.StockGroup, error) {
	group, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	return group, nil
}

// GetStockGroupsByMember fails with ErrMemberNotFound when the member
// does not exist; a member with no groups yields an empty slice.
func (s *StockGroupService) GetStockGroupsByMember(ctx context.Context, memberID uint) ([]domain.StockGroup, error) {
	if _, err := s.memberRepo.FindByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("s.memberRepo.FindByID -> %w", err)
	}

	groups, err := s.repo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMemberID -> %w", err)
	}

	return groups, nil
}

// CreateStockGroup attaches the group to an existing member. Group
// names are unique across all members.
func (s *StockGroupService) CreateStockGroup(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error) {
	if err := s.checkNameExists(ctx, group.Name, 0); err != nil {
		return domain.StockGroup{}, err
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.memberRepo.FindByID -> %w", err)
	}

	group.MemberID = member.ID

	created, err := s.repo.Create(ctx, group)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StockGroupService) UpdateStockGroup(ctx context.Context, id uint, patch domain.StockGroup) (domain.StockGroup, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.checkNameExists(ctx, patch.Name, id); err != nil {
		return domain.StockGroup{}, err
	}

	group.Name = patch.Name
	group.Description = patch.Description

	updated, err := s.repo.Update(ctx, group)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StockGroupService) DeleteStockGroup(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// AddStockToGroup is idempotent: adding a stock already in the group
// leaves the set unchanged and succeeds.
func (s *StockGroupService) AddStockToGroup(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if _, err := s.stockRepo.FindByID(ctx, stockID); err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.stockRepo.FindByID -> %w", err)
	}

	updated, err := s.repo.AddStock(ctx, groupID, stockID)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.AddStock -> %w", err)
	}

	return updated, nil
}

// RemoveStockFromGroup fails with ErrStockNotInGroup when the pair is
// not currently associated.
func (s *StockGroupService) RemoveStockFromGroup(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if _, err := s.stockRepo.FindByID(ctx, stockID); err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.stockRepo.FindByID -> %w", err)
	}

	updated, err := s.repo.RemoveStock(ctx, groupID, stockID)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("s.repo.RemoveStock -> %w", err)
	}

	return updated, nil
}

func (s *StockGroupService) checkNameExists(ctx context.Context, name string, selfID uint) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil {
		if existing.ID != selfID {
			return ErrGroupNameExists
		}

		return nil
	}
	if !errors.Is(err, ErrGroupNotFound) {
		return fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	return nil
}
