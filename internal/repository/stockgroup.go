package repository

import (
	"context"
	"fmt"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository/dao"
)

var (
	ErrGroupNameExists = dao.ErrGroupNameExists
	ErrGroupNotFound   = dao.ErrGroupNotFound
	ErrStockNotInGroup = dao.ErrStockNotInGroup
)

type StockGroupDAO interface {
	Insert(ctx context.Context, group dao.StockGroup) (dao.StockGroup, error)
	FindAll(ctx context.Context) ([]dao.StockGroup, error)
	FindByID(ctx context.Context, id uint) (dao.StockGroup, error)
	FindByName(ctx context.Context, name string) (dao.StockGroup, error)
	FindByMemberID(ctx context.Context, memberID uint) ([]dao.StockGroup, error)
	Update(ctx context.Context, group dao.StockGroup) (dao.StockGroup, error)
	Delete(ctx context.Context, id uint) error
	AddStock(ctx context.Context, groupID, stockID uint) (dao.StockGroup, error)
	RemoveStock(ctx context.Context, groupID, stockID uint) (dao.StockGroup, error)
}

type StockGroupRepository struct {
	dao StockGroupDAO
}

func NewStockGroupRepository(dao StockGroupDAO) *StockGroupRepository {
	return &StockGroupRepository{
		dao: dao,
	}
}

func (r *StockGroupRepository) Create(ctx context.Context, group domain.StockGroup) (domain.StockGroup, error) {
	created, err := r.dao.Insert(ctx, dao.StockGroup{
		Name:        group.Name,
		Description: group.Description,
		MemberID:    group.MemberID,
	})
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StockGroupRepository) FindAll(ctx context.Context) ([]domain.StockGroup, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *StockGroupRepository) FindByID(ctx context.Context, id uint) (domain.StockGroup, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StockGroupRepository) FindByName(ctx context.Context, name string) (domain.StockGroup, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StockGroupRepository) FindByMemberID(ctx context.Context, memberID uint) ([]domain.StockGroup, error) {
	found, err := r.dao.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMemberID -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *StockGroupRepository) Update(ctx context.Context, group domain.StockGroup) (domain.StockGroup, error) {
	updated, err := r.dao.Update(ctx, dao.StockGroup{
		ID:           group.ID,
		Name:         group.Name,
		Description:  group.Description,
		MemberID:     group.MemberID,
		CreationDate: group.CreationDate,
	})
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StockGroupRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *StockGroupRepository) AddStock(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
	updated, err := r.dao.AddStock(ctx, groupID, stockID)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("r.dao.AddStock -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StockGroupRepository) RemoveStock(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
	updated, err := r.dao.RemoveStock(ctx, groupID, stockID)
	if err != nil {
		return domain.StockGroup{}, fmt.Errorf("r.dao.RemoveStock -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StockGroupRepository) daoToDomain(g dao.StockGroup) domain.StockGroup {
	stocks := make([]domain.Stock, 0, len(g.Stocks))
	for _, s := range g.Stocks {
		stocks = append(stocks, domain.Stock{
			ID:          s.ID,
			Code:        s.Code,
			Name:        s.Name,
			Industry:    s.Industry,
			LastUpdated: s.LastUpdated,
		})
	}

	return domain.StockGroup{
		ID:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		MemberID:        g.MemberID,
		Stocks:          stocks,
		CreationDate:    g.CreationDate,
		LastUpdatedDate: g.LastUpdatedDate,
	}
}

func (r *StockGroupRepository) daoToDomainSlice(found []dao.StockGroup) []domain.StockGroup {
	groups := make([]domain.StockGroup, 0, len(found))
	for _, g := range found {
		groups = append(groups, r.daoToDomain(g))
	}

	return groups
}
