package repository

import (
	"context"
	"fmt"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository/dao"
)

var (
	ErrStockCodeExists = dao.ErrStockCodeExists
	ErrStockNotFound   = dao.ErrStockNotFound
)

type StockDAO interface {
	Insert(ctx context.Context, stock dao.Stock) (dao.Stock, error)
	FindAll(ctx context.Context) ([]dao.Stock, error)
	FindByID(ctx context.Context, id uint) (dao.Stock, error)
	FindByCode(ctx context.Context, code string) (dao.Stock, error)
	Update(ctx context.Context, stock dao.Stock) (dao.Stock, error)
	Delete(ctx context.Context, id uint) error
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) Create(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	created, err := r.dao.Insert(ctx, dao.Stock{
		Code:     stock.Code,
		Name:     stock.Name,
		Industry: stock.Industry,
	})
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StockRepository) FindAll(ctx context.Context) ([]domain.Stock, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stocks := make([]domain.Stock, 0, len(found))
	for _, s := range found {
		stocks = append(stocks, r.daoToDomain(s))
	}

	return stocks, nil
}

func (r *StockRepository) FindByID(ctx context.Context, id uint) (domain.Stock, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StockRepository) FindByCode(ctx context.Context, code string) (domain.Stock, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StockRepository) Update(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	updated, err := r.dao.Update(ctx, dao.Stock{
		ID:       stock.ID,
		Code:     stock.Code,
		Name:     stock.Name,
		Industry: stock.Industry,
	})
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StockRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *StockRepository) daoToDomain(s dao.Stock) domain.Stock {
	return domain.Stock{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Industry:    s.Industry,
		LastUpdated: s.LastUpdated,
	}
}
