package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository"
)

var (
	ErrStockCodeExists = repository.ErrStockCodeExists
	ErrStockNotFound   = repository.ErrStockNotFound
)

type StockRepository interface {
	Create(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	FindAll(ctx context.Context) ([]domain.Stock, error)
	FindByID(ctx context.Context, id uint) (domain.Stock, error)
	FindByCode(ctx context.Context, code string) (domain.Stock, error)
	Update(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	Delete(ctx context.Context, id uint) error
}

type StockService struct {
	repo StockRepository
}

func NewStockService(repo StockRepository) *StockService {
	return &StockService{
		repo: repo,
	}
}

func (s *StockService) GetAllStocks(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stocks, nil
}

func (s *StockService) GetStock(ctx context.Context, id uint) (domain.Stock, error) {
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return stock, nil
}

func (s *StockService) GetStockByCode(ctx context.Context, code string) (domain.Stock, error) {
	stock, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	return stock, nil
}

func (s *StockService) CreateStock(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	if err := s.checkCodeExists(ctx, stock.Code, 0); err != nil {
		return domain.Stock{}, err
	}

	created, err := s.repo.Create(ctx, stock)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StockService) UpdateStock(ctx context.Context, id uint, patch domain.Stock) (domain.Stock, error) {
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.checkCodeExists(ctx, patch.Code, id); err != nil {
		return domain.Stock{}, err
	}

	stock.Code = patch.Code
	stock.Name = patch.Name
	stock.Industry = patch.Industry

	updated, err := s.repo.Update(ctx, stock)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StockService) DeleteStock(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// checkCodeExists reports ErrStockCodeExists when another stock already
// carries the code. selfID excludes the record being updated.
func (s *StockService) checkCodeExists(ctx context.Context, code string, selfID uint) error {
	existing, err := s.repo.FindByCode(ctx, code)
	if err == nil {
		if existing.ID != selfID {
			return ErrStockCodeExists
		}

		return nil
	}
	if !errors.Is(err, ErrStockNotFound) {
		return fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	return nil
}
