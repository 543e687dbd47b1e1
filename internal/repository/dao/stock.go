package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrStockCodeExists = errors.New("stock with the same code already exists")
	ErrStockNotFound   = errors.New("stock not found")
)

type Stock struct {
	ID uint `gorm:"primaryKey"`

	Code     string `gorm:"size:10;unique;not null"`
	Name     string `gorm:"size:100;not null"`
	Industry string `gorm:"size:100"`

	LastUpdated time.Time `gorm:"not null;autoUpdateTime"`
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

func (d *StockDAO) Insert(ctx context.Context, stock Stock) (Stock, error) {
	result := d.db.WithContext(ctx).Create(&stock)
	if result.Error != nil {
		if isStockCodeViolation(result.Error) {
			return Stock{}, ErrStockCodeExists
		}

		return Stock{}, result.Error
	}

	return stock, nil
}

func (d *StockDAO) FindAll(ctx context.Context) ([]Stock, error) {
	var stocks []Stock

	result := d.db.WithContext(ctx).Find(&stocks)
	if result.Error != nil {
		return nil, result.Error
	}

	return stocks, nil
}

func (d *StockDAO) FindByID(ctx context.Context, id uint) (Stock, error) {
	var stock Stock

	result := d.db.WithContext(ctx).First(&stock, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stock{}, ErrStockNotFound
		}

		return Stock{}, result.Error
	}

	return stock, nil
}

func (d *StockDAO) FindByCode(ctx context.Context, code string) (Stock, error) {
	var stock Stock

	result := d.db.WithContext(ctx).First(&stock, "code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stock{}, ErrStockNotFound
		}

		return Stock{}, result.Error
	}

	return stock, nil
}

func (d *StockDAO) Update(ctx context.Context, stock Stock) (Stock, error) {
	result := d.db.WithContext(ctx).Save(&stock)
	if result.Error != nil {
		if isStockCodeViolation(result.Error) {
			return Stock{}, ErrStockCodeExists
		}

		return Stock{}, result.Error
	}

	return stock, nil
}

func (d *StockDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Stock{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStockNotFound
	}

	return nil
}

func isStockCodeViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `unique constraint "uni_stocks_code"`)
}
