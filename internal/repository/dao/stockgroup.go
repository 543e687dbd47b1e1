package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGroupNameExists = errors.New("stock group with the same name already exists")
	ErrGroupNotFound   = errors.New("stock group not found")
	ErrStockNotInGroup = errors.New("stock is not in the stock group")
)

type StockGroup struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"size:100;unique;not null"`
	Description string `gorm:"size:500"`

	MemberID uint    `gorm:"not null"`
	Stocks   []Stock `gorm:"many2many:stock_group_stocks;constraint:OnDelete:CASCADE"`

	CreationDate    time.Time `gorm:"not null;autoCreateTime"`
	LastUpdatedDate time.Time `gorm:"not null;autoUpdateTime"`
}

type StockGroupDAO struct {
	db *gorm.DB
}

func NewStockGroupDAO(db *gorm.DB) *StockGroupDAO {
	return &StockGroupDAO{
		db: db,
	}
}

func (d *StockGroupDAO) Insert(ctx context.Context, group StockGroup) (StockGroup, error) {
	result := d.db.WithContext(ctx).Omit("Stocks").Create(&group)
	if result.Error != nil {
		if isGroupNameViolation(result.Error) {
			return StockGroup{}, ErrGroupNameExists
		}

		return StockGroup{}, result.Error
	}

	return group, nil
}

func (d *StockGroupDAO) FindAll(ctx context.Context) ([]StockGroup, error) {
	var groups []StockGroup

	result := d.db.WithContext(ctx).Preload("Stocks").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}

func (d *StockGroupDAO) FindByID(ctx context.Context, id uint) (StockGroup, error) {
	var group StockGroup

	result := d.db.WithContext(ctx).Preload("Stocks").First(&group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StockGroup{}, ErrGroupNotFound
		}

		return StockGroup{}, result.Error
	}

	return group, nil
}

func (d *StockGroupDAO) FindByName(ctx context.Context, name string) (StockGroup, error) {
	var group StockGroup

	result := d.db.WithContext(ctx).Preload("Stocks").First(&group, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StockGroup{}, ErrGroupNotFound
		}

		return StockGroup{}, result.Error
	}

	return group, nil
}

func (d *StockGroupDAO) FindByMemberID(ctx context.Context, memberID uint) ([]StockGroup, error) {
	var groups []StockGroup

	result := d.db.WithContext(ctx).Preload("Stocks").Where("member_id = ?", memberID).Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}

func (d *StockGroupDAO) Update(ctx context.Context, group StockGroup) (StockGroup, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Save(&group)
	if result.Error != nil {
		if isGroupNameViolation(result.Error) {
			return StockGroup{}, ErrGroupNameExists
		}

		return StockGroup{}, result.Error
	}

	return group, nil
}

func (d *StockGroupDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group := StockGroup{ID: id}
		if err := tx.Model(&group).Association("Stocks").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&StockGroup{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}

		return nil
	})
}

// AddStock inserts the (group, stock) pair into the join table.
// Appending a stock already in the group is a no-op.
func (d *StockGroupDAO) AddStock(ctx context.Context, groupID, stockID uint) (StockGroup, error) {
	group, err := d.FindByID(ctx, groupID)
	if err != nil {
		return StockGroup{}, err
	}

	var stock Stock
	result := d.db.WithContext(ctx).First(&stock, stockID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StockGroup{}, ErrStockNotFound
		}

		return StockGroup{}, result.Error
	}

	if err = d.db.WithContext(ctx).Model(&group).Association("Stocks").Append(&stock); err != nil {
		return StockGroup{}, err
	}

	if err = d.touch(ctx, groupID); err != nil {
		return StockGroup{}, err
	}

	return d.FindByID(ctx, groupID)
}

func (d *StockGroupDAO) RemoveStock(ctx context.Context, groupID, stockID uint) (StockGroup, error) {
	group, err := d.FindByID(ctx, groupID)
	if err != nil {
		return StockGroup{}, err
	}

	var stock Stock
	result := d.db.WithContext(ctx).First(&stock, stockID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StockGroup{}, ErrStockNotFound
		}

		return StockGroup{}, result.Error
	}

	present := false
	for i := range group.Stocks {
		if group.Stocks[i].ID == stockID {
			present = true
			break
		}
	}
	if !present {
		return StockGroup{}, ErrStockNotInGroup
	}

	if err = d.db.WithContext(ctx).Model(&group).Association("Stocks").Delete(&stock); err != nil {
		return StockGroup{}, err
	}

	if err = d.touch(ctx, groupID); err != nil {
		return StockGroup{}, err
	}

	return d.FindByID(ctx, groupID)
}

// touch refreshes last_updated_date after a membership change, which
// only writes the join table and would otherwise leave the group row intact.
func (d *StockGroupDAO) touch(ctx context.Context, groupID uint) error {
	return d.db.WithContext(ctx).
		Model(&StockGroup{ID: groupID}).
		Update("last_updated_date", time.Now()).Error
}

func isGroupNameViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `unique constraint "uni_stock_groups_name"`)
}
