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
	ErrMemberExists   = errors.New("member with the same phone number or national ID already exists")
	ErrMemberNotFound = errors.New("member not found")
)

type Member struct {
	ID uint `gorm:"primaryKey"`

	Name             string `gorm:"size:100;not null"`
	PhoneNumber      string `gorm:"size:10;unique;not null"`
	NationalIDNumber string `gorm:"size:10;unique;not null"`
	DateOfBirth      *time.Time
	Email            string `gorm:"size:255;not null"`
	PasswordHash     string `gorm:"size:255;not null"`
	Gender           string `gorm:"size:10"`
	Address          string `gorm:"size:255"`

	RegistrationDate time.Time `gorm:"not null;autoCreateTime"`
	LastLoginDate    *time.Time
	IsActive         bool   `gorm:"not null;default:true"`
	Role             string `gorm:"size:50;not null;default:member"`

	StockGroups []StockGroup `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) Insert(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		if isMemberUniqueViolation(result.Error) {
			return Member{}, ErrMemberExists
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindAll(ctx context.Context) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *MemberDAO) FindByID(ctx context.Context, id uint) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

// FindByEmail returns the lowest-id member carrying the email.
// Email carries no unique constraint, so more rows may exist.
func (d *MemberDAO) FindByEmail(ctx context.Context, email string) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindByPhoneNumber(ctx context.Context, phoneNumber string) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "phone_number = ?", phoneNumber)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindByNationalIDNumber(ctx context.Context, nationalIDNumber string) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "national_id_number = ?", nationalIDNumber)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) Update(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Omit("StockGroups").Save(&member)
	if result.Error != nil {
		if isMemberUniqueViolation(result.Error) {
			return Member{}, ErrMemberExists
		}

		return Member{}, result.Error
	}

	return member, nil
}

// Delete removes the member together with its stock groups and their
// join rows. Group membership rows are cleared explicitly so the delete
// does not depend on DB-level cascade configuration.
func (d *MemberDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groups []StockGroup
		if err := tx.Where("member_id = ?", id).Find(&groups).Error; err != nil {
			return err
		}

		for i := range groups {
			if err := tx.Model(&groups[i]).Association("Stocks").Clear(); err != nil {
				return err
			}
		}

		if len(groups) > 0 {
			if err := tx.Where("member_id = ?", id).Delete(&StockGroup{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&Member{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMemberNotFound
		}

		return nil
	})
}

func isMemberUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		(strings.Contains(pgErr.Message, `unique constraint "uni_members_phone_number"`) ||
			strings.Contains(pgErr.Message, `unique constraint "uni_members_national_id_number"`))
}
