package repository

import (
	"context"
	"fmt"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository/dao"
)

var (
	ErrMemberExists   = dao.ErrMemberExists
	ErrMemberNotFound = dao.ErrMemberNotFound
)

type MemberDAO interface {
	Insert(ctx context.Context, member dao.Member) (dao.Member, error)
	FindAll(ctx context.Context) ([]dao.Member, error)
	FindByID(ctx context.Context, id uint) (dao.Member, error)
	FindByEmail(ctx context.Context, email string) (dao.Member, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (dao.Member, error)
	FindByNationalIDNumber(ctx context.Context, nationalIDNumber string) (dao.Member, error)
	Update(ctx context.Context, member dao.Member) (dao.Member, error)
	Delete(ctx context.Context, id uint) error
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(member))
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]domain.Member, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	members := make([]domain.Member, 0, len(found))
	for _, m := range found {
		members = append(members, r.daoToDomain(m))
	}

	return members, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (domain.Member, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (domain.Member, error) {
	found, err := r.dao.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByPhoneNumber -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByNationalIDNumber(ctx context.Context, nationalIDNumber string) (domain.Member, error) {
	found, err := r.dao.FindByNationalIDNumber(ctx, nationalIDNumber)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByNationalIDNumber -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) Update(ctx context.Context, member domain.Member) (domain.Member, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(member))
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *MemberRepository) daoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:               m.ID,
		Name:             m.Name,
		PhoneNumber:      m.PhoneNumber,
		NationalIDNumber: m.NationalIDNumber,
		DateOfBirth:      m.DateOfBirth,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		Gender:           m.Gender,
		Address:          m.Address,
		RegistrationDate: m.RegistrationDate,
		LastLoginDate:    m.LastLoginDate,
		IsActive:         m.IsActive,
		Role:             m.Role,
	}
}

func (r *MemberRepository) domainToDAO(m domain.Member) dao.Member {
	return dao.Member{
		ID:               m.ID,
		Name:             m.Name,
		PhoneNumber:      m.PhoneNumber,
		NationalIDNumber: m.NationalIDNumber,
		DateOfBirth:      m.DateOfBirth,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		Gender:           m.Gender,
		Address:          m.Address,
		RegistrationDate: m.RegistrationDate,
		LastLoginDate:    m.LastLoginDate,
		IsActive:         m.IsActive,
		Role:             m.Role,
	}
}
