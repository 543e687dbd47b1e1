package service

import (
	"context"
	"fmt"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository"
)

var (
	ErrMemberExists   = repository.ErrMemberExists
	ErrMemberNotFound = repository.ErrMemberNotFound
)

type MemberRepository interface {
	Create(ctx context.Context, member domain.Member) (domain.Member, error)
	FindAll(ctx context.Context) ([]domain.Member, error)
	FindByID(ctx context.Context, id uint) (domain.Member, error)
	FindByEmail(ctx context.Context, email string) (domain.Member, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (domain.Member, error)
	FindByNationalIDNumber(ctx context.Context, nationalIDNumber string) (domain.Member, error)
	Update(ctx context.Context, member domain.Member) (domain.Member, error)
	Delete(ctx context.Context, id uint) error
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

func (s *MemberService) GetAllMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return members, nil
}

func (s *MemberService) GetMember(ctx context.Context, id uint) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return member, nil
}

func (s *MemberService) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	member, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return member, nil
}

func (s *MemberService) GetMemberByPhoneNumber(ctx context.Context, phoneNumber string) (domain.Member, error) {
	member, err := s.repo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByPhoneNumber -> %w", err)
	}

	return member, nil
}

func (s *MemberService) GetMemberByNationalIDNumber(ctx context.Context, nationalIDNumber string) (domain.Member, error) {
	member, err := s.repo.FindByNationalIDNumber(ctx, nationalIDNumber)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByNationalIDNumber -> %w", err)
	}

	return member, nil
}

// CreateMember persists without a uniqueness pre-check; the store's
// unique constraints on phone number and national ID surface as
// ErrMemberExists.
func (s *MemberService) CreateMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateMember overwrites every mutable field from patch. The password
// hash is excluded; credentials change through a separate reset flow.
func (s *MemberService) UpdateMember(ctx context.Context, id uint, patch domain.Member) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	member.Name = patch.Name
	member.PhoneNumber = patch.PhoneNumber
	member.NationalIDNumber = patch.NationalIDNumber
	member.DateOfBirth = patch.DateOfBirth
	member.Email = patch.Email
	member.Gender = patch.Gender
	member.Address = patch.Address
	member.LastLoginDate = patch.LastLoginDate
	member.IsActive = patch.IsActive
	member.Role = patch.Role

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
