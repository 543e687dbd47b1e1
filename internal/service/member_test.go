package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
)

type mockMemberRepo struct {
	CreateFunc                 func(ctx context.Context, member domain.Member) (domain.Member, error)
	FindAllFunc                func(ctx context.Context) ([]domain.Member, error)
	FindByIDFunc               func(ctx context.Context, id uint) (domain.Member, error)
	FindByEmailFunc            func(ctx context.Context, email string) (domain.Member, error)
	FindByPhoneNumberFunc      func(ctx context.Context, phoneNumber string) (domain.Member, error)
	FindByNationalIDNumberFunc func(ctx context.Context, nationalIDNumber string) (domain.Member, error)
	UpdateFunc                 func(ctx context.Context, member domain.Member) (domain.Member, error)
	DeleteFunc                 func(ctx context.Context, id uint) error
}

func (m *mockMemberRepo) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	return m.CreateFunc(ctx, member)
}

func (m *mockMemberRepo) FindAll(ctx context.Context) ([]domain.Member, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id uint) (domain.Member, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockMemberRepo) FindByEmail(ctx context.Context, email string) (domain.Member, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockMemberRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (domain.Member, error) {
	return m.FindByPhoneNumberFunc(ctx, phoneNumber)
}

func (m *mockMemberRepo) FindByNationalIDNumber(ctx context.Context, nationalIDNumber string) (domain.Member, error) {
	return m.FindByNationalIDNumberFunc(ctx, nationalIDNumber)
}

func (m *mockMemberRepo) Update(ctx context.Context, member domain.Member) (domain.Member, error) {
	return m.UpdateFunc(ctx, member)
}

func (m *mockMemberRepo) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func TestMemberService_GetAllMembers(t *testing.T) {
	want := []domain.Member{
		{ID: 1, Name: "Chen Wei-Ling"},
		{ID: 2, Name: "Lin Yu-Hsuan"},
	}
	svc := NewMemberService(&mockMemberRepo{
		FindAllFunc: func(ctx context.Context) ([]domain.Member, error) {
			return want, nil
		},
	})

	got, err := svc.GetAllMembers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemberService_GetMember_NotFound(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{
		FindByIDFunc: func(ctx context.Context, id uint) (domain.Member, error) {
			return domain.Member{}, ErrMemberNotFound
		},
	})

	_, err := svc.GetMember(context.Background(), 42)

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberService_GetMemberByEmail(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (domain.Member, error) {
			assert.Equal(t, "weiling@example.com", email)
			return domain.Member{ID: 7, Email: email}, nil
		},
	})

	got, err := svc.GetMemberByEmail(context.Background(), "weiling@example.com")

	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
}

func TestMemberService_CreateMember(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{
		CreateFunc: func(ctx context.Context, member domain.Member) (domain.Member, error) {
			member.ID = 3
			return member, nil
		},
	})

	got, err := svc.CreateMember(context.Background(), domain.Member{
		Name:             "Chen Wei-Ling",
		PhoneNumber:      "0912345678",
		NationalIDNumber: "A123456789",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)
}

func TestMemberService_CreateMember_Duplicate(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{
		CreateFunc: func(ctx context.Context, member domain.Member) (domain.Member, error) {
			return domain.Member{}, ErrMemberExists
		},
	})

	_, err := svc.CreateMember(context.Background(), domain.Member{PhoneNumber: "0912345678"})

	assert.ErrorIs(t, err, ErrMemberExists)
}

func TestMemberService_UpdateMember(t *testing.T) {
	lastLogin := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	existing := domain.Member{
		ID:           5,
		Name:         "Chen Wei-Ling",
		PhoneNumber:  "0912345678",
		PasswordHash: "original-hash",
		IsActive:     true,
	}

	var saved domain.Member
	svc := NewMemberService(&mockMemberRepo{
		FindByIDFunc: func(ctx context.Context, id uint) (domain.Member, error) {
			assert.Equal(t, uint(5), id)
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, member domain.Member) (domain.Member, error) {
			saved = member
			return member, nil
		},
	})

	got, err := svc.UpdateMember(context.Background(), 5, domain.Member{
		Name:          "Chen Wei-Ling",
		PhoneNumber:   "0987654321",
		PasswordHash:  "attacker-controlled",
		LastLoginDate: &lastLogin,
		IsActive:      false,
		Role:          "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "0987654321", saved.PhoneNumber)
	assert.Equal(t, "admin", saved.Role)
	assert.False(t, saved.IsActive)
	// the password hash never travels through the update path
	assert.Equal(t, "original-hash", saved.PasswordHash)
	assert.Equal(t, saved, got)
}

func TestMemberService_UpdateMember_NotFound(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{
		FindByIDFunc: func(ctx context.Context, id uint) (domain.Member, error) {
			return domain.Member{}, ErrMemberNotFound
		},
	})

	_, err := svc.UpdateMember(context.Background(), 99, domain.Member{Name: "Nobody"})

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberService_DeleteMember(t *testing.T) {
	var deleted uint
	svc := NewMemberService(&mockMemberRepo{
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	})

	err := svc.DeleteMember(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, uint(8), deleted)
}

func TestMemberService_DeleteMember_NotFound(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return ErrMemberNotFound
		},
	})

	err := svc.DeleteMember(context.Background(), 8)

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberService_GetAllMembers_RepoError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewMemberService(&mockMemberRepo{
		FindAllFunc: func(ctx context.Context) ([]domain.Member, error) {
			return nil, boom
		},
	})

	_, err := svc.GetAllMembers(context.Background())

	assert.ErrorIs(t, err, boom)
}
