package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/service"
)

type mockMemberService struct {
	GetAllMembersFunc               func(ctx context.Context) ([]domain.Member, error)
	GetMemberFunc                   func(ctx context.Context, id uint) (domain.Member, error)
	GetMemberByEmailFunc            func(ctx context.Context, email string) (domain.Member, error)
	GetMemberByPhoneNumberFunc      func(ctx context.Context, phoneNumber string) (domain.Member, error)
	GetMemberByNationalIDNumberFunc func(ctx context.Context, nationalIDNumber string) (domain.Member, error)
	CreateMemberFunc                func(ctx context.Context, member domain.Member) (domain.Member, error)
	UpdateMemberFunc                func(ctx context.Context, id uint, patch domain.Member) (domain.Member, error)
	DeleteMemberFunc                func(ctx context.Context, id uint) error
}

func (m *mockMemberService) GetAllMembers(ctx context.Context) ([]domain.Member, error) {
	return m.GetAllMembersFunc(ctx)
}

func (m *mockMemberService) GetMember(ctx context.Context, id uint) (domain.Member, error) {
	return m.GetMemberFunc(ctx, id)
}

func (m *mockMemberService) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	return m.GetMemberByEmailFunc(ctx, email)
}

func (m *mockMemberService) GetMemberByPhoneNumber(ctx context.Context, phoneNumber string) (domain.Member, error) {
	return m.GetMemberByPhoneNumberFunc(ctx, phoneNumber)
}

func (m *mockMemberService) GetMemberByNationalIDNumber(ctx context.Context, nationalIDNumber string) (domain.Member, error) {
	return m.GetMemberByNationalIDNumberFunc(ctx, nationalIDNumber)
}

func (m *mockMemberService) CreateMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	return m.CreateMemberFunc(ctx, member)
}

func (m *mockMemberService) UpdateMember(ctx context.Context, id uint, patch domain.Member) (domain.Member, error) {
	return m.UpdateMemberFunc(ctx, id, patch)
}

func (m *mockMemberService) DeleteMember(ctx context.Context, id uint) error {
	return m.DeleteMemberFunc(ctx, id)
}

func setupMemberRouter(svc MemberService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewMemberHandler(svc)
	members := router.Group("/api/members")
	members.GET("", h.HandleListMembers)
	members.POST("", h.HandleCreateMember)
	members.GET("/search/email", h.HandleSearchMemberByEmail)
	members.GET("/search/phone", h.HandleSearchMemberByPhone)
	members.GET("/search/nationalId", h.HandleSearchMemberByNationalID)
	members.GET("/:memberID", h.HandleGetMember)
	members.PUT("/:memberID", h.HandleUpdateMember)
	members.DELETE("/:memberID", h.HandleDeleteMember)

	return router
}

func TestHandleListMembers(t *testing.T) {
	router := setupMemberRouter(&mockMemberService{
		GetAllMembersFunc: func(ctx context.Context) ([]domain.Member, error) {
			return []domain.Member{{ID: 1, Name: "Chen Wei-Ling"}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Chen Wei-Ling", got[0].Name)
}

func TestHandleGetMember(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		svcErr   error
		wantCode int
	}{
		{
			name:     "found",
			target:   "/api/members/1",
			wantCode: http.StatusOK,
		},
		{
			name:     "not found",
			target:   "/api/members/42",
			svcErr:   service.ErrMemberNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "invalid id",
			target:   "/api/members/abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero id",
			target:   "/api/members/0",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "repo failure",
			target:   "/api/members/1",
			svcErr:   errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMemberRouter(&mockMemberService{
				GetMemberFunc: func(ctx context.Context, id uint) (domain.Member, error) {
					if tt.svcErr != nil {
						return domain.Member{}, tt.svcErr
					}
					return domain.Member{ID: id, Name: "Chen Wei-Ling"}, nil
				},
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandleCreateMember(t *testing.T) {
	body := `{
		"name": "Chen Wei-Ling",
		"phone_number": "0912345678",
		"national_id_number": "A123456789",
		"date_of_birth": "1990-05-20",
		"email": "weiling@example.com",
		"password_hash": "$2a$10$abcdefghijklmnopqrstuv"
	}`

	router := setupMemberRouter(&mockMemberService{
		CreateMemberFunc: func(ctx context.Context, member domain.Member) (domain.Member, error) {
			assert.Equal(t, "0912345678", member.PhoneNumber)
			require.NotNil(t, member.DateOfBirth)
			assert.Equal(t, "1990-05-20", member.DateOfBirth.Format("2006-01-02"))
			member.ID = 1
			return member, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	// the hash never leaks into the response
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestHandleCreateMember_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed json",
			body: `{"name": `,
		},
		{
			name: "bad phone number",
			body: `{"name":"x","phone_number":"12345","national_id_number":"A123456789","email":"x@example.com","password_hash":"h"}`,
		},
		{
			name: "bad national id",
			body: `{"name":"x","phone_number":"0912345678","national_id_number":"ZZZ","email":"x@example.com","password_hash":"h"}`,
		},
		{
			name: "missing email",
			body: `{"name":"x","phone_number":"0912345678","national_id_number":"A123456789","password_hash":"h"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMemberRouter(&mockMemberService{
				CreateMemberFunc: func(ctx context.Context, member domain.Member) (domain.Member, error) {
					t.Fatal("CreateMember must not run for an invalid request")
					return domain.Member{}, nil
				},
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleCreateMember_Duplicate(t *testing.T) {
	body := `{"name":"x","phone_number":"0912345678","national_id_number":"A123456789","email":"x@example.com","password_hash":"h"}`

	router := setupMemberRouter(&mockMemberService{
		CreateMemberFunc: func(ctx context.Context, member domain.Member) (domain.Member, error) {
			return domain.Member{}, service.ErrMemberExists
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleUpdateMember(t *testing.T) {
	body := `{
		"name": "Chen Wei-Ling",
		"phone_number": "0987654321",
		"national_id_number": "A123456789",
		"email": "weiling@example.com",
		"is_active": false,
		"role": "member"
	}`

	router := setupMemberRouter(&mockMemberService{
		UpdateMemberFunc: func(ctx context.Context, id uint, patch domain.Member) (domain.Member, error) {
			assert.Equal(t, uint(5), id)
			assert.Equal(t, "0987654321", patch.PhoneNumber)
			assert.False(t, patch.IsActive)
			patch.ID = id
			return patch, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/members/5", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleUpdateMember_NotFound(t *testing.T) {
	body := `{"name":"x","phone_number":"0912345678","national_id_number":"A123456789","email":"x@example.com","role":"member"}`

	router := setupMemberRouter(&mockMemberService{
		UpdateMemberFunc: func(ctx context.Context, id uint, patch domain.Member) (domain.Member, error) {
			return domain.Member{}, service.ErrMemberNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/members/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDeleteMember(t *testing.T) {
	router := setupMemberRouter(&mockMemberService{
		DeleteMemberFunc: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(5), id)
			return nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/members/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleDeleteMember_NotFound(t *testing.T) {
	router := setupMemberRouter(&mockMemberService{
		DeleteMemberFunc: func(ctx context.Context, id uint) error {
			return service.ErrMemberNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/members/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSearchMemberByEmail(t *testing.T) {
	router := setupMemberRouter(&mockMemberService{
		GetMemberByEmailFunc: func(ctx context.Context, email string) (domain.Member, error) {
			assert.Equal(t, "weiling@example.com", email)
			return domain.Member{ID: 1, Email: email}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/search/email?email=weiling@example.com", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleSearchMemberByEmail_MissingParam(t *testing.T) {
	router := setupMemberRouter(&mockMemberService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/search/email", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSearchMemberByPhone_NotFound(t *testing.T) {
	router := setupMemberRouter(&mockMemberService{
		GetMemberByPhoneNumberFunc: func(ctx context.Context, phoneNumber string) (domain.Member, error) {
			return domain.Member{}, service.ErrMemberNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/search/phone?phoneNumber=0911111111", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSearchMemberByNationalID(t *testing.T) {
	router := setupMemberRouter(&mockMemberService{
		GetMemberByNationalIDNumberFunc: func(ctx context.Context, nationalIDNumber string) (domain.Member, error) {
			assert.Equal(t, "A123456789", nationalIDNumber)
			return domain.Member{ID: 1, NationalIDNumber: nationalIDNumber}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/search/nationalId?nationalIdNumber=A123456789", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
