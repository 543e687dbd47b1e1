package v1

import (
	"context"
	"encoding/json"
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

type mockStockGroupService struct {
	GetAllStockGroupsFunc      func(ctx context.Context) ([]domain.StockGroup, error)
	GetStockGroupFunc          func(ctx context.Context, id uint) (domain.StockGroup, error)
	GetStockGroupByNameFunc    func(ctx context.Context, name string) (domain.StockGroup, error)
	GetStockGroupsByMemberFunc func(ctx context.Context, memberID uint) ([]domain.StockGroup, error)
	CreateStockGroupFunc       func(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error)
	UpdateStockGroupFunc       func(ctx context.Context, id uint, patch domain.StockGroup) (domain.StockGroup, error)
	DeleteStockGroupFunc       func(ctx context.Context, id uint) error
	AddStockToGroupFunc        func(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error)
	RemoveStockFromGroupFunc   func(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error)
}

func (m *mockStockGroupService) GetAllStockGroups(ctx context.Context) ([]domain.StockGroup, error) {
	return m.GetAllStockGroupsFunc(ctx)
}

func (m *mockStockGroupService) GetStockGroup(ctx context.Context, id uint) (domain.StockGroup, error) {
	return m.GetStockGroupFunc(ctx, id)
}

func (m *mockStockGroupService) GetStockGroupByName(ctx context.Context, name string) (domain.StockGroup, error) {
	return m.GetStockGroupByNameFunc(ctx, name)
}

func (m *mockStockGroupService) GetStockGroupsByMember(ctx context.Context, memberID uint) ([]domain.StockGroup, error) {
	return m.GetStockGroupsByMemberFunc(ctx, memberID)
}

func (m *mockStockGroupService) CreateStockGroup(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error) {
	return m.CreateStockGroupFunc(ctx, group, memberID)
}

func (m *mockStockGroupService) UpdateStockGroup(ctx context.Context, id uint, patch domain.StockGroup) (domain.StockGroup, error) {
	return m.UpdateStockGroupFunc(ctx, id, patch)
}

func (m *mockStockGroupService) DeleteStockGroup(ctx context.Context, id uint) error {
	return m.DeleteStockGroupFunc(ctx, id)
}

func (m *mockStockGroupService) AddStockToGroup(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
	return m.AddStockToGroupFunc(ctx, groupID, stockID)
}

func (m *mockStockGroupService) RemoveStockFromGroup(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
	return m.RemoveStockFromGroupFunc(ctx, groupID, stockID)
}

func setupStockGroupRouter(svc StockGroupService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewStockGroupHandler(svc)
	groups := router.Group("/api/stock-groups")
	groups.GET("", h.HandleListStockGroups)
	groups.GET("/search/name", h.HandleSearchStockGroupByName)
	groups.GET("/member/:memberID", h.HandleListStockGroupsByMember)
	groups.POST("/member/:memberID", h.HandleCreateStockGroup)
	groups.GET("/:groupID", h.HandleGetStockGroup)
	groups.PUT("/:groupID", h.HandleUpdateStockGroup)
	groups.DELETE("/:groupID", h.HandleDeleteStockGroup)
	groups.GET("/:groupID/stocks", h.HandleListStocksInGroup)
	groups.POST("/:groupID/stocks/:stockID", h.HandleAddStockToGroup)
	groups.DELETE("/:groupID/stocks/:stockID", h.HandleRemoveStockFromGroup)

	return router
}

func TestHandleListStockGroups(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		GetAllStockGroupsFunc: func(ctx context.Context) ([]domain.StockGroup, error) {
			return []domain.StockGroup{{ID: 1, Name: "Tech picks"}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock-groups", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.StockGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestHandleCreateStockGroup(t *testing.T) {
	body := `{"name":"Tech picks","description":"semis and hardware"}`

	router := setupStockGroupRouter(&mockStockGroupService{
		CreateStockGroupFunc: func(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error) {
			assert.Equal(t, uint(5), memberID)
			assert.Equal(t, "Tech picks", group.Name)
			group.ID = 1
			group.MemberID = memberID
			return group, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stock-groups/member/5", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandleCreateStockGroup_DuplicateName(t *testing.T) {
	body := `{"name":"Tech picks"}`

	router := setupStockGroupRouter(&mockStockGroupService{
		CreateStockGroupFunc: func(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error) {
			return domain.StockGroup{}, service.ErrGroupNameExists
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stock-groups/member/5", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleCreateStockGroup_MemberMissing(t *testing.T) {
	body := `{"name":"Tech picks"}`

	router := setupStockGroupRouter(&mockStockGroupService{
		CreateStockGroupFunc: func(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error) {
			return domain.StockGroup{}, service.ErrMemberNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stock-groups/member/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCreateStockGroup_MissingName(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		CreateStockGroupFunc: func(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error) {
			t.Fatal("CreateStockGroup must not run for an invalid request")
			return domain.StockGroup{}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stock-groups/member/5", strings.NewReader(`{"description":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateStockGroup_Conflict(t *testing.T) {
	body := `{"name":"Tech picks"}`

	router := setupStockGroupRouter(&mockStockGroupService{
		UpdateStockGroupFunc: func(ctx context.Context, id uint, patch domain.StockGroup) (domain.StockGroup, error) {
			return domain.StockGroup{}, service.ErrGroupNameExists
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/stock-groups/3", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleDeleteStockGroup(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		DeleteStockGroupFunc: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(3), id)
			return nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/stock-groups/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleSearchStockGroupByName(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		GetStockGroupByNameFunc: func(ctx context.Context, name string) (domain.StockGroup, error) {
			assert.Equal(t, "Tech picks", name)
			return domain.StockGroup{ID: 1, Name: name}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock-groups/search/name?name=Tech+picks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleAddStockToGroup(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		AddStockToGroupFunc: func(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
			assert.Equal(t, uint(1), groupID)
			assert.Equal(t, uint(2), stockID)
			return domain.StockGroup{ID: groupID, Stocks: []domain.Stock{{ID: stockID}}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stock-groups/1/stocks/2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got domain.StockGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Stocks, 1)
}

func TestHandleAddStockToGroup_StockMissing(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		AddStockToGroupFunc: func(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
			return domain.StockGroup{}, service.ErrStockNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stock-groups/1/stocks/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRemoveStockFromGroup_NotInGroup(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		RemoveStockFromGroupFunc: func(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error) {
			return domain.StockGroup{}, service.ErrStockNotInGroup
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/stock-groups/1/stocks/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListStocksInGroup(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		GetStockGroupFunc: func(ctx context.Context, id uint) (domain.StockGroup, error) {
			return domain.StockGroup{
				ID:     id,
				Stocks: []domain.Stock{{ID: 2, Code: "2330"}, {ID: 3, Code: "2317"}},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock-groups/1/stocks", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Stock
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestHandleListStockGroupsByMember(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		GetStockGroupsByMemberFunc: func(ctx context.Context, memberID uint) ([]domain.StockGroup, error) {
			return []domain.StockGroup{{ID: 1, MemberID: memberID}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock-groups/member/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleListStockGroupsByMember_NoGroups(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		GetStockGroupsByMemberFunc: func(ctx context.Context, memberID uint) ([]domain.StockGroup, error) {
			return []domain.StockGroup{}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock-groups/member/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListStockGroupsByMember_MemberMissing(t *testing.T) {
	router := setupStockGroupRouter(&mockStockGroupService{
		GetStockGroupsByMemberFunc: func(ctx context.Context, memberID uint) ([]domain.StockGroup, error) {
			return nil, service.ErrMemberNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock-groups/member/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
