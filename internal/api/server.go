package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/fututaiwan/stock-portfolio-api/docs"
	v1 "github.com/fututaiwan/stock-portfolio-api/internal/api/handler/v1"
	"github.com/fututaiwan/stock-portfolio-api/internal/api/middleware"
	"github.com/fututaiwan/stock-portfolio-api/internal/config"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository"
	"github.com/fututaiwan/stock-portfolio-api/internal/repository/dao"
	"github.com/fututaiwan/stock-portfolio-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	memberHandler := s.initMemberHandler(db)
	stockHandler := s.initStockHandler(db)
	stockGroupHandler := s.initStockGroupHandler(db)
	s.MountHandlers(memberHandler, stockHandler, stockGroupHandler)

	return s
}

func (s *Server) initMemberHandler(db *gorm.DB) *v1.MemberHandler {
	memberDAO := dao.NewMemberDAO(db)
	repo := repository.NewMemberRepository(memberDAO)
	svc := service.NewMemberService(repo)
	handler := v1.NewMemberHandler(svc)

	return handler
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	stockDAO := dao.NewStockDAO(db)
	repo := repository.NewStockRepository(stockDAO)
	svc := service.NewStockService(repo)
	handler := v1.NewStockHandler(svc)

	return handler
}

func (s *Server) initStockGroupHandler(db *gorm.DB) *v1.StockGroupHandler {
	groupDAO := dao.NewStockGroupDAO(db)
	repo := repository.NewStockGroupRepository(groupDAO)
	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	stockRepo := repository.NewStockRepository(dao.NewStockDAO(db))
	svc := service.NewStockGroupService(repo, memberRepo, stockRepo)
	handler := v1.NewStockGroupHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(memberHandler *v1.MemberHandler, stockHandler *v1.StockHandler, stockGroupHandler *v1.StockGroupHandler) {
	const basePath = "/api"

	members := s.Router.Group(basePath + "/members")
	{
		members.GET("", memberHandler.HandleListMembers)
		members.GET("/search/email", memberHandler.HandleSearchMemberByEmail)
		members.GET("/search/phone", memberHandler.HandleSearchMemberByPhone)
		members.GET("/search/nationalId", memberHandler.HandleSearchMemberByNationalID)
		members.GET("/:memberID", memberHandler.HandleGetMember)
		members.POST("", memberHandler.HandleCreateMember)
		members.PUT("/:memberID", memberHandler.HandleUpdateMember)
		members.DELETE("/:memberID", memberHandler.HandleDeleteMember)
	}

	stocks := s.Router.Group(basePath + "/stocks")
	{
		stocks.GET("", stockHandler.HandleListStocks)
		stocks.GET("/search/code", stockHandler.HandleSearchStockByCode)
		stocks.GET("/:stockID", stockHandler.HandleGetStock)
		stocks.POST("", stockHandler.HandleCreateStock)
		stocks.PUT("/:stockID", stockHandler.HandleUpdateStock)
		stocks.DELETE("/:stockID", stockHandler.HandleDeleteStock)
	}

	groups := s.Router.Group(basePath + "/stock-groups")
	{
		groups.GET("", stockGroupHandler.HandleListStockGroups)
		groups.GET("/search/name", stockGroupHandler.HandleSearchStockGroupByName)
		groups.GET("/member/:memberID", stockGroupHandler.HandleListStockGroupsByMember)
		groups.POST("/member/:memberID", stockGroupHandler.HandleCreateStockGroup)
		groups.GET("/:groupID", stockGroupHandler.HandleGetStockGroup)
		groups.PUT("/:groupID", stockGroupHandler.HandleUpdateStockGroup)
		groups.DELETE("/:groupID", stockGroupHandler.HandleDeleteStockGroup)
		groups.GET("/:groupID/stocks", stockGroupHandler.HandleListStocksInGroup)
		groups.POST("/:groupID/stocks/:stockID", stockGroupHandler.HandleAddStockToGroup)
		groups.DELETE("/:groupID/stocks/:stockID", stockGroupHandler.HandleRemoveStockFromGroup)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Stock Portfolio API"
	docs.SwaggerInfo.Description = "Members, stocks and member-owned stock groups."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
