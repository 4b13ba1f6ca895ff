package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"mkt-merchant-api/internal/config"
	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/handler"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/logger"
	"mkt-merchant-api/internal/middleware"
	"mkt-merchant-api/internal/model"
	"mkt-merchant-api/internal/platform"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	// idgen
	idgen.Init(1)

	// logger
	logger.InitLogger()

	// schema + superadmin seed
	if err := dal.MainDB.AutoMigrate(
		&model.Merchant{},
		&model.Channel{},
		&model.Role{},
		&model.RoleChannel{},
		&model.Administrator{},
		&model.AdministratorRole{},
		&model.Asset{},
		&model.ProductChannel{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
	platform.EnsureSuperAdmin(dal.MainDB)

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover())

	ah := handler.NewAuthHandler()
	mh := handler.NewMerchantHandler()
	sh := handler.NewShopHandler()

	admin := r.Group("/admin/api/v1")
	admin.POST("/login", ah.Login)

	authed := admin.Group("", middleware.Auth())
	{
		read := middleware.Allow(constant.ReadAdministrator, constant.ReadChannel)
		authed.GET("/merchants", read, mh.List)
		authed.GET("/merchants/:id", read, mh.Get)
		authed.GET("/merchants/uuid/:uuid", read, mh.GetByUUID)
		authed.GET("/merchants/channel/:channelId", read, mh.GetByChannel)

		authed.POST("/merchants", middleware.Allow(constant.CreateAdministrator, constant.CreateChannel), mh.Create)
		authed.PUT("/merchants/:id", middleware.Allow(constant.UpdateAdministrator, constant.UpdateChannel), mh.Update)
		authed.DELETE("/merchants/:id", middleware.Allow(constant.DeleteAdministrator, constant.DeleteChannel), mh.Delete)
	}

	shop := r.Group("/shop/api/v1")
	shop.GET("/products/:id/merchant", sh.Merchant)

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
