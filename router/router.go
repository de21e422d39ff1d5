package router

import (
	"time"

	"housebook/api"
	"housebook/config"
	_ "housebook/docs"
	"housebook/middleware"
	"housebook/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, sched *service.Scheduler, mail service.Mailer) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 登录相关路由（无需登录态）
	authHandler := api.NewAuthHandler(cfg)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// 其余路由全部要求登录态
	dashboardHandler := api.NewDashboardHandler()
	assetHandler := api.NewAssetHandler()
	expenseHandler := api.NewExpenseHandler()
	incomeHandler := api.NewIncomeHandler()
	houseHandler := api.NewHouseHandler()
	taskHandler := api.NewTaskHandler(sched, mail)
	exportHandler := api.NewExportHandler()

	authorized := r.Group("")
	authorized.Use(middleware.SessionAuth())
	{
		// 仪表盘
		authorized.GET("/", dashboardHandler.Dashboard)

		// 资产
		authorized.GET("/add_asset", assetHandler.AddForm)
		authorized.POST("/add_asset", assetHandler.Create)
		authorized.GET("/edit_asset/:id", assetHandler.EditForm)
		authorized.POST("/edit_asset/:id", assetHandler.Update)
		authorized.POST("/delete_asset", assetHandler.Delete)

		// 住房开销（按日期 upsert）
		authorized.GET("/add_house", houseHandler.AddForm)
		authorized.POST("/add_house", houseHandler.Upsert)

		// 维护提醒
		authorized.GET("/add_notification", taskHandler.AddForm)
		authorized.POST("/add_notification", taskHandler.Create)
		authorized.GET("/edit_notification/:id", taskHandler.EditForm)
		authorized.POST("/edit_notification/:id", taskHandler.Update)
		authorized.POST("/delete_notification/:id", taskHandler.Delete)

		// 收支明细
		authorized.GET("/expenses", expenseHandler.ListPage)
		authorized.POST("/add_expense", expenseHandler.Create)
		authorized.GET("/edit_expense/:id", expenseHandler.EditForm)
		authorized.POST("/edit_expense/:id", expenseHandler.Update)
		authorized.POST("/delete_expense", expenseHandler.Delete)

		// 收入
		authorized.POST("/add_income", incomeHandler.Create)
		authorized.GET("/edit_income/:id", incomeHandler.EditForm)
		authorized.POST("/edit_income/:id", incomeHandler.Update)
		authorized.POST("/delete_income", incomeHandler.Delete)

		// 导出
		authorized.GET("/export/excel", exportHandler.ExportExcel)
		authorized.GET("/export/csv", exportHandler.ExportCSV)
		authorized.GET("/export/json", exportHandler.ExportJSON)
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
