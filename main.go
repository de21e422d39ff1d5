package main

import (
	"flag"
	"log"
	"strings"

	"housebook/config"
	"housebook/database"
	"housebook/router"
	"housebook/service"

	"github.com/joho/godotenv"
)

// @title 居家账本 API
// @version 1.0
// @description 家庭资产、收支、住房开销与维护提醒管理服务
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("居家账本 v1.0.0")
		return
	}

	// 加载 .env（可选），供 HOUSE_ 前缀环境变量覆盖配置使用
	_ = godotenv.Load()

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	// 初始化数据库
	if err := database.Init(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 启动提醒调度器，并依据任务表重建触发项
	mail := service.NewEmailService(&cfg.Email)
	sched := service.NewScheduler(mail, cfg.Reminder.Hour)
	sched.Start()
	defer sched.Stop()
	if err := sched.Reload(database.DB); err != nil {
		log.Printf("警告: 恢复提醒触发项失败: %v", err)
	}

	// 设置路由
	r := router.SetupRouter(cfg, sched, mail)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  🏠 居家账本已启动")
	log.Printf("==========================================")
	log.Printf("  仪表盘:   http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
