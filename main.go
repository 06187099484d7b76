// @title LifeQuest 后端 API
// @version 1.0
// @description LifeQuest 人生成就引擎的后端服务器。

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"lifequest_backend/internal/app"
	"lifequest_backend/internal/config"
	"lifequest_backend/pkg/configwatcher"
	"lifequest_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 监听配置文件变更，热更新
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(raw interface{}) {
		if newCfg, ok := raw.(*config.Config); ok {
			logger.Log.Info("config reloaded")
			application.ReloadConfig(newCfg)
		}
	})

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
