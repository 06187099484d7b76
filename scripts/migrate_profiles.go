// 手动触发任务 ID 方案迁移脚本
//
// 档案在正常加载路径上会惰性完成迁移，此脚本用于主动批量迁移，
// 例如升级部署后希望一次性把所有存量档案迁到当前方案。
//
// 用法: go run scripts/migrate_profiles.go

package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"lifequest_backend/internal/catalog"
	"lifequest_backend/internal/config"
	"lifequest_backend/internal/model"
	"lifequest_backend/internal/repository"
	"lifequest_backend/internal/service"
	"lifequest_backend/pkg/database"
	"lifequest_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	gen := service.NewTaskGenService(catalog.New())

	var blobs []model.ProfileBlob
	if err := db.Where("`key` LIKE ?", repository.KeyProfilePrefix+"%").Find(&blobs).Error; err != nil {
		log.Fatalf("读取档案失败: %v", err)
	}

	migrated := 0
	for _, blob := range blobs {
		var p model.UserProfile
		if err := json.Unmarshal([]byte(blob.Value), &p); err != nil {
			log.Printf("档案损坏，跳过: %s: %v", blob.Key, err)
			continue
		}
		p.UserID = strings.TrimPrefix(blob.Key, repository.KeyProfilePrefix)
		p.EnsureDefaults()

		if !service.MigrateProfile(&p, gen) {
			continue
		}

		out, err := json.Marshal(&p)
		if err != nil {
			log.Printf("序列化失败，跳过: %s: %v", blob.Key, err)
			continue
		}
		if err := db.Model(&model.ProfileBlob{}).Where("`key` = ?", blob.Key).
			Update("value", string(out)).Error; err != nil {
			log.Printf("写回失败: %s: %v", blob.Key, err)
			continue
		}
		migrated++
	}

	log.Printf("迁移完成: 共 %d 份档案，迁移 %d 份", len(blobs), migrated)
}
