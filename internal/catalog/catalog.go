// Package catalog 持有构建期写死的内容目录：成就定义、公民行动、
// 职业关键词表和人格特质谓词表。目录数据运行期只读。
package catalog

import "lifequest_backend/internal/model"

// Catalog 只读目录访问入口
type Catalog struct {
	achievements   []model.AchievementDefinition
	achievementIdx map[string]int
	civicActions   []model.CivicAction
	civicIdx       map[string]int
}

// New 用内置数据表构建目录
func New() *Catalog {
	c := &Catalog{
		achievements:   achievementDefinitions,
		achievementIdx: make(map[string]int, len(achievementDefinitions)),
		civicActions:   civicActions,
		civicIdx:       make(map[string]int, len(civicActions)),
	}
	for i := range c.achievements {
		c.achievementIdx[c.achievements[i].ID] = i
	}
	for i := range c.civicActions {
		c.civicIdx[c.civicActions[i].ID] = i
	}
	return c
}

// ByID 按 ID 查找成就定义，未命中返回 nil（不报错，调用方自行判空）
func (c *Catalog) ByID(id string) *model.AchievementDefinition {
	i, ok := c.achievementIdx[id]
	if !ok {
		return nil
	}
	return &c.achievements[i]
}

// All 返回目录序（即定义表顺序）的全部成就
func (c *Catalog) All() []model.AchievementDefinition {
	return c.achievements
}

// CivicByID 按 ID 查找公民行动定义
func (c *Catalog) CivicByID(id string) *model.CivicAction {
	i, ok := c.civicIdx[id]
	if !ok {
		return nil
	}
	return &c.civicActions[i]
}

// CivicAll 返回全部公民行动
func (c *Catalog) CivicAll() []model.CivicAction {
	return c.civicActions
}
