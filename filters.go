package artifacts

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// ItemFilter narrows an item listing. Zero-valued fields match everything;
// Name is a case-insensitive regular expression.
type ItemFilter struct {
	Name          string
	Type          string
	CraftSkill    string
	CraftMaterial string
	MinLevel      int
	MaxLevel      int
}

// FindItems returns the cached items matching the filter.
func (c *Client) FindItems(ctx context.Context, filter ItemFilter) ([]Item, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	namePattern, err := compileName(filter.Name)
	if err != nil {
		return nil, err
	}

	var out []Item
	for _, item := range items {
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.MinLevel > 0 && item.Level < filter.MinLevel {
			continue
		}
		if filter.MaxLevel > 0 && item.Level > filter.MaxLevel {
			continue
		}
		if namePattern != nil && !namePattern.MatchString(item.Name) {
			continue
		}
		if filter.CraftSkill != "" && (item.Craft == nil || item.Craft.Skill != filter.CraftSkill) {
			continue
		}
		if filter.CraftMaterial != "" && !craftUses(item.Craft, filter.CraftMaterial) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func craftUses(craft *Craft, material string) bool {
	if craft == nil {
		return false
	}
	for _, ingredient := range craft.Items {
		if ingredient.Code == material {
			return true
		}
	}
	return false
}

// MonsterFilter narrows a monster listing.
type MonsterFilter struct {
	Drop     string
	MinLevel int
	MaxLevel int
}

// FindMonsters returns the cached monsters matching the filter.
func (c *Client) FindMonsters(ctx context.Context, filter MonsterFilter) ([]Monster, error) {
	monsters, err := c.Monsters(ctx)
	if err != nil {
		return nil, err
	}

	var out []Monster
	for _, monster := range monsters {
		if filter.MinLevel > 0 && monster.Level < filter.MinLevel {
			continue
		}
		if filter.MaxLevel > 0 && monster.Level > filter.MaxLevel {
			continue
		}
		if filter.Drop != "" && !dropsInclude(monster.Drops, filter.Drop) {
			continue
		}
		out = append(out, monster)
	}
	return out, nil
}

// ResourceFilter narrows a resource listing.
type ResourceFilter struct {
	Drop     string
	Skill    string
	MinLevel int
	MaxLevel int
}

// FindResources returns the cached resources matching the filter.
func (c *Client) FindResources(ctx context.Context, filter ResourceFilter) ([]Resource, error) {
	resources, err := c.Resources(ctx)
	if err != nil {
		return nil, err
	}

	var out []Resource
	for _, resource := range resources {
		if filter.Skill != "" && resource.Skill != filter.Skill {
			continue
		}
		if filter.MinLevel > 0 && resource.Level < filter.MinLevel {
			continue
		}
		if filter.MaxLevel > 0 && resource.Level > filter.MaxLevel {
			continue
		}
		if filter.Drop != "" && !dropsInclude(resource.Drops, filter.Drop) {
			continue
		}
		out = append(out, resource)
	}
	return out, nil
}

func dropsInclude(drops []Drop, code string) bool {
	for _, drop := range drops {
		if drop.Code == code {
			return true
		}
	}
	return false
}

// MapFilter narrows a map tile listing. ContentCode is a case-insensitive
// regular expression over the tile content code.
type MapFilter struct {
	ContentCode string
	ContentType string
}

// FindMaps returns the cached map tiles matching the filter. Tiles with no
// content only match the empty filter.
func (c *Client) FindMaps(ctx context.Context, filter MapFilter) ([]MapTile, error) {
	tiles, err := c.Maps(ctx)
	if err != nil {
		return nil, err
	}
	codePattern, err := compileName(filter.ContentCode)
	if err != nil {
		return nil, err
	}

	var out []MapTile
	for _, tile := range tiles {
		if filter.ContentType != "" && (tile.Content == nil || tile.Content.Type != filter.ContentType) {
			continue
		}
		if codePattern != nil && (tile.Content == nil || !codePattern.MatchString(tile.Content.Code)) {
			continue
		}
		out = append(out, tile)
	}
	return out, nil
}

// TaskFilter narrows a task listing. Name matches against the task code,
// case-insensitively.
type TaskFilter struct {
	Skill    string
	Type     string
	Name     string
	MinLevel int
	MaxLevel int
}

// FindTasks returns the cached tasks matching the filter.
func (c *Client) FindTasks(ctx context.Context, filter TaskFilter) ([]TaskInfo, error) {
	tasks, err := c.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	namePattern, err := compileName(filter.Name)
	if err != nil {
		return nil, err
	}

	var out []TaskInfo
	for _, task := range tasks {
		if filter.Skill != "" && task.Skill != filter.Skill {
			continue
		}
		if filter.Type != "" && task.Type != filter.Type {
			continue
		}
		if filter.MinLevel > 0 && task.Level < filter.MinLevel {
			continue
		}
		if filter.MaxLevel > 0 && task.Level > filter.MaxLevel {
			continue
		}
		if namePattern != nil && !namePattern.MatchString(task.Code) {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

// AchievementFilter narrows an achievement listing. Name and Description are
// case-insensitive regular expressions.
type AchievementFilter struct {
	Type        string
	Name        string
	Description string
	RewardMin   int
	RewardMax   int
}

// FindAchievements returns the cached achievements matching the filter.
func (c *Client) FindAchievements(ctx context.Context, filter AchievementFilter) ([]Achievement, error) {
	achievements, err := c.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	namePattern, err := compileName(filter.Name)
	if err != nil {
		return nil, err
	}
	descPattern, err := compileName(filter.Description)
	if err != nil {
		return nil, err
	}

	var out []Achievement
	for _, achievement := range achievements {
		if filter.Type != "" && achievement.Type != filter.Type {
			continue
		}
		if namePattern != nil && !namePattern.MatchString(achievement.Name) {
			continue
		}
		if descPattern != nil && !descPattern.MatchString(achievement.Description) {
			continue
		}
		if filter.RewardMin > 0 && achievement.Points < filter.RewardMin {
			continue
		}
		if filter.RewardMax > 0 && achievement.Points > filter.RewardMax {
			continue
		}
		out = append(out, achievement)
	}
	return out, nil
}

func compileName(expr string) (*regexp.Regexp, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	pattern, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("bad filter pattern %q: %w", expr, err)
	}
	return pattern, nil
}
