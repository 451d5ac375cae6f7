package artifacts

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// ErrNotFound is returned by catalog lookups for codes the game does not
// define.
var ErrNotFound = errors.New("not found in catalog")

// catalogCache memoizes one fetch-all listing. The game data endpoints are
// static within a season, so a single fill per process is enough; call
// Client.RefreshCatalog to force a refetch.
type catalogCache[T any] struct {
	mu  sync.Mutex
	all []T
}

func (cc *catalogCache[T]) load(ctx context.Context, fill func(context.Context) ([]T, error)) ([]T, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.all != nil {
		return cc.all, nil
	}
	all, err := fill(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []T{}
	}
	cc.all = all
	return all, nil
}

func (cc *catalogCache[T]) invalidate() {
	cc.mu.Lock()
	cc.all = nil
	cc.mu.Unlock()
}

// fetchAll walks every page of a listing endpoint.
func fetchAll[T any](ctx context.Context, c *Client, path string, values url.Values) ([]T, error) {
	if values == nil {
		values = url.Values{}
	}
	values.Set("size", "100")

	var all []T
	for pageNum := 1; ; pageNum++ {
		values.Set("page", strconv.Itoa(pageNum))
		res, err := getPage[T](ctx, c, path+"?"+values.Encode())
		if err != nil {
			return nil, err
		}
		all = append(all, res.Data...)
		if pageNum >= res.Pages {
			break
		}
	}
	c.logger.Debug("catalog listing fetched",
		zap.String("endpoint", path),
		zap.Int("count", len(all)),
	)
	return all, nil
}

// RefreshCatalog drops every cached game data listing so the next access
// refetches it.
func (c *Client) RefreshCatalog() {
	c.items.invalidate()
	c.maps.invalidate()
	c.monsters.invalidate()
	c.resources.invalidate()
	c.tasks.invalidate()
	c.taskRewards.invalidate()
	c.achievements.invalidate()
}

// Items returns every item definition, fetched once and cached.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	return c.items.load(ctx, func(ctx context.Context) ([]Item, error) {
		return fetchAll[Item](ctx, c, "items", nil)
	})
}

// Item looks up one item by code.
func (c *Client) Item(ctx context.Context, code string) (*Item, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Code == code {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("item %q: %w", code, ErrNotFound)
}

// Maps returns every map tile, fetched once and cached.
func (c *Client) Maps(ctx context.Context) ([]MapTile, error) {
	return c.maps.load(ctx, func(ctx context.Context) ([]MapTile, error) {
		return fetchAll[MapTile](ctx, c, "maps", nil)
	})
}

// MapAt looks up the tile at the given coordinates.
func (c *Client) MapAt(ctx context.Context, x, y int) (*MapTile, error) {
	tiles, err := c.Maps(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tiles {
		if tiles[i].X == x && tiles[i].Y == y {
			return &tiles[i], nil
		}
	}
	return nil, fmt.Errorf("map %d/%d: %w", x, y, ErrNotFound)
}

// Monsters returns every monster definition, fetched once and cached.
func (c *Client) Monsters(ctx context.Context) ([]Monster, error) {
	return c.monsters.load(ctx, func(ctx context.Context) ([]Monster, error) {
		return fetchAll[Monster](ctx, c, "monsters", nil)
	})
}

// Monster looks up one monster by code.
func (c *Client) Monster(ctx context.Context, code string) (*Monster, error) {
	monsters, err := c.Monsters(ctx)
	if err != nil {
		return nil, err
	}
	for i := range monsters {
		if monsters[i].Code == code {
			return &monsters[i], nil
		}
	}
	return nil, fmt.Errorf("monster %q: %w", code, ErrNotFound)
}

// Resources returns every gatherable resource, fetched once and cached.
func (c *Client) Resources(ctx context.Context) ([]Resource, error) {
	return c.resources.load(ctx, func(ctx context.Context) ([]Resource, error) {
		return fetchAll[Resource](ctx, c, "resources", nil)
	})
}

// Resource looks up one resource by code.
func (c *Client) Resource(ctx context.Context, code string) (*Resource, error) {
	resources, err := c.Resources(ctx)
	if err != nil {
		return nil, err
	}
	for i := range resources {
		if resources[i].Code == code {
			return &resources[i], nil
		}
	}
	return nil, fmt.Errorf("resource %q: %w", code, ErrNotFound)
}

// Tasks returns every task definition, fetched once and cached.
func (c *Client) Tasks(ctx context.Context) ([]TaskInfo, error) {
	return c.tasks.load(ctx, func(ctx context.Context) ([]TaskInfo, error) {
		return fetchAll[TaskInfo](ctx, c, "tasks/list", nil)
	})
}

// TaskRewards returns every task reward definition, fetched once and cached.
func (c *Client) TaskRewards(ctx context.Context) ([]TaskReward, error) {
	return c.taskRewards.load(ctx, func(ctx context.Context) ([]TaskReward, error) {
		return fetchAll[TaskReward](ctx, c, "tasks/rewards", nil)
	})
}

// TaskRewardByCode looks up one task reward by code.
func (c *Client) TaskRewardByCode(ctx context.Context, code string) (*TaskReward, error) {
	rewards, err := c.TaskRewards(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rewards {
		if rewards[i].Code == code {
			return &rewards[i], nil
		}
	}
	return nil, fmt.Errorf("task reward %q: %w", code, ErrNotFound)
}

// Achievements returns every achievement definition, fetched once and cached.
func (c *Client) Achievements(ctx context.Context) ([]Achievement, error) {
	return c.achievements.load(ctx, func(ctx context.Context) ([]Achievement, error) {
		return fetchAll[Achievement](ctx, c, "achievements", nil)
	})
}

// Achievement looks up one achievement by code.
func (c *Client) Achievement(ctx context.Context, code string) (*Achievement, error) {
	achievements, err := c.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	for i := range achievements {
		if achievements[i].Code == code {
			return &achievements[i], nil
		}
	}
	return nil, fmt.Errorf("achievement %q: %w", code, ErrNotFound)
}

// Events lists every scheduled world event. Not cached.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	return fetchAll[Event](ctx, c, "events", nil)
}

// ActiveEvents lists the world events currently live on the map. Not cached:
// active events churn constantly.
func (c *Client) ActiveEvents(ctx context.Context) ([]ActiveEvent, error) {
	return fetchAll[ActiveEvent](ctx, c, "events/active", nil)
}
