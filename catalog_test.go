package artifacts

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemsFetchesEveryPageOnce(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/items", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("size"))

		switch r.URL.Query().Get("page") {
		case "1":
			_, _ = w.Write([]byte(`{"data":[{"code":"copper_ore","name":"Copper Ore","level":1,"type":"resource"}],"total":2,"page":1,"size":100,"pages":2}`))
		case "2":
			_, _ = w.Write([]byte(`{"data":[{"code":"iron_sword","name":"Iron Sword","level":10,"type":"weapon","craft":{"skill":"weaponcrafting","level":10,"items":[{"code":"iron","quantity":6}]}}],"total":2,"page":2,"size":100,"pages":2}`))
		default:
			t.Fatalf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))

	ctx := context.Background()
	items, err := client.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int32(2), calls.Load())

	// Cached: no further requests.
	_, err = client.Items(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())

	item, err := client.Item(ctx, "iron_sword")
	require.NoError(t, err)
	require.Equal(t, "Iron Sword", item.Name)
	require.NotNil(t, item.Craft)

	_, err = client.Item(ctx, "unobtainium")
	require.ErrorIs(t, err, ErrNotFound)

	client.RefreshCatalog()
	_, err = client.Items(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(4), calls.Load())
}

func TestFindItemsFilters(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"code":"copper_ore","name":"Copper Ore","level":1,"type":"resource"},
			{"code":"iron_sword","name":"Iron Sword","level":10,"type":"weapon","craft":{"skill":"weaponcrafting","level":10,"items":[{"code":"iron","quantity":6}]}},
			{"code":"iron_dagger","name":"Iron Dagger","level":8,"type":"weapon","craft":{"skill":"weaponcrafting","level":8,"items":[{"code":"iron","quantity":4}]}}
		],"total":3,"page":1,"size":100,"pages":1}`))
	}))
	ctx := context.Background()

	weapons, err := client.FindItems(ctx, ItemFilter{Type: "weapon", MinLevel: 9})
	require.NoError(t, err)
	require.Len(t, weapons, 1)
	require.Equal(t, "iron_sword", weapons[0].Code)

	byName, err := client.FindItems(ctx, ItemFilter{Name: "^iron"})
	require.NoError(t, err)
	require.Len(t, byName, 2)

	byMaterial, err := client.FindItems(ctx, ItemFilter{CraftMaterial: "iron", CraftSkill: "weaponcrafting"})
	require.NoError(t, err)
	require.Len(t, byMaterial, 2)

	_, err = client.FindItems(ctx, ItemFilter{Name: "("})
	require.Error(t, err)
}

func TestFindMapsByContent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/maps", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[
			{"name":"Bank","x":4,"y":1,"content":{"type":"bank","code":"bank"}},
			{"name":"Forest","x":-1,"y":0,"content":{"type":"resource","code":"ash_tree"}},
			{"name":"Plain","x":0,"y":0}
		],"total":3,"page":1,"size":100,"pages":1}`))
	}))
	ctx := context.Background()

	banks, err := client.FindMaps(ctx, MapFilter{ContentType: "bank"})
	require.NoError(t, err)
	require.Len(t, banks, 1)
	require.Equal(t, Position{X: 4, Y: 1}, banks[0].Position())

	trees, err := client.FindMaps(ctx, MapFilter{ContentCode: "tree"})
	require.NoError(t, err)
	require.Len(t, trees, 1)

	tile, err := client.MapAt(ctx, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "Plain", tile.Name)
	require.Nil(t, tile.Content)

	_, err = client.MapAt(ctx, 99, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindMonstersByDropAndLevel(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"code":"chicken","name":"Chicken","level":1,"drops":[{"code":"feather","rate":8,"min_quantity":1,"max_quantity":1}]},
			{"code":"wolf","name":"Wolf","level":15,"drops":[{"code":"wolf_bone","rate":12,"min_quantity":1,"max_quantity":1}]}
		],"total":2,"page":1,"size":100,"pages":1}`))
	}))
	ctx := context.Background()

	withFeathers, err := client.FindMonsters(ctx, MonsterFilter{Drop: "feather"})
	require.NoError(t, err)
	require.Len(t, withFeathers, 1)
	require.Equal(t, "chicken", withFeathers[0].Code)

	leveled, err := client.FindMonsters(ctx, MonsterFilter{MinLevel: 2, MaxLevel: 20})
	require.NoError(t, err)
	require.Len(t, leveled, 1)
	require.Equal(t, "wolf", leveled[0].Code)
}

func TestPagedAccountListings(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/my/bank/items":
			require.Equal(t, "copper_ore", r.URL.Query().Get("item_code"))
			_, _ = w.Write([]byte(`{"data":[{"code":"copper_ore","quantity":40}],"total":1,"page":1,"size":100,"pages":1}`))
		case "/grandexchange/orders":
			require.Equal(t, "2", r.URL.Query().Get("page"))
			_, _ = w.Write([]byte(`{"data":[],"total":120,"page":2,"size":100,"pages":2}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	ctx := context.Background()

	bankPage, err := client.BankItems(ctx, BankItemsQuery{ItemCode: "copper_ore"})
	require.NoError(t, err)
	require.Len(t, bankPage.Data, 1)
	require.Equal(t, 40, bankPage.Data[0].Quantity)

	orders, err := client.GEOrders(ctx, GEOrdersQuery{Page: 2})
	require.NoError(t, err)
	require.Empty(t, orders.Data)
	require.Equal(t, 2, orders.Pages)
}

func TestEventsAreNotCached(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events/active", r.URL.Path)
		n := calls.Add(1)
		_, _ = w.Write([]byte(fmt.Sprintf(
			`{"data":[{"code":"bandit_camp","name":"Bandit Camp %d"}],"total":1,"page":1,"size":100,"pages":1}`, n)))
	}))
	ctx := context.Background()

	first, err := client.ActiveEvents(ctx)
	require.NoError(t, err)
	second, err := client.ActiveEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())
	require.NotEqual(t, first[0].Name, second[0].Name)
}
