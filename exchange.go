package artifacts

import (
	"context"
	"net/url"
	"strconv"
)

// GETransaction describes one grand exchange purchase or sale settlement.
type GETransaction struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Quantity   int    `json:"quantity"`
	Price      int    `json:"price"`
	TotalPrice int    `json:"total_price"`
}

// GEBuyResult is the response to buying from a sell order.
type GEBuyResult struct {
	ActionBase
	Order GETransaction `json:"order"`
}

// GESellOrderResult is the response to creating a sell order.
type GESellOrderResult struct {
	ActionBase
	Order GEOrder `json:"order"`
}

// GECancelResult is the response to cancelling a sell order; the listed
// items return to the inventory.
type GECancelResult struct {
	ActionBase
	Order GETransaction `json:"order"`
}

// BuyOrder purchases quantity from an existing sell order. The character
// must stand on the grand exchange tile.
func (h *CharacterClient) BuyOrder(ctx context.Context, orderID string, quantity int) (*GEBuyResult, error) {
	payload := struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}{ID: orderID, Quantity: quantity}
	var res GEBuyResult
	if err := h.action(ctx, "grandexchange/buy", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateSellOrder lists items for sale at the given per-unit price.
func (h *CharacterClient) CreateSellOrder(ctx context.Context, code string, price, quantity int) (*GESellOrderResult, error) {
	payload := struct {
		Code     string `json:"code"`
		Price    int    `json:"price"`
		Quantity int    `json:"quantity"`
	}{Code: code, Price: price, Quantity: quantity}
	var res GESellOrderResult
	if err := h.action(ctx, "grandexchange/sell", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelSellOrder withdraws one of the character's own sell orders.
func (h *CharacterClient) CancelSellOrder(ctx context.Context, orderID string) (*GECancelResult, error) {
	payload := struct {
		ID string `json:"id"`
	}{ID: orderID}
	var res GECancelResult
	if err := h.action(ctx, "grandexchange/cancel", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GEOrdersQuery filters the public sell order book.
type GEOrdersQuery struct {
	ItemCode string
	Seller   string
	Page     int
}

// GEOrders lists one page of the public sell order book.
func (c *Client) GEOrders(ctx context.Context, query GEOrdersQuery) (*Page[GEOrder], error) {
	values := url.Values{}
	values.Set("size", "100")
	if query.ItemCode != "" {
		values.Set("item_code", query.ItemCode)
	}
	if query.Seller != "" {
		values.Set("seller", query.Seller)
	}
	values.Set("page", strconv.Itoa(pageOrFirst(query.Page)))
	return getPage[GEOrder](ctx, c, "grandexchange/orders?"+values.Encode())
}

// GEOrder fetches a single sell order by id.
func (c *Client) GEOrder(ctx context.Context, orderID string) (*GEOrder, error) {
	order, err := get[GEOrder](ctx, c, "grandexchange/orders/"+url.PathEscape(orderID))
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GEHistoryQuery filters the public sale history of an item.
type GEHistoryQuery struct {
	Buyer  string
	Seller string
	Page   int
}

// GEHistory lists one page of the completed sales of an item.
func (c *Client) GEHistory(ctx context.Context, itemCode string, query GEHistoryQuery) (*Page[GESale], error) {
	values := url.Values{}
	values.Set("size", "100")
	if query.Buyer != "" {
		values.Set("buyer", query.Buyer)
	}
	if query.Seller != "" {
		values.Set("seller", query.Seller)
	}
	values.Set("page", strconv.Itoa(pageOrFirst(query.Page)))
	return getPage[GESale](ctx, c, "grandexchange/history/"+url.PathEscape(itemCode)+"?"+values.Encode())
}

// MyGEOrders lists one page of the account's own open sell orders.
func (c *Client) MyGEOrders(ctx context.Context, query GEOrdersQuery) (*Page[GEOrder], error) {
	values := url.Values{}
	values.Set("size", "100")
	if query.ItemCode != "" {
		values.Set("item_code", query.ItemCode)
	}
	values.Set("page", strconv.Itoa(pageOrFirst(query.Page)))
	return getPage[GEOrder](ctx, c, "my/grandexchange/orders?"+values.Encode())
}

// MyGEHistoryQuery filters the account's own sale history.
type MyGEHistoryQuery struct {
	ItemCode string
	OrderID  string
	Page     int
}

// MyGEHistory lists one page of the account's own completed sales.
func (c *Client) MyGEHistory(ctx context.Context, query MyGEHistoryQuery) (*Page[GESale], error) {
	values := url.Values{}
	values.Set("size", "100")
	if query.ItemCode != "" {
		values.Set("item_code", query.ItemCode)
	}
	if query.OrderID != "" {
		values.Set("id", query.OrderID)
	}
	values.Set("page", strconv.Itoa(pageOrFirst(query.Page)))
	return getPage[GESale](ctx, c, "my/grandexchange/history?"+values.Encode())
}
