package artifacts

import (
	"context"
	"net/url"
	"strconv"
)

// BankItemResult is the response to a bank item deposit or withdrawal.
type BankItemResult struct {
	ActionBase
	Item Item         `json:"item"`
	Bank []SimpleItem `json:"bank"`
}

// BankGoldResult is the response to a bank gold deposit or withdrawal.
type BankGoldResult struct {
	ActionBase
	Bank struct {
		Quantity int `json:"quantity"`
	} `json:"bank"`
}

// BankExpansionResult is the response to buying a bank expansion.
type BankExpansionResult struct {
	ActionBase
	Transaction struct {
		Price int `json:"price"`
	} `json:"transaction"`
}

// DepositItem moves items from the inventory into the bank. The character
// must stand on the bank tile.
func (h *CharacterClient) DepositItem(ctx context.Context, code string, quantity int) (*BankItemResult, error) {
	var res BankItemResult
	if err := h.action(ctx, "bank/deposit", codeQuantity(code, quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WithdrawItem moves items from the bank into the inventory.
func (h *CharacterClient) WithdrawItem(ctx context.Context, code string, quantity int) (*BankItemResult, error) {
	var res BankItemResult
	if err := h.action(ctx, "bank/withdraw", codeQuantity(code, quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DepositGold moves gold from the character into the bank.
func (h *CharacterClient) DepositGold(ctx context.Context, quantity int) (*BankGoldResult, error) {
	var res BankGoldResult
	if err := h.action(ctx, "bank/deposit/gold", goldQuantity(quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WithdrawGold moves gold from the bank to the character.
func (h *CharacterClient) WithdrawGold(ctx context.Context, quantity int) (*BankGoldResult, error) {
	var res BankGoldResult
	if err := h.action(ctx, "bank/withdraw/gold", goldQuantity(quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BuyBankExpansion purchases additional bank slots with the character's gold.
func (h *CharacterClient) BuyBankExpansion(ctx context.Context) (*BankExpansionResult, error) {
	var res BankExpansionResult
	if err := h.action(ctx, "bank/buy_expansion", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func goldQuantity(quantity int) any {
	return struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
}

// BankDetails fetches the account bank summary.
func (c *Client) BankDetails(ctx context.Context) (*BankDetails, error) {
	details, err := get[BankDetails](ctx, c, "my/bank")
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// BankItemsQuery filters a bank items listing.
type BankItemsQuery struct {
	ItemCode string
	Page     int
}

// BankItems lists one page of the items stored in the account bank.
func (c *Client) BankItems(ctx context.Context, query BankItemsQuery) (*Page[SimpleItem], error) {
	values := url.Values{}
	values.Set("size", "100")
	if query.ItemCode != "" {
		values.Set("item_code", query.ItemCode)
	}
	values.Set("page", strconv.Itoa(pageOrFirst(query.Page)))
	return getPage[SimpleItem](ctx, c, "my/bank/items?"+values.Encode())
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
