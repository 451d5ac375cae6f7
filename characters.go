package artifacts

import (
	"context"
	"net/http"
	"net/url"
)

// GetCharacter fetches a character by name. Unlike actions, this never waits
// on a cooldown, so it can poll state while an action cools down.
func (c *Client) GetCharacter(ctx context.Context, name string) (*Character, error) {
	char, err := get[Character](ctx, c, "characters/"+url.PathEscape(name))
	if err != nil {
		return nil, err
	}
	return &char, nil
}

// MyCharacters lists every character on the account.
func (c *Client) MyCharacters(ctx context.Context) ([]Character, error) {
	return get[[]Character](ctx, c, "my/characters")
}

// CreateCharacter creates a character. Valid skins are the documented
// "men1".."men3" and "women1".."women3" variants.
func (c *Client) CreateCharacter(ctx context.Context, name, skin string) (*Character, error) {
	payload := struct {
		Name string `json:"name"`
		Skin string `json:"skin"`
	}{Name: name, Skin: skin}
	var env envelope[Character]
	if err := c.do(ctx, http.MethodPost, "characters/create", payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DeleteCharacter permanently deletes a character by name.
func (c *Client) DeleteCharacter(ctx context.Context, name string) error {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}
	return c.do(ctx, http.MethodPost, "characters/delete", payload, nil)
}
