package artifacts

import (
	"context"
	"net/url"
	"strconv"
)

// AccountDetails fetches the profile of the authenticated account.
func (c *Client) AccountDetails(ctx context.Context) (*AccountDetails, error) {
	details, err := get[AccountDetails](ctx, c, "my/details")
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// Account fetches the public profile of any account by name.
func (c *Client) Account(ctx context.Context, account string) (*AccountDetails, error) {
	details, err := get[AccountDetails](ctx, c, "accounts/"+url.PathEscape(account))
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// Logs lists one page of the account activity log, most recent first.
func (c *Client) Logs(ctx context.Context, pageNum int) (*Page[LogEntry], error) {
	values := url.Values{}
	values.Set("size", "100")
	values.Set("page", strconv.Itoa(pageOrFirst(pageNum)))
	return getPage[LogEntry](ctx, c, "my/logs?"+values.Encode())
}

// AccountAchievementsQuery filters an account achievements listing.
type AccountAchievementsQuery struct {
	Completed *bool
	Type      string
	Page      int
}

// AccountAchievements lists one page of the achievements of an account,
// including completion state.
func (c *Client) AccountAchievements(ctx context.Context, account string, query AccountAchievementsQuery) (*Page[Achievement], error) {
	values := url.Values{}
	values.Set("size", "100")
	if query.Completed != nil {
		values.Set("completed", strconv.FormatBool(*query.Completed))
	}
	if query.Type != "" {
		values.Set("achievement_type", query.Type)
	}
	values.Set("page", strconv.Itoa(pageOrFirst(query.Page)))
	return getPage[Achievement](ctx, c, "accounts/"+url.PathEscape(account)+"/achievements?"+values.Encode())
}

// LeaderboardQuery selects the sort order and page of a leaderboard.
type LeaderboardQuery struct {
	Sort string
	Page int
}

// CharacterLeaderboard lists one page of the characters leaderboard.
func (c *Client) CharacterLeaderboard(ctx context.Context, query LeaderboardQuery) (*Page[CharacterLeaderboardEntry], error) {
	return getPage[CharacterLeaderboardEntry](ctx, c, "leaderboard/characters?"+leaderboardValues(query).Encode())
}

// AccountLeaderboard lists one page of the accounts leaderboard.
func (c *Client) AccountLeaderboard(ctx context.Context, query LeaderboardQuery) (*Page[AccountLeaderboardEntry], error) {
	return getPage[AccountLeaderboardEntry](ctx, c, "leaderboard/accounts?"+leaderboardValues(query).Encode())
}

func leaderboardValues(query LeaderboardQuery) url.Values {
	values := url.Values{}
	values.Set("size", "100")
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	values.Set("page", strconv.Itoa(pageOrFirst(query.Page)))
	return values
}
