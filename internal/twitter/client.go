package twitter

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/dghubble/oauth1"
	twitter "github.com/g8rswimmer/go-twitter/v2"
	"go.uber.org/zap"

	"superteam-bot/internal/config"
	"superteam-bot/internal/service"
)

// Compile-time checks against the workflow interfaces.
var (
	_ service.Publisher      = (*Client)(nil)
	_ service.FollowerSource = (*Client)(nil)
)

// followersPageSize is what we request per lookup; the caller trims to its
// own limit.
const followersPageSize = 100

// authorizer satisfies the go-twitter Authorizer interface. Request signing
// is already done by the oauth1 transport, so Add has nothing to do.
type authorizer struct{}

func (authorizer) Add(*http.Request) {}

// Client publishes tweets and lists followers through the Twitter v2 API
// with OAuth1 user-context authentication.
type Client struct {
	api    *twitter.Client
	logger *zap.Logger

	mu     sync.Mutex
	userID string // authenticated user id, resolved on first use
}

// NewClient creates a Twitter client from the configured credentials.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	oauthConfig := oauth1.NewConfig(cfg.TwitterAPIKey, cfg.TwitterAPISecret)
	token := oauth1.NewToken(cfg.TwitterAccessToken, cfg.TwitterAccessSecret)
	httpClient := oauthConfig.Client(oauth1.NoContext, token)

	return &Client{
		api: &twitter.Client{
			Authorizer: authorizer{},
			Client:     httpClient,
			Host:       "https://api.twitter.com",
		},
		logger: logger.Named("TwitterClient"),
	}
}

// Publish posts the content as a tweet and returns the created tweet id.
func (c *Client) Publish(ctx context.Context, content string) (string, error) {
	resp, err := c.api.CreateTweet(ctx, twitter.CreateTweetRequest{Text: content})
	if err != nil {
		return "", fmt.Errorf("failed to create tweet: %w", err)
	}
	if resp == nil || resp.Tweet == nil {
		return "", fmt.Errorf("create tweet returned no tweet data")
	}

	c.logger.Info("Tweet posted", zap.String("tweet_id", resp.Tweet.ID))
	return resp.Tweet.ID, nil
}

// Followers returns up to limit follower usernames of the authenticated
// user.
func (c *Client) Followers(ctx context.Context, limit int) ([]string, error) {
	userID, err := c.authUserID(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.UserFollowersLookup(ctx, userID, twitter.UserFollowersLookupOpts{
		MaxResults: followersPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followers: %w", err)
	}
	return usernames(resp.Raw, limit), nil
}

// Following returns up to limit usernames the authenticated user follows.
func (c *Client) Following(ctx context.Context, limit int) ([]string, error) {
	userID, err := c.authUserID(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.UserFollowingLookup(ctx, userID, twitter.UserFollowingLookupOpts{
		MaxResults: followersPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followed accounts: %w", err)
	}
	return usernames(resp.Raw, limit), nil
}

// authUserID resolves and caches the id of the authenticated user.
func (c *Client) authUserID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.userID != "" {
		return c.userID, nil
	}

	resp, err := c.api.AuthUserLookup(ctx, twitter.UserLookupOpts{})
	if err != nil {
		return "", fmt.Errorf("failed to look up authenticated user: %w", err)
	}
	if resp.Raw == nil || len(resp.Raw.Users) == 0 {
		return "", fmt.Errorf("authenticated user lookup returned no users")
	}

	c.userID = resp.Raw.Users[0].ID
	c.logger.Debug("Authenticated user resolved", zap.String("user_id", c.userID))
	return c.userID, nil
}

func usernames(raw *twitter.UserRaw, limit int) []string {
	if raw == nil {
		return nil
	}
	names := make([]string, 0, limit)
	for _, user := range raw.Users {
		if user == nil {
			continue
		}
		names = append(names, user.UserName)
		if len(names) == limit {
			break
		}
	}
	return names
}
