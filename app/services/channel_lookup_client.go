// Package services provides external service integrations and technical concerns like tokens and captcha
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
)

// ChannelLookupService fetches live channel statistics from the configured
// platform data provider. The provider is optional; an instance with no base
// URL reports itself unconfigured and is never called.
type ChannelLookupService interface {
	Configured() bool
	Lookup(ctx context.Context, platform models.Platform, channelID string) (*dto.ChannelInfoDTO, error)
}

// ChannelLookupClient is an HTTP client for the channel statistics API
type ChannelLookupClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewChannelLookupClient creates a new channel lookup client
func NewChannelLookupClient(baseURL, apiKey string, timeout time.Duration) *ChannelLookupClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ChannelLookupClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a provider endpoint has been set
func (c *ChannelLookupClient) Configured() bool {
	return c != nil && c.BaseURL != ""
}

type channelStatsResp struct {
	ChannelID       string   `json:"channel_id"`
	Title           string   `json:"title"`
	ProfileImageURL *string  `json:"profile_image_url"`
	Subscribers     *float64 `json:"subscribers"`
	TotalViews      *float64 `json:"total_views"`
	TotalVideos     *float64 `json:"total_videos"`
	EngagementRate  *float64 `json:"engagement_rate"`
}

// Lookup fetches channel statistics for one channel
// GET /v1/channels/{platform}/{channelID} (header X-Api-Key)
func (c *ChannelLookupClient) Lookup(ctx context.Context, platform models.Platform, channelID string) (*dto.ChannelInfoDTO, error) {
	url := fmt.Sprintf("%s/channels/%s/%s", c.BaseURL, platform, channelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-Api-Key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("channel provider returned status %d", resp.StatusCode)
	}

	var out channelStatsResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	return &dto.ChannelInfoDTO{
		ChannelID:         out.ChannelID,
		Title:             out.Title,
		ProfileImageURL:   out.ProfileImageURL,
		Subscribers:       out.Subscribers,
		TotalViews:        out.TotalViews,
		TotalVideos:       out.TotalVideos,
		AvgEngagementRate: out.EngagementRate,
		FetchedAt:         utils.UTCNowRFC3339(),
	}, nil
}
