// Package dto
package dto

// ChannelLookupRequest asks the configured provider for channel statistics
type ChannelLookupRequest struct {
	Platform  string `json:"platform" validate:"required,oneof=youtube tiktok" example:"youtube"`
	ChannelID string `json:"channel_id" validate:"required,min=1,max=255" example:"UCdQw4w9WgXcQ"`
}

// ChannelInfoDTO carries the statistics returned by the channel data provider
type ChannelInfoDTO struct {
	ChannelID         string   `json:"channel_id" example:"UCdQw4w9WgXcQ"`
	Title             string   `json:"title" example:"Kwame Vlogs"`
	ProfileImageURL   *string  `json:"profile_image_url,omitempty"`
	Subscribers       *float64 `json:"subscribers,omitempty" example:"250000"`
	TotalViews        *float64 `json:"total_views,omitempty" example:"12500000"`
	TotalVideos       *float64 `json:"total_videos,omitempty" example:"310"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate,omitempty" example:"4.7"`
	FetchedAt         string   `json:"fetched_at" example:"2025-06-01T09:00:00Z"`
}
