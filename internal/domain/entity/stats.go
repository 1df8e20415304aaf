package entity

// ChannelStats aggregates dashboard figures for a channel owner.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`      // Number of videos uploaded by the channel.
	TotalViews       int64 `json:"total_views"`       // Sum of views across the channel's videos.
	TotalSubscribers int64 `json:"total_subscribers"` // Number of subscribers to the channel.
	TotalLikes       int64 `json:"total_likes"`       // Number of likes received on the channel's videos.
}
