package tiktokserver

// TagInput is the input for tiktok_tag.
type TagInput struct {
	Name string `json:"name" jsonschema:"Hashtag name without the leading # (e.g. dance)"`
}

// TagFeedInput is the input for tiktok_tag_feed.
type TagFeedInput struct {
	Name      string `json:"name" jsonschema:"Hashtag name without the leading # (e.g. dance)"`
	MaxCursor int64  `json:"max_cursor,omitempty" jsonschema:"Pagination cursor from a previous page's maxCursor, 0 for the first page"`
}

// TrendingInput is the input for tiktok_trending.
type TrendingInput struct {
	MaxCursor int64 `json:"max_cursor,omitempty" jsonschema:"Pagination cursor from a previous page's maxCursor, 0 for the first page"`
}

// UserInput is the input for tiktok_user.
type UserInput struct {
	Username string `json:"username" jsonschema:"Profile handle without the leading @ (case-sensitive)"`
}

// UserFeedInput is the input for tiktok_user_feed.
type UserFeedInput struct {
	Username  string `json:"username" jsonschema:"Profile handle without the leading @ (case-sensitive)"`
	MaxCursor int64  `json:"max_cursor,omitempty" jsonschema:"Pagination cursor from a previous page's maxCursor, 0 for the first page"`
}

// VideoInput is the input for tiktok_video. Exactly one of ID and URL is used;
// URL wins when both are set.
type VideoInput struct {
	ID  string `json:"id,omitempty" jsonschema:"Numeric video id or short-link code (e.g. 7001234567890 or ZM8abc123)"`
	URL string `json:"url,omitempty" jsonschema:"Full video URL on tiktok.com"`
}
