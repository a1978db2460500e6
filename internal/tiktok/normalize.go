package tiktok

// Normalize maps feed items (itemInfos/authorInfos/musicInfos records) to
// FeedItems. It never drops an item and never fails: missing fields become
// nil. The result is non-nil even for empty input.
func Normalize(raw []Doc) []FeedItem {
	items := make([]FeedItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, normalizeFeedItem(r))
	}
	return items
}

func normalizeFeedItem(r Doc) FeedItem {
	info := Get(r, "itemInfos")
	author := Get(r, "authorInfos")
	music := Get(r, "musicInfos")
	meta := Get(info, "video", "videoMeta")

	return FeedItem{
		ID:          String(info, "id"),
		Description: String(info, "text"),
		CreateTime:  Int(info, "createTime"),
		Video: Video{
			ID:           String(info, "id"),
			Height:       Int(meta, "height"),
			Width:        Int(meta, "width"),
			Duration:     Int(meta, "duration"),
			Ratio:        String(meta, "ratio"),
			Cover:        String(info, "covers", 0),
			OriginCover:  String(info, "coversOrigin", 0),
			DynamicCover: String(info, "coversDynamic", 0),
			PlayAddr:     String(info, "video", "urls", 0),
			DownloadAddr: String(info, "video", "urls", 0),
		},
		Author: Author{
			ID:           String(author, "userId"),
			UniqueID:     String(author, "uniqueId"),
			Nickname:     String(author, "nickName"),
			AvatarThumb:  String(author, "covers", 0),
			AvatarMedium: String(author, "coversMedium", 0),
			AvatarLarger: String(author, "coversLarger", 0),
			Signature:    String(author, "signature"),
			Verified:     Bool(author, "verified"),
			SecUID:       String(author, "secUid"),
		},
		Music: Music{
			ID:          String(music, "musicId"),
			Title:       String(music, "musicName"),
			PlayURL:     String(music, "playUrl", 0),
			CoverThumb:  String(music, "covers", 0),
			CoverMedium: String(music, "coversMedium", 0),
			CoverLarge:  String(music, "coversLarger", 0),
			AuthorName:  String(music, "authorName"),
			Original:    Bool(music, "original"),
		},
		Stats: Stats{
			DiggCount:    Int(info, "diggCount"),
			ShareCount:   Int(info, "shareCount"),
			CommentCount: Int(info, "commentCount"),
			PlayCount:    Int(info, "playCount"),
		},
		OriginalItem:      Bool(info, "isOriginal"),
		OfficialItem:      Bool(info, "isOfficial"),
		Secret:            Bool(info, "secret"),
		ForFriend:         Bool(info, "forFriend"),
		Digged:            Bool(info, "liked"),
		ItemCommentStatus: Int(info, "commentStatus"),
		ShowNotPass:       Bool(info, "showNotPass"),
	}
}

// NormalizeModuleItem maps an ItemModule entry from the page state, with
// its author resolved from UserModule.users, to a FeedItem.
func NormalizeModuleItem(item, author Doc) FeedItem {
	video := Get(item, "video")
	music := Get(item, "music")

	return FeedItem{
		ID:          String(item, "id"),
		Description: String(item, "desc"),
		CreateTime:  Int(item, "createTime"),
		Video: Video{
			ID:           String(video, "id"),
			Height:       Int(video, "height"),
			Width:        Int(video, "width"),
			Duration:     Int(video, "duration"),
			Ratio:        String(video, "ratio"),
			Cover:        String(video, "cover"),
			OriginCover:  String(video, "originCover"),
			DynamicCover: String(video, "dynamicCover"),
			PlayAddr:     String(video, "playAddr"),
			DownloadAddr: String(video, "downloadAddr"),
		},
		Author: Author{
			ID:           String(author, "id"),
			UniqueID:     String(author, "uniqueId"),
			Nickname:     String(author, "nickname"),
			AvatarThumb:  String(author, "avatarThumb"),
			AvatarMedium: String(author, "avatarMedium"),
			AvatarLarger: String(author, "avatarLarger"),
			Signature:    String(author, "signature"),
			Verified:     Bool(author, "verified"),
			SecUID:       String(author, "secUid"),
		},
		Music: Music{
			ID:          String(music, "id"),
			Title:       String(music, "title"),
			PlayURL:     String(music, "playUrl"),
			CoverThumb:  String(music, "coverThumb"),
			CoverMedium: String(music, "coverMedium"),
			CoverLarge:  String(music, "coverLarge"),
			AuthorName:  String(music, "authorName"),
			Original:    Bool(music, "original"),
		},
		Stats: Stats{
			DiggCount:    Int(item, "stats", "diggCount"),
			ShareCount:   Int(item, "stats", "shareCount"),
			CommentCount: Int(item, "stats", "commentCount"),
			PlayCount:    Int(item, "stats", "playCount"),
		},
		OriginalItem:      Bool(item, "originalItem"),
		OfficialItem:      Bool(item, "officalItem"),
		Secret:            Bool(item, "secret"),
		ForFriend:         Bool(item, "forFriend"),
		Digged:            Bool(item, "digged"),
		ItemCommentStatus: Int(item, "itemCommentStatus"),
		ShowNotPass:       Bool(item, "showNotPass"),
	}
}
