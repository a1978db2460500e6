package tiktok

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedItemJSON = `{
	"itemInfos": {
		"id": "6900000000000000001",
		"text": "dance #fyp",
		"createTime": "1607000000",
		"video": {
			"urls": ["https://v16.example/play.mp4", "https://v16.example/alt.mp4"],
			"videoMeta": {"width": 576, "height": 1024, "duration": 15, "ratio": 0.5625}
		},
		"covers": ["https://p16.example/cover.jpg"],
		"coversOrigin": ["https://p16.example/origin.jpg"],
		"coversDynamic": ["https://p16.example/dynamic.webp"],
		"diggCount": 120, "shareCount": 4, "commentCount": 9, "playCount": 5000,
		"isOriginal": true, "isOfficial": false, "secret": false, "forFriend": false,
		"liked": false, "commentStatus": 0, "showNotPass": false
	},
	"authorInfos": {
		"userId": "6800000000000000001", "uniqueId": "alice", "nickName": "Alice",
		"covers": ["https://p16.example/a-thumb.jpg"],
		"coversMedium": ["https://p16.example/a-medium.jpg"],
		"coversLarger": ["https://p16.example/a-large.jpg"],
		"signature": "hi", "verified": true, "secUid": "MS4wLjAB"
	},
	"musicInfos": {
		"musicId": "6700000000000000001", "musicName": "original sound",
		"playUrl": ["https://sf16.example/music.mp3"],
		"covers": ["https://p16.example/m-thumb.jpg"],
		"coversMedium": ["https://p16.example/m-medium.jpg"],
		"coversLarger": ["https://p16.example/m-large.jpg"],
		"authorName": "Alice", "original": true
	}
}`

func TestNormalizeEmpty(t *testing.T) {
	items := Normalize(nil)
	require.NotNil(t, items)
	assert.Empty(t, items)

	data, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestNormalizeKeepsOrderAndLength(t *testing.T) {
	raw := List(mustDoc(t, `[
		{"itemInfos":{"id":"1"}},
		{},
		null,
		"garbage",
		{"itemInfos":{"id":"5"}}
	]`))
	items := Normalize(raw)
	require.Len(t, items, 5)
	assert.Equal(t, "1", *items[0].ID)
	assert.Nil(t, items[1].ID)
	assert.Nil(t, items[2].ID)
	assert.Nil(t, items[3].ID)
	assert.Equal(t, "5", *items[4].ID)
}

func TestNormalizeFields(t *testing.T) {
	item := Normalize([]Doc{mustDoc(t, feedItemJSON)})[0]

	assert.Equal(t, "6900000000000000001", *item.ID)
	assert.Equal(t, "dance #fyp", *item.Description)
	assert.Equal(t, int64(1607000000), *item.CreateTime)

	assert.Equal(t, "6900000000000000001", *item.Video.ID)
	assert.Equal(t, int64(1024), *item.Video.Height)
	assert.Equal(t, int64(576), *item.Video.Width)
	assert.Equal(t, int64(15), *item.Video.Duration)
	assert.Equal(t, "0.5625", *item.Video.Ratio)
	assert.Equal(t, "https://p16.example/cover.jpg", *item.Video.Cover)
	assert.Equal(t, "https://p16.example/origin.jpg", *item.Video.OriginCover)
	assert.Equal(t, "https://p16.example/dynamic.webp", *item.Video.DynamicCover)
	assert.Equal(t, "https://v16.example/play.mp4", *item.Video.PlayAddr)
	assert.Equal(t, "https://v16.example/play.mp4", *item.Video.DownloadAddr)

	assert.Equal(t, "6800000000000000001", *item.Author.ID)
	assert.Equal(t, "alice", *item.Author.UniqueID)
	assert.Equal(t, "Alice", *item.Author.Nickname)
	assert.Equal(t, "https://p16.example/a-thumb.jpg", *item.Author.AvatarThumb)
	assert.Equal(t, "https://p16.example/a-medium.jpg", *item.Author.AvatarMedium)
	assert.Equal(t, "https://p16.example/a-large.jpg", *item.Author.AvatarLarger)
	assert.Equal(t, "hi", *item.Author.Signature)
	assert.True(t, *item.Author.Verified)
	assert.Equal(t, "MS4wLjAB", *item.Author.SecUID)

	assert.Equal(t, "6700000000000000001", *item.Music.ID)
	assert.Equal(t, "original sound", *item.Music.Title)
	assert.Equal(t, "https://sf16.example/music.mp3", *item.Music.PlayURL)
	assert.Equal(t, "https://p16.example/m-thumb.jpg", *item.Music.CoverThumb)
	assert.Equal(t, "https://p16.example/m-medium.jpg", *item.Music.CoverMedium)
	assert.Equal(t, "https://p16.example/m-large.jpg", *item.Music.CoverLarge)
	assert.Equal(t, "Alice", *item.Music.AuthorName)
	assert.True(t, *item.Music.Original)

	assert.Equal(t, int64(120), *item.Stats.DiggCount)
	assert.Equal(t, int64(4), *item.Stats.ShareCount)
	assert.Equal(t, int64(9), *item.Stats.CommentCount)
	assert.Equal(t, int64(5000), *item.Stats.PlayCount)

	assert.True(t, *item.OriginalItem)
	assert.False(t, *item.OfficialItem)
	assert.False(t, *item.Secret)
	assert.False(t, *item.ForFriend)
	assert.False(t, *item.Digged)
	assert.Equal(t, int64(0), *item.ItemCommentStatus)
	assert.False(t, *item.ShowNotPass)
}

// assertAllNil fails for any non-nil pointer leaf reachable from v.
func assertAllNil(t *testing.T, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.Pointer:
		assert.True(t, v.IsNil(), "%s is not nil", path)
	case reflect.Struct:
		for i := range v.NumField() {
			assertAllNil(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	default:
		t.Errorf("%s has unexpected kind %s", path, v.Kind())
	}
}

func TestNormalizeAllFieldsMissing(t *testing.T) {
	for _, raw := range []Doc{nil, map[string]any{}, mustDoc(t, `{"itemInfos":{},"authorInfos":null,"musicInfos":[]}`)} {
		item := Normalize([]Doc{raw})[0]
		assertAllNil(t, reflect.ValueOf(item), "item")
	}
	assertAllNil(t, reflect.ValueOf(NormalizeModuleItem(nil, nil)), "module")
}

func TestNormalizeAllMissingSerializesNulls(t *testing.T) {
	data, err := json.Marshal(Normalize([]Doc{nil})[0])
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "description")
	assert.Nil(t, m["description"])
	assert.Contains(t, m, "officialItem")
	assert.Nil(t, m["officialItem"])
	assert.Nil(t, m["video"].(map[string]any)["playAddr"])
}

func TestNormalizeModuleItem(t *testing.T) {
	item := mustDoc(t, `{
		"id": "7001", "desc": "hello", "createTime": 1650000000, "author": "alice",
		"video": {"id": "7001", "height": 1024, "width": 576, "duration": 12, "ratio": "720p",
			"cover": "c.jpg", "originCover": "o.jpg", "dynamicCover": "d.webp",
			"playAddr": "play.mp4", "downloadAddr": "dl.mp4"},
		"music": {"id": "m1", "title": "song", "playUrl": "m.mp3", "coverThumb": "t.jpg",
			"coverMedium": "md.jpg", "coverLarge": "l.jpg", "authorName": "Band", "original": false},
		"stats": {"diggCount": 1, "shareCount": 2, "commentCount": 3, "playCount": 4},
		"originalItem": false, "officalItem": true, "secret": false, "forFriend": false,
		"digged": true, "itemCommentStatus": 2, "showNotPass": false
	}`)
	author := mustDoc(t, `{"id":"42","uniqueId":"alice","nickname":"Alice","avatarThumb":"at.jpg",
		"avatarMedium":"am.jpg","avatarLarger":"al.jpg","signature":"sig","verified":false,"secUid":"S"}`)

	got := NormalizeModuleItem(item, author)

	assert.Equal(t, "7001", *got.ID)
	assert.Equal(t, "hello", *got.Description)
	assert.Equal(t, int64(1650000000), *got.CreateTime)
	assert.Equal(t, "720p", *got.Video.Ratio)
	assert.Equal(t, "play.mp4", *got.Video.PlayAddr)
	assert.Equal(t, "dl.mp4", *got.Video.DownloadAddr)
	assert.Equal(t, "42", *got.Author.ID)
	assert.Equal(t, "Alice", *got.Author.Nickname)
	assert.Equal(t, "al.jpg", *got.Author.AvatarLarger)
	assert.Equal(t, "song", *got.Music.Title)
	assert.False(t, *got.Music.Original)
	assert.Equal(t, int64(4), *got.Stats.PlayCount)
	assert.True(t, *got.OfficialItem)
	assert.True(t, *got.Digged)
	assert.Equal(t, int64(2), *got.ItemCommentStatus)
}
