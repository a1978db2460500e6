package tiktok

import (
	"encoding/json"
	"errors"
)

// Caller errors. Upstream failures never surface as errors; they come back
// as an Envelope with Meta.Success false.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedResponse = errors.New("malformed response")
)

// Info types.
const (
	InfoChallenge = "challenge"
	InfoUser      = "user"
	InfoTrending  = "trending"
	InfoVideo     = "video"
)

// Meta is the normalized outcome of one operation.
type Meta struct {
	Success  bool    `json:"success"`
	HTTPCode int     `json:"httpCode"`
	AppCode  Doc     `json:"appCode"`
	Message  *string `json:"message"`
}

// Detail carries the upstream sub-documents attached to an envelope.
// Which fields are set depends on the operation.
type Detail struct {
	Challenge Doc    `json:"challenge,omitempty"`
	User      Doc    `json:"user,omitempty"`
	Stats     Doc    `json:"stats,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Info describes what a successful envelope refers to.
type Info struct {
	Type   string  `json:"type"`
	Detail *Detail `json:"detail"`
}

// Envelope is the result of every public operation. Items, HasMore and
// the cursors are only present for successful feed-shaped results, which
// is signalled by a non-nil Items.
type Envelope struct {
	Meta      Meta       `json:"meta"`
	Info      *Info      `json:"info,omitempty"`
	UserInfo  *Detail    `json:"userinfo,omitempty"`
	Items     []FeedItem `json:"items"`
	HasMore   bool       `json:"hasMore"`
	MinCursor Doc        `json:"minCursor"`
	MaxCursor Doc        `json:"maxCursor"`
}

// Paged reports whether e carries a page of items.
func (e *Envelope) Paged() bool {
	return e.Items != nil
}

// MarshalJSON drops the paging fields from non-paged envelopes.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Items != nil {
		type paged Envelope
		return json.Marshal(paged(e))
	}
	return json.Marshal(struct {
		Meta     Meta    `json:"meta"`
		Info     *Info   `json:"info,omitempty"`
		UserInfo *Detail `json:"userinfo,omitempty"`
	}{e.Meta, e.Info, e.UserInfo})
}

// FeedItem is a normalized video record. Every leaf is a pointer so a field
// the upstream omitted serializes as null.
type FeedItem struct {
	ID                *string `json:"id"`
	Description       *string `json:"description"`
	CreateTime        *int64  `json:"createTime"`
	Video             Video   `json:"video"`
	Author            Author  `json:"author"`
	Music             Music   `json:"music"`
	Stats             Stats   `json:"stats"`
	OriginalItem      *bool   `json:"originalItem"`
	OfficialItem      *bool   `json:"officialItem"`
	Secret            *bool   `json:"secret"`
	ForFriend         *bool   `json:"forFriend"`
	Digged            *bool   `json:"digged"`
	ItemCommentStatus *int64  `json:"itemCommentStatus"`
	ShowNotPass       *bool   `json:"showNotPass"`
}

type Video struct {
	ID           *string `json:"id"`
	Height       *int64  `json:"height"`
	Width        *int64  `json:"width"`
	Duration     *int64  `json:"duration"`
	Ratio        *string `json:"ratio"`
	Cover        *string `json:"cover"`
	OriginCover  *string `json:"originCover"`
	DynamicCover *string `json:"dynamicCover"`
	PlayAddr     *string `json:"playAddr"`
	DownloadAddr *string `json:"downloadAddr"`
}

type Author struct {
	ID           *string `json:"id"`
	UniqueID     *string `json:"uniqueId"`
	Nickname     *string `json:"nickname"`
	AvatarThumb  *string `json:"avatarThumb"`
	AvatarMedium *string `json:"avatarMedium"`
	AvatarLarger *string `json:"avatarLarger"`
	Signature    *string `json:"signature"`
	Verified     *bool   `json:"verified"`
	SecUID       *string `json:"secUid"`
}

type Music struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	PlayURL     *string `json:"playUrl"`
	CoverThumb  *string `json:"coverThumb"`
	CoverMedium *string `json:"coverMedium"`
	CoverLarge  *string `json:"coverLarge"`
	AuthorName  *string `json:"authorName"`
	Original    *bool   `json:"original"`
}

type Stats struct {
	DiggCount    *int64 `json:"diggCount"`
	ShareCount   *int64 `json:"shareCount"`
	CommentCount *int64 `json:"commentCount"`
	PlayCount    *int64 `json:"playCount"`
}
