package feed

import (
	"fmt"
	"time"

	"neighbornet/internal/core"
)

// PostView is the post and author projection shared by every feed variant.
type PostView struct {
	PostID             int64           `json:"post_id"`
	UserID             int64           `json:"user_id"`
	Content            string          `json:"content"`
	PostType           core.PostType   `json:"post_type"`
	Priority           core.Priority   `json:"priority"`
	IsVerified         bool            `json:"is_verified"`
	MediaURLs          *Media          `json:"media_urls"`
	LocationLat        *float64        `json:"location_lat"`
	LocationLng        *float64        `json:"location_lng"`
	VisibilityRadius   int             `json:"visibility_radius"`
	LikesCount         int             `json:"likes_count"`
	CommentsCount      int             `json:"comments_count"`
	IsPinned           bool            `json:"is_pinned"`
	Status             core.PostStatus `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	AuthorID           int64           `json:"author_id"`
	AuthorName         string          `json:"author_name"`
	AuthorImage        *string         `json:"author_image"`
	AuthorVerification string          `json:"author_verification"`
	AuthorStreet       *string         `json:"author_street"`
}

type FeedItem struct {
	PostView
	Tags            []core.TagModel     `json:"tags"`
	IncidentDetails *core.IncidentModel `json:"incident_details"`
	Distance        *int64              `json:"distance"`
	DistanceText    *string             `json:"distance_text"`
}

type AlertItem struct {
	PostView
	Tags            []core.TagModel     `json:"tags"`
	IncidentDetails *core.IncidentModel `json:"incident_details"`
	Distance        *int64              `json:"distance"`
}

type SearchItem struct {
	PostView
	Tags []core.TagModel `json:"tags"`
}

type PostDetail struct {
	PostView
	Tags            []core.TagModel     `json:"tags"`
	IncidentDetails *core.IncidentModel `json:"incident_details"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type FeedPage struct {
	Success    bool       `json:"success"`
	Posts      []FeedItem `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

type AlertDigest struct {
	Success bool        `json:"success"`
	Alerts  []AlertItem `json:"alerts"`
}

type SearchResults struct {
	Success bool         `json:"success"`
	Query   *string      `json:"query,omitempty"`
	Posts   []SearchItem `json:"posts"`
}

func newPostView(item Item) PostView {
	row := item.Row
	return PostView{
		PostID:             row.PostID,
		UserID:             row.UserID,
		Content:            row.Content,
		PostType:           row.PostType,
		Priority:           row.Priority,
		IsVerified:         row.IsVerified,
		MediaURLs:          item.Media,
		LocationLat:        row.LocationLat,
		LocationLng:        row.LocationLng,
		VisibilityRadius:   row.VisibilityRadius,
		LikesCount:         row.LikesCount,
		CommentsCount:      row.CommentsCount,
		IsPinned:           row.IsPinned,
		Status:             row.Status,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		AuthorID:           row.AuthorID,
		AuthorName:         row.AuthorName,
		AuthorImage:        row.AuthorImage,
		AuthorVerification: row.AuthorVerification,
		AuthorStreet:       row.AuthorStreet,
	}
}

func newFeedItem(item Item, _ int) FeedItem {
	return FeedItem{
		PostView:        newPostView(item),
		Tags:            item.Tags,
		IncidentDetails: item.Incident,
		Distance:        RoundedMeters(item.Distance),
		DistanceText:    DistanceText(item.Distance),
	}
}

func newAlertItem(item Item, _ int) AlertItem {
	return AlertItem{
		PostView:        newPostView(item),
		Tags:            item.Tags,
		IncidentDetails: item.Incident,
		Distance:        RoundedMeters(item.Distance),
	}
}

// NewPostDetail renders a single enriched post.
func NewPostDetail(item Item) PostDetail {
	return PostDetail{
		PostView:        newPostView(item),
		Tags:            item.Tags,
		IncidentDetails: item.Incident,
	}
}

func newSearchItem(item Item, _ int) SearchItem {
	return SearchItem{
		PostView: newPostView(item),
		Tags:     item.Tags,
	}
}

// DistanceText renders meters as kilometers with one decimal, e.g. "1.3 km away".
func DistanceText(distance *float64) *string {
	if distance == nil {
		return nil
	}
	text := fmt.Sprintf("%.1f km away", *distance/1000)
	return &text
}
