package core

import (
	"time"
)

type PostType string

const (
	PostTypeIncident     PostType = "incident"
	PostTypeEvent        PostType = "event"
	PostTypeHelp         PostType = "help"
	PostTypeQuestion     PostType = "question"
	PostTypeReview       PostType = "review"
	PostTypePoll         PostType = "poll"
	PostTypeAnnouncement PostType = "announcement"
	PostTypeGeneral      PostType = "general"
)

var PostTypes = []PostType{
	PostTypeIncident, PostTypeEvent, PostTypeHelp, PostTypeQuestion,
	PostTypeReview, PostTypePoll, PostTypeAnnouncement, PostTypeGeneral,
}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityNormal, PriorityHigh, PriorityUrgent}

// Rank orders priorities for the priority feed, lower comes first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	default:
		return 2
	}
}

type PostStatus string

const (
	PostStatusActive  PostStatus = "active"
	PostStatusRemoved PostStatus = "removed"
)

const (
	MaxContentLength        = 5000
	DefaultVisibilityRadius = 5000
	DefaultSeverity         = "medium"
)

// UserModel is a row of the users table.
type UserModel struct {
	UserID             int64     `gorm:"column:user_id;primaryKey" json:"user_id"`
	Email              string    `gorm:"column:email" json:"email"`
	PasswordHash       string    `gorm:"column:password_hash" json:"-"`
	Name               string    `gorm:"column:name" json:"name"`
	Bio                *string   `gorm:"column:bio" json:"bio"`
	Street             *string   `gorm:"column:street" json:"street"`
	Latitude           *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude          *float64  `gorm:"column:longitude" json:"longitude"`
	ProfileImageURL    *string   `gorm:"column:profile_image_url" json:"profile_image_url"`
	VerificationStatus string    `gorm:"column:verification_status" json:"verification_status"`
	IsModerator        bool      `gorm:"column:is_moderator" json:"is_moderator"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// Location is the stored position of a user, both coordinates are optional.
type Location struct {
	Latitude  *float64 `gorm:"column:latitude"`
	Longitude *float64 `gorm:"column:longitude"`
}

// PostModel is a row of the posts table.
type PostModel struct {
	PostID           int64      `gorm:"column:post_id;primaryKey" json:"post_id"`
	UserID           int64      `gorm:"column:user_id" json:"user_id"`
	Content          string     `gorm:"column:content" json:"content"`
	PostType         PostType   `gorm:"column:post_type" json:"post_type"`
	Priority         Priority   `gorm:"column:priority" json:"priority"`
	IsVerified       bool       `gorm:"column:is_verified" json:"is_verified"`
	MediaURLs        *string    `gorm:"column:media_urls" json:"media_urls"`
	LocationLat      *float64   `gorm:"column:location_lat" json:"location_lat"`
	LocationLng      *float64   `gorm:"column:location_lng" json:"location_lng"`
	VisibilityRadius int        `gorm:"column:visibility_radius" json:"visibility_radius"`
	LikesCount       int        `gorm:"column:likes_count" json:"likes_count"`
	CommentsCount    int        `gorm:"column:comments_count" json:"comments_count"`
	IsPinned         bool       `gorm:"column:is_pinned" json:"is_pinned"`
	Status           PostStatus `gorm:"column:status" json:"status"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

// PostRow is a post joined with its author projection.
type PostRow struct {
	PostModel

	AuthorID           int64    `gorm:"column:author_id"`
	AuthorName         string   `gorm:"column:author_name"`
	AuthorImage        *string  `gorm:"column:author_image"`
	AuthorVerification string   `gorm:"column:author_verification"`
	AuthorStreet       *string  `gorm:"column:author_street"`
	AuthorLatitude     *float64 `gorm:"column:author_latitude"`
	AuthorLongitude    *float64 `gorm:"column:author_longitude"`
}

type TagModel struct {
	TagID    int64  `gorm:"column:tag_id;primaryKey" json:"tag_id"`
	Name     string `gorm:"column:name" json:"name"`
	Category string `gorm:"column:category" json:"category"`
	Color    string `gorm:"column:color" json:"color"`
}

func (TagModel) TableName() string {
	return "tags"
}

type PostTagModel struct {
	PostID    int64     `gorm:"column:post_id;primaryKey"`
	TagID     int64     `gorm:"column:tag_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PostTagModel) TableName() string {
	return "post_tags"
}

type IncidentModel struct {
	IncidentID          int64     `gorm:"column:incident_id;primaryKey" json:"incident_id"`
	PostID              int64     `gorm:"column:post_id" json:"post_id"`
	IncidentType        string    `gorm:"column:incident_type" json:"incident_type"`
	Severity            string    `gorm:"column:severity" json:"severity"`
	LocationDescription *string   `gorm:"column:location_description" json:"location_description"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at"`
}

func (IncidentModel) TableName() string {
	return "incident_reports"
}

// NewPost is everything needed to create a post atomically.
type NewPost struct {
	Post     PostModel
	TagIDs   []int64
	Incident *IncidentModel
}

// PostCreatedEvent is published after a post is committed.
type PostCreatedEvent struct {
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	PostType  PostType  `json:"post_type"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// Page selects a slice of a feed. A zero Size means everything.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}
