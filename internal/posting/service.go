package posting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"neighbornet/internal/core"
	"neighbornet/internal/feed"
)

// CreatePostRequest is the body of POST /api/posts.
type CreatePostRequest struct {
	Content             string        `json:"content" validate:"required,max=5000"`
	PostType            core.PostType `json:"post_type" validate:"post_type"`
	Priority            core.Priority `json:"priority" validate:"priority"`
	MediaURLs           []string      `json:"media_urls" validate:"omitempty,dive,required"`
	LocationLat         *float64      `json:"location_lat" validate:"omitempty,latitude"`
	LocationLng         *float64      `json:"location_lng" validate:"omitempty,longitude"`
	VisibilityRadius    *int          `json:"visibility_radius" validate:"omitempty,gt=0"`
	Tags                []int64       `json:"tags" validate:"omitempty,dive,gt=0"`
	IncidentType        string        `json:"incident_type" validate:"required_if=PostType incident,max=50"`
	Severity            string        `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	LocationDescription *string       `json:"location_description" validate:"omitempty,max=255"`
}

type Service struct {
	Logger    *slog.Logger
	Posts     core.PostRepository
	Publisher core.EventPublisher
	Enricher  *feed.Enricher

	validate *validator.Validate
}

func (s *Service) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "posting.Service")

	s.validate = validator.New(validator.WithRequiredStructEnabled())
	s.validate.RegisterTagNameFunc(jsonName)

	if err := s.validate.RegisterValidation("post_type", validPostType); err != nil {
		return err
	}

	return s.validate.RegisterValidation("priority", validPriority)
}

// Create validates and stores a post for authorID, then announces it. A failed announcement
// does not fail the creation.
func (s *Service) Create(ctx context.Context, authorID int64, req CreatePostRequest) (*feed.PostDetail, error) {
	req = withDefaults(req)

	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, validationError(err)
	}

	post, err := newPost(authorID, req)
	if err != nil {
		return nil, err
	}

	row, err := s.Posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	event := core.PostCreatedEvent{
		PostID:    row.PostID,
		UserID:    row.UserID,
		PostType:  row.PostType,
		Priority:  row.Priority,
		CreatedAt: row.CreatedAt,
	}
	if err := s.Publisher.PublishPostCreated(ctx, event); err != nil {
		s.Logger.Error("failed to publish post created event", "post_id", row.PostID, "error", err)
	}

	items, err := s.Enricher.Enrich(ctx, []core.PostRow{*row}, nil, feed.Options{Incidents: true})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("post created", "post_id", row.PostID, "user_id", authorID, "post_type", row.PostType)

	return lo.ToPtr(feed.NewPostDetail(items[0])), nil
}

func withDefaults(req CreatePostRequest) CreatePostRequest {
	req.Content = strings.TrimSpace(req.Content)
	req.IncidentType = strings.TrimSpace(req.IncidentType)

	if req.PostType == "" {
		req.PostType = core.PostTypeGeneral
	}
	if req.Priority == "" {
		req.Priority = core.PriorityNormal
	}
	if req.VisibilityRadius == nil {
		req.VisibilityRadius = lo.ToPtr(core.DefaultVisibilityRadius)
	}
	if req.PostType == core.PostTypeIncident && req.Severity == "" {
		req.Severity = core.DefaultSeverity
	}

	return req
}

func newPost(authorID int64, req CreatePostRequest) (core.NewPost, error) {
	post := core.NewPost{
		Post: core.PostModel{
			UserID:           authorID,
			Content:          req.Content,
			PostType:         req.PostType,
			Priority:         req.Priority,
			LocationLat:      req.LocationLat,
			LocationLng:      req.LocationLng,
			VisibilityRadius: *req.VisibilityRadius,
			Status:           core.PostStatusActive,
		},
		TagIDs: lo.Uniq(req.Tags),
	}

	if req.MediaURLs != nil {
		media, err := json.Marshal(req.MediaURLs)
		if err != nil {
			return core.NewPost{}, err
		}
		post.Post.MediaURLs = lo.ToPtr(string(media))
	}

	if req.PostType == core.PostTypeIncident {
		post.Incident = &core.IncidentModel{
			IncidentType:        req.IncidentType,
			Severity:            req.Severity,
			LocationDescription: req.LocationDescription,
		}
	}

	return post, nil
}

func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", core.ErrValidation, err)
	}

	messages := lo.Map(fieldErrors, func(fe validator.FieldError, _ int) string {
		if fe.Param() != "" {
			return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag())
	})

	return fmt.Errorf("%w: %s", core.ErrValidation, strings.Join(messages, ", "))
}

func validPostType(fl validator.FieldLevel) bool {
	return lo.Contains(core.PostTypes, core.PostType(fl.Field().String()))
}

func validPriority(fl validator.FieldLevel) bool {
	return lo.Contains(core.Priorities, core.Priority(fl.Field().String()))
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
