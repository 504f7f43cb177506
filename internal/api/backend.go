package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"neighbornet/internal/auth"
	"neighbornet/internal/core"
	"neighbornet/internal/feed"
	"neighbornet/internal/posting"
)

const (
	maxPageSize = 100
	maxBodySize = 1 << 20
)

type Backend struct {
	Logger    *slog.Logger
	Assembler *feed.Assembler
	Posting   *posting.Service
	Tags      core.TagRepository
	Users     core.UserRepository
}

func (b *Backend) Init(context.Context) error {
	b.Logger = b.Logger.With("component", "api.Backend")
	return nil
}

func (b *Backend) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (b *Backend) Feed(w http.ResponseWriter, r *http.Request) {
	viewerID, err := viewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := pageFrom(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := b.Assembler.Full(r.Context(), viewerID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (b *Backend) PriorityFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, err := viewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := b.Assembler.Priority(r.Context(), viewerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (b *Backend) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := b.Assembler.Search(r.Context(), core.NewSearchFilter(query.Get("query"), query.Get("tag")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (b *Backend) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewerID, err := viewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req posting.CreatePostRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid request body: %w", core.ErrValidation, err))
		return
	}

	post, err := b.Posting.Create(r.Context(), viewerID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Post created successfully",
		"post":    post,
	})
}

func (b *Backend) AllTags(w http.ResponseWriter, r *http.Request) {
	tags, err := b.Tags.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tags":    tags,
	})
}

func (b *Backend) Post(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil || postID < 1 {
		writeError(w, r, fmt.Errorf("%w: postId must be a positive integer", core.ErrValidation))
		return
	}

	post, err := b.Assembler.Post(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"post":    post,
	})
}

func (b *Backend) Profile(w http.ResponseWriter, r *http.Request) {
	viewerID, err := viewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := b.Users.GetProfile(r.Context(), viewerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

func viewer(r *http.Request) (int64, error) {
	viewerID, ok := auth.ViewerFrom(r.Context())
	if !ok {
		return 0, fmt.Errorf("%w: user not authenticated", core.ErrUnauthenticated)
	}
	return viewerID, nil
}

// pageFrom reads page and limit. Without limit the whole feed is returned as a single page.
func pageFrom(query url.Values) (core.Page, error) {
	rawLimit := query.Get("limit")
	if rawLimit == "" {
		return core.Page{}, nil
	}

	size, err := strconv.Atoi(rawLimit)
	if err != nil || size < 1 || size > maxPageSize {
		return core.Page{}, fmt.Errorf("%w: limit must be between 1 and %d", core.ErrValidation, maxPageSize)
	}

	number := 1
	if rawPage := query.Get("page"); rawPage != "" {
		number, err = strconv.Atoi(rawPage)
		if err != nil || number < 1 {
			return core.Page{}, fmt.Errorf("%w: page must be a positive integer", core.ErrValidation)
		}
	}

	return core.Page{Number: number, Size: size}, nil
}
