// Package feed serves the home timeline: every post, newest first.
package feed

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"sociality/internal/common"
	"sociality/internal/post"
	"sociality/internal/view"
)

type Handler struct {
	posts  post.PostService
	logger *zap.Logger
}

func NewHandler(posts post.PostService, logger *zap.Logger) *Handler {
	return &Handler{posts: posts, logger: logger}
}

func (h *Handler) RegisterRoutes(api *mux.Router, auth *common.Auth) {
	api.Handle("/feed", auth.Optional(http.HandlerFunc(h.handleFeed))).Methods(http.MethodGet)
}

// handleFeed serves both pagination styles: ?cursor= walks the timeline by
// post id, otherwise page/limit offsets apply.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("cursor") {
		h.cursorFeed(w, r)
		return
	}
	h.pagedFeed(w, r)
}

func (h *Handler) pagedFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := common.UserIDFrom(r.Context())
	page := common.ParsePageQuery(r, 12, 50)

	posts, total, err := h.posts.Feed(r.Context(), viewerID, page.Offset(), page.Limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	pagination := common.NewPagination(page, total)
	common.WriteJSON(w, http.StatusOK, view.List("items", view.NewPostViews(posts, viewerID != 0), view.ListOptions{
		Aliases:     []string{"posts"},
		Pagination:  &pagination,
		NextCursor:  pagination.NextPageCursor(),
		IncludeNext: true,
		Data:        true,
	}))
}

func (h *Handler) cursorFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := common.UserIDFrom(r.Context())

	// cursor is the id of the last post already seen; empty means the top
	var cursor uint64
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Invalid cursor"))
			return
		}
		cursor = parsed
	}

	limit := 12
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			limit = n
		}
	}
	if limit > 50 {
		limit = 50
	}

	posts, next, err := h.posts.FeedAfter(r.Context(), viewerID, cursor, limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	var nextCursor *string
	if next != nil {
		s := strconv.FormatUint(*next, 10)
		nextCursor = &s
	}

	common.WriteJSON(w, http.StatusOK, view.List("items", view.NewPostViews(posts, viewerID != 0), view.ListOptions{
		Aliases:     []string{"posts"},
		NextCursor:  nextCursor,
		IncludeNext: true,
		Data:        true,
	}))
}
