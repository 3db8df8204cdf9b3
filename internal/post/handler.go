package post

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
	"sociality/internal/media"
	"sociality/internal/view"
)

// Handler serves the post, comment and engagement routes, plus the
// post-listing routes that hang off /me and /users.
type Handler struct {
	svc     PostService
	storage media.Storage
	logger  *zap.Logger

	publicBaseURL string
	maxUploadMB   int64
}

func NewHandler(svc PostService, storage media.Storage, logger *zap.Logger, publicBaseURL string, maxUploadMB int64) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = 8
	}
	return &Handler{
		svc:           svc,
		storage:       storage,
		logger:        logger,
		publicBaseURL: publicBaseURL,
		maxUploadMB:   maxUploadMB,
	}
}

func (h *Handler) RegisterRoutes(api *mux.Router, auth *common.Auth) {
	api.Handle("/posts", auth.Require(http.HandlerFunc(h.handleCreate))).Methods(http.MethodPost)
	api.Handle("/posts/{postId}", auth.Optional(http.HandlerFunc(h.handleGet))).Methods(http.MethodGet)
	api.Handle("/posts/{postId}", auth.Require(http.HandlerFunc(h.handleDelete))).Methods(http.MethodDelete)

	api.Handle("/posts/{postId}/like", auth.Require(http.HandlerFunc(h.handleLike))).Methods(http.MethodPost)
	api.Handle("/posts/{postId}/like", auth.Require(http.HandlerFunc(h.handleUnlike))).Methods(http.MethodDelete)
	api.Handle("/posts/{postId}/save", auth.Require(http.HandlerFunc(h.handleSave))).Methods(http.MethodPost)
	api.Handle("/posts/{postId}/save", auth.Require(http.HandlerFunc(h.handleUnsave))).Methods(http.MethodDelete)

	api.Handle("/posts/{postId}/comments", auth.Optional(http.HandlerFunc(h.handleComments))).Methods(http.MethodGet)
	api.Handle("/posts/{postId}/comments", auth.Require(http.HandlerFunc(h.handleAddComment))).Methods(http.MethodPost)
	api.Handle("/posts/{postId}/comments/{commentId}", auth.Require(http.HandlerFunc(h.handleDeleteComment))).Methods(http.MethodDelete)
	api.Handle("/comments/{commentId}", auth.Require(http.HandlerFunc(h.handleDeleteCommentByID))).Methods(http.MethodDelete)

	api.Handle("/posts/{postId}/likes", auth.Optional(http.HandlerFunc(h.handleLikers))).Methods(http.MethodGet)

	api.Handle("/me/saved", auth.Require(http.HandlerFunc(h.handleMySaved))).Methods(http.MethodGet)
	api.Handle("/me/likes", auth.Require(http.HandlerFunc(h.handleMyLikes))).Methods(http.MethodGet)

	api.Handle("/users/{username}/posts", auth.Optional(http.HandlerFunc(h.handleUserPosts))).Methods(http.MethodGet)
	api.Handle("/users/{username}/likes", auth.Optional(http.HandlerFunc(h.handleUserLikes))).Methods(http.MethodGet)
}

func pathPostID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["postId"], 10, 64)
	if err != nil || id == 0 {
		return 0, common.NewError(common.CodeValidation, "Invalid post id")
	}
	return id, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFrom(r.Context())

	if err := r.ParseMultipartForm(h.maxUploadMB << 20); err != nil {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Invalid multipart body"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Image is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !media.AllowedImageType(contentType) {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Unsupported image type"))
		return
	}

	name := media.NewStoredName(header.Filename)
	if err := h.storage.Save(r.Context(), name, contentType, file); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	caption := r.FormValue("caption")
	created, err := h.svc.Create(r.Context(), userID, caption, media.PublicURL(h.publicBaseURL, name))
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"post": view.NewPostView(*created, true),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	viewerID := common.UserIDFrom(r.Context())

	p, err := h.svc.ByID(r.Context(), postID, viewerID)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"post": view.NewPostView(*p, viewerID != 0),
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	if err := h.svc.Delete(r.Context(), postID, common.UserIDFrom(r.Context())); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) handleLike(w http.ResponseWriter, r *http.Request) {
	h.writeLikeChange(w, r, true)
}

func (h *Handler) handleUnlike(w http.ResponseWriter, r *http.Request) {
	h.writeLikeChange(w, r, false)
}

func (h *Handler) writeLikeChange(w http.ResponseWriter, r *http.Request, like bool) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	userID := common.UserIDFrom(r.Context())

	var res *LikeResult
	if like {
		res, err = h.svc.Like(r.Context(), postID, userID)
	} else {
		res, err = h.svc.Unlike(r.Context(), postID, userID)
	}
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"liked":     res.Liked,
		"likeCount": res.LikeCount,
	})
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	h.writeSaveChange(w, r, true)
}

func (h *Handler) handleUnsave(w http.ResponseWriter, r *http.Request) {
	h.writeSaveChange(w, r, false)
}

func (h *Handler) writeSaveChange(w http.ResponseWriter, r *http.Request, save bool) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	userID := common.UserIDFrom(r.Context())

	if save {
		err = h.svc.Save(r.Context(), postID, userID)
	} else {
		err = h.svc.Unsave(r.Context(), postID, userID)
	}
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"saved": save})
}

func (h *Handler) handleComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	page := common.ParsePageQuery(r, 10, 50)

	comments, total, err := h.svc.Comments(r.Context(), postID, page.Offset(), page.Limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	pagination := common.NewPagination(page, total)
	common.WriteJSON(w, http.StatusOK, view.List("comments", view.NewCommentViews(comments), view.ListOptions{
		Pagination: &pagination,
		Data:       true,
	}))
}

type addCommentRequest struct {
	Body    string `json:"body"`
	Text    string `json:"text"`
	Comment string `json:"comment"`
}

// body returns the first non-empty of the aliases older clients send.
func (req addCommentRequest) body() string {
	for _, candidate := range []string{req.Body, req.Text, req.Comment} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Invalid request body"))
		return
	}

	c, err := h.svc.AddComment(r.Context(), postID, common.UserIDFrom(r.Context()), req.body())
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"comment": view.NewCommentView(*c),
	})
}

func (h *Handler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	commentID, err := strconv.ParseUint(mux.Vars(r)["commentId"], 10, 64)
	if err != nil || commentID == 0 {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Invalid comment id"))
		return
	}

	if err := h.svc.DeleteComment(r.Context(), postID, commentID, common.UserIDFrom(r.Context())); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) handleDeleteCommentByID(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.ParseUint(mux.Vars(r)["commentId"], 10, 64)
	if err != nil || commentID == 0 {
		common.WriteError(w, h.logger, common.NewError(common.CodeValidation, "Invalid comment id"))
		return
	}

	if err := h.svc.DeleteCommentByID(r.Context(), commentID, common.UserIDFrom(r.Context())); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) handleLikers(w http.ResponseWriter, r *http.Request) {
	postID, err := pathPostID(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	viewerID := common.UserIDFrom(r.Context())
	page := common.ParsePageQuery(r, 20, 100)

	likers, err := h.svc.Likers(r.Context(), postID, viewerID, page.Offset(), page.Limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	rows := view.NewFollowUsers(likers.Users, likers.Stats, likers.FollowingSet, viewerID)
	pagination := common.NewPagination(page, likers.Total)
	common.WriteJSON(w, http.StatusOK, view.List("users", rows, view.ListOptions{
		Aliases:    []string{"likers"},
		Pagination: &pagination,
		Data:       true,
	}))
}

func (h *Handler) handleMySaved(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFrom(r.Context())
	page := common.ParsePageQuery(r, 12, 50)

	posts, total, err := h.svc.SavedBy(r.Context(), userID, page.Offset(), page.Limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	pagination := common.NewPagination(page, total)
	common.WriteJSON(w, http.StatusOK, view.List("items", view.NewPostViews(posts, true), view.ListOptions{
		Aliases:    []string{"posts"},
		Pagination: &pagination,
		Data:       true,
	}))
}

// handleMyLikes returns a bare array; that is what its clients have always
// parsed.
func (h *Handler) handleMyLikes(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFrom(r.Context())
	page := common.ParsePageQuery(r, 50, 100)

	posts, _, err := h.svc.LikedBy(r.Context(), userID, page.Offset(), page.Limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, view.NewPostViews(posts, true))
}

func (h *Handler) handleUserPosts(w http.ResponseWriter, r *http.Request) {
	h.writeUserPosts(w, r, h.svc.ByAuthorUsername)
}

func (h *Handler) handleUserLikes(w http.ResponseWriter, r *http.Request) {
	h.writeUserPosts(w, r, h.svc.LikedByUsername)
}

type userPostLister func(ctx context.Context, username string, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error)

func (h *Handler) writeUserPosts(w http.ResponseWriter, r *http.Request, list userPostLister) {
	username := mux.Vars(r)["username"]
	viewerID := common.UserIDFrom(r.Context())
	page := common.ParsePageQuery(r, 12, 50)

	posts, total, err := list(r.Context(), username, viewerID, page.Offset(), page.Limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	pagination := common.NewPagination(page, total)
	common.WriteJSON(w, http.StatusOK, view.List("items", view.NewPostViews(posts, viewerID != 0), view.ListOptions{
		Aliases:    []string{"posts"},
		Pagination: &pagination,
		Data:       true,
	}))
}
