package user

import (
	"net/http"

	"sociality/internal/common"
	"sociality/internal/view"
)

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	viewerID := common.UserIDFrom(r.Context())
	page := common.ParsePageQuery(r, 20, 50)
	query := r.URL.Query().Get("q")

	users, total, err := h.svc.Search(r.Context(), query, page.Offset(), page.Limit)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	followingSet, err := h.svc.FollowingSet(r.Context(), viewerID, ids)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	pagination := common.NewPagination(page, total)
	common.WriteJSON(w, http.StatusOK, view.List("users", view.NewSearchUsers(users, followingSet), view.ListOptions{
		Aliases:    []string{"results"},
		Pagination: &pagination,
		Data:       true,
	}))
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	viewerID := common.UserIDFrom(r.Context())

	profile, err := h.svc.Profile(r.Context(), pathUsername(r), viewerID)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": view.NewPublicUser(profile.User, profile.Stats, profile.IsFollowing, profile.IsMe),
	})
}

func (h *Handler) handleUserFollowers(w http.ResponseWriter, r *http.Request) {
	target, err := h.svc.ByUsername(r.Context(), pathUsername(r))
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	h.writeFollowPage(w, r, target.UserID, "followers", wantsEnvelope(r))
}

func (h *Handler) handleUserFollowing(w http.ResponseWriter, r *http.Request) {
	target, err := h.svc.ByUsername(r.Context(), pathUsername(r))
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	h.writeFollowPage(w, r, target.UserID, "following", wantsEnvelope(r))
}

// writeFollowPage renders one page of a user's followers or following. The
// direction picks the repository query and doubles as the envelope alias.
func (h *Handler) writeFollowPage(w http.ResponseWriter, r *http.Request, userID uint64, direction string, envelope bool) {
	viewerID := common.UserIDFrom(r.Context())
	page := common.ParsePageQuery(r, 20, 100)

	var fp *FollowPage
	var err error
	if direction == "followers" {
		fp, err = h.svc.Followers(r.Context(), userID, page.Offset(), page.Limit)
	} else {
		fp, err = h.svc.Following(r.Context(), userID, page.Offset(), page.Limit)
	}
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	ids := make([]uint64, 0, len(fp.Users))
	for _, u := range fp.Users {
		ids = append(ids, u.UserID)
	}
	followingSet, err := h.svc.FollowingSet(r.Context(), viewerID, ids)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	rows := view.NewFollowUsers(fp.Users, fp.Stats, followingSet, viewerID)
	if !envelope {
		common.WriteJSON(w, http.StatusOK, rows)
		return
	}

	pagination := common.NewPagination(page, fp.Total)
	common.WriteJSON(w, http.StatusOK, view.List("users", rows, view.ListOptions{
		Aliases:    []string{direction},
		Pagination: &pagination,
		Data:       true,
	}))
}

func (h *Handler) handleFollow(w http.ResponseWriter, r *http.Request) {
	h.writeFollowChange(w, r, true)
}

func (h *Handler) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	h.writeFollowChange(w, r, false)
}

func (h *Handler) writeFollowChange(w http.ResponseWriter, r *http.Request, follow bool) {
	followerID := common.UserIDFrom(r.Context())
	username := pathUsername(r)

	var res *FollowResult
	var err error
	if follow {
		res, err = h.svc.Follow(r.Context(), followerID, username)
	} else {
		res, err = h.svc.Unfollow(r.Context(), followerID, username)
	}
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   FollowMessage(res.Target.Username, res.Following),
		"following": res.Following,
		"counts":    res.Stats,
	})
}
