// Package view shapes persistence rows into the public JSON payloads. Every
// response type here is canonical; endpoints that historically duplicated the
// payload under aliased keys get that shape from List, never by hand.
package view

import (
	"time"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
)

// nullable renders empty strings as JSON null, matching the legacy payloads.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func displayName(u dbmysql.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// UserMini is the embedded author blob on posts and comments.
type UserMini struct {
	ID          uint64  `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	Name        *string `json:"name"`
	AvatarURL   *string `json:"avatarUrl"`
}

func NewUserMini(u dbmysql.User) UserMini {
	return UserMini{
		ID:          u.UserID,
		Username:    u.Username,
		DisplayName: displayName(u),
		Name:        nullable(u.Name),
		AvatarURL:   nullable(u.AvatarURL),
	}
}

// PostView is a post as clients see it. Liked/Saved are omitted entirely for
// anonymous viewers; for authenticated viewers they are always present.
type PostView struct {
	ID           uint64   `json:"id"`
	ImageURL     string   `json:"imageUrl"`
	Caption      string   `json:"caption"`
	CreatedAt    string   `json:"createdAt"`
	Author       UserMini `json:"author"`
	LikeCount    int64    `json:"likeCount"`
	CommentCount int64    `json:"commentCount"`
	Liked        *bool    `json:"liked,omitempty"`
	Saved        *bool    `json:"saved,omitempty"`
}

func NewPostView(p dbmysql.PostWithMeta, authenticated bool) PostView {
	v := PostView{
		ID:           p.PostID,
		ImageURL:     p.ImageURL,
		Caption:      p.Caption,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
		Author:       NewUserMini(p.Author),
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
	}
	if authenticated {
		liked, saved := p.Liked, p.Saved
		v.Liked = &liked
		v.Saved = &saved
	}
	return v
}

func NewPostViews(posts []dbmysql.PostWithMeta, authenticated bool) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostView(p, authenticated))
	}
	return out
}

type CommentView struct {
	ID        uint64   `json:"id"`
	PostID    uint64   `json:"postId"`
	Body      string   `json:"body"`
	CreatedAt string   `json:"createdAt"`
	Author    UserMini `json:"author"`
}

func NewCommentView(c dbmysql.Comment) CommentView {
	return CommentView{
		ID:        c.CommentID,
		PostID:    c.PostID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		Author:    NewUserMini(c.User),
	}
}

func NewCommentViews(comments []dbmysql.Comment) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentView(c))
	}
	return out
}

// PublicUserView is the full profile payload.
type PublicUserView struct {
	ID          uint64            `json:"id"`
	Username    string            `json:"username"`
	Name        *string           `json:"name"`
	DisplayName string            `json:"displayName"`
	Bio         *string           `json:"bio"`
	AvatarURL   *string           `json:"avatarUrl"`
	Email       string            `json:"email"`
	Phone       *string           `json:"phone"`
	Counts      dbmysql.UserStats `json:"counts"`
	IsFollowing bool              `json:"isFollowing"`
	IsMe        bool              `json:"isMe"`
}

func NewPublicUser(u dbmysql.User, stats dbmysql.UserStats, isFollowing, isMe bool) PublicUserView {
	return PublicUserView{
		ID:          u.UserID,
		Username:    u.Username,
		Name:        nullable(u.Name),
		DisplayName: displayName(u),
		Bio:         nullable(u.Bio),
		AvatarURL:   nullable(u.AvatarURL),
		Email:       u.Email,
		Phone:       nullable(u.Phone),
		Counts:      stats,
		IsFollowing: isFollowing,
		IsMe:        isMe,
	}
}

// FollowUserView is the row shape for followers/following/likers lists.
type FollowUserView struct {
	ID          uint64            `json:"id"`
	Username    string            `json:"username"`
	Name        *string           `json:"name"`
	DisplayName string            `json:"displayName"`
	AvatarURL   *string           `json:"avatarUrl"`
	Counts      dbmysql.UserStats `json:"counts"`
	IsFollowing bool              `json:"isFollowing"`
	IsMe        bool              `json:"isMe"`
}

func NewFollowUser(u dbmysql.User, stats dbmysql.UserStats, isFollowing, isMe bool) FollowUserView {
	return FollowUserView{
		ID:          u.UserID,
		Username:    u.Username,
		Name:        nullable(u.Name),
		DisplayName: displayName(u),
		AvatarURL:   nullable(u.AvatarURL),
		Counts:      stats,
		IsFollowing: isFollowing,
		IsMe:        isMe,
	}
}

// NewFollowUsers builds list rows, resolving each candidate against the
// viewer's outgoing-follow set and stats map computed in one batch upstream.
func NewFollowUsers(users []dbmysql.User, stats map[uint64]dbmysql.UserStats, followingSet map[uint64]bool, viewerID uint64) []FollowUserView {
	out := make([]FollowUserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewFollowUser(u, stats[u.UserID], followingSet[u.UserID], viewerID == u.UserID))
	}
	return out
}

// SearchUserView is the slim row shape the search endpoint returns.
type SearchUserView struct {
	ID             uint64  `json:"id"`
	Username       string  `json:"username"`
	Name           *string `json:"name"`
	DisplayName    string  `json:"displayName"`
	AvatarURL      *string `json:"avatarUrl"`
	IsFollowedByMe bool    `json:"isFollowedByMe"`
}

func NewSearchUsers(users []dbmysql.User, followingSet map[uint64]bool) []SearchUserView {
	out := make([]SearchUserView, 0, len(users))
	for _, u := range users {
		out = append(out, SearchUserView{
			ID:             u.UserID,
			Username:       u.Username,
			Name:           nullable(u.Name),
			DisplayName:    displayName(u),
			AvatarURL:      nullable(u.AvatarURL),
			IsFollowedByMe: followingSet[u.UserID],
		})
	}
	return out
}

// ListOptions controls the compatibility envelope around a list payload.
type ListOptions struct {
	// Aliases are legacy duplicate keys for the same items slice.
	Aliases []string
	// Pagination is included when non-nil.
	Pagination *common.Pagination
	// NextCursor is emitted (possibly as null) when IncludeNext is set.
	NextCursor  *string
	IncludeNext bool
	// Data duplicates the whole payload under a "data" key.
	Data bool
}

// List renders one canonical items slice through the compatibility envelope:
// older clients read aliased keys and the nested data block, newer ones read
// the primary key. Dropping compatibility later means deleting options here,
// not touching handlers.
func List(primary string, items interface{}, opts ListOptions) map[string]interface{} {
	inner := map[string]interface{}{primary: items}
	for _, alias := range opts.Aliases {
		inner[alias] = items
	}
	if opts.Pagination != nil {
		inner["pagination"] = *opts.Pagination
	}
	if opts.IncludeNext {
		inner["nextCursor"] = opts.NextCursor
	}

	if !opts.Data {
		return inner
	}

	body := make(map[string]interface{}, len(inner)+1)
	for k, v := range inner {
		body[k] = v
	}
	body["data"] = inner
	return body
}
