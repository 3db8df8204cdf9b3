package user

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sociality/internal/common"
	"sociality/internal/media"
	"sociality/internal/view"
)

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFrom(r.Context())

	u, stats, err := h.svc.Me(r.Context(), userID)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profile": view.NewPublicUser(*u, stats, false, true),
		"stats":   stats,
	})
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	Username  *string `json:"username" validate:"omitempty,min=3,max=30,handle"`
	Phone     *string `json:"phone" validate:"omitempty,max=20,phone"`
	Bio       *string `json:"bio" validate:"omitempty,max=280"`
	AvatarURL *string `json:"avatarUrl"`
}

// handleUpdateMe accepts either JSON or multipart. Multipart is how the web
// client sends it, with an optional "avatar" image alongside the fields; a
// sent-but-empty field clears the value, an absent field is untouched.
func (h *Handler) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFrom(r.Context())

	var req updateProfileRequest
	var avatar *multipart.FileHeader
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		req, avatar, err = h.parseMultipartProfile(r)
	} else {
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			err = common.NewError(common.CodeValidation, "Invalid request body")
		}
	}
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, h.logger, common.ValidationError("Invalid input", common.FieldErrors(err)))
		return
	}

	// the avatar is only persisted once the fields have passed validation
	var storedName string
	if avatar != nil {
		storedName, err = h.saveAvatar(r, avatar)
		if err != nil {
			common.WriteError(w, h.logger, err)
			return
		}
		url := media.PublicURL(h.publicBaseURL, storedName)
		req.AvatarURL = &url
	}

	u, stats, err := h.svc.UpdateMe(r.Context(), userID, UpdateProfileInput{
		Name:      req.Name,
		Username:  req.Username,
		Phone:     req.Phone,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if storedName != "" {
			// the upload would otherwise be orphaned
			if delErr := h.storage.Delete(r.Context(), storedName); delErr != nil {
				h.logger.Warn("failed to remove rejected avatar upload",
					zap.String("name", storedName), zap.Error(delErr))
			}
		}
		common.WriteError(w, h.logger, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profile": view.NewPublicUser(*u, stats, false, true),
		"stats":   stats,
	})
}

func (h *Handler) parseMultipartProfile(r *http.Request) (updateProfileRequest, *multipart.FileHeader, error) {
	var req updateProfileRequest

	if err := r.ParseMultipartForm(h.maxUploadMB << 20); err != nil {
		return req, nil, common.NewError(common.CodeValidation, "Invalid multipart body")
	}

	field := func(name string) *string {
		values, ok := r.MultipartForm.Value[name]
		if !ok || len(values) == 0 {
			return nil
		}
		v := values[0]
		return &v
	}
	req.Name = field("name")
	req.Username = field("username")
	req.Phone = field("phone")
	req.Bio = field("bio")
	req.AvatarURL = field("avatarUrl")

	file, header, err := r.FormFile("avatar")
	if err != nil {
		if err == http.ErrMissingFile {
			return req, nil, nil
		}
		return req, nil, common.NewError(common.CodeValidation, "Invalid avatar upload")
	}
	file.Close()

	if !media.AllowedImageType(header.Header.Get("Content-Type")) {
		return req, nil, common.NewError(common.CodeValidation, "Unsupported image type")
	}
	return req, header, nil
}

func (h *Handler) saveAvatar(r *http.Request, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", common.NewError(common.CodeValidation, "Invalid avatar upload")
	}
	defer file.Close()

	name := media.NewStoredName(header.Filename)
	if err := h.storage.Save(r.Context(), name, header.Header.Get("Content-Type"), file); err != nil {
		return "", err
	}
	return name, nil
}

func (h *Handler) handleMeFollowers(w http.ResponseWriter, r *http.Request) {
	h.writeFollowPage(w, r, common.UserIDFrom(r.Context()), "followers", true)
}

func (h *Handler) handleMeFollowing(w http.ResponseWriter, r *http.Request) {
	h.writeFollowPage(w, r, common.UserIDFrom(r.Context()), "following", true)
}
