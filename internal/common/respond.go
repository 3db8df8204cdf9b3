package common

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// WriteError translates any error into the wire format. All handlers funnel
// their failures through here.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := AsAppError(err)

	if appErr.Code == CodeInternal && logger != nil {
		logger.Error("request failed", zap.Error(appErr))
	}

	body := map[string]interface{}{"error": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["details"] = appErr.Fields
	}
	WriteJSON(w, appErr.HTTPStatus(), body)
}
