package dto

import (
	"jumpy/internal/domains/setting/model"
)

// SaveSettingsRequest is the whole key/value batch, applied atomically.
type SaveSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

type GetSettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

func (r *GetSettingsResponse) FromModels(models []model.Setting) {
	r.Settings = make(map[string]string, len(models))
	for _, m := range models {
		r.Settings[m.Key] = m.Value
	}
}
