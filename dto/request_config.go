package dto

type UpdateRequestConfigRequest struct {
	CooldownMinutes  *uint64 `json:"duration_in_minutes,omitempty"`
	EnableRequests   *bool   `json:"enable_requests,omitempty"`
	EnableGDRequests *bool   `json:"enable_gd_requests,omitempty"`
}

func (r UpdateRequestConfigRequest) Validate() error {
	return validate.Struct(r)
}

type RequestConfigResponse struct {
	CooldownMinutes  int64 `json:"duration_in_minutes"`
	EnableRequests   bool  `json:"enable_requests"`
	EnableGDRequests bool  `json:"enable_gd_requests"`
}
