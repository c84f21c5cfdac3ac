package update_addon_status

// UpdateAddonStatusRequest HTTP request model
type UpdateAddonStatusRequest struct {
	Status string `json:"status"`
}
