package request

type CreatePlanSnapshotRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

type UpdatePlanSnapshotRequest struct {
	Name  *string `json:"name,omitempty"`
	Notes *string `json:"notes,omitempty"`
}
