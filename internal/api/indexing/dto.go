package indexing

type IndexEventRequest struct {
	EventCode string `json:"event_code" validate:"required,min=4,max=32"`
}

// IndexReport aggregates per-image outcomes of a bulk indexing run. Failed
// images were logged and skipped; they never abort the run.
type IndexReport struct {
	Images      int `json:"images"`
	Indexed     int `json:"indexed"`
	Failed      int `json:"failed"`
	FacesStored int `json:"faces_stored"`
}

// ResetReport carries the counts of a best-effort reset. The two deletions
// are independent side effects; either count may be short of the actual
// population when items could not be deleted.
type ResetReport struct {
	FacesDeleted   int `json:"faces_deleted"`
	RecordsDeleted int `json:"records_deleted"`
}
