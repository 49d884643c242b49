package entity

// VideoFilter selects rows for the video listing views.
type VideoFilter struct {
	// ViewerID sees their own unpublished videos; everyone else only published ones.
	ViewerID string
	OwnerID  string
	Query    string
	SortBy   string
	SortDesc bool
}
