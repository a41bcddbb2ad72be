package catalog

import (
	jsoniter "github.com/json-iterator/go"
)

// RecordView is a DTO (data transfer object) exposing the state of a Record
// as scalars, suitable for rendering and JSON serialization.
type RecordView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Status Status `json:"status"`
}

// View returns a point-in-time snapshot of the record.
func (r *Record) View() RecordView {
	return RecordView{
		ID:     r.id.String(),
		Title:  r.title,
		Author: r.author,
		ISBN:   r.isbn,
		Status: r.Status(),
	}
}

// MarshalJSON serializes the record through its RecordView.
func (r *Record) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(r.View())
}

// ViewsOf converts a slice of records to their views, preserving order.
func ViewsOf(records []*Record) []RecordView {
	views := make([]RecordView, 0, len(records))
	for _, record := range records {
		views = append(views, record.View())
	}

	return views
}
