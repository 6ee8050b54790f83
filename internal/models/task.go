package models

// Task is a single row of the tasks table.
// ID is assigned by the store on insert and never reused.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetID lets output formatters print just the ID in quiet mode
func (t *Task) GetID() int {
	return t.ID
}
