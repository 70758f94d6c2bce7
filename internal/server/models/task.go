package models

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID        int64
	UserID    int64
	Text      string
	Completed bool
}

// TaskUpdate carries a partial update: nil fields are left untouched.
type TaskUpdate struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether the update changes nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Text == nil && u.Completed == nil
}
