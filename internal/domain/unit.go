package domain

import "time"

// Unit is one node of the organizational forest. ParentID is nil for roots.
// Units are only ever created as children of existing units or as roots, so
// the forest contains no cycles by construction.
type Unit struct {
	ID        string
	Name      string
	ParentID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot reports whether the unit has no parent.
func (u *Unit) IsRoot() bool { return u.ParentID == nil }
