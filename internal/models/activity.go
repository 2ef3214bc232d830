package models

// Activity is one extracurricular offering. The activity name is not a
// field here; it is the key under which the activity lives in a Catalog.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog maps activity name to activity. Names are exact, case-sensitive
// keys and may contain spaces ("Chess Club").
type Catalog map[string]*Activity

// HasParticipant reports whether email is currently on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the activity, including its roster.
func (a *Activity) Clone() *Activity {
	cp := &Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    make([]string, len(a.Participants)),
	}
	copy(cp.Participants, a.Participants)
	return cp
}

// Clone returns a deep copy of the whole catalog.
func (c Catalog) Clone() Catalog {
	cp := make(Catalog, len(c))
	for name, activity := range c {
		cp[name] = activity.Clone()
	}
	return cp
}
