package entity

// Snapshot is the whole persisted state of the marketplace: one blob, read and
// written atomically. The logged-in user's profile copy is persisted separately
// (see repository.SessionStore) so a restart restores the session.
type Snapshot struct {
	Users    map[string]*User `json:"users"`
	Listings []*Listing       `json:"listings"`
	Chats    map[string]*Chat `json:"chats"`
	Reviews  []*Review        `json:"reviews"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:    make(map[string]*User),
		Listings: make([]*Listing, 0),
		Chats:    make(map[string]*Chat),
		Reviews:  make([]*Review, 0),
	}
}
