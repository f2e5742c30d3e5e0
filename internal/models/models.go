package models

import "time"

// SchemaVersion is stamped into every persisted root value so a future
// shape change can be detected instead of surfacing as a plain parse error.
const SchemaVersion = 1

// User represents one half of a pairing session
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	AvatarURL string `json:"avatar_url"`
	Gender    string `json:"gender"`
}

// PairingSession is the root aggregate: up to two users linked by a shared
// code. Posts, album photos and goals are stored under the code, not
// embedded here.
type PairingSession struct {
	SchemaVersion int       `json:"schema_version"`
	Code          string    `json:"code"`
	StartDate     time.Time `json:"start_date"`
	Users         []User    `json:"users"`
}

// UserByID looks up a session member by id. The user_id fields on posts and
// photos are weak references resolved through this at read time.
func (s *PairingSession) UserByID(id string) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Full reports whether the session already has both members
func (s *PairingSession) Full() bool {
	return len(s.Users) >= 2
}

// Post is a memory-feed entry
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// Comment is part of the stored post shape but no operation creates one yet
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// AlbumPhoto is one photo in the shared album. AlbumName is a folder key;
// folders are a derived grouping of photos, not a stored entity.
type AlbumPhoto struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
	AlbumName string    `json:"album_name,omitempty"`
}

// Goal is a shared progress goal. IsCompleted is derived from Progress and
// must be recomputed on every mutation, never set on its own.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Progress    int        `json:"progress"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	IsCompleted bool       `json:"is_completed"`
}

// SessionContext identifies the authenticated user within a resolved
// session. It is passed explicitly to every operation acting on session
// data; there is no implicit global current session.
type SessionContext struct {
	User    User           `json:"user"`
	Session PairingSession `json:"session"`
}
