package domain

import "time"

// postTitleLen is how many characters of the text a post shows as its title.
const postTitleLen = 15

// Group is a named topic posts may belong to. Groups are created administratively.
type Group struct {
	ID          int64
	Title       string
	Slug        string
	Description string
}

func (g Group) String() string { return g.Title }

// Post is an authored text entry. Author and Group are denormalized from JOINs
// on read; writes only use AuthorID and GroupID.
type Post struct {
	ID       int64
	Text     string
	PubDate  time.Time
	AuthorID int64
	Author   string
	GroupID  *int64
	Group    *Group
	Image    string
}

// String returns the first 15 characters of the post text.
func (p Post) String() string {
	r := []rune(p.Text)
	if len(r) > postTitleLen {
		r = r[:postTitleLen]
	}
	return string(r)
}

// HasImage reports whether an image is attached.
func (p Post) HasImage() bool { return p.Image != "" }

// Comment is an append-only reply to a post.
type Comment struct {
	ID       int64
	PostID   int64
	AuthorID int64
	Author   string
	Text     string
	Created  time.Time
}

// Upload is an attached file as received from a form, before it is stored.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// PostFilter narrows a post listing. Nil fields are not applied.
type PostFilter struct {
	GroupID  *int64
	AuthorID *int64
}
