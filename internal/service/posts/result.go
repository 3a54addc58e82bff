package posts

import (
	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/internal/paginate"
)

// GroupFeed is one page of a group's posts.
type GroupFeed struct {
	Group *domain.Group
	Page  paginate.Page[domain.Post]
}

// ProfileFeed is one page of an author's posts. PostsCount is the author's
// total, not the page length.
type ProfileFeed struct {
	Author     *domain.User
	Page       paginate.Page[domain.Post]
	PostsCount int
}

// PostDetail is a post with its comments in creation order.
type PostDetail struct {
	Post     *domain.Post
	Comments []domain.Comment
}
