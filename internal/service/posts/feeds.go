package posts

import (
	"context"
	"fmt"

	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/internal/paginate"
)

// Index returns the requested page of all posts, newest first.
// rawPage is the unparsed "page" query value.
func (s *Service) Index(ctx context.Context, rawPage string) (paginate.Page[domain.Post], error) {
	page, err := s.page(ctx, domain.PostFilter{}, rawPage)
	if err != nil {
		return paginate.Page[domain.Post]{}, fmt.Errorf("posts.Index: %w", err)
	}
	return page, nil
}

// GroupFeed returns the requested page of a group's posts.
// Returns ErrNotFound for an unknown slug. An empty group yields an empty page.
func (s *Service) GroupFeed(ctx context.Context, slug, rawPage string) (*GroupFeed, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("posts.GroupFeed: %w", err)
	}

	page, err := s.page(ctx, domain.PostFilter{GroupID: &group.ID}, rawPage)
	if err != nil {
		return nil, fmt.Errorf("posts.GroupFeed: %w", err)
	}

	return &GroupFeed{Group: group, Page: page}, nil
}

// ProfileFeed returns the requested page of an author's posts.
// Returns ErrNotFound for an unknown username.
func (s *Service) ProfileFeed(ctx context.Context, username, rawPage string) (*ProfileFeed, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("posts.ProfileFeed: %w", err)
	}

	page, err := s.page(ctx, domain.PostFilter{AuthorID: &author.ID}, rawPage)
	if err != nil {
		return nil, fmt.Errorf("posts.ProfileFeed: %w", err)
	}

	return &ProfileFeed{Author: author, Page: page, PostsCount: page.Total}, nil
}

// PostDetail returns a post and its comments. Returns ErrNotFound for an unknown id.
func (s *Service) PostDetail(ctx context.Context, id int64) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("posts.PostDetail: %w", err)
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("posts.PostDetail comments: %w", err)
	}

	return &PostDetail{Post: post, Comments: comments}, nil
}

// Groups returns every group, for the post form's choices.
func (s *Service) Groups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("posts.Groups: %w", err)
	}
	return groups, nil
}

// page counts the posts matching f, resolves rawPage against the total and
// fetches only that window.
func (s *Service) page(ctx context.Context, f domain.PostFilter, rawPage string) (paginate.Page[domain.Post], error) {
	total, err := s.posts.Count(ctx, f)
	if err != nil {
		return paginate.Page[domain.Post]{}, fmt.Errorf("count: %w", err)
	}

	w := s.pager.GetWindow(total, rawPage)

	items, err := s.posts.List(ctx, f, w.Limit, w.Offset)
	if err != nil {
		return paginate.Page[domain.Post]{}, fmt.Errorf("list: %w", err)
	}

	return paginate.NewPage(w, items), nil
}
