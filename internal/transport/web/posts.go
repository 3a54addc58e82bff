package web

import (
	"errors"
	"net/http"

	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/internal/form"
	"github.com/Kirill2434/yatube/internal/service/posts"
)

// Index renders the global feed.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.posts.Index(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render.Render(w, r, http.StatusOK, "posts/index.html", Data{"page_obj": page})
}

// GroupPosts renders one group's feed.
func (h *Handler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	feed, err := h.posts.GroupFeed(r.Context(), r.PathValue("slug"), r.URL.Query().Get("page"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render.Render(w, r, http.StatusOK, "posts/group_list.html", Data{
		"group":    feed.Group,
		"page_obj": feed.Page,
	})
}

// Profile renders one author's feed.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	feed, err := h.posts.ProfileFeed(r.Context(), r.PathValue("username"), r.URL.Query().Get("page"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render.Render(w, r, http.StatusOK, "posts/profile.html", Data{
		"author":      feed.Author,
		"page_obj":    feed.Page,
		"posts_count": feed.PostsCount,
	})
}

// PostDetail renders a post, its comments and an empty comment form.
func (h *Handler) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.renderDetail(w, r, id, form.CommentSchema().New(nil))
}

func (h *Handler) renderDetail(w http.ResponseWriter, r *http.Request, id int64, f *form.Form) {
	detail, err := h.posts.PostDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render.Render(w, r, http.StatusOK, "posts/post_detail.html", Data{
		"post":     detail.Post,
		"comments": detail.Comments,
		"form":     f,
	})
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

// CreateForm renders an empty post form.
func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	schema, err := h.postSchema(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderPostForm(w, r, http.StatusOK, schema.New(nil), nil)
}

// CreatePost validates the submitted form and publishes the post as the
// current user, then redirects to the author's profile.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	schema, err := h.postSchema(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	f, ok := h.bindPostForm(w, r, schema, nil)
	if !ok {
		return
	}

	post, err := h.posts.CreatePost(r.Context(), posts.CreatePostInput{
		Text:    f.Value("text"),
		GroupID: form.GroupID(f),
		Image:   f.File("image"),
	})
	if err != nil {
		if f.AddValidationError(err) {
			h.renderPostForm(w, r, http.StatusOK, f, nil)
			return
		}
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, profileURL(post.Author), http.StatusFound)
}

// ---------------------------------------------------------------------------
// Edit
// ---------------------------------------------------------------------------

// EditForm renders the post form filled with the current values.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	post, ok := h.editablePost(w, r)
	if !ok {
		return
	}
	schema, err := h.postSchema(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderPostForm(w, r, http.StatusOK, schema.New(form.PostInitial(post)), post)
}

// EditPost saves the submitted form over the post and redirects to its page.
// Only the author gets this far; others are handled by editablePost before
// the body is read.
func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.editablePost(w, r)
	if !ok {
		return
	}
	schema, err := h.postSchema(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	f, ok := h.bindPostForm(w, r, schema, post)
	if !ok {
		return
	}

	updated, err := h.posts.EditPost(r.Context(), posts.EditPostInput{
		PostID:  post.ID,
		Text:    f.Value("text"),
		GroupID: form.GroupID(f),
		Image:   f.File("image"),
	})
	if err != nil {
		switch {
		case f.AddValidationError(err):
			h.renderPostForm(w, r, http.StatusOK, f, post)
		case errors.Is(err, domain.ErrForbidden):
			h.nonAuthor(w, r, post.ID)
		default:
			h.fail(w, r, err)
		}
		return
	}
	http.Redirect(w, r, postURL(updated.ID), http.StatusFound)
}

// editablePost loads the post for its author. Any other outcome has already
// been written to w when ok is false.
func (h *Handler) editablePost(w http.ResponseWriter, r *http.Request) (*domain.Post, bool) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return nil, false
	}
	post, err := h.posts.PostForEdit(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.nonAuthor(w, r, id)
		} else {
			h.fail(w, r, err)
		}
		return nil, false
	}
	return post, true
}

func (h *Handler) nonAuthor(w http.ResponseWriter, r *http.Request, id int64) {
	if h.nonAuthorEdit == config.NonAuthorEditForbidden {
		h.forbidden(w, r)
		return
	}
	http.Redirect(w, r, postURL(id), http.StatusFound)
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// AddComment appends a comment by the current user and redirects to the post.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, bodyOverhead)
	sub, err := form.ParseRequest(r, multipartMemory)
	if err != nil {
		h.badBody(w, r, err)
		return
	}

	f := form.CommentSchema().Bind(sub)
	if !f.Valid() {
		h.renderDetail(w, r, id, f)
		return
	}
	if _, err := h.posts.AddComment(r.Context(), posts.AddCommentInput{PostID: id, Text: f.Value("text")}); err != nil {
		if f.AddValidationError(err) {
			h.renderDetail(w, r, id, f)
			return
		}
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, postURL(id), http.StatusFound)
}

// ---------------------------------------------------------------------------
// Post form helpers
// ---------------------------------------------------------------------------

func (h *Handler) postSchema(r *http.Request) (form.Schema, error) {
	groups, err := h.posts.Groups(r.Context())
	if err != nil {
		return form.Schema{}, err
	}
	return form.PostSchema(groups, h.maxUpload), nil
}

// bindPostForm reads the body and binds it. When ok is false the response
// (an invalid form or a rejected body) has already been written.
func (h *Handler) bindPostForm(w http.ResponseWriter, r *http.Request, schema form.Schema, post *domain.Post) (*form.Form, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+bodyOverhead)
	sub, err := form.ParseRequest(r, multipartMemory)
	if err != nil {
		if form.IsTooLarge(err) {
			f := schema.Bind(form.Submission{})
			f.AddError("image", form.MsgFileTooLarge)
			h.renderPostForm(w, r, http.StatusRequestEntityTooLarge, f, post)
			return nil, false
		}
		h.badBody(w, r, err)
		return nil, false
	}

	f := schema.Bind(sub)
	if !f.Valid() {
		h.renderPostForm(w, r, http.StatusOK, f, post)
		return nil, false
	}
	return f, true
}

func (h *Handler) renderPostForm(w http.ResponseWriter, r *http.Request, status int, f *form.Form, post *domain.Post) {
	data := Data{"form": f, "is_edit": post != nil}
	if post != nil {
		data["post"] = post
	}
	h.render.Render(w, r, status, "posts/create_post.html", data)
}

func (h *Handler) badBody(w http.ResponseWriter, r *http.Request, err error) {
	h.log.WarnContext(r.Context(), "unreadable form body",
		"path", r.URL.Path,
		"error", err.Error())
	if form.IsTooLarge(err) {
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}
