package web

import (
	"errors"
	"net/http"

	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/internal/form"
	"github.com/Kirill2434/yatube/internal/service/users"
	"github.com/Kirill2434/yatube/pkg/ctxutil"
)

// SignupForm renders an empty registration form.
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "users/signup.html", Data{"form": form.SignupSchema().New(nil)})
}

// Signup registers the account, opens a session and redirects to the feed.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, bodyOverhead)
	sub, err := form.ParseRequest(r, multipartMemory)
	if err != nil {
		h.badBody(w, r, err)
		return
	}

	f := form.SignupSchema().Bind(sub)
	if !f.Valid() {
		h.render.Render(w, r, http.StatusOK, "users/signup.html", Data{"form": f})
		return
	}

	session, err := h.users.Signup(r.Context(), users.SignupInput{
		Username:  f.Value("username"),
		Email:     f.Value("email"),
		FirstName: f.Value("first_name"),
		LastName:  f.Value("last_name"),
		Password:  f.Value("password1"),
	})
	if err != nil {
		if f.AddValidationError(err) {
			h.render.Render(w, r, http.StatusOK, "users/signup.html", Data{"form": f})
			return
		}
		h.fail(w, r, err)
		return
	}

	h.cookie.Set(w, session.Token, session.ExpiresAt)
	http.Redirect(w, r, "/", http.StatusFound)
}

// LoginForm renders the sign-in form, carrying next through a hidden input.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, form.LoginSchema().New(nil), r.URL.Query().Get("next"))
}

// Login checks the credentials and redirects to next or the feed.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, bodyOverhead)
	sub, err := form.ParseRequest(r, multipartMemory)
	if err != nil {
		h.badBody(w, r, err)
		return
	}

	next := first(sub.Values["next"])
	if next == "" {
		next = r.URL.Query().Get("next")
	}

	f := form.LoginSchema().Bind(sub)
	if !f.Valid() {
		h.renderLogin(w, r, f, next)
		return
	}

	session, err := h.users.Login(r.Context(), users.LoginInput{
		Username: f.Value("username"),
		Password: f.Value("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			f.AddError(domain.NonFieldErrors, users.MsgInvalidLogin)
			h.renderLogin(w, r, f, next)
		case f.AddValidationError(err):
			h.renderLogin(w, r, f, next)
		default:
			h.serverError(w, r, err)
		}
		return
	}

	h.cookie.Set(w, session.Token, session.ExpiresAt)
	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

// Logout drops the session cookie and renders the farewell page anonymously.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	r = r.WithContext(ctxutil.WithUser(r.Context(), nil))
	h.render.Render(w, r, http.StatusOK, "users/logged_out.html", nil)
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, f *form.Form, next string) {
	h.render.Render(w, r, http.StatusOK, "users/login.html", Data{"form": f, "next": next})
}

func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}
