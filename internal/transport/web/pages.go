package web

import "net/http"

// AboutAuthor renders the static author page.
func (h *Handler) AboutAuthor(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "about/author.html", nil)
}

// AboutTech renders the static technologies page.
func (h *Handler) AboutTech(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "about/tech.html", nil)
}
