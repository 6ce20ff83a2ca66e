package chi

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/newsnotes"
	"github.com/go-chi/chi/v5"
)

// decodeFields reads a note's fields from a JSON object body.
func decodeFields(r *http.Request) (map[string]any, error) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, newsnotes.Errorf(newsnotes.EINVALID, "invalid request body: %v", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	note := &newsnotes.Note{Fields: fields}
	if err := s.Notes.CreateNote(r.Context(), note); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// handleCreateArticleNote creates a note from a JSON object and attaches it
// to the article named in the path.
func (s *Server) handleCreateArticleNote(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	note := &newsnotes.Note{Fields: fields}
	if err := s.Notes.CreateArticleNote(r.Context(), chi.URLParam(r, "id"), note); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// handleAssociateNote appends an existing note to the article's sequence.
func (s *Server) handleAssociateNote(w http.ResponseWriter, r *http.Request) {
	if err := s.Articles.AssociateNote(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "noteID")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.Notes.FindNoteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.Notes.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
