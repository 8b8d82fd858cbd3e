package importer

import (
	"errors"
	"log/slog"
	"net/http"

	"Osdag/internal/respond"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "File required")
		return
	}
	defer file.Close()

	res, err := Parse(file)
	switch {
	case errors.Is(err, ErrEmptySheet):
		respond.Message(w, http.StatusBadRequest, "Empty sheet")
		return
	case errors.Is(err, ErrMissingColumn):
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Warn("import workbook", "error", err)
		respond.Message(w, http.StatusBadRequest, "Invalid file")
		return
	}
	respond.Result(w, "import", res)
}
