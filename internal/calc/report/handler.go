package report

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"Osdag/internal/respond"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := respond.Decode(r, &input); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	doc, err := Prepare(input, time.Now())
	if err != nil {
		respond.Error(w, err)
		return
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		slog.Error("render report", "error", err)
		respond.Message(w, http.StatusInternalServerError, "Report generation error")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("write report", "error", err)
	}
}
