package batch

import (
	"errors"
	"net/http"

	"Osdag/internal/respond"
	"Osdag/internal/validate"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := respond.Decode(r, &input); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(input.Items) == 0 {
		respond.Message(w, http.StatusBadRequest, "No items to calculate")
		return
	}
	res, err := Calculate(input)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidInput) {
			respond.Message(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(w, err)
		return
	}
	respond.Result(w, "batch", res)
}
