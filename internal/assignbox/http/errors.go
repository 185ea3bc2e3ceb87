package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/assignbox/pkg/assignsdk"
	"github.com/aussiebroadwan/assignbox/pkg/httpx"
	"github.com/aussiebroadwan/assignbox/pkg/slogx"
)

const (
	msgInternal = "Something went wrong"

	// upload and the two listings end theirs with a period
	msgInternalPeriod = "Something went wrong."
)

// errorWriter renders failures. Internal error text is only sent to the
// client when expose is set.
type errorWriter struct {
	expose bool
}

func (e errorWriter) message(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, assignsdk.ErrorResponse{Message: msg})
}

func (e errorWriter) internal(w http.ResponseWriter, r *http.Request, err error) {
	e.internalMsg(w, r, msgInternal, err)
}

func (e errorWriter) internalMsg(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))

	resp := assignsdk.ErrorResponse{Message: msg}
	if e.expose {
		resp.Error = err.Error()
	}
	httpx.WriteJSON(w, http.StatusInternalServerError, resp)
}

// decodeBody reads a JSON body into dst. An empty body leaves dst zeroed so
// the presence checks report the missing fields.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
