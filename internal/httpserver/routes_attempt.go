// internal/httpserver/routes_attempt.go
//
// Attempt endpoint: POST /word/{length}/attempt
// Accepts the attempt as form field "attempt" or as JSON {"attempt": "..."}.
// Responses:
//   - 200 {"success": bool, "result": [0|1|2, ...]}
//   - 404 unsupported word length
//   - 422 {"code": N, "error_msg": "..."} when the attempt is rejected
//   - 500 {"error": "internal_error"} when today's word cannot be resolved

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle-api/internal/game"
)

// ErrorCode identifies a rejected attempt in 422 responses.
type ErrorCode int

const (
	CodeInvalidLength  ErrorCode = 100
	CodeEmptyAttempt   ErrorCode = 101
	CodeInvalidFormat  ErrorCode = 102
	CodeNotInWhitelist ErrorCode = 103
)

type attemptReq struct {
	Attempt string `json:"attempt"`
}

type attemptRes struct {
	Success bool        `json:"success"`
	Result  game.Result `json:"result"`
}

type validationRes struct {
	Code     ErrorCode `json:"code"`
	ErrorMsg string    `json:"error_msg"`
}

func (s *Server) handleAttempt(w http.ResponseWriter, r *http.Request) {
	length, err := strconv.Atoi(chi.URLParam(r, "length"))
	whitelist, ok := s.vocabs.Get(length)
	if err != nil || !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unsupported_word_length"})
		return
	}

	logger := zerolog.Ctx(r.Context())

	raw, err := readAttempt(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}
	attempt := game.NormalizeAttempt(raw)

	if err := game.Validate(attempt, whitelist); err != nil {
		logger.Debug().Err(err).Int("wordLength", length).Msg("attempt rejected")
		writeJSON(w, http.StatusUnprocessableEntity, rejection(err))
		return
	}

	word, err := s.words.TodayWord(r.Context(), whitelist)
	if err != nil {
		logger.Error().Err(err).Int("wordLength", length).Msg("resolve today's word")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		return
	}

	res := game.Compare(attempt, word)
	writeJSON(w, http.StatusOK, attemptRes{Success: res.Success(), Result: res})
}

// readAttempt pulls the raw attempt from a JSON body or from form values.
func readAttempt(r *http.Request) (string, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		var req attemptReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.Attempt, nil
	}
	return r.FormValue("attempt"), nil
}

// rejection maps a validation error to its public code and message.
func rejection(err error) validationRes {
	var ve *game.ValidationError
	if !errors.As(err, &ve) {
		return validationRes{Code: CodeInvalidFormat, ErrorMsg: err.Error()}
	}
	switch {
	case errors.Is(err, game.ErrEmptyAttempt):
		return validationRes{Code: CodeEmptyAttempt, ErrorMsg: "no attempt value submitted"}
	case errors.Is(err, game.ErrInvalidLength):
		return validationRes{Code: CodeInvalidLength, ErrorMsg: fmt.Sprintf("'%s' is not %d letters long", ve.Attempt, ve.Expected)}
	case errors.Is(err, game.ErrInvalidFormat):
		return validationRes{Code: CodeInvalidFormat, ErrorMsg: fmt.Sprintf("'%s' format is invalid (should match regex %s)", ve.Attempt, game.AttemptRegex)}
	default:
		return validationRes{Code: CodeNotInWhitelist, ErrorMsg: fmt.Sprintf("'%s' is not in whitelist", ve.Attempt)}
	}
}
