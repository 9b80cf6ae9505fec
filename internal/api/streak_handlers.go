package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/pkg/httputil"
)

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	state, err := s.streakTracker.Current(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakUser) {
			logger.Error("get streak error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
	logger.Info("streak provided")
}
