package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/internal/service"
	"github.com/jadebook/jadebook/pkg/entity"
	"github.com/jadebook/jadebook/pkg/httputil"
)

type CreateEntryRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	EntryDate string   `json:"entry_date,omitempty"`
}

type UpdateEntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type PinEntryRequest struct {
	Pinned bool `json:"pinned"`
}

// StreakReport mirrors the streak outcome returned to entry creators.
// Streak failure is non-fatal to the created entry.
type StreakReport struct {
	Success       bool   `json:"success"`
	Updated       bool   `json:"updated"`
	CurrentStreak int    `json:"current_streak,omitempty"`
	LongestStreak int    `json:"longest_streak,omitempty"`
	Error         string `json:"error,omitempty"`
}

type CreateEntryResponse struct {
	Entry  *entity.Entry `json:"entry"`
	Streak StreakReport  `json:"streak"`
}

type GetEntriesResponse struct {
	UserID  string          `json:"uid"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Entries []*entity.Entry `json:"entries"`
}

func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateEntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq := service.CreateEntryRequest{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if req.EntryDate != "" {
		entryDate, err := time.ParseInLocation("2006-01-02", req.EntryDate, time.UTC)
		if err != nil {
			logger.Error("create entry error: invalid entry date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry_date, expected YYYY-MM-DD", nil)
			return
		}
		serviceReq.EntryDate = entryDate
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.entriesService.CreateEntry(ctx, uid, &serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create entry error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create entry: user doesn't exist", nil)
		default:
			logger.Error("create entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating entry", nil)
		}
		return
	}

	// The entry stands even when the streak update fails
	report := StreakReport{Success: true}
	outcome, err := s.streakTracker.Update(ctx, uid)
	if err != nil {
		logger.Error("streak update failed", slog.String("error", err.Error()))
		report.Success = false
		report.Error = err.Error()
	} else {
		report.Updated = outcome.Updated
		report.CurrentStreak = outcome.CurrentStreak
		report.LongestStreak = outcome.LongestStreak
	}

	httputil.WriteJSONResponse(w, http.StatusCreated, CreateEntryResponse{
		Entry:  entry,
		Streak: report,
	})
	logger.Info("entry created")
}

func (s *Server) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.entriesService.GetUserEntries(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting entries list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting entries list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetEntriesResponse{
		UserID:  uid.String(),
		Page:    page,
		Limit:   limit,
		Entries: entries,
	})
	logger.Info("entries provided")
}

func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.entriesService.GetEntry(ctx, id, uid)
	if err != nil {
		writeEntryError(w, logger, "get entry error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("entry provided")
}

func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	var req UpdateEntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.entriesService.UpdateEntry(ctx, id, uid, &service.UpdateEntryRequest{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		writeEntryError(w, logger, "update entry error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("entry updated")
}

func (s *Server) PinEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("pin entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("pin entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	var req PinEntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("pin entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.entriesService.SetPinned(ctx, id, uid, req.Pinned)
	if err != nil {
		writeEntryError(w, logger, "pin entry error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"id": id.String(), "pinned": req.Pinned})
	logger.Info("entry pin toggled")
}

func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("entry deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("entry deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.entriesService.DeleteEntry(ctx, id, uid)
	if err != nil {
		writeEntryError(w, logger, "entry deletion error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": true})
	logger.Info("entry deleted")
}

func (s *Server) SearchEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("search entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		logger.Error("search entries error: empty query")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.entriesService.SearchEntries(ctx, uid, query)
	if err != nil {
		logger.Error("search entries error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while searching entries", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"query":   query,
		"entries": entries,
	})
	logger.Info("search results provided")
}

func writeEntryError(w http.ResponseWriter, logger *slog.Logger, prefix string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrEntryNotFound):
		logger.Error(prefix + ": unexist entry")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(prefix + ": entry has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
	default:
		logger.Error(prefix+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal entries error", nil)
	}
}
