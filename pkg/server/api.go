package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type weeksResponse struct {
	Year         int    `json:"year"`
	Weeks        int    `json:"weeks"`
	Celebration  string `json:"celebration"`
	BirthdayWeek int    `json:"birthday_week"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts, err := calendarOptions(q.Get("birth"), q.Get("years"), q.Get("format"), q.Get("to_date"), q.Get("fade"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if name := q.Get("name"); name != "" {
		if err := errors.ValidateName(name); err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Name = name
	}

	res, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	filename := "calendar"
	if opts.Name != "" {
		filename = opts.Name
	}
	if opts.DrawToDate {
		filename += "_"
	}

	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename+"."+format))
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// calendarOptions converts query parameters into pipeline options.
func calendarOptions(birth, years, format, toDate, fade string) (pipeline.Options, error) {
	var opts pipeline.Options

	b, err := calendar.ParseBirthDate(birth)
	if err != nil {
		return opts, err
	}
	opts.Birth = b

	opts.Years = pipeline.DefaultYears
	if years != "" {
		n, err := strconv.Atoi(years)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "years is not a number: %q", years)
		}
		opts.Years = n
	}

	if format == "" {
		format = pipeline.FormatPDF
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	opts.Formats = []string{format}

	if opts.DrawToDate, err = parseBool("to_date", toDate); err != nil {
		return opts, err
	}
	if opts.Fade, err = parseBool("fade", fade); err != nil {
		return opts, err
	}
	return opts, opts.ValidateAndSetDefaults()
}

func parseBool(name, v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
	}
	return b, nil
}

func (s *Server) handleWeeks(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid year %q", chi.URLParam(r, "year")))
		return
	}
	birth, err := calendar.ParseBirthDate(r.URL.Query().Get("birth"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, weeksResponse{
		Year:         year,
		Weeks:        calendar.WeeksInYear(year),
		Celebration:  calendar.CelebrationDate(year, birth).Format(time.DateOnly),
		BirthdayWeek: calendar.BirthdayWeek(year, birth),
	})
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
		msg = "internal error"
	}
	writeAPIError(w, status, code, msg)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
