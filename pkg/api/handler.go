package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hazyhaar/prefixline/pkg/kit"
	"github.com/hazyhaar/prefixline/pkg/prefix"
	"github.com/hazyhaar/prefixline/pkg/settings"
	"github.com/hazyhaar/prefixline/pkg/subject"
	"golang.org/x/text/language"
)

// NewRouter returns an http.Handler with all prefixline API routes.
func NewRouter(reg *prefix.Registry, cleaner *subject.Cleaner, store *settings.Store, ui language.Tag, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		clean:         kit.Chain(loggingMiddleware(logger, "clean"))(cleanEndpoint(cleaner)),
		cleanBatch:    kit.Chain(loggingMiddleware(logger, "clean_batch"))(cleanBatchEndpoint(cleaner)),
		listLanguages: kit.Chain(loggingMiddleware(logger, "list_languages"))(listLanguagesEndpoint(reg)),
		reg:           reg,
		store:         store,
		ui:            ui,
	}

	mux.HandleFunc("GET /v1/clean", methodNotAllowed) // prevent GET on clean
	mux.HandleFunc("POST /v1/clean", h.handleClean)
	mux.HandleFunc("POST /v1/clean/batch", h.handleCleanBatch)
	mux.HandleFunc("GET /v1/languages", h.handleListLanguages)
	mux.HandleFunc("GET /v1/settings/{key}", h.handleGetSetting)
	mux.HandleFunc("PUT /v1/settings/{key}", h.handlePutSetting)
	mux.HandleFunc("DELETE /v1/settings/{key}", h.handleDeleteSetting)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	clean         kit.Endpoint
	cleanBatch    kit.Endpoint
	listLanguages kit.Endpoint
	reg           *prefix.Registry
	store         *settings.Store
	ui            language.Tag
}

// --- clean single subject ---

type httpCleanRequest struct {
	Subject    *string `json:"subject"`
	DecodeMIME bool    `json:"decode_mime,omitempty"`
	cleanOverrides
}

func (h *handler) handleClean(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpCleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	opts, err := resolveOptions(h.store, h.ui, req.cleanOverrides)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.clean(r.Context(), &cleanReq{
		Subject:    req.Subject,
		DecodeMIME: req.DecodeMIME,
		Opts:       opts,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- clean batch ---

type httpBatchRequest struct {
	Subjects   []*string `json:"subjects"`
	DecodeMIME bool      `json:"decode_mime,omitempty"`
	cleanOverrides
}

func (h *handler) handleCleanBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256*1024) // 256 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	opts, err := resolveOptions(h.store, h.ui, req.cleanOverrides)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.cleanBatch(r.Context(), &cleanBatchReq{
		Subjects:   req.Subjects,
		DecodeMIME: req.DecodeMIME,
		Opts:       opts,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- languages ---

func (h *handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listLanguages(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- settings ---

type settingResponse struct {
	Key     string `json:"key"`
	Value   bool   `json:"value"`
	Default bool   `json:"default"`
}

func (h *handler) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if !settings.KnownKey(key) {
		writeError(w, http.StatusNotFound, "unknown setting")
		return
	}
	v, err := h.store.GetBool(key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	def, _ := settings.Default(key)
	writeJSON(w, http.StatusOK, settingResponse{Key: key, Value: v, Default: def})
}

func (h *handler) handlePutSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if !settings.KnownKey(key) {
		writeError(w, http.StatusNotFound, "unknown setting")
		return
	}
	var body struct {
		Value *bool `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		writeError(w, http.StatusBadRequest, "body must be {\"value\": true|false}")
		return
	}
	if err := h.store.SetBool(key, *body.Value); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	def, _ := settings.Default(key)
	writeJSON(w, http.StatusOK, settingResponse{Key: key, Value: *body.Value, Default: def})
}

func (h *handler) handleDeleteSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if !settings.KnownKey(key) {
		writeError(w, http.StatusNotFound, "unknown setting")
		return
	}
	if err := h.store.Remove(key); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- health ---

type healthResponse struct {
	Status    string `json:"status"`
	Languages int    `json:"languages"`
	Aliases   int    `json:"aliases"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Languages: h.reg.LanguageCount(),
		Aliases:   h.reg.AliasCount(),
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
