package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hazyhaar/prefixline/pkg/kit"
	"github.com/hazyhaar/prefixline/pkg/prefix"
	"github.com/hazyhaar/prefixline/pkg/settings"
	"github.com/hazyhaar/prefixline/pkg/subject"
	"golang.org/x/text/language"
)

// Shared request/response types used by both HTTP and MCP transports.

// cleanReq carries one subject through an endpoint. Subject is a pointer so
// an absent value survives decoding as nil and maps to subject.Empty().
type cleanReq struct {
	Subject    *string
	DecodeMIME bool
	Opts       subject.Options
}

type cleanBatchReq struct {
	Subjects   []*string
	DecodeMIME bool
	Opts       subject.Options
}

type cleanResult struct {
	Subject string `json:"subject"`
	Cleaned string `json:"cleaned"`
}

type batchResponse struct {
	Results []cleanResult `json:"results"`
}

type languagesResponse struct {
	Languages []prefix.LangInfo `json:"languages"`
}

func cleanOne(c *subject.Cleaner, s *string, decodeMIME bool, opts subject.Options) cleanResult {
	if s == nil {
		return cleanResult{Cleaned: c.Clean(subject.Empty(), opts)}
	}
	raw := *s
	if decodeMIME {
		raw = subject.DecodeEncodedWords(raw)
	}
	return cleanResult{Subject: *s, Cleaned: c.Clean(subject.Text(raw), opts)}
}

func cleanEndpoint(c *subject.Cleaner) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*cleanReq)
		return cleanOne(c, req.Subject, req.DecodeMIME, req.Opts), nil
	}
}

func cleanBatchEndpoint(c *subject.Cleaner) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*cleanBatchReq)
		if len(req.Subjects) == 0 {
			return nil, fmt.Errorf("subjects array is empty")
		}
		if len(req.Subjects) > 100 {
			return nil, fmt.Errorf("too many subjects (max 100, got %d)", len(req.Subjects))
		}
		results := make([]cleanResult, len(req.Subjects))
		for i, s := range req.Subjects {
			results[i] = cleanOne(c, s, req.DecodeMIME, req.Opts)
		}
		return batchResponse{Results: results}, nil
	}
}

func listLanguagesEndpoint(reg *prefix.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return languagesResponse{Languages: reg.Languages()}, nil
	}
}

// loggingMiddleware logs each endpoint call with its transport and duration.
func loggingMiddleware(logger *slog.Logger, action string) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			logger.Debug("endpoint call",
				"action", action,
				"transport", kit.GetTransport(ctx),
				"duration", time.Since(start),
				"error", err,
			)
			return resp, err
		}
	}
}

// cleanOverrides are per-request policy overrides accepted by both
// transports. Unset fields fall back to the settings store.
type cleanOverrides struct {
	TranslatePrefixes    *bool  `json:"translate_prefixes,omitempty"`
	OnlyOnePrefix        *bool  `json:"only_one_prefix,omitempty"`
	KeepOriginalLanguage *bool  `json:"keep_original_language,omitempty"`
	UILanguage           string `json:"ui_language,omitempty"`
}

// resolveOptions assembles the pure-pipeline options from the settings
// store, the configured UI language, and per-request overrides.
func resolveOptions(store *settings.Store, ui language.Tag, o cleanOverrides) (subject.Options, error) {
	policy, err := store.Policy()
	if err != nil {
		return subject.Options{}, fmt.Errorf("read settings: %w", err)
	}
	opts := subject.Options{
		UILanguage:           ui,
		TranslatePrefixes:    policy.TranslatePrefixes,
		OnlyOnePrefix:        policy.OnlyOnePrefix,
		KeepOriginalLanguage: policy.KeepOriginalLanguage,
	}
	if o.TranslatePrefixes != nil {
		opts.TranslatePrefixes = *o.TranslatePrefixes
	}
	if o.OnlyOnePrefix != nil {
		opts.OnlyOnePrefix = *o.OnlyOnePrefix
	}
	if o.KeepOriginalLanguage != nil {
		opts.KeepOriginalLanguage = *o.KeepOriginalLanguage
	}
	if o.UILanguage != "" {
		tag, err := language.Parse(o.UILanguage)
		if err != nil {
			return subject.Options{}, fmt.Errorf("bad ui_language %q: %w", o.UILanguage, err)
		}
		opts.UILanguage = tag
	}
	return opts, nil
}
