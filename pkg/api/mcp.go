package api

import (
	"strings"

	"github.com/hazyhaar/prefixline/pkg/kit"
	"github.com/hazyhaar/prefixline/pkg/prefix"
	"github.com/hazyhaar/prefixline/pkg/settings"
	"github.com/hazyhaar/prefixline/pkg/subject"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"
)

// RegisterMCPTools registers the three prefixline MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *prefix.Registry, cleaner *subject.Cleaner, store *settings.Store, ui language.Tag) {
	registerCleanSubject(srv, cleaner, store, ui)
	registerCleanBatch(srv, cleaner, store, ui)
	registerListLanguages(srv, reg)
}

func registerCleanSubject(srv *server.MCPServer, cleaner *subject.Cleaner, store *settings.Store, ui language.Tag) {
	tool := mcp.NewTool("clean_subject",
		mcp.WithDescription("Normalize the reply/forward prefix chain of an email subject line (RE, FWD, AW, WG, ...) into one language and policy-consistent form."),
		mcp.WithString("subject", mcp.Required(), mcp.Description("The raw subject line")),
		mcp.WithString("ui_language", mcp.Description("BCP 47 tag of the reader's interface language (e.g. en-US)")),
		mcp.WithBoolean("only_one_prefix", mcp.Description("Keep only the left-most surviving prefix")),
		mcp.WithBoolean("keep_original_language", mcp.Description("Render prefixes in the majority language of the existing prefixes")),
		mcp.WithBoolean("decode_mime", mcp.Description("Decode RFC 2047 encoded-words before cleaning")),
	)

	kit.RegisterMCPTool(srv, tool, cleanEndpoint(cleaner), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		opts, err := resolveOptions(store, ui, overridesFromArgs(args))
		if err != nil {
			return nil, err
		}
		var s *string
		if v, ok := args["subject"].(string); ok {
			s = &v
		}
		decode, _ := args["decode_mime"].(bool)
		return &kit.MCPDecodeResult{Request: &cleanReq{Subject: s, DecodeMIME: decode, Opts: opts}}, nil
	})
}

func registerCleanBatch(srv *server.MCPServer, cleaner *subject.Cleaner, store *settings.Store, ui language.Tag) {
	tool := mcp.NewTool("clean_batch",
		mcp.WithDescription("Normalize multiple email subject lines (up to 100), one per line."),
		mcp.WithString("subjects", mcp.Required(), mcp.Description("Newline-separated subject lines")),
		mcp.WithString("ui_language", mcp.Description("BCP 47 tag of the reader's interface language")),
		mcp.WithBoolean("only_one_prefix", mcp.Description("Keep only the left-most surviving prefix")),
		mcp.WithBoolean("keep_original_language", mcp.Description("Render prefixes in the majority language of the existing prefixes")),
		mcp.WithBoolean("decode_mime", mcp.Description("Decode RFC 2047 encoded-words before cleaning")),
	)

	kit.RegisterMCPTool(srv, tool, cleanBatchEndpoint(cleaner), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		opts, err := resolveOptions(store, ui, overridesFromArgs(args))
		if err != nil {
			return nil, err
		}
		raw, _ := args["subjects"].(string)
		lines := strings.Split(raw, "\n")
		subjects := make([]*string, len(lines))
		for i := range lines {
			subjects[i] = &lines[i]
		}
		decode, _ := args["decode_mime"].(bool)
		return &kit.MCPDecodeResult{Request: &cleanBatchReq{Subjects: subjects, DecodeMIME: decode, Opts: opts}}, nil
	})
}

func registerListLanguages(srv *server.MCPServer, reg *prefix.Registry) {
	tool := mcp.NewTool("list_languages",
		mcp.WithDescription("List all catalog languages with their canonical reply/forward spellings and alias counts."),
	)

	kit.RegisterMCPTool(srv, tool, listLanguagesEndpoint(reg), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}

func overridesFromArgs(args map[string]any) cleanOverrides {
	var o cleanOverrides
	if v, ok := args["only_one_prefix"].(bool); ok {
		o.OnlyOnePrefix = &v
	}
	if v, ok := args["keep_original_language"].(bool); ok {
		o.KeepOriginalLanguage = &v
	}
	if v, ok := args["ui_language"].(string); ok && v != "" {
		o.UILanguage = v
	}
	return o
}
