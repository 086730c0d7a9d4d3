package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hazyhaar/prefixline/pkg/prefix"
	"github.com/hazyhaar/prefixline/pkg/settings"
	"github.com/hazyhaar/prefixline/pkg/subject"
	"golang.org/x/text/language"
)

func cmdClean(args []string) {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	catalogDir := fs.String("catalog-dir", "", "directory of per-language catalog YAML files")
	settingsDB := fs.String("settings", "", "settings database path (flags override stored values)")
	uiLang := fs.String("ui-lang", "en-US", "reader's interface language (BCP 47)")
	one := fs.Bool("one", false, "keep only the left-most surviving prefix")
	keep := fs.Bool("keep", false, "render prefixes in the majority language of the existing prefixes")
	noTranslate := fs.Bool("no-translate", false, "pass subjects through untouched")
	decodeMIME := fs.Bool("decode-mime", false, "decode RFC 2047 encoded-words before cleaning")
	fs.Parse(args)

	tag, err := language.Parse(*uiLang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad --ui-lang %q: %v\n", *uiLang, err)
		os.Exit(1)
	}

	opts := subject.Options{
		UILanguage:           tag,
		TranslatePrefixes:    !*noTranslate,
		OnlyOnePrefix:        *one,
		KeepOriginalLanguage: *keep,
	}

	// Stored settings apply first; explicitly passed flags still win.
	if *settingsDB != "" {
		store, err := settings.Open(*settingsDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open settings: %v\n", err)
			os.Exit(1)
		}
		policy, err := store.Policy()
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read settings: %v\n", err)
			os.Exit(1)
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["no-translate"] {
			opts.TranslatePrefixes = policy.TranslatePrefixes
		}
		if !set["one"] {
			opts.OnlyOnePrefix = policy.OnlyOnePrefix
		}
		if !set["keep"] {
			opts.KeepOriginalLanguage = policy.KeepOriginalLanguage
		}
	}

	reg := prefix.NewRegistry(*catalogDir)
	if err := reg.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "load catalogs: %v\n", err)
		os.Exit(1)
	}
	cleaner := subject.NewCleaner(reg)

	clean := func(s string) string {
		if *decodeMIME {
			s = subject.DecodeEncodedWords(s)
		}
		return cleaner.Clean(subject.Text(s), opts)
	}

	// Subject from arguments, or one per line from stdin.
	if fs.NArg() > 0 {
		fmt.Println(clean(strings.Join(fs.Args(), " ")))
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fmt.Println(clean(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
}
