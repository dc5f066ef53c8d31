package ast

import (
	"strings"
	"unicode/utf8"

	errs "github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/markup"
	"github.com/napalu/ngx-i18n-scan/util"
	ts "github.com/tree-sitter/go-tree-sitter"
)

// HTMLMode selects how html dialog options are reported
type HTMLMode string

const (
	// HTMLBoth reports the whole html value and the text inside it
	HTMLBoth HTMLMode = "both"
	// HTMLAggregate reports only the whole html value
	HTMLAggregate HTMLMode = "aggregate"
	// HTMLFragments reports only the text inside the html value
	HTMLFragments HTMLMode = "fragments"
)

// ParseHTMLMode validates a mode name; empty selects HTMLBoth
func ParseHTMLMode(s string) (HTMLMode, error) {
	switch m := HTMLMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return HTMLBoth, nil
	case HTMLBoth, HTMLAggregate, HTMLFragments:
		return m, nil
	}
	return "", errs.ErrInvalidHTMLMode.WithArgs(s)
}

func (m HTMLMode) aggregate() bool { return m != HTMLFragments }
func (m HTMLMode) fragments() bool { return m != HTMLAggregate }

// Config tunes the component heuristics
type Config struct {
	DialogCalls  []string
	UIProperties []string
	HTMLMode     HTMLMode
	// Markup scans the content of html dialog options
	Markup *markup.Scanner
}

// Finding is hardcoded text found in a component class
type Finding struct {
	Text string
	Line int
}

// Scanner finds hardcoded dialog text in component classes
type Scanner struct {
	markup     *markup.Scanner
	mode       HTMLMode
	uiText     Predicate
	dialogHTML Predicate
	replace    Predicate
}

// NewScanner builds a scanner from cfg, filling unset fields with defaults
func NewScanner(cfg Config) *Scanner {
	if len(cfg.DialogCalls) == 0 {
		cfg.DialogCalls = DefaultDialogCalls
	}
	if len(cfg.UIProperties) == 0 {
		cfg.UIProperties = DefaultUIProperties
	}
	if cfg.HTMLMode == "" {
		cfg.HTMLMode = HTMLBoth
	}
	if cfg.Markup == nil {
		cfg.Markup = markup.NewScanner()
	}

	untranslated := All(Not(IsPartOfTranslation), Not(IsNonTranslatableContext))
	s := &Scanner{
		markup:     cfg.Markup,
		mode:       cfg.HTMLMode,
		uiText:     All(untranslated, UIContext(cfg.UIProperties, cfg.DialogCalls)),
		dialogHTML: DialogHTML(cfg.DialogCalls),
	}
	if s.mode.aggregate() {
		s.replace = All(untranslated, Any(UIContext(cfg.UIProperties, cfg.DialogCalls), s.dialogHTML))
	} else {
		s.replace = s.uiText
	}
	return s
}

// Scan returns the hardcoded text of a component source in source order
func (s *Scanner) Scan(name string, src []byte) ([]Finding, error) {
	tree, ok := parse(src)
	if !ok {
		return nil, errs.ErrParseSource.WithArgs(name)
	}
	defer tree.Close()

	var out []Finding
	for n, text := range literals(tree.RootNode(), src) {
		if utf8.RuneCountInString(text) >= markup.MinTextLength && !util.IsTranslationKey(text) && s.uiText(n, src) {
			out = append(out, Finding{Text: text, Line: lineOf(n)})
		}
		if s.dialogHTML(n, src) {
			out = append(out, s.scanHTML(n, src, text)...)
		}
	}
	return out, nil
}

// scanHTML reports the markup held by an html dialog option
func (s *Scanner) scanHTML(n *ts.Node, src []byte, text string) []Finding {
	var out []Finding
	row := lineOf(n) - 1
	if s.mode.fragments() {
		content, _ := literalText(n, src)
		for _, c := range s.markup.Scan([]byte(content)) {
			out = append(out, Finding{Text: c.Text, Line: row + c.Line})
		}
	}
	if s.mode.aggregate() && utf8.RuneCountInString(text) >= markup.MinTextLength && !util.IsTranslationKey(text) {
		out = append(out, Finding{Text: text, Line: row + 1})
	}
	return out
}
