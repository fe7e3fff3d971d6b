package languages

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kritik-dev/kritik/internal/ignore"
	"github.com/kritik-dev/kritik/internal/syntax"
)

// LanguageParser builds a declaration tree from one source file.
type LanguageParser interface {
	// Language returns the language name (e.g., "kotlin")
	Language() string

	// Extensions returns file extensions this parser handles
	Extensions() []string

	// Parse builds the file's declaration tree; the returned node is the
	// file node and owns every declaration found in the source.
	Parse(filename string, content []byte) (*syntax.Node, error)
}

// ParsedFile pairs a file's declaration tree with its root-relative path.
type ParsedFile struct {
	Path     string
	Language string
	Root     *syntax.Node
}

// ParseIssue captures non-fatal parser warnings/errors encountered while scanning files.
type ParseIssue struct {
	File     string
	Language string
	Severity string // warning | error
	Message  string
}

// ParseResult holds the trees and issues for one directory scan.
type ParseResult struct {
	RootPath string
	Files    []ParsedFile
	Issues   []ParseIssue
}

// Registry holds all registered language parsers
type Registry struct {
	parsers   map[string]LanguageParser
	extToLang map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		parsers:   make(map[string]LanguageParser),
		extToLang: make(map[string]string),
	}
}

// NewDefaultRegistry creates a registry with all supported language parsers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewKotlinParser())
	return r
}

// Register adds a language parser to the registry
func (r *Registry) Register(p LanguageParser) {
	lang := p.Language()
	r.parsers[lang] = p
	for _, ext := range p.Extensions() {
		r.extToLang[ext] = lang
	}
}

// GetParserForFile returns the appropriate parser for a file
func (r *Registry) GetParserForFile(filename string) (LanguageParser, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	lang, ok := r.extToLang[ext]
	if !ok {
		return nil, false
	}
	parser, ok := r.parsers[lang]
	return parser, ok
}

// ParseFile parses a single file and returns its declaration tree.
func (r *Registry) ParseFile(path string) (*ParsedFile, error) {
	parser, ok := r.GetParserForFile(path)
	if !ok {
		return nil, nil // unsupported file type, skip silently
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := parser.Parse(path, content)
	if err != nil {
		return nil, err
	}

	return &ParsedFile{Path: path, Language: parser.Language(), Root: root}, nil
}

// ParseDirectory recursively parses all supported files under root. Files
// that fail to parse become issues rather than errors, so one broken file
// cannot abort a whole scan.
func (r *Registry) ParseDirectory(root string, ignoreRules []string) (*ParseResult, error) {
	ignoreMatcher := ignore.NewMatcher(ignoreRules)

	result := &ParseResult{
		RootPath: root,
		Files:    make([]ParsedFile, 0),
		Issues:   make([]ParseIssue, 0),
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			relPath := path
			if rel, relErr := filepath.Rel(root, path); relErr == nil {
				relPath = rel
			}
			result.Issues = append(result.Issues, ParseIssue{
				File:     relPath,
				Severity: "warning",
				Message:  fmt.Sprintf("walk error: %v", err),
			})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if ignoreMatcher.ShouldIgnore(relPath, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		parsed, err := r.ParseFile(path)
		if err != nil {
			lang := ""
			if langParser, ok := r.GetParserForFile(path); ok {
				lang = langParser.Language()
			}
			result.Issues = append(result.Issues, ParseIssue{
				File:     relPath,
				Language: lang,
				Severity: "error",
				Message:  err.Error(),
			})
			return nil
		}
		if parsed != nil {
			parsed.Path = relPath
			result.Files = append(result.Files, *parsed)
		}

		return nil
	})

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	sort.Slice(result.Issues, func(i, j int) bool {
		if result.Issues[i].File == result.Issues[j].File {
			return result.Issues[i].Message < result.Issues[j].Message
		}
		return result.Issues[i].File < result.Issues[j].File
	})

	return result, err
}
