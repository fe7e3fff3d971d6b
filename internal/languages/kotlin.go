package languages

import (
	"context"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"

	"github.com/kritik-dev/kritik/internal/syntax"
)

// KotlinParser builds declaration trees from Kotlin source files
type KotlinParser struct {
	parser *sitter.Parser
}

// NewKotlinParser creates a new Kotlin parser
func NewKotlinParser() *KotlinParser {
	p := sitter.NewParser()
	p.SetLanguage(kotlin.GetLanguage())
	return &KotlinParser{parser: p}
}

func (k *KotlinParser) Language() string {
	return "kotlin"
}

func (k *KotlinParser) Extensions() []string {
	return []string{".kt", ".kts"}
}

func (k *KotlinParser) Parse(filename string, content []byte) (*syntax.Node, error) {
	tree, err := k.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &syntax.File{
		Package: packageName(root, content),
		Name:    filepath.Base(filename),
		Source:  content,
	}
	fileNode := &syntax.Node{
		Kind:      syntax.KindFile,
		Name:      file.Name,
		StartByte: root.StartByte(),
		EndByte:   root.EndByte(),
		StartLine: 1,
		EndLine:   int(root.EndPoint().Row) + 1,
		File:      file,
	}

	k.collect(root, content, fileNode)
	return fileNode, nil
}

// collect walks the tree-sitter tree and attaches declaration nodes under
// parent, preserving nesting so ancestor chains mirror source scoping.
func (k *KotlinParser) collect(node *sitter.Node, content []byte, parent *syntax.Node) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "class_declaration", "object_declaration", "companion_object":
			decl := k.buildClass(child, content, parent)
			parent.Children = append(parent.Children, decl)
			k.collect(child, content, decl)

		case "function_declaration":
			decl := k.buildFunction(child, content, parent)
			parent.Children = append(parent.Children, decl)
			k.collect(child, content, decl)

		default:
			k.collect(child, content, parent)
		}
	}
}

func (k *KotlinParser) buildClass(node *sitter.Node, content []byte, parent *syntax.Node) *syntax.Node {
	decl := &syntax.Node{
		Kind:      syntax.KindClassOrObject,
		Name:      declaredName(node, content),
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
		DeclStart: declarationStart(node),
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
		Parent:    parent,
		File:      parent.File,
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "type_parameters":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				param := child.NamedChild(j)
				if param.Type() == "type_parameter" {
					decl.TypeParams = append(decl.TypeParams, param.Content(content))
				}
			}
		case "delegation_specifier":
			if name := supertypeName(child.Content(content)); name != "" {
				decl.Supertypes = append(decl.Supertypes, name)
			}
		}
	}

	return decl
}

func (k *KotlinParser) buildFunction(node *sitter.Node, content []byte, parent *syntax.Node) *syntax.Node {
	decl := &syntax.Node{
		Kind:      syntax.KindFunction,
		Name:      declaredName(node, content),
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
		DeclStart: declarationStart(node),
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
		Parent:    parent,
		File:      parent.File,
	}

	var params *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch {
		case child.Type() == "function_value_parameters":
			params = child
			decl.ParamsEnd = child.EndByte()
			decl.ParamCount = countParameters(child)
		case params != nil && decl.ReturnTypeEnd == 0 && isTypeNode(child.Type()):
			// First type node after the parameter list is the declared
			// return type.
			decl.ReturnTypeEnd = child.EndByte()
		}
	}

	return decl
}

// declaredName finds a declaration's own identifier among its direct
// children; receiver types and parameter names never match because they
// sit one level deeper.
func declaredName(node *sitter.Node, content []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "simple_identifier", "type_identifier":
			return child.Content(content)
		}
	}
	return ""
}

// declarationStart returns the declaration's start offset with leading
// comment trivia skipped, so docs above a declaration never enter its
// signature.
func declarationStart(node *sitter.Node) uint32 {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if isCommentNode(child.Type()) {
			continue
		}
		return child.StartByte()
	}
	return node.StartByte()
}

func countParameters(params *sitter.Node) int {
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		if !isCommentNode(params.NamedChild(i).Type()) {
			count++
		}
	}
	return count
}

// supertypeName reduces a delegation specifier to the referenced simple
// name: constructor arguments, type arguments, delegation clauses and
// package qualifiers are stripped.
func supertypeName(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexAny(raw, "(<"); idx != -1 {
		raw = raw[:idx]
	}
	if fields := strings.Fields(raw); len(fields) > 0 {
		raw = fields[0]
	}
	if idx := strings.LastIndex(raw, "."); idx != -1 {
		raw = raw[idx+1:]
	}
	return raw
}

func isTypeNode(kind string) bool {
	switch kind {
	case "user_type", "nullable_type", "function_type", "parenthesized_type", "not_nullable_type":
		return true
	}
	return false
}

func isCommentNode(kind string) bool {
	switch kind {
	case "comment", "line_comment", "multiline_comment":
		return true
	}
	return false
}

func packageName(root *sitter.Node, content []byte) string {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "package_header" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			part := child.NamedChild(j)
			if isCommentNode(part.Type()) {
				continue
			}
			return strings.TrimSpace(part.Content(content))
		}
	}
	return ""
}
