package languages

import (
	"testing"

	"github.com/kritik-dev/kritik/internal/signature"
	"github.com/kritik-dev/kritik/internal/syntax"
)

const sampleSource = `package com.example

import java.io.Closeable

class Repo<T>(private val base: Base) : Base {
    fun load(id: String): T {
        return base.fetch(id)
    }

    object Cache {
        fun get(key: String, fallback: String) = key
    }
}

fun top(limit: Int) {
    println(limit)
}
`

func parseSample(t *testing.T) *syntax.Node {
	t.Helper()
	root, err := NewKotlinParser().Parse("src/kotlin/Repo.kt", []byte(sampleSource))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return root
}

func findNode(root *syntax.Node, kind syntax.Kind, name string) *syntax.Node {
	var found *syntax.Node
	root.Walk(func(n *syntax.Node) {
		if found == nil && n.Kind == kind && n.Name == name {
			found = n
		}
	})
	return found
}

func TestKotlinFileNode(t *testing.T) {
	root := parseSample(t)

	if root.Kind != syntax.KindFile {
		t.Fatalf("expected file node, got %v", root.Kind)
	}
	if root.File.Package != "com.example" {
		t.Fatalf("expected package com.example, got %q", root.File.Package)
	}
	if root.File.Name != "Repo.kt" {
		t.Fatalf("expected leaf file name Repo.kt, got %q", root.File.Name)
	}

	sig, err := signature.Full(root)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	if sig != "com.example.Repo.kt" {
		t.Fatalf("unexpected file signature %q", sig)
	}
}

func TestKotlinClassDeclaration(t *testing.T) {
	root := parseSample(t)

	repo := findNode(root, syntax.KindClassOrObject, "Repo")
	if repo == nil {
		t.Fatalf("class Repo not found")
	}
	if len(repo.TypeParams) != 1 || repo.TypeParams[0] != "T" {
		t.Fatalf("unexpected type parameters %v", repo.TypeParams)
	}
	if len(repo.Supertypes) != 1 || repo.Supertypes[0] != "Base" {
		t.Fatalf("unexpected supertypes %v", repo.Supertypes)
	}

	sig, err := signature.Full(repo)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	if sig != "Repo.kt$Repo<T> : Base" {
		t.Fatalf("unexpected class signature %q", sig)
	}
}

func TestKotlinNestedObjectAndFunction(t *testing.T) {
	root := parseSample(t)

	cache := findNode(root, syntax.KindClassOrObject, "Cache")
	if cache == nil {
		t.Fatalf("object Cache not found")
	}
	if cache.Parent == nil || cache.Parent.Name != "Repo" {
		t.Fatalf("expected Cache to be nested in Repo")
	}

	get := findNode(root, syntax.KindFunction, "get")
	if get == nil {
		t.Fatalf("fun get not found")
	}
	if get.ParamCount != 2 {
		t.Fatalf("expected 2 parameters, got %d", get.ParamCount)
	}

	sig, err := signature.Full(get)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	if sig != "Repo.kt$Repo.Cache$fun get(key: String, fallback: String)" {
		t.Fatalf("unexpected nested signature %q", sig)
	}
}

func TestKotlinFunctionReturnType(t *testing.T) {
	root := parseSample(t)

	load := findNode(root, syntax.KindFunction, "load")
	if load == nil {
		t.Fatalf("fun load not found")
	}
	if load.ReturnTypeEnd == 0 {
		t.Fatalf("expected return type annotation to be measured")
	}

	sig, err := signature.Full(load)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	if sig != "Repo.kt$Repo$fun load(id: String): T" {
		t.Fatalf("unexpected function signature %q", sig)
	}
}

func TestKotlinTopLevelFunction(t *testing.T) {
	root := parseSample(t)

	top := findNode(root, syntax.KindFunction, "top")
	if top == nil {
		t.Fatalf("fun top not found")
	}
	if top.ReturnTypeEnd != 0 {
		t.Fatalf("expected no return type annotation, got end offset %d", top.ReturnTypeEnd)
	}

	sig, err := signature.Full(top)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	if sig != "Repo.kt$fun top(limit: Int)" {
		t.Fatalf("unexpected top-level signature %q", sig)
	}
}

func TestKotlinLeadingCommentExcludedFromHeader(t *testing.T) {
	src := "/** Loads things. */\nfun load(id: String) {}\n"
	root, err := NewKotlinParser().Parse("Doc.kt", []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	load := findNode(root, syntax.KindFunction, "load")
	if load == nil {
		t.Fatalf("fun load not found")
	}

	sig, err := signature.Short(load)
	if err != nil {
		t.Fatalf("Short failed: %v", err)
	}
	if sig != "fun load(id: String)" {
		t.Fatalf("comment leaked into signature: %q", sig)
	}
}
