package collect

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Docs maps package import path to test function name to its description.
type Docs map[string]map[string]string

// Lookup returns the description of fn in pkg, if any.
func (d Docs) Lookup(pkg, fn string) string {
	return d[pkg][fn]
}

// ModulePath reads the module path from root/go.mod.
func ModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("reading go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("no module directive in %s", filepath.Join(root, "go.mod"))
	}
	return path, nil
}

// Scan walks root for _test.go files and records the doc comment of every
// Test* function. modulePath is the Go module path rooted at root.
func Scan(root, modulePath string) (Docs, error) {
	docs := make(Docs)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != absRoot {
				switch info.Name() {
				case ".git", "vendor", "testdata", "_examples", "node_modules":
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !strings.HasSuffix(path, "_test.go") {
			return nil
		}
		_ = scanFile(docs, path, absRoot, modulePath) // unparseable files are skipped
		return nil
	})

	return docs, err
}

func scanFile(docs Docs, path, root, modulePath string) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return err
	}
	pkgPath := modulePath
	if rel != "." {
		pkgPath = modulePath + "/" + filepath.ToSlash(rel)
	}

	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil || fn.Recv != nil {
			continue
		}
		if !strings.HasPrefix(fn.Name.Name, "Test") {
			continue
		}
		doc := describeDoc(fn.Doc.Text(), fn.Name.Name)
		if doc == "" {
			continue
		}
		if docs[pkgPath] == nil {
			docs[pkgPath] = make(map[string]string)
		}
		docs[pkgPath][fn.Name.Name] = doc
	}
	return nil
}

// describeDoc turns a doc comment into a one-line description: the first
// paragraph joined into a single line, with a leading "TestName " removed
// as gofmt-style comments start with the identifier.
func describeDoc(text, name string) string {
	para, _, _ := strings.Cut(strings.TrimSpace(text), "\n\n")
	line := strings.Join(strings.Fields(para), " ")
	line = strings.TrimPrefix(line, name+" ")
	if line == name {
		return ""
	}
	return line
}
