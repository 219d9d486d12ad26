package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const neo4jDriver = "github.com/neo4j/neo4j-go-driver/"

type violation struct {
	file string
	imp  string
	rule string
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)
	violations := walkImports(t, root, func(rel, imp string) string {
		for _, bad := range disallowedImports(modulePath, layerFor(rel)) {
			if strings.HasPrefix(imp, bad) {
				return bad
			}
		}
		return ""
	})
	report(t, "import boundary violations", violations)
}

func TestNeo4jDriverOnlyInPlatform(t *testing.T) {
	root, _ := moduleRoot(t)
	violations := walkImports(t, root, func(rel, imp string) string {
		if strings.HasPrefix(imp, neo4jDriver) && !strings.HasPrefix(rel, "internal/platform/neo4jdb/") {
			return neo4jDriver
		}
		return ""
	})
	report(t, "neo4j driver imported outside internal/platform/neo4jdb (go through graph.Querier)", violations)
}

func layerFor(rel string) string {
	switch {
	case strings.HasPrefix(rel, "internal/domain/"), strings.HasPrefix(rel, "internal/normalization/"):
		return "domain"
	case strings.HasPrefix(rel, "internal/platform/"):
		return "platform"
	case strings.HasPrefix(rel, "internal/data/"):
		return "data"
	case strings.HasPrefix(rel, "internal/modules/"):
		return "modules"
	case strings.HasPrefix(rel, "internal/ingest/"):
		return "ingest"
	case strings.HasPrefix(rel, "internal/http/"):
		return "http"
	default:
		return ""
	}
}

func disallowedImports(modulePath string, layer string) []string {
	in := func(pkgs ...string) []string {
		out := make([]string, len(pkgs))
		for i, p := range pkgs {
			out[i] = modulePath + "/internal/" + p + "/"
		}
		return out
	}
	switch layer {
	case "domain":
		return in("platform", "data", "modules", "ingest", "http", "app", "cli")
	case "platform":
		return in("data", "modules", "ingest", "http", "app", "cli")
	case "data":
		return in("modules", "ingest", "http", "app", "cli")
	case "modules":
		return in("data", "ingest", "http", "app", "cli")
	case "ingest":
		return in("http", "app", "cli")
	case "http":
		return in("app", "cli")
	default:
		return nil
	}
}

func walkImports(t *testing.T, root string, check func(rel, imp string) string) []violation {
	t.Helper()
	fset := token.NewFileSet()
	var violations []violation

	err := filepath.WalkDir(filepath.Join(root, "internal"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			imp, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}
			if rule := check(rel, imp); rule != "" {
				violations = append(violations, violation{file: rel, imp: imp, rule: rule})
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk internal/: %v", err)
	}
	return violations
}

func report(t *testing.T, title string, violations []violation) {
	t.Helper()
	if len(violations) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(title + ":\n")
	for _, v := range violations {
		fmt.Fprintf(&b, "- %s imports %q (disallowed: %q)\n", v.file, v.imp, v.rule)
	}
	t.Fatal(b.String())
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := findModuleRoot(start)
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return root, modulePath
}

func findModuleRoot(start string) (string, error) {
	for dir := start; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found from %s", start)
		}
		dir = parent
	}
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if mp, ok := strings.CutPrefix(line, "module "); ok {
			if mp = strings.TrimSpace(mp); mp == "" {
				return "", fmt.Errorf("empty module path in %s", goModPath)
			}
			return mp, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
