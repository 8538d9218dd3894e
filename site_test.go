package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	log.quiet = true
	os.Exit(m.Run())
}

func TestExampleSite(t *testing.T) {
	clearConfigEnv(t)
	dist := filepath.Join(t.TempDir(), "dist")
	t.Setenv("DIST_PATH", dist)

	if err := buildSite("example/"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		file        string
		contains    [][]byte
		notContains [][]byte
	}{
		{"index.html", [][]byte{
			[]byte("<title>Example blog</title>"),
			[]byte("a.html"),
			[]byte("Alpha"),
			[]byte("The first post."),
			[]byte("c.html"),
			[]byte("body{")},
			[][]byte{
				[]byte("b.html"),
				[]byte("Beta"),
				[]byte("$"),
				[]byte("<!--")},
		},
		{"a.html", [][]byte{
			[]byte("<title>Alpha</title>"),
			[]byte("<strong>alpha</strong>"),
			[]byte("Published 2024-01-01 by Jane, last updated 2024-01-02")},
			[][]byte{
				[]byte("$title"),
				[]byte("$post"),
				[]byte("$published_at")},
		},
		{"c.html", [][]byte{
			[]byte("<title>Gamma</title>"),
			[]byte("<table>"),
			[]byte("2024-03-01")},
			nil,
		},
	}

	for _, tc := range tests {
		content, err := os.ReadFile(filepath.Join(dist, tc.file))
		if err != nil {
			t.Errorf("Expected file, got error: %s", err)
			continue
		}

		for _, e := range tc.contains {
			if !bytes.Contains(content, e) {
				t.Errorf("Output file %s does not have expected content %s", tc.file, e)
			}
		}
		for _, e := range tc.notContains {
			if bytes.Contains(content, e) {
				t.Errorf("Output file %s has unexpected content %s", tc.file, e)
			}
		}
	}

	if _, err := os.Stat(filepath.Join(dist, "b.html")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected unpublished post b.html to be absent, got %v", err)
	}
}

func TestBuildWritesExactlyPublishedPosts(t *testing.T) {
	clearConfigEnv(t)
	dist := filepath.Join(t.TempDir(), "dist")
	t.Setenv("DIST_PATH", dist)

	if err := buildSite("example/"); err != nil {
		t.Fatal(err)
	}

	got := listDir(t, dist)
	expected := []string{"a.html", "c.html", "index.html"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestIndexPreservesPostOrder(t *testing.T) {
	root := newTestSite(t, map[string]string{
		"1-first.md":  post("first.html", "First", "2024-01-01"),
		"2-second.md": post("second.html", "Second", ""),
		"3-third.md":  post("third.html", "Third", "2023-01-01"),
	})

	if err := buildSite(root); err != nil {
		t.Fatal(err)
	}

	index := readFile(t, filepath.Join(root, "dist", "index.html"))
	first := strings.Index(index, "first.html")
	third := strings.Index(index, "third.html")
	if first == -1 || third == -1 || first > third {
		t.Errorf("expected first.html before third.html in index, got %s", index)
	}
	if strings.Contains(index, "second.html") {
		t.Errorf("expected unpublished second.html to be absent from index, got %s", index)
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	clearConfigEnv(t)
	dist := filepath.Join(t.TempDir(), "dist")
	t.Setenv("DIST_PATH", dist)

	if err := buildSite("example/"); err != nil {
		t.Fatal(err)
	}
	first := map[string]string{}
	for _, name := range listDir(t, dist) {
		first[name] = readFile(t, filepath.Join(dist, name))
	}

	// a stale file from a previous run must not survive the rebuild
	if err := os.WriteFile(filepath.Join(dist, "stale.html"), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := buildSite("example/"); err != nil {
		t.Fatal(err)
	}
	second := listDir(t, dist)
	if len(second) != len(first) {
		t.Fatalf("expected %d files after rebuild, got %v", len(first), second)
	}
	for _, name := range second {
		if readFile(t, filepath.Join(dist, name)) != first[name] {
			t.Errorf("output file %s differs between builds", name)
		}
	}
}

func TestMissingPostsDirectoryRemovesDist(t *testing.T) {
	root := newTestSite(t, nil)
	postsPath := filepath.Join(root, "does-not-exist")
	t.Setenv("POSTS_PATH", postsPath)

	err := buildSite(root)
	if !errors.Is(err, ErrMissingDirectory) {
		t.Fatalf("expected ErrMissingDirectory, got %v", err)
	}
	if !strings.Contains(err.Error(), postsPath) {
		t.Errorf("expected error to contain %s, got %s", postsPath, err)
	}
	if _, err := os.Stat(filepath.Join(root, "dist")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected dist to be removed, got %v", err)
	}
}

func TestMissingTemplatesDirectoryLeavesDistUntouched(t *testing.T) {
	root := newTestSite(t, nil)
	dist := filepath.Join(root, "dist")
	if err := os.Mkdir(dist, 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEMPLATES_PATH", filepath.Join(root, "nope"))

	err := buildSite(root)
	if !errors.Is(err, ErrMissingDirectory) {
		t.Fatalf("expected ErrMissingDirectory, got %v", err)
	}
	if _, err := os.Stat(dist); err != nil {
		t.Errorf("expected dist to be left alone when templates fail to load, got %v", err)
	}
}

func TestInvalidPageAbortsBuild(t *testing.T) {
	tests := []struct {
		name  string
		posts map[string]string
	}{
		{"path traversal", map[string]string{"a.md": post("../escape.html", "Escape", "2024-01-01")}},
		{"nested path", map[string]string{"a.md": post("sub/a.html", "Nested", "2024-01-01")}},
		{"missing page", map[string]string{"a.md": post("", "No page", "2024-01-01")}},
		{"index collision", map[string]string{"a.md": post("index.html", "Index", "2024-01-01")}},
		{"duplicate page", map[string]string{
			"a.md": post("same.html", "One", "2024-01-01"),
			"b.md": post("same.html", "Two", "2024-01-02"),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := newTestSite(t, tc.posts)

			err := buildSite(root)
			if !errors.Is(err, ErrInvalidPage) {
				t.Fatalf("expected ErrInvalidPage, got %v", err)
			}
			if _, err := os.Stat(filepath.Join(root, "dist")); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("expected dist to be removed, got %v", err)
			}
			if _, err := os.Stat(filepath.Join(root, "escape.html")); err == nil {
				t.Errorf("expected no file outside of dist")
			}
		})
	}
}

func TestUnpublishedPostNeedsNoPage(t *testing.T) {
	root := newTestSite(t, map[string]string{
		"draft.md": "---\ntitle: Draft\n---\n\nNo page, no date.\n",
	})

	if err := buildSite(root); err != nil {
		t.Fatal(err)
	}

	got := listDir(t, filepath.Join(root, "dist"))
	if len(got) != 1 || got[0] != homeOutputFile {
		t.Errorf("expected only %s, got %v", homeOutputFile, got)
	}
}

func TestNewSiteBuilds(t *testing.T) {
	clearConfigEnv(t)
	root := t.TempDir()
	if err := createDirectoryStructure(root); err != nil {
		t.Fatal(err)
	}

	if err := buildSite(root); err != nil {
		t.Fatal(err)
	}

	content := readFile(t, filepath.Join(root, "dist", "hello-world.html"))
	if !strings.Contains(content, "<title>Hello, world!</title>") {
		t.Errorf("expected title in scaffolded post, got %s", content)
	}

	if err := createDirectoryStructure(root); !errors.Is(err, os.ErrExist) {
		t.Errorf("expected second scaffold to fail with ErrExist, got %v", err)
	}
}

// newTestSite scaffolds a site in a temporary directory and replaces the
// sample post with the given posts
func newTestSite(t *testing.T, posts map[string]string) string {
	t.Helper()
	clearConfigEnv(t)

	root := filepath.Join(t.TempDir(), "site")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatal(err)
	}
	if err := createDirectoryStructure(root); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(root, "posts", "hello-world.md")); err != nil {
		t.Fatal(err)
	}

	for name, content := range posts {
		if err := os.WriteFile(filepath.Join(root, "posts", name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func post(page, title, publishedAt string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	if page != "" {
		sb.WriteString("page: " + page + "\n")
	}
	sb.WriteString("title: " + title + "\n")
	if publishedAt != "" {
		sb.WriteString("published_at: " + publishedAt + "\n")
	}
	sb.WriteString("---\n\nSome content.\n")
	return sb.String()
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}
