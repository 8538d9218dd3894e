package main

import (
	"os"
	"path/filepath"
)

const defaultHomeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>My blog</title>
	<style>
		body { max-width: 40rem; margin: 0 auto; }
	</style>
</head>
<body>
	<h1>My blog</h1>
	<ul>
		$posts
	</ul>
</body>
</html>
`

const defaultPostTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>$title</title>
</head>
<body>
	<a href="index.html">Home</a>
	<h1>$title</h1>
	<p>Published $published_at by $published_by, updated $updated_at</p>
	<article>
		$post
	</article>
</body>
</html>
`

const defaultPostComponent = `<li>
	<a href="$page">$title</a>
	<small>$updated_at</small>
	<p>$short_description</p>
</li>
`

const defaultPost = `---
page: hello-world.html
title: Hello, world!
short_description: The very first post.
published_at: 2024-01-01
updated_at: 2024-01-01
published_by: Me
---

Welcome to my blog.
`

// createDirectoryStructure scaffolds a new site with default templates and one post
func createDirectoryStructure(rootPath string) error {
	postsDir := filepath.Join(rootPath, "posts")
	templatesDir := filepath.Join(rootPath, "templates")

	if err := os.Mkdir(postsDir, 0755); err != nil {
		return err
	}
	if err := os.Mkdir(templatesDir, 0755); err != nil {
		return err
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(templatesDir, homeTemplateFile), defaultHomeTemplate},
		{filepath.Join(templatesDir, postTemplateFile), defaultPostTemplate},
		{filepath.Join(templatesDir, postComponentFile), defaultPostComponent},
		{filepath.Join(postsDir, "hello-world.md"), defaultPost},
	}
	for _, f := range files {
		if err := writeFile(f.path, f.content); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
