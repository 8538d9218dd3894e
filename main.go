package main

import (
	"flag"
	"fmt"
	"os"
)

const usage = `Scribe - builds a static blog from a directory of Markdown posts

Usage: scribe [OPTIONS] [COMMAND]

Commands:
	build	Deletes the output directory if there is one and builds the site (default)
	new	Creates posts/ and templates/ with default templates in the root directory

Options:
	-r, --root <ROOT> Directory to use as root of project (default: .)
	-q, --quiet       Only log warnings and errors

Environment:
	DIST_PATH       Output directory (default: <ROOT>/dist)
	POSTS_PATH      Markdown posts directory (default: <ROOT>/posts)
	TEMPLATES_PATH  Templates directory (default: <ROOT>/templates)
`

func main() {
	rootPath := "."

	flag.StringVar(&rootPath, "root", rootPath, "")
	flag.StringVar(&rootPath, "r", rootPath, "")
	flag.BoolVar(&log.quiet, "quiet", false, "")
	flag.BoolVar(&log.quiet, "q", false, "")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	command := "build"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	switch command {
	case "build":
		if err := buildSite(rootPath); err != nil {
			log.Fatal("Error building site: %s\n", err)
		}
	case "new":
		if err := createDirectoryStructure(rootPath); err != nil {
			log.Fatal("Error creating site structure: %s\n", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func buildSite(rootPath string) error {
	cfg, err := loadConfig(rootPath)
	if err != nil {
		return err
	}

	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		return err
	}

	return NewSite(cfg, templates).Build()
}
