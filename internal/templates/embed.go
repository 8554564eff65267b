// Package templates provides the project templates bundled with create-vite.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// The all: prefix keeps _gitignore, which embed would otherwise skip.
//
//go:embed all:vanilla
var vanillaFS embed.FS

//go:embed all:vue
var vueFS embed.FS

// TemplateName represents a template type.
type TemplateName string

const (
	// Vanilla is a plain JavaScript starter.
	Vanilla TemplateName = "vanilla"

	// Vue is a Vue 3 single-file-component starter.
	Vue TemplateName = "vue"
)

// getFS returns the embedded filesystem for a template and its root directory.
func getFS(name TemplateName) (embed.FS, string, error) {
	switch name {
	case Vanilla:
		return vanillaFS, "vanilla", nil
	case Vue:
		return vueFS, "vue", nil
	default:
		return embed.FS{}, "", fmt.Errorf("unknown template: %s", name)
	}
}

// FS returns the template tree rooted at the template directory, so that
// package.json sits at the root of the returned filesystem.
func FS(name TemplateName) (fs.FS, error) {
	fsys, root, err := getFS(name)
	if err != nil {
		return nil, err
	}
	return fs.Sub(fsys, root)
}

// DirFS returns an on-disk template directory as a filesystem.
func DirFS(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// ListTemplateFiles returns all file paths in a template, relative to its root.
func ListTemplateFiles(name TemplateName) ([]string, error) {
	fsys, err := FS(name)
	if err != nil {
		return nil, err
	}

	var files []string
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
