package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	oerrors "github.com/opmodel/create-vite/internal/errors"
)

// renameFiles maps template entry names to the names they are written as.
// Templates cannot ship some dotfiles directly (npm drops .gitignore when
// publishing), so they carry a placeholder instead.
var renameFiles = map[string]string{
	"_gitignore": ".gitignore",
}

// TemplateFile is a top-level entry of a template.
type TemplateFile struct {
	// RelPath is the entry path inside the template.
	RelPath string

	// IsManifest marks package.json, which is written separately.
	IsManifest bool
}

// DestName returns the name the entry is written under.
func (f TemplateFile) DestName() string {
	if renamed, ok := renameFiles[f.RelPath]; ok {
		return renamed
	}
	return f.RelPath
}

// ListTemplateFiles returns the top-level entries of a template.
func ListTemplateFiles(tmpl fs.FS) ([]TemplateFile, error) {
	entries, err := fs.ReadDir(tmpl, ".")
	if err != nil {
		return nil, oerrors.NewFilesystemError("reading template", ".", err)
	}

	files := make([]TemplateFile, 0, len(entries))
	for _, entry := range entries {
		files = append(files, TemplateFile{
			RelPath:    entry.Name(),
			IsManifest: entry.Name() == ManifestFile,
		})
	}
	return files, nil
}

// Materialize copies the template into root and writes the manifest with
// its name set to pkgName. root must be empty. Files are copied byte for
// byte; the manifest is always written last. It returns the written paths,
// slash-separated and relative to root.
//
// A failed copy stops the run; files already written stay in place.
// Symlinks in the template are rejected.
func Materialize(tmpl fs.FS, root, pkgName string) ([]string, error) {
	files, err := ListTemplateFiles(tmpl)
	if err != nil {
		return nil, err
	}

	if !hasManifest(files) {
		return nil, oerrors.NewNotFoundError(
			"template has no "+ManifestFile,
			ManifestFile,
			"Every template needs a package.json at its root.",
		)
	}

	var written []string
	opt := copy.Options{
		FS: tmpl,
		Skip: func(srcinfo os.FileInfo, src, _ string) (bool, error) {
			if src == ManifestFile {
				return true, nil
			}
			if srcinfo.Mode()&fs.ModeSymlink != 0 {
				return false, fmt.Errorf("template entry %s is a symlink", src)
			}
			if !srcinfo.IsDir() {
				written = append(written, filepath.ToSlash(destPath(src)))
			}
			return false, nil
		},
		RenameDestination: func(src, dest string) (string, error) {
			if renamed := destPath(src); renamed != src {
				return filepath.Join(filepath.Dir(dest), renamed), nil
			}
			return dest, nil
		},
		PermissionControl: templatePermissions,
	}
	if err := copy.Copy(".", root, opt); err != nil {
		return nil, oerrors.NewFilesystemError("copying template", root, err)
	}

	if err := writeManifest(tmpl, root, pkgName); err != nil {
		return written, err
	}
	return append(written, ManifestFile), nil
}

func hasManifest(files []TemplateFile) bool {
	for _, f := range files {
		if f.IsManifest {
			return true
		}
	}
	return false
}

// destPath returns the path a template entry is written under. Only
// top-level entries are renamed.
func destPath(src string) string {
	if filepath.Dir(src) == "." {
		return TemplateFile{RelPath: src}.DestName()
	}
	return src
}

// templatePermissions creates directories 0755 and writes files 0644, or
// 0755 when the template file has any execute bit. Embedded files report
// read-only modes, so their own permissions are not kept.
func templatePermissions(srcinfo fs.FileInfo, dest string) (func(*error), error) {
	if srcinfo.IsDir() {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return func(*error) {}, err
		}
		return func(*error) {}, nil
	}

	perm := fs.FileMode(0o644)
	if srcinfo.Mode().Perm()&0o111 != 0 {
		perm = 0o755
	}
	return func(err *error) {
		if cerr := os.Chmod(dest, perm); *err == nil {
			*err = cerr
		}
	}, nil
}

// writeManifest loads the template manifest, sets its name and writes it.
func writeManifest(tmpl fs.FS, root, pkgName string) error {
	data, err := fs.ReadFile(tmpl, ManifestFile)
	if err != nil {
		return oerrors.NewFilesystemError("reading template manifest", ManifestFile, err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), ManifestFile, "Fix the template's package.json.")
	}
	if err := manifest.SetName(pkgName); err != nil {
		return err
	}

	out, err := manifest.Encode()
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	destPath := filepath.Join(root, ManifestFile)
	if err := os.WriteFile(destPath, out, 0o644); err != nil {
		return oerrors.NewFilesystemError("writing manifest", destPath, err)
	}
	return nil
}
