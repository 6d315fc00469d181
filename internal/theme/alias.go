package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cursor-theme-gen/internal/atomicfile"
	"cursor-theme-gen/internal/cursorfile"
)

// SymlinkFunc creates newname as a symbolic link to oldname.
type SymlinkFunc func(oldname, newname string) error

// Strategy records how an alias was materialised.
type Strategy string

const (
	Linked Strategy = "symlink"
	Copied Strategy = "copy"
)

// LinkResult is one alias created by LinkAliases.
type LinkResult struct {
	Alias     string
	Canonical string
	Strategy  Strategy
}

// LinkOrCopy makes linkName resolve to target. target is interpreted
// relative to linkName's directory, as symlink targets are. If the symlink
// cannot be created, target is copied instead.
func LinkOrCopy(target, linkName string, symlink SymlinkFunc) (Strategy, error) {
	if symlink == nil {
		symlink = os.Symlink
	}
	if err := symlink(target, linkName); err == nil {
		return Linked, nil
	}

	src := target
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(linkName), target)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("theme: copy %s: %w", src, err)
	}
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("theme: copy %s: %w", src, err)
	}
	if err := atomicfile.WriteFile(linkName, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("theme: copy %s: %w", src, err)
	}
	return Copied, nil
}

// LinkAliases points every alias in a group at the group's first member
// that has a readable config. Existing files, dangling links included, are
// left alone and groups without any config are skipped.
func (g *Generator) LinkAliases() ([]LinkResult, error) {
	dir := g.CursorsDir()
	var results []LinkResult
	var errs []error

	for _, group := range g.AliasGroups {
		canonical := ""
		for _, name := range group {
			if resolves(cursorfile.PathFor(dir, name)) {
				canonical = name
				break
			}
		}
		if canonical == "" {
			continue
		}

		for _, alias := range group {
			if alias == canonical {
				continue
			}
			aliasPath := cursorfile.PathFor(dir, alias)
			if exists(aliasPath) {
				continue
			}

			strategy, err := LinkOrCopy(canonical+cursorfile.Ext, aliasPath, g.Symlink)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			g.log().Debug("alias created", "alias", alias, "canonical", canonical, "strategy", strategy)
			results = append(results, LinkResult{Alias: alias, Canonical: canonical, Strategy: strategy})
		}
	}

	return results, errors.Join(errs...)
}

// resolves reports whether path exists after following symlinks.
func resolves(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// exists reports whether path exists, without following a final symlink.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
