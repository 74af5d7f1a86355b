package core

import (
	"fmt"
	"path"
	"strings"
)

// NormalizePath cleans a root-relative path: forward slashes, no leading "./".
func NormalizePath(p string) string {
	clean := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	clean = strings.TrimPrefix(clean, "./")
	if clean == "." {
		return ""
	}
	return clean
}

// SplitFragment splits "target#section" into ("target", "#section").
// The fragment, if any, includes the leading "#".
func SplitFragment(target string) (string, string) {
	if idx := strings.Index(target, "#"); idx != -1 {
		return target[:idx], target[idx:]
	}
	return target, ""
}

// ResolveTarget computes the root-relative path a relative link target points
// to when written in a file under sourceDir. An error is returned for empty
// targets and targets that escape the content root.
func ResolveTarget(target, sourceDir string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("empty link target")
	}
	resolved := NormalizePath(path.Join(sourceDir, target))
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		return "", fmt.Errorf("link target escapes content root: %s", target)
	}
	return resolved, nil
}

// RelativeTo computes the relative link text that reaches the root-relative
// path target from a file located in sourceDir. The result carries no "./"
// prefix; a target in the same directory comes out as a bare filename.
func RelativeTo(sourceDir, target string) string {
	srcParts := splitPath(NormalizePath(sourceDir))
	dstParts := splitPath(NormalizePath(target))

	shared := 0
	for shared < len(srcParts) && shared < len(dstParts)-1 && srcParts[shared] == dstParts[shared] {
		shared++
	}

	var out []string
	for i := shared; i < len(srcParts); i++ {
		out = append(out, "..")
	}
	out = append(out, dstParts[shared:]...)
	return strings.Join(out, "/")
}

// Resolve maps a relative link target written when the source file lived in
// sourceOldDir to the correct relative target for the source file's new
// location, consulting the move table for relocated targets. Fragments must be
// split off by the caller beforehand.
func Resolve(oldTarget, sourceOldDir, sourceNewDir string, table *MoveTable) (string, error) {
	oldAbs, err := ResolveTarget(oldTarget, sourceOldDir)
	if err != nil {
		return "", err
	}
	newAbs := oldAbs
	if moved, ok := table.NewPath(oldAbs); ok {
		newAbs = moved
	}
	return RelativeTo(sourceNewDir, newAbs), nil
}

func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
