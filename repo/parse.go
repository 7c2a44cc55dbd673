// Package repo downloads GitHub repositories into a local cache and
// discovers the Markdown documents inside them. Downloads try a shallow
// git clone first and fall back to ZIP archives across a sequence of
// default branch names.
package repo

import (
	"fmt"
	"regexp"
	"strings"
)

// Ref identifies a GitHub repository and an optional branch hint.
type Ref struct {
	Owner  string
	Name   string
	Branch string // empty means auto-detect (main → master → HEAD)
}

var (
	sshRe = regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	// Branch may contain slashes (feature/my-branch), hence (.+) after /tree/.
	httpsRe = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:/tree/(.+))?$`)
	shortRe = regexp.MustCompile(`^([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)$`)
)

// ParseURL accepts any common GitHub URL format and returns its Ref:
//
//	https://github.com/owner/repo
//	https://github.com/owner/repo.git
//	https://github.com/owner/repo/tree/branch
//	git@github.com:owner/repo.git
//	owner/repo  (shorthand)
func ParseURL(raw string) (Ref, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")

	if m := sshRe.FindStringSubmatch(raw); m != nil {
		return Ref{Owner: m[1], Name: m[2]}, nil
	}
	if m := httpsRe.FindStringSubmatch(raw); m != nil {
		return Ref{Owner: m[1], Name: m[2], Branch: m[3]}, nil
	}
	if m := shortRe.FindStringSubmatch(raw); m != nil {
		return Ref{Owner: m[1], Name: m[2]}, nil
	}
	return Ref{}, fmt.Errorf("unrecognized GitHub URL: %s", raw)
}

// CloneURL returns the HTTPS clone URL for the repository.
func (r Ref) CloneURL() string {
	return "https://github.com/" + r.Owner + "/" + r.Name + ".git"
}

// ArchiveURL returns the ZIP archive URL for the given branch.
// "HEAD" uses the short form that resolves to the default branch.
func (r Ref) ArchiveURL(branch string) string {
	base := "https://github.com/" + r.Owner + "/" + r.Name + "/archive/"
	if branch == "HEAD" {
		return base + "HEAD.zip"
	}
	return base + "refs/heads/" + branch + ".zip"
}

// String returns the owner/name form.
func (r Ref) String() string {
	return r.Owner + "/" + r.Name
}

// CacheKey returns the flat directory name used for the local checkout.
func (r Ref) CacheKey() string {
	return r.Owner + "_" + r.Name
}
