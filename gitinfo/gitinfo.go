// Package gitinfo inspects the git state of the firmware workspace so that
// generation logs can be tied back to a commit.
package gitinfo

import (
	git "github.com/go-git/go-git/v5"
)

// Info describes the state of the repository enclosing a directory.
type Info struct {
	Hash   string
	Dirty  bool
	Origin string
}

// Describe reports the git state of `dir`. A directory outside any
// repository yields an empty Info without an error, since local artifact
// trees are not required to be checkouts.
func Describe(dir string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err == git.ErrRepositoryNotExists {
		return Info{}, nil
	}
	if err != nil {
		return Info{}, err
	}

	head, err := repo.Head()
	if err != nil {
		return Info{}, err
	}
	info := Info{Hash: head.Hash().String()}

	worktree, err := repo.Worktree()
	if err != nil {
		return Info{}, err
	}
	status, err := worktree.Status()
	if err != nil {
		return Info{}, err
	}
	info.Dirty = !status.IsClean()

	remotes, err := repo.Remotes()
	if err != nil {
		return Info{}, err
	}
	for _, remote := range remotes {
		if remote.Config().Name == "origin" && len(remote.Config().URLs) > 0 {
			info.Origin = remote.Config().URLs[0]
			break
		}
	}

	return info, nil
}
