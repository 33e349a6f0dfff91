package doctor

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/raphi011/git-hook-setup/internal/config"
	"github.com/raphi011/git-hook-setup/internal/git"
	"github.com/raphi011/git-hook-setup/internal/hooks"
)

// Check runs every diagnostic against repo without changing anything.
func Check(ctx context.Context, repo *hooks.Repository, cfg *config.Config) Report {
	var r Report

	gitOK := checkGit(ctx, &r)

	gitDir, ok := repo.GitDir()
	if !ok {
		r.Issues = append(r.Issues, Issue{
			Key:         repo.Root,
			Description: "no git metadata directory found",
			Category:    CategoryGit,
		})
		return r
	}
	r.Passed = append(r.Passed, "git metadata directory: "+gitDir)

	if gitOK {
		checkWorkTree(ctx, repo.Root, &r)
		checkHooksPath(ctx, repo.Root, &r)
	}
	checkInstalledHooks(repo, &r)
	if cfg != nil {
		checkConfig(cfg, &r)
	}
	return r
}

func checkGit(ctx context.Context, r *Report) bool {
	if err := git.CheckGit(); err != nil {
		r.Issues = append(r.Issues, Issue{
			Key:         "git",
			Description: err.Error(),
			Category:    CategoryGit,
		})
		return false
	}
	if v, err := git.Version(ctx); err == nil {
		r.Passed = append(r.Passed, "git "+v)
	} else {
		r.Passed = append(r.Passed, "git found")
	}
	return true
}

// checkWorkTree warns when git itself does not see root as a work tree,
// for example when .git is an empty directory.
func checkWorkTree(ctx context.Context, root string, r *Report) {
	if git.IsInsideRepoPath(ctx, root) {
		return
	}
	r.Issues = append(r.Issues, Issue{
		Key:         root,
		Description: "git does not recognize this directory as a work tree; hooks will not run",
		Category:    CategoryGit,
		Warning:     true,
	})
}

// checkHooksPath warns when core.hooksPath redirects git away from the
// directory hooks are installed into.
func checkHooksPath(ctx context.Context, root string, r *Report) {
	p, ok := git.HooksPath(ctx, root)
	if !ok {
		return
	}
	r.Issues = append(r.Issues, Issue{
		Key:         "core.hooksPath",
		Description: fmt.Sprintf("set to %q; git will not run hooks from the metadata directory", p),
		Category:    CategoryGit,
		Warning:     true,
	})
}

func checkInstalledHooks(repo *hooks.Repository, r *Report) {
	installed, err := repo.List()
	if err != nil {
		r.Issues = append(r.Issues, Issue{
			Key:         "hooks",
			Description: err.Error(),
			Category:    CategoryHook,
		})
		return
	}

	for _, h := range installed {
		name := h.Kind.FileName()
		healthy := true

		info, err := os.Stat(h.Path)
		if err != nil {
			r.Issues = append(r.Issues, Issue{Key: name, Description: err.Error(), Category: CategoryHook, Path: h.Path})
			continue
		}
		if !hooks.IsExecutable(info.Mode()) {
			healthy = false
			r.Issues = append(r.Issues, Issue{
				Key:         name,
				Description: fmt.Sprintf("not executable (mode %s), git will skip it", info.Mode().Perm()),
				FixAction:   FixChmod,
				Category:    CategoryHook,
				Path:        h.Path,
			})
		}

		if line, err := firstLine(h.Path); err != nil || !strings.HasPrefix(line, "#!") {
			healthy = false
			r.Issues = append(r.Issues, Issue{
				Key:         name,
				Description: "missing interpreter line (#!)",
				Category:    CategoryHook,
				Path:        h.Path,
			})
		}

		if healthy {
			r.Passed = append(r.Passed, name+" hook is executable")
		}
	}
}

func checkConfig(cfg *config.Config, r *Report) {
	for _, v := range cfg.UnknownValues() {
		r.Issues = append(r.Issues, Issue{
			Key:         v,
			Description: "no command for this value, it is ignored when generating hooks",
			Category:    CategoryConfig,
			Warning:     true,
		})
	}
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if sc.Scan() {
		return sc.Text(), nil
	}
	return "", sc.Err()
}
