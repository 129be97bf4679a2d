// Package paths provides centralized path handling for agentup: repository
// root discovery, source and destination directory resolution, and the
// external dependency check.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/agentup/agentup/pkg/config"
	"github.com/agentup/agentup/pkg/errors"
	"github.com/agentup/agentup/pkg/logging"
)

// EnvRepoRoot overrides repository root discovery when set
const EnvRepoRoot = "AGENTUP_REPO_ROOT"

// Paths resolves and holds the directories for one run.
type Paths struct {
	repoRoot     string
	sourceDir    string
	destDir      string
	usedFallback bool
}

// New creates a Paths instance. An empty rootHint triggers discovery:
// AGENTUP_REPO_ROOT, then the git repository root, then the current working
// directory. The cwd fallback is not an error; UsedFallback reports it so
// the caller can warn.
func New(rootHint string, cfg *config.Config) (*Paths, error) {
	p := &Paths{}

	if rootHint == "" {
		root, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		p.repoRoot = root
		p.usedFallback = usedFallback
	} else {
		p.repoRoot = ExpandHome(rootHint)
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repository root")
	}
	p.repoRoot = absRoot

	p.sourceDir = filepath.Join(p.repoRoot, filepath.FromSlash(cfg.SourceDir))
	p.destDir = filepath.Join(xdg.ConfigHome, filepath.FromSlash(cfg.DestDir))

	return p, nil
}

// RepoRoot returns the resolved repository root
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// SourceDir returns the agent source directory inside the repository
func (p *Paths) SourceDir() string {
	return p.sourceDir
}

// DestDir returns the destination directory under XDG_CONFIG_HOME
func (p *Paths) DestDir() string {
	return p.destDir
}

// ValidateSource confirms the source directory exists. It is a read-only
// probe; the empty-directory case is reported by the scanner, which knows
// the installable-file pattern.
func (p *Paths) ValidateSource() error {
	info, err := os.Stat(p.sourceDir)
	if os.IsNotExist(err) {
		return errors.Newf(errors.ErrSourceNotFound,
			"agent directory %s does not exist; run from the repository root or pass --root", p.sourceDir)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", p.sourceDir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrSourceNotFound, "%s is not a directory", p.sourceDir)
	}
	return nil
}

// EnsureDest creates the destination directory when absent and verifies it
// is writable.
func (p *Paths) EnsureDest() error {
	if err := os.MkdirAll(p.destDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create destination directory %s", p.destDir)
	}

	probe, err := os.CreateTemp(p.destDir, ".agentup-probe-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrDestNotWritable, "destination directory %s is not writable", p.destDir)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	return nil
}

// CheckGit verifies the git binary is available. Root discovery shells out
// to git, so its absence is a fatal dependency error before any other work.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.New(errors.ErrGitMissing,
			"git is required but was not found on PATH; install git and retry")
	}
	return nil
}

// findRepoRoot determines the repository root using the following priority:
// 1. AGENTUP_REPO_ROOT environment variable
// 2. Git repository root ('git rev-parse --show-toplevel')
// 3. Current working directory (fallback, reported via the bool)
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvRepoRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	logger := logging.GetLogger("paths")

	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		// Not in a git repo; the caller falls back to cwd
		logger.Debug().Err(err).Msg("git rev-parse failed")
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrSourceNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv("HOME")
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something refers to another user's home, leave untouched
		return path
	}

	return path
}
