package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rootassets "github.com/amantham20/aqs-go/assets"
	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/pkg/filesystem"
	"github.com/amantham20/aqs-go/internal/ports"
)

// Installer deploys the Alt-R widget scripts and wires them into shell rc
// files.
type Installer struct {
	home   string
	logger ports.Logger
}

// NewInstaller builds a shell installer.
func NewInstaller(logger ports.Logger) *Installer {
	return newInstallerAt(filesystem.UserHomeDir(), logger)
}

func newInstallerAt(home string, logger ports.Logger) *Installer {
	return &Installer{home: home, logger: logger}
}

// Install installs shell integration for the given shell name (auto-detected when empty).
func (i *Installer) Install(shell string, force bool) (domain.ShellInstallResult, error) {
	name := normalizeShell(shell)
	scriptContent, err := scriptFor(name)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	scriptPath, rcFile := i.scriptPaths(name)
	if scriptPath == "" || rcFile == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", name)
	}
	if err := os.MkdirAll(filepath.Dir(scriptPath), domain.DirectoryPermissions); err != nil {
		return domain.ShellInstallResult{}, err
	}
	if err := os.MkdirAll(filepath.Dir(rcFile), domain.DirectoryPermissions); err != nil {
		return domain.ShellInstallResult{}, err
	}

	if err := os.WriteFile(scriptPath, []byte(scriptContent), domain.SharedFilePermissions); err != nil {
		return domain.ShellInstallResult{}, err
	}

	rcUpdated, err := ensureRCLine(rcFile, i.sourceLine(name, scriptPath), force)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}

	return domain.ShellInstallResult{
		Shell:         name,
		ScriptPath:    scriptPath,
		RCFile:        rcFile,
		ScriptUpdated: true,
		RCUpdated:     rcUpdated,
	}, nil
}

// Uninstall removes the sourcing line from the rc file (script retained).
func (i *Installer) Uninstall(shell string) (domain.ShellInstallResult, error) {
	name := normalizeShell(shell)
	scriptPath, rcFile := i.scriptPaths(name)
	if scriptPath == "" || rcFile == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", name)
	}
	updated, err := removeRCLine(rcFile, i.sourceLine(name, scriptPath))
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	return domain.ShellInstallResult{
		Shell:         name,
		ScriptPath:    scriptPath,
		RCFile:        rcFile,
		ScriptUpdated: false,
		RCUpdated:     updated,
	}, nil
}

// Status reports current integration state.
func (i *Installer) Status(shell string) domain.ShellStatus {
	name := normalizeShell(shell)
	scriptPath, rcFile := i.scriptPaths(name)
	status := domain.ShellStatus{
		Shell:      name,
		ScriptPath: scriptPath,
		RCFile:     rcFile,
	}
	if scriptPath == "" || rcFile == "" {
		status.Error = "unsupported shell"
		return status
	}

	if info, err := os.Stat(scriptPath); err == nil && info.Mode().IsRegular() {
		status.ScriptExists = true
	}

	line := i.sourceLine(name, scriptPath)
	if contents, err := os.ReadFile(rcFile); err == nil {
		status.LinePresent = strings.Contains(string(contents), line)
	}

	return status
}

// DetectShell inspects the SHELL env var.
func (i *Installer) DetectShell() string {
	return os.Getenv("SHELL")
}

func normalizeShell(shell string) domain.ShellName {
	if shell == "" {
		shell = filepath.Base(os.Getenv("SHELL"))
	}
	switch strings.ToLower(shell) {
	case "zsh":
		return domain.ShellZsh
	case "bash":
		return domain.ShellBash
	case "fish":
		return domain.ShellFish
	default:
		return domain.ShellUnknown
	}
}

func scriptFor(shell domain.ShellName) (string, error) {
	switch shell {
	case domain.ShellZsh:
		return rootassets.ZshHook, nil
	case domain.ShellBash:
		return rootassets.BashHook, nil
	case domain.ShellFish:
		return rootassets.FishHook, nil
	default:
		return "", errors.New("unsupported shell")
	}
}

func (i *Installer) scriptPaths(shell domain.ShellName) (string, string) {
	switch shell {
	case domain.ShellZsh:
		return filepath.Join(i.home, ".aqs", "shell", "zsh.sh"), filepath.Join(i.home, ".zshrc")
	case domain.ShellBash:
		return filepath.Join(i.home, ".aqs", "shell", "bash.sh"), filepath.Join(i.home, ".bashrc")
	case domain.ShellFish:
		return filepath.Join(i.home, ".aqs", "shell", "fish.fish"), filepath.Join(i.home, ".config", "fish", "config.fish")
	default:
		return "", ""
	}
}

// sourceLine is the guarded rc line. Fish has its own conditional syntax.
func (i *Installer) sourceLine(shell domain.ShellName, scriptPath string) string {
	path := i.friendlyPath(scriptPath)
	if shell == domain.ShellFish {
		return fmt.Sprintf("test -f %s; and source %s", path, path)
	}
	return fmt.Sprintf("[ -f %s ] && source %s", path, path)
}

func (i *Installer) friendlyPath(path string) string {
	if strings.HasPrefix(path, i.home) {
		rel := strings.TrimPrefix(path, i.home)
		rel = strings.TrimPrefix(rel, string(os.PathSeparator))
		return filepath.Join("$HOME", rel)
	}
	return path
}

func ensureRCLine(path string, line string, force bool) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(headerComment()+line+"\n"), domain.SharedFilePermissions); err != nil {
			return false, err
		}
		return true, nil
	}
	if strings.Contains(string(contents), line) && !force {
		return false, nil
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			continue
		}
		filtered = append(filtered, existing)
	}
	filtered = append(filtered, line)
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, os.WriteFile(path, []byte(final), domain.SharedFilePermissions)
}

func removeRCLine(path string, line string) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	removed := false
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			removed = true
			continue
		}
		filtered = append(filtered, existing)
	}
	if !removed {
		return false, nil
	}
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, os.WriteFile(path, []byte(final), domain.SharedFilePermissions)
}

func headerComment() string {
	return "# Added by AQS installer\n"
}

var _ ports.ShellIntegrator = (*Installer)(nil)
