package helpers

import (
	"testing"

	"github.com/amantham20/aqs-go/internal/domain"
)

type stubIntegrator struct {
	detected string
}

func (s stubIntegrator) Install(string, bool) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}

func (s stubIntegrator) Uninstall(string) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}

func (s stubIntegrator) Status(string) domain.ShellStatus { return domain.ShellStatus{} }
func (s stubIntegrator) DetectShell() string              { return s.detected }

func TestParseShellName(t *testing.T) {
	tests := []struct {
		input string
		want  domain.ShellName
	}{
		{"zsh", domain.ShellZsh},
		{"BASH", domain.ShellBash},
		{"/usr/bin/fish", domain.ShellFish},
		{"/bin/zsh", domain.ShellZsh},
		{"tcsh", domain.ShellUnknown},
		{"", domain.ShellUnknown},
	}

	for _, tt := range tests {
		if got := ParseShellName(tt.input); got != tt.want {
			t.Errorf("ParseShellName(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDetermineTargetShellsExplicitFlag(t *testing.T) {
	shells, err := DetermineTargetShells("fish", stubIntegrator{})
	if err != nil {
		t.Fatalf("DetermineTargetShells(fish) error = %v", err)
	}
	if len(shells) != 1 || shells[0] != domain.ShellFish {
		t.Errorf("shells = %v, want [fish]", shells)
	}
}

func TestDetermineTargetShellsAll(t *testing.T) {
	shells, err := DetermineTargetShells("all", stubIntegrator{})
	if err != nil {
		t.Fatalf("DetermineTargetShells(all) error = %v", err)
	}
	if len(shells) != 3 {
		t.Errorf("shells = %v, want zsh, bash and fish", shells)
	}
}

func TestDetermineTargetShellsAutoDetect(t *testing.T) {
	shells, err := DetermineTargetShells("", stubIntegrator{detected: "/bin/zsh"})
	if err != nil {
		t.Fatalf("DetermineTargetShells() error = %v", err)
	}
	if len(shells) != 1 || shells[0] != domain.ShellZsh {
		t.Errorf("shells = %v, want the detected zsh", shells)
	}
}

func TestDetermineTargetShellsDetectionFallsBackToAll(t *testing.T) {
	shells, err := DetermineTargetShells("", stubIntegrator{detected: ""})
	if err != nil {
		t.Fatalf("DetermineTargetShells() error = %v", err)
	}
	if len(shells) != 3 {
		t.Errorf("shells = %v, want all supported shells when detection fails", shells)
	}
}

func TestDetermineTargetShellsRejectsUnknown(t *testing.T) {
	if _, err := DetermineTargetShells("tcsh", stubIntegrator{}); err == nil {
		t.Fatal("DetermineTargetShells(tcsh) should fail")
	}
}
