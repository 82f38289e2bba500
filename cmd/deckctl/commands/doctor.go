package commands

import (
	"fmt"

	"git.home.luguber.info/inful/deckctl/internal/doctor"
	deckerrors "git.home.luguber.info/inful/deckctl/internal/errors"
)

// DoctorCmd implements the 'doctor' command: read-only toolchain checks.
type DoctorCmd struct{}

func (d *DoctorCmd) Run(_ *Global, root *CLI) error {
	cfg, _, err := LoadManager(root)
	if err != nil {
		return err
	}

	report, err := doctor.Run(cfg, root.Dir)
	if err != nil {
		return err
	}

	failed := 0
	for _, check := range report.Checks {
		status := "ok"
		if !check.OK {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%-22s %-4s %s\n", check.Name, status, check.Detail)
		if !check.OK && check.Advice != "" {
			fmt.Printf("%-22s      hint: %s\n", "", check.Advice)
		}
	}

	if failed > 0 {
		return deckerrors.ValidationError(fmt.Sprintf("%d of %d checks failed", failed, len(report.Checks)))
	}

	fmt.Println("All checks passed")
	return nil
}
