// Package doctor runs read-only toolchain checks: it reports whether the
// delegated commands can be expected to work, without mutating anything.
package doctor

import (
	"fmt"

	"git.home.luguber.info/inful/deckctl/internal/config"
	"git.home.luguber.info/inful/deckctl/internal/deck"
	"git.home.luguber.info/inful/deckctl/internal/pm"
	"git.home.luguber.info/inful/deckctl/internal/runner"
)

// Check is one named probe result.
type Check struct {
	Name   string
	OK     bool
	Detail string
	Advice string
}

// Report is the full set of checks for one project.
type Report struct {
	Checks []Check
}

// Healthy reports whether every check passed.
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Run performs all checks against the project directory.
func Run(cfg *config.Config, projectDir string) (*Report, error) {
	project, probeErr := deck.Probe(projectDir, cfg.Entry)

	mgr := pm.New(pm.Resolve(cfg, projectDir), projectDir, cfg.DepsDir)
	report := &Report{}

	report.add("node binary", runner.Available("node"),
		"node resolved on PATH", "install Node.js")

	report.add(fmt.Sprintf("%s binary", mgr.Binary()), runner.Available(mgr.Binary()),
		fmt.Sprintf("%s resolved on PATH", mgr.Binary()),
		fmt.Sprintf("install %s or set package_manager in deck.yaml", mgr.Binary()))

	if probeErr != nil {
		report.Checks = append(report.Checks, Check{
			Name:   "package.json",
			OK:     false,
			Detail: probeErr.Error(),
			Advice: "fix the manifest syntax",
		})
		return report, nil
	}

	report.add("entry file", project.HasEntry,
		fmt.Sprintf("%s present", cfg.Entry),
		fmt.Sprintf("create %s or set entry in deck.yaml", cfg.Entry))

	report.add("package.json", project.HasManifest,
		"manifest present", "run the deck scaffolding first")

	for _, script := range []string{cfg.Scripts.Dev, cfg.Scripts.Build, cfg.Scripts.Export} {
		report.add(fmt.Sprintf("script %q", script), project.HasScript(script),
			"declared in package.json scripts",
			fmt.Sprintf("add a %q script to package.json", script))
	}

	report.add("dependencies", mgr.HasDeps(),
		fmt.Sprintf("%s present", mgr.DepsDir()),
		"run deckctl install")

	return report, nil
}

func (r *Report) add(name string, ok bool, detail, advice string) {
	c := Check{Name: name, OK: ok}
	if ok {
		c.Detail = detail
	} else {
		c.Detail = "missing"
		c.Advice = advice
	}
	r.Checks = append(r.Checks, c)
}
