// Package deck probes a slide deck project directory: entry file,
// package.json manifest and the scripts it exposes.
package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Project describes what was found in a deck directory. Probing never
// fails on missing pieces; absence is reported through the fields so the
// doctor can explain it while run commands still delegate (missing
// dependencies are the delegate's failure to report, not ours).
type Project struct {
	Dir         string
	Entry       string
	HasEntry    bool
	HasManifest bool
	Scripts     map[string]string
}

// manifest is the subset of package.json the wrapper cares about.
type manifest struct {
	Scripts map[string]string `json:"scripts"`
}

// Probe inspects dir for the entry file and package.json.
// A malformed package.json is an error; a missing one is not.
func Probe(dir, entry string) (*Project, error) {
	p := &Project{
		Dir:     dir,
		Entry:   entry,
		Scripts: map[string]string{},
	}

	if _, err := os.Stat(filepath.Join(dir, entry)); err == nil {
		p.HasEntry = true
	}

	manifestPath := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(manifestPath)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	p.HasManifest = true
	if m.Scripts != nil {
		p.Scripts = m.Scripts
	}
	return p, nil
}

// HasScript reports whether package.json declares the named script.
func (p *Project) HasScript(name string) bool {
	_, ok := p.Scripts[name]
	return ok
}
