// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/toeirei/keyreport/internal/i18n"
	"github.com/toeirei/keyreport/internal/rawdump"
	"github.com/toeirei/keyreport/internal/report"
)

// generate scans the input directory and writes the report. Every failure is
// reported on the console; none of them changes the exit status.
func (a *app) generate() {
	a.log.Info(i18n.T("run.start"))

	scanner := &rawdump.Scanner{Dir: a.cfg.Input.Dir, Suffix: a.cfg.Input.Suffix, Log: a.log}
	corpus, err := scanner.Scan()
	if err != nil {
		// Already reported per file; keep the joined detail for -v.
		a.log.Debug("scan finished with errors", "err", err)
	}

	r := &report.Renderer{
		InputDir:     a.cfg.Input.Dir,
		Suffix:       a.cfg.Input.Suffix,
		Fingerprints: a.cfg.Report.Fingerprints,
	}
	path := a.cfg.Output.Path
	if err := r.WriteFile(path, corpus); err != nil {
		a.log.Error(i18n.T("report.write_failed", err))
		return
	}
	a.log.Info(i18n.T("report.written", path))

	fmt.Fprintln(a.out, renderSummary(a.out, corpus.Stats()))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, i18n.T("run.next_steps"))
	fmt.Fprintln(a.out, i18n.T("run.open_in_browser", path))
}
