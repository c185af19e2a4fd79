package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-research2pdf/internal/hints"
)

// checkResult holds the rendering environment diagnosis.
type checkResult struct {
	ChromePath    string
	ChromeVersion string
	Sandbox       bool
	Container     bool
	CI            bool
	TempWritable  bool
	Warnings      []string
	Errors        []string
}

// runCheck diagnoses the rendering environment and returns an exit code.
// Warnings still exit 0; errors exit ExitBrowser.
func runCheck(env *Environment, rep *reporter) int {
	result := diagnose(env.Getenv, launcher.LookPath)
	printCheckResult(rep, result)
	if len(result.Errors) > 0 {
		return ExitBrowser
	}
	return ExitSuccess
}

// diagnose performs all checks. lookPath locates a browser when
// ROD_BROWSER_BIN is unset.
func diagnose(getenv func(string) string, lookPath func() (string, bool)) *checkResult {
	r := &checkResult{}

	checkChrome(r, getenv, lookPath)
	checkEnvironment(r, getenv)
	checkTempDir(r)

	return r
}

// checkChrome detects the Chrome/Chromium installation.
func checkChrome(r *checkResult, getenv func(string) string, lookPath func() (string, bool)) {
	path := getenv("ROD_BROWSER_BIN")
	if path == "" {
		var found bool
		if path, found = lookPath(); !found {
			// rod downloads a browser on first render; not fatal.
			r.Warnings = append(r.Warnings,
				"Chrome/Chromium not found; a managed Chromium will be downloaded on first render")
			return
		}
	}

	if _, err := os.Stat(path); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("Chrome not found at %s (ROD_BROWSER_BIN)", path))
		return
	}
	r.ChromePath = path

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- operator-chosen browser binary
	if err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("could not get Chrome version: %v", err))
	} else {
		r.ChromeVersion = strings.TrimSpace(string(out))
	}

	r.Sandbox = getenv("ROD_NO_SANDBOX") != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(r *checkResult, getenv func(string) string) {
	r.Container = hints.IsInContainer() || getenv("KUBERNETES_SERVICE_HOST") != ""

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if getenv(v) != "" {
			r.CI = true
			break
		}
	}

	if (r.Container || r.CI) && getenv("ROD_NO_SANDBOX") != "1" {
		r.Warnings = append(r.Warnings, "container/CI detected but ROD_NO_SANDBOX not set; set ROD_NO_SANDBOX=1")
	}
}

// checkTempDir verifies the temp directory is writable; rendering goes
// through a temporary HTML file.
func checkTempDir(r *checkResult) {
	f, err := os.CreateTemp("", "research2pdf-check-*")
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("temp directory not writable: %s", os.TempDir()))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(filepath.Clean(name))
	r.TempWritable = true
}

// printCheckResult outputs the diagnosis.
func printCheckResult(rep *reporter, r *checkResult) {
	rep.step("research2pdf check")
	rep.step("")

	rep.step("Chrome/Chromium")
	if r.ChromePath != "" {
		rep.step("  %s Found at %s", rep.okTag.Sprint("[OK]"), r.ChromePath)
		if r.ChromeVersion != "" {
			rep.step("  %s Version: %s", rep.okTag.Sprint("[OK]"), r.ChromeVersion)
		}
		if r.Sandbox {
			rep.step("  %s Sandbox: enabled", rep.okTag.Sprint("[OK]"))
		} else {
			rep.step("  %s Sandbox: disabled (ROD_NO_SANDBOX=1)", rep.okTag.Sprint("[OK]"))
		}
	} else {
		rep.step("  %s Not found", rep.warnTag.Sprint("[WARN]"))
	}
	rep.step("")

	rep.step("Environment")
	rep.step("  %s Platform: %s/%s", rep.okTag.Sprint("[OK]"), runtime.GOOS, runtime.GOARCH)
	if r.Container {
		rep.step("  %s Container: detected", rep.okTag.Sprint("[OK]"))
	}
	if r.CI {
		rep.step("  %s CI: detected", rep.okTag.Sprint("[OK]"))
	}
	if r.TempWritable {
		rep.step("  %s Temp directory: writable", rep.okTag.Sprint("[OK]"))
	}
	rep.step("")

	for _, w := range r.Warnings {
		rep.step("%s %s", rep.warnTag.Sprint("[WARN]"), w)
	}
	for _, e := range r.Errors {
		rep.step("%s %s", rep.errTag.Sprint("[ERROR]"), e)
	}

	switch {
	case len(r.Errors) > 0:
		rep.step("Status: Not ready (see errors above)")
	case len(r.Warnings) > 0:
		rep.step("Status: Ready with warnings")
	default:
		rep.step("Status: Ready to render")
	}
}
