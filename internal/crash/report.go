package crash

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hugo-lorenzo-mato/crashcatch/internal/sysinfo"
)

// Report is the ephemeral record assembled at crash time. It exists only
// long enough to be rendered into the output file.
type Report struct {
	ID      string
	Title   string
	Created time.Time

	System sysinfo.Info

	FuncName string
	Caller   string
	Started  time.Time
	Elapsed  time.Duration
	Args     []string

	Data  []Entry
	Extra map[string]any

	CallbackErrors []string

	FaultMessage string
	Stack        string
}

// NewReport assembles a report skeleton with a fresh id, creation
// timestamp and host snapshot.
func NewReport(title string) *Report {
	return &Report{
		ID:      uuid.NewString(),
		Title:   title,
		Created: time.Now(),
		System:  sysinfo.Collect(),
	}
}

// Bytes renders the report in its fixed plain-text layout.
func (r *Report) Bytes() []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.Title)
	fmt.Fprintf(&b, "Report ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Created: %s\n", r.Created.Format(time.RFC3339))

	b.WriteString("\nSYSTEM INFO:\n")
	fmt.Fprintf(&b, "Platform: %s\n", r.System.Platform)
	fmt.Fprintf(&b, "Executable: %s\n", r.System.Executable)
	fmt.Fprintf(&b, "Go version: %s\n", r.System.GoVersion)
	fmt.Fprintf(&b, "Modules: %v\n", r.System.Modules)
	fmt.Fprintf(&b, "os.Args: %v\n", r.System.Args)

	b.WriteString("\nCRASH DATA:\n")
	fmt.Fprintf(&b, "%s called by %s at %s crashed after %g seconds\n",
		r.FuncName, r.Caller, r.Started.Format(time.RFC3339), r.Elapsed.Seconds())
	fmt.Fprintf(&b, "args=%v\n", r.Args)

	for _, e := range r.Data {
		fmt.Fprintf(&b, "%s: %v\n", e.Key, e.Value)
	}
	for _, k := range sortedKeys(r.Extra) {
		fmt.Fprintf(&b, "%s: %v\n", k, r.Extra[k])
	}
	for _, cbErr := range r.CallbackErrors {
		fmt.Fprintf(&b, "Callback error: %s\n", cbErr)
	}

	fmt.Fprintf(&b, "Error: %s\n", r.FaultMessage)
	b.WriteString(r.Stack)
	if !strings.HasSuffix(r.Stack, "\n") {
		b.WriteString("\n")
	}

	return []byte(b.String())
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReportFile describes an existing report on disk.
type ReportFile struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// ListReports finds report files derived from the given target path: the
// path itself plus any " (n)" collision variants, newest first.
func ListReports(path string) ([]ReportFile, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading report dir: %w", err)
	}

	var reports []ReportFile
	for _, e := range entries {
		if e.IsDir() || !matchesReportName(e.Name(), stem, ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		reports = append(reports, ReportFile{
			Path:    filepath.Join(dir, e.Name()),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ModTime.After(reports[j].ModTime)
	})
	return reports, nil
}

// LatestReport returns the most recently written report for the target
// path, or an error when none exist.
func LatestReport(path string) (ReportFile, error) {
	reports, err := ListReports(path)
	if err != nil {
		return ReportFile{}, err
	}
	if len(reports) == 0 {
		return ReportFile{}, fmt.Errorf("no crash reports found for %s", path)
	}
	return reports[0], nil
}

// matchesReportName accepts "stem.ext" and "stem (n).ext".
func matchesReportName(name, stem, ext string) bool {
	if !strings.HasSuffix(name, ext) {
		return false
	}
	base := strings.TrimSuffix(name, ext)
	if base == stem {
		return true
	}
	rest, ok := strings.CutPrefix(base, stem+" (")
	if !ok || !strings.HasSuffix(rest, ")") {
		return false
	}
	digits := strings.TrimSuffix(rest, ")")
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
