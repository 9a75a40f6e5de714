package portal

import (
	"bytes"
	"cmp"
	"embed"
	"fmt"
	"html/template"
	"slices"
	"strconv"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/ifuryst/lol"
	"github.com/luhambo/maintenance/internal/common/cnst"
)

// DateLayout renders timestamps like "Oct 19, 2026, 09:30 AM"
const DateLayout = "Jan 2, 2006, 03:04 PM"

//go:embed templates/*.html
var templateFS embed.FS

// View renders page fragments. Every interpolated field is HTML-escaped.
type View struct {
	tmpl *template.Template
	loc  *time.Location
}

// NewView parses the embedded fragments; dates are shown in loc
func NewView(loc *time.Location) (*View, error) {
	if loc == nil {
		loc = time.Local
	}
	v := &View{loc: loc}

	funcs := sprig.FuncMap()
	funcs["truncate"] = truncate
	funcs["formatDate"] = v.formatDate

	tmpl, err := template.New("portal").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse portal templates: %w", err)
	}
	v.tmpl = tmpl
	return v, nil
}

// Render executes the named fragment
func (v *View) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (v *View) formatDate(t time.Time) string {
	return t.In(v.loc).Format(DateLayout)
}

// truncate cuts s to n runes and marks the cut with "..."
func truncate(n int, s string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

type statusCounts struct {
	Pending, InProgress, Completed int
}

func countStatuses(reports []Report) statusCounts {
	var c statusCounts
	for _, r := range reports {
		switch r.Status {
		case cnst.StatusPending:
			c.Pending++
		case cnst.StatusInProgress:
			c.InProgress++
		case cnst.StatusCompleted:
			c.Completed++
		}
	}
	return c
}

type buildingBar struct {
	Name  string
	Count int
	Style template.CSS
}

// buildingBars sizes each fixed building relative to the busiest one
func buildingBars(reports []Report) []buildingBar {
	counts := make([]int, len(cnst.Buildings))
	for i, b := range cnst.Buildings {
		for _, r := range reports {
			if r.BuildingName == b {
				counts[i]++
			}
		}
	}
	peak := max(slices.Max(counts), 1)

	bars := make([]buildingBar, len(cnst.Buildings))
	for i, b := range cnst.Buildings {
		pct := float64(counts[i]) / float64(peak) * 100
		bars[i] = buildingBar{
			Name:  b,
			Count: counts[i],
			Style: template.CSS("width: " + strconv.FormatFloat(pct, 'f', -1, 64) + "%"),
		}
	}
	return bars
}

// buildingOptions is the fixed building list followed by any other
// building seen in reports, each once.
func buildingOptions(reports []Report) []string {
	names := slices.Clone(cnst.Buildings)
	for _, r := range reports {
		if r.BuildingName != "" {
			names = append(names, r.BuildingName)
		}
	}
	names = lol.UniqSlice(names)

	rank := func(s string) int {
		if i := slices.Index(cnst.Buildings, s); i >= 0 {
			return i
		}
		return len(cnst.Buildings)
	}
	slices.SortStableFunc(names, func(a, b string) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return cmp.Compare(ra, rb)
		}
		return cmp.Compare(a, b)
	})
	return names
}

type option struct {
	Value, Label string
	Selected     bool
}

func options(values []string, labels map[string]string, selected string) []option {
	out := make([]option, len(values))
	for i, v := range values {
		label := labels[v]
		if label == "" {
			label = v
		}
		out[i] = option{Value: v, Label: label, Selected: v == selected}
	}
	return out
}

var statusLabels = map[string]string{
	cnst.StatusPending:    "Pending",
	cnst.StatusInProgress: "In Progress",
	cnst.StatusCompleted:  "Completed",
}

type reportDetail struct {
	Report     Report
	ImageURL   string
	Editable   bool
	Statuses   []option
	Priorities []option
}

func newReportDetail(r Report, s *Session) reportDetail {
	d := reportDetail{Report: r, Editable: s.IsAdmin()}
	if r.ImagePath != nil {
		d.ImageURL = *r.ImagePath
	}
	if d.Editable {
		d.Statuses = options(cnst.Statuses, statusLabels, r.Status)
		d.Priorities = options(cnst.Priorities, nil, r.Priority)
	}
	return d
}

type chatRow struct {
	Message
	Sender string
}

// chatRows labels each message "You" when it came from the session's side
func chatRows(msgs []Message, s *Session) []chatRow {
	rows := make([]chatRow, len(msgs))
	for i, m := range msgs {
		var sender string
		if m.SenderType == cnst.SenderStudent {
			sender = "Student"
			if s.UserType == cnst.SenderStudent {
				sender = "You"
			}
		} else {
			sender = "Admin"
			if s.UserType == cnst.SenderAdmin {
				sender = "You"
			}
		}
		rows[i] = chatRow{Message: m, Sender: sender}
	}
	return rows
}
