// Package render turns allocator outcomes and status into terminal text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/quickfit/alloc"
)

// Column headers of the status table.
var columns = [3]string{"Block Size (KB)", "Free Blocks", "Status"}

// Status labels.
const (
	LabelFree      = "Free"
	LabelAllocated = "Allocated"
)

// Options configures a Renderer.
type Options struct {
	Color bool // use lipgloss colors
	JSON  bool // emit one JSON document per call instead of text
}

// Renderer writes outcomes and status tables to an io.Writer.
type Renderer struct {
	out   io.Writer
	opts  Options
	style styles
	p     *message.Printer
}

// New creates a Renderer writing to out.
func New(out io.Writer, opts Options) *Renderer {
	lr := lipgloss.NewRenderer(out)
	return &Renderer{
		out:   out,
		opts:  opts,
		style: newStyles(lr, opts.Color),
		p:     message.NewPrinter(language.English),
	}
}

// event is the JSON form of an operation outcome.
type event struct {
	Op       string `json:"op"`
	OK       bool   `json:"ok"`
	Size     int    `json:"size,omitempty"`
	Category int    `json:"category,omitempty"`
	Message  string `json:"message"`
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) line(style lipgloss.Style, msg string) error {
	_, err := fmt.Fprintln(r.out, style.Render(msg))
	return err
}

// num formats n with English digit grouping.
func (r *Renderer) num(n int) string {
	return r.p.Sprintf("%d", n)
}

// Allocation reports the outcome of an allocate call.
func (r *Renderer) Allocation(res alloc.AllocationResult) error {
	var msg string
	if res.OK {
		msg = fmt.Sprintf("Process of size %s KB allocated in block size %s KB.", r.num(res.Request), r.num(res.Category))
	} else {
		msg = fmt.Sprintf("No suitable block found for process size %s KB.", r.num(res.Request))
	}

	if r.opts.JSON {
		return r.writeJSON(event{Op: "allocate", OK: res.OK, Size: res.Request, Category: res.Category, Message: msg})
	}
	if res.OK {
		return r.line(r.style.success, msg)
	}
	return r.line(r.style.failure, msg)
}

// Deallocation reports the outcome of a deallocate call for size.
func (r *Renderer) Deallocation(size int, res alloc.DeallocationResult) error {
	msg := "Invalid block size."
	if res.OK {
		msg = fmt.Sprintf("Block of size %s KB deallocated.", r.num(res.Category))
	}

	if r.opts.JSON {
		return r.writeJSON(event{Op: "deallocate", OK: res.OK, Size: size, Category: res.Category, Message: msg})
	}
	if res.OK {
		return r.line(r.style.success, msg)
	}
	return r.line(r.style.failure, msg)
}

// Reset reports a reset.
func (r *Renderer) Reset() error {
	const msg = "Memory has been reset."
	if r.opts.JSON {
		return r.writeJSON(event{Op: "reset", OK: true, Message: msg})
	}
	return r.line(r.style.success, msg)
}

// Error reports a user input error such as a non-numeric size.
func (r *Renderer) Error(err error) error {
	if r.opts.JSON {
		return r.writeJSON(event{Op: "error", Message: err.Error()})
	}
	return r.line(r.style.failure, "Error: "+err.Error())
}

// Status draws the category table.
func (r *Renderer) Status(rows []alloc.CategoryStatus) error {
	if r.opts.JSON {
		return r.writeJSON(struct {
			Categories []alloc.CategoryStatus `json:"categories"`
		}{rows})
	}

	cells := make([][3]string, len(rows))
	widths := [3]int{}
	for i, h := range columns {
		widths[i] = lipgloss.Width(h)
	}
	for i, row := range rows {
		label := LabelAllocated
		if row.IsFree {
			label = LabelFree
		}
		cells[i] = [3]string{r.num(row.Size), r.num(row.FreeCount), label}
		for j, c := range cells[i] {
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}

	var b strings.Builder
	for i, h := range columns {
		b.WriteString(r.style.header.Width(widths[i] + 2).Render(h))
	}
	b.WriteByte('\n')
	for i := range columns {
		b.WriteString(r.style.muted.Render(strings.Repeat("─", widths[i]+2)))
	}
	b.WriteByte('\n')

	for i, row := range rows {
		b.WriteString(r.style.cell.Width(widths[0] + 2).Render(cells[i][0]))
		b.WriteString(r.style.cell.Width(widths[1] + 2).Render(cells[i][1]))
		status := r.style.used
		if row.IsFree {
			status = r.style.free
		}
		b.WriteString(status.Width(widths[2] + 2).Render(cells[i][2]))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Stats prints the operation counters.
func (r *Renderer) Stats(s alloc.Stats) error {
	if r.opts.JSON {
		return r.writeJSON(s)
	}
	_, err := fmt.Fprintf(r.out,
		"allocations: %s  failures: %s  deallocations: %s  unknown: %s  resets: %s  free blocks: %s/%s\n",
		r.num(s.Allocations), r.num(s.Failures), r.num(s.Deallocations),
		r.num(s.UnknownCategory), r.num(s.Resets), r.num(s.FreeBlocks), r.num(s.InitialFreeTotal))
	return err
}
