// Package command parses the line-oriented operation language used by the
// quickfit shell and by script replay.
//
//	allocate 120     # alias: alloc, a
//	deallocate 200   # alias: free, d
//	reset
//	status           # alias: s
//	stats
//	help
//	quit             # alias: exit, q
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Verb identifies an operation.
type Verb int

const (
	VerbAllocate Verb = iota + 1
	VerbDeallocate
	VerbReset
	VerbStatus
	VerbStats
	VerbHelp
	VerbQuit
)

var verbNames = map[Verb]string{
	VerbAllocate:   "allocate",
	VerbDeallocate: "deallocate",
	VerbReset:      "reset",
	VerbStatus:     "status",
	VerbStats:      "stats",
	VerbHelp:       "help",
	VerbQuit:       "quit",
}

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Verb(%d)", int(v))
}

var aliases = map[string]Verb{
	"allocate":   VerbAllocate,
	"alloc":      VerbAllocate,
	"a":          VerbAllocate,
	"deallocate": VerbDeallocate,
	"free":       VerbDeallocate,
	"d":          VerbDeallocate,
	"reset":      VerbReset,
	"status":     VerbStatus,
	"s":          VerbStatus,
	"stats":      VerbStats,
	"help":       VerbHelp,
	"?":          VerbHelp,
	"quit":       VerbQuit,
	"exit":       VerbQuit,
	"q":          VerbQuit,
}

var (
	// ErrEmpty indicates a blank or comment-only line.
	ErrEmpty = errors.New("command: empty line")

	// ErrUnknownVerb indicates an unrecognized operation name.
	ErrUnknownVerb = errors.New("command: unknown command")

	// ErrBadSize indicates a missing, non-numeric or non-positive size.
	ErrBadSize = errors.New("command: size must be a positive integer")

	// ErrArgs indicates the wrong number of arguments for a verb.
	ErrArgs = errors.New("command: wrong number of arguments")
)

// Command is one parsed operation. Size is set only for allocate and deallocate.
type Command struct {
	Verb Verb
	Size int
}

// String formats the command back into its canonical text.
func (c Command) String() string {
	if c.takesSize() {
		return fmt.Sprintf("%s %d", c.Verb, c.Size)
	}
	return c.Verb.String()
}

func (c Command) takesSize() bool {
	return c.Verb == VerbAllocate || c.Verb == VerbDeallocate
}

// Parse parses one line. Blank lines and lines starting with '#' return
// ErrEmpty; trailing "# ..." comments are ignored.
func Parse(line string) (Command, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	verb, ok := aliases[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownVerb, fields[0])
	}
	cmd := Command{Verb: verb}

	if !cmd.takesSize() {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrArgs, verb)
		}
		return cmd, nil
	}

	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: usage: %s <size>", ErrArgs, verb)
	}
	size, err := ParseSize(fields[1])
	if err != nil {
		return Command{}, err
	}
	cmd.Size = size
	return cmd, nil
}

// ParseSize parses a positive decimal size, as typed into the size field.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return n, nil
}

// ParseSizeList parses a comma-separated size list such as "50,100,200".
func ParseSizeList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		n, err := ParseSize(part)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
