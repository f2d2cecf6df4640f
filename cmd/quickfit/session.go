package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/quickfit/alloc"
	"github.com/joshuapare/quickfit/internal/command"
	"github.com/joshuapare/quickfit/internal/logger"
	"github.com/joshuapare/quickfit/internal/render"
)

const helpText = `Commands:
  allocate <size>     allocate a process of <size> KB (alias: alloc, a)
  deallocate <size>   return a block of exactly <size> KB (alias: free, d)
  reset               restore every category to its initial free blocks
  status              show the category table (alias: s)
  stats               show operation counters
  help                show this help
  quit                leave the shell (alias: exit, q)
`

// session applies parsed commands to one allocator and reports each outcome.
type session struct {
	alloc alloc.Allocator
	out   *render.Renderer
	quiet bool

	// showStatus prints the table after every state change.
	showStatus bool

	// help is written for VerbHelp.
	help io.Writer
}

// exec runs one command. It reports quit=true for VerbQuit.
func (s *session) exec(c command.Command) (quit bool, err error) {
	switch c.Verb {
	case command.VerbAllocate:
		res, err := s.alloc.Allocate(c.Size)
		if err != nil {
			return false, err
		}
		logger.Info("allocate", "size", c.Size, "ok", res.OK, "category", res.Category)
		if !s.quiet {
			if err := s.out.Allocation(res); err != nil {
				return false, err
			}
		}
		return false, s.afterChange(res.OK)

	case command.VerbDeallocate:
		res, err := s.alloc.Deallocate(c.Size)
		if err != nil {
			return false, err
		}
		logger.Info("deallocate", "size", c.Size, "ok", res.OK)
		if !s.quiet {
			if err := s.out.Deallocation(c.Size, res); err != nil {
				return false, err
			}
		}
		return false, s.afterChange(res.OK)

	case command.VerbReset:
		s.alloc.Reset()
		logger.Info("reset")
		if !s.quiet {
			if err := s.out.Reset(); err != nil {
				return false, err
			}
		}
		return false, s.afterChange(true)

	case command.VerbStatus:
		return false, s.out.Status(s.alloc.Status())

	case command.VerbStats:
		return false, s.out.Stats(s.alloc.Stats())

	case command.VerbHelp:
		if s.help != nil {
			_, err := io.WriteString(s.help, helpText)
			return false, err
		}
		return false, nil

	case command.VerbQuit:
		return true, nil
	}
	return false, fmt.Errorf("unhandled command %s", c.Verb)
}

func (s *session) afterChange(changed bool) error {
	if !s.showStatus || !changed {
		return nil
	}
	return s.out.Status(s.alloc.Status())
}

// replay reads commands line by line from r. With keepGoing, parse errors
// are reported and skipped; otherwise the first one stops the replay.
func (s *session) replay(r io.Reader, keepGoing bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		c, err := command.Parse(scanner.Text())
		if errors.Is(err, command.ErrEmpty) {
			continue
		}
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if !keepGoing {
				return err
			}
			logger.Warn("skipping line", "line", lineNo, "error", err)
			if err := s.out.Error(err); err != nil {
				return err
			}
			continue
		}

		quit, err := s.exec(c)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if quit {
			break
		}
	}
	return scanner.Err()
}
