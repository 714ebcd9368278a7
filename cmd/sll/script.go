package main

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/sirkon/errors"

	"sll_code/linked_list"
)

const (
	ERROR_OPERATION_FAILED = 1
	ERROR_BAD_SCRIPT       = 2
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

type runner struct {
	list    *linked_list.List
	out     io.Writer
	strict  bool
	verbose bool
}

// run executes script lines against the list. Operation errors are printed
// and skipped unless the runner is strict.
func (r *runner) run(script io.Reader) error {
	sc := bufio.NewScanner(script)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := r.exec(strings.Fields(line))
		if err == nil {
			if r.verbose {
				log.Printf("line %d: %s -> [%v]", lineNo, line, r.list)
			}
			continue
		}

		var badLine badLineError
		if errors.As(err, &badLine) {
			return &ErrorWithCode{
				StatusCode:    ERROR_BAD_SCRIPT,
				InternalError: errors.Wrap(err, "parse script").Int("line", lineNo),
			}
		}
		if r.strict {
			return &ErrorWithCode{
				StatusCode:    ERROR_OPERATION_FAILED,
				InternalError: errors.Wrap(err, line).Int("line", lineNo),
			}
		}
		if _, werr := io.WriteString(r.out, linked_list.Describe(err)+"\n"); werr != nil {
			return errors.Wrap(werr, "report operation outcome")
		}
	}

	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read script")
	}
	return nil
}

func (r *runner) exec(fields []string) error {
	args, err := parseArgs(fields[1:])
	if err != nil {
		return err
	}

	switch op := fields[0]; op {
	case "add-head":
		if err := arity(op, args, 1); err != nil {
			return err
		}
		r.list.AddHead(args[0])
		return nil
	case "remove-head":
		if err := arity(op, args, 0); err != nil {
			return err
		}
		return r.list.RemoveHead()
	case "remove":
		if err := arity(op, args, 1); err != nil {
			return err
		}
		return r.list.RemoveNode(args[0])
	case "add-after":
		if err := arity(op, args, 2); err != nil {
			return err
		}
		return r.list.AddAfter(args[0], args[1])
	case "print":
		if err := arity(op, args, 0); err != nil {
			return err
		}
		err := r.list.Print(r.out)
		if errors.Is(err, linked_list.ErrEmptyList) {
			// Print has already shown the notice
			return nil
		}
		return err
	default:
		return badLineError("unknown operation " + strconv.Quote(op))
	}
}

type badLineError string

func (e badLineError) Error() string {
	return string(e)
}

func parseArgs(fields []string) ([]int, error) {
	args := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, badLineError("invalid integer " + strconv.Quote(f))
		}
		args[i] = v
	}
	return args, nil
}

func arity(op string, args []int, n int) error {
	if len(args) != n {
		return badLineError(op + " takes " + strconv.Itoa(n) + " argument(s), got " + strconv.Itoa(len(args)))
	}
	return nil
}
