package extract

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

var errNoCommand = errors.New("extract: empty command")

// Command pipes images through an external program, such as "rembg i - -",
// which reads the image on stdin and writes the result to stdout
type Command struct {
	Path string
	Args []string
}

// ParseCommand splits a command line on whitespace
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errNoCommand
	}
	return &Command{
		Path: fields[0],
		Args: fields[1:],
	}, nil
}

// Extract runs the program once for b
func (c *Command) Extract(ctx context.Context, b []byte) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = bytes.NewReader(b)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.Errorf("extract: %s: %v: %s", c.Path, err, msg)
		}
		return nil, errors.Errorf("extract: %s: %v", c.Path, err)
	}

	if stdout.Len() == 0 {
		return nil, errors.Errorf("extract: %s: no output", c.Path)
	}

	return stdout.Bytes(), nil
}

func (c *Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}
