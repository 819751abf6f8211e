package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/vk/matrixci/internal/environ"
)

// runScript executes one shell command with the job environment layered
// over the process environment, capturing stdout and stderr together as
// the step's diagnostic output. The context deadline is the step's time
// budget; exceeding it surfaces as an ordinary command failure.
func runScript(ctx context.Context, dir string, env environ.Env, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", script)
	cmd.Dir = dir

	cmd.Env = os.Environ()
	for _, key := range env.Keys() {
		cmd.Env = append(cmd.Env, key+"="+env.Get(key))
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.String(), err
}
