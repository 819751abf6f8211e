package shell

import (
	"context"
	"fmt"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/config"
	"github.com/vk/matrixci/internal/environ"
)

// docBuilder drives a Makefile-based documentation toolchain.
type docBuilder struct{}

// docDir falls back to the conventional doc/ directory when the job
// declares none.
func docDir(env environ.Env) string {
	if dir := env.Get(config.KeyDocDir); dir != "" {
		return dir
	}
	return "doc"
}

// ApplyPatch implements collab.DocBuilder.
func (d *docBuilder) ApplyPatch(ctx context.Context, patch string, env environ.Env) (string, error) {
	return runScript(ctx, "", env, fmt.Sprintf("patch -p1 < %s", patch))
}

// BuildDocs implements collab.DocBuilder.
func (d *docBuilder) BuildDocs(ctx context.Context, target collab.DocTarget, env environ.Env) (string, error) {
	switch target {
	case collab.DocHTML:
		return runScript(ctx, "", env, fmt.Sprintf("make -C %s html", docDir(env)))
	case collab.DocPDF:
		return runScript(ctx, "", env, fmt.Sprintf("make -C %s latexpdf", docDir(env)))
	default:
		return "", fmt.Errorf("shell: no documentation target %q", target)
	}
}
