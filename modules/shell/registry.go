package shell

import (
	"context"
	"strings"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/environ"
)

// packageRegistry installs dependency sets with pip.
type packageRegistry struct{}

// installPackagesCommand renders one pip invocation for a request.
// An empty request produces an empty command, which InstallPackages
// treats as a successful no-op.
func installPackagesCommand(req collab.InstallRequest) string {
	if req.File == "" && len(req.Packages) == 0 {
		return ""
	}

	parts := []string{"pip", "install"}
	parts = append(parts, req.Flags...)
	if req.File != "" {
		parts = append(parts, "-r", req.File)
	}
	parts = append(parts, req.Packages...)
	return strings.Join(parts, " ")
}

// InstallPackages implements collab.PackageRegistry.
func (p *packageRegistry) InstallPackages(ctx context.Context, req collab.InstallRequest, env environ.Env) (string, error) {
	script := installPackagesCommand(req)
	if script == "" {
		return "", nil
	}
	return runScript(ctx, "", env, withCache(env, script))
}
