// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     figure
// Description: Hands written figures to the platform image viewer
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package figure

import (
	"os/exec"
	"runtime"

	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

// Open shows the figure at path in the default image viewer. It returns as
// soon as the viewer has been started.
func Open(path string) error {
	c, err := viewerCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		return mdwerrors.Wrap(err, mdwerrors.CodeIO, "cannot start image viewer").WithDetail("path", path)
	}
	return c.Process.Release()
}

func viewerCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, mdwerrors.Newf(mdwerrors.CodeInternal, "no image viewer known for %s", goos).
			WithOperation("figure.Open")
	}
}
