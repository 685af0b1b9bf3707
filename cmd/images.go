package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"logistica/internal/movements"
	"logistica/internal/screens"
)

// fileImageSource plays the camera for the CLI: the evidence is read from a
// file. No path means the capture was canceled.
type fileImageSource struct {
	path string
}

func (s *fileImageSource) Capture(_ context.Context) (*movements.Image, error) {
	if s.path == "" {
		return nil, screens.ErrCanceled
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, screens.ErrPermissionDenied
		}
		return nil, fmt.Errorf("read image: %w", err)
	}

	return &movements.Image{URI: s.path, Data: data}, nil
}

func loadImage(path string) (*movements.Image, error) {
	if path == "" {
		return nil, nil
	}
	return (&fileImageSource{path: path}).Capture(context.Background())
}
