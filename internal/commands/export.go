package commands

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/knitvis/knit"
)

type ExportCmd struct {
	File  string `arg:"" help:"Chart file." type:"existingfile"`
	Out   string `arg:"" help:"PNG output path." type:"path"`
	Scale int    `help:"Pixels per stitch." default:"16"`
}

func (e *ExportCmd) Run(ctx *Context) error {
	if e.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", e.Scale)
	}
	chart, err := knit.Load(e.File)
	if err != nil {
		return err
	}
	if chart.Bounds().Empty() {
		return fmt.Errorf("chart %s is empty", e.File)
	}

	dst := image.NewRGBA(image.Rect(0, 0, chart.Cols()*e.Scale, chart.Rows()*e.Scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), chart, chart.Bounds(), xdraw.Src, nil)

	f, err := os.Create(filepath.Clean(e.Out))
	if err != nil {
		return fmt.Errorf("export chart: %w", err)
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return fmt.Errorf("export chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export chart: %w", err)
	}

	fmt.Fprintf(ctx.Out, "exported %s (%dx%d px)\n", e.Out, dst.Bounds().Dx(), dst.Bounds().Dy())
	return nil
}
