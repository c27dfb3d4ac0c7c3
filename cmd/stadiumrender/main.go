// Command stadiumrender renders a saved project's outline to SVG or PNG
// without the editor UI.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"

	"stadium-editor/internal/hull"
	"stadium-editor/internal/project"
	"stadium-editor/internal/render"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	projectPath := flag.String("project", "", "Path to a .stadium project file")
	svgPath := flag.String("svg", "", "Write the outline as an SVG document")
	pngPath := flag.String("png", "", "Write the outline as a PNG image")
	size := flag.Int("size", 1024, "PNG image size in pixels")
	flag.Parse()

	if *projectPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	proj, err := project.Load(*projectPath)
	if err != nil {
		log.Fatalf("Failed to load project: %v", err)
	}

	path := hull.ComputeTangentHull(proj.Discs, proj.Order, proj.Options, proj.Mirror)
	if path.Empty() {
		log.Fatalf("Project %s produces no outline (fewer than two usable discs)", *projectPath)
	}

	fmt.Printf("%s: %d discs, %d segments, total length %.4f\n",
		proj.Name, len(proj.Discs), len(path.Segments), path.TotalLength())

	strokeWidth := proj.Settings.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 2
	}

	if *svgPath != "" {
		if err := writeSVG(*svgPath, path, strokeWidth); err != nil {
			log.Fatalf("Failed to write SVG: %v", err)
		}
		fmt.Printf("Wrote %s\n", *svgPath)
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, path, strokeWidth, *size); err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
		fmt.Printf("Wrote %s\n", *pngPath)
	}
}

func writeSVG(path string, p hull.Path, strokeWidth float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.WriteSVGDocument(f, p, strokeWidth)
}

func writePNG(path string, p hull.Path, strokeWidth float64, size int) error {
	img := render.RasterizeFit(p, render.Style{
		Stroke:      color.RGBA{A: 255},
		StrokeWidth: strokeWidth,
	}, size, size)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
