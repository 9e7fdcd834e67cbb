// Command pixfilt applies a chain of pixgrid filters to an image file.
//
//	pixfilt -in photo.png -out edges.png -chain grayscale,edgesbetter=10
//
// Decoding and encoding happen here; the filter engine itself only ever
// sees pixel grids.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/soypat/pixgrid"
	"github.com/soypat/pixgrid/filters"
)

func main() {
	var (
		inPath  = flag.String("in", "", "input image (png or jpeg)")
		outPath = flag.String("out", "out.png", "output image (png)")
		chain   = flag.String("chain", "", "comma-separated filter chain, e.g. grayscale,solarize=128")
		list    = flag.Bool("list", false, "list available filters and exit")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(filters.Names(), "\n"))
		return
	}
	if *inPath == "" || *chain == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := readGrid(*inPath)
	if err != nil {
		log.Fatalf("read %s: %v", *inPath, err)
	}

	pipeline, err := filters.ParseChain(*chain)
	if err != nil {
		log.Fatalf("parse chain: %v", err)
	}

	dst, err := pipeline.Apply(src)
	if err != nil {
		log.Fatalf("apply: %v", err)
	}

	if err := writeGrid(dst, *outPath); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	log.Printf("wrote %dx%d image to %s", dst.Width(), dst.Height(), *outPath)
}

func readGrid(path string) (*pixgrid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return pixgrid.FromImage(img), nil
}

func writeGrid(g *pixgrid.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, g.RGBA())
}
