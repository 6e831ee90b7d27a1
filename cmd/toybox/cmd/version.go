package cmd

import (
	"fmt"
	"io"

	"github.com/mkelk/toybox/internal/styles"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func printVersion(w io.Writer) {
	content := styles.RenderHeader("toybox") + "\n" + styles.RenderDim("version "+Version)
	fmt.Fprintln(w, styles.RenderBox(content))
}
