// Command thumbgen renders a thumbnail from a recipe file.
//
//	thumbgen -recipe job.toml [-out path] [-watch] [-v]
//
// With -watch it re-renders every time the recipe changes, until
// interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/thumb"
	"github.com/gogpu/thumb/internal/recipe"
)

func main() {
	var (
		recipePath = flag.String("recipe", "", "recipe file (.toml, .yaml)")
		output     = flag.String("out", "", "output file, overriding the recipe")
		watch      = flag.Bool("watch", false, "re-render when the recipe changes")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *recipePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		thumb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		thumb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	if err := render(*recipePath, *output); err != nil {
		if !*watch {
			log.Fatal(err)
		}
		log.Print(err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := watchFile(ctx, *recipePath, func() {
		if err := render(*recipePath, *output); err != nil {
			log.Print(err)
		}
	})
	if err != nil {
		log.Fatal(err)
	}
}

// render loads the recipe, runs it on a fresh canvas and exports it.
func render(path, out string) error {
	start := time.Now()
	r, err := recipe.Load(path)
	if err != nil {
		return err
	}
	c := thumb.NewCanvas(r.Options()...)
	if err := r.Run(c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	written, err := r.Save(c, out)
	if err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d) in %v", written, c.Width(), c.Height(), time.Since(start).Round(time.Millisecond))
	return nil
}
