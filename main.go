package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/IbrahimElmourchidi/px-responsive/internal/cli"
	"github.com/IbrahimElmourchidi/px-responsive/internal/combine"
	"github.com/IbrahimElmourchidi/px-responsive/ui"
)

func main() {
	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	if opts == nil {
		return // help printed
	}

	switch opts.Mode {
	case "combine":
		if err := runCombine(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := runDemo(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func runDemo(opts *cli.Options) error {
	cfg, path, err := cli.LoadDemoConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	watchPath := ""
	if opts.Watch {
		watchPath = path
	}

	a := app.NewWithID("com.px-responsive.demo")
	win := ui.BuildDemoWindow(a, cfg, watchPath)
	win.ShowAndRun()
	return nil
}

func runCombine(opts *cli.Options) error {
	n, err := combine.Run(combine.Options{
		Root: opts.CombineRoot,
		Out:  opts.CombineOut,
		Exts: opts.CombineExts,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Combined %d file(s) into %s\n", n, opts.CombineOut)
	return nil
}
