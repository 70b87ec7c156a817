package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"

	"colorclass/pkg/cfg"
	"colorclass/pkg/classify"
	"colorclass/pkg/color"
	"colorclass/pkg/colorclass"
	"colorclass/pkg/server"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: %s [flags] command args...

commands:
  rgb R G B      classify an RGB color; also accepts one "#rrggbb" or "rgb(...)" argument
  hsb R G B      print the HSB value of an RGB color
  name NAME...   classify color names
  serve          serve the HTTP API

flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "color name table (default: bundled)")
	flag.StringVar(&cfg.DatasetDelimiter, "delim", cfg.DatasetDelimiter, "column delimiter of the color name table")
	flag.StringVar(&cfg.ListenAddress, "addr", cfg.ListenAddress, "listen address for serve")
	flag.BoolVar(&cfg.Swatch, "swatch", cfg.Swatch, "print a color swatch when writing to a terminal")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	engine, err := colorclass.NewFromConfig()
	if err != nil {
		// Names won't resolve, but RGB classification still works.
		log.Printf("warning: %s", err)
	}

	swatch := cfg.Swatch && term.IsTerminal(int(os.Stdout.Fd()))

	switch cmd, args := args[0], args[1:]; cmd {
	case "rgb":
		rgb := parseRGB(args)
		printClassification(engine, rgb.Hex(), rgb, swatch)
	case "hsb":
		rgb := parseRGB(args)
		fmt.Println(color.ToHsb(rgb))
	case "name":
		if len(args) == 0 {
			log.Fatalf("name: expected at least one color name")
		}
		for _, name := range args {
			rgb, ok := engine.Resolve(name)
			if !ok {
				fmt.Printf("%s: not found\n", name)
				continue
			}
			printClassification(engine, name, rgb, swatch)
		}
	case "serve":
		serve(engine)
	default:
		usage()
		os.Exit(2)
	}
}

func parseRGB(args []string) color.RGB {
	if len(args) == 1 {
		rgb, err := color.Parse(args[0])
		if err != nil {
			log.Fatalf("parse error: %s", err)
		}
		return rgb
	}
	if len(args) != 3 {
		log.Fatalf("expected R G B or a single color, got %d arguments", len(args))
	}
	var channels [3]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("parse error: %s", err)
		}
		channels[i] = v
	}
	rgb, err := colorclass.RGB(channels[0], channels[1], channels[2])
	if err != nil {
		log.Fatalf("invalid color: %s", err)
	}
	return rgb
}

func printClassification(engine *colorclass.Engine, name string, rgb color.RGB, swatch bool) {
	hsb, rule, ok := engine.Explain(rgb)
	class := classify.Unclassified
	if ok {
		class = rule.Label
	}

	prefix := ""
	if swatch {
		prefix = lipgloss.NewStyle().
			Background(lipgloss.Color(rgb.Hex())).
			Render("    ") + " "
	}
	fmt.Printf("%s%s %s %v %s (%s)\n", prefix, name, rgb.Hex(), hsb, class, class.Family())
}

func serve(engine *colorclass.Engine) {
	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		log.Fatalf("listen error: %s", err)
	}
	log.Printf("listening on %s", listener.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := server.Server{Engine: engine, Listener: listener}
	if err := srv.Serve(ctx); err != nil {
		log.Fatalf("serve error: %s", err)
	}
}
