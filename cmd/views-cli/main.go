package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/natefinch/atomic"

	views "github.com/goliatone/go-views"
)

type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func main() {
	var searchPaths multiFlag
	var data multiFlag

	configPath := flag.String("config", "", "YAML config file")
	templateRef := flag.String("template", "", "template reference to render (name or id::name)")
	output := flag.String("out", "", "output file (stdout if empty)")
	debug := flag.Bool("debug", false, "log a diagnostic when resolution misses")
	flag.Var(&searchPaths, "path", "search directory, repeatable; id::dir registers an explicit id")
	flag.Var(&data, "data", "template variable as key=value, repeatable")
	flag.Parse()

	options := []views.Option{views.WithDebug(*debug)}
	for _, entry := range searchPaths {
		if id, dir, ok := strings.Cut(entry, "::"); ok {
			options = append(options, views.WithNamedPath(id, dir))
			continue
		}
		options = append(options, views.WithPaths(entry))
	}

	var (
		eng *views.Engine
		err error
	)
	if *configPath != "" {
		eng, err = views.NewFromConfig(*configPath, options...)
	} else {
		eng, err = views.New(options...)
	}
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	reference := strings.TrimSpace(*templateRef)
	if reference == "" {
		prompt := &survey.Input{
			Message: "Template reference:",
			Help:    "A logical template name, optionally scoped as id::name",
		}
		if err := survey.AskOne(prompt, &reference, survey.WithValidator(survey.Required)); err != nil {
			log.Fatalf("Failed to read template reference: %v", err)
		}
	}

	match, err := eng.Find(reference)
	if err != nil {
		log.Fatalf("Invalid template reference %q: %v", reference, err)
	}
	if !match.Found {
		log.Fatalf("Template %q did not resolve", reference)
	}

	rendered, err := eng.Render(reference, parseData(data))
	if err != nil {
		log.Fatalf("Failed to render %q: %v", reference, err)
	}

	if *output != "" {
		if err := atomic.WriteFile(*output, strings.NewReader(rendered)); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Rendered %s to %s\n", reference, *output)
		return
	}
	fmt.Print(rendered)
}

func parseData(pairs []string) map[string]any {
	if len(pairs) == 0 {
		return nil
	}
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}
