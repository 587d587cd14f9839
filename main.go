package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/datatug/arcpost/pkg/arcfiles"
	"github.com/datatug/arcpost/pkg/arcui"
	"github.com/datatug/arcpost/pkg/extract"
	"github.com/datatug/arcpost/pkg/profiling"
	"github.com/datatug/arcpost/pkg/report"
	"github.com/datatug/arcpost/pkg/scan"
)

var (
	format     = flag.String("format", "preview", `report format: "preview", "quoted" or "table"`)
	tui        = flag.Bool("tui", false, "show the report in an interactive terminal view")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

var scanBatch = scan.Batch
var newExtractor = extract.New
var runTUI = arcui.Run
var runPipeline = run

func main() {
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}

	if *memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(*memProfile)
		defer stopMemProfiling()
	}

	if code := runPipeline(flag.Args(), os.Stdout, os.Stderr); code != 0 {
		osExit(code)
	}
}

func run(paths []string, stdout, stderr io.Writer) int {
	if len(paths) == 0 {
		_, _ = fmt.Fprintln(stderr, "usage: arcpost [flags] <file|directory>...")
		return 2
	}

	entries, err := scanBatch(paths)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	archives := arcfiles.Group(entries)
	results := newExtractor().ExtractAll(context.Background(), archives)

	var infos []*arcfiles.ArchiveInfo
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			_, _ = fmt.Fprintf(stderr, "skipping %s: %v\n", result.Archive.Name, result.Err)
			continue
		}
		infos = append(infos, result.Info)
	}

	if *tui {
		if err = runTUI(infos); err != nil {
			_, _ = fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
	} else {
		text, err := render(*format, infos)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%v\n", err)
			return 2
		}
		_, _ = fmt.Fprint(stdout, text)
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func render(format string, infos []*arcfiles.ArchiveInfo) (string, error) {
	switch format {
	case "preview":
		return report.Preview(infos), nil
	case "quoted":
		return report.Quoted(infos), nil
	case "table":
		return report.Table(infos), nil
	}
	return "", fmt.Errorf("unknown report format %q", format)
}
