package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rackshelf/rackshelf"
	"github.com/rackshelf/rackshelf/version"
	"github.com/rs/zerolog"
)

func main() {
	jsonOut := flag.Bool("j", false, "Write the analysis as a <name>_analysis.json file.")
	yamlOut := flag.Bool("y", false, "Write the analysis as a <name>_analysis.yml file.")
	xmlOut := flag.Bool("x", false, "Write the decompressed rack document as a <name>.xml file.")
	stdout := flag.Bool("s", false, "Do not write files; write everything to standard output instead.")
	outPath := flag.String("o", "", "Directory where to write the output files. The directory and its parents are created if needed. By default, files are placed next to the original rack file.")
	maxDepth := flag.Int("d", 0, "Maximum rack nesting depth; deeper structure is reported as plain devices. 0 uses the default.")
	verbose := flag.Bool("v", false, "Log parse-path diagnostics to standard error.")
	versionFlag := flag.Bool("version", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash())
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	decoder := rackshelf.Decoder{MaxDepth: *maxDepth, Log: logger}
	output := func(filename string, suffix string, contents []byte) error {
		if *stdout {
			fmt.Print(string(contents))
			return nil
		}
		dir, name := filepath.Split(filename)
		if *outPath != "" {
			dir = *outPath
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + suffix
		if dir != "" {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("could not create output directory %v: %w", dir, err)
			}
		}
		f := filepath.Join(dir, name)
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %w", f, err)
		}
		return nil
	}
	process := func(filename string) error {
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("could not read file %v: %w", filename, err)
		}
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		rack, err := decoder.Decode(data, name)
		if err != nil {
			return fmt.Errorf("could not analyze %v: %w", filename, err)
		}
		if !*jsonOut && !*yamlOut && !*xmlOut {
			// no output flags: print the analysis to stdout
			contents, err := rack.JSON()
			if err != nil {
				return err
			}
			fmt.Println(string(contents))
			return nil
		}
		if *jsonOut {
			contents, err := rack.JSON()
			if err != nil {
				return err
			}
			if err := output(filename, "_analysis.json", contents); err != nil {
				return err
			}
		}
		if *yamlOut {
			contents, err := rack.YAML()
			if err != nil {
				return err
			}
			if err := output(filename, "_analysis.yml", contents); err != nil {
				return err
			}
		}
		if *xmlOut {
			contents, err := rackshelf.ExtractXML(data)
			if err != nil {
				return err
			}
			if err := output(filename, ".xml", contents); err != nil {
				return err
			}
		}
		return nil
	}
	retval := 0
	for _, param := range flag.Args() {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			adgfiles, err := filepath.Glob(filepath.Join(param, "*.adg"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for adg files: %v\n", param, err)
				retval = 1
				continue
			}
			advfiles, err := filepath.Glob(filepath.Join(param, "*.adv"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for adv files: %v\n", param, err)
				retval = 1
				continue
			}
			for _, file := range append(adgfiles, advfiles...) {
				if err := process(file); err != nil {
					fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
					retval = 1
				}
			}
		} else {
			if err := process(param); err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
				retval = 1
			}
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Rackshelf analyzer. Input Ableton rack presets (.adg/.adv), outputs the analyzed rack structure as .json/.yml files and the decompressed document as .xml.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
