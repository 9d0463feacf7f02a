// Command notation parses piece and style tokens and prints what they
// encode.
//
//	notation --notation epin "+R'" k -p
//	notation --notation sin --output yaml CHESS shogi
//	notation --graph K
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/notation/epin"
	"github.com/notation/transitions"
)

var (
	configFlag   = pflag.StringP("config", "c", "", "YAML file with default settings")
	notationFlag = pflag.StringP("notation", "n", "", "notation of the tokens: pin, epin, pnn, snn or sin")
	outputFlag   = pflag.StringP("output", "o", "", "output format: text, json or yaml")
	graphFlag    = pflag.Bool("graph", false, "print the transformation graph of each epin token as DOT")
	strictFlag   = pflag.Bool("strict", false, "exit with status 1 if any token is invalid")
)

func main() {
	pflag.Parse()
	log.SetFlags(0)
	log.SetPrefix("notation: ")

	conf := DefaultConfig()
	if *configFlag != "" {
		var err error
		if conf, err = loadConfig(*configFlag, conf); err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	if pflag.CommandLine.Changed("notation") {
		conf.Notation = *notationFlag
	}
	if pflag.CommandLine.Changed("output") {
		conf.Output = *outputFlag
	}
	if pflag.CommandLine.Changed("graph") {
		conf.Graph = *graphFlag
	}
	if pflag.CommandLine.Changed("strict") {
		conf.Strict = *strictFlag
	}
	if !conf.IsValid() {
		log.Fatalf("invalid configuration: %+v", conf)
	}
	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	if conf.Graph {
		for _, token := range pflag.Args() {
			id, err := epin.Parse(token)
			if err != nil {
				log.Fatalf("%v", err)
			}
			dot, err := transitions.Explore(id).DOT("G")
			if err != nil {
				log.Fatalf("rendering %s: %+v", token, err)
			}
			fmt.Print(dot)
		}
		return
	}

	reports := make([]Report, 0, pflag.NArg())
	invalid := 0
	for _, token := range pflag.Args() {
		r := describe(conf.Notation, token)
		if !r.Valid {
			invalid++
		}
		reports = append(reports, r)
	}
	if err := writeReports(os.Stdout, conf.Output, reports); err != nil {
		log.Fatalf("writing reports: %v", err)
	}
	if conf.Strict && invalid > 0 {
		log.Printf("%d of %d tokens invalid", invalid, len(reports))
		os.Exit(1)
	}
}
