package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"headsup-analyzer/internal/config"
	"headsup-analyzer/pkg/rangestore"
)

var ranges = flag.String("ranges", "", "print this range file as YAML instead of the default config")

func main() {
	flag.Parse()

	var out interface{} = config.DefaultConfig()
	if *ranges != "" {
		records, err := rangestore.ReadFile(*ranges)
		if err != nil {
			logrus.WithError(err).Fatal("could not read range file")
		}

		// fail on ranges the analyzer would reject
		if _, err := rangestore.New(records); err != nil {
			logrus.WithError(err).Fatal("invalid range file")
		}

		out = rangestore.File{Patterns: records}
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(out); err != nil {
		logrus.WithError(err).Fatal("could not encode YAML")
	}
}
