package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/selectdb/go_patterns/pkg/demo"
	"github.com/selectdb/go_patterns/pkg/utils"
	"github.com/selectdb/go_patterns/pkg/version"
	"github.com/selectdb/go_patterns/pkg/xerror"
	"github.com/selectdb/go_patterns/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
)

var (
	demoName    string
	listDemos   bool
	withMetrics bool
	metricsFile string
	printVer    bool
)

func init() {
	flag.BoolVar(&printVer, "version", false, "The program's version")

	flag.StringVar(&demoName, "demo", "all", "demo to run, or all")
	flag.BoolVar(&listDemos, "list", false, "list demos and exit")
	flag.BoolVar(&withMetrics, "metrics", false, "record metrics and dump them in the prometheus text format at exit")
	flag.StringVar(&metricsFile, "metrics_file", "", "metrics dump file, stderr if empty")
	flag.Parse()

	utils.InitLog()
}

func main() {
	if printVer {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	if listDemos {
		for _, name := range demo.Names() {
			fmt.Println(name)
		}
		return
	}

	log.Debugf("patterns start, version: %s", version.GetVersion())

	var registry *xmetrics.Registry
	if withMetrics {
		var err error
		if registry, err = xmetrics.InitGlobal("patterns"); err != nil {
			log.Fatalf("init metrics failed: %+v", err)
		}
	}

	var err error
	if demoName == "all" {
		err = demo.RunAll(os.Stdout)
	} else {
		err = demo.Run(demoName, os.Stdout)
	}

	if registry != nil {
		if dumpErr := dumpMetrics(registry); dumpErr != nil {
			log.Errorf("dump metrics failed: %+v", dumpErr)
		}
	}
	if err != nil {
		log.Fatalf("run demo %s failed: %+v", demoName, err)
	}
}

func dumpMetrics(registry *xmetrics.Registry) error {
	if metricsFile == "" {
		return registry.Write(os.Stderr)
	}

	file, err := os.Create(metricsFile)
	if err != nil {
		return xerror.Wrapf(err, xerror.IO, "create metrics file %s", metricsFile)
	}
	defer file.Close()

	return registry.Write(file)
}
