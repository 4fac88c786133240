package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ProteomicsReport/pkg/proteomics"
	"ProteomicsReport/pkg/wechatwork"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input tab-separated results, .gz allowed",
	)
	groups = flag.String(
		"g",
		"",
		"sample groups, comma separated, in sheet order",
	)
	defaults = flag.Bool(
		"defaults",
		false,
		"use default sample groups: "+strings.Join(proteomics.DefaultGroups, ","),
	)
	client = flag.String(
		"client",
		"",
		"client name used as file name prefix, default Report",
	)
	outputDir = flag.String(
		"o",
		".",
		"output directory",
	)
	plot = flag.Bool(
		"plot",
		false,
		"plot rows per sheet to [output].rows.html and [output].rows.png",
	)
	webhook = flag.String(
		"webhook",
		os.Getenv("WECHATWORK_KEY"),
		"WeChat Work robot key, empty to skip notification",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug log",
	)
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.PrintDefaults()
		log.Fatal("-i required!")
	}
	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	now := time.Now()

	var session = proteomics.NewSession(proteomics.LogReporter{})
	simpleUtil.CheckErr(session.UploadFile(*input))

	if *defaults {
		session.LoadDefaults()
	}
	for _, name := range strings.Split(*groups, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		simpleUtil.CheckErr(session.AddGroup(name))
	}
	session.ClientLabel = *client

	simpleUtil.CheckErr(os.MkdirAll(*outputDir, 0755))
	var filename = simpleUtil.HandleError(session.Process(proteomics.DirSaver{Dir: *outputDir}))
	var prefix = filepath.Join(*outputDir, strings.TrimSuffix(filename, ".xlsx"))

	if *plot {
		var html = osUtil.Create(prefix + ".rows.html")
		simpleUtil.CheckErr(proteomics.RenderRowsChart(html, filename, session.LastSummaries))
		simpleUtil.CheckErr(html.Close())
		simpleUtil.CheckErr(proteomics.PlotRowsChart(prefix+".rows.png", filename, session.LastSummaries))
	}

	var notifier = wechatwork.NewNotificationSender(*webhook)
	if err := notifier.NotifyExport(filename, session.LastSummaries); err != nil {
		slog.Error("notify export", "error", err)
	}

	slog.Info("Done", "file", filepath.Join(*outputDir, filename), "time", time.Since(now))
}
