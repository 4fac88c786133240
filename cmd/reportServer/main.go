package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"ProteomicsReport/pkg/web"
	"ProteomicsReport/pkg/wechatwork"

	"github.com/joho/godotenv"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	envFile = flag.String(
		"env",
		".env",
		"env file with PORT and WECHATWORK_KEY",
	)
	addr = flag.String(
		"addr",
		"",
		"listen address, default :$PORT or :8080",
	)
)

func main() {
	flag.Parse()
	if err := godotenv.Load(*envFile); err != nil {
		slog.Info("no env file", "path", *envFile, "error", err)
	}

	if *addr == "" {
		var port = os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		*addr = ":" + port
	}

	var server = web.NewServer(wechatwork.NewNotificationSender(os.Getenv("WECHATWORK_KEY")))
	slog.Info("listen", "addr", *addr)
	simpleUtil.CheckErr(http.ListenAndServe(*addr, server))
}
